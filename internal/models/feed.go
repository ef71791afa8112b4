package models

import (
	"fmt"
	"time"
)

// Trigger — причина загрузки страницы.
type Trigger int

const (
	// TriggerInitial — первичная загрузка при старте поверхности отображения.
	TriggerInitial Trigger = iota + 1
	// TriggerRefresh — ручное обновление (pull-to-refresh).
	TriggerRefresh
	// TriggerLoadMore — догрузка следующей страницы при прокрутке к концу.
	TriggerLoadMore
)

// String возвращает стабильное имя триггера для API, логов и журнала.
func (t Trigger) String() string {
	switch t {
	case TriggerInitial:
		return "initial"
	case TriggerRefresh:
		return "refresh"
	case TriggerLoadMore:
		return "load_more"
	default:
		return fmt.Sprintf("trigger(%d)", int(t))
	}
}

// Valid сообщает, является ли значение одним из трёх триггеров.
func (t Trigger) Valid() bool {
	return t >= TriggerInitial && t <= TriggerLoadMore
}

// ParseTrigger — обратное к String преобразование.
func ParseTrigger(s string) (Trigger, error) {
	switch s {
	case "initial":
		return TriggerInitial, nil
	case "refresh":
		return TriggerRefresh, nil
	case "load_more":
		return TriggerLoadMore, nil
	default:
		return 0, fmt.Errorf("unknown trigger %q", s)
	}
}

// PageQuery — параметры одного запроса страницы.
// При UseOffset == false параметр offset в запрос не попадает.
type PageQuery struct {
	Offset    int
	UseOffset bool
}

// FeedState — снимок состояния ленты.
//
// Особенности:
//   - Posts — в порядке прихода страниц, дубликаты между страницами возможны;
//   - Offset — число уже запрошенных постов, курсор следующего LoadMore;
//   - InFlight относится только к LoadMore;
//   - LastError — текст последней неудачной загрузки, очищается при успехе.
type FeedState struct {
	Posts     []Post
	Offset    int
	InFlight  bool
	LastError string
	UpdatedAt time.Time
}
