// service содержит бизнес-логику photofeed-service: FeedLoader
// (состояние ленты и три триггера загрузки), автообновление и запросы к журналу.
package service

import (
	"errors"
	"sync"
	"time"

	"github.com/pribylovaa/go-photo-feed/internal/config"
	"github.com/pribylovaa/go-photo-feed/internal/models"
	"github.com/pribylovaa/go-photo-feed/internal/storage"
)

var (
	// ErrFetchFailed — загрузка страницы не удалась; причина обёрнута рядом
	// (ErrNetwork или ErrMalformedResponse).
	// Транспорт: 502 fetch_failed.
	ErrFetchFailed = errors.New("fetch failed")
	// ErrNetwork — ошибка транспорта или не-2xx ответ источника.
	ErrNetwork = errors.New("network error")
	// ErrMalformedResponse — тело ответа не соответствует ожидаемой JSON-форме.
	ErrMalformedResponse = errors.New("malformed response")
	// ErrLoadMoreInFlight — LoadMore уже выполняется.
	// Транспорт: 409 load_in_flight.
	ErrLoadMoreInFlight = errors.New("load more already in flight")
	// ErrNotFound — сущность отсутствует.
	// Транспорт: 404.
	ErrNotFound = errors.New("not found")
	// ErrInvalidCursor — битый/чужой page_token.
	// Транспорт: 400.
	ErrInvalidCursor = errors.New("invalid cursor")
	// ErrInvalidArgument - некорректные входные аргументы.
	// Транспорт: 400.
	ErrInvalidArgument = errors.New("invalid argument")
)

// Recorder принимает метрики загрузок. Реализация — internal/metrics.
type Recorder interface {
	ObserveFetch(trigger models.Trigger, outcome string, dur time.Duration, pageLen int)
	SetFeed(state models.FeedState)
}

type nopRecorder struct{}

func (nopRecorder) ObserveFetch(models.Trigger, string, time.Duration, int) {}
func (nopRecorder) SetFeed(models.FeedState)                                 {}

// Service — описывает бизнес-логику photofeed-service.
//
// Состояние ленты защищено mu: HTTP-обработчики работают в разных горутинах,
// поэтому все чтения и записи FeedState идут под мьютексом, а сетевой
// запрос выполняется без него.
type Service struct {
	pages   PageSource
	storage storage.Storage
	rec     Recorder
	cfg     config.Config
	now     func() time.Time

	mu    sync.Mutex
	state models.FeedState
}

// New создает новый экземпляр Service с пустой лентой.
// rec == nil отключает метрики.
func New(pages PageSource, storage storage.Storage, rec Recorder, cfg config.Config) *Service {
	if rec == nil {
		rec = nopRecorder{}
	}

	return &Service{
		pages:   pages,
		storage: storage,
		rec:     rec,
		cfg:     cfg,
		now:     func() time.Time { return time.Now().UTC() },
	}
}
