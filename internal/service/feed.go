package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/pribylovaa/go-photo-feed/internal/config"
	"github.com/pribylovaa/go-photo-feed/internal/models"
	"github.com/pribylovaa/go-photo-feed/pkg/log"
)

// journalTimeout ограничивает запись в журнал после завершения загрузки.
const journalTimeout = 3 * time.Second

// FetchPage загружает страницу по триггеру и сливает её в ленту.
//
// Семантика:
//   - Initial, Refresh — запрос без offset, лента заменяется страницей, offset не меняется;
//   - LoadMore — запрос с текущим offset, страница дописывается в конец;
//     при политике fixed offset растёт на PageSize до отправки запроса,
//     при политике actual — на длину страницы после успешного ответа.
//
// InFlight выставляется в начале LoadMore и снимается при его завершении
// (успех, ошибка или паника источника). Повторный LoadMore во время
// выполнения — ErrLoadMoreInFlight.
//
// Ошибки:
//   - ErrFetchFailed вместе с причиной (ErrNetwork / ErrMalformedResponse):
//     посты не меняются, LastError заполняется; offset, сдвинутый до запроса,
//     остаётся сдвинутым (кроме политики retry);
//   - ErrInvalidArgument — неизвестный триггер.
//
// Возвращается снимок ленты после завершения и сам триггер.
func (s *Service) FetchPage(ctx context.Context, trigger models.Trigger) (models.FeedState, models.Trigger, error) {
	const op = "service.feed.FetchPage"

	if !trigger.Valid() {
		return models.FeedState{}, trigger, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	ctx = log.With(ctx, slog.String("op", op), slog.String("trigger", trigger.String()))
	lg := log.From(ctx)

	q, advanced, err := s.begin(trigger)
	if err != nil {
		lg.Info("fetch_rejected", slog.String("err", err.Error()))
		return s.Snapshot(), trigger, fmt.Errorf("%s: %w", op, err)
	}

	lg.Debug("fetch_start",
		slog.Bool("with_offset", q.UseOffset),
		slog.Int("offset", q.Offset),
	)

	completed := false
	if trigger == models.TriggerLoadMore {
		defer func() {
			if !completed {
				s.abort(advanced)
			}
		}()
	}

	started := s.now()
	posts, fetchErr := s.pages.FetchPosts(ctx, q)
	finished := s.now()

	state := s.complete(trigger, advanced, posts, fetchErr, finished)
	completed = true

	rec := models.FetchRecord{
		ID:         uuid.New(),
		Trigger:    trigger,
		PageLen:    len(posts),
		FeedLen:    len(state.Posts),
		Outcome:    models.OutcomeOK,
		StartedAt:  started,
		FinishedAt: finished,
	}
	if q.UseOffset {
		off := q.Offset
		rec.Offset = &off
	}
	if fetchErr != nil {
		rec.PageLen = 0
		rec.Outcome = models.OutcomeFailed
		rec.Error = fetchErr.Error()
	}

	s.rec.ObserveFetch(trigger, rec.Outcome, finished.Sub(started), rec.PageLen)
	s.rec.SetFeed(state)
	s.journal(ctx, rec)

	if fetchErr != nil {
		lg.Warn("fetch_failed",
			slog.Int("offset", state.Offset),
			slog.String("err", fetchErr.Error()),
		)
		return state, trigger, fmt.Errorf("%s: %w: %w", op, ErrFetchFailed, fetchErr)
	}

	lg.Info("fetch_ok",
		slog.Int("page", len(posts)),
		slog.Int("posts", len(state.Posts)),
		slog.Int("offset", state.Offset),
	)

	return state, trigger, nil
}

// begin резервирует загрузку под мьютексом и возвращает параметры запроса
// и величину оптимистичного сдвига offset.
func (s *Service) begin(trigger models.Trigger) (models.PageQuery, int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if trigger != models.TriggerLoadMore {
		return models.PageQuery{}, 0, nil
	}

	if s.state.InFlight {
		return models.PageQuery{}, 0, ErrLoadMoreInFlight
	}

	s.state.InFlight = true
	q := models.PageQuery{Offset: s.state.Offset, UseOffset: true}

	advanced := 0
	if s.cfg.Feed.OffsetPolicy != config.OffsetActual {
		advanced = s.pageSize()
		s.state.Offset += advanced
	}

	return q, advanced, nil
}

// complete применяет результат загрузки к состоянию и возвращает снимок.
func (s *Service) complete(trigger models.Trigger, advanced int, page []models.Post, fetchErr error, at time.Time) models.FeedState {
	s.mu.Lock()
	defer s.mu.Unlock()

	if trigger == models.TriggerLoadMore {
		s.state.InFlight = false
	}

	if fetchErr != nil {
		s.rollbackLocked(advanced)
		s.state.LastError = errorMessage(fetchErr)
		return s.snapshotLocked()
	}

	switch trigger {
	case models.TriggerInitial, models.TriggerRefresh:
		s.state.Posts = append([]models.Post(nil), page...)
	case models.TriggerLoadMore:
		s.state.Posts = append(s.state.Posts, page...)
		if s.cfg.Feed.OffsetPolicy == config.OffsetActual {
			s.state.Offset += len(page)
		}
	}

	s.state.LastError = ""
	s.state.UpdatedAt = at

	return s.snapshotLocked()
}

// abort снимает InFlight, если LoadMore не дошёл до complete (паника источника).
func (s *Service) abort(advanced int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.InFlight = false
	s.rollbackLocked(advanced)
}

// rollbackLocked возвращает сдвиг offset только для политики retry.
// Для остальных политик offset не уменьшается.
func (s *Service) rollbackLocked(advanced int) {
	if s.cfg.Feed.OffsetPolicy == config.OffsetRetry {
		s.state.Offset -= advanced
	}
}

// journal пишет запись в журнал. Ошибка журнала не влияет на результат загрузки.
func (s *Service) journal(ctx context.Context, rec models.FetchRecord) {
	const op = "service.feed.journal"

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), journalTimeout)
	defer cancel()

	if err := s.storage.SaveFetch(ctx, rec); err != nil {
		log.From(ctx).Warn("journal_save_failed",
			slog.String("op", op),
			slog.String("id", rec.ID.String()),
			slog.String("err", err.Error()),
		)
	}
}

// Snapshot возвращает копию текущего состояния ленты.
func (s *Service) Snapshot() models.FeedState {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.snapshotLocked()
}

// InFlight сообщает, выполняется ли сейчас LoadMore.
// Поверхность отображения проверяет его перед догрузкой.
func (s *Service) InFlight() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.state.InFlight
}

// Post возвращает пост по позиции в ленте.
// Индекс вне диапазона — ErrNotFound.
func (s *Service) Post(index int) (models.Post, error) {
	const op = "service.feed.Post"

	s.mu.Lock()
	defer s.mu.Unlock()

	if index < 0 || index >= len(s.state.Posts) {
		return models.Post{}, fmt.Errorf("%s: index %d: %w", op, index, ErrNotFound)
	}

	return s.state.Posts[index], nil
}

func (s *Service) snapshotLocked() models.FeedState {
	st := s.state
	st.Posts = append([]models.Post(nil), s.state.Posts...)

	return st
}

func (s *Service) pageSize() int {
	if s.cfg.Feed.PageSize > 0 {
		return s.cfg.Feed.PageSize
	}

	return 20
}

// errorMessage возвращает короткое описание причины для баннера.
func errorMessage(err error) string {
	switch {
	case errors.Is(err, ErrMalformedResponse):
		return ErrMalformedResponse.Error()
	case errors.Is(err, context.DeadlineExceeded):
		return "timeout"
	case errors.Is(err, ErrNetwork):
		return ErrNetwork.Error()
	default:
		return ErrFetchFailed.Error()
	}
}
