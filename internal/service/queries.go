package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/pribylovaa/go-photo-feed/internal/models"
	"github.com/pribylovaa/go-photo-feed/internal/storage"
	"github.com/pribylovaa/go-photo-feed/pkg/log"
)

// ListFetches возвращает страницу журнала загрузок с нормализацией лимита по конфигу.
//
// Правила нормализации:
// - limit <= 0 -> cfg.LimitsConfig.Default;
// - limit > max -> cfg.LimitsConfig.Max;
// - пустой pageToken -> первая страница.
//
// Ошибки:
// - ErrInvalidCursor — битый/чужой page_token (маппинг storage.ErrInvalidCursor);
// - прочие ошибки стораджа — обёрнутые и прокинуты наверх.
func (s *Service) ListFetches(ctx context.Context, opts models.ListOptions) (*models.FetchPage, error) {
	const op = "service.queries.ListFetches"

	lg := log.From(ctx)

	if opts.Limit <= 0 {
		opts.Limit = s.cfg.LimitsConfig.Default
	}

	if s.cfg.LimitsConfig.Max > 0 && opts.Limit > s.cfg.LimitsConfig.Max {
		opts.Limit = s.cfg.LimitsConfig.Max
	}

	page, err := s.storage.ListFetches(ctx, opts)
	if err != nil {
		if errors.Is(err, storage.ErrInvalidCursor) {
			lg.Warn("list_fetches_invalid_cursor", slog.String("op", op))

			return nil, fmt.Errorf("%s: %w", op, ErrInvalidCursor)
		}

		lg.Error("list_fetches_storage_error",
			slog.String("op", op),
			slog.String("err", err.Error()),
		)

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	lg.Debug("list_fetches_ok",
		slog.String("op", op),
		slog.Int("items", len(page.Items)),
		slog.Bool("has_next_page", page.NextPageToken != ""),
	)

	return page, nil
}

// FetchByID возвращает запись журнала по идентификатору.
//
// Ошибки:
// - ErrNotFound — если запись отсутствует (маппинг storage.ErrNotFound);
// - прочие ошибки стораджа — обёрнутые и прокинуты наверх.
func (s *Service) FetchByID(ctx context.Context, id string) (*models.FetchRecord, error) {
	const op = "service.queries.FetchByID"

	rec, err := s.storage.FetchByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		log.From(ctx).Error("fetch_by_id_storage_error",
			slog.String("op", op),
			slog.String("id", id),
			slog.String("err", err.Error()),
		)

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return rec, nil
}
