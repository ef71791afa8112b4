package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/pribylovaa/go-photo-feed/internal/models"
	"github.com/pribylovaa/go-photo-feed/pkg/log"
)

// StartAutoRefresh выполняет первичную загрузку (Initial), а затем, если
// s.cfg.Feed.RefreshInterval > 0, периодически обновляет ленту триггером Refresh.
//
// Особенности:
//   - ошибки отдельных загрузок логируются и не прерывают цикл;
//   - при нулевом интервале возвращается сразу после первичной загрузки;
//   - останавливается по ctx.
func (s *Service) StartAutoRefresh(ctx context.Context) error {
	const op = "service/refresh/StartAutoRefresh"

	interval := s.cfg.Feed.RefreshInterval

	lg := log.From(ctx)
	lg.Info("auto_refresh_start",
		slog.String("op", op),
		slog.Duration("interval", interval),
	)

	if _, _, err := s.FetchPage(ctx, models.TriggerInitial); err != nil {
		lg.Warn("initial_fetch_error",
			slog.String("op", op),
			slog.String("err", err.Error()),
		)
	}

	if interval <= 0 {
		lg.Info("auto_refresh_disabled", slog.String("op", op))
		return nil
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			lg.Info("auto_refresh_stop", slog.String("op", op))
			return nil
		case <-ticker.C:
			if _, _, err := s.FetchPage(ctx, models.TriggerRefresh); err != nil {
				lg.Warn("refresh_tick_error",
					slog.String("op", op),
					slog.String("err", err.Error()),
				)
			}
		}
	}
}
