package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/pribylovaa/go-photo-feed/internal/models"
)

// TestStartAutoRefresh_Disabled — при нулевом интервале только Initial.
func TestStartAutoRefresh_Disabled(t *testing.T) {
	t.Parallel()

	src := pages(mkPosts("a", 3))
	svc := newSvc(t, src, fixedCfg())

	require.NoError(t, svc.StartAutoRefresh(context.Background()))
	require.Equal(t, []models.PageQuery{{}}, src.got())
	require.Len(t, svc.Snapshot().Posts, 3)
}

// TestStartAutoRefresh_InitialErrorDoesNotStop — ошибка первичной загрузки не фатальна.
func TestStartAutoRefresh_InitialErrorDoesNotStop(t *testing.T) {
	t.Parallel()

	src := &stubSource{fn: func(context.Context, models.PageQuery) ([]models.Post, error) {
		return nil, ErrNetwork
	}}
	svc := newSvc(t, src, fixedCfg())

	require.NoError(t, svc.StartAutoRefresh(context.Background()))
	require.Equal(t, "network error", svc.Snapshot().LastError)
}

// TestStartAutoRefresh_TicksUntilCancel — Refresh по тикеру и остановка по ctx.
func TestStartAutoRefresh_TicksUntilCancel(t *testing.T) {
	t.Parallel()

	cfg := fixedCfg()
	cfg.Feed.RefreshInterval = 10 * time.Millisecond

	src := pages(mkPosts("a", 1), mkPosts("b", 2), mkPosts("c", 3))
	svc := newSvc(t, src, cfg)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- svc.StartAutoRefresh(ctx) }()

	require.Eventually(t, func() bool {
		return len(src.got()) >= 3
	}, 2*time.Second, 5*time.Millisecond)

	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("auto refresh did not stop")
	}

	got := src.got()
	require.Equal(t, models.PageQuery{}, got[0])
	for _, q := range got[1:] {
		require.False(t, q.UseOffset, "Refresh не передаёт offset")
	}
}
