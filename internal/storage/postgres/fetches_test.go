package postgres

import (
	"context"
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/pribylovaa/go-photo-feed/internal/models"
	"github.com/pribylovaa/go-photo-feed/internal/storage"
)

// Интеграционные тесты журнала загрузок (fetches.go):
// — поднимают PostgreSQL через testcontainers-go (postgres:16-alpine);
// — применяют миграции из ./migrations;
// — проверяют SaveFetch/FetchByID, keyset-пагинацию ListFetches,
//   ErrInvalidCursor и ErrNotFound.
//
// Запуск локально:
//   GO_TEST_INTEGRATION=1 go test ./internal/storage/postgres -v -race -count=1

func repoRootFromThisFile() string {
	// internal/storage/postgres/... -> подняться на 3 уровня до корня.
	_, thisFile, _, _ := runtime.Caller(0)
	return filepath.Clean(filepath.Join(filepath.Dir(thisFile), "..", "..", ".."))
}

func readMigration(t *testing.T, name string) string {
	t.Helper()
	path := filepath.Join(repoRootFromThisFile(), "migrations", name)
	b, err := os.ReadFile(path)
	require.NoError(t, err, "read migration %s", path)
	return string(b)
}

// startPostgres поднимает PostgreSQL и возвращает хранилище с функцией очистки.
// Без GO_TEST_INTEGRATION тест пропускается.
func startPostgres(t *testing.T) (*Storage, func()) {
	t.Helper()
	if os.Getenv("GO_TEST_INTEGRATION") == "" {
		t.Skip("integration tests are disabled (set GO_TEST_INTEGRATION=1)")
	}

	ctx := context.Background()
	req := tc.ContainerRequest{
		Image:        "postgres:16-alpine",
		Env:          map[string]string{"POSTGRES_USER": "user", "POSTGRES_PASSWORD": "pass", "POSTGRES_DB": "db"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp").WithStartupTimeout(60 * time.Second),
	}
	c, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{ContainerRequest: req, Started: true})
	require.NoError(t, err)

	host, _ := c.Host(ctx)
	port, _ := c.MappedPort(ctx, "5432/tcp")
	dsn := fmt.Sprintf("postgres://user:pass@%s:%s/db?sslmode=disable", host, port.Port())

	pool, err := pgxpool.New(ctx, dsn)
	require.NoError(t, err)
	defer pool.Close()

	_, err = pool.Exec(ctx, readMigration(t, "1_init_fetches.up.sql"))
	require.NoError(t, err)

	st, err := New(ctx, dsn)
	require.NoError(t, err)

	cleanup := func() {
		st.Close()
		_ = c.Terminate(context.Background())
	}
	return st, cleanup
}

func mkRecord(trigger models.Trigger, started time.Time, offset *int) models.FetchRecord {
	return models.FetchRecord{
		ID:         uuid.New(),
		Trigger:    trigger,
		Offset:     offset,
		PageLen:    20,
		FeedLen:    20,
		Outcome:    models.OutcomeOK,
		StartedAt:  started,
		FinishedAt: started.Add(150 * time.Millisecond),
	}
}

func TestIntegration_SaveFetch_And_ByID(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	ctx := context.Background()
	now := time.Now().UTC()

	off := 40
	ok := mkRecord(models.TriggerLoadMore, now, &off)
	ok.FeedLen = 60

	failed := mkRecord(models.TriggerRefresh, now.Add(time.Second), nil)
	failed.PageLen = 0
	failed.Outcome = models.OutcomeFailed
	failed.Error = "tumblr.FetchPosts: status=502: network error"

	require.NoError(t, st.SaveFetch(ctx, ok))
	require.NoError(t, st.SaveFetch(ctx, failed))

	got, err := st.FetchByID(ctx, ok.ID.String())
	require.NoError(t, err)
	require.Equal(t, ok.ID, got.ID)
	require.Equal(t, models.TriggerLoadMore, got.Trigger)
	require.NotNil(t, got.Offset)
	require.Equal(t, 40, *got.Offset)
	require.Equal(t, 20, got.PageLen)
	require.Equal(t, 60, got.FeedLen)
	require.Equal(t, models.OutcomeOK, got.Outcome)
	require.Equal(t, ok.StartedAt.Truncate(time.Microsecond), got.StartedAt)
	require.Equal(t, time.UTC, got.StartedAt.Location())

	got, err = st.FetchByID(ctx, " "+failed.ID.String()+" ")
	require.NoError(t, err)
	require.Nil(t, got.Offset)
	require.Equal(t, models.OutcomeFailed, got.Outcome)
	require.Equal(t, failed.Error, got.Error)
}

func TestIntegration_ListFetches_KeysetPagination(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	ctx := context.Background()
	base := time.Now().UTC().Truncate(time.Second)

	var want []uuid.UUID
	for i := 0; i < 5; i++ {
		rec := mkRecord(models.TriggerRefresh, base.Add(time.Duration(i)*time.Minute), nil)
		require.NoError(t, st.SaveFetch(ctx, rec))
		want = append([]uuid.UUID{rec.ID}, want...)
	}

	p1, err := st.ListFetches(ctx, models.ListOptions{Limit: 2})
	require.NoError(t, err)
	require.Len(t, p1.Items, 2)
	require.NotEmpty(t, p1.NextPageToken)

	p2, err := st.ListFetches(ctx, models.ListOptions{Limit: 2, PageToken: p1.NextPageToken})
	require.NoError(t, err)
	require.Len(t, p2.Items, 2)

	p3, err := st.ListFetches(ctx, models.ListOptions{Limit: 2, PageToken: p2.NextPageToken})
	require.NoError(t, err)
	require.Len(t, p3.Items, 1)
	require.Empty(t, p3.NextPageToken, "неполная страница — последняя")

	var got []uuid.UUID
	for _, it := range append(append(p1.Items, p2.Items...), p3.Items...) {
		got = append(got, it.ID)
	}
	require.Equal(t, want, got, "started_at DESC")
}

func TestIntegration_ListFetches_TieBreakers(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	ctx := context.Background()
	started := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 3; i++ {
		require.NoError(t, st.SaveFetch(ctx, mkRecord(models.TriggerInitial, started, nil)))
	}

	p1, err := st.ListFetches(ctx, models.ListOptions{Limit: 2})
	require.NoError(t, err)
	require.Len(t, p1.Items, 2)

	p2, err := st.ListFetches(ctx, models.ListOptions{Limit: 2, PageToken: p1.NextPageToken})
	require.NoError(t, err)
	require.Len(t, p2.Items, 1)

	seen := map[uuid.UUID]struct{}{}
	for _, it := range append(p1.Items, p2.Items...) {
		seen[it.ID] = struct{}{}
	}
	require.Len(t, seen, 3)
}

func TestIntegration_ListFetches_LimitZero_FallsBackToOne(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	ctx := context.Background()
	now := time.Now().UTC()
	require.NoError(t, st.SaveFetch(ctx, mkRecord(models.TriggerInitial, now, nil)))
	require.NoError(t, st.SaveFetch(ctx, mkRecord(models.TriggerRefresh, now.Add(time.Second), nil)))

	p, err := st.ListFetches(ctx, models.ListOptions{Limit: 0})
	require.NoError(t, err)
	require.Len(t, p.Items, 1)
	require.Equal(t, models.TriggerRefresh, p.Items[0].Trigger)
}

func TestIntegration_ListFetches_InvalidToken(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	_, err := st.ListFetches(context.Background(), models.ListOptions{Limit: 2, PageToken: "%%%not_base64%%%"})
	require.ErrorIs(t, err, storage.ErrInvalidCursor)
}

func TestIntegration_FetchByID_NotFound(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	_, err := st.FetchByID(context.Background(), uuid.New().String())
	require.ErrorIs(t, err, storage.ErrNotFound)

	_, err = st.FetchByID(context.Background(), "not-a-uuid")
	require.ErrorIs(t, err, storage.ErrNotFound)
}

func TestIntegration_SaveFetch_ContextDeadlineExceeded(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), 0)
	defer cancel()

	err := st.SaveFetch(ctx, mkRecord(models.TriggerInitial, time.Now().UTC(), nil))
	require.Error(t, err)
	require.True(t, strings.Contains(err.Error(), context.DeadlineExceeded.Error()))
}

func TestEncodeDecodePageToken_Roundtrip(t *testing.T) {
	started := time.Date(2025, 7, 1, 12, 0, 0, 123_456_000, time.UTC)
	id := uuid.New()

	token := encodePageToken(started, id)
	gotStarted, gotID, err := decodePageToken(token)
	require.NoError(t, err)
	require.Equal(t, started, gotStarted)
	require.Equal(t, id, gotID)
}

func TestDecodePageToken_Errors(t *testing.T) {
	t.Run("not base64", func(t *testing.T) {
		_, _, err := decodePageToken("%%%")
		require.Error(t, err)
	})
	t.Run("no separator", func(t *testing.T) {
		token := base64.RawURLEncoding.EncodeToString([]byte("noseparator"))
		_, _, err := decodePageToken(token)
		require.Error(t, err)
	})
	t.Run("bad timestamp", func(t *testing.T) {
		token := base64.RawURLEncoding.EncodeToString([]byte("not-an-int|" + uuid.New().String()))
		_, _, err := decodePageToken(token)
		require.Error(t, err)
	})
	t.Run("bad uuid", func(t *testing.T) {
		token := base64.RawURLEncoding.EncodeToString([]byte(fmt.Sprintf("%d|bad-uuid", time.Now().UTC().UnixNano())))
		_, _, err := decodePageToken(token)
		require.Error(t, err)
	})
}
