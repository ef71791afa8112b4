package postgres

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/pribylovaa/go-photo-feed/internal/models"
	"github.com/pribylovaa/go-photo-feed/internal/storage"
)

const fetchColumns = `id, trigger, req_offset, page_len, feed_len, outcome, error, started_at, finished_at`

// SaveFetch сохраняет запись о загрузке.
// Временные метки приводятся к UTC и точности PostgreSQL (микросекунды),
// чтобы курсор страницы совпадал с хранимым значением.
func (s *Storage) SaveFetch(ctx context.Context, rec models.FetchRecord) error {
	const op = "storage.postgres.SaveFetch"

	var offset *int32
	if rec.Offset != nil {
		v := int32(*rec.Offset)
		offset = &v
	}

	_, err := s.db.Exec(ctx, `
	INSERT INTO fetches (`+fetchColumns+`)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`, rec.ID, rec.Trigger.String(), offset, int32(rec.PageLen), int32(rec.FeedLen), rec.Outcome, rec.Error,
		rec.StartedAt.UTC().Truncate(time.Microsecond), rec.FinishedAt.UTC().Truncate(time.Microsecond))
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// ListFetches возвращает страницу журнала с курсорной пагинацией.
// Сортировка фиксирована: started_at DESC, id DESC.
// page_token — непрозрачная строка (base64url).
// При некорректном токене возвращает storage.ErrInvalidCursor.
func (s *Storage) ListFetches(ctx context.Context, opts models.ListOptions) (*models.FetchPage, error) {
	const op = "storage.postgres.ListFetches"

	limit := opts.Limit
	if limit <= 0 {
		limit = 1
	}

	var rows pgx.Rows
	var err error

	if opts.PageToken == "" {
		rows, err = s.db.Query(ctx, `
		SELECT `+fetchColumns+`
		FROM fetches
		ORDER BY started_at DESC, id DESC
		LIMIT $1
		`, limit)
	} else {
		startedCur, idCur, decErr := decodePageToken(opts.PageToken)
		if decErr != nil {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrInvalidCursor)
		}

		rows, err = s.db.Query(ctx, `
		SELECT `+fetchColumns+`
		FROM fetches
		WHERE (started_at, id) < ($1, $2)
		ORDER BY started_at DESC, id DESC
		LIMIT $3
		`, startedCur, idCur, limit)
	}

	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var page models.FetchPage
	for rows.Next() {
		rec, scanErr := scanFetch(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("%s: scan row: %w", op, scanErr)
		}

		page.Items = append(page.Items, rec)
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("%s: rows: %w", op, rows.Err())
	}

	// Курсор следующей страницы — по последнему элементу; неполная страница — последняя.
	if l := len(page.Items); l > 0 && int32(l) == limit {
		last := page.Items[l-1]
		page.NextPageToken = encodePageToken(last.StartedAt, last.ID)
	}

	return &page, nil
}

// FetchByID возвращает запись журнала по идентификатору.
// Некорректный формат id трактуется как «нет такой записи».
func (s *Storage) FetchByID(ctx context.Context, id string) (*models.FetchRecord, error) {
	const op = "storage.postgres.FetchByID"

	correctID, err := uuid.Parse(strings.TrimSpace(id))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	row := s.db.QueryRow(ctx, `
	SELECT `+fetchColumns+`
	FROM fetches
	WHERE id = $1
	`, correctID)

	rec, err := scanFetch(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &rec, nil
}

// scanFetch читает одну строку fetches в доменную запись.
func scanFetch(row pgx.Row) (models.FetchRecord, error) {
	var (
		rec     models.FetchRecord
		trigger string
		offset  *int32
		pageLen int32
		feedLen int32
	)

	if err := row.Scan(
		&rec.ID,
		&trigger,
		&offset,
		&pageLen,
		&feedLen,
		&rec.Outcome,
		&rec.Error,
		&rec.StartedAt,
		&rec.FinishedAt,
	); err != nil {
		return models.FetchRecord{}, err
	}

	t, err := models.ParseTrigger(trigger)
	if err != nil {
		return models.FetchRecord{}, err
	}
	rec.Trigger = t

	if offset != nil {
		v := int(*offset)
		rec.Offset = &v
	}
	rec.PageLen = int(pageLen)
	rec.FeedLen = int(feedLen)

	rec.StartedAt = rec.StartedAt.UTC()
	rec.FinishedAt = rec.FinishedAt.UTC()

	return rec, nil
}

// encodePageToken кодирует пару ключей страницы в непрозрачный токен для клиента.
func encodePageToken(startedAt time.Time, id uuid.UUID) string {
	raw := fmt.Sprintf("%d|%s", startedAt.UTC().UnixNano(), id.String())

	return base64.RawURLEncoding.EncodeToString([]byte(raw))
}

// decodePageToken декодирует токен обратно в пару ключей.
func decodePageToken(token string) (time.Time, uuid.UUID, error) {
	res, err := base64.RawURLEncoding.DecodeString(strings.TrimSpace(token))
	if err != nil {
		return time.Time{}, uuid.Nil, err
	}

	left, right, ok := strings.Cut(string(res), "|")
	if !ok {
		return time.Time{}, uuid.Nil, fmt.Errorf("bad parts")
	}

	ns, err := strconv.ParseInt(left, 10, 64)
	if err != nil {
		return time.Time{}, uuid.Nil, err
	}

	id, err := uuid.Parse(right)
	if err != nil {
		return time.Time{}, uuid.Nil, err
	}

	return time.Unix(0, ns).UTC(), id, nil
}
