//go:generate mockgen -source=storage.go -destination=../../mocks/mock_storage.go -package=mocks

// storage определяет контракты журнала загрузок photofeed-service.
package storage

import (
	"context"
	"errors"

	"github.com/pribylovaa/go-photo-feed/internal/models"
)

var (
	// ErrNotFound — запись отсутствует в журнале.
	ErrNotFound = errors.New("not found")
	// ErrInvalidCursor - битый/чужой page_token (курсор пагинации).
	ErrInvalidCursor = errors.New("invalid cursor")
)

// FetchJournal описывает операции над models.FetchRecord.
type FetchJournal interface {
	// SaveFetch сохраняет запись о завершённой загрузке. ID проставляет вызывающий.
	SaveFetch(ctx context.Context, rec models.FetchRecord) error
	// ListFetches возвращает страницу записей, отсортированных по started_at DESC.
	// При некорректном page_token должна вернуться ошибка ErrInvalidCursor.
	ListFetches(ctx context.Context, opts models.ListOptions) (*models.FetchPage, error)
	// FetchByID возвращает запись по строковому идентификатору.
	// Если записи нет или id некорректен — ErrNotFound.
	FetchByID(ctx context.Context, id string) (*models.FetchRecord, error)
}

// Storage задаёт контракт доступа к хранилищу для сервиса.
type Storage interface {
	FetchJournal
	Close()
}

// Nop — журнал-заглушка для запуска без базы данных.
// Ничего не сохраняет, список всегда пуст.
type Nop struct{}

func (Nop) SaveFetch(context.Context, models.FetchRecord) error { return nil }

func (Nop) ListFetches(context.Context, models.ListOptions) (*models.FetchPage, error) {
	return &models.FetchPage{}, nil
}

func (Nop) FetchByID(context.Context, string) (*models.FetchRecord, error) {
	return nil, ErrNotFound
}

func (Nop) Close() {}

var _ Storage = Nop{}
