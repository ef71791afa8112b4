package models

import (
	"time"

	"github.com/google/uuid"
)

// Исходы загрузки в журнале.
const (
	OutcomeOK     = "ok"
	OutcomeFailed = "failed"
)

// FetchRecord — запись журнала об одной завершённой загрузке.
//
// Особенности:
//   - ID — UUIDv4, проставляется сервисом;
//   - Offset == nil, если параметр offset в запрос не передавался;
//   - временные метки — в UTC.
type FetchRecord struct {
	ID         uuid.UUID
	Trigger    Trigger
	Offset     *int
	PageLen    int
	FeedLen    int
	Outcome    string
	Error      string
	StartedAt  time.Time
	FinishedAt time.Time
}

// ListOptions — параметры выборки списков.
//
// Особенности:
//   - при Limit == 0 применяется серверный default (из config.LimitsConfig.Default);
//   - PageToken == "" -> первая страница.
type ListOptions struct {
	Limit     int32
	PageToken string
}

// FetchPage — страница журнала со ссылкой на продолжение.
type FetchPage struct {
	Items         []FetchRecord
	NextPageToken string
}
