//go:generate mockgen -source=handlers.go -destination=../../../../mocks/mock_feed_service.go -package=mocks

// handlers содержит REST-обработчики поверхности отображения ленты.
package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/pribylovaa/go-photo-feed/internal/models"
)

// FeedService — операции сервиса, которые нужны обработчикам.
// Реализация — *service.Service.
type FeedService interface {
	FetchPage(ctx context.Context, trigger models.Trigger) (models.FeedState, models.Trigger, error)
	Snapshot() models.FeedState
	InFlight() bool
	Post(index int) (models.Post, error)
	ListFetches(ctx context.Context, opts models.ListOptions) (*models.FetchPage, error)
	FetchByID(ctx context.Context, id string) (*models.FetchRecord, error)
}

// Handlers агрегирует зависимости обработчиков.
type Handlers struct {
	Service FeedService
}

func New(svc FeedService) *Handlers {
	return &Handlers{Service: svc}
}

// writeJSON — единый ответ JSON с нужным Content-Type.
// Ошибки выводим через apierrors.WriteError.
func writeJSON(w http.ResponseWriter, status int, value any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(value)
}
