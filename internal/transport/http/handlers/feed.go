package handlers

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	apierrors "github.com/pribylovaa/go-photo-feed/internal/errors"
	"github.com/pribylovaa/go-photo-feed/internal/models"
	"github.com/pribylovaa/go-photo-feed/internal/service"
)

func (h *Handlers) GetFeed(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, feedView(h.Service.Snapshot()))
}

func (h *Handlers) RefreshFeed(w http.ResponseWriter, r *http.Request) {
	h.fetch(w, r, models.TriggerRefresh)
}

// LoadMore догружает следующую страницу. Пока предыдущий LoadMore
// не завершён, запрос отклоняется без обращения к источнику.
func (h *Handlers) LoadMore(w http.ResponseWriter, r *http.Request) {
	if h.Service.InFlight() {
		apierrors.WriteError(w, r, service.ErrLoadMoreInFlight)
		return
	}

	h.fetch(w, r, models.TriggerLoadMore)
}

// fetch выполняет загрузку до конца даже при отключении клиента:
// лента общая для всех клиентов, запрос ограничен только таймаутом источника.
func (h *Handlers) fetch(w http.ResponseWriter, r *http.Request, trigger models.Trigger) {
	state, done, err := h.Service.FetchPage(context.WithoutCancel(r.Context()), trigger)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	resp := feedView(state)
	resp.Trigger = done.String()
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handlers) GetPost(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil || index < 0 {
		apierrors.WriteError(w, r, fmt.Errorf("index: %w", service.ErrInvalidArgument))
		return
	}

	p, err := h.Service.Post(index)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, postDetailView(index, p))
}
