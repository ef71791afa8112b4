package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	apierrors "github.com/pribylovaa/go-photo-feed/internal/errors"
	"github.com/pribylovaa/go-photo-feed/internal/models"
	"github.com/pribylovaa/go-photo-feed/internal/service"
)

func (h *Handlers) ListFetches(w http.ResponseWriter, r *http.Request) {
	var opts models.ListOptions
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.ParseInt(v, 10, 32)
		if err != nil {
			apierrors.WriteError(w, r, fmt.Errorf("limit: %w", service.ErrInvalidArgument))
			return
		}

		opts.Limit = int32(n)
	}

	opts.PageToken = r.URL.Query().Get("page_token")

	page, err := h.Service.ListFetches(r.Context(), opts)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	resp := FetchListResponse{
		Items:         make([]Fetch, 0, len(page.Items)),
		NextPageToken: page.NextPageToken,
	}
	for _, it := range page.Items {
		resp.Items = append(resp.Items, fetchView(it))
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *Handlers) GetFetchByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		apierrors.WriteError(w, r, fmt.Errorf("id: %w", service.ErrInvalidArgument))
		return
	}

	rec, err := h.Service.FetchByID(r.Context(), id)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, fetchView(*rec))
}
