// errors стандартизирует ответы об ошибках HTTP-слоя photofeed-service.
// На вход он принимает ошибку сервисного слоя, а на выход даёт:
//   - корректный HTTP-статус;
//   - краткое безопасное message без утечки деталей.
//
// Источник истинности по маппингу: сентинелы internal/service.
package errors

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/pribylovaa/go-photo-feed/internal/service"
)

// Нестандартный код часто используемый для "клиент закрыл соединение".
const StatusClientClosedRequest = 499

// APIError — единый формат для клиента.
// Code — короткий стабильный код для машиночитаемой обработки.
// Message — безопасное человекочитаемое описание.
// RequestID — прокидывается из X-Request-Id, если есть (для трассировки).
type APIError struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
}

// ErrorResponse — корневой объект в ответе.
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// ToHTTP конвертирует ошибку сервиса в HTTP-статус и унифицированный ответ.
//
// Поведение:
//   - err == nil - программная ошибка вызова: 500/internal;
//   - ErrFetchFailed -> 502 fetch_failed (message — причина: network/malformed/timeout);
//   - ErrLoadMoreInFlight -> 409 load_in_flight;
//   - ErrNotFound -> 404;
//   - ErrInvalidArgument / ErrInvalidCursor -> 400;
//   - context.Canceled -> 499, context.DeadlineExceeded -> 504;
//   - прочее -> 500/internal (без утечки деталей).
//
// ErrFetchFailed проверяется раньше контекстных ошибок: таймаут запроса
// к источнику — это неудачная загрузка, а не таймаут обработчика.
func ToHTTP(err error) (int, ErrorResponse) {
	httpStatus, code, msg := classify(err)

	return httpStatus, ErrorResponse{
		Error: APIError{
			Code:    code,
			Message: msg,
		},
	}
}

// WriteError — хелпер для HTTP-хендлеров.
// Пишет корректный статус/тело, добавляет request_id из заголовка, если он есть.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	status, resp := ToHTTP(err)

	if rid := r.Header.Get("X-Request-Id"); rid != "" {
		resp.Error.RequestID = rid
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(resp)
}

func classify(err error) (int, string, string) {
	switch {
	case err == nil:
		return http.StatusInternalServerError, "internal", "internal error"
	case errors.Is(err, service.ErrFetchFailed):
		return http.StatusBadGateway, "fetch_failed", fetchMessage(err)
	case errors.Is(err, service.ErrLoadMoreInFlight):
		return http.StatusConflict, "load_in_flight", "load more already in flight"
	case errors.Is(err, service.ErrNotFound):
		return http.StatusNotFound, "not_found", "not found"
	case errors.Is(err, service.ErrInvalidCursor):
		return http.StatusBadRequest, "invalid_argument", "invalid page_token"
	case errors.Is(err, service.ErrInvalidArgument):
		return http.StatusBadRequest, "invalid_argument", "invalid argument"
	case errors.Is(err, context.Canceled):
		return StatusClientClosedRequest, "canceled", "canceled"
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, "deadline_exceeded", "deadline exceeded"
	default:
		return http.StatusInternalServerError, "internal", "internal error"
	}
}

// fetchMessage — короткая причина неудачной загрузки для баннера.
func fetchMessage(err error) string {
	switch {
	case errors.Is(err, service.ErrMalformedResponse):
		return "fetch failed: malformed response"
	case errors.Is(err, context.DeadlineExceeded):
		return "fetch failed: timeout"
	case errors.Is(err, service.ErrNetwork):
		return "fetch failed: network error"
	default:
		return "fetch failed"
	}
}
