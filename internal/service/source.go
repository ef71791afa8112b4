package service

import (
	"context"

	"github.com/pribylovaa/go-photo-feed/internal/models"
)

// PageSource описывает удалённый постраничный источник постов.
//
// Требования к реализации:
// 1) при q.UseOffset == false параметр offset в запрос не передаётся;
// 2) ошибки транспорта и не-2xx ответы оборачиваются в ErrNetwork,
// несоответствие JSON-формы — в ErrMalformedResponse;
// 3) пост без фотографий или без original_size.url — не ошибка,
// он возвращается с пустым OriginalURL;
// 4) реализация обязана уважать ctx (отмена/таймауты).
type PageSource interface {
	FetchPosts(ctx context.Context, q models.PageQuery) ([]models.Post, error)
}
