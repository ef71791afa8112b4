package tumblr

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/pribylovaa/go-photo-feed/internal/models"
	"github.com/pribylovaa/go-photo-feed/internal/service"
	"github.com/pribylovaa/go-photo-feed/pkg/log"
	"github.com/pribylovaa/go-photo-feed/pkg/redact"
)

// maxBodyBytes — предел размера тела ответа.
const maxBodyBytes int64 = 8 << 20

// Client реализует service.PageSource для одного блога Tumblr.
// HTTP-клиент настраивается извне (таймауты, прокси и т.д.).
type Client struct {
	client  *http.Client
	baseURL string
	apiKey  string
	limit   int
	maxBody int64
}

var _ service.PageSource = (*Client)(nil)

// New создаёт клиент. limit <= 0 — параметр limit в запрос не передаётся.
func New(client *http.Client, baseURL, apiKey string, limit int) *Client {
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}

	return &Client{
		client:  client,
		baseURL: baseURL,
		apiKey:  apiKey,
		limit:   limit,
		maxBody: maxBodyBytes,
	}
}

// FetchPosts запрашивает одну страницу фото-постов.
//
// Ошибки:
//   - service.ErrNetwork — транспорт, отмена ctx, не-2xx статус
//     или не-2xx meta.status в теле;
//   - service.ErrMalformedResponse — тело не JSON, больше maxBody
//     или нет response/posts.
func (c *Client) FetchPosts(ctx context.Context, q models.PageQuery) ([]models.Post, error) {
	const op = "tumblr.FetchPosts"

	lg := log.From(ctx)

	target, err := c.pageURL(q)
	if err != nil {
		return nil, fmt.Errorf("%s: build_url: %w", op, err)
	}
	safe := redact.URL(target)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("%s: new_request: %s", op, redact.Error(err, c.apiKey))
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		msg := redact.Error(err, c.apiKey)
		lg.Warn("http_error",
			slog.String("op", op),
			slog.String("url", safe),
			slog.String("err", msg),
		)

		// Текст *url.Error содержит ключ, поэтому наверх уходит только
		// очищенное сообщение и признак таймаута/отмены.
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, fmt.Errorf("%s: do: %s: %w: %w", op, msg, service.ErrNetwork, ctxErr)
		}

		return nil, fmt.Errorf("%s: do: %s: %w", op, msg, service.ErrNetwork)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, resp.Body)
		lg.Warn("http_status",
			slog.String("op", op),
			slog.String("url", safe),
			slog.Int("status", resp.StatusCode),
		)
		return nil, fmt.Errorf("%s: status=%d: %w", op, resp.StatusCode, service.ErrNetwork)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBody+1))
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, fmt.Errorf("%s: read: %w: %w", op, service.ErrNetwork, ctxErr)
		}
		return nil, fmt.Errorf("%s: read: %s: %w", op, redact.Error(err, c.apiKey), service.ErrNetwork)
	}
	if int64(len(body)) > c.maxBody {
		lg.Warn("body_too_large",
			slog.String("op", op),
			slog.String("url", safe),
			slog.Int64("limit", c.maxBody),
		)
		return nil, fmt.Errorf("%s: body exceeds %d bytes: %w", op, c.maxBody, service.ErrMalformedResponse)
	}

	var doc envelope
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, fmt.Errorf("%s: decode: %w: %s", op, service.ErrMalformedResponse, err.Error())
	}

	// Tumblr дублирует статус в meta; ошибка в теле при 200 — тоже сбой запроса.
	if doc.Meta != nil && doc.Meta.Status != 0 && (doc.Meta.Status < 200 || doc.Meta.Status > 299) {
		lg.Warn("meta_status",
			slog.String("op", op),
			slog.String("url", safe),
			slog.Int("status", doc.Meta.Status),
			slog.String("msg", doc.Meta.Msg),
		)
		return nil, fmt.Errorf("%s: meta_status=%d: %w", op, doc.Meta.Status, service.ErrNetwork)
	}

	if doc.Response == nil {
		return nil, fmt.Errorf("%s: missing response: %w", op, service.ErrMalformedResponse)
	}
	if doc.Response.Posts == nil {
		return nil, fmt.Errorf("%s: missing posts: %w", op, service.ErrMalformedResponse)
	}

	raw := *doc.Response.Posts
	output := make([]models.Post, 0, len(raw))
	for i, p := range raw {
		summary, err := models.DisplaySummary(p.Summary)
		if err != nil {
			lg.Warn("summary_empty",
				slog.String("op", op),
				slog.Int("index", i),
				slog.Int64("post_id", p.ID),
			)
		}

		output = append(output, models.Post{
			ID:         p.ID,
			PostURL:    p.PostURL,
			RawSummary: p.Summary,
			Summary:    summary,
			Photos:     convertPhotos(p.Photos),
		})
	}

	lg.Debug("page_fetched",
		slog.String("op", op),
		slog.String("url", safe),
		slog.Int("posts", len(output)),
	)

	return output, nil
}

// pageURL собирает {base}?api_key=...[&offset=n][&limit=n].
// Существующие query-параметры base сохраняются.
func (c *Client) pageURL(q models.PageQuery) (string, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return "", err
	}

	v := u.Query()
	v.Set("api_key", c.apiKey)
	if q.UseOffset {
		v.Set("offset", strconv.Itoa(q.Offset))
	}
	if c.limit > 0 {
		v.Set("limit", strconv.Itoa(c.limit))
	}
	u.RawQuery = v.Encode()

	return u.String(), nil
}

// convertPhotos переносит фотографии в порядке источника.
// Фото без original_size сохраняется с пустым URL.
func convertPhotos(in []photo) []models.Photo {
	if len(in) == 0 {
		return nil
	}

	out := make([]models.Photo, 0, len(in))
	for _, ph := range in {
		var p models.Photo
		if ph.OriginalSize != nil {
			p = models.Photo{
				OriginalURL: ph.OriginalSize.URL,
				Width:       ph.OriginalSize.Width,
				Height:      ph.OriginalSize.Height,
			}
		}
		out = append(out, p)
	}

	return out
}
