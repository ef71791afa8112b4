package handlers

import (
	"github.com/pribylovaa/go-photo-feed/internal/models"
)

// Post — элемент ленты в ответе API.
type Post struct {
	Index    int    `json:"index"`
	ID       int64  `json:"id,omitempty"`
	PostURL  string `json:"post_url,omitempty"`
	Summary  string `json:"summary"`
	ImageURL string `json:"image_url,omitempty"`
	HasImage bool   `json:"has_image"`
}

type Photo struct {
	URL    string `json:"url"`
	Width  int    `json:"width,omitempty"`
	Height int    `json:"height,omitempty"`
}

// PostDetail — выбранный пост: изображение передаётся как есть.
type PostDetail struct {
	Post
	Photos []Photo `json:"photos"`
}

// Feed — снимок ленты.
type Feed struct {
	Posts     []Post `json:"posts"`
	Offset    int    `json:"offset"`
	InFlight  bool   `json:"in_flight"`
	LastError string `json:"last_error,omitempty"`
	UpdatedAt int64  `json:"updated_at,omitempty"` // Unix UTC
	// Trigger заполняется в ответах на Refresh/LoadMore.
	Trigger string `json:"trigger,omitempty"`
}

type Fetch struct {
	ID         string `json:"id"`
	Trigger    string `json:"trigger"`
	Offset     *int   `json:"offset"`
	PageLen    int    `json:"page_len"`
	FeedLen    int    `json:"feed_len"`
	Outcome    string `json:"outcome"`
	Error      string `json:"error,omitempty"`
	StartedAt  int64  `json:"started_at"`  // Unix UTC
	FinishedAt int64  `json:"finished_at"` // Unix UTC
	DurationMS int64  `json:"duration_ms"`
}

type FetchListResponse struct {
	Items         []Fetch `json:"items"`
	NextPageToken string  `json:"next_page_token"`
}

func postView(index int, p models.Post) Post {
	u, ok := p.ImageURL()

	return Post{
		Index:    index,
		ID:       p.ID,
		PostURL:  p.PostURL,
		Summary:  p.Summary,
		ImageURL: u,
		HasImage: ok,
	}
}

func postDetailView(index int, p models.Post) PostDetail {
	photos := make([]Photo, 0, len(p.Photos))
	for _, ph := range p.Photos {
		if ph.OriginalURL == "" {
			continue
		}
		photos = append(photos, Photo{URL: ph.OriginalURL, Width: ph.Width, Height: ph.Height})
	}

	return PostDetail{Post: postView(index, p), Photos: photos}
}

func feedView(s models.FeedState) Feed {
	posts := make([]Post, 0, len(s.Posts))
	for i, p := range s.Posts {
		posts = append(posts, postView(i, p))
	}

	f := Feed{
		Posts:     posts,
		Offset:    s.Offset,
		InFlight:  s.InFlight,
		LastError: s.LastError,
	}
	if !s.UpdatedAt.IsZero() {
		f.UpdatedAt = s.UpdatedAt.Unix()
	}

	return f
}

func fetchView(r models.FetchRecord) Fetch {
	return Fetch{
		ID:         r.ID.String(),
		Trigger:    r.Trigger.String(),
		Offset:     r.Offset,
		PageLen:    r.PageLen,
		FeedLen:    r.FeedLen,
		Outcome:    r.Outcome,
		Error:      r.Error,
		StartedAt:  r.StartedAt.Unix(),
		FinishedAt: r.FinishedAt.Unix(),
		DurationMS: r.FinishedAt.Sub(r.StartedAt).Milliseconds(),
	}
}
