// models содержит доменные сущности photofeed-service.
// Эти типы используются слоями бизнес-логики, клиента Tumblr, хранилища и транспорта.
package models

import (
	"errors"
	"unicode/utf8"
)

// ErrEmptySummary — summary нулевой длины: нарушение входного контракта,
// у каждого поста Tumblr ожидается хотя бы маркер перед текстом.
var ErrEmptySummary = errors.New("empty summary")

// Photo — одна фотография поста.
type Photo struct {
	// OriginalURL — URL оригинального размера; пустая строка — изображения нет.
	OriginalURL string
	// Width/Height — размеры оригинала, если источник их сообщил.
	Width  int
	Height int
}

// Post — элемент ленты. Неизменяем после загрузки.
//
// Идентичность позиционная (индекс в ленте); ID и PostURL переносятся
// из ответа как есть и для дедупликации не используются.
type Post struct {
	// ID — числовой идентификатор у источника (0, если не пришёл).
	ID int64
	// PostURL — ссылка на пост у источника.
	PostURL string
	// RawSummary — summary в том виде, как его отдал источник.
	RawSummary string
	// Summary — текст для отображения (RawSummary без первого символа).
	Summary string
	// Photos — фотографии в порядке источника, может быть пустым.
	Photos []Photo
}

// ImageURL возвращает URL первой фотографии поста.
// ok=false, если фотографий нет или у первой нет URL: такой пост
// пропускается при отрисовке изображения.
func (p Post) ImageURL() (string, bool) {
	if len(p.Photos) == 0 {
		return "", false
	}

	u := p.Photos[0].OriginalURL
	if u == "" {
		return "", false
	}

	return u, true
}

// DisplaySummary отбрасывает ровно один ведущий символ (руну) summary:
// "#hello" -> "hello", "#" -> "".
// Пустая строка — нарушение контракта, возвращается ErrEmptySummary.
func DisplaySummary(raw string) (string, error) {
	if raw == "" {
		return "", ErrEmptySummary
	}

	_, size := utf8.DecodeRuneInString(raw)
	return raw[size:], nil
}
