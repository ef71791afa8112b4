// tumblr - реализует service.PageSource поверх Tumblr API v2 (posts/photo).
package tumblr

// envelope - корневой объект ответа API.
//
// Response и Posts — указатели: отсутствие поля отличается от пустого значения,
// и отсутствие считается нарушением формы ответа.
type envelope struct {
	Meta     *meta     `json:"meta"`
	Response *response `json:"response"`
}

// meta - статус ответа, который Tumblr дублирует в теле.
type meta struct {
	Status int    `json:"status"`
	Msg    string `json:"msg"`
}

type response struct {
	Posts *[]post `json:"posts"`
}

// post описывает один фото-пост.
type post struct {
	ID      int64  `json:"id"`
	PostURL string `json:"post_url"`
	// Summary начинается со служебного символа, который отбрасывается при отображении.
	Summary string  `json:"summary"`
	Photos  []photo `json:"photos"`
}

type photo struct {
	OriginalSize *size `json:"original_size"`
}

type size struct {
	URL    string `json:"url"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}
