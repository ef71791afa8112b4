// redact маскирует секреты перед записью в логи и журнал.
// Единственный секрет сервиса — api_key Tumblr, который уходит в query string.
package redact

import (
	"net/url"
	"strings"
)

// Placeholder подставляется вместо секрета.
const Placeholder = "REDACTED"

// secretParams — имена query-параметров, значения которых нельзя логировать.
var secretParams = []string{"api_key", "oauth_token", "token"}

// APIKey маскирует ключ, оставляя первые четыре символа для отладки.
//
// Примеры:
//
//	"Q6vHoaVm5L1u" -> "Q6vH***"
//	"abc"          -> "***"
//	""             -> ""
func APIKey(s string) string {
	if s == "" {
		return ""
	}

	r := []rune(s)
	if len(r) <= 4 {
		return "***"
	}

	return string(r[:4]) + "***"
}

// URL возвращает строковое представление URL без значений секретных параметров.
// Строка, которая не парсится как URL, заменяется целиком.
func URL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return Placeholder
	}

	q := u.Query()
	changed := false
	for k := range q {
		if isSecret(k) {
			q.Set(k, Placeholder)
			changed = true
		}
	}

	if !changed {
		return u.String()
	}

	u.RawQuery = q.Encode()
	return u.String()
}

// Error убирает из текста ошибки значения секретных параметров.
// net/http включает полный URL запроса в *url.Error, поэтому ключ
// иначе попадает в логи вместе с текстом ошибки.
func Error(err error, secrets ...string) string {
	if err == nil {
		return ""
	}

	msg := err.Error()
	for _, s := range secrets {
		if s == "" {
			continue
		}
		msg = strings.ReplaceAll(msg, s, Placeholder)
		msg = strings.ReplaceAll(msg, url.QueryEscape(s), Placeholder)
	}

	return msg
}

func isSecret(param string) bool {
	p := strings.ToLower(param)
	for _, s := range secretParams {
		if p == s {
			return true
		}
	}

	return false
}
