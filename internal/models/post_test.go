package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDisplaySummary(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		in   string
		want string
	}{
		{"marker", "#hello", "hello"},
		{"single_char", "#", ""},
		{"drops_exactly_one", "##tag", "#tag"},
		{"multibyte_marker", "«quote", "quote"},
		{"leading_space", " text", "text"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := DisplaySummary(tc.in)
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestDisplaySummary_Empty_IsContractViolation(t *testing.T) {
	t.Parallel()

	got, err := DisplaySummary("")
	require.ErrorIs(t, err, ErrEmptySummary)
	require.Equal(t, "", got)
}

func TestPost_ImageURL(t *testing.T) {
	t.Parallel()

	u, ok := Post{Photos: []Photo{{OriginalURL: "https://cdn/a.jpg"}, {OriginalURL: "https://cdn/b.jpg"}}}.ImageURL()
	require.True(t, ok)
	require.Equal(t, "https://cdn/a.jpg", u)

	_, ok = Post{}.ImageURL()
	require.False(t, ok, "пустой набор фото — пропуск изображения")

	_, ok = Post{Photos: []Photo{{}}}.ImageURL()
	require.False(t, ok, "original_size.url отсутствует — пропуск изображения")
}

func TestTrigger_StringParseRoundTrip(t *testing.T) {
	t.Parallel()

	for _, tr := range []Trigger{TriggerInitial, TriggerRefresh, TriggerLoadMore} {
		require.True(t, tr.Valid())
		got, err := ParseTrigger(tr.String())
		require.NoError(t, err)
		require.Equal(t, tr, got)
	}

	require.False(t, Trigger(0).Valid())
	require.Equal(t, "trigger(9)", Trigger(9).String())

	_, err := ParseTrigger("scroll")
	require.Error(t, err)
}
