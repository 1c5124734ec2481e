package preprocess

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsLikelyEnglish(t *testing.T) {
	testCases := []struct {
		name string
		text string
		want bool
	}{
		{name: "plain english", text: "This movie was absolutely great", want: true},
		{name: "empty", text: "", want: false},
		{name: "whitespace only", text: "   \n\t", want: false},
		{name: "thai", text: "หนังเรื่องนี้สนุกมาก ดูแล้วประทับใจ", want: false},
		{name: "russian", text: "Этот фильм был просто великолепен", want: false},
		{name: "mostly digits and punctuation", text: "10/10 !!! 5*5 ... ####", want: false},
		{name: "english with a few emoji", text: "Loved it so much, best film of the year 🎬", want: true},
		// 비라틴 문자 비율이 0.2 이하이면 통과한다.
		{name: "accented text under the non-latin limit", text: "Bonjour tout le monde, ça va très bien", want: true},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			assert.Equal(t, testCase.want, IsLikelyEnglish(testCase.text))
		})
	}
}

func TestClean(t *testing.T) {
	testCases := []struct {
		name string
		in   string
		want string
	}{
		{name: "empty", in: "", want: ""},
		{name: "collapses whitespace", in: "Great  movie\n\nwith   a\tgood cast", want: "Great movie with a good cast"},
		{name: "markdown emphasis", in: "**Great** movie, _really_", want: "Great movie, really"},
		{name: "markdown link keeps text", in: "Read [my review](https://example.com/review) here", want: "Read my review here"},
		{name: "paragraphs joined", in: "First part.\n\nSecond part.", want: "First part. Second part."},
		{name: "bare url kept", in: "Loved it! www.imdb.com/xy", want: "Loved it! www.imdb.com/xy"},
		{name: "scheme url kept", in: "Full text at https://example.com/x ok", want: "Full text at https://example.com/x ok"},
		{name: "heart emoticon kept", in: "Great cast <3 would watch again", want: "Great cast <3 would watch again"},
		{name: "angle bracket aside kept", in: "Rating 7/10 <but the ending dragged on too long> overall fine", want: "Rating 7/10 <but the ending dragged on too long> overall fine"},
		{name: "entities decoded", in: "Tom &amp; Jerry don&#39;t disappoint", want: "Tom & Jerry don't disappoint"},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			assert.Equal(t, testCase.want, Clean(testCase.in))
		})
	}
}

func TestRuneLen(t *testing.T) {
	assert.Equal(t, 5, RuneLen("héllo"))
	assert.Equal(t, 0, RuneLen(""))
}
