package insight

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatContent(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "markdown strikethrough unwrapped",
			in:   "Un point ~~barré~~ important",
			want: "Un point barré important",
		},
		{
			name: "html strike tags removed",
			in:   "Avant <s>milieu</s> et <del>fin</del>",
			want: "Avant milieu et fin",
		},
		{
			name: "html tags case insensitive",
			in:   "<S>a</S> <DEL>b</DEL>",
			want: "a b",
		},
		{
			name: "crlf normalized",
			in:   "ligne une\r\nligne deux\r\n",
			want: "ligne une\nligne deux",
		},
		{
			name: "bold markers kept",
			in:   "**Points forts**\n\nTexte.",
			want: "**Points forts**\n\nTexte.",
		},
		{
			name: "surrounding whitespace trimmed",
			in:   "\n\n  rapport  \n",
			want: "rapport",
		},
		{
			name: "multiple strikes on one line",
			in:   "~~un~~ et ~~deux~~",
			want: "un et deux",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, FormatContent(tc.in))
		})
	}
}
