package parser

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"devconsole/pkg/contypes"
)

func TestTokenize_Basic(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []contypes.Token
	}{
		{
			name:  "single word",
			input: "help",
			want:  []contypes.Token{{Text: "help"}},
		},
		{
			name:  "multiple words",
			input: "set_volume 5",
			want:  []contypes.Token{{Text: "set_volume"}, {Text: "5"}},
		},
		{
			name:  "collapses runs of whitespace",
			input: "  a \t b  ",
			want:  []contypes.Token{{Text: "a"}, {Text: "b"}},
		},
		{
			name:  "double quotes group whitespace",
			input: `say "hello world"`,
			want:  []contypes.Token{{Text: "say"}, {Text: "hello world", Quoted: true}},
		},
		{
			name:  "single quotes group whitespace",
			input: "say 'hello world'",
			want:  []contypes.Token{{Text: "say"}, {Text: "hello world", Quoted: true}},
		},
		{
			name:  "empty quoted token survives",
			input: `set name ""`,
			want:  []contypes.Token{{Text: "set"}, {Text: "name"}, {Text: "", Quoted: true}},
		},
		{
			name:  "backslash escapes space outside quotes",
			input: `open my\ file`,
			want:  []contypes.Token{{Text: "open"}, {Text: "my file"}},
		},
		{
			name:  "backslash escapes quote inside double quotes",
			input: `say "a \"b\" c"`,
			want:  []contypes.Token{{Text: "say"}, {Text: `a "b" c`, Quoted: true}},
		},
		{
			name:  "adjacent quoted and bare text concatenate",
			input: `foo"bar"baz`,
			want:  []contypes.Token{{Text: "foobarbaz", Quoted: true}},
		},
		{
			name:  "backslash inside single quotes is literal",
			input: `say 'a\b'`,
			want:  []contypes.Token{{Text: "say"}, {Text: `a\b`, Quoted: true}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Tokenize(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTokenize_EmptyInput(t *testing.T) {
	for _, input := range []string{"", "   ", "\t", " \t \n"} {
		tokens, err := Tokenize(input)
		require.NoError(t, err)
		assert.Empty(t, tokens)
	}
}

func TestTokenize_UnterminatedQuote(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"open double quote", `say "hello`},
		{"open single quote", `say 'hello`},
		{"escape at end of double quote", `say "hello\`},
		{"lone quote", `"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, err := Tokenize(tt.input)
			require.ErrorIs(t, err, ErrUnterminatedQuote)
			assert.Nil(t, tokens, "a failed tokenize must not return partial tokens")
		})
	}
}

func TestTokenize_TrailingBackslash(t *testing.T) {
	tokens, err := Tokenize(`say hello\`)
	require.ErrorIs(t, err, ErrTrailingBackslash)
	assert.Nil(t, tokens)
}

// Rejoining well-quoted input with single spaces and tokenizing again must
// produce the same token texts.
func TestTokenize_RejoinRoundTrip(t *testing.T) {
	inputs := []string{
		"help",
		"set_volume   5",
		"spawn enemy --count 3",
	}

	for _, input := range inputs {
		first, err := Tokenize(input)
		require.NoError(t, err)

		texts := make([]string, len(first))
		for i, tok := range first {
			texts[i] = tok.Text
		}

		second, err := Tokenize(strings.Join(texts, " "))
		require.NoError(t, err)
		assert.Equal(t, first, second)
	}
}
