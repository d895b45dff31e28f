package tokenizer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func collectCodePoints(t *testing.T, in string) string {
	t.Helper()
	s := NewInputStream(strings.NewReader(in), nil)
	var b strings.Builder
	for {
		item := s.Next()
		if item.EOF {
			break
		}
		b.WriteRune(item.CodePoint)
	}
	require.NoError(t, s.Err())
	return b.String()
}

type newlineCase struct {
	name string
	in   string
	want string
}

var newlineCases = []newlineCase{
	{"mixed CR, CRLF, and LF collapse to LF", "a\rb\r\nc\nd", "a\nb\nc\nd"},
	{"back-to-back CR at end of input", "\r\r", "\n\n"},
	{"CRLF split across nothing special", "x\r\ny", "x\ny"},
	{"no newlines at all", "plain", "plain"},
}

func TestNewlineNormalization(t *testing.T) {
	for _, tc := range newlineCases {
		runNewlineCase(tc, t)
	}
}

func runNewlineCase(tc newlineCase, t *testing.T) {
	t.Run(tc.name, func(t *testing.T) {
		t.Parallel()
		require.Equal(t, tc.want, collectCodePoints(t, tc.in))
	})
}

type invalidUTF8Case struct {
	name      string
	in        string
	wantItems []rune
	wantErrs  int
}

var invalidUTF8Cases = []invalidUTF8Case{
	{"lead byte with a non-continuation byte following", "a\xC2\x20b",
		[]rune{'a', 0xFFFD, ' ', 'b'}, 1},
	{"lone continuation byte", "\x80", []rune{0xFFFD}, 1},
	{"truncated multi-byte sequence at EOF", "\xE2\x82", []rune{0xFFFD}, 1},
}

func TestInvalidUTF8Replacement(t *testing.T) {
	for _, tc := range invalidUTF8Cases {
		runInvalidUTF8Case(tc, t)
	}
}

func runInvalidUTF8Case(tc invalidUTF8Case, t *testing.T) {
	t.Run(tc.name, func(t *testing.T) {
		t.Parallel()
		errs := &CollectingErrorSink{}
		s := NewInputStream(strings.NewReader(tc.in), errs)
		for _, want := range tc.wantItems {
			require.Equal(t, want, s.Next().CodePoint)
		}
		require.True(t, s.Next().EOF)
		require.Len(t, errs.Errors, tc.wantErrs)
		for _, e := range errs.Errors {
			require.Equal(t, InvalidUTF8, e.Kind)
		}
	})
}

func TestEOFIsIdempotent(t *testing.T) {
	s := NewInputStream(strings.NewReader(""), nil)
	first := s.Next()
	second := s.Next()
	require.True(t, first.EOF)
	require.True(t, second.EOF)
}

func TestReconsumeAllPreservesOrder(t *testing.T) {
	s := NewInputStream(strings.NewReader("z"), nil)
	items := []InputItem{{CodePoint: 'a'}, {CodePoint: 'b'}, {CodePoint: 'c'}}
	s.ReconsumeAll(items)
	require.Equal(t, 'a', s.Next().CodePoint)
	require.Equal(t, 'b', s.Next().CodePoint)
	require.Equal(t, 'c', s.Next().CodePoint)
	require.Equal(t, 'z', s.Next().CodePoint)
}
