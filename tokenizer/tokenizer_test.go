package tokenizer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// sliceSink collects every emitted token in order for assertion.
type sliceSink struct {
	tokens []Token
}

func (s *sliceSink) Accept(tok Token) error {
	s.tokens = append(s.tokens, tok)
	return nil
}

func runTokenizer(t *testing.T, input string) ([]Token, *CollectingErrorSink) {
	t.Helper()
	sink := &sliceSink{}
	errs := &CollectingErrorSink{}
	tok := New(strings.NewReader(input), sink, Options{ErrorSink: errs})
	require.NoError(t, tok.Run())
	return sink.tokens, errs
}

func runTokenizerOpts(t *testing.T, input string, opts Options) ([]Token, *CollectingErrorSink) {
	t.Helper()
	sink := &sliceSink{}
	errs := &CollectingErrorSink{}
	opts.ErrorSink = errs
	tok := New(strings.NewReader(input), sink, opts)
	require.NoError(t, tok.Run())
	return sink.tokens, errs
}

func attrMap(tok Token) map[string]string {
	m := make(map[string]string, len(tok.Attributes))
	for _, a := range tok.Attributes {
		m[a.Name] = a.Value
	}
	return m
}

func charString(tokens []Token) string {
	var b strings.Builder
	for _, tok := range tokens {
		if tok.Type == CharacterToken {
			b.WriteRune(tok.CodePoint)
		}
	}
	return b.String()
}

// boundaryCase is one input/expectation pair covering a documented
// boundary scenario or edge case; run through the tokenizer end to
// end and checked against the resulting token and error streams.
type boundaryCase struct {
	name  string
	in    string
	opts  Options
	check func(t *testing.T, tokens []Token, errs *CollectingErrorSink)
}

var boundaryCases = []boundaryCase{
	{"doctype simple", "<!DOCTYPE html>", Options{}, func(t *testing.T, tokens []Token, errs *CollectingErrorSink) {
		require.Empty(t, errs.Errors)
		require.Len(t, tokens, 2)
		require.Equal(t, DoctypeToken, tokens[0].Type)
		require.Equal(t, "html", tokens[0].DoctypeName)
		require.Nil(t, tokens[0].PublicID)
		require.Nil(t, tokens[0].SystemID)
		require.False(t, tokens[0].ForceQuirks)
		require.Equal(t, EndOfFileToken, tokens[1].Type)
	}},
	{"doctype with public and system identifiers",
		`<!DOCTYPE html PUBLIC "-//W3C//DTD HTML 4.01//EN" "http://www.w3.org/TR/html4/strict.dtd">`,
		Options{}, func(t *testing.T, tokens []Token, errs *CollectingErrorSink) {
			require.Empty(t, errs.Errors)
			require.Equal(t, "html", tokens[0].DoctypeName)
			require.NotNil(t, tokens[0].PublicID)
			require.Equal(t, "-//W3C//DTD HTML 4.01//EN", *tokens[0].PublicID)
			require.NotNil(t, tokens[0].SystemID)
			require.Equal(t, "http://www.w3.org/TR/html4/strict.dtd", *tokens[0].SystemID)
		}},
	{"doctype after-name mismatch replays as bogus doctype", "<!DOCTYPE html PUBFOO>", Options{},
		func(t *testing.T, tokens []Token, errs *CollectingErrorSink) {
			require.NotEmpty(t, errs.Errors)
			require.Equal(t, InvalidCharacterSequenceAfterDoctypeName, errs.Errors[0].Kind)
			require.Equal(t, DoctypeToken, tokens[0].Type)
			require.True(t, tokens[0].ForceQuirks)
		}},
	{"doctype after-name mismatch on the closing delimiter doesn't double-dispatch",
		"<!DOCTYPE html SYST>", Options{},
		func(t *testing.T, tokens []Token, errs *CollectingErrorSink) {
			require.NotEmpty(t, errs.Errors)
			require.Equal(t, InvalidCharacterSequenceAfterDoctypeName, errs.Errors[0].Kind)
			require.Len(t, tokens, 2)
			require.Equal(t, DoctypeToken, tokens[0].Type)
			require.Equal(t, "html", tokens[0].DoctypeName)
			require.True(t, tokens[0].ForceQuirks)
			require.Equal(t, EndOfFileToken, tokens[1].Type)
		}},
	{"paragraph with entity expansion", `<p class='x'>a&amp;b</p>`, Options{},
		func(t *testing.T, tokens []Token, errs *CollectingErrorSink) {
			require.Empty(t, errs.Errors)
			require.Equal(t, StartTagToken, tokens[0].Type)
			require.Equal(t, "p", tokens[0].TagName)
			require.False(t, tokens[0].SelfClosing)
			require.Equal(t, map[string]string{"class": "x"}, attrMap(tokens[0]))
			require.Equal(t, "a&b", charString(tokens[1:len(tokens)-2]))
			require.Equal(t, EndTagToken, tokens[len(tokens)-2].Type)
			require.Equal(t, "p", tokens[len(tokens)-2].TagName)
			require.Equal(t, EndOfFileToken, tokens[len(tokens)-1].Type)
		}},
	{"attribute value ambiguous ampersand is not expanded", `<a href="?x=1&foo=2">`, Options{},
		func(t *testing.T, tokens []Token, errs *CollectingErrorSink) {
			require.Equal(t, StartTagToken, tokens[0].Type)
			require.Equal(t, "?x=1&foo=2", attrMap(tokens[0])["href"])
		}},
	{"empty comment", "<!---->", Options{}, func(t *testing.T, tokens []Token, errs *CollectingErrorSink) {
		require.Empty(t, errs.Errors)
		require.Equal(t, CommentToken, tokens[0].Type)
		require.Equal(t, "", tokens[0].CommentData)
	}},
	{"abruptly closed empty comment", "<!--->", Options{}, func(t *testing.T, tokens []Token, errs *CollectingErrorSink) {
		require.Equal(t, CommentToken, tokens[0].Type)
		require.Equal(t, "", tokens[0].CommentData)
		require.Len(t, errs.Errors, 1)
		require.Equal(t, AbruptClosingOfEmptyComment, errs.Errors[0].Kind)
	}},
	{"bogus comment from unexpected question mark", `<?xml version="1.0"?>`, Options{},
		func(t *testing.T, tokens []Token, errs *CollectingErrorSink) {
			require.Len(t, errs.Errors, 1)
			require.Equal(t, UnexpectedQuestionMarkInsteadOfTagName, errs.Errors[0].Kind)
			require.Equal(t, CommentToken, tokens[0].Type)
			require.Equal(t, `?xml version="1.0"?`, tokens[0].CommentData)
		}},
	{"self-closing start tag", "<img/>", Options{}, func(t *testing.T, tokens []Token, errs *CollectingErrorSink) {
		require.Empty(t, errs.Errors)
		require.Equal(t, StartTagToken, tokens[0].Type)
		require.Equal(t, "img", tokens[0].TagName)
		require.True(t, tokens[0].SelfClosing)
	}},
	{"literal less-than inside script body", `<script>var s = "<"; </script>`, Options{},
		func(t *testing.T, tokens []Token, errs *CollectingErrorSink) {
			// The tokenizer stays in the data state after <script>
			// (switching to script data is the tree builder's job),
			// so `<"` is reported as a bad tag-name start.
			require.Len(t, errs.Errors, 1)
			require.Equal(t, InvalidFirstCharacterOfTagName, errs.Errors[0].Kind)
			require.Equal(t, StartTagToken, tokens[0].Type)
			require.Equal(t, "script", tokens[0].TagName)
			require.Equal(t, `var s = "<"; `, charString(tokens[1:len(tokens)-2]))
			require.Equal(t, EndTagToken, tokens[len(tokens)-2].Type)
			require.Equal(t, "script", tokens[len(tokens)-2].TagName)
		}},
	{"decimal numeric reference", "&#9731;", Options{}, func(t *testing.T, tokens []Token, errs *CollectingErrorSink) {
		require.Empty(t, errs.Errors)
		require.Len(t, tokens, 2)
		require.Equal(t, CharacterToken, tokens[0].Type)
		require.Equal(t, rune(0x2603), tokens[0].CodePoint)
		require.Equal(t, EndOfFileToken, tokens[1].Type)
	}},
	{"hexadecimal numeric reference beyond the BMP", "&#x1D538;", Options{},
		func(t *testing.T, tokens []Token, errs *CollectingErrorSink) {
			require.Empty(t, errs.Errors)
			require.Equal(t, CharacterToken, tokens[0].Type)
			require.Equal(t, rune(0x1D538), tokens[0].CodePoint)
		}},
	{"windows-1252 remap for a C1-range numeric reference", "&#128;", Options{},
		func(t *testing.T, tokens []Token, errs *CollectingErrorSink) {
			require.Equal(t, CharacterToken, tokens[0].Type)
			require.Equal(t, rune(0x20AC), tokens[0].CodePoint)
			require.Len(t, errs.Errors, 1)
			require.Equal(t, ControlCharacterReference, errs.Errors[0].Kind)
		}},
	{"named character reference longest match", "&notin;", Options{},
		func(t *testing.T, tokens []Token, errs *CollectingErrorSink) {
			require.Empty(t, errs.Errors)
			require.Len(t, tokens, 2)
			require.Equal(t, rune(0x2209), tokens[0].CodePoint)
		}},
	{"named character reference overshoot backtracks", "&notinX", Options{},
		func(t *testing.T, tokens []Token, errs *CollectingErrorSink) {
			require.NotEmpty(t, errs.Errors)
			require.Equal(t, "¬inX", charString(tokens))
		}},
	{"unknown entity passes through literally", "&bogusEntity;", Options{},
		func(t *testing.T, tokens []Token, errs *CollectingErrorSink) {
			require.Len(t, errs.Errors, 1)
			require.Equal(t, UnknownNamedCharacterReference, errs.Errors[0].Kind)
			require.Equal(t, "&bogusEntity;", charString(tokens))
		}},
	{"duplicate attribute dropped, first occurrence wins", `<script src='123' src='456'></script>`, Options{},
		func(t *testing.T, tokens []Token, errs *CollectingErrorSink) {
			require.Equal(t, "123", attrMap(tokens[0])["src"])
			require.Len(t, tokens[0].Attributes, 1)
			require.Len(t, errs.Errors, 1)
			require.Equal(t, DuplicateAttribute, errs.Errors[0].Kind)
		}},
	{"tag name lowercased regardless of source casing", `<ScRiPt ABC=123></ScRiPt>`, Options{},
		func(t *testing.T, tokens []Token, errs *CollectingErrorSink) {
			require.Equal(t, "script", tokens[0].TagName)
			require.Equal(t, "123", attrMap(tokens[0])["abc"])
		}},
	{"stray greater-than in data passes through literally", "a > b", Options{},
		func(t *testing.T, tokens []Token, errs *CollectingErrorSink) {
			require.Empty(t, errs.Errors)
			require.Equal(t, "a > b", charString(tokens))
		}},
	{"null character in RCDATA replaced with U+FFFD", "<title>a\x00b</title>", Options{InitialState: stateRCDATA},
		func(t *testing.T, tokens []Token, errs *CollectingErrorSink) {
			// Starting in RCDATA, the tags are text too: no start tag
			// was emitted, so </title> is not an appropriate end tag.
			require.Len(t, errs.Errors, 1)
			require.Equal(t, UnexpectedNullCharacter, errs.Errors[0].Kind)
			require.Equal(t, "<title>a�b</title>", charString(tokens))
		}},
	{"CDATA section in HTML content is a bogus comment", "<![CDATA[hi]]>", Options{},
		func(t *testing.T, tokens []Token, errs *CollectingErrorSink) {
			require.Len(t, errs.Errors, 1)
			require.Equal(t, CdataInHTMLContent, errs.Errors[0].Kind)
			require.Equal(t, CommentToken, tokens[0].Type)
			require.Equal(t, "[CDATA[hi]]", tokens[0].CommentData)
		}},
	{"CDATA section in foreign content", "<![CDATA[hi]]>", Options{AdjustedCurrentNodeIsForeign: true},
		func(t *testing.T, tokens []Token, errs *CollectingErrorSink) {
			require.Empty(t, errs.Errors)
			require.Equal(t, "hi", charString(tokens))
		}},
	{"EOF in tag reports an error", "<div", Options{}, func(t *testing.T, tokens []Token, errs *CollectingErrorSink) {
		require.NotEmpty(t, errs.Errors)
		require.Equal(t, EOFInTag, errs.Errors[len(errs.Errors)-1].Kind)
	}},
}

// TestBoundaryScenarios walks every documented boundary case.
func TestBoundaryScenarios(t *testing.T) {
	for _, tc := range boundaryCases {
		runBoundaryCase(tc, t)
	}
}

// runBoundaryCase runs one case as an independent, parallel subtest.
func runBoundaryCase(tc boundaryCase, t *testing.T) {
	t.Run(tc.name, func(t *testing.T) {
		t.Parallel()
		tokens, errs := runTokenizerOpts(t, tc.in, tc.opts)
		tc.check(t, tokens, errs)
	})
}

// every run terminates in exactly one EndOfFile, even on an empty
// document.
func TestTerminatesWithExactlyOneEOF(t *testing.T) {
	inputs := []string{"", "hello", "<p>", "<!--x", "&amp"}
	for _, in := range inputs {
		runTerminatesWithExactlyOneEOF(in, t)
	}
}

func runTerminatesWithExactlyOneEOF(in string, t *testing.T) {
	t.Run(in, func(t *testing.T) {
		t.Parallel()
		tokens, _ := runTokenizer(t, in)
		require.NotEmpty(t, tokens)
		last := tokens[len(tokens)-1]
		require.Equal(t, EndOfFileToken, last.Type)
		for _, tok := range tokens[:len(tokens)-1] {
			require.NotEqual(t, EndOfFileToken, tok.Type)
		}
	})
}

func TestReset(t *testing.T) {
	sink := &sliceSink{}
	errs := &CollectingErrorSink{}
	tok := New(strings.NewReader("<p>first</p>"), sink, Options{ErrorSink: errs})
	require.NoError(t, tok.Run())
	first := sink.tokens

	sink.tokens = nil
	tok.Reset(strings.NewReader("<p>second</p>"))
	require.NoError(t, tok.Run())

	// "second" is one character longer than "first".
	require.Equal(t, len(first)+1, len(sink.tokens))
	require.Equal(t, "second", charString(sink.tokens[1:len(sink.tokens)-2]))
}
