package tokenizer

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrorKind identifies one of the parse-error conditions the WHATWG HTML
// tokenization algorithm defines. Parse errors are never fatal: the
// caller is notified through the ErrorSink and tokenization continues.
type ErrorKind uint16

const (
	AbruptClosingOfEmptyComment ErrorKind = iota
	AbruptDoctypePublicIdentifier
	AbruptDoctypeSystemIdentifier
	AbsenceOfDigitsInNumericCharacterReference
	CdataInHTMLContent
	CharacterReferenceOutsideUnicodeRange
	ControlCharacterReference
	DuplicateAttribute
	EOFBeforeTagName
	EOFInCdata
	EOFInComment
	EOFInDoctype
	EOFInScriptHTMLCommentLikeText
	EOFInTag
	IncorrectlyClosedComment
	IncorrectlyOpenedComment
	InvalidCharacterSequenceAfterDoctypeName
	InvalidFirstCharacterOfTagName
	MissingAttributeValue
	MissingDoctypeName
	MissingDoctypePublicIdentifier
	MissingDoctypeSystemIdentifier
	MissingEndTagName
	MissingQuoteBeforeDoctypePublicIdentifier
	MissingQuoteBeforeDoctypeSystemIdentifier
	MissingSemicolonAfterCharacterReference
	MissingWhitespaceAfterDoctypePublicKeyword
	MissingWhitespaceAfterDoctypeSystemKeyword
	MissingWhitespaceBeforeDoctypeName
	MissingWhitespaceBetweenAttributes
	MissingWhitespaceBetweenDoctypePublicAndSystemIdentifiers
	NestedComment
	NoncharacterCharacterReference
	NullCharacterReference
	SurrogateCharacterReference
	UnexpectedCharacterAfterDoctypeSystemIdentifier
	UnexpectedCharacterInAttributeName
	UnexpectedCharacterInUnquotedAttributeValue
	UnexpectedEqualsSignBeforeAttributeName
	UnexpectedNullCharacter
	UnexpectedQuestionMarkInsteadOfTagName
	UnexpectedSolidusInTag
	UnknownNamedCharacterReference
	InvalidUTF8
)

var errorKindNames = [...]string{
	"abrupt-closing-of-empty-comment",
	"abrupt-doctype-public-identifier",
	"abrupt-doctype-system-identifier",
	"absence-of-digits-in-numeric-character-reference",
	"cdata-in-html-content",
	"character-reference-outside-unicode-range",
	"control-character-reference",
	"duplicate-attribute",
	"eof-before-tag-name",
	"eof-in-cdata",
	"eof-in-comment",
	"eof-in-doctype",
	"eof-in-script-html-comment-like-text",
	"eof-in-tag",
	"incorrectly-closed-comment",
	"incorrectly-opened-comment",
	"invalid-character-sequence-after-doctype-name",
	"invalid-first-character-of-tag-name",
	"missing-attribute-value",
	"missing-doctype-name",
	"missing-doctype-public-identifier",
	"missing-doctype-system-identifier",
	"missing-end-tag-name",
	"missing-quote-before-doctype-public-identifier",
	"missing-quote-before-doctype-system-identifier",
	"missing-semicolon-after-character-reference",
	"missing-whitespace-after-doctype-public-keyword",
	"missing-whitespace-after-doctype-system-keyword",
	"missing-whitespace-before-doctype-name",
	"missing-whitespace-between-attributes",
	"missing-whitespace-between-doctype-public-and-system-identifiers",
	"nested-comment",
	"noncharacter-character-reference",
	"null-character-reference",
	"surrogate-character-reference",
	"unexpected-character-after-doctype-system-identifier",
	"unexpected-character-in-attribute-name",
	"unexpected-character-in-unquoted-attribute-value",
	"unexpected-equals-sign-before-attribute-name",
	"unexpected-null-character",
	"unexpected-question-mark-instead-of-tag-name",
	"unexpected-solidus-in-tag",
	"unknown-named-character-reference",
	"invalid-utf-8",
}

// String renders the kind the way the WHATWG specification names it,
// e.g. "unexpected-null-character".
func (k ErrorKind) String() string {
	if int(k) < len(errorKindNames) {
		return errorKindNames[k]
	}
	return fmt.Sprintf("ErrorKind(%d)", uint16(k))
}

// ErrorSink receives non-fatal parse errors in the order they are
// detected. AcceptError must never be called concurrently and must
// never block indefinitely; it has no way to signal tokenization
// should stop — parse errors are always recoverable.
type ErrorSink interface {
	AcceptError(kind ErrorKind, offset uint64)
}

// discardErrorSink drops every parse error. Used when the caller
// doesn't care to observe them.
type discardErrorSink struct{}

func (discardErrorSink) AcceptError(ErrorKind, uint64) {}

// CollectingErrorSink accumulates every parse error it receives, in
// order. Useful in tests and for callers that want the whole list
// rather than a live callback.
type CollectingErrorSink struct {
	Errors []ParseError
}

// ParseError pairs a reported ErrorKind with the source offset it was
// detected at.
type ParseError struct {
	Kind   ErrorKind
	Offset uint64
}

func (e ParseError) String() string {
	return fmt.Sprintf("%s@%d", e.Kind, e.Offset)
}

func (s *CollectingErrorSink) AcceptError(kind ErrorKind, offset uint64) {
	s.Errors = append(s.Errors, ParseError{Kind: kind, Offset: offset})
}

// errByteSource wraps a failure returned by a ByteSource. It is fatal:
// Run/Step stop and return it to the caller.
func errByteSource(cause error) error {
	return errors.Wrap(cause, "tokenizer: byte source failed")
}

// errSinkRejected wraps a failure returned by a TokenSink's Accept. It
// is fatal for the same reason a byte-source failure is.
func errSinkRejected(cause error) error {
	return errors.Wrap(cause, "tokenizer: token sink rejected token")
}
