// Package tokenizer implements the WHATWG HTML5 tokenization
// algorithm: the lexical front end that turns a byte stream into a
// sequence of DOCTYPE, tag, comment, character, and end-of-file
// tokens. Tree construction, CSS, and JavaScript are out of scope.
package tokenizer

import (
	"github.com/lestrrat-go/pdebug"
	"github.com/sirupsen/logrus"
)

// Options configures a Tokenizer at construction time.
type Options struct {
	// ErrorSink receives non-fatal parse errors. Defaults to a sink
	// that discards everything.
	ErrorSink ErrorSink

	// InitialState overrides the state the tokenizer starts in.
	// Zero value is stateData, which is correct for a standalone
	// document; a caller embedding this tokenizer inside a tree
	// constructor with foreign-content or RAWTEXT elements can seed
	// a different initial state.
	InitialState tokenizerState

	// AdjustedCurrentNodeIsForeign mirrors the tree-construction
	// concept of the same name: when true, "<![CDATA[" after "<!"
	// opens a CDATA section instead of a bogus comment. A tokenizer
	// used outside a tree constructor leaves this false.
	AdjustedCurrentNodeIsForeign bool
}

// Tokenizer drives the WHATWG state machine over an InputStream,
// handing completed tokens to a TokenSink. One instance parses one
// document; concurrent use from multiple goroutines is undefined.
type Tokenizer struct {
	in   *InputStream
	sink TokenSink
	errs ErrorSink

	state       tokenizerState
	returnState tokenizerState

	adjustedCurrentNodeIsForeign bool

	b *tokenBuilder

	lastStartTagName string

	openMarkupItems   []InputItem
	afterDoctypeItems []InputItem

	cr charRefWalk

	done bool
}

// New builds a Tokenizer reading from src and delivering tokens to
// sink. sink must not be nil; a nil ErrorSink in opts discards parse
// errors.
func New(src ByteSource, sink TokenSink, opts Options) *Tokenizer {
	errs := opts.ErrorSink
	if errs == nil {
		errs = discardErrorSink{}
	}
	t := &Tokenizer{
		in:                           NewInputStream(src, errs),
		sink:                         sink,
		errs:                         errs,
		state:                        opts.InitialState,
		adjustedCurrentNodeIsForeign: opts.AdjustedCurrentNodeIsForeign,
		b:                            newTokenBuilder(),
	}
	logrus.WithFields(logrus.Fields{
		"initial_state": t.state,
		"foreign":       t.adjustedCurrentNodeIsForeign,
	}).Debug("tokenizer: constructed")
	return t
}

// Reset rewires the tokenizer to read from a new byte source and
// clears every piece of accumulated state, so the same Tokenizer
// (and its shared entity trie) can parse a second document without
// reallocating.
func (t *Tokenizer) Reset(src ByteSource) {
	t.in = NewInputStream(src, t.errs)
	t.state = 0
	t.returnState = 0
	t.b.Reset()
	t.b.ResetTempBuffer()
	t.b.SetCharRefCode(0)
	t.lastStartTagName = ""
	t.openMarkupItems = t.openMarkupItems[:0]
	t.afterDoctypeItems = t.afterDoctypeItems[:0]
	t.cr = charRefWalk{}
	t.done = false
}

// Run drives the tokenizer to completion: every Step call is repeated
// until the EndOfFile token is emitted or a fatal error occurs.
func (t *Tokenizer) Run() error {
	for !t.done {
		if _, err := t.Step(); err != nil {
			return err
		}
	}
	return nil
}

// Step consumes exactly one InputItem, dispatching it through
// however many state transitions that single item causes (a WHATWG
// "reconsume" does not advance to a new item), and returns the source
// offset of the item it consumed, so a caller can correlate emitted
// tokens with source position without re-deriving it from the tokens
// themselves.
func (t *Tokenizer) Step() (uint64, error) {
	if t.done {
		return 0, nil
	}
	if pdebug.Enabled {
		g := pdebug.Marker("Step")
		defer g.End()
	}
	item := t.in.Next()
	for {
		if pdebug.Enabled {
			pdebug.Printf("tokenizer: state=%s item=%+v", t.state, item)
		}
		reconsume, err := t.dispatch(item)
		if err != nil {
			return item.Offset, err
		}
		if !reconsume {
			break
		}
	}
	if err := t.in.Err(); err != nil {
		return item.Offset, err
	}
	return item.Offset, nil
}

// dispatch processes item under the current state and reports
// whether the same item must be reconsumed under the (possibly new)
// state, per the WHATWG "reconsume" vs "switch to" distinction.
func (t *Tokenizer) dispatch(item InputItem) (reconsume bool, err error) {
	switch t.state {
	case stateData:
		return t.dataFamily(item, stateData)
	case stateRCDATA:
		return t.dataFamily(item, stateRCDATA)
	case stateRAWTEXT:
		return t.dataFamily(item, stateRAWTEXT)
	case stateScriptData:
		return t.dataFamily(item, stateScriptData)
	case statePlaintext:
		return t.dataFamily(item, statePlaintext)

	case stateTagOpen:
		return t.tagOpen(item)
	case stateEndTagOpen:
		return t.endTagOpen(item)
	case stateTagName:
		return t.tagName(item)

	case stateRCDATALessThanSign:
		return t.textLessThanSign(item, stateRCDATA, stateRCDATAEndTagOpen)
	case stateRCDATAEndTagOpen:
		return t.textEndTagOpen(item, stateRCDATA, stateRCDATAEndTagName)
	case stateRCDATAEndTagName:
		return t.textEndTagName(item, stateRCDATA)

	case stateRAWTEXTLessThanSign:
		return t.textLessThanSign(item, stateRAWTEXT, stateRAWTEXTEndTagOpen)
	case stateRAWTEXTEndTagOpen:
		return t.textEndTagOpen(item, stateRAWTEXT, stateRAWTEXTEndTagName)
	case stateRAWTEXTEndTagName:
		return t.textEndTagName(item, stateRAWTEXT)

	case stateScriptDataLessThanSign:
		return t.scriptDataLessThanSign(item)
	case stateScriptDataEndTagOpen:
		return t.textEndTagOpen(item, stateScriptData, stateScriptDataEndTagName)
	case stateScriptDataEndTagName:
		return t.textEndTagName(item, stateScriptData)

	case stateScriptDataEscapeStart:
		return t.scriptDataEscapeStart(item)
	case stateScriptDataEscapeStartDash:
		return t.scriptDataEscapeStartDash(item)
	case stateScriptDataEscaped:
		return t.scriptDataEscaped(item)
	case stateScriptDataEscapedDash:
		return t.scriptDataEscapedDash(item)
	case stateScriptDataEscapedDashDash:
		return t.scriptDataEscapedDashDash(item)
	case stateScriptDataEscapedLessThanSign:
		return t.scriptDataEscapedLessThanSign(item)
	case stateScriptDataEscapedEndTagOpen:
		return t.textEndTagOpen(item, stateScriptDataEscaped, stateScriptDataEscapedEndTagName)
	case stateScriptDataEscapedEndTagName:
		return t.textEndTagName(item, stateScriptDataEscaped)

	case stateScriptDataDoubleEscapeStart:
		return t.scriptDataDoubleEscapeStart(item)
	case stateScriptDataDoubleEscaped:
		return t.scriptDataDoubleEscaped(item)
	case stateScriptDataDoubleEscapedDash:
		return t.scriptDataDoubleEscapedDash(item)
	case stateScriptDataDoubleEscapedDashDash:
		return t.scriptDataDoubleEscapedDashDash(item)
	case stateScriptDataDoubleEscapedLessThanSign:
		return t.scriptDataDoubleEscapedLessThanSign(item)
	case stateScriptDataDoubleEscapeEnd:
		return t.scriptDataDoubleEscapeEnd(item)

	case stateBeforeAttributeName:
		return t.beforeAttributeName(item)
	case stateAttributeName:
		return t.attributeName(item)
	case stateAfterAttributeName:
		return t.afterAttributeName(item)
	case stateBeforeAttributeValue:
		return t.beforeAttributeValue(item)
	case stateAttributeValueDoubleQuoted:
		return t.attributeValueQuoted(item, '"', stateAttributeValueDoubleQuoted)
	case stateAttributeValueSingleQuoted:
		return t.attributeValueQuoted(item, '\'', stateAttributeValueSingleQuoted)
	case stateAttributeValueUnquoted:
		return t.attributeValueUnquoted(item)
	case stateAfterAttributeValueQuoted:
		return t.afterAttributeValueQuoted(item)
	case stateSelfClosingStartTag:
		return t.selfClosingStartTag(item)

	case stateBogusComment:
		return t.bogusComment(item)
	case stateMarkupDeclarationOpen:
		return t.markupDeclarationOpen(item)
	case stateCommentStart:
		return t.commentStart(item)
	case stateCommentStartDash:
		return t.commentStartDash(item)
	case stateComment:
		return t.comment(item)
	case stateCommentLessThanSign:
		return t.commentLessThanSign(item)
	case stateCommentLessThanSignBang:
		return t.commentLessThanSignBang(item)
	case stateCommentLessThanSignBangDash:
		return t.commentLessThanSignBangDash(item)
	case stateCommentLessThanSignBangDashDash:
		return t.commentLessThanSignBangDashDash(item)
	case stateCommentEndDash:
		return t.commentEndDash(item)
	case stateCommentEnd:
		return t.commentEnd(item)
	case stateCommentEndBang:
		return t.commentEndBang(item)

	case stateDoctype:
		return t.doctype(item)
	case stateBeforeDoctypeName:
		return t.beforeDoctypeName(item)
	case stateDoctypeName:
		return t.doctypeName(item)
	case stateAfterDoctypeName:
		return t.afterDoctypeName(item)
	case stateAfterDoctypePublicKeyword:
		return t.afterDoctypePublicKeyword(item)
	case stateBeforeDoctypePublicIdentifier:
		return t.beforeDoctypePublicIdentifier(item)
	case stateDoctypePublicIdentifierDoubleQuoted:
		return t.doctypePublicIdentifierQuoted(item, '"')
	case stateDoctypePublicIdentifierSingleQuoted:
		return t.doctypePublicIdentifierQuoted(item, '\'')
	case stateAfterDoctypePublicIdentifier:
		return t.afterDoctypePublicIdentifier(item)
	case stateBetweenDoctypePublicAndSystemIdentifiers:
		return t.betweenDoctypePublicAndSystemIdentifiers(item)
	case stateAfterDoctypeSystemKeyword:
		return t.afterDoctypeSystemKeyword(item)
	case stateBeforeDoctypeSystemIdentifier:
		return t.beforeDoctypeSystemIdentifier(item)
	case stateDoctypeSystemIdentifierDoubleQuoted:
		return t.doctypeSystemIdentifierQuoted(item, '"')
	case stateDoctypeSystemIdentifierSingleQuoted:
		return t.doctypeSystemIdentifierQuoted(item, '\'')
	case stateAfterDoctypeSystemIdentifier:
		return t.afterDoctypeSystemIdentifier(item)
	case stateBogusDoctype:
		return t.bogusDoctype(item)

	case stateCDATASection:
		return t.cdataSection(item)
	case stateCDATASectionBracket:
		return t.cdataSectionBracket(item)
	case stateCDATASectionEnd:
		return t.cdataSectionEnd(item)

	case stateCharacterReference:
		return t.characterReference(item)
	case stateNamedCharacterReference:
		return t.namedCharacterReference(item)
	case stateAmbiguousAmpersand:
		return t.ambiguousAmpersand(item)
	case stateNumericCharacterReference:
		return t.numericCharacterReference(item)
	case stateHexadecimalCharacterReferenceStart:
		return t.hexCharacterReferenceStart(item)
	case stateDecimalCharacterReferenceStart:
		return t.decCharacterReferenceStart(item)
	case stateHexadecimalCharacterReference:
		return t.hexCharacterReference(item)
	case stateDecimalCharacterReference:
		return t.decCharacterReference(item)
	case stateNumericCharacterReferenceEnd:
		return t.numericCharacterReferenceEnd(item)
	}
	return false, nil
}

func (t *Tokenizer) reconsumeIn(s tokenizerState) (bool, error) {
	t.state = s
	return true, nil
}

func (t *Tokenizer) switchTo(s tokenizerState) (bool, error) {
	t.state = s
	return false, nil
}

func (t *Tokenizer) reportError(kind ErrorKind, offset uint64) {
	t.errs.AcceptError(kind, offset)
}

// emit hands tok to the sink. Emitting an EndOfFile token halts the
// tokenizer for good.
func (t *Tokenizer) emit(tok Token) error {
	if err := t.sink.Accept(tok); err != nil {
		return errSinkRejected(err)
	}
	if tok.Type == EndOfFileToken {
		t.done = true
	}
	return nil
}

func (t *Tokenizer) emitEOF(offset uint64) (bool, error) {
	return false, t.emit(endOfFileToken(offset))
}

func (t *Tokenizer) emitChar(r rune) (bool, error) {
	return false, t.emit(characterToken(r))
}

// emitCurrentTag hands the tag under construction to the sink, and,
// for start tags, remembers its name for the appropriate-end-tag
// predicate. Self-closing start tags do not establish a pending end
// tag.
func (t *Tokenizer) emitCurrentTag() (bool, error) {
	var tok Token
	if t.b.tagKind == tagKindStart {
		tok = t.b.StartTagToken()
		if !tok.SelfClosing {
			t.lastStartTagName = tok.TagName
		}
	} else {
		tok = t.b.EndTagToken()
	}
	return false, t.emit(tok)
}

// isAppropriateEndTag reports whether the end tag under construction
// closes the most recently opened start tag: the trigger for exiting
// RCDATA/RAWTEXT/script-data end-tag-name states rather than emitting
// them as literal text.
func (t *Tokenizer) isAppropriateEndTag() bool {
	return t.lastStartTagName != "" && t.lastStartTagName == t.b.name.String()
}

// dataFamily implements the shared Data/RCDATA/RAWTEXT/Script/
// Plaintext contract. ampersandAllowed is true only for data and
// rcdata.
func (t *Tokenizer) dataFamily(item InputItem, self tokenizerState) (bool, error) {
	ampersandAllowed := self == stateData || self == stateRCDATA

	if item.EOF {
		return t.emitEOF(item.Offset)
	}
	switch item.CodePoint {
	case '&':
		if ampersandAllowed {
			t.returnState = self
			return t.switchTo(stateCharacterReference)
		}
	case '<':
		switch self {
		case statePlaintext:
			// literal '<', falls through to the default append below.
		case stateRCDATA:
			return t.switchTo(stateRCDATALessThanSign)
		case stateRAWTEXT:
			return t.switchTo(stateRAWTEXTLessThanSign)
		case stateScriptData:
			return t.switchTo(stateScriptDataLessThanSign)
		default:
			return t.switchTo(stateTagOpen)
		}
	case 0x0000:
		t.reportError(UnexpectedNullCharacter, item.Offset)
		if self == stateData {
			return t.emitChar(0x0000)
		}
		return t.emitChar(0xFFFD)
	}
	return t.emitChar(item.CodePoint)
}

// tagOpen dispatches on the character right after '<'.
func (t *Tokenizer) tagOpen(item InputItem) (bool, error) {
	if item.EOF {
		t.reportError(EOFBeforeTagName, item.Offset)
		if err := t.emit(characterToken('<')); err != nil {
			return false, err
		}
		return t.emitEOF(item.Offset)
	}
	switch {
	case item.CodePoint == '!':
		t.openMarkupItems = t.openMarkupItems[:0]
		return t.switchTo(stateMarkupDeclarationOpen)
	case item.CodePoint == '/':
		return t.switchTo(stateEndTagOpen)
	case isASCIIAlpha(item.CodePoint):
		t.b.Reset()
		t.b.tagKind = tagKindStart
		return t.reconsumeIn(stateTagName)
	case item.CodePoint == '?':
		t.reportError(UnexpectedQuestionMarkInsteadOfTagName, item.Offset)
		t.b.Reset()
		return t.reconsumeIn(stateBogusComment)
	default:
		t.reportError(InvalidFirstCharacterOfTagName, item.Offset)
		if err := t.emit(characterToken('<')); err != nil {
			return false, err
		}
		return t.reconsumeIn(stateData)
	}
}

func (t *Tokenizer) endTagOpen(item InputItem) (bool, error) {
	if item.EOF {
		t.reportError(EOFBeforeTagName, item.Offset)
		if err := t.emit(characterToken('<')); err != nil {
			return false, err
		}
		if err := t.emit(characterToken('/')); err != nil {
			return false, err
		}
		return t.emitEOF(item.Offset)
	}
	switch {
	case isASCIIAlpha(item.CodePoint):
		t.b.Reset()
		t.b.tagKind = tagKindEnd
		return t.reconsumeIn(stateTagName)
	case item.CodePoint == '>':
		t.reportError(MissingEndTagName, item.Offset)
		return t.switchTo(stateData)
	default:
		t.reportError(InvalidFirstCharacterOfTagName, item.Offset)
		t.b.Reset()
		return t.reconsumeIn(stateBogusComment)
	}
}

func (t *Tokenizer) tagName(item InputItem) (bool, error) {
	if item.EOF {
		t.reportError(EOFInTag, item.Offset)
		return t.emitEOF(item.Offset)
	}
	switch {
	case isASCIIWhitespace(item.CodePoint):
		return t.switchTo(stateBeforeAttributeName)
	case item.CodePoint == '/':
		return t.switchTo(stateSelfClosingStartTag)
	case item.CodePoint == '>':
		return t.emitCurrentTag2(stateData)
	case isASCIIUpperAlpha(item.CodePoint):
		t.b.WriteName(toASCIILower(item.CodePoint))
	case item.CodePoint == 0x0000:
		t.reportError(UnexpectedNullCharacter, item.Offset)
		t.b.WriteName(0xFFFD)
	default:
		t.b.WriteName(item.CodePoint)
	}
	return false, nil
}

// emitCurrentTag2 emits the current tag and then switches to s.
func (t *Tokenizer) emitCurrentTag2(s tokenizerState) (bool, error) {
	if _, err := t.emitCurrentTag(); err != nil {
		return false, err
	}
	return t.switchTo(s)
}

// textLessThanSign implements the shared "*_less_than_sign" shape
// used by RCDATA and RAWTEXT: '/' clears temp_buffer
// and moves to the end-tag-open sibling state; anything else emits
// '<' and reconsumes in the outer text state.
func (t *Tokenizer) textLessThanSign(item InputItem, outer, endTagOpen tokenizerState) (bool, error) {
	if !item.EOF && item.CodePoint == '/' {
		t.b.ResetTempBuffer()
		return t.switchTo(endTagOpen)
	}
	if err := t.emit(characterToken('<')); err != nil {
		return false, err
	}
	return t.reconsumeIn(outer)
}

func (t *Tokenizer) textEndTagOpen(item InputItem, outer, endTagName tokenizerState) (bool, error) {
	if !item.EOF && isASCIIAlpha(item.CodePoint) {
		t.b.Reset()
		t.b.tagKind = tagKindEnd
		return t.reconsumeIn(endTagName)
	}
	if err := t.emit(characterToken('<')); err != nil {
		return false, err
	}
	if err := t.emit(characterToken('/')); err != nil {
		return false, err
	}
	return t.reconsumeIn(outer)
}

// textEndTagName implements the shared "*_end_tag_name" contract:
// only an appropriate end tag is honored; otherwise every buffered
// character is flushed literally and the outer text state resumes.
func (t *Tokenizer) textEndTagName(item InputItem, outer tokenizerState) (bool, error) {
	appropriate := t.isAppropriateEndTag()
	if !item.EOF && appropriate {
		switch {
		case isASCIIWhitespace(item.CodePoint):
			return t.switchTo(stateBeforeAttributeName)
		case item.CodePoint == '/':
			return t.switchTo(stateSelfClosingStartTag)
		case item.CodePoint == '>':
			return t.emitCurrentTag2(stateData)
		}
	}
	if !item.EOF && (isASCIIUpperAlpha(item.CodePoint) || isASCIILowerAlpha(item.CodePoint)) {
		if isASCIIUpperAlpha(item.CodePoint) {
			t.b.WriteName(toASCIILower(item.CodePoint))
		} else {
			t.b.WriteName(item.CodePoint)
		}
		t.b.WriteTempBuffer(item.CodePoint)
		return false, nil
	}
	if err := t.emit(characterToken('<')); err != nil {
		return false, err
	}
	if err := t.emit(characterToken('/')); err != nil {
		return false, err
	}
	for _, r := range t.b.TempBuffer() {
		if err := t.emit(characterToken(r)); err != nil {
			return false, err
		}
	}
	return t.reconsumeIn(outer)
}
