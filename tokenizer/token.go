package tokenizer

import "strings"

// TokenType discriminates the Token union.
type TokenType uint8

const (
	CharacterToken TokenType = iota
	StartTagToken
	EndTagToken
	CommentToken
	DoctypeToken
	EndOfFileToken
)

var tokenTypeNames = [...]string{"Character", "StartTag", "EndTag", "Comment", "Doctype", "EndOfFile"}

func (t TokenType) String() string {
	if int(t) < len(tokenTypeNames) {
		return tokenTypeNames[t]
	}
	return "TokenType(?)"
}

// Attribute is one name/value pair on a start or end tag. Names are
// lowercased at build time.
type Attribute struct {
	Name  string
	Value string
}

// Token is a tagged union of every token kind the tokenizer emits.
// Only the fields relevant to Type are meaningful; the zero value of
// the others is never read by callers that switch on Type first.
type Token struct {
	Type TokenType

	// CharacterToken
	CodePoint rune

	// StartTagToken, EndTagToken
	TagName     string
	SelfClosing bool
	Attributes  []Attribute

	// CommentToken
	CommentData string

	// DoctypeToken
	DoctypeName string
	PublicID    *string
	SystemID    *string
	ForceQuirks bool

	// EndOfFileToken
	Offset uint64
}

// TokenSink receives emitted tokens in order.
type TokenSink interface {
	Accept(Token) error
}

type tagKind uint8

const (
	tagKindStart tagKind = iota
	tagKindEnd
)

// tokenBuilder owns the mutable buffers backing the token currently
// under construction. It is reused across tokens; Reset clears it for
// the next one. Attributes are kept in an ordered slice rather than a
// map so that insertion order survives into the emitted token.
type tokenBuilder struct {
	tagKind     tagKind
	name        strings.Builder
	selfClosing bool

	attrs        []Attribute
	attrName     strings.Builder
	attrValue    strings.Builder
	attrDropped  bool // set when the current attribute is a dup and must not commit

	commentData strings.Builder

	doctypeName strings.Builder
	forceQuirks bool
	publicID    *strings.Builder
	systemID    *strings.Builder

	tempBuffer   []rune
	charRefCode  int64
}

func newTokenBuilder() *tokenBuilder {
	return &tokenBuilder{}
}

// Reset clears the per-token buffers (tag name, attributes, comment
// data, DOCTYPE fields) so the builder can build a new token. The temp
// buffer and the character reference code are not touched.
func (b *tokenBuilder) Reset() {
	b.name.Reset()
	b.selfClosing = false
	b.attrs = nil
	b.attrName.Reset()
	b.attrValue.Reset()
	b.attrDropped = false
	b.commentData.Reset()
	b.doctypeName.Reset()
	b.forceQuirks = false
	b.publicID = nil
	b.systemID = nil
}

func (b *tokenBuilder) WriteName(r rune)        { b.name.WriteRune(r) }
func (b *tokenBuilder) WriteData(r rune)        { b.commentData.WriteRune(r) }
func (b *tokenBuilder) WriteDoctypeName(r rune) { b.doctypeName.WriteRune(r) }

func (b *tokenBuilder) EnableSelfClosing() { b.selfClosing = true }
func (b *tokenBuilder) EnableForceQuirks() { b.forceQuirks = true }

func (b *tokenBuilder) WritePublicIdentifierEmpty() {
	b.publicID = &strings.Builder{}
}
func (b *tokenBuilder) WritePublicIdentifier(r rune) {
	if b.publicID == nil {
		b.publicID = &strings.Builder{}
	}
	b.publicID.WriteRune(r)
}
func (b *tokenBuilder) WriteSystemIdentifierEmpty() {
	b.systemID = &strings.Builder{}
}
func (b *tokenBuilder) WriteSystemIdentifier(r rune) {
	if b.systemID == nil {
		b.systemID = &strings.Builder{}
	}
	b.systemID.WriteRune(r)
}

func (b *tokenBuilder) StartAttribute() {
	b.attrName.Reset()
	b.attrValue.Reset()
	b.attrDropped = false
}
func (b *tokenBuilder) WriteAttributeName(r rune) { b.attrName.WriteRune(r) }

// WriteAttributeValue extends the current attribute's value. The value
// is read after CommitAttribute has run, so the committed entry is
// updated as well, unless the attribute was dropped.
func (b *tokenBuilder) WriteAttributeValue(r rune) {
	b.attrValue.WriteRune(r)
	if !b.attrDropped && len(b.attrs) > 0 {
		b.attrs[len(b.attrs)-1].Value = b.attrValue.String()
	}
}

// CommitAttribute appends the current name/value pair to the tag's
// attribute list, unless the name duplicates one already committed;
// duplicates are dropped silently at this layer and the caller is
// responsible for reporting DuplicateAttribute. Reports whether the
// attribute was a duplicate.
func (b *tokenBuilder) CommitAttribute() (duplicate bool) {
	name := b.attrName.String()
	if name == "" {
		b.attrDropped = true
		return false
	}
	for _, a := range b.attrs {
		if a.Name == name {
			b.attrDropped = true
			return true
		}
	}
	b.attrs = append(b.attrs, Attribute{Name: name, Value: b.attrValue.String()})
	return false
}

func (b *tokenBuilder) ResetTempBuffer()          { b.tempBuffer = b.tempBuffer[:0] }
func (b *tokenBuilder) WriteTempBuffer(r rune)    { b.tempBuffer = append(b.tempBuffer, r) }
func (b *tokenBuilder) TempBuffer() []rune        { return b.tempBuffer }
func (b *tokenBuilder) TempBufferString() string  { return string(b.tempBuffer) }

func (b *tokenBuilder) SetCharRefCode(v int64)  { b.charRefCode = v }
func (b *tokenBuilder) CharRefCode() int64      { return b.charRefCode }
func (b *tokenBuilder) MulAddCharRefCode(base, digit int64) {
	b.charRefCode = b.charRefCode*base + digit
}

func (b *tokenBuilder) StartTagToken() Token {
	return Token{Type: StartTagToken, TagName: b.name.String(), SelfClosing: b.selfClosing, Attributes: b.attrs}
}
func (b *tokenBuilder) EndTagToken() Token {
	return Token{Type: EndTagToken, TagName: b.name.String(), SelfClosing: b.selfClosing, Attributes: b.attrs}
}
func (b *tokenBuilder) CommentToken() Token {
	return Token{Type: CommentToken, CommentData: b.commentData.String()}
}
func (b *tokenBuilder) DoctypeToken() Token {
	t := Token{Type: DoctypeToken, DoctypeName: b.doctypeName.String(), ForceQuirks: b.forceQuirks}
	if b.publicID != nil {
		s := b.publicID.String()
		t.PublicID = &s
	}
	if b.systemID != nil {
		s := b.systemID.String()
		t.SystemID = &s
	}
	return t
}

func characterToken(r rune) Token   { return Token{Type: CharacterToken, CodePoint: r} }
func endOfFileToken(off uint64) Token { return Token{Type: EndOfFileToken, Offset: off} }
