package tokenizer

// Character-reference resolver. Entered from data, rcdata, and the
// three attribute-value states; reads the '&' already consumed by the
// caller and decides between a named reference (trie longest-match),
// a numeric reference, or a bare '&' passed through literally.

// charRefWalk holds the trie-walk position for the character
// reference currently being resolved. Declaring it here, next to the
// states that read and write it, keeps the sub-machine's private
// state colocated with its behavior even though the field itself
// lives on Tokenizer (tokenizer.go).
type charRefWalk struct {
	node  *entityNode
	match *entityNode
}

func (t *Tokenizer) characterReference(item InputItem) (bool, error) {
	t.b.ResetTempBuffer()
	t.b.WriteTempBuffer('&')
	if !item.EOF && isASCIIAlphanumeric(item.CodePoint) {
		t.cr = charRefWalk{}
		return t.reconsumeIn(stateNamedCharacterReference)
	}
	if !item.EOF && item.CodePoint == '#' {
		t.b.WriteTempBuffer('#')
		return t.switchTo(stateNumericCharacterReference)
	}
	if err := t.flushTempBuffer(); err != nil {
		return false, err
	}
	return t.reconsumeIn(t.returnState)
}

// namedCharacterReference walks the entity trie one code point at a
// time, remembering the deepest terminal node reached ("longest match
// so far") even after the walk continues past it toward a longer name
// that may or may not pan out.
func (t *Tokenizer) namedCharacterReference(item InputItem) (bool, error) {
	if t.cr.node == nil && t.b.TempBufferString() == "&" {
		root, _ := namedEntityTrie.child('&')
		t.cr.node = root
		if root != nil && root.value != nil {
			t.cr.match = root
		}
	}
	if !item.EOF && item.CodePoint < 0x80 && t.cr.node != nil {
		if child, ok := t.cr.node.child(byte(item.CodePoint)); ok {
			t.b.WriteTempBuffer(item.CodePoint)
			t.cr.node = child
			if child.value != nil {
				t.cr.match = child
			}
			return false, nil
		}
	}
	return t.resolveNamedCharacterReference(item)
}

func (t *Tokenizer) resolveNamedCharacterReference(item InputItem) (bool, error) {
	match := t.cr.match
	t.cr = charRefWalk{}

	if match == nil {
		if err := t.flushTempBuffer(); err != nil {
			return false, err
		}
		return t.reconsumeIn(stateAmbiguousAmpersand)
	}

	matchedLen := len(match.name)
	buf := t.b.TempBuffer()
	overshoot := append([]rune(nil), buf[matchedLen:]...)
	endsSemi := match.endsInSemicolon()

	var nextChar rune
	haveNext := false
	switch {
	case len(overshoot) > 0:
		nextChar, haveNext = overshoot[0], true
	case !item.EOF:
		nextChar, haveNext = item.CodePoint, true
	}

	// Historical rule: an unterminated match inside an attribute
	// value, immediately followed by '=' or an alphanumeric, is not
	// expanded — the whole run is flushed as literal text instead.
	if !endsSemi && t.isAttributeReturnState() && haveNext &&
		(nextChar == '=' || isASCIIAlphanumeric(nextChar)) {
		if err := t.flushTempBuffer(); err != nil {
			return false, err
		}
		return t.reconsumeIn(t.returnState)
	}

	if !endsSemi {
		t.reportError(MissingSemicolonAfterCharacterReference, item.Offset)
	}
	t.b.ResetTempBuffer()
	for _, r := range match.value {
		t.b.WriteTempBuffer(r)
	}
	if err := t.flushTempBuffer(); err != nil {
		return false, err
	}
	if len(overshoot) == 0 {
		return t.reconsumeIn(t.returnState)
	}

	// The characters walked past the match were never really "part
	// of" the character reference; put them back so the return state
	// re-tokenizes them as ordinary input, in order, ahead of the
	// character that ended the walk.
	pending := make([]InputItem, 0, len(overshoot)+1)
	for _, r := range overshoot {
		pending = append(pending, InputItem{CodePoint: r, Offset: item.Offset})
	}
	pending = append(pending, item)
	t.in.ReconsumeAll(pending)
	return t.switchTo(t.returnState)
}

func (t *Tokenizer) ambiguousAmpersand(item InputItem) (bool, error) {
	if !item.EOF && isASCIIAlphanumeric(item.CodePoint) {
		if t.isAttributeReturnState() {
			t.b.WriteAttributeValue(item.CodePoint)
			return false, nil
		}
		return t.emitChar(item.CodePoint)
	}
	if !item.EOF && item.CodePoint == ';' {
		t.reportError(UnknownNamedCharacterReference, item.Offset)
	}
	return t.reconsumeIn(t.returnState)
}

func (t *Tokenizer) numericCharacterReference(item InputItem) (bool, error) {
	t.b.SetCharRefCode(0)
	if !item.EOF && (item.CodePoint == 'x' || item.CodePoint == 'X') {
		t.b.WriteTempBuffer(item.CodePoint)
		return t.switchTo(stateHexadecimalCharacterReferenceStart)
	}
	return t.reconsumeIn(stateDecimalCharacterReferenceStart)
}

func (t *Tokenizer) hexCharacterReferenceStart(item InputItem) (bool, error) {
	if !item.EOF && isASCIIHexDigit(item.CodePoint) {
		return t.reconsumeIn(stateHexadecimalCharacterReference)
	}
	t.reportError(AbsenceOfDigitsInNumericCharacterReference, item.Offset)
	if err := t.flushTempBuffer(); err != nil {
		return false, err
	}
	return t.reconsumeIn(t.returnState)
}

func (t *Tokenizer) decCharacterReferenceStart(item InputItem) (bool, error) {
	if !item.EOF && isASCIIDigit(item.CodePoint) {
		return t.reconsumeIn(stateDecimalCharacterReference)
	}
	t.reportError(AbsenceOfDigitsInNumericCharacterReference, item.Offset)
	if err := t.flushTempBuffer(); err != nil {
		return false, err
	}
	return t.reconsumeIn(t.returnState)
}

func (t *Tokenizer) hexCharacterReference(item InputItem) (bool, error) {
	if !item.EOF && isASCIIHexDigit(item.CodePoint) {
		t.b.MulAddCharRefCode(16, int64(hexDigitValue(item.CodePoint)))
		return false, nil
	}
	if !item.EOF && item.CodePoint == ';' {
		return t.switchTo(stateNumericCharacterReferenceEnd)
	}
	t.reportError(MissingSemicolonAfterCharacterReference, item.Offset)
	return t.reconsumeIn(stateNumericCharacterReferenceEnd)
}

func (t *Tokenizer) decCharacterReference(item InputItem) (bool, error) {
	if !item.EOF && isASCIIDigit(item.CodePoint) {
		t.b.MulAddCharRefCode(10, int64(item.CodePoint-'0'))
		return false, nil
	}
	if !item.EOF && item.CodePoint == ';' {
		return t.switchTo(stateNumericCharacterReferenceEnd)
	}
	t.reportError(MissingSemicolonAfterCharacterReference, item.Offset)
	return t.reconsumeIn(stateNumericCharacterReferenceEnd)
}

func hexDigitValue(r rune) int {
	switch {
	case r >= '0' && r <= '9':
		return int(r - '0')
	case r >= 'a' && r <= 'f':
		return int(r-'a') + 10
	default:
		return int(r-'A') + 10
	}
}

// windows1252Remap fixes up 27 of the 32 C1-control code points
// 0x80..0x9F: for legacy Windows-1252 compatibility, a numeric
// character reference to one of these values produces the Unicode
// character Windows-1252 maps that byte to, not the literal C1
// control. The remaining five slots keep their literal C1 value.
var windows1252Remap = map[int64]rune{
	0x80: 0x20AC, 0x82: 0x201A, 0x83: 0x0192, 0x84: 0x201E,
	0x85: 0x2026, 0x86: 0x2020, 0x87: 0x2021, 0x88: 0x02C6,
	0x89: 0x2030, 0x8A: 0x0160, 0x8B: 0x2039, 0x8C: 0x0152,
	0x8E: 0x017D, 0x91: 0x2018, 0x92: 0x2019, 0x93: 0x201C,
	0x94: 0x201D, 0x95: 0x2022, 0x96: 0x2013, 0x97: 0x2014,
	0x98: 0x02DC, 0x99: 0x2122, 0x9A: 0x0161, 0x9B: 0x203A,
	0x9C: 0x0153, 0x9E: 0x017E, 0x9F: 0x0178,
}

func isControlReferenceCode(c int64) bool {
	if c == 0x0D {
		return true
	}
	if isC0Control(int(c)) {
		return !isASCIIWhitespace(rune(c))
	}
	return isControl(int(c))
}

// numericCharacterReferenceEnd applies the null/range/surrogate/
// noncharacter/control fixups to the accumulated character reference
// code and never itself consumes an input item — it always hands item
// back to the return state.
func (t *Tokenizer) numericCharacterReferenceEnd(item InputItem) (bool, error) {
	code := t.b.CharRefCode()
	offset := item.Offset
	result := rune(code)

	switch {
	case code == 0:
		t.reportError(NullCharacterReference, offset)
		result = 0xFFFD
	case code > 0x10FFFF:
		t.reportError(CharacterReferenceOutsideUnicodeRange, offset)
		result = 0xFFFD
	case isSurrogate(int(code)):
		t.reportError(SurrogateCharacterReference, offset)
		result = 0xFFFD
	case isNonCharacter(int(code)):
		t.reportError(NoncharacterCharacterReference, offset)
	case isControlReferenceCode(code):
		t.reportError(ControlCharacterReference, offset)
		if remap, ok := windows1252Remap[code]; ok {
			result = remap
		}
	}

	t.b.ResetTempBuffer()
	t.b.WriteTempBuffer(result)
	if err := t.flushTempBuffer(); err != nil {
		return false, err
	}
	return t.reconsumeIn(t.returnState)
}

func (t *Tokenizer) isAttributeReturnState() bool {
	switch t.returnState {
	case stateAttributeValueDoubleQuoted, stateAttributeValueSingleQuoted, stateAttributeValueUnquoted:
		return true
	}
	return false
}

// flushTempBuffer implements "flush code points consumed as a
// character reference": append to the current attribute's value when
// the return state is an attribute value state, otherwise emit each
// buffered code point as a Character token.
func (t *Tokenizer) flushTempBuffer() error {
	if t.isAttributeReturnState() {
		for _, r := range t.b.TempBuffer() {
			t.b.WriteAttributeValue(r)
		}
		return nil
	}
	for _, r := range t.b.TempBuffer() {
		if err := t.emit(characterToken(r)); err != nil {
			return err
		}
	}
	return nil
}
