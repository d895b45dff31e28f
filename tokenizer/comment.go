package tokenizer

// Comment family, markup-declaration-open, DOCTYPE family, and CDATA
// section family.

func (t *Tokenizer) bogusComment(item InputItem) (bool, error) {
	if item.EOF {
		if err := t.emit(t.b.CommentToken()); err != nil {
			return false, err
		}
		return t.emitEOF(item.Offset)
	}
	switch item.CodePoint {
	case '>':
		if err := t.emit(t.b.CommentToken()); err != nil {
			return false, err
		}
		return t.switchTo(stateData)
	case 0x0000:
		t.reportError(UnexpectedNullCharacter, item.Offset)
		t.b.WriteData(0xFFFD)
	default:
		t.b.WriteData(item.CodePoint)
	}
	return false, nil
}

// markupDeclarationOpen decides between "--" (comment), "DOCTYPE", and
// "[CDATA[" after "<!" without peeking seven characters ahead: it
// consumes into openMarkupItems one item at a time and replays them
// through InputStream's pushback stack the moment the accumulated
// prefix stops matching any of the three candidates.
func (t *Tokenizer) markupDeclarationOpen(item InputItem) (bool, error) {
	t.openMarkupItems = append(t.openMarkupItems, item)
	n := len(t.openMarkupItems)
	first := t.openMarkupItems[0]

	mismatch := func() (bool, error) {
		t.reportError(IncorrectlyOpenedComment, item.Offset)
		t.b.Reset()
		items := t.openMarkupItems
		t.openMarkupItems = nil
		t.in.ReconsumeAll(items)
		return t.switchTo(stateCommentStart)
	}

	if item.EOF {
		return mismatch()
	}

	switch {
	case first.CodePoint == '-':
		if n < 2 {
			return false, nil
		}
		if t.openMarkupItems[1].CodePoint == '-' {
			t.openMarkupItems = nil
			t.b.Reset()
			return t.switchTo(stateCommentStart)
		}
		return mismatch()

	case first.CodePoint == 'D' || first.CodePoint == 'd':
		const want = "DOCTYPE"
		if toASCIILower(item.CodePoint) != toASCIILower(rune(want[n-1])) {
			return mismatch()
		}
		if n < len(want) {
			return false, nil
		}
		t.openMarkupItems = nil
		return t.switchTo(stateDoctype)

	case first.CodePoint == '[':
		const want = "[CDATA["
		if item.CodePoint != rune(want[n-1]) {
			return mismatch()
		}
		if n < len(want) {
			return false, nil
		}
		t.openMarkupItems = nil
		if t.adjustedCurrentNodeIsForeign {
			return t.switchTo(stateCDATASection)
		}
		t.reportError(CdataInHTMLContent, item.Offset)
		t.b.Reset()
		for _, r := range want {
			t.b.WriteData(r)
		}
		return t.switchTo(stateBogusComment)

	default:
		return mismatch()
	}
}

func (t *Tokenizer) commentStart(item InputItem) (bool, error) {
	if !item.EOF && item.CodePoint == '-' {
		return t.switchTo(stateCommentStartDash)
	}
	if !item.EOF && item.CodePoint == '>' {
		t.reportError(AbruptClosingOfEmptyComment, item.Offset)
		if err := t.emit(t.b.CommentToken()); err != nil {
			return false, err
		}
		return t.switchTo(stateData)
	}
	return t.reconsumeIn(stateComment)
}

func (t *Tokenizer) commentStartDash(item InputItem) (bool, error) {
	if item.EOF {
		t.reportError(EOFInComment, item.Offset)
		if err := t.emit(t.b.CommentToken()); err != nil {
			return false, err
		}
		return t.emitEOF(item.Offset)
	}
	switch item.CodePoint {
	case '-':
		return t.switchTo(stateCommentEnd)
	case '>':
		t.reportError(AbruptClosingOfEmptyComment, item.Offset)
		if err := t.emit(t.b.CommentToken()); err != nil {
			return false, err
		}
		return t.switchTo(stateData)
	default:
		t.b.WriteData('-')
		return t.reconsumeIn(stateComment)
	}
}

func (t *Tokenizer) comment(item InputItem) (bool, error) {
	if item.EOF {
		t.reportError(EOFInComment, item.Offset)
		if err := t.emit(t.b.CommentToken()); err != nil {
			return false, err
		}
		return t.emitEOF(item.Offset)
	}
	switch item.CodePoint {
	case '<':
		t.b.WriteData('<')
		return t.switchTo(stateCommentLessThanSign)
	case '-':
		return t.switchTo(stateCommentEndDash)
	case 0x0000:
		t.reportError(UnexpectedNullCharacter, item.Offset)
		t.b.WriteData(0xFFFD)
	default:
		t.b.WriteData(item.CodePoint)
	}
	return false, nil
}

func (t *Tokenizer) commentLessThanSign(item InputItem) (bool, error) {
	if !item.EOF && item.CodePoint == '!' {
		t.b.WriteData('!')
		return t.switchTo(stateCommentLessThanSignBang)
	}
	if !item.EOF && item.CodePoint == '<' {
		t.b.WriteData('<')
		return false, nil
	}
	return t.reconsumeIn(stateComment)
}

func (t *Tokenizer) commentLessThanSignBang(item InputItem) (bool, error) {
	if !item.EOF && item.CodePoint == '-' {
		return t.switchTo(stateCommentLessThanSignBangDash)
	}
	return t.reconsumeIn(stateComment)
}

func (t *Tokenizer) commentLessThanSignBangDash(item InputItem) (bool, error) {
	if !item.EOF && item.CodePoint == '-' {
		return t.switchTo(stateCommentLessThanSignBangDashDash)
	}
	return t.reconsumeIn(stateCommentEndDash)
}

func (t *Tokenizer) commentLessThanSignBangDashDash(item InputItem) (bool, error) {
	if item.EOF || item.CodePoint == '>' {
		return t.reconsumeIn(stateCommentEnd)
	}
	t.reportError(NestedComment, item.Offset)
	return t.reconsumeIn(stateCommentEnd)
}

func (t *Tokenizer) commentEndDash(item InputItem) (bool, error) {
	if item.EOF {
		t.reportError(EOFInComment, item.Offset)
		if err := t.emit(t.b.CommentToken()); err != nil {
			return false, err
		}
		return t.emitEOF(item.Offset)
	}
	if item.CodePoint == '-' {
		return t.switchTo(stateCommentEnd)
	}
	t.b.WriteData('-')
	return t.reconsumeIn(stateComment)
}

func (t *Tokenizer) commentEnd(item InputItem) (bool, error) {
	if item.EOF {
		t.reportError(EOFInComment, item.Offset)
		if err := t.emit(t.b.CommentToken()); err != nil {
			return false, err
		}
		return t.emitEOF(item.Offset)
	}
	switch item.CodePoint {
	case '>':
		if err := t.emit(t.b.CommentToken()); err != nil {
			return false, err
		}
		return t.switchTo(stateData)
	case '!':
		return t.switchTo(stateCommentEndBang)
	case '-':
		t.b.WriteData('-')
		return false, nil
	default:
		t.b.WriteData('-')
		t.b.WriteData('-')
		return t.reconsumeIn(stateComment)
	}
}

func (t *Tokenizer) commentEndBang(item InputItem) (bool, error) {
	if item.EOF {
		t.reportError(EOFInComment, item.Offset)
		if err := t.emit(t.b.CommentToken()); err != nil {
			return false, err
		}
		return t.emitEOF(item.Offset)
	}
	switch item.CodePoint {
	case '-':
		t.b.WriteData('-')
		t.b.WriteData('-')
		t.b.WriteData('!')
		return t.switchTo(stateCommentEndDash)
	case '>':
		t.reportError(IncorrectlyClosedComment, item.Offset)
		if err := t.emit(t.b.CommentToken()); err != nil {
			return false, err
		}
		return t.switchTo(stateData)
	default:
		t.b.WriteData('-')
		t.b.WriteData('-')
		t.b.WriteData('!')
		return t.reconsumeIn(stateComment)
	}
}

// --- DOCTYPE family ---

func (t *Tokenizer) doctype(item InputItem) (bool, error) {
	t.b.Reset()
	if item.EOF {
		t.reportError(EOFInDoctype, item.Offset)
		t.b.EnableForceQuirks()
		if err := t.emit(t.b.DoctypeToken()); err != nil {
			return false, err
		}
		return t.emitEOF(item.Offset)
	}
	if isASCIIWhitespace(item.CodePoint) {
		return t.switchTo(stateBeforeDoctypeName)
	}
	if item.CodePoint == '>' {
		return t.reconsumeIn(stateBeforeDoctypeName)
	}
	t.reportError(MissingWhitespaceBeforeDoctypeName, item.Offset)
	return t.reconsumeIn(stateBeforeDoctypeName)
}

func (t *Tokenizer) beforeDoctypeName(item InputItem) (bool, error) {
	if item.EOF {
		t.reportError(EOFInDoctype, item.Offset)
		t.b.EnableForceQuirks()
		if err := t.emit(t.b.DoctypeToken()); err != nil {
			return false, err
		}
		return t.emitEOF(item.Offset)
	}
	switch {
	case isASCIIWhitespace(item.CodePoint):
		return false, nil
	case isASCIIUpperAlpha(item.CodePoint):
		t.b.WriteDoctypeName(toASCIILower(item.CodePoint))
		return t.switchTo(stateDoctypeName)
	case item.CodePoint == 0x0000:
		t.reportError(UnexpectedNullCharacter, item.Offset)
		t.b.WriteDoctypeName(0xFFFD)
		return t.switchTo(stateDoctypeName)
	case item.CodePoint == '>':
		// Leave the name empty here rather than falling back to 0xFFFD.
		t.reportError(MissingDoctypeName, item.Offset)
		t.b.EnableForceQuirks()
		if err := t.emit(t.b.DoctypeToken()); err != nil {
			return false, err
		}
		return t.switchTo(stateData)
	default:
		t.b.WriteDoctypeName(item.CodePoint)
		return t.switchTo(stateDoctypeName)
	}
}

func (t *Tokenizer) doctypeName(item InputItem) (bool, error) {
	if item.EOF {
		t.reportError(EOFInDoctype, item.Offset)
		t.b.EnableForceQuirks()
		if err := t.emit(t.b.DoctypeToken()); err != nil {
			return false, err
		}
		return t.emitEOF(item.Offset)
	}
	switch {
	case isASCIIWhitespace(item.CodePoint):
		return t.switchTo(stateAfterDoctypeName)
	case item.CodePoint == '>':
		if err := t.emit(t.b.DoctypeToken()); err != nil {
			return false, err
		}
		return t.switchTo(stateData)
	case isASCIIUpperAlpha(item.CodePoint):
		t.b.WriteDoctypeName(toASCIILower(item.CodePoint))
	case item.CodePoint == 0x0000:
		t.reportError(UnexpectedNullCharacter, item.Offset)
		t.b.WriteDoctypeName(0xFFFD)
	default:
		t.b.WriteDoctypeName(item.CodePoint)
	}
	return false, nil
}

// afterDoctypeName decides whether the next six characters are an
// ASCII case-insensitive match for PUBLIC or SYSTEM, one item at a
// time, accumulating into afterDoctypeItems for the same streaming
// reason markupDeclarationOpen does.
func (t *Tokenizer) afterDoctypeName(item InputItem) (bool, error) {
	if item.EOF {
		t.afterDoctypeItems = nil
		t.reportError(EOFInDoctype, item.Offset)
		t.b.EnableForceQuirks()
		if err := t.emit(t.b.DoctypeToken()); err != nil {
			return false, err
		}
		return t.emitEOF(item.Offset)
	}

	if len(t.afterDoctypeItems) == 0 {
		switch {
		case isASCIIWhitespace(item.CodePoint):
			return false, nil
		case item.CodePoint == '>':
			if err := t.emit(t.b.DoctypeToken()); err != nil {
				return false, err
			}
			return t.switchTo(stateData)
		case item.CodePoint == 'P' || item.CodePoint == 'p' || item.CodePoint == 'S' || item.CodePoint == 's':
			t.afterDoctypeItems = append(t.afterDoctypeItems, item)
			return false, nil
		default:
			t.reportError(InvalidCharacterSequenceAfterDoctypeName, item.Offset)
			t.b.EnableForceQuirks()
			return t.reconsumeIn(stateBogusDoctype)
		}
	}

	word, next := "PUBLIC", stateAfterDoctypePublicKeyword
	if first := t.afterDoctypeItems[0].CodePoint; first == 'S' || first == 's' {
		word, next = "SYSTEM", stateAfterDoctypeSystemKeyword
	}

	t.afterDoctypeItems = append(t.afterDoctypeItems, item)
	n := len(t.afterDoctypeItems)

	if n > len(word) || toASCIILower(item.CodePoint) != toASCIILower(rune(word[n-1])) {
		t.reportError(InvalidCharacterSequenceAfterDoctypeName, item.Offset)
		t.b.EnableForceQuirks()
		items := t.afterDoctypeItems
		t.afterDoctypeItems = nil
		t.in.ReconsumeAll(items)
		return t.switchTo(stateBogusDoctype)
	}
	if n < len(word) {
		return false, nil
	}
	t.afterDoctypeItems = nil
	return t.switchTo(next)
}

func (t *Tokenizer) afterDoctypePublicKeyword(item InputItem) (bool, error) {
	if item.EOF {
		t.reportError(EOFInDoctype, item.Offset)
		t.b.EnableForceQuirks()
		if err := t.emit(t.b.DoctypeToken()); err != nil {
			return false, err
		}
		return t.emitEOF(item.Offset)
	}
	switch {
	case isASCIIWhitespace(item.CodePoint):
		return t.switchTo(stateBeforeDoctypePublicIdentifier)
	case item.CodePoint == '"':
		t.reportError(MissingWhitespaceAfterDoctypePublicKeyword, item.Offset)
		t.b.WritePublicIdentifierEmpty()
		return t.switchTo(stateDoctypePublicIdentifierDoubleQuoted)
	case item.CodePoint == '\'':
		t.reportError(MissingWhitespaceAfterDoctypePublicKeyword, item.Offset)
		t.b.WritePublicIdentifierEmpty()
		return t.switchTo(stateDoctypePublicIdentifierSingleQuoted)
	case item.CodePoint == '>':
		t.reportError(MissingDoctypePublicIdentifier, item.Offset)
		t.b.EnableForceQuirks()
		if err := t.emit(t.b.DoctypeToken()); err != nil {
			return false, err
		}
		return t.switchTo(stateData)
	default:
		t.reportError(MissingQuoteBeforeDoctypePublicIdentifier, item.Offset)
		t.b.EnableForceQuirks()
		return t.reconsumeIn(stateBogusDoctype)
	}
}

func (t *Tokenizer) beforeDoctypePublicIdentifier(item InputItem) (bool, error) {
	if item.EOF {
		t.reportError(EOFInDoctype, item.Offset)
		t.b.EnableForceQuirks()
		if err := t.emit(t.b.DoctypeToken()); err != nil {
			return false, err
		}
		return t.emitEOF(item.Offset)
	}
	switch {
	case isASCIIWhitespace(item.CodePoint):
		return false, nil
	case item.CodePoint == '"':
		t.b.WritePublicIdentifierEmpty()
		return t.switchTo(stateDoctypePublicIdentifierDoubleQuoted)
	case item.CodePoint == '\'':
		t.b.WritePublicIdentifierEmpty()
		return t.switchTo(stateDoctypePublicIdentifierSingleQuoted)
	case item.CodePoint == '>':
		t.reportError(MissingDoctypePublicIdentifier, item.Offset)
		t.b.EnableForceQuirks()
		if err := t.emit(t.b.DoctypeToken()); err != nil {
			return false, err
		}
		return t.switchTo(stateData)
	default:
		t.reportError(MissingQuoteBeforeDoctypePublicIdentifier, item.Offset)
		t.b.EnableForceQuirks()
		return t.reconsumeIn(stateBogusDoctype)
	}
}

func (t *Tokenizer) doctypePublicIdentifierQuoted(item InputItem, quote rune) (bool, error) {
	if item.EOF {
		t.reportError(EOFInDoctype, item.Offset)
		t.b.EnableForceQuirks()
		if err := t.emit(t.b.DoctypeToken()); err != nil {
			return false, err
		}
		return t.emitEOF(item.Offset)
	}
	switch {
	case item.CodePoint == quote:
		return t.switchTo(stateAfterDoctypePublicIdentifier)
	case item.CodePoint == 0x0000:
		t.reportError(UnexpectedNullCharacter, item.Offset)
		t.b.WritePublicIdentifier(0xFFFD)
	case item.CodePoint == '>':
		t.reportError(AbruptDoctypePublicIdentifier, item.Offset)
		t.b.EnableForceQuirks()
		if err := t.emit(t.b.DoctypeToken()); err != nil {
			return false, err
		}
		return t.switchTo(stateData)
	default:
		t.b.WritePublicIdentifier(item.CodePoint)
	}
	return false, nil
}

func (t *Tokenizer) afterDoctypePublicIdentifier(item InputItem) (bool, error) {
	if item.EOF {
		t.reportError(EOFInDoctype, item.Offset)
		t.b.EnableForceQuirks()
		if err := t.emit(t.b.DoctypeToken()); err != nil {
			return false, err
		}
		return t.emitEOF(item.Offset)
	}
	switch {
	case isASCIIWhitespace(item.CodePoint):
		return t.switchTo(stateBetweenDoctypePublicAndSystemIdentifiers)
	case item.CodePoint == '>':
		if err := t.emit(t.b.DoctypeToken()); err != nil {
			return false, err
		}
		return t.switchTo(stateData)
	case item.CodePoint == '"':
		t.reportError(MissingWhitespaceBetweenDoctypePublicAndSystemIdentifiers, item.Offset)
		t.b.WriteSystemIdentifierEmpty()
		return t.switchTo(stateDoctypeSystemIdentifierDoubleQuoted)
	case item.CodePoint == '\'':
		t.reportError(MissingWhitespaceBetweenDoctypePublicAndSystemIdentifiers, item.Offset)
		t.b.WriteSystemIdentifierEmpty()
		return t.switchTo(stateDoctypeSystemIdentifierSingleQuoted)
	default:
		t.reportError(MissingQuoteBeforeDoctypeSystemIdentifier, item.Offset)
		t.b.EnableForceQuirks()
		return t.reconsumeIn(stateBogusDoctype)
	}
}

func (t *Tokenizer) betweenDoctypePublicAndSystemIdentifiers(item InputItem) (bool, error) {
	if item.EOF {
		t.reportError(EOFInDoctype, item.Offset)
		t.b.EnableForceQuirks()
		if err := t.emit(t.b.DoctypeToken()); err != nil {
			return false, err
		}
		return t.emitEOF(item.Offset)
	}
	switch {
	case isASCIIWhitespace(item.CodePoint):
		return false, nil
	case item.CodePoint == '>':
		if err := t.emit(t.b.DoctypeToken()); err != nil {
			return false, err
		}
		return t.switchTo(stateData)
	case item.CodePoint == '"':
		t.b.WriteSystemIdentifierEmpty()
		return t.switchTo(stateDoctypeSystemIdentifierDoubleQuoted)
	case item.CodePoint == '\'':
		t.b.WriteSystemIdentifierEmpty()
		return t.switchTo(stateDoctypeSystemIdentifierSingleQuoted)
	default:
		t.reportError(MissingQuoteBeforeDoctypeSystemIdentifier, item.Offset)
		t.b.EnableForceQuirks()
		return t.reconsumeIn(stateBogusDoctype)
	}
}

func (t *Tokenizer) afterDoctypeSystemKeyword(item InputItem) (bool, error) {
	if item.EOF {
		t.reportError(EOFInDoctype, item.Offset)
		t.b.EnableForceQuirks()
		if err := t.emit(t.b.DoctypeToken()); err != nil {
			return false, err
		}
		return t.emitEOF(item.Offset)
	}
	switch {
	case isASCIIWhitespace(item.CodePoint):
		return t.switchTo(stateBeforeDoctypeSystemIdentifier)
	case item.CodePoint == '"':
		t.reportError(MissingWhitespaceAfterDoctypeSystemKeyword, item.Offset)
		t.b.WriteSystemIdentifierEmpty()
		return t.switchTo(stateDoctypeSystemIdentifierDoubleQuoted)
	case item.CodePoint == '\'':
		t.reportError(MissingWhitespaceAfterDoctypeSystemKeyword, item.Offset)
		t.b.WriteSystemIdentifierEmpty()
		return t.switchTo(stateDoctypeSystemIdentifierSingleQuoted)
	case item.CodePoint == '>':
		t.reportError(MissingDoctypeSystemIdentifier, item.Offset)
		t.b.EnableForceQuirks()
		if err := t.emit(t.b.DoctypeToken()); err != nil {
			return false, err
		}
		return t.switchTo(stateData)
	default:
		t.reportError(MissingQuoteBeforeDoctypeSystemIdentifier, item.Offset)
		t.b.EnableForceQuirks()
		return t.reconsumeIn(stateBogusDoctype)
	}
}

func (t *Tokenizer) beforeDoctypeSystemIdentifier(item InputItem) (bool, error) {
	if item.EOF {
		t.reportError(EOFInDoctype, item.Offset)
		t.b.EnableForceQuirks()
		if err := t.emit(t.b.DoctypeToken()); err != nil {
			return false, err
		}
		return t.emitEOF(item.Offset)
	}
	switch {
	case isASCIIWhitespace(item.CodePoint):
		return false, nil
	case item.CodePoint == '"':
		t.b.WriteSystemIdentifierEmpty()
		return t.switchTo(stateDoctypeSystemIdentifierDoubleQuoted)
	case item.CodePoint == '\'':
		t.b.WriteSystemIdentifierEmpty()
		return t.switchTo(stateDoctypeSystemIdentifierSingleQuoted)
	case item.CodePoint == '>':
		t.reportError(MissingDoctypeSystemIdentifier, item.Offset)
		t.b.EnableForceQuirks()
		if err := t.emit(t.b.DoctypeToken()); err != nil {
			return false, err
		}
		return t.switchTo(stateData)
	default:
		t.reportError(MissingQuoteBeforeDoctypeSystemIdentifier, item.Offset)
		t.b.EnableForceQuirks()
		return t.reconsumeIn(stateBogusDoctype)
	}
}

func (t *Tokenizer) doctypeSystemIdentifierQuoted(item InputItem, quote rune) (bool, error) {
	if item.EOF {
		t.reportError(EOFInDoctype, item.Offset)
		t.b.EnableForceQuirks()
		if err := t.emit(t.b.DoctypeToken()); err != nil {
			return false, err
		}
		return t.emitEOF(item.Offset)
	}
	switch {
	case item.CodePoint == quote:
		return t.switchTo(stateAfterDoctypeSystemIdentifier)
	case item.CodePoint == 0x0000:
		t.reportError(UnexpectedNullCharacter, item.Offset)
		t.b.WriteSystemIdentifier(0xFFFD)
	case item.CodePoint == '>':
		t.reportError(AbruptDoctypeSystemIdentifier, item.Offset)
		t.b.EnableForceQuirks()
		if err := t.emit(t.b.DoctypeToken()); err != nil {
			return false, err
		}
		return t.switchTo(stateData)
	default:
		t.b.WriteSystemIdentifier(item.CodePoint)
	}
	return false, nil
}

func (t *Tokenizer) afterDoctypeSystemIdentifier(item InputItem) (bool, error) {
	if item.EOF {
		t.reportError(EOFInDoctype, item.Offset)
		t.b.EnableForceQuirks()
		if err := t.emit(t.b.DoctypeToken()); err != nil {
			return false, err
		}
		return t.emitEOF(item.Offset)
	}
	switch {
	case isASCIIWhitespace(item.CodePoint):
		return false, nil
	case item.CodePoint == '>':
		if err := t.emit(t.b.DoctypeToken()); err != nil {
			return false, err
		}
		return t.switchTo(stateData)
	default:
		t.reportError(UnexpectedCharacterAfterDoctypeSystemIdentifier, item.Offset)
		return t.reconsumeIn(stateBogusDoctype)
	}
}

func (t *Tokenizer) bogusDoctype(item InputItem) (bool, error) {
	if item.EOF {
		if err := t.emit(t.b.DoctypeToken()); err != nil {
			return false, err
		}
		return t.emitEOF(item.Offset)
	}
	switch item.CodePoint {
	case '>':
		if err := t.emit(t.b.DoctypeToken()); err != nil {
			return false, err
		}
		return t.switchTo(stateData)
	case 0x0000:
		t.reportError(UnexpectedNullCharacter, item.Offset)
	}
	return false, nil
}

// --- CDATA section family ---

func (t *Tokenizer) cdataSection(item InputItem) (bool, error) {
	if item.EOF {
		t.reportError(EOFInCdata, item.Offset)
		return t.emitEOF(item.Offset)
	}
	if item.CodePoint == ']' {
		return t.switchTo(stateCDATASectionBracket)
	}
	return t.emitChar(item.CodePoint)
}

func (t *Tokenizer) cdataSectionBracket(item InputItem) (bool, error) {
	if !item.EOF && item.CodePoint == ']' {
		return t.switchTo(stateCDATASectionEnd)
	}
	if err := t.emit(characterToken(']')); err != nil {
		return false, err
	}
	return t.reconsumeIn(stateCDATASection)
}

func (t *Tokenizer) cdataSectionEnd(item InputItem) (bool, error) {
	if !item.EOF {
		switch item.CodePoint {
		case ']':
			return false, t.emit(characterToken(']'))
		case '>':
			return t.switchTo(stateData)
		}
	}
	if err := t.emit(characterToken(']')); err != nil {
		return false, err
	}
	if err := t.emit(characterToken(']')); err != nil {
		return false, err
	}
	return t.reconsumeIn(stateCDATASection)
}
