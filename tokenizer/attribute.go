package tokenizer

// Attribute family.

func (t *Tokenizer) beforeAttributeName(item InputItem) (bool, error) {
	if item.EOF || item.CodePoint == '/' || item.CodePoint == '>' {
		return t.reconsumeIn(stateAfterAttributeName)
	}
	if isASCIIWhitespace(item.CodePoint) {
		return false, nil
	}
	if item.CodePoint == '=' {
		t.reportError(UnexpectedEqualsSignBeforeAttributeName, item.Offset)
		t.b.StartAttribute()
		t.b.WriteAttributeName('=')
		return t.switchTo(stateAttributeName)
	}
	t.b.StartAttribute()
	return t.reconsumeIn(stateAttributeName)
}

func (t *Tokenizer) attributeName(item InputItem) (bool, error) {
	if item.EOF || isASCIIWhitespace(item.CodePoint) || item.CodePoint == '/' || item.CodePoint == '>' {
		t.commitCurrentAttribute(item.Offset)
		return t.reconsumeIn(stateAfterAttributeName)
	}
	switch {
	case item.CodePoint == '=':
		t.commitCurrentAttribute(item.Offset)
		return t.switchTo(stateBeforeAttributeValue)
	case isASCIIUpperAlpha(item.CodePoint):
		t.b.WriteAttributeName(toASCIILower(item.CodePoint))
	case item.CodePoint == 0x0000:
		t.reportError(UnexpectedNullCharacter, item.Offset)
		t.b.WriteAttributeName(0xFFFD)
	case item.CodePoint == '"' || item.CodePoint == '\'' || item.CodePoint == '<':
		t.reportError(UnexpectedCharacterInAttributeName, item.Offset)
		t.b.WriteAttributeName(item.CodePoint)
	default:
		t.b.WriteAttributeName(item.CodePoint)
	}
	return false, nil
}

// commitCurrentAttribute is called when attribute_name ends: the name
// so far is complete and must be committed before the state
// transition. Committing here, rather than lazily in
// after_attribute_name, keeps CommitAttribute's dedup check aligned
// with the name as it stood at the moment the attribute name ended.
func (t *Tokenizer) commitCurrentAttribute(offset uint64) {
	if t.b.CommitAttribute() {
		t.reportError(DuplicateAttribute, offset)
	}
}

func (t *Tokenizer) afterAttributeName(item InputItem) (bool, error) {
	if item.EOF {
		t.reportError(EOFInTag, item.Offset)
		return t.emitEOF(item.Offset)
	}
	switch {
	case isASCIIWhitespace(item.CodePoint):
		return false, nil
	case item.CodePoint == '/':
		return t.switchTo(stateSelfClosingStartTag)
	case item.CodePoint == '=':
		return t.switchTo(stateBeforeAttributeValue)
	case item.CodePoint == '>':
		return t.emitCurrentTag2(stateData)
	default:
		t.b.StartAttribute()
		return t.reconsumeIn(stateAttributeName)
	}
}

func (t *Tokenizer) beforeAttributeValue(item InputItem) (bool, error) {
	if !item.EOF && isASCIIWhitespace(item.CodePoint) {
		return false, nil
	}
	if !item.EOF && item.CodePoint == '"' {
		return t.switchTo(stateAttributeValueDoubleQuoted)
	}
	if !item.EOF && item.CodePoint == '\'' {
		return t.switchTo(stateAttributeValueSingleQuoted)
	}
	if !item.EOF && item.CodePoint == '>' {
		t.reportError(MissingAttributeValue, item.Offset)
		return t.emitCurrentTag2(stateData)
	}
	return t.reconsumeIn(stateAttributeValueUnquoted)
}

func (t *Tokenizer) attributeValueQuoted(item InputItem, quote rune, self tokenizerState) (bool, error) {
	if item.EOF {
		t.reportError(EOFInTag, item.Offset)
		return t.emitEOF(item.Offset)
	}
	switch {
	case item.CodePoint == quote:
		return t.switchTo(stateAfterAttributeValueQuoted)
	case item.CodePoint == '&':
		t.returnState = self
		return t.switchTo(stateCharacterReference)
	case item.CodePoint == 0x0000:
		t.reportError(UnexpectedNullCharacter, item.Offset)
		t.b.WriteAttributeValue(0xFFFD)
	default:
		t.b.WriteAttributeValue(item.CodePoint)
	}
	return false, nil
}

func (t *Tokenizer) attributeValueUnquoted(item InputItem) (bool, error) {
	if item.EOF {
		t.reportError(EOFInTag, item.Offset)
		return t.emitEOF(item.Offset)
	}
	switch {
	case isASCIIWhitespace(item.CodePoint):
		return t.switchTo(stateBeforeAttributeName)
	case item.CodePoint == '&':
		t.returnState = stateAttributeValueUnquoted
		return t.switchTo(stateCharacterReference)
	case item.CodePoint == '>':
		return t.emitCurrentTag2(stateData)
	case item.CodePoint == 0x0000:
		t.reportError(UnexpectedNullCharacter, item.Offset)
		t.b.WriteAttributeValue(0xFFFD)
	case item.CodePoint == '"' || item.CodePoint == '\'' || item.CodePoint == '<' ||
		item.CodePoint == '=' || item.CodePoint == '`':
		t.reportError(UnexpectedCharacterInUnquotedAttributeValue, item.Offset)
		t.b.WriteAttributeValue(item.CodePoint)
	default:
		t.b.WriteAttributeValue(item.CodePoint)
	}
	return false, nil
}

func (t *Tokenizer) afterAttributeValueQuoted(item InputItem) (bool, error) {
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
	default:
		t.reportError(MissingWhitespaceBetweenAttributes, item.Offset)
		return t.reconsumeIn(stateBeforeAttributeName)
	}
}

func (t *Tokenizer) selfClosingStartTag(item InputItem) (bool, error) {
	if item.EOF {
		t.reportError(EOFInTag, item.Offset)
		return t.emitEOF(item.Offset)
	}
	if item.CodePoint == '>' {
		t.b.EnableSelfClosing()
		return t.emitCurrentTag2(stateData)
	}
	t.reportError(UnexpectedSolidusInTag, item.Offset)
	return t.reconsumeIn(stateBeforeAttributeName)
}
