package tokenizer

// Script-data escape and double-escape family, implemented per the
// formal WHATWG transitions: script_data_double_escape_start and
// script_data_double_escape_end toggle between the escaped and
// double-escaped states depending on whether the accumulated word in
// temp_buffer is exactly "script" at a word boundary.

func (t *Tokenizer) scriptDataLessThanSign(item InputItem) (bool, error) {
	if !item.EOF && item.CodePoint == '/' {
		t.b.ResetTempBuffer()
		return t.switchTo(stateScriptDataEndTagOpen)
	}
	if !item.EOF && item.CodePoint == '!' {
		if err := t.emit(characterToken('<')); err != nil {
			return false, err
		}
		if err := t.emit(characterToken('!')); err != nil {
			return false, err
		}
		return t.switchTo(stateScriptDataEscapeStart)
	}
	if err := t.emit(characterToken('<')); err != nil {
		return false, err
	}
	return t.reconsumeIn(stateScriptData)
}

func (t *Tokenizer) scriptDataEscapeStart(item InputItem) (bool, error) {
	if !item.EOF && item.CodePoint == '-' {
		if err := t.emit(characterToken('-')); err != nil {
			return false, err
		}
		return t.switchTo(stateScriptDataEscapeStartDash)
	}
	return t.reconsumeIn(stateScriptData)
}

func (t *Tokenizer) scriptDataEscapeStartDash(item InputItem) (bool, error) {
	if !item.EOF && item.CodePoint == '-' {
		if err := t.emit(characterToken('-')); err != nil {
			return false, err
		}
		return t.switchTo(stateScriptDataEscapedDashDash)
	}
	return t.reconsumeIn(stateScriptData)
}

func (t *Tokenizer) scriptDataEscaped(item InputItem) (bool, error) {
	if item.EOF {
		t.reportError(EOFInScriptHTMLCommentLikeText, item.Offset)
		return t.emitEOF(item.Offset)
	}
	switch item.CodePoint {
	case '-':
		if err := t.emit(characterToken('-')); err != nil {
			return false, err
		}
		return t.switchTo(stateScriptDataEscapedDash)
	case '<':
		return t.switchTo(stateScriptDataEscapedLessThanSign)
	case 0x0000:
		t.reportError(UnexpectedNullCharacter, item.Offset)
		return t.emitChar(0xFFFD)
	}
	return t.emitChar(item.CodePoint)
}

func (t *Tokenizer) scriptDataEscapedDash(item InputItem) (bool, error) {
	if item.EOF {
		t.reportError(EOFInScriptHTMLCommentLikeText, item.Offset)
		return t.emitEOF(item.Offset)
	}
	switch item.CodePoint {
	case '-':
		if err := t.emit(characterToken('-')); err != nil {
			return false, err
		}
		return t.switchTo(stateScriptDataEscapedDashDash)
	case '<':
		return t.switchTo(stateScriptDataEscapedLessThanSign)
	case 0x0000:
		t.reportError(UnexpectedNullCharacter, item.Offset)
		if err := t.emit(characterToken(0xFFFD)); err != nil {
			return false, err
		}
		return t.switchTo(stateScriptDataEscaped)
	default:
		if err := t.emit(characterToken(item.CodePoint)); err != nil {
			return false, err
		}
		return t.switchTo(stateScriptDataEscaped)
	}
}

func (t *Tokenizer) scriptDataEscapedDashDash(item InputItem) (bool, error) {
	if item.EOF {
		t.reportError(EOFInScriptHTMLCommentLikeText, item.Offset)
		return t.emitEOF(item.Offset)
	}
	switch item.CodePoint {
	case '-':
		return false, t.emit(characterToken('-'))
	case '<':
		return t.switchTo(stateScriptDataEscapedLessThanSign)
	case '>':
		if err := t.emit(characterToken('>')); err != nil {
			return false, err
		}
		return t.switchTo(stateScriptData)
	case 0x0000:
		t.reportError(UnexpectedNullCharacter, item.Offset)
		if err := t.emit(characterToken(0xFFFD)); err != nil {
			return false, err
		}
		return t.switchTo(stateScriptDataEscaped)
	default:
		if err := t.emit(characterToken(item.CodePoint)); err != nil {
			return false, err
		}
		return t.switchTo(stateScriptDataEscaped)
	}
}

func (t *Tokenizer) scriptDataEscapedLessThanSign(item InputItem) (bool, error) {
	if !item.EOF && item.CodePoint == '/' {
		t.b.ResetTempBuffer()
		return t.switchTo(stateScriptDataEscapedEndTagOpen)
	}
	if !item.EOF && isASCIIAlpha(item.CodePoint) {
		t.b.ResetTempBuffer()
		if err := t.emit(characterToken('<')); err != nil {
			return false, err
		}
		return t.reconsumeIn(stateScriptDataDoubleEscapeStart)
	}
	if err := t.emit(characterToken('<')); err != nil {
		return false, err
	}
	return t.reconsumeIn(stateScriptDataEscaped)
}

func (t *Tokenizer) scriptDataDoubleEscapeStart(item InputItem) (bool, error) {
	return t.doubleEscapeTransition(item, stateScriptDataEscaped, stateScriptDataDoubleEscaped, stateScriptDataEscaped)
}

func (t *Tokenizer) scriptDataDoubleEscapeEnd(item InputItem) (bool, error) {
	return t.doubleEscapeTransition(item, stateScriptDataDoubleEscaped, stateScriptDataEscaped, stateScriptDataDoubleEscaped)
}

// doubleEscapeTransition implements the shared shape of
// script_data_double_escape_{start,end}: on a word boundary,
// "script" (case-insensitively accumulated in temp_buffer) toggles
// between matchState and noMatchState; letters extend temp_buffer;
// anything else reconsumes in fallback.
func (t *Tokenizer) doubleEscapeTransition(item InputItem, noMatchState, matchState, fallback tokenizerState) (bool, error) {
	if !item.EOF {
		switch {
		case isASCIIWhitespace(item.CodePoint) || item.CodePoint == '/' || item.CodePoint == '>':
			next := noMatchState
			if t.b.TempBufferString() == "script" {
				next = matchState
			}
			if err := t.emit(characterToken(item.CodePoint)); err != nil {
				return false, err
			}
			return t.switchTo(next)
		case isASCIIUpperAlpha(item.CodePoint):
			t.b.WriteTempBuffer(toASCIILower(item.CodePoint))
			return false, t.emit(characterToken(item.CodePoint))
		case isASCIILowerAlpha(item.CodePoint):
			t.b.WriteTempBuffer(item.CodePoint)
			return false, t.emit(characterToken(item.CodePoint))
		}
	}
	return t.reconsumeIn(fallback)
}

func (t *Tokenizer) scriptDataDoubleEscaped(item InputItem) (bool, error) {
	if item.EOF {
		t.reportError(EOFInScriptHTMLCommentLikeText, item.Offset)
		return t.emitEOF(item.Offset)
	}
	switch item.CodePoint {
	case '-':
		if err := t.emit(characterToken('-')); err != nil {
			return false, err
		}
		return t.switchTo(stateScriptDataDoubleEscapedDash)
	case '<':
		if err := t.emit(characterToken('<')); err != nil {
			return false, err
		}
		return t.switchTo(stateScriptDataDoubleEscapedLessThanSign)
	case 0x0000:
		t.reportError(UnexpectedNullCharacter, item.Offset)
		return t.emitChar(0xFFFD)
	}
	return t.emitChar(item.CodePoint)
}

func (t *Tokenizer) scriptDataDoubleEscapedDash(item InputItem) (bool, error) {
	if item.EOF {
		t.reportError(EOFInScriptHTMLCommentLikeText, item.Offset)
		return t.emitEOF(item.Offset)
	}
	switch item.CodePoint {
	case '-':
		if err := t.emit(characterToken('-')); err != nil {
			return false, err
		}
		return t.switchTo(stateScriptDataDoubleEscapedDashDash)
	case '<':
		if err := t.emit(characterToken('<')); err != nil {
			return false, err
		}
		return t.switchTo(stateScriptDataDoubleEscapedLessThanSign)
	case 0x0000:
		t.reportError(UnexpectedNullCharacter, item.Offset)
		if err := t.emit(characterToken(0xFFFD)); err != nil {
			return false, err
		}
		return t.switchTo(stateScriptDataDoubleEscaped)
	default:
		if err := t.emit(characterToken(item.CodePoint)); err != nil {
			return false, err
		}
		return t.switchTo(stateScriptDataDoubleEscaped)
	}
}

func (t *Tokenizer) scriptDataDoubleEscapedDashDash(item InputItem) (bool, error) {
	if item.EOF {
		t.reportError(EOFInScriptHTMLCommentLikeText, item.Offset)
		return t.emitEOF(item.Offset)
	}
	switch item.CodePoint {
	case '-':
		return false, t.emit(characterToken('-'))
	case '<':
		if err := t.emit(characterToken('<')); err != nil {
			return false, err
		}
		return t.switchTo(stateScriptDataDoubleEscapedLessThanSign)
	case '>':
		if err := t.emit(characterToken('>')); err != nil {
			return false, err
		}
		return t.switchTo(stateScriptData)
	case 0x0000:
		t.reportError(UnexpectedNullCharacter, item.Offset)
		if err := t.emit(characterToken(0xFFFD)); err != nil {
			return false, err
		}
		return t.switchTo(stateScriptDataDoubleEscaped)
	default:
		if err := t.emit(characterToken(item.CodePoint)); err != nil {
			return false, err
		}
		return t.switchTo(stateScriptDataDoubleEscaped)
	}
}

func (t *Tokenizer) scriptDataDoubleEscapedLessThanSign(item InputItem) (bool, error) {
	if !item.EOF && item.CodePoint == '/' {
		t.b.ResetTempBuffer()
		if err := t.emit(characterToken('/')); err != nil {
			return false, err
		}
		return t.switchTo(stateScriptDataDoubleEscapeEnd)
	}
	return t.reconsumeIn(stateScriptDataDoubleEscaped)
}
