package tokenizer

// Character classification helpers used throughout the state machine.

func isASCIIWhitespace(r rune) bool {
	switch r {
	case '\t', '\n', '\f', ' ', '\r':
		return true
	}
	return false
}

func isASCIIDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isASCIIUpperAlpha(r rune) bool {
	return r >= 'A' && r <= 'Z'
}

func isASCIILowerAlpha(r rune) bool {
	return r >= 'a' && r <= 'z'
}

func isASCIIAlpha(r rune) bool {
	return isASCIIUpperAlpha(r) || isASCIILowerAlpha(r)
}

func isASCIIAlphanumeric(r rune) bool {
	return isASCIIAlpha(r) || isASCIIDigit(r)
}

func isASCIIHexDigit(r rune) bool {
	return isASCIIDigit(r) || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

func toASCIILower(r rune) rune {
	if isASCIIUpperAlpha(r) {
		return r + ('a' - 'A')
	}
	return r
}

func isC0Control(r int) bool {
	return r >= 0x00 && r <= 0x1F
}

func isControl(r int) bool {
	return isC0Control(r) || (r >= 0x7F && r <= 0x9F)
}

func isSurrogate(r int) bool {
	return r >= 0xD800 && r <= 0xDFFF
}

func isNonCharacter(r int) bool {
	if r >= 0xFDD0 && r <= 0xFDEF {
		return true
	}
	switch r {
	case 0xFFFE, 0xFFFF, 0x1FFFE, 0x1FFFF, 0x2FFFE, 0x2FFFF, 0x3FFFE, 0x3FFFF,
		0x4FFFE, 0x4FFFF, 0x5FFFE, 0x5FFFF, 0x6FFFE, 0x6FFFF, 0x7FFFE, 0x7FFFF,
		0x8FFFE, 0x8FFFF, 0x9FFFE, 0x9FFFF, 0xAFFFE, 0xAFFFF, 0xBFFFE, 0xBFFFF,
		0xCFFFE, 0xCFFFF, 0xDFFFE, 0xDFFFF, 0xEFFFE, 0xEFFFF, 0xFFFFE, 0xFFFFF,
		0x10FFFE, 0x10FFFF:
		return true
	}
	return false
}
