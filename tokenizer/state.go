package tokenizer

// tokenizerState is the closed, ~80-value WHATWG tokenizer state
// enumeration, including the script-data double-escape states.
type tokenizerState uint8

const (
	stateData tokenizerState = iota
	stateRCDATA
	stateRAWTEXT
	stateScriptData
	statePlaintext

	stateTagOpen
	stateEndTagOpen
	stateTagName

	stateRCDATALessThanSign
	stateRCDATAEndTagOpen
	stateRCDATAEndTagName

	stateRAWTEXTLessThanSign
	stateRAWTEXTEndTagOpen
	stateRAWTEXTEndTagName

	stateScriptDataLessThanSign
	stateScriptDataEndTagOpen
	stateScriptDataEndTagName

	stateScriptDataEscapeStart
	stateScriptDataEscapeStartDash
	stateScriptDataEscaped
	stateScriptDataEscapedDash
	stateScriptDataEscapedDashDash
	stateScriptDataEscapedLessThanSign
	stateScriptDataEscapedEndTagOpen
	stateScriptDataEscapedEndTagName

	stateScriptDataDoubleEscapeStart
	stateScriptDataDoubleEscaped
	stateScriptDataDoubleEscapedDash
	stateScriptDataDoubleEscapedDashDash
	stateScriptDataDoubleEscapedLessThanSign
	stateScriptDataDoubleEscapeEnd

	stateBeforeAttributeName
	stateAttributeName
	stateAfterAttributeName
	stateBeforeAttributeValue
	stateAttributeValueDoubleQuoted
	stateAttributeValueSingleQuoted
	stateAttributeValueUnquoted
	stateAfterAttributeValueQuoted
	stateSelfClosingStartTag

	stateBogusComment
	stateMarkupDeclarationOpen
	stateCommentStart
	stateCommentStartDash
	stateComment
	stateCommentLessThanSign
	stateCommentLessThanSignBang
	stateCommentLessThanSignBangDash
	stateCommentLessThanSignBangDashDash
	stateCommentEndDash
	stateCommentEnd
	stateCommentEndBang

	stateDoctype
	stateBeforeDoctypeName
	stateDoctypeName
	stateAfterDoctypeName
	stateAfterDoctypePublicKeyword
	stateBeforeDoctypePublicIdentifier
	stateDoctypePublicIdentifierDoubleQuoted
	stateDoctypePublicIdentifierSingleQuoted
	stateAfterDoctypePublicIdentifier
	stateBetweenDoctypePublicAndSystemIdentifiers
	stateAfterDoctypeSystemKeyword
	stateBeforeDoctypeSystemIdentifier
	stateDoctypeSystemIdentifierDoubleQuoted
	stateDoctypeSystemIdentifierSingleQuoted
	stateAfterDoctypeSystemIdentifier
	stateBogusDoctype

	stateCDATASection
	stateCDATASectionBracket
	stateCDATASectionEnd

	stateCharacterReference
	stateNamedCharacterReference
	stateAmbiguousAmpersand
	stateNumericCharacterReference
	stateHexadecimalCharacterReferenceStart
	stateDecimalCharacterReferenceStart
	stateHexadecimalCharacterReference
	stateDecimalCharacterReference
	stateNumericCharacterReferenceEnd

	numTokenizerStates
)

var stateNames = [...]string{
	"data", "rcdata", "rawtext", "script-data", "plaintext",
	"tag-open", "end-tag-open", "tag-name",
	"rcdata-less-than-sign", "rcdata-end-tag-open", "rcdata-end-tag-name",
	"rawtext-less-than-sign", "rawtext-end-tag-open", "rawtext-end-tag-name",
	"script-data-less-than-sign", "script-data-end-tag-open", "script-data-end-tag-name",
	"script-data-escape-start", "script-data-escape-start-dash",
	"script-data-escaped", "script-data-escaped-dash", "script-data-escaped-dash-dash",
	"script-data-escaped-less-than-sign", "script-data-escaped-end-tag-open", "script-data-escaped-end-tag-name",
	"script-data-double-escape-start",
	"script-data-double-escaped", "script-data-double-escaped-dash", "script-data-double-escaped-dash-dash",
	"script-data-double-escaped-less-than-sign", "script-data-double-escape-end",
	"before-attribute-name", "attribute-name", "after-attribute-name",
	"before-attribute-value", "attribute-value-double-quoted", "attribute-value-single-quoted",
	"attribute-value-unquoted", "after-attribute-value-quoted", "self-closing-start-tag",
	"bogus-comment", "markup-declaration-open", "comment-start", "comment-start-dash", "comment",
	"comment-less-than-sign", "comment-less-than-sign-bang", "comment-less-than-sign-bang-dash",
	"comment-less-than-sign-bang-dash-dash", "comment-end-dash", "comment-end", "comment-end-bang",
	"doctype", "before-doctype-name", "doctype-name", "after-doctype-name",
	"after-doctype-public-keyword", "before-doctype-public-identifier",
	"doctype-public-identifier-double-quoted", "doctype-public-identifier-single-quoted",
	"after-doctype-public-identifier", "between-doctype-public-and-system-identifiers",
	"after-doctype-system-keyword", "before-doctype-system-identifier",
	"doctype-system-identifier-double-quoted", "doctype-system-identifier-single-quoted",
	"after-doctype-system-identifier", "bogus-doctype",
	"cdata-section", "cdata-section-bracket", "cdata-section-end",
	"character-reference", "named-character-reference", "ambiguous-ampersand",
	"numeric-character-reference", "hexadecimal-character-reference-start", "decimal-character-reference-start",
	"hexadecimal-character-reference", "decimal-character-reference", "numeric-character-reference-end",
}

func (s tokenizerState) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return "tokenizerState(?)"
}
