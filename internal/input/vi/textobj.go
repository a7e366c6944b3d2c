package vi

// TextObject is a named syntactic span selectable as a unit.
type TextObject uint8

const (
	// TextObjectNone represents no text object.
	TextObjectNone TextObject = iota

	TextObjectAngleBrackets
	TextObjectBackQuotes
	TextObjectCurlyBrackets
	TextObjectDoubleQuotes
	TextObjectParagraph
	TextObjectRoundBrackets
	TextObjectSingleQuotes
	TextObjectSquareBrackets
	TextObjectWord
)

// String returns a string representation of the text object.
func (t TextObject) String() string {
	switch t {
	case TextObjectAngleBrackets:
		return "angleBrackets"
	case TextObjectBackQuotes:
		return "backQuotes"
	case TextObjectCurlyBrackets:
		return "curlyBrackets"
	case TextObjectDoubleQuotes:
		return "doubleQuotes"
	case TextObjectParagraph:
		return "paragraph"
	case TextObjectRoundBrackets:
		return "roundBrackets"
	case TextObjectSingleQuotes:
		return "singleQuotes"
	case TextObjectSquareBrackets:
		return "squareBrackets"
	case TextObjectWord:
		return "word"
	default:
		return "none"
	}
}

// textObjects maps designator characters to text objects.
var textObjects = map[rune]TextObject{
	'"':  TextObjectDoubleQuotes,
	'(':  TextObjectRoundBrackets,
	'<':  TextObjectAngleBrackets,
	'[':  TextObjectSquareBrackets,
	'\'': TextObjectSingleQuotes,
	'`':  TextObjectBackQuotes,
	'p':  TextObjectParagraph,
	'w':  TextObjectWord,
	'{':  TextObjectCurlyBrackets,
}

// textObjectForRune returns the text object designated by ch.
// Returns TextObjectNone if ch is not a designator.
func textObjectForRune(ch rune) TextObject {
	return textObjects[ch]
}

// TextObjectScope selects the inner or "around" variant of a text
// object.
type TextObjectScope uint8

const (
	// ScopeNone represents no pending scope.
	ScopeNone TextObjectScope = iota

	// ScopeInner selects the object without its delimiters ("i").
	ScopeInner

	// ScopeA selects the object including its delimiters ("a").
	ScopeA
)

// String returns a string representation of the scope.
func (s TextObjectScope) String() string {
	switch s {
	case ScopeInner:
		return "inner"
	case ScopeA:
		return "a"
	default:
		return "none"
	}
}
