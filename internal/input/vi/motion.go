package vi

// Motion is a cursor-movement command, optionally repeated by count.
type Motion uint8

const (
	// MotionNone represents no motion.
	MotionNone Motion = iota

	MotionCharLeft
	MotionCharRight
	MotionLineUp
	MotionLineDown
	MotionLineBegin
	MotionLineTextBegin
	MotionLineEnd
	MotionFileBegin
	MotionFileEnd
	MotionFullLine
	MotionPageTop
	MotionPageBottom
	MotionPageUp
	MotionPageDown
	MotionParagraphBackward
	MotionParagraphForward
	MotionParenthesisMatching
	MotionScreenColumn
	MotionSearchResultBackward
	MotionSearchResultForward
	MotionSelection
	MotionWordBackward
	MotionWordEndForward
	MotionWordForward
)

// String returns a string representation of the motion.
func (m Motion) String() string {
	switch m {
	case MotionCharLeft:
		return "charLeft"
	case MotionCharRight:
		return "charRight"
	case MotionLineUp:
		return "lineUp"
	case MotionLineDown:
		return "lineDown"
	case MotionLineBegin:
		return "lineBegin"
	case MotionLineTextBegin:
		return "lineTextBegin"
	case MotionLineEnd:
		return "lineEnd"
	case MotionFileBegin:
		return "fileBegin"
	case MotionFileEnd:
		return "fileEnd"
	case MotionFullLine:
		return "fullLine"
	case MotionPageTop:
		return "pageTop"
	case MotionPageBottom:
		return "pageBottom"
	case MotionPageUp:
		return "pageUp"
	case MotionPageDown:
		return "pageDown"
	case MotionParagraphBackward:
		return "paragraphBackward"
	case MotionParagraphForward:
		return "paragraphForward"
	case MotionParenthesisMatching:
		return "parenthesisMatching"
	case MotionScreenColumn:
		return "screenColumn"
	case MotionSearchResultBackward:
		return "searchResultBackward"
	case MotionSearchResultForward:
		return "searchResultForward"
	case MotionSelection:
		return "selection"
	case MotionWordBackward:
		return "wordBackward"
	case MotionWordEndForward:
		return "wordEndForward"
	case MotionWordForward:
		return "wordForward"
	default:
		return "none"
	}
}
