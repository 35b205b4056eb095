package record

// Export some internals for testing

type Layout = layout
type Span = span

var CheckLayout = checkLayout

const AtomMinWidth = atomMinWidth

func MakeLayout(tag string, minWidth int, serial, name Span) *Layout {
	l := &layout{tag: tag, minWidth: minWidth}
	l.cols[fSerial] = serial
	l.cols[fName] = name
	return l
}

func MakeSpan(start, end int) Span { return span{start, end} }
