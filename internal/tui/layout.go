package tui

const (
	defaultWindowWidth  = 80
	defaultWindowHeight = 24

	marginVertical   = 1
	marginHorizontal = 2
	headerHeight     = 3
	footerHeight     = 3
	minBodyHeight    = 4
	minInnerWidth    = 30
	listWidthPercent = 20
	minListWidth     = 14
)

// pageLayout holds the outer sizes of every block, borders included.
type pageLayout struct {
	windowWidth  int
	windowHeight int
	innerWidth   int
	bodyHeight   int
	listWidth    int
	detailWidth  int
}

func newPageLayout() pageLayout {
	l := pageLayout{}
	l.Update(defaultWindowWidth, defaultWindowHeight)
	return l
}

func (l *pageLayout) Update(width, height int) {
	l.windowWidth = width
	l.windowHeight = height

	l.innerWidth = width - 2*marginHorizontal
	if l.innerWidth < minInnerWidth {
		l.innerWidth = minInnerWidth
	}
	l.bodyHeight = height - 2*marginVertical - headerHeight - footerHeight
	if l.bodyHeight < minBodyHeight {
		l.bodyHeight = minBodyHeight
	}
	l.listWidth = l.innerWidth * listWidthPercent / 100
	if l.listWidth < minListWidth {
		l.listWidth = minListWidth
	}
	l.detailWidth = l.innerWidth - l.listWidth
}
