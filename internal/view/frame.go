// Package view turns application state into a declarative Frame that a
// terminal renderer can draw. Nothing here performs I/O.
package view

// Mode is the active tab.
type Mode int

const (
	ModeHome Mode = iota
	ModeList
)

func (m Mode) String() string {
	switch m {
	case ModeHome:
		return "Home"
	case ModeList:
		return "Pets"
	default:
		return "Unknown"
	}
}

// Tab is one menu title split into its hotkey and the remaining text.
type Tab struct {
	Hotkey string
	Rest   string
}

// Title returns the full tab title.
func (t Tab) Title() string {
	return t.Hotkey + t.Rest
}

// TabStrip is the header row.
type TabStrip struct {
	Title   string
	Tabs    []Tab
	Active  int
	Divider string
}

// Panel is a bordered block of static text.
type Panel struct {
	Title string
	Lines []string
}

// ListItem is one selectable row of the narrow list panel.
type ListItem struct {
	Label string
}

// ListPanel is the selectable record list. Selected is -1 when nothing
// valid is selected.
type ListPanel struct {
	Title    string
	Items    []ListItem
	Selected int
}

// DetailTable describes the selected record. Rows is empty when there is
// no valid selection.
type DetailTable struct {
	Title   string
	Columns []Column
	Rows    [][]string
}

// Column is a detail table header with its preferred width share.
type Column struct {
	Title   string
	Percent int
}

// Frame is everything drawn in one render pass: a header, one of the two
// bodies, and a footer.
type Frame struct {
	Mode   Mode
	Tabs   TabStrip
	Home   *Panel
	List   *ListPanel
	Detail *DetailTable
	Footer Panel
}
