package view

import (
	"strconv"
	"time"

	"github.com/csheth/petcli/internal/cursor"
	"github.com/csheth/petcli/internal/store"
)

const (
	createdAtLayout = "2006-01-02 15:04:05"
	footerText      = "pet-CLI 2021 - all rights reserved"
)

var menuTitles = []string{"Home", "Pets", "Add", "Delete", "Quit"}

var detailColumns = []Column{
	{Title: "ID", Percent: 10},
	{Title: "Name", Percent: 25},
	{Title: "Category", Percent: 20},
	{Title: "Age", Percent: 10},
	{Title: "Created At", Percent: 35},
}

var homeLines = []string{
	"Welcome",
	"to",
	"pet-CLI",
	"",
	"Press 'p' to access pets, 'a' to add random new pets and 'd' to delete the currently selected pet.",
	"Use the up and down arrows to move through the list, 'h' to come back here and 'q' to quit.",
}

// Compose builds the frame for the given state. records is only consulted
// for ModeList and sel may point past the end of records.
func Compose(mode Mode, records []store.Record, sel cursor.Cursor) Frame {
	frame := Frame{
		Mode:   mode,
		Tabs:   composeTabs(mode),
		Footer: Panel{Title: "Copyright", Lines: []string{footerText}},
	}
	switch mode {
	case ModeList:
		list, detail := composeList(records, sel)
		frame.List = &list
		frame.Detail = &detail
	default:
		frame.Home = &Panel{Title: "Home", Lines: append([]string(nil), homeLines...)}
	}
	return frame
}

func composeTabs(mode Mode) TabStrip {
	tabs := make([]Tab, 0, len(menuTitles))
	for _, title := range menuTitles {
		tabs = append(tabs, Tab{Hotkey: title[:1], Rest: title[1:]})
	}
	return TabStrip{Title: "Menu", Tabs: tabs, Active: int(mode), Divider: "|"}
}

func composeList(records []store.Record, sel cursor.Cursor) (ListPanel, DetailTable) {
	list := ListPanel{Title: "Pets", Selected: -1}
	list.Items = make([]ListItem, 0, len(records))
	for _, r := range records {
		list.Items = append(list.Items, ListItem{Label: r.Name})
	}

	detail := DetailTable{Title: "Detail", Columns: append([]Column(nil), detailColumns...)}
	if sel.InRange(len(records)) {
		idx, _ := sel.Selected()
		list.Selected = idx
		detail.Rows = [][]string{detailRow(records[idx])}
	}
	return list, detail
}

func detailRow(r store.Record) []string {
	return []string{
		strconv.Itoa(r.ID),
		r.Name,
		r.Category,
		strconv.Itoa(r.Age),
		FormatCreatedAt(r.CreatedAt),
	}
}

// FormatCreatedAt renders a creation time the way every view shows it: UTC,
// to the second.
func FormatCreatedAt(t time.Time) string {
	return t.UTC().Format(createdAtLayout)
}
