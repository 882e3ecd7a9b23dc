package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wordwrap"

	"github.com/csheth/petcli/internal/view"
)

func renderFrame(frame view.Frame, layout pageLayout) string {
	header := renderTabs(frame.Tabs, layout.innerWidth)

	var body string
	switch {
	case frame.List != nil && frame.Detail != nil:
		body = lipgloss.JoinHorizontal(lipgloss.Top,
			renderList(frame.List, layout.listWidth, layout.bodyHeight),
			renderDetail(frame.Detail, layout.detailWidth, layout.bodyHeight),
		)
	case frame.Home != nil:
		body = renderHome(frame.Home, layout.innerWidth, layout.bodyHeight)
	default:
		body = titledBox("", "", layout.innerWidth, layout.bodyHeight)
	}

	footer := titledBox(frame.Footer.Title,
		footerStyle.Width(layout.innerWidth-2).Render(strings.Join(frame.Footer.Lines, " ")),
		layout.innerWidth, footerHeight)

	return pageStyle.Render(lipgloss.JoinVertical(lipgloss.Left, header, body, footer))
}

func renderTabs(strip view.TabStrip, width int) string {
	parts := make([]string, 0, len(strip.Tabs))
	for i, tab := range strip.Tabs {
		if i == strip.Active {
			parts = append(parts, activeTabStyle.Render(tab.Title()))
			continue
		}
		parts = append(parts, hotkeyStyle.Render(tab.Hotkey)+tabRestStyle.Render(tab.Rest))
	}
	divider := dividerStyle.Render(" " + strip.Divider + " ")
	return titledBox(strip.Title, " "+strings.Join(parts, divider), width, headerHeight)
}

func renderHome(panel *view.Panel, width, height int) string {
	inner := width - 2
	lines := make([]string, 0, len(panel.Lines))
	for _, line := range panel.Lines {
		lines = append(lines, wordwrap.String(line, inner))
	}
	content := homeStyle.Width(inner).Render(strings.Join(lines, "\n"))
	return titledBox(panel.Title, content, width, height)
}

func renderList(list *view.ListPanel, width, height int) string {
	inner := width - 2
	visible := height - 2
	if visible < 1 {
		visible = 1
	}
	if len(list.Items) == 0 {
		return titledBox(list.Title, emptyStyle.Render(truncate.String("no pets", uint(inner))), width, height)
	}

	start := 0
	if list.Selected >= visible {
		start = list.Selected - visible + 1
	}
	end := start + visible
	if end > len(list.Items) {
		end = len(list.Items)
	}

	labelWidth := inner - len(selectedPrefix)
	if labelWidth < 1 {
		labelWidth = 1
	}
	rows := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		label := truncate.StringWithTail(list.Items[i].Label, uint(labelWidth), "…")
		if i == list.Selected {
			rows = append(rows, selectedStyle.Render(selectedPrefix+label))
			continue
		}
		rows = append(rows, listItemStyle.Render(strings.Repeat(" ", len(selectedPrefix))+label))
	}
	return titledBox(list.Title, strings.Join(rows, "\n"), width, height)
}

func renderDetail(detail *view.DetailTable, width, height int) string {
	inner := width - 2
	columns := make([]table.Column, 0, len(detail.Columns))
	for _, col := range detail.Columns {
		// Cells carry one column of padding on each side.
		w := inner*col.Percent/100 - 2
		if w < 1 {
			w = 1
		}
		columns = append(columns, table.Column{Title: col.Title, Width: w})
	}
	rows := make([]table.Row, 0, len(detail.Rows))
	for _, row := range detail.Rows {
		rows = append(rows, table.Row(row))
	}

	tableHeight := height - 3
	if tableHeight < 1 {
		tableHeight = 1
	}
	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithHeight(tableHeight),
	)
	styles := table.DefaultStyles()
	styles.Header = styles.Header.Bold(true).Foreground(accentColor)
	styles.Selected = styles.Selected.Foreground(textColor).Bold(false)
	t.SetStyles(styles)

	return titledBox(detail.Title, t.View(), width, height)
}

// titledBox draws a bordered block of the given outer size with title set
// into the top border.
func titledBox(title, content string, width, height int) string {
	border := lipgloss.NormalBorder()
	label := ""
	if title != "" {
		label = boxTitleStyle.Render(title)
	}
	fill := width - 2 - lipgloss.Width(label)
	if fill < 0 {
		label = ""
		fill = width - 2
	}
	top := dividerStyle.Render(border.TopLeft) + label + dividerStyle.Render(strings.Repeat(border.Top, fill)+border.TopRight)

	innerHeight := height - 2
	if innerHeight < 1 {
		innerHeight = 1
	}
	body := boxStyle.
		Width(width - 2).
		Height(innerHeight).
		Render(clampLines(content, width-2, innerHeight))
	return top + "\n" + body
}

// clampLines cuts content to at most limit lines of at most width cells so
// lipgloss never wraps it past the box.
func clampLines(content string, width, limit int) string {
	lines := strings.Split(content, "\n")
	if len(lines) > limit {
		lines = lines[:limit]
	}
	for i, line := range lines {
		if lipgloss.Width(line) > width {
			lines[i] = truncate.String(line, uint(width))
		}
	}
	return strings.Join(lines, "\n")
}
