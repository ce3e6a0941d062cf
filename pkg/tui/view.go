package tui

import (
	"fmt"
	"strings"

	"github.com/muesli/reflow/ansi"
	"github.com/muesli/reflow/padding"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wordwrap"

	"tableflip.dev/hrow/pkg/app"
	"tableflip.dev/hrow/pkg/auth"
	"tableflip.dev/hrow/pkg/entity"
	"tableflip.dev/hrow/pkg/resolve"
	"tableflip.dev/hrow/pkg/sorting"
)

const maxCell = 24

var tableNames = map[app.Table]string{
	app.TableWorkers:    "Workers",
	app.TableAttendance: "Attendance",
	app.TablePartners:   "Partners",
	app.TableFinance:    "Finance",
}

const helpText = `Keys
  1-4      switch table            e / a / esc   edit, apply, cancel
  ←→↑↓     move                    tab           expenses / revenues
  space    select row              d             delete selected
  n        add row                 enter         edit cell
  s / S    sort by column / by selection
  +        add attendance column   r             set column date
  p        toggle presence         g / G         group selection / pick a group
  c        group certificates      ctrl+s        save snapshot
  L        log out                 q             quit`

// View renders the active table with its header and status bar.
func (m Model) View() string {
	var b strings.Builder
	b.WriteString(m.header())
	b.WriteString("\n\n")

	if m.ctrl.Role() != auth.RoleNone {
		if m.ctrl.Active() == app.TableAttendance {
			b.WriteString(m.attendanceView())
		} else {
			for i, g := range grids(m.ctrl) {
				if i > 0 {
					b.WriteString("\n")
				}
				b.WriteString(m.gridView(g, i == m.pane))
			}
		}
	}

	if len(m.notice) > 0 {
		notice := strings.Join(m.notice, "\n")
		if m.termWidth > 8 {
			notice = wordwrap.String(notice, m.termWidth-4)
		}
		b.WriteString("\n" + m.theme.Panel.Render(notice) + "\n")
	}
	if m.mode == modeInput {
		b.WriteString("\n" + m.input.Placeholder + ": " + m.input.View() + "\n")
	}
	if m.mode == modePick {
		b.WriteString("\n" + m.theme.Panel.Render(m.pick.view()) + "\n")
	}
	if m.mode == modeHelp {
		b.WriteString("\n" + m.theme.Panel.Render(m.help.View()) + "\n")
	}

	status := m.theme.Status.Render(m.status)
	if m.failed {
		status = m.theme.Error.Render(m.status)
	}
	return b.String() + "\n" + status
}

func (m Model) header() string {
	parts := []string{m.theme.Title.Render("hrow")}
	for i, t := range app.Tables() {
		label := fmt.Sprintf("%d %s", i+1, tableNames[t])
		if t == m.ctrl.Active() {
			parts = append(parts, m.theme.ActiveTab.Render(label))
		} else {
			parts = append(parts, m.theme.Tab.Render(label))
		}
	}
	role := string(m.ctrl.Role())
	if role == "" {
		role = "logged out"
	}
	parts = append(parts, m.theme.Faint.Render(role))
	if m.ctrl.Editing() {
		parts = append(parts, m.theme.Badge.Render("EDITING"))
	}
	return strings.Join(parts, " ")
}

// gridView renders one row table. The first column is the selection mark.
func (m Model) gridView(g grid, focused bool) string {
	st := m.ctrl.SortState(g.scope)

	header := []string{"✓" + arrow(st, sorting.BySelection)}
	for i, h := range g.headers {
		header = append(header, h+arrow(st, g.keys[i]))
	}
	rows := make([][]string, 0, len(g.cells))
	for r, cells := range g.cells {
		mark := "·"
		if m.ctrl.Selected(g.scope, g.ids[r]) {
			mark = "●"
		}
		rows = append(rows, append([]string{mark}, cells...))
	}

	cursor := func(r, c int) bool {
		return focused && r == m.row && c == m.col+1
	}
	style := func(r, c int, text string) string {
		switch {
		case cursor(r, c):
			return m.theme.Cursor.Render(text)
		case m.ctrl.Selected(g.scope, g.ids[r]):
			return m.theme.Selected.Render(text)
		case strings.TrimSpace(text) == resolve.Unassigned || strings.TrimSpace(text) == resolve.Unresolved:
			return m.theme.Faint.Render(text)
		}
		return text
	}

	title := m.theme.Header.Render(fmt.Sprintf("%s (%d)", g.title, len(g.ids)))
	if len(rows) == 0 {
		return title + "\n" + m.theme.Faint.Render("  (none)") + "\n"
	}
	return title + "\n" + render(header, rows, func(s string) string { return m.theme.Header.Render(s) }, style)
}

func (m Model) attendanceView() string {
	sheet := m.ctrl.Attendance()
	names := resolve.New(m.ctrl.CommittedWorkers())

	header := []string{"Worker"}
	for _, c := range sheet.Columns {
		switch {
		case c.Date == "":
			header = append(header, "(date?)")
		case !c.Valid:
			header = append(header, c.Date+" !")
		default:
			header = append(header, c.Date)
		}
	}

	rows := make([][]string, 0, len(sheet.Records))
	for _, r := range sheet.Records {
		cells := []string{names.Name(entity.Ref(r.WorkerID))}
		for i, c := range sheet.Columns {
			if !c.Editable() {
				cells = append(cells, "")
				continue
			}
			e := sheet.Cell(r.WorkerID, i)
			mark := "·"
			if e.Present {
				mark = "✓"
			}
			if e.Comment != "" {
				mark += " " + e.Comment
			}
			cells = append(cells, mark)
		}
		rows = append(rows, cells)
	}

	headerStyle := func(s string) string {
		if strings.HasSuffix(strings.TrimSpace(s), " !") {
			return m.theme.Invalid.Render(s)
		}
		return m.theme.Header.Render(s)
	}
	style := func(r, c int, text string) string {
		switch {
		case r == m.row && c == m.col:
			return m.theme.Cursor.Render(text)
		case strings.HasPrefix(strings.TrimSpace(text), "✓"):
			return m.theme.Present.Render(text)
		}
		return text
	}

	title := m.theme.Header.Render(fmt.Sprintf("Attendance (%d columns)", len(sheet.Columns)))
	if len(rows) == 0 {
		return title + "\n" + m.theme.Faint.Render("  (no workers)") + "\n"
	}
	return title + "\n" + render(header, rows, headerStyle, style)
}

func arrow(st sorting.State, key string) string {
	if st.Key != key {
		return ""
	}
	return " " + st.Direction.Arrow()
}

// render lays out header and rows in padded columns. Cells are truncated
// to maxCell before styling so widths stay stable.
func render(header []string, rows [][]string, headerStyle func(string) string, style func(r, c int, text string) string) string {
	widths := make([]int, len(header))
	measure := func(cells []string) {
		for i, cell := range cells {
			if i >= len(widths) {
				break
			}
			if w := ansi.PrintableRuneWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}
	measure(header)
	for _, r := range rows {
		measure(r)
	}
	fit := func(s string, i int) string {
		w := widths[i]
		if w > maxCell {
			w = maxCell
		}
		return padding.String(clip(s, w), uint(w))
	}

	var b strings.Builder
	line := make([]string, len(header))
	for i, h := range header {
		line[i] = headerStyle(fit(h, i))
	}
	b.WriteString(strings.Join(line, "  ") + "\n")
	for r, cells := range rows {
		line := make([]string, len(header))
		for i := range header {
			cell := ""
			if i < len(cells) {
				cell = cells[i]
			}
			line[i] = style(r, i, fit(cell, i))
		}
		b.WriteString(strings.Join(line, "  ") + "\n")
	}
	return b.String()
}

// clip shortens s to w cells with a trailing ellipsis. Text that already
// fits is returned as is.
func clip(s string, w int) string {
	if ansi.PrintableRuneWidth(s) <= w {
		return s
	}
	return truncate.StringWithTail(s, uint(w), "…")
}
