// Package tui is the terminal front end. It renders the controller's query
// operations and turns key presses into controller commands; it never
// touches collections directly.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/v2/textinput"
	"github.com/charmbracelet/bubbles/v2/viewport"
	tea "github.com/charmbracelet/bubbletea/v2"
	"go.uber.org/zap"

	"tableflip.dev/hrow/pkg/app"
	"tableflip.dev/hrow/pkg/auth"
	"tableflip.dev/hrow/pkg/entity"
	"tableflip.dev/hrow/pkg/schema"
	"tableflip.dev/hrow/pkg/sorting"
	"tableflip.dev/hrow/pkg/store"
)

type mode int

const (
	modeNormal mode = iota
	modeInput
	modePick
	modeHelp
)

type action int

const (
	actionNone action = iota
	actionCell
	actionComment
	actionColumnDate
	actionGroupCreate
	actionGroupSelect
	actionCertificates
	actionLoginUser
	actionLoginPassword
)

// target is the cell an input action writes to.
type target struct {
	scope app.Scope
	id    entity.ID
	key   string
	date  string
	index int
}

// Model contains UI state.
type Model struct {
	ctrl    *app.Controller
	persist store.Persistence
	log     *zap.Logger
	ctx     context.Context
	theme   Theme

	mode   mode
	action action
	target target
	user   string

	input textinput.Model
	pick  picker
	help  viewport.Model

	pane int // finance: 0 expenses, 1 revenues
	row  int
	col  int

	status string
	failed bool
	notice []string

	termWidth  int
	termHeight int
}

// Option configures a Model.
type Option func(*Model)

// WithPersistence enables ctrl+s.
func WithPersistence(p store.Persistence) Option {
	return func(m *Model) { m.persist = p }
}

// WithLogger sets the logger for UI events.
func WithLogger(log *zap.Logger) Option {
	return func(m *Model) {
		if log != nil {
			m.log = log
		}
	}
}

// New creates a UI model driving ctrl. A logged out controller starts on
// the login prompt.
func New(ctrl *app.Controller, opts ...Option) Model {
	ti := textinput.New()
	ti.CharLimit = 256
	ti.Prompt = ""

	vp := viewport.New(
		viewport.WithWidth(80),
		viewport.WithHeight(12),
	)
	vp.SetContent(helpText)

	m := Model{
		ctrl:   ctrl,
		help:   vp,
		log:    zap.NewNop(),
		ctx:    context.Background(),
		theme:  DefaultTheme(),
		input:  ti,
		status: "1-4 tables, e edit, a apply, esc cancel, ? help, q quit",
	}
	for _, opt := range opts {
		opt(&m)
	}
	if ctrl.Role() == auth.RoleNone {
		m.startLogin()
	}
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and keybindings.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		m.termHeight = msg.Height
		m.help.SetWidth(max(msg.Width-4, 1))
		m.help.SetHeight(max(msg.Height-8, 1))
	case tea.KeyPressMsg:
		switch m.mode {
		case modeHelp:
			if key := msg.String(); key == "q" || key == "esc" || key == "?" {
				m.mode = modeNormal
				break
			}
			var cmd tea.Cmd
			m.help, cmd = m.help.Update(msg)
			cmds = append(cmds, cmd)
		case modeInput:
			switch msg.String() {
			case "enter":
				value := m.input.Value()
				m.closeInput()
				m.submit(value)
			case "esc":
				if m.action == actionLoginUser || m.action == actionLoginPassword {
					m.startLogin()
					break
				}
				m.closeInput()
				m.setStatus("Cancelled")
			default:
				var cmd tea.Cmd
				m.input, cmd = m.input.Update(msg)
				cmds = append(cmds, cmd)
			}
		case modePick:
			switch msg.String() {
			case "enter":
				m.mode = modeNormal
				if value, ok := m.pick.selected(); ok {
					m.submit(value)
				}
			case "esc":
				m.mode = modeNormal
				m.action = actionNone
				m.setStatus("Cancelled")
			default:
				var cmd tea.Cmd
				m.pick, cmd = m.pick.update(msg)
				cmds = append(cmds, cmd)
			}
		case modeNormal:
			m.notice = nil
			if cmd := m.handleKey(msg.String()); cmd != nil {
				cmds = append(cmds, cmd)
			}
		}
	}
	m.clamp()
	return m, tea.Batch(cmds...)
}

func (m *Model) handleKey(key string) tea.Cmd {
	switch key {
	case "q", "ctrl+c":
		return tea.Quit
	case "?":
		m.mode = modeHelp
		m.help.GotoTop()
	case "1", "2", "3", "4":
		t := app.Tables()[int(key[0]-'1')]
		m.ctrl.SetActiveTable(t)
		m.pane, m.row, m.col = 0, 0, 0
		m.setStatus("Showing " + string(t))
	case "e":
		if m.ctrl.BeginEdit() {
			m.setStatus("Editing " + string(m.ctrl.Active()))
		} else {
			m.setError("Read-only session")
		}
	case "a":
		if m.ctrl.Commit() {
			m.setStatus("Applied")
		}
	case "esc":
		if m.ctrl.Discard() {
			m.setStatus("Changes discarded")
		}
	case "left", "h":
		m.col--
	case "right", "l":
		m.col++
	case "up", "k":
		m.row--
	case "down", "j":
		m.row++
	case "tab":
		if m.ctrl.Active() == app.TableFinance {
			m.pane = 1 - m.pane
			m.row = 0
		}
	case "space":
		if g, ok := m.grid(); ok && m.row < len(g.ids) {
			m.ctrl.Toggle(g.scope, g.ids[m.row])
		}
	case "d":
		if g, ok := m.grid(); ok {
			if n := m.ctrl.DeleteSelected(g.scope); n > 0 {
				m.setStatus(fmt.Sprintf("Deleted %d", n))
			}
		}
	case "n":
		m.addRow()
	case "+":
		if i, ok := m.ctrl.AddColumn(); ok {
			m.col = i + 1
			m.setStatus("Column added, r to set its date")
		}
	case "s", "S":
		g, ok := m.grid()
		if !ok {
			break
		}
		sortKey := sorting.BySelection
		if key == "s" {
			if m.col >= len(g.keys) {
				break
			}
			sortKey = g.keys[m.col]
		}
		st := m.ctrl.Sort(g.scope, sortKey)
		m.setStatus(fmt.Sprintf("Sorted by %s %s", st.Key, st.Direction))
	case "enter":
		m.editCell()
	case "p":
		if worker, date, ok := m.attendanceCell(); ok {
			m.ctrl.TogglePresence(worker, date)
		}
	case "r":
		if m.ctrl.Active() == app.TableAttendance && m.col > 0 {
			sheet := m.ctrl.Attendance()
			m.target = target{index: m.col - 1}
			m.openInput(actionColumnDate, "YYYY-MM-DD", sheet.Columns[m.col-1].Date)
		}
	case "g":
		m.openInput(actionGroupCreate, "group name", "")
	case "G":
		m.openPicker(actionGroupSelect, "Select group", m.groupNames(), "")
	case "c":
		m.openPicker(actionCertificates, "Certificates for", m.groupNames(), "")
	case "ctrl+s":
		m.save()
	case "L":
		m.ctrl.Logout()
		m.startLogin()
	}
	return nil
}

func (m *Model) addRow() {
	g, ok := m.grid()
	if !ok {
		return
	}
	id, ok := m.ctrl.Add(g.scope)
	if !ok {
		m.setError("Press e to edit before adding rows")
		return
	}
	if g, ok := m.grid(); ok {
		m.row = g.row(id)
		m.col = 1
	}
	m.setStatus(fmt.Sprintf("Added #%d", id))
}

func (m *Model) editCell() {
	if !m.ctrl.Editing() {
		m.setError("Press e to edit")
		return
	}
	if worker, date, ok := m.attendanceCell(); ok {
		sheet := m.ctrl.Attendance()
		m.target = target{id: worker, date: date}
		m.openInput(actionComment, "comment", sheet.Cell(worker, m.col-1).Comment)
		return
	}
	g, ok := m.grid()
	if !ok || m.row >= len(g.ids) || m.col >= len(g.keys) || !g.editable[m.col] {
		return
	}
	m.target = target{scope: g.scope, id: g.ids[m.row], key: g.keys[m.col]}
	if g.kinds[m.col] == schema.KindStatus {
		m.openPicker(actionCell, g.headers[m.col], statusNames(), g.raw[m.row][m.col])
		return
	}
	m.openInput(actionCell, g.headers[m.col], g.raw[m.row][m.col])
}

// attendanceCell is the worker and date under the cursor when it sits on an
// editable attendance cell.
func (m *Model) attendanceCell() (worker entity.ID, date string, ok bool) {
	if m.ctrl.Active() != app.TableAttendance || m.col == 0 {
		return 0, "", false
	}
	sheet := m.ctrl.Attendance()
	if m.row >= len(sheet.Records) || m.col-1 >= len(sheet.Columns) {
		return 0, "", false
	}
	c := sheet.Columns[m.col-1]
	if !c.Editable() {
		return 0, "", false
	}
	return sheet.Records[m.row].WorkerID, c.Date, true
}

func (m *Model) submit(value string) {
	switch m.action {
	case actionCell:
		if !m.ctrl.Edit(m.target.scope, m.target.id, m.target.key, value) {
			m.setError("Not editable")
		}
	case actionComment:
		m.ctrl.SetComment(m.target.id, m.target.date, value)
	case actionColumnDate:
		value = strings.TrimSpace(value)
		m.ctrl.SetColumnDate(m.target.index, value)
		if value != "" && !m.ctrl.Attendance().Columns[m.target.index].Valid {
			m.setError(fmt.Sprintf("%q is not a YYYY-MM-DD date", value))
		}
	case actionGroupCreate:
		if g, err := m.ctrl.GroupSelection(value); err != nil {
			m.setError(err.Error())
		} else {
			m.setStatus(fmt.Sprintf("Group %s has %d workers", g.Name, len(g.WorkerIDs)))
		}
	case actionGroupSelect:
		if err := m.ctrl.SelectGroup(value); err != nil {
			m.setError(err.Error())
		}
	case actionCertificates:
		certs, err := m.ctrl.Certificates(value)
		if err != nil {
			m.setError(err.Error())
			break
		}
		m.notice = m.notice[:0]
		for _, c := range certs {
			m.notice = append(m.notice, c.String())
		}
		m.setStatus(fmt.Sprintf("%d certificates", len(certs)))
	case actionLoginUser:
		m.user = strings.TrimSpace(value)
		m.openInput(actionLoginPassword, "password", "")
		m.input.EchoMode = textinput.EchoPassword
		return
	case actionLoginPassword:
		if err := m.ctrl.Login(m.user, value); err != nil {
			m.startLogin()
			m.setError("Invalid credentials")
			return
		}
		m.log.Info("login", zap.String("user", m.user))
		m.setStatus(fmt.Sprintf("Logged in as %s (%s)", m.user, m.ctrl.Role()))
	}
	m.action = actionNone
}

func (m *Model) save() {
	if m.persist == nil {
		m.setError("No snapshot store configured")
		return
	}
	if err := m.persist.Save(m.ctx, store.DefaultName, m.ctrl.Snapshot()); err != nil {
		m.log.Error("save snapshot", zap.Error(err))
		m.setError(err.Error())
		return
	}
	m.setStatus("Snapshot saved")
}

func (m *Model) startLogin() {
	m.user = ""
	m.openInput(actionLoginUser, "username", "")
	m.status = "Login: admin/admin or worker/worker"
	m.failed = false
}

func (m *Model) openInput(a action, placeholder, value string) {
	m.mode = modeInput
	m.action = a
	m.input.EchoMode = textinput.EchoNormal
	m.input.Placeholder = placeholder
	m.input.SetValue(value)
	m.input.CursorEnd()
	m.input.Focus()
}

// openPicker lists names to choose from. An empty list submits "" so the
// controller reports what is missing.
func (m *Model) openPicker(a action, title string, names []string, current string) {
	m.action = a
	if len(names) == 0 {
		m.submit("")
		return
	}
	m.mode = modePick
	m.pick = newPicker(title, names, current)
}

func (m *Model) groupNames() []string {
	groups := m.ctrl.Groups()
	names := make([]string, 0, len(groups))
	for _, g := range groups {
		names = append(names, g.Name)
	}
	return names
}

func statusNames() []string {
	statuses := entity.AllStatuses()
	names := make([]string, 0, len(statuses))
	for _, s := range statuses {
		names = append(names, string(s))
	}
	return names
}

func (m *Model) closeInput() {
	m.mode = modeNormal
	m.input.Reset()
	m.input.Blur()
}

func (m *Model) setStatus(s string) {
	m.status = s
	m.failed = false
}

func (m *Model) setError(s string) {
	m.status = s
	m.failed = true
}

// grid is the row table under the cursor.
func (m *Model) grid() (grid, bool) {
	gs := grids(m.ctrl)
	if len(gs) == 0 {
		return grid{}, false
	}
	if m.pane >= len(gs) {
		m.pane = 0
	}
	return gs[m.pane], true
}

// clamp keeps the cursor inside the active table.
func (m *Model) clamp() {
	rows, cols := 0, 0
	if m.ctrl.Active() == app.TableAttendance {
		sheet := m.ctrl.Attendance()
		rows, cols = len(sheet.Records), len(sheet.Columns)+1
	} else if g, ok := m.grid(); ok {
		rows, cols = len(g.ids), len(g.keys)
	}
	m.row = bound(m.row, rows)
	m.col = bound(m.col, cols)
}

func bound(v, n int) int {
	if v >= n {
		v = n - 1
	}
	if v < 0 {
		v = 0
	}
	return v
}

// Run starts the program on the alternate screen.
func Run(m Model) error {
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
