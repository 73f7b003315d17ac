// Package tui provides the interactive terminal interface using the
// Bubbletea framework. The top-level Model is a state machine over the
// main view, the calendar view, and the transient form and template-picker
// sub-states; every sub-state is an explicit model state driven through
// Update, never a nested blocking loop.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Hambart471/caltrack/internal/config"
	"github.com/Hambart471/caltrack/internal/domain"
	"github.com/Hambart471/caltrack/internal/ports"
)

// viewState identifies the active top-level view.
type viewState int

const (
	viewMain viewState = iota
	viewCalendar
	viewPicker
	viewForm
)

// menuItems are the fixed action entries above the food list.
var menuItems = []string{"Add from templates", "Add custom food", "Calendar", "Reset goals"}

// defaultVisibleSlots is used before the first WindowSizeMsg arrives.
const defaultVisibleSlots = 10

// mainChromeRows is the number of screen rows the main view spends on
// everything that is not the food list.
const mainChromeRows = 12

// Model is the top-level TUI state.
type Model struct {
	store     ports.RecordStore
	notifier  ports.Notifier
	templates *domain.TemplateSet
	theme     config.ThemeConfig
	st        styles

	state viewState
	date  domain.Date
	sel   domain.Selection

	// calendar view state
	cursor       domain.CalendarCursor
	originalDate domain.Date

	form   *formModel
	picker *pickerModel

	// status carries a non-fatal message, e.g. a failed save.
	status string

	width  int
	height int
}

// NewModel creates the TUI model. When the store reports first run, the
// model starts in the goals-entry form instead of the main view.
func NewModel(store ports.RecordStore, notifier ports.Notifier, templates *domain.TemplateSet, theme *config.ThemeConfig) Model {
	resolved := resolveTheme(theme)
	m := Model{
		store:     store,
		notifier:  notifier,
		templates: templates,
		theme:     resolved,
		st:        newStyles(resolved),
		date:      domain.Today(),
		sel:       domain.Selection{Fixed: len(menuItems)},
	}
	m.syncSelection()
	if store.FirstRun() {
		m.form = newStartGoalsForm(&m)
		m.state = viewForm
	}
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd { return nil }

// Update handles messages and dispatches them to the active view state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		switch m.state {
		case viewMain:
			return m.updateMain(msg)
		case viewCalendar:
			return m.updateCalendar(msg)
		case viewPicker:
			return m.updatePicker(msg)
		case viewForm:
			return m.updateForm(msg)
		}
	}
	return m, nil
}

// View renders the active view state.
func (m Model) View() string {
	switch m.state {
	case viewCalendar:
		return m.viewCalendar()
	case viewPicker:
		return m.viewPicker()
	case viewForm:
		return m.viewForm()
	default:
		return m.viewMain()
	}
}

// record returns the record for the active date, creating it lazily.
func (m *Model) record() *domain.DailyRecord {
	return m.store.Record(m.date)
}

// visibleSlots returns the food-list capacity of the current screen.
func (m *Model) visibleSlots() int {
	if m.height == 0 {
		return defaultVisibleSlots
	}
	v := m.height - mainChromeRows
	if v < 1 {
		v = 1
	}
	return v
}

// syncSelection re-derives the dynamic suffix length from the active
// record and re-clamps focus and scroll. Called whenever the underlying
// list may have changed size.
func (m *Model) syncSelection() {
	m.sel.Resize(len(m.record().Foods), m.visibleSlots())
}

// persist saves the store and records a non-fatal status message when the
// destination is unwritable. In-memory state stays authoritative either way.
func (m *Model) persist() {
	if m.store.Save() {
		m.status = ""
		return
	}
	m.status = "save failed - changes kept in memory only"
	if m.notifier != nil {
		m.notifier.Alert("caltrack", "Could not write the food log; changes are kept in memory.")
	}
}

// cue emits fire-and-forget feedback.
func (m *Model) cue(c ports.Cue) {
	if m.notifier != nil {
		m.notifier.Cue(c)
	}
}
