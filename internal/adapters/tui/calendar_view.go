package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Hambart471/caltrack/internal/domain"
	"github.com/Hambart471/caltrack/internal/ports"
)

// updateCalendar handles keys while the calendar view is active. Cues fire
// only when the cursor actually moves; blocked moves stay silent.
func (m Model) updateCalendar(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc":
		m.date = m.originalDate
		m.state = viewMain
		m.syncSelection()
		m.cue(ports.CuePageSwitch)

	case "h", "left":
		if m.cursor.Left() {
			m.cue(ports.CueNavigate)
		}

	case "l", "right":
		if m.cursor.Right() {
			m.cue(ports.CueNavigate)
		}

	case "j", "down":
		if m.cursor.Down() {
			m.cue(ports.CueNavigate)
		}

	case "k", "up":
		if m.cursor.Up() {
			m.cue(ports.CueNavigate)
		}

	case "b":
		m.cursor.PrevMonth()
		m.cue(ports.CuePageSwitch)

	case "w":
		m.cursor.NextMonth()
		m.cue(ports.CuePageSwitch)

	case "enter":
		m.date = m.cursor.Selected()
		m.sel.Reset()
		m.state = viewMain
		m.syncSelection()
		m.cue(ports.CueSelect)
	}
	return m, nil
}

// viewCalendar renders a month grid with the cursor day highlighted.
func (m Model) viewCalendar() string {
	var b strings.Builder
	b.WriteString(m.st.title.Render(fmt.Sprintf("%s %d", m.cursor.MonthName(), m.cursor.Year)) + "\n\n")
	b.WriteString(m.st.accent.Render("Su Mo Tu We Th Fr Sa") + "\n")

	first := domain.FirstWeekday(m.cursor.Month, m.cursor.Year)
	days := domain.DaysInMonth(m.cursor.Month, m.cursor.Year)

	var row strings.Builder
	for i := 0; i < first; i++ {
		row.WriteString("   ")
	}
	for day := 1; day <= days; day++ {
		cell := fmt.Sprintf("%2d", day)
		if day == m.cursor.Day {
			cell = m.st.selected.Render(cell)
		}
		row.WriteString(cell + " ")
		if (first+day)%7 == 0 {
			b.WriteString(row.String() + "\n")
			row.Reset()
		}
	}
	if row.Len() > 0 {
		b.WriteString(row.String() + "\n")
	}

	b.WriteString("\n" + m.st.help.Render("[q] Back  [h/j/k/l] Move  [b/w] Prev/Next Month  [Enter] Go To Day"))
	return b.String()
}
