package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Hambart471/caltrack/internal/domain"
	"github.com/Hambart471/caltrack/internal/ports"
)

// Indexes of the fixed action items in the main view.
const (
	actionTemplates = iota
	actionCustomFood
	actionCalendar
	actionResetGoals
)

// updateMain handles keys while the main view is active.
func (m Model) updateMain(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.syncSelection()
	visible := m.visibleSlots()

	switch msg.String() {
	case "q":
		return m, tea.Quit

	case "j", "down":
		m.sel.Next(visible)
		m.cue(ports.CueNavigate)

	case "k", "up":
		m.sel.Prev(visible)
		m.cue(ports.CueNavigate)

	case "h", "left":
		m.date = m.date.AddDays(-1)
		m.sel.Reset()
		m.syncSelection()
		m.cue(ports.CuePageSwitch)

	case "l", "right":
		m.date = m.date.AddDays(1)
		m.sel.Reset()
		m.syncSelection()
		m.cue(ports.CuePageSwitch)

	case "x":
		if i := m.sel.DynamicIndex(); i >= 0 {
			m.record().DeleteFood(i)
			m.syncSelection()
			m.persist()
			m.cue(ports.CueSelect)
		}

	case "enter":
		m.cue(ports.CueSelect)
		if i := m.sel.DynamicIndex(); i >= 0 {
			m.form = newEditFoodForm(&m, i)
			m.state = viewForm
			return m, m.form.init()
		}
		switch m.sel.Index {
		case actionTemplates:
			m.picker = newPicker(&m)
			m.state = viewPicker
		case actionCustomFood:
			m.form = newCustomFoodForm(&m)
			m.state = viewForm
			return m, m.form.init()
		case actionCalendar:
			m.originalDate = m.date
			m.cursor = domain.NewCalendarCursor(m.date)
			m.state = viewCalendar
		case actionResetGoals:
			m.form = newResetGoalsForm(&m)
			m.state = viewForm
			return m, m.form.init()
		}
	}
	return m, nil
}

// viewMain renders the date header, running totals against goals, the
// fixed menu and the scrollable food list.
func (m Model) viewMain() string {
	var b strings.Builder
	rec := m.record()
	goals := m.store.Goals()
	cal, carbs, protein, fat := rec.Totals()

	b.WriteString(m.st.title.Render(m.date.DisplayDate()) + "\n\n")

	calStr := fmt.Sprintf("%04d / %04d", clip(cal, 9999), clip(goals.Calories, 9999))
	if cal > goals.Calories {
		calStr = m.st.over.Render(calStr)
	}
	b.WriteString(m.st.calories.Render("Calories: ") + calStr + "\n")
	b.WriteString(fmt.Sprintf("%s%s  %s%s  %s%s\n",
		m.st.carbs.Render("Carbs: "), overGoal(m.st, carbs, goals.Carbs, 3),
		m.st.protein.Render("Protein: "), overGoal(m.st, protein, goals.Protein, 3),
		m.st.fat.Render("Fat: "), overGoal(m.st, fat, goals.Fat, 3)))
	b.WriteString(rule(m.width) + "\n")

	for i, item := range menuItems {
		label := "[" + item + "]"
		if m.sel.Index == i {
			label = m.st.selected.Render(label)
		} else {
			label = m.st.accent.Render(label)
		}
		b.WriteString(label + "\n")
	}
	b.WriteString(rule(m.width) + "\n")

	visible := m.visibleSlots()
	for i := m.sel.Scroll; i < len(rec.Foods) && i < m.sel.Scroll+visible; i++ {
		b.WriteString(m.foodLine(rec.Foods[i], m.sel.DynamicIndex() == i) + "\n")
	}
	if len(rec.Foods) > visible {
		b.WriteString(m.st.help.Render(fmt.Sprintf("(%d-%d of %d)",
			m.sel.Scroll+1, min(m.sel.Scroll+visible, len(rec.Foods)), len(rec.Foods))) + "\n")
	}

	if m.status != "" {
		b.WriteString("\n" + m.st.over.Render(m.status) + "\n")
	}
	b.WriteString("\n" + m.st.help.Render("[q] Quit  [j/k] Down/Up  [h/l] Prev Day/Next Day  [Enter] Select  [x] Delete"))
	return b.String()
}

// foodLine renders one food row, name column padded to the display width.
func (m Model) foodLine(f domain.Food, selected bool) string {
	name := fmt.Sprintf("%-*s", domain.MaxNameLen, f.Name)
	if selected {
		name = m.st.selected.Render(name)
	} else {
		name = m.st.accent.Render(name)
	}
	return fmt.Sprintf("%s %04d grams %s %s %s %s",
		name,
		clip(f.Grams, 9999),
		m.st.calories.Render(fmt.Sprintf("%04d calories", clip(f.Calories, 9999))),
		m.st.carbs.Render(fmt.Sprintf("%03d carbs", clip(f.Carbs, 999))),
		m.st.protein.Render(fmt.Sprintf("%03d protein", clip(f.Protein, 999))),
		m.st.fat.Render(fmt.Sprintf("%03d fat", clip(f.Fat, 999))))
}

// overGoal formats "total / goal" zero-padded to width digits, in the
// over-goal color once the total exceeds the goal.
func overGoal(st styles, total, goal, width int) string {
	limit := 1
	for i := 0; i < width; i++ {
		limit *= 10
	}
	limit--
	s := fmt.Sprintf("%0*d / %0*d", width, clip(total, limit), width, clip(goal, limit))
	if total > goal {
		return st.over.Render(s)
	}
	return s
}

// clip caps a value for fixed-width display.
func clip(v, max int) int {
	if v > max {
		return max
	}
	return v
}

func rule(width int) string {
	if width <= 0 {
		width = 80
	}
	return strings.Repeat("=", width)
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
