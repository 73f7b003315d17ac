package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Hambart471/caltrack/internal/domain"
	"github.com/Hambart471/caltrack/internal/ports"
)

// Indexes of the fixed entries in the picker.
const (
	pickerSearch = iota
	pickerCreate
	pickerFixed
)

// pickerModel is the template picker: a search line, a create entry, and
// the filtered template list. The filter is a live case-sensitive
// substring match re-derived on every keystroke.
type pickerModel struct {
	sel       domain.Selection
	term      string
	searching bool
	input     textinput.Model
	filtered  []domain.Template
}

func newPicker(m *Model) *pickerModel {
	p := &pickerModel{sel: domain.Selection{Fixed: pickerFixed}}
	p.refresh(m)
	return p
}

// refresh re-derives the filtered list from the template set and re-clamps
// the selection against its new length.
func (p *pickerModel) refresh(m *Model) {
	p.filtered = m.templates.Filter(p.term)
	p.sel.Resize(len(p.filtered), m.visibleSlots())
}

// updatePicker handles keys while the template picker is active.
func (m Model) updatePicker(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	p := m.picker

	if p.searching {
		switch msg.String() {
		case "enter", "esc":
			p.searching = false
		default:
			var cmd tea.Cmd
			p.input, cmd = p.input.Update(msg)
			p.term = p.input.Value()
			p.refresh(&m)
			return m, cmd
		}
		return m, nil
	}

	switch msg.String() {
	case "q", "esc":
		m.picker = nil
		m.state = viewMain
		m.syncSelection()
		m.cue(ports.CuePageSwitch)

	case "j", "down":
		p.sel.Next(m.visibleSlots())
		m.cue(ports.CueNavigate)

	case "k", "up":
		p.sel.Prev(m.visibleSlots())
		m.cue(ports.CueNavigate)

	case "x":
		if i := p.sel.DynamicIndex(); i >= 0 {
			m.templates.Remove(p.filtered[i].Name)
			p.refresh(&m)
			m.cue(ports.CueSelect)
		}

	case "enter":
		m.cue(ports.CueSelect)
		if i := p.sel.DynamicIndex(); i >= 0 {
			m.form = newGramsForm(&m, p.filtered[i])
			m.state = viewForm
			return m, m.form.init()
		}
		switch p.sel.Index {
		case pickerSearch:
			p.input = textinput.New()
			p.input.SetValue(p.term)
			p.input.CursorEnd()
			p.input.CharLimit = domain.MaxNameLen
			p.searching = true
			return m, p.input.Focus()
		case pickerCreate:
			m.form = newTemplateForm(&m)
			m.state = viewForm
			return m, m.form.init()
		}
	}
	return m, nil
}

// viewPicker renders the template picker.
func (m Model) viewPicker() string {
	p := m.picker
	var b strings.Builder
	b.WriteString(m.st.title.Render("Add From Templates") + "\n\n")

	search := "[Search: " + p.term + "]"
	if p.searching {
		search = "[Search: " + p.input.View() + "]"
	} else if p.sel.Index == pickerSearch {
		search = m.st.selected.Render(search)
	} else {
		search = m.st.accent.Render(search)
	}
	b.WriteString(search + "\n")

	create := "[Create new template]"
	if p.sel.Index == pickerCreate {
		create = m.st.selected.Render(create)
	} else {
		create = m.st.accent.Render(create)
	}
	b.WriteString(create + "\n")
	b.WriteString(rule(m.width) + "\n")

	visible := m.visibleSlots()
	for i := p.sel.Scroll; i < len(p.filtered) && i < p.sel.Scroll+visible; i++ {
		t := p.filtered[i]
		name := fmt.Sprintf("%-*s", domain.MaxNameLen, t.Name)
		if p.sel.DynamicIndex() == i {
			name = m.st.selected.Render(name)
		} else {
			name = m.st.accent.Render(name)
		}
		b.WriteString(fmt.Sprintf("%s %s %s %s %s\n",
			name,
			m.st.calories.Render(fmt.Sprintf("%04d calories", clip(t.Calories, 9999))),
			m.st.carbs.Render(fmt.Sprintf("%03d carbs", clip(t.Carbs, 999))),
			m.st.protein.Render(fmt.Sprintf("%03d protein", clip(t.Protein, 999))),
			m.st.fat.Render(fmt.Sprintf("%03d fat", clip(t.Fat, 999)))))
	}
	if len(p.filtered) == 0 {
		b.WriteString(m.st.help.Render("(no templates match)") + "\n")
	}

	b.WriteString("\n" + m.st.help.Render("[q] Back  [j/k] Down/Up  [Enter] Select  [x] Delete"))
	return b.String()
}
