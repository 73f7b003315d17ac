package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Hambart471/caltrack/internal/domain"
	"github.com/Hambart471/caltrack/internal/ports"
)

// formField is one editable line of a form. Numeric fields reject edits
// that do not parse as an integer; the previous value survives.
type formField struct {
	label   string
	value   string
	numeric bool
}

// formModel is a generic vertical form: a list of fields plus a trailing
// [OK] entry that commits. Pressing enter on a field opens an inline text
// input; enter applies the typed value, esc abandons it. An empty or
// unparseable entry is discarded without comment.
type formModel struct {
	title      string
	fields     []formField
	sel        domain.Selection
	editing    bool
	input      textinput.Model
	cancelable bool
	next       viewState // state after commit
	cancelTo   viewState // state after cancel

	// commit applies the field values to the live model once [OK] is
	// chosen. It receives the model by pointer so it can reach the store
	// and trigger a save.
	commit func(m *Model, values []string)
}

func newForm(title string, fields []formField, cancelable bool, commit func(*Model, []string)) *formModel {
	return &formModel{
		title:      title,
		fields:     fields,
		sel:        domain.Selection{Fixed: len(fields) + 1},
		cancelable: cancelable,
		next:       viewMain,
		cancelTo:   viewMain,
		commit:     commit,
	}
}

func (f *formModel) init() tea.Cmd { return nil }

func (f *formModel) values() []string {
	vals := make([]string, len(f.fields))
	for i, fld := range f.fields {
		vals[i] = fld.value
	}
	return vals
}

// okIndex is the selection index of the trailing [OK] entry.
func (f *formModel) okIndex() int { return len(f.fields) }

// beginEdit opens the inline input over the focused field.
func (f *formModel) beginEdit() tea.Cmd {
	fld := f.fields[f.sel.Index]
	f.input = textinput.New()
	f.input.Placeholder = fld.value
	f.input.CharLimit = 64
	if !fld.numeric {
		f.input.CharLimit = domain.MaxNameLen
	}
	f.editing = true
	return f.input.Focus()
}

// endEdit applies the typed value. Numeric fields that fail to parse and
// blank entries leave the previous value in place.
func (f *formModel) endEdit() {
	f.editing = false
	typed := strings.TrimSpace(f.input.Value())
	if typed == "" {
		return
	}
	fld := &f.fields[f.sel.Index]
	if fld.numeric {
		if _, err := strconv.Atoi(typed); err != nil {
			return
		}
		fld.value = typed
		return
	}
	fld.value = domain.TruncateName(typed)
}

// updateForm handles keys while a form is active.
func (m Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	f := m.form

	if f.editing {
		switch msg.String() {
		case "enter":
			f.endEdit()
		case "esc":
			f.editing = false
		default:
			var cmd tea.Cmd
			f.input, cmd = f.input.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	switch msg.String() {
	case "q", "esc":
		if f.cancelable {
			m.state = f.cancelTo
			m.form = nil
			m.syncSelection()
			m.cue(ports.CuePageSwitch)
		}

	case "j", "down":
		f.sel.Next(0)
		m.cue(ports.CueNavigate)

	case "k", "up":
		f.sel.Prev(0)
		m.cue(ports.CueNavigate)

	case "enter":
		m.cue(ports.CueSelect)
		if f.sel.Index == f.okIndex() {
			next := f.next
			if f.commit != nil {
				f.commit(&m, f.values())
			}
			m.state = next
			m.form = nil
			m.syncSelection()
			return m, nil
		}
		return m, f.beginEdit()
	}
	return m, nil
}

// viewForm renders the active form.
func (m Model) viewForm() string {
	f := m.form
	var b strings.Builder
	b.WriteString(m.st.title.Render(f.title) + "\n\n")

	for i, fld := range f.fields {
		if f.editing && f.sel.Index == i {
			b.WriteString(fmt.Sprintf("%s: %s\n", fld.label, f.input.View()))
			continue
		}
		line := fmt.Sprintf("%s: %s", fld.label, fld.value)
		if f.sel.Index == i {
			line = m.st.selected.Render(line)
		}
		b.WriteString(line + "\n")
	}

	ok := "[OK]"
	if f.sel.Index == f.okIndex() {
		ok = m.st.selected.Render(ok)
	} else {
		ok = m.st.accent.Render(ok)
	}
	b.WriteString("\n" + ok + "\n")

	help := "[j/k] Down/Up  [Enter] Edit/Confirm"
	if f.cancelable {
		help += "  [q] Cancel"
	}
	b.WriteString("\n" + m.st.help.Render(help))
	return b.String()
}

// goalFields seeds the four goal lines from the current goals.
func goalFields(g domain.Goals) []formField {
	return []formField{
		{label: "Calories", value: strconv.Itoa(g.Calories), numeric: true},
		{label: "Carbs", value: strconv.Itoa(g.Carbs), numeric: true},
		{label: "Protein", value: strconv.Itoa(g.Protein), numeric: true},
		{label: "Fat", value: strconv.Itoa(g.Fat), numeric: true},
	}
}

func goalsFromValues(values []string) domain.Goals {
	return domain.Goals{
		Calories: atoiOrZero(values[0]),
		Carbs:    atoiOrZero(values[1]),
		Protein:  atoiOrZero(values[2]),
		Fat:      atoiOrZero(values[3]),
	}
}

// newStartGoalsForm is the first-run goals prompt. It cannot be cancelled;
// the tracker needs goals before it can show the main view.
func newStartGoalsForm(m *Model) *formModel {
	return newForm("Set Your Daily Goals", goalFields(m.store.Goals()), false, func(m *Model, values []string) {
		m.store.SetGoals(goalsFromValues(values))
		m.persist()
	})
}

// newResetGoalsForm re-opens the goals prompt from the main menu.
func newResetGoalsForm(m *Model) *formModel {
	return newForm("Reset Daily Goals", goalFields(m.store.Goals()), true, func(m *Model, values []string) {
		m.store.SetGoals(goalsFromValues(values))
		m.persist()
	})
}

func foodFields(f domain.Food) []formField {
	return []formField{
		{label: "Name", value: f.Name},
		{label: "Calories", value: strconv.Itoa(f.Calories), numeric: true},
		{label: "Carbs", value: strconv.Itoa(f.Carbs), numeric: true},
		{label: "Protein", value: strconv.Itoa(f.Protein), numeric: true},
		{label: "Fat", value: strconv.Itoa(f.Fat), numeric: true},
		{label: "Grams", value: strconv.Itoa(f.Grams), numeric: true},
	}
}

func foodFromValues(values []string) domain.Food {
	return domain.Food{
		Name:     domain.TruncateName(values[0]),
		Calories: atoiOrZero(values[1]),
		Carbs:    atoiOrZero(values[2]),
		Protein:  atoiOrZero(values[3]),
		Fat:      atoiOrZero(values[4]),
		Grams:    atoiOrZero(values[5]),
	}
}

// newCustomFoodForm enters a one-off food for the active day.
func newCustomFoodForm(m *Model) *formModel {
	return newForm("Add Custom Food", foodFields(domain.Food{Name: "Unnamed", Grams: 100}), true, func(m *Model, values []string) {
		rec := m.record()
		rec.Foods = append(rec.Foods, foodFromValues(values))
		m.persist()
	})
}

// newEditFoodForm edits the food at index i of the active day, seeded with
// its current values.
func newEditFoodForm(m *Model, i int) *formModel {
	seed := m.record().Foods[i]
	return newForm("Edit Food", foodFields(seed), true, func(m *Model, values []string) {
		rec := m.record()
		if i < len(rec.Foods) {
			rec.Foods[i] = foodFromValues(values)
		}
		m.persist()
	})
}

// newTemplateForm creates a reusable template with per-100g values. It
// returns to the picker it was opened from.
func newTemplateForm(m *Model) *formModel {
	f := newForm("New Template (values per 100g)", []formField{
		{label: "Name", value: "Unnamed"},
		{label: "Calories", value: "0", numeric: true},
		{label: "Carbs", value: "0", numeric: true},
		{label: "Protein", value: "0", numeric: true},
		{label: "Fat", value: "0", numeric: true},
	}, true, func(m *Model, values []string) {
		m.templates.Add(domain.Template{
			Name:     domain.TruncateName(values[0]),
			Calories: atoiOrZero(values[1]),
			Carbs:    atoiOrZero(values[2]),
			Protein:  atoiOrZero(values[3]),
			Fat:      atoiOrZero(values[4]),
		})
		m.picker.refresh(m)
	})
	f.next = viewPicker
	f.cancelTo = viewPicker
	return f
}

// newGramsForm asks for a portion size and adds the scaled template food
// to the active day. Cancel returns to the picker it was opened from.
func newGramsForm(m *Model, tpl domain.Template) *formModel {
	f := newForm(fmt.Sprintf("How many grams of %s?", tpl.Name), []formField{
		{label: "Grams", value: "100", numeric: true},
	}, true, func(m *Model, values []string) {
		grams := atoiOrZero(values[0])
		rec := m.record()
		rec.Foods = append(rec.Foods, tpl.Instantiate(grams))
		m.persist()
	})
	f.cancelTo = viewPicker
	return f
}

func atoiOrZero(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}
