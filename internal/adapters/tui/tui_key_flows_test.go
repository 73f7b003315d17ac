package tui

// Key-flow tests for the interactive model. Each test drives a complete
// user interaction through Update so regressions in key dispatch, state
// transitions, or selection clamping fail fast here.

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Hambart471/caltrack/internal/domain"
	"github.com/Hambart471/caltrack/internal/ports"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func key(s string) tea.Msg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func press(t *testing.T, m Model, keys ...string) Model {
	t.Helper()
	for _, k := range keys {
		res, _ := m.Update(key(k))
		m = res.(Model)
	}
	return m
}

// memStore is an in-memory RecordStore for tests.
type memStore struct {
	goals    domain.Goals
	records  []*domain.DailyRecord
	firstRun bool
	saveOK   bool
	saves    int
}

func newMemStore() *memStore {
	return &memStore{goals: domain.DefaultGoals(), saveOK: true}
}

func (s *memStore) Record(d domain.Date) *domain.DailyRecord {
	for _, r := range s.records {
		if r.Date == d {
			return r
		}
	}
	r := &domain.DailyRecord{Date: d}
	s.records = append(s.records, r)
	return r
}

func (s *memStore) AllRecords() []*domain.DailyRecord { return s.records }
func (s *memStore) Goals() domain.Goals               { return s.goals }
func (s *memStore) SetGoals(g domain.Goals)           { s.goals = g }
func (s *memStore) Load() bool                        { return !s.firstRun }
func (s *memStore) Save() bool                        { s.saves++; return s.saveOK }
func (s *memStore) FirstRun() bool                    { return s.firstRun }

// cueRecorder captures notifier traffic.
type cueRecorder struct {
	cues   []ports.Cue
	alerts []string
}

func (r *cueRecorder) Cue(c ports.Cue)              { r.cues = append(r.cues, c) }
func (r *cueRecorder) Alert(title, message string)  { r.alerts = append(r.alerts, title+": "+message) }

var testDate = domain.Date{Day: 15, Month: 6, Year: 2025}

func newTestModel(store *memStore) (Model, *cueRecorder) {
	rec := &cueRecorder{}
	m := NewModel(store, rec, domain.NewTemplateSet(), nil)
	m.date = testDate
	m.syncSelection()
	return m, rec
}

func withFoods(store *memStore, n int) {
	r := store.Record(testDate)
	for i := 0; i < n; i++ {
		r.Foods = append(r.Foods, domain.Food{Name: "Food", Calories: 100, Grams: 100})
	}
}

// ---------------------------------------------------------------------------
// Main view: navigation and day paging
// ---------------------------------------------------------------------------

func TestMain_MenuNavigationWraps(t *testing.T) {
	m, _ := newTestModel(newMemStore())

	m = press(t, m, "j", "j", "j", "j")
	if m.sel.Index != 0 {
		t.Errorf("wrap past last menu item: Index = %d, want 0", m.sel.Index)
	}
	m = press(t, m, "k")
	if m.sel.Index != 3 {
		t.Errorf("wrap before first menu item: Index = %d, want 3", m.sel.Index)
	}
}

func TestMain_ScrollFollowsFocusIntoFoodList(t *testing.T) {
	store := newMemStore()
	withFoods(store, 6)
	m, _ := newTestModel(store)

	// height 15 leaves 3 visible food slots
	res, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 15})
	m = res.(Model)

	m = press(t, m, "j", "j", "j", "j", "j", "j", "j", "j", "j")
	if got := m.sel.DynamicIndex(); got != 5 {
		t.Fatalf("DynamicIndex = %d, want 5", got)
	}
	if m.sel.Scroll != 3 {
		t.Errorf("Scroll = %d, want 3", m.sel.Scroll)
	}

	m = press(t, m, "j")
	if m.sel.Index != 0 || m.sel.Scroll != 0 {
		t.Errorf("wrap to top: Index = %d Scroll = %d, want 0 0", m.sel.Index, m.sel.Scroll)
	}
}

func TestMain_DayShiftResetsSelection(t *testing.T) {
	m, _ := newTestModel(newMemStore())

	m = press(t, m, "j", "j", "l")
	if m.sel.Index != 0 {
		t.Errorf("selection after day shift: Index = %d, want 0", m.sel.Index)
	}
	if want := (domain.Date{Day: 16, Month: 6, Year: 2025}); m.date != want {
		t.Errorf("date = %v, want %v", m.date, want)
	}

	m = press(t, m, "h", "h")
	if want := (domain.Date{Day: 14, Month: 6, Year: 2025}); m.date != want {
		t.Errorf("date = %v, want %v", m.date, want)
	}
}

// ---------------------------------------------------------------------------
// Main view: deleting foods
// ---------------------------------------------------------------------------

func TestMain_DeleteFoodSavesAndReclamps(t *testing.T) {
	store := newMemStore()
	withFoods(store, 2)
	m, _ := newTestModel(store)

	m = press(t, m, "j", "j", "j", "j", "j", "x") // focus second food, delete
	if got := len(store.Record(testDate).Foods); got != 1 {
		t.Fatalf("foods after delete = %d, want 1", got)
	}
	if store.saves == 0 {
		t.Error("delete should save the store")
	}
	if got := m.sel.DynamicIndex(); got != 0 {
		t.Errorf("focus after delete: DynamicIndex = %d, want 0", got)
	}
}

func TestMain_DeleteIgnoredOnMenuItem(t *testing.T) {
	store := newMemStore()
	withFoods(store, 1)
	m, _ := newTestModel(store)

	m = press(t, m, "x")
	if got := len(store.Record(testDate).Foods); got != 1 {
		t.Errorf("foods = %d, want 1 (delete on a menu item must be a no-op)", got)
	}
	if store.saves != 0 {
		t.Errorf("saves = %d, want 0", store.saves)
	}
	_ = m
}

// ---------------------------------------------------------------------------
// Calendar
// ---------------------------------------------------------------------------

func TestCalendar_OpensOnFirstOfActiveMonth(t *testing.T) {
	m, _ := newTestModel(newMemStore())

	m = press(t, m, "j", "j", "enter")
	if m.state != viewCalendar {
		t.Fatalf("state = %v, want viewCalendar", m.state)
	}
	if m.cursor.Day != 1 || m.cursor.Month != 6 || m.cursor.Year != 2025 {
		t.Errorf("cursor = %+v, want day 1 of 6/2025", m.cursor)
	}
}

func TestCalendar_CancelRestoresDate(t *testing.T) {
	m, _ := newTestModel(newMemStore())

	m = press(t, m, "j", "j", "enter", "l", "j", "q")
	if m.state != viewMain {
		t.Fatalf("state = %v, want viewMain", m.state)
	}
	if m.date != testDate {
		t.Errorf("date = %v, want %v (cancel must restore the original date)", m.date, testDate)
	}
}

func TestCalendar_EnterAdoptsSelectedDay(t *testing.T) {
	m, _ := newTestModel(newMemStore())

	// June 1 2025 is a Sunday, so three rights stay inside the first row.
	m = press(t, m, "j", "j", "enter", "l", "l", "l", "enter")
	if m.state != viewMain {
		t.Fatalf("state = %v, want viewMain", m.state)
	}
	if want := (domain.Date{Day: 4, Month: 6, Year: 2025}); m.date != want {
		t.Errorf("date = %v, want %v", m.date, want)
	}
	if m.sel.Index != 0 {
		t.Errorf("selection after adopting a day: Index = %d, want 0", m.sel.Index)
	}
}

func TestCalendar_MonthPagingRollsOver(t *testing.T) {
	m, _ := newTestModel(newMemStore())
	m.date = domain.Date{Day: 10, Month: 1, Year: 2025}

	m = press(t, m, "j", "j", "enter", "b")
	if m.cursor.Month != 12 || m.cursor.Year != 2024 || m.cursor.Day != 1 {
		t.Errorf("after b: cursor = %+v, want day 1 of 12/2024", m.cursor)
	}
	m = press(t, m, "w", "w")
	if m.cursor.Month != 2 || m.cursor.Year != 2025 || m.cursor.Day != 1 {
		t.Errorf("after w w: cursor = %+v, want day 1 of 2/2025", m.cursor)
	}
}

func TestCalendar_BlockedMovesStaySilent(t *testing.T) {
	m, rec := newTestModel(newMemStore())

	// Day 8 of June 2025 sits in the Sunday column; left is blocked there.
	m = press(t, m, "j", "j", "enter", "j")
	if m.cursor.Day != 8 {
		t.Fatalf("cursor day = %d, want 8", m.cursor.Day)
	}
	before := len(rec.cues)
	m = press(t, m, "h")
	if m.cursor.Day != 8 {
		t.Errorf("cursor day = %d, want 8 (left blocked at row start)", m.cursor.Day)
	}
	if len(rec.cues) != before {
		t.Error("blocked move must not emit a cue")
	}
}

func TestCalendar_DownRejectedPastMonthEnd(t *testing.T) {
	m, _ := newTestModel(newMemStore())

	m = press(t, m, "j", "j", "enter", "j", "j", "j", "j")
	if m.cursor.Day != 29 {
		t.Fatalf("cursor day = %d, want 29", m.cursor.Day)
	}
	m = press(t, m, "j")
	if m.cursor.Day != 29 {
		t.Errorf("cursor day = %d, want 29 (June has 30 days, 36 is out)", m.cursor.Day)
	}
}

// ---------------------------------------------------------------------------
// Forms
// ---------------------------------------------------------------------------

func TestFirstRun_StartsInGoalsFormAndCommits(t *testing.T) {
	store := newMemStore()
	store.firstRun = true
	m, _ := newTestModel(store)

	if m.state != viewForm {
		t.Fatalf("state = %v, want viewForm on first run", m.state)
	}
	m = press(t, m, "q")
	if m.state != viewForm {
		t.Error("first-run goals form must not be cancelable")
	}

	m = press(t, m, "enter", "1800", "enter") // edit Calories
	if got := m.form.fields[0].value; got != "1800" {
		t.Fatalf("Calories field = %q, want %q", got, "1800")
	}
	m = press(t, m, "j", "j", "j", "j", "enter") // [OK]
	if m.state != viewMain {
		t.Fatalf("state = %v, want viewMain after commit", m.state)
	}
	if store.goals.Calories != 1800 {
		t.Errorf("goals.Calories = %d, want 1800", store.goals.Calories)
	}
	if store.saves == 0 {
		t.Error("goal commit should save the store")
	}
}

func TestForm_BadNumericEditDiscarded(t *testing.T) {
	m, _ := newTestModel(newMemStore())

	m = press(t, m, "j", "j", "j", "enter") // Reset goals
	if m.state != viewForm {
		t.Fatalf("state = %v, want viewForm", m.state)
	}
	m = press(t, m, "enter", "abc", "enter")
	if got := m.form.fields[0].value; got != "2000" {
		t.Errorf("Calories field = %q, want previous value %q", got, "2000")
	}
	m = press(t, m, "enter", "enter") // empty entry is discarded too
	if got := m.form.fields[0].value; got != "2000" {
		t.Errorf("Calories field = %q, want %q after empty entry", got, "2000")
	}
}

func TestForm_CancelLeavesGoalsUntouched(t *testing.T) {
	store := newMemStore()
	m, _ := newTestModel(store)

	m = press(t, m, "j", "j", "j", "enter", "enter", "1234", "enter", "q")
	if m.state != viewMain {
		t.Fatalf("state = %v, want viewMain after cancel", m.state)
	}
	if store.goals.Calories != 2000 {
		t.Errorf("goals.Calories = %d, want 2000 (cancel must not commit)", store.goals.Calories)
	}
}

func TestCustomFood_NameTruncatedAndCommitted(t *testing.T) {
	store := newMemStore()
	m, _ := newTestModel(store)

	longName := "an unreasonably long food name"
	m = press(t, m, "j", "enter") // Add custom food
	if m.state != viewForm {
		t.Fatalf("state = %v, want viewForm", m.state)
	}
	m = press(t, m, "enter", longName, "enter")
	if got := len([]rune(m.form.fields[0].value)); got > domain.MaxNameLen {
		t.Errorf("name length = %d, want <= %d", got, domain.MaxNameLen)
	}
	m = press(t, m, "j", "j", "j", "j", "j", "j", "enter") // [OK]
	foods := store.Record(testDate).Foods
	if len(foods) != 1 {
		t.Fatalf("foods = %d, want 1", len(foods))
	}
	if foods[0].Grams != 100 {
		t.Errorf("grams = %d, want default 100", foods[0].Grams)
	}
	if store.saves == 0 {
		t.Error("food commit should save the store")
	}
}

func TestEditFood_SeededAndOverwrites(t *testing.T) {
	store := newMemStore()
	store.Record(testDate).Foods = []domain.Food{{Name: "Toast", Calories: 120, Grams: 40}}
	m, _ := newTestModel(store)

	m = press(t, m, "j", "j", "j", "j", "enter") // focus the food, open editor
	if m.state != viewForm {
		t.Fatalf("state = %v, want viewForm", m.state)
	}
	if got := m.form.fields[0].value; got != "Toast" {
		t.Fatalf("seeded name = %q, want %q", got, "Toast")
	}
	m = press(t, m, "j", "enter", "250", "enter")            // Calories := 250
	m = press(t, m, "j", "j", "j", "j", "j", "enter")        // [OK]
	if got := store.Record(testDate).Foods[0].Calories; got != 250 {
		t.Errorf("Calories = %d, want 250", got)
	}
	if got := store.Record(testDate).Foods[0].Name; got != "Toast" {
		t.Errorf("Name = %q, want %q (untouched fields survive)", got, "Toast")
	}
}

// ---------------------------------------------------------------------------
// Template picker
// ---------------------------------------------------------------------------

func seedTemplates(m *Model) {
	m.templates.Add(domain.Template{Name: "Rice", Calories: 130, Carbs: 28})
	m.templates.Add(domain.Template{Name: "Oatmeal", Calories: 100, Carbs: 60})
	m.templates.Add(domain.Template{Name: "Olive Oil", Calories: 884, Fat: 100})
}

func TestPicker_LiveSearchFilters(t *testing.T) {
	m, _ := newTestModel(newMemStore())
	seedTemplates(&m)

	m = press(t, m, "enter") // Add from templates
	if m.state != viewPicker {
		t.Fatalf("state = %v, want viewPicker", m.state)
	}
	if got := len(m.picker.filtered); got != 3 {
		t.Fatalf("filtered = %d, want 3", got)
	}

	m = press(t, m, "enter", "O")
	if got := len(m.picker.filtered); got != 2 {
		t.Errorf("filtered for %q = %d, want 2 (match is case-sensitive)", "O", got)
	}
	m = press(t, m, "a")
	if got := len(m.picker.filtered); got != 1 {
		t.Errorf("filtered for %q = %d, want 1", "Oa", got)
	}
	m = press(t, m, "enter") // leave search mode
	if m.picker.term != "Oa" {
		t.Errorf("term = %q, want %q", m.picker.term, "Oa")
	}
}

func TestPicker_TemplateScalesIntoFood(t *testing.T) {
	store := newMemStore()
	m, _ := newTestModel(store)
	seedTemplates(&m)

	// Templates sort by name: Oatmeal, Olive Oil, Rice.
	m = press(t, m, "enter", "j", "j", "enter") // pick Oatmeal
	if m.state != viewForm {
		t.Fatalf("state = %v, want viewForm (grams prompt)", m.state)
	}
	m = press(t, m, "enter", "150", "enter", "j", "enter")
	if m.state != viewMain {
		t.Fatalf("state = %v, want viewMain", m.state)
	}
	foods := store.Record(testDate).Foods
	if len(foods) != 1 {
		t.Fatalf("foods = %d, want 1", len(foods))
	}
	f := foods[0]
	if f.Name != "Oatmeal" || f.Calories != 150 || f.Carbs != 90 || f.Grams != 150 {
		t.Errorf("scaled food = %+v, want Oatmeal 150cal 90carbs 150g", f)
	}
}

func TestPicker_TruncatingScale(t *testing.T) {
	store := newMemStore()
	m, _ := newTestModel(store)
	m.templates.Add(domain.Template{Name: "Egg", Calories: 52, Protein: 14})

	m = press(t, m, "enter", "j", "j", "enter", "enter", "33", "enter", "j", "enter")
	f := store.Record(testDate).Foods[0]
	if f.Calories != 17 || f.Protein != 4 {
		t.Errorf("scaled food = %+v, want 17cal 4protein (integer truncation)", f)
	}
}

func TestPicker_GramsPromptCancelReturnsToPicker(t *testing.T) {
	store := newMemStore()
	m, _ := newTestModel(store)
	seedTemplates(&m)

	m = press(t, m, "enter", "j", "j", "enter", "q")
	if m.state != viewPicker {
		t.Fatalf("state = %v, want viewPicker after cancelling the grams prompt", m.state)
	}
	if got := len(store.Record(testDate).Foods); got != 0 {
		t.Errorf("foods = %d, want 0 (cancel must not log anything)", got)
	}
}

func TestPicker_DeleteTemplateKeepsSearchTerm(t *testing.T) {
	m, _ := newTestModel(newMemStore())
	seedTemplates(&m)

	m = press(t, m, "enter", "enter", "O", "enter") // search "O", leave search
	m = press(t, m, "j", "j", "x")                  // delete first match (Oatmeal)
	if m.picker.term != "O" {
		t.Errorf("term = %q, want %q (delete keeps the search term)", m.picker.term, "O")
	}
	if got := len(m.picker.filtered); got != 1 {
		t.Fatalf("filtered = %d, want 1", got)
	}
	if m.picker.filtered[0].Name != "Olive Oil" {
		t.Errorf("remaining match = %q, want %q", m.picker.filtered[0].Name, "Olive Oil")
	}
	if m.templates.Len() != 2 {
		t.Errorf("templates = %d, want 2", m.templates.Len())
	}
}

func TestPicker_CreateTemplateReturnsToPicker(t *testing.T) {
	m, _ := newTestModel(newMemStore())

	m = press(t, m, "enter", "j", "enter") // Create new template
	if m.state != viewForm {
		t.Fatalf("state = %v, want viewForm", m.state)
	}
	m = press(t, m, "enter", "Banana", "enter")
	m = press(t, m, "j", "j", "j", "j", "j", "enter") // [OK]
	if m.state != viewPicker {
		t.Fatalf("state = %v, want viewPicker after creating a template", m.state)
	}
	if m.templates.Len() != 1 {
		t.Fatalf("templates = %d, want 1", m.templates.Len())
	}
	if got := len(m.picker.filtered); got != 1 {
		t.Errorf("filtered = %d, want 1 (picker list refreshes)", got)
	}
}

// ---------------------------------------------------------------------------
// Persistence feedback
// ---------------------------------------------------------------------------

func TestSaveFailure_SetsStatusAndAlerts(t *testing.T) {
	store := newMemStore()
	store.saveOK = false
	withFoods(store, 1)
	m, rec := newTestModel(store)

	m = press(t, m, "j", "j", "j", "j", "x")
	if m.status == "" {
		t.Error("failed save should set a status message")
	}
	if len(rec.alerts) == 0 {
		t.Error("failed save should raise an alert")
	}
	if !strings.Contains(m.View(), "save failed") {
		t.Error("main view should surface the save-failure status")
	}
}

func TestNavigationEmitsCues(t *testing.T) {
	m, rec := newTestModel(newMemStore())

	m = press(t, m, "j")
	if len(rec.cues) != 1 || rec.cues[0] != ports.CueNavigate {
		t.Errorf("cues = %v, want [CueNavigate]", rec.cues)
	}
	m = press(t, m, "l")
	if rec.cues[len(rec.cues)-1] != ports.CuePageSwitch {
		t.Errorf("day shift should emit CuePageSwitch, got %v", rec.cues)
	}
	_ = m
}

// ---------------------------------------------------------------------------
// Views
// ---------------------------------------------------------------------------

func TestViewMain_ShowsDateTotalsAndMenu(t *testing.T) {
	store := newMemStore()
	store.Record(testDate).Foods = []domain.Food{{Name: "Apple", Calories: 52, Carbs: 14, Grams: 100}}
	m, _ := newTestModel(store)

	out := m.View()
	for _, want := range []string{"15/06/2025", "Sunday", "Apple", "Add from templates", "Calendar", "0052"} {
		if !strings.Contains(out, want) {
			t.Errorf("main view missing %q", want)
		}
	}
}

func TestViewCalendar_ShowsMonthGrid(t *testing.T) {
	m, _ := newTestModel(newMemStore())
	m = press(t, m, "j", "j", "enter")

	out := m.View()
	for _, want := range []string{"June 2025", "Su Mo Tu We Th Fr Sa", "30"} {
		if !strings.Contains(out, want) {
			t.Errorf("calendar view missing %q", want)
		}
	}
	if strings.Contains(out, "31") {
		t.Error("calendar view must not render day 31 for June")
	}
}
