package domain

import "testing"

func TestDaysInMonth(t *testing.T) {
	tests := []struct {
		name  string
		month int
		year  int
		want  int
	}{
		{"leap february", 2, 2024, 29},
		{"non-leap february", 2, 2023, 28},
		{"century non-leap", 2, 1900, 28},
		{"400-year leap", 2, 2000, 29},
		{"december", 12, 2024, 31},
		{"april", 4, 2025, 30},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DaysInMonth(tt.month, tt.year); got != tt.want {
				t.Errorf("DaysInMonth(%d, %d) = %d, want %d", tt.month, tt.year, got, tt.want)
			}
		})
	}
}

func TestGridRows(t *testing.T) {
	// February 2026 starts on Sunday and has 28 days: exactly 4 rows.
	if got := GridRows(2, 2026); got != 4 {
		t.Errorf("GridRows(2, 2026) = %d, want 4", got)
	}
	// August 2026 starts on Saturday and has 31 days: 6 rows.
	if got := GridRows(8, 2026); got != 6 {
		t.Errorf("GridRows(8, 2026) = %d, want 6", got)
	}
}

func TestCalendarCursor_MonthPaging(t *testing.T) {
	c := NewCalendarCursor(Date{Day: 15, Month: 12, Year: 2024})
	c.Day = 20

	c.NextMonth()
	if c.Month != 1 || c.Year != 2025 {
		t.Errorf("NextMonth from December = %d/%d, want 1/2025", c.Month, c.Year)
	}
	if c.Day != 1 {
		t.Errorf("month paging should reset the day to 1, got %d", c.Day)
	}

	c.PrevMonth()
	if c.Month != 12 || c.Year != 2024 {
		t.Errorf("PrevMonth from January = %d/%d, want 12/2024", c.Month, c.Year)
	}
}

func TestCalendarCursor_RowBlockedHorizontalMovement(t *testing.T) {
	// August 2025: the 1st falls on a Friday (weekday 5).
	if FirstWeekday(8, 2025) != 5 {
		t.Fatalf("test premise broken: FirstWeekday(8, 2025) = %d", FirstWeekday(8, 2025))
	}

	c := CalendarCursor{Day: 1, Month: 8, Year: 2025}
	if c.Left() {
		t.Error("Left from day 1 should be blocked regardless of column")
	}

	// Day 2 sits in the last column of the first row; Right must not wrap
	// into the next row even though day 3 exists.
	c.Day = 2
	if c.Right() {
		t.Error("Right at the last column of a row should be a no-op")
	}
	if c.Day != 2 {
		t.Errorf("blocked move changed the day to %d", c.Day)
	}

	// Day 3 opens the second row; Left must not cross back to day 2.
	c.Day = 3
	if c.Left() {
		t.Error("Left at the first column of a row should be a no-op")
	}
	if !c.Right() || c.Day != 4 {
		t.Errorf("Right within a row should move to 4, got %d", c.Day)
	}
}

func TestCalendarCursor_VerticalClamping(t *testing.T) {
	c := CalendarCursor{Day: 28, Month: 2, Year: 2023} // 28 days
	if c.Down() {
		t.Error("Down past the end of the month should be rejected")
	}
	if !c.Up() || c.Day != 21 {
		t.Errorf("Up should land on 21, got %d", c.Day)
	}

	c.Day = 5
	if c.Up() {
		t.Error("Up past the start of the month should be rejected")
	}
	if !c.Down() || c.Day != 12 {
		t.Errorf("Down should land on 12, got %d", c.Day)
	}
}

func TestCalendarCursor_Selected(t *testing.T) {
	c := CalendarCursor{Day: 9, Month: 6, Year: 2025}
	got := c.Selected()
	want := Date{Day: 9, Month: 6, Year: 2025}
	if got != want {
		t.Errorf("Selected() = %v, want %v", got, want)
	}
}

func TestDate_AddDays(t *testing.T) {
	tests := []struct {
		name string
		from Date
		n    int
		want Date
	}{
		{"within month", Date{10, 4, 2025}, 1, Date{11, 4, 2025}},
		{"month rollover", Date{30, 4, 2025}, 1, Date{1, 5, 2025}},
		{"year rollover", Date{31, 12, 2024}, 1, Date{1, 1, 2025}},
		{"backwards over leap day", Date{1, 3, 2024}, -1, Date{29, 2, 2024}},
		{"backwards year rollover", Date{1, 1, 2025}, -1, Date{31, 12, 2024}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.from.AddDays(tt.n); got != tt.want {
				t.Errorf("%v.AddDays(%d) = %v, want %v", tt.from, tt.n, got, tt.want)
			}
		})
	}
}

func TestDate_ParseAndString(t *testing.T) {
	d, err := ParseDate("05/09/2025")
	if err != nil {
		t.Fatalf("ParseDate: %v", err)
	}
	if d != (Date{Day: 5, Month: 9, Year: 2025}) {
		t.Errorf("ParseDate = %v", d)
	}
	if d.String() != "05/09/2025" {
		t.Errorf("String() = %q, want zero-padded DD/MM/YYYY", d.String())
	}
	if _, err := ParseDate("not-a-date"); err == nil {
		t.Error("ParseDate should reject garbage")
	}
}
