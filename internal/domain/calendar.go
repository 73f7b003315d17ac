package domain

import "time"

// FirstWeekday returns the day of week (0=Sunday..6=Saturday) of the first
// of the given month.
func FirstWeekday(month, year int) int {
	return int(time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.Local).Weekday())
}

// DaysInMonth returns the number of days in the given month, computed as
// the day before the first of the following month so that December/January
// rollover and leap years fall out of the calendar itself.
func DaysInMonth(month, year int) int {
	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.Local)
	return first.AddDate(0, 1, -1).Day()
}

// GridRows returns the number of week rows needed to lay out the month.
func GridRows(month, year int) int {
	return (FirstWeekday(month, year) + DaysInMonth(month, year) + 6) / 7
}

// CalendarCursor tracks the selected day within an anchor month while the
// calendar view is open. The date that was active before entering the view
// is kept by the caller and restored on cancel.
type CalendarCursor struct {
	Day   int // 1..DaysInMonth(Month, Year)
	Month int
	Year  int
}

// NewCalendarCursor opens a cursor anchored on the given date's month with
// day 1 selected.
func NewCalendarCursor(d Date) CalendarCursor {
	return CalendarCursor{Day: 1, Month: d.Month, Year: d.Year}
}

// column returns the grid column (0..6) the selected day occupies.
func (c CalendarCursor) column() int {
	return (FirstWeekday(c.Month, c.Year) + c.Day - 1) % 7
}

// Left moves the selection one day back, blocked at the first column of the
// grid row. Returns true if the cursor moved.
func (c *CalendarCursor) Left() bool {
	if c.Day > 1 && c.column() > 0 {
		c.Day--
		return true
	}
	return false
}

// Right moves the selection one day forward, blocked at the last column of
// the grid row.
func (c *CalendarCursor) Right() bool {
	if c.column() < 6 && c.Day < DaysInMonth(c.Month, c.Year) {
		c.Day++
		return true
	}
	return false
}

// Down moves the selection one week later; the move is rejected if it would
// leave the month.
func (c *CalendarCursor) Down() bool {
	if c.Day+7 <= DaysInMonth(c.Month, c.Year) {
		c.Day += 7
		return true
	}
	return false
}

// Up moves the selection one week earlier; the move is rejected if it would
// leave the month.
func (c *CalendarCursor) Up() bool {
	if c.Day-7 >= 1 {
		c.Day -= 7
		return true
	}
	return false
}

// PrevMonth pages to the previous month, rolling the year at January, and
// resets the selection to day 1.
func (c *CalendarCursor) PrevMonth() {
	c.Month--
	if c.Month < 1 {
		c.Month = 12
		c.Year--
	}
	c.Day = 1
}

// NextMonth pages to the next month, rolling the year at December, and
// resets the selection to day 1.
func (c *CalendarCursor) NextMonth() {
	c.Month++
	if c.Month > 12 {
		c.Month = 1
		c.Year++
	}
	c.Day = 1
}

// Selected returns the date under the cursor. Confirming the calendar view
// adopts this as the active date.
func (c CalendarCursor) Selected() Date {
	return Date{Day: c.Day, Month: c.Month, Year: c.Year}
}

// MonthName returns the English month name for the cursor's anchor month.
func (c CalendarCursor) MonthName() string {
	return time.Month(c.Month).String()
}
