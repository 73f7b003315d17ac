// Package domain contains the core entities for caltrack: food entries,
// daily records, nutritional goals and the date/calendar arithmetic the
// interactive views are built on. It is independent of any external
// frameworks or infrastructure.
package domain

import (
	"errors"
	"fmt"
	"time"
)

// Common domain errors.
var (
	ErrBadDate          = errors.New("date must be DD/MM/YYYY")
	ErrTemplateNotFound = errors.New("template not found")
)

// MaxNameLen is the display width allocated for food names. Longer names
// are truncated on input, never rejected.
const MaxNameLen = 21

/// Food is one logged food entry: absolute nutrient values for the portion
// that was eaten. Foods have no identity beyond their position in a day's
// record; template deletion matches by name only.
type Food struct {
	Name     string
	Calories int
	Carbs    int
	Protein  int
	Fat      int
	Grams    int
}

// Goals holds the daily nutritional targets. Values are not validated;
// zero or negative goals only affect display math.
type Goals struct {
	Calories int
	Carbs    int
	Protein  int
	Fat      int
}

// DefaultGoals returns the targets used until the user configures their own.
func DefaultGoals() Goals {
	return Goals{Calories: 2000, Carbs: 250, Protein: 150, Fat: 70}
}

// DailyRecord is one calendar day's logged foods, in insertion order.
// Insertion order is also display and edit order.
type DailyRecord struct {
	Date  Date
	Foods []Food
}

// Totals sums the nutrient fields across all foods in the record.
func (r *DailyRecord) Totals() (calories, carbs, protein, fat int) {
	for _, f := range r.Foods {
		calories += f.Calories
		carbs += f.Carbs
		protein += f.Protein
		fat += f.Fat
	}
	return
}

// DeleteFood removes the food at index i. Out-of-range indexes are a no-op.
func (r *DailyRecord) DeleteFood(i int) {
	if i < 0 || i >= len(r.Foods) {
		return
	}
	r.Foods = append(r.Foods[:i], r.Foods[i+1:]...)
}

// TruncateName caps a food or template name at MaxNameLen characters.
func TruncateName(name string) string {
	runes := []rune(name)
	if len(runes) > MaxNameLen {
		return string(runes[:MaxNameLen])
	}
	return name
}

// Date is a calendar date with no time component.
type Date struct {
	Day   int
	Month int
	Year  int
}

// Today returns the current local date.
func Today() Date {
	now := time.Now()
	return Date{Day: now.Day(), Month: int(now.Month()), Year: now.Year()}
}

// ParseDate parses a DD/MM/YYYY string.
func ParseDate(s string) (Date, error) {
	var d Date
	if _, err := fmt.Sscanf(s, "%d/%d/%d", &d.Day, &d.Month, &d.Year); err != nil {
		return Date{}, ErrBadDate
	}
	return d, nil
}

// String formats the date as DD/MM/YYYY, the persisted wire form.
func (d Date) String() string {
	return fmt.Sprintf("%02d/%02d/%04d", d.Day, d.Month, d.Year)
}

// Time converts the date to a time.Time at local midnight.
func (d Date) Time() time.Time {
	return time.Date(d.Year, time.Month(d.Month), d.Day, 0, 0, 0, 0, time.Local)
}

// AddDays shifts the date by n days, letting the calendar normalize
// month and year boundaries.
func (d Date) AddDays(n int) Date {
	t := d.Time().AddDate(0, 0, n)
	return Date{Day: t.Day(), Month: int(t.Month()), Year: t.Year()}
}

// Weekday returns the day of week, 0=Sunday..6=Saturday.
func (d Date) Weekday() int {
	return int(d.Time().Weekday())
}

// DisplayDate formats the date with its weekday name, e.g.
// "15/04/2025 - Tuesday".
func (d Date) DisplayDate() string {
	return d.String() + " - " + d.Time().Weekday().String()
}

// Template is a reusable per-100g nutrient profile. Templates live for the
// process only and are never persisted.
type Template struct {
	Name     string
	Calories int
	Carbs    int
	Protein  int
	Fat      int
}

// Instantiate produces a food entry for the given portion size. Each
// nutrient scales as value*grams/100 with truncating integer division.
func (t Template) Instantiate(grams int) Food {
	return Food{
		Name:     t.Name,
		Calories: t.Calories * grams / 100,
		Carbs:    t.Carbs * grams / 100,
		Protein:  t.Protein * grams / 100,
		Fat:      t.Fat * grams / 100,
		Grams:    grams,
	}
}
