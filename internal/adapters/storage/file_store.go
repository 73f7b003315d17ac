// Package storage implements the record store on a line-oriented text
// file. The format is deliberately simple and append-friendly to read:
//
//	DAILY_GOALS: <calories>,<carbs>,<protein>,<fat>
//	DATE: <DD/MM/YYYY>
//	FOOD: <name>|<calories>|<carbs>|<protein>|<fat>|<grams>
//
// Goals come first; each DATE line starts the record that subsequent FOOD
// lines attach to.
package storage

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/Hambart471/caltrack/internal/domain"
	"github.com/Hambart471/caltrack/internal/ports"
)

// FileStore holds goals and daily records in memory and persists them to a
// single text file. It implements ports.RecordStore.
type FileStore struct {
	path     string
	goals    domain.Goals
	records  []*domain.DailyRecord
	firstRun bool
}

// New creates a store backed by the given file path, with default goals
// until Load or SetGoals replaces them.
func New(path string) *FileStore {
	return &FileStore{path: path, goals: domain.DefaultGoals()}
}

// Record returns the record for the given date, creating an empty one on
// first access. This is the only way records come into existence.
func (s *FileStore) Record(date domain.Date) *domain.DailyRecord {
	for _, r := range s.records {
		if r.Date == date {
			return r
		}
	}
	r := &domain.DailyRecord{Date: date}
	s.records = append(s.records, r)
	return r
}

// AllRecords returns all records in insertion order.
func (s *FileStore) AllRecords() []*domain.DailyRecord {
	return append([]*domain.DailyRecord(nil), s.records...)
}

// Goals returns the current daily goals.
func (s *FileStore) Goals() domain.Goals {
	return s.goals
}

// SetGoals replaces the daily goals.
func (s *FileStore) SetGoals(g domain.Goals) {
	s.goals = g
}

// FirstRun reports whether Load found no persisted store.
func (s *FileStore) FirstRun() bool {
	return s.firstRun
}

// Load reads the persisted store. A missing file marks the store first-run
// and returns false; that is the normal first-launch condition, not an
// error. Parsing is best-effort: a numeric token that fails to parse loads
// as 0, and FOOD lines with no preceding DATE line are dropped.
func (s *FileStore) Load() bool {
	f, err := os.Open(s.path)
	if err != nil {
		s.firstRun = true
		return false
	}
	defer f.Close()

	var current *domain.DailyRecord
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		switch {
		case strings.HasPrefix(line, "DAILY_GOALS:"):
			fields := strings.Split(strings.TrimSpace(line[len("DAILY_GOALS:"):]), ",")
			s.goals = domain.Goals{
				Calories: atoiField(fields, 0),
				Carbs:    atoiField(fields, 1),
				Protein:  atoiField(fields, 2),
				Fat:      atoiField(fields, 3),
			}
		case strings.HasPrefix(line, "DATE:"):
			dateStr := strings.TrimSpace(line[len("DATE:"):])
			date, err := domain.ParseDate(dateStr)
			if err != nil {
				current = nil
				continue
			}
			current = s.Record(date)
		case strings.HasPrefix(line, "FOOD:"):
			if current == nil {
				continue
			}
			fields := strings.Split(strings.TrimSpace(line[len("FOOD:"):]), "|")
			name := ""
			if len(fields) > 0 {
				name = fields[0]
			}
			current.Foods = append(current.Foods, domain.Food{
				Name:     name,
				Calories: atoiField(fields, 1),
				Carbs:    atoiField(fields, 2),
				Protein:  atoiField(fields, 3),
				Fat:      atoiField(fields, 4),
				Grams:    atoiField(fields, 5),
			})
		}
	}
	return true
}

// Save rewrites the persisted store in full: goals first, then every
// record with its foods in insertion order. A false return means the
// destination was unwritable; the in-memory state stays authoritative.
func (s *FileStore) Save() bool {
	f, err := os.Create(s.path)
	if err != nil {
		return false
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	fmt.Fprintf(w, "DAILY_GOALS: %d,%d,%d,%d\n",
		s.goals.Calories, s.goals.Carbs, s.goals.Protein, s.goals.Fat)
	for _, r := range s.records {
		fmt.Fprintf(w, "DATE: %s\n", r.Date)
		for _, food := range r.Foods {
			fmt.Fprintf(w, "FOOD: %s|%d|%d|%d|%d|%d\n",
				food.Name, food.Calories, food.Carbs, food.Protein, food.Fat, food.Grams)
		}
	}
	return w.Flush() == nil
}

// atoiField parses fields[i] as an int, yielding 0 for a missing or
// malformed token.
func atoiField(fields []string, i int) int {
	if i >= len(fields) {
		return 0
	}
	n, err := strconv.Atoi(strings.TrimSpace(fields[i]))
	if err != nil {
		return 0
	}
	return n
}

var _ ports.RecordStore = (*FileStore)(nil)
