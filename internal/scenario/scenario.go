// Package scenario holds the scripted timeline: which year brings which
// phrase, when hazards start, when the weapon unlocks, and how often debris
// appears in each era.
package scenario

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// ErrYearUnmapped is returned when the delay table has no entry for a year.
var ErrYearUnmapped = errors.New("scenario: year has no debris delay")

// Step is one row of the delay table: from Year onwards (until the next
// step) debris appears every Delay ticks.
type Step struct {
	Year  int `yaml:"year"`
	Delay int `yaml:"delay"`
}

// Table is the full scenario configuration.
type Table struct {
	StartYear  int            `yaml:"start_year"`
	HazardYear int            `yaml:"hazard_year"` // Debris spawner starts
	WeaponYear int            `yaml:"weapon_year"` // Plasma gun unlocks
	WeaponText string         `yaml:"weapon_text"`
	Steps      []Step         `yaml:"steps"`
	Phrases    map[int]string `yaml:"phrases"`
}

// Default returns the stock timeline.
func Default() *Table {
	return &Table{
		StartYear:  1957,
		HazardYear: 1961,
		WeaponYear: 2025,
		WeaponText: "Take the plasma gun! Shoot the garbage!",
		Steps: []Step{
			{Year: 1961, Delay: 20},
			{Year: 1969, Delay: 18},
			{Year: 1981, Delay: 16},
			{Year: 1995, Delay: 14},
			{Year: 2010, Delay: 12},
			{Year: 2021, Delay: 10},
			{Year: 2025, Delay: 8},
		},
		Phrases: map[int]string{
			1957: "First Sputnik",
			1961: "Gagarin flew!",
			1969: "Armstrong got on the moon!",
			1971: "First orbital space station Salute-1",
			1981: "Flight of the Shuttle Columbia",
			1998: "ISS start building",
			2011: "Messenger launch to Mercury",
			2021: "Russia tests anti-satellite weapon, now tons of garbage",
		},
	}
}

// Load reads a YAML table. Fields missing from the file keep their defaults.
func Load(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scenario: read %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes a YAML table on top of the defaults and validates it.
func Parse(data []byte) (*Table, error) {
	t := Default()
	if err := yaml.Unmarshal(data, t); err != nil {
		return nil, fmt.Errorf("scenario: decode: %w", err)
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

// Validate checks that the delay table is usable.
func (t *Table) Validate() error {
	if len(t.Steps) == 0 {
		return errors.New("scenario: delay table is empty")
	}
	sorted := sort.SliceIsSorted(t.Steps, func(i, j int) bool {
		return t.Steps[i].Year < t.Steps[j].Year
	})
	if !sorted {
		return errors.New("scenario: delay steps must be sorted by year")
	}
	for i, s := range t.Steps {
		if s.Delay < 1 {
			return fmt.Errorf("scenario: step %d (year %d) has delay %d, want at least 1", i, s.Year, s.Delay)
		}
		if i > 0 && s.Year == t.Steps[i-1].Year {
			return fmt.Errorf("scenario: duplicate step for year %d", s.Year)
		}
	}
	if t.HazardYear < t.Steps[0].Year {
		return fmt.Errorf("scenario: hazards start in %d but the delay table starts in %d",
			t.HazardYear, t.Steps[0].Year)
	}
	if t.StartYear > t.HazardYear {
		return fmt.Errorf("scenario: start year %d is after hazard year %d", t.StartYear, t.HazardYear)
	}
	return nil
}

// Delay returns the debris delay in ticks for a year. It is a pure step
// function of the year; years before the first step are unmapped.
func (t *Table) Delay(year int) (int, error) {
	delay := 0
	for _, s := range t.Steps {
		if year < s.Year {
			break
		}
		delay = s.Delay
	}
	if delay == 0 {
		return 0, fmt.Errorf("%w: %d", ErrYearUnmapped, year)
	}
	return delay, nil
}

// Phrase returns the scripted phrase for a year, if any.
func (t *Table) Phrase(year int) (string, bool) {
	p, ok := t.Phrases[year]
	return p, ok
}

// Timeline is the mutable scenario state. The scenario clock is its only
// writer; everything else reads it.
type Timeline struct {
	Year           int
	WeaponUnlocked bool
	HazardsStarted bool
}

// NewTimeline starts a timeline at the table's start year.
func NewTimeline(t *Table) *Timeline {
	return &Timeline{Year: t.StartYear}
}
