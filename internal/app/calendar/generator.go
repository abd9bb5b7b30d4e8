// Package calendar builds the 365-day dungeon year from the embedded month
// templates and applies copy-on-write toggles to it.
package calendar

import (
	_ "embed"
	"fmt"
	"sort"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/donjon-365/donjon/internal/domain"
)

//go:embed calendar.yaml
var calendarYAML []byte

// Default cell values for days without an override.
const (
	DefaultBossValue    = 17
	DefaultMonsterValue = 1
)

// Override replaces a day's type, value and flags wholesale.
type Override struct {
	Type         domain.DayType `yaml:"type"`
	Value        int            `yaml:"value"`
	Value2       int            `yaml:"value2"`
	domain.Flags `yaml:",inline"`
}

// MonthTemplate is the static description of one month.
type MonthTemplate struct {
	Name         string           `yaml:"name"`
	Days         int              `yaml:"days"`
	StartWeekday int              `yaml:"start_weekday"`
	Overrides    map[int]Override `yaml:"overrides"`
}

// Rule is the gameplay rule a month introduces.
type Rule struct {
	Title   string `yaml:"title"`
	Summary string `yaml:"summary"`
}

// Templates is the whole static calendar description.
type Templates struct {
	Year   int             `yaml:"year"`
	Rules  map[int]Rule    `yaml:"rules"`
	Months []MonthTemplate `yaml:"months"`
}

// ParseTemplates decodes and validates a calendar document.
func ParseTemplates(data []byte) (Templates, error) {
	var t Templates
	if err := yaml.Unmarshal(data, &t); err != nil {
		return t, fmt.Errorf("parse calendar: %w", err)
	}
	if err := t.validate(); err != nil {
		return t, err
	}
	return t, nil
}

func (t Templates) validate() error {
	if len(t.Months) != 12 {
		return fmt.Errorf("calendar: want 12 months, got %d", len(t.Months))
	}
	total := 0
	for mi, m := range t.Months {
		if m.Days < 28 || m.Days > 31 {
			return fmt.Errorf("calendar: %s has %d days", m.Name, m.Days)
		}
		if m.StartWeekday < 0 || m.StartWeekday > 6 {
			return fmt.Errorf("calendar: %s starts on weekday %d", m.Name, m.StartWeekday)
		}
		for day, o := range m.Overrides {
			if day < 1 || day > m.Days {
				return fmt.Errorf("calendar: month %d override for day %d out of range", mi, day)
			}
			if !o.Type.Valid() {
				return fmt.Errorf("calendar: month %d day %d has unknown type %q", mi, day, o.Type)
			}
		}
		total += m.Days
	}
	if total != domain.DaysInYear {
		return fmt.Errorf("calendar: want %d days, got %d", domain.DaysInYear, total)
	}
	return nil
}

var (
	defaultOnce      sync.Once
	defaultTemplates Templates
)

// Default returns the embedded calendar templates. The document ships with
// the binary, so a parse failure is a build defect and panics.
func Default() Templates {
	defaultOnce.Do(func() {
		t, err := ParseTemplates(calendarYAML)
		if err != nil {
			panic(err)
		}
		defaultTemplates = t
	})
	return defaultTemplates
}

// Generate builds a fresh year from the embedded templates.
func Generate() domain.Year {
	return Default().Generate()
}

// Generate builds a fresh year: every completed and used flag is false.
func (t Templates) Generate() domain.Year {
	year := domain.Year{Months: make([]domain.Month, 0, len(t.Months))}
	global := 0

	for mi, tpl := range t.Months {
		m := domain.Month{
			Index:        mi,
			Name:         tpl.Name,
			StartWeekday: tpl.StartWeekday,
			Days:         make([]domain.Day, 0, tpl.Days),
		}
		manaCount := 0

		for dom := 1; dom <= tpl.Days; dom++ {
			d := domain.Day{
				GlobalIndex: global,
				MonthIndex:  mi,
				DayOfMonth:  dom,
				Type:        domain.TypeMonster,
				Value:       DefaultMonsterValue,
				ManaSlot:    domain.NoManaSlot,
			}
			if domain.WeekdayIndex(tpl.StartWeekday, dom) == 0 {
				d.Type = domain.TypeBoss
				d.Value = DefaultBossValue
			}
			if o, ok := tpl.Overrides[dom]; ok {
				d.Type = o.Type
				d.Value = o.Value
				d.Flags = o.Flags
				if o.Type == domain.TypeDouble {
					d.Value2 = o.Value2
				}
			}
			if d.Flags.Mana {
				d.ManaSlot = manaCount
				manaCount++
			}
			m.Days = append(m.Days, d)
			global++
		}

		m.ManaUsed = make([]bool, manaCount)
		year.Months = append(year.Months, m)
	}
	return year
}

// RuleFor returns the rule introduced in a month, if any.
func (t Templates) RuleFor(month int) (Rule, bool) {
	r, ok := t.Rules[month]
	return r, ok
}

// RuleMonths returns the months that introduce a rule, in order.
func (t Templates) RuleMonths() []int {
	months := make([]int, 0, len(t.Rules))
	for m := range t.Rules {
		months = append(months, m)
	}
	sort.Ints(months)
	return months
}
