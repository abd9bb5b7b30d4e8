// Package domain holds the pure data model of the dungeon calendar.
// Nothing here depends on infrastructure; every type is a plain value
// that the app and infra layers build on.
package domain

// ─── Day Types ──────────────────────────────────────────────────────────────

// DayType is the discriminant of a calendar cell. Exactly one per day.
type DayType string

const (
	TypeMonster     DayType = "MONSTER"
	TypeTrap        DayType = "TRAP"
	TypeBoss        DayType = "BOSS"
	TypeUndead      DayType = "UNDEAD"
	TypeDouble      DayType = "DOUBLE"
	TypeNecromancer DayType = "NECROMANCER"
	TypeShaman      DayType = "SHAMAN"
)

// Valid reports whether t is one of the known cell types.
func (t DayType) Valid() bool {
	switch t {
	case TypeMonster, TypeTrap, TypeBoss, TypeUndead, TypeDouble, TypeNecromancer, TypeShaman:
		return true
	}
	return false
}

// Flags are modifiers orthogonal to DayType. A flag never changes which
// scoring branch a day takes; it only feeds its own counter.
type Flags struct {
	Mana       bool `json:"mana,omitempty" yaml:"mana"`
	Elite      bool `json:"elite,omitempty" yaml:"elite"`
	Invisible  bool `json:"invisible,omitempty" yaml:"invisible"`
	Influenced bool `json:"influenced,omitempty" yaml:"influenced"`
	FinalBoss  bool `json:"final_boss,omitempty" yaml:"final_boss"`
}

// NoManaSlot marks a day that carries no mana potion.
const NoManaSlot = -1

// Weekday names, Sunday first.
var weekdayNames = [7]string{"Dimanche", "Lundi", "Mardi", "Mercredi", "Jeudi", "Vendredi", "Samedi"}

// WeekdayIndex returns the Sunday-indexed weekday of dayOfMonth in a month
// that starts on startWeekday. It is the only source of weekday truth.
func WeekdayIndex(startWeekday, dayOfMonth int) int {
	return (startWeekday + dayOfMonth - 1) % 7
}

// WeekdayName returns the French name for a Sunday-indexed weekday.
func WeekdayName(idx int) string {
	return weekdayNames[((idx%7)+7)%7]
}

// ─── Day ────────────────────────────────────────────────────────────────────

// Day is one calendar cell.
type Day struct {
	GlobalIndex int     `json:"global_index"`
	MonthIndex  int     `json:"month_index"`
	DayOfMonth  int     `json:"day"`
	Type        DayType `json:"type"`
	Value       int     `json:"value"`
	Value2      int     `json:"value2,omitempty"` // DOUBLE only
	Flags       Flags   `json:"flags"`
	ManaSlot    int     `json:"mana_slot"`
	Completed   bool    `json:"completed"`
}

// HasMana reports whether completing the day earns a mana potion.
func (d Day) HasMana() bool { return d.Flags.Mana && d.ManaSlot != NoManaSlot }

// IsBoss reports whether the day is scored as a boss.
func (d Day) IsBoss() bool { return d.Type == TypeBoss }

// ─── Items ──────────────────────────────────────────────────────────────────

// Item is a per-month reusable artifact.
type Item int

const (
	Staff Item = iota
	Cape
	Ring
)

// Items lists every item in save order.
var Items = []Item{Staff, Cape, Ring}

func (i Item) String() string {
	switch i {
	case Staff:
		return "staff"
	case Cape:
		return "cape"
	case Ring:
		return "ring"
	}
	return "unknown"
}

// ParseItem maps a name back to an Item.
func ParseItem(s string) (Item, error) {
	for _, it := range Items {
		if it.String() == s {
			return it, nil
		}
	}
	return 0, ErrUnknownItem
}

// Month indices at which items and the second item slot unlock.
const (
	StaffMonth     = 3
	CapeMonth      = 5
	RingMonth      = 7
	DoubleUseMonth = 9
)

// UnlockMonth returns the first month index where the item is available.
func (i Item) UnlockMonth() int {
	switch i {
	case Staff:
		return StaffMonth
	case Cape:
		return CapeMonth
	default:
		return RingMonth
	}
}

// ─── Month ──────────────────────────────────────────────────────────────────

// Month holds the days of one calendar month plus its item state.
type Month struct {
	Index        int     `json:"index"`
	Name         string  `json:"name"`
	StartWeekday int     `json:"start_weekday"`
	Days         []Day   `json:"days"`
	ManaUsed     []bool  `json:"mana_used"`
	StaffUsed    [2]bool `json:"staff_used"`
	CapeUsed     [2]bool `json:"cape_used"`
	RingUsed     [2]bool `json:"ring_used"`
}

// Weekday returns the weekday of the day at position i (0-based).
func (m Month) Weekday(i int) int {
	return WeekdayIndex(m.StartWeekday, i+1)
}

// HasItem reports whether the item can be used at all this month.
func (m Month) HasItem(it Item) bool {
	return m.Index >= it.UnlockMonth()
}

// SlotUsable reports whether slot (0 or 1) of the item may be used.
func (m Month) SlotUsable(it Item, slot int) bool {
	if !m.HasItem(it) {
		return false
	}
	switch slot {
	case 0:
		return true
	case 1:
		return m.Index >= DoubleUseMonth
	}
	return false
}

// ItemUsed returns the used flags of an item.
func (m Month) ItemUsed(it Item) [2]bool {
	switch it {
	case Staff:
		return m.StaffUsed
	case Cape:
		return m.CapeUsed
	default:
		return m.RingUsed
	}
}

// SetItemUsed sets one used flag of an item. Slots other than 0 and 1
// are ignored.
func (m *Month) SetItemUsed(it Item, slot int, used bool) {
	if slot < 0 || slot > 1 {
		return
	}
	switch it {
	case Staff:
		m.StaffUsed[slot] = used
	case Cape:
		m.CapeUsed[slot] = used
	case Ring:
		m.RingUsed[slot] = used
	}
}

// ManaDay returns the position of the day owning a mana slot, or -1.
func (m Month) ManaDay(slot int) int {
	for i, d := range m.Days {
		if d.HasMana() && d.ManaSlot == slot {
			return i
		}
	}
	return -1
}

// ManaEarned reports whether the potion in slot has been earned.
func (m Month) ManaEarned(slot int) bool {
	i := m.ManaDay(slot)
	return i >= 0 && m.Days[i].Completed
}

// ManaUsable reports whether a slot reads as used. An unearned potion is
// never usable, whatever its stored flag says.
func (m Month) ManaUsable(slot int) bool {
	if slot < 0 || slot >= len(m.ManaUsed) {
		return false
	}
	return m.ManaEarned(slot) && m.ManaUsed[slot]
}

// Week is a display chunk of consecutive days ending on a Saturday or at
// the month end. Start and End index into Month.Days (End exclusive).
type Week struct {
	Index     int  `json:"index"`
	Start     int  `json:"start"`
	End       int  `json:"end"`
	Completed bool `json:"completed"`
}

// Len returns the number of days in the week.
func (w Week) Len() int { return w.End - w.Start }

// Weeks chunks the month into display weeks. Completion is derived from
// the days on every call, so it cannot go stale.
func (m Month) Weeks() []Week {
	var weeks []Week
	start := 0
	for i := range m.Days {
		if m.Weekday(i) == 6 || i == len(m.Days)-1 {
			w := Week{Index: len(weeks), Start: start, End: i + 1}
			w.Completed = w.Len() == 7
			for _, d := range m.Days[w.Start:w.End] {
				if !d.Completed {
					w.Completed = false
					break
				}
			}
			weeks = append(weeks, w)
			start = i + 1
		}
	}
	return weeks
}

// Clone returns a deep copy of the month.
func (m Month) Clone() Month {
	c := m
	c.Days = make([]Day, len(m.Days))
	copy(c.Days, m.Days)
	c.ManaUsed = make([]bool, len(m.ManaUsed))
	copy(c.ManaUsed, m.ManaUsed)
	return c
}

// ─── Year ───────────────────────────────────────────────────────────────────

// Year is the ordered sequence of twelve months.
type Year struct {
	Months []Month `json:"months"`
}

// DaysInYear is the number of cells in the calendar.
const DaysInYear = 365

// Clone returns a deep copy of the year.
func (y Year) Clone() Year {
	c := Year{Months: make([]Month, len(y.Months))}
	for i, m := range y.Months {
		c.Months[i] = m.Clone()
	}
	return c
}

// Days returns every day in globalIndex order.
func (y Year) Days() []Day {
	days := make([]Day, 0, DaysInYear)
	for _, m := range y.Months {
		days = append(days, m.Days...)
	}
	return days
}

// Locate maps a global index to (month, position). ok is false when the
// index is out of range.
func (y Year) Locate(globalIndex int) (month, pos int, ok bool) {
	if globalIndex < 0 {
		return 0, 0, false
	}
	for mi, m := range y.Months {
		if globalIndex < len(m.Days) {
			return mi, globalIndex, true
		}
		globalIndex -= len(m.Days)
	}
	return 0, 0, false
}

// CompletedCount returns how many days are completed.
func (y Year) CompletedCount() int {
	n := 0
	for _, m := range y.Months {
		for _, d := range m.Days {
			if d.Completed {
				n++
			}
		}
	}
	return n
}
