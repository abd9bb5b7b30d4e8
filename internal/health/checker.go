// Package health runs invariant checks over a save with optional repair.
package health

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/donjon-365/donjon/internal/domain"
	"github.com/donjon-365/donjon/internal/infra/metrics"
)

// Check defines a single invariant check with optional recovery action.
type Check struct {
	Name      string
	CheckFn   func(ctx context.Context, y domain.Year) error
	RecoverFn func(ctx context.Context, y domain.Year) domain.Year
}

// Status represents the result of a check.
type Status struct {
	Name      string    `json:"name"`
	Healthy   bool      `json:"healthy"`
	Error     string    `json:"error,omitempty"`
	Repaired  bool      `json:"repaired,omitempty"`
	CheckedAt time.Time `json:"checked_at"`
}

// Checker runs the invariant checks against a year snapshot.
type Checker struct {
	mu       sync.RWMutex
	checks   []Check
	statuses []Status
	now      func() time.Time
}

// NewChecker creates a checker with the standard checks.
func NewChecker() *Checker {
	return &Checker{
		now: time.Now,
		checks: []Check{
			{Name: "start_weekday", CheckFn: checkStartWeekdays},
			{Name: "global_index", CheckFn: checkGlobalIndex},
			{Name: "mana_slots", CheckFn: checkManaSlots},
			{Name: "mana_earned", CheckFn: checkManaEarned, RecoverFn: repairManaEarned},
			{Name: "week_bounds", CheckFn: checkWeeks},
			{Name: "item_slots", CheckFn: checkItemSlots, RecoverFn: repairItemSlots},
		},
	}
}

// Names lists the configured checks in run order.
func (c *Checker) Names() []string {
	names := make([]string, len(c.checks))
	for i, ch := range c.checks {
		names[i] = ch.Name
	}
	return names
}

// Run evaluates every check against y. When repair is set, failing checks
// with a recovery action rewrite the year; the possibly repaired year is
// returned. Repairs never mutate y.
func (c *Checker) Run(ctx context.Context, y domain.Year, repair bool) domain.Year {
	statuses := make([]Status, len(c.checks))
	for i, check := range c.checks {
		s := Status{
			Name:      check.Name,
			CheckedAt: c.now(),
		}
		if err := check.CheckFn(ctx, y); err != nil {
			s.Healthy = false
			s.Error = err.Error()
			if repair && check.RecoverFn != nil {
				y = check.RecoverFn(ctx, y)
				s.Repaired = true
				metrics.HealthRecoveries.WithLabelValues(check.Name).Inc()
			}
			metrics.HealthCheckStatus.WithLabelValues(check.Name).Set(0)
		} else {
			s.Healthy = true
			metrics.HealthCheckStatus.WithLabelValues(check.Name).Set(1)
		}
		statuses[i] = s
	}

	c.mu.Lock()
	c.statuses = statuses
	c.mu.Unlock()
	return y
}

// Statuses returns the latest check results.
func (c *Checker) Statuses() []Status {
	c.mu.RLock()
	defer c.mu.RUnlock()
	result := make([]Status, len(c.statuses))
	copy(result, c.statuses)
	return result
}

// IsHealthy returns true if all checks pass.
func (c *Checker) IsHealthy() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, s := range c.statuses {
		if !s.Healthy {
			return false
		}
	}
	return true
}

// ─── Check Implementations ──────────────────────────────────────────────────

func checkStartWeekdays(_ context.Context, y domain.Year) error {
	for i := 1; i < len(y.Months); i++ {
		prev := y.Months[i-1]
		want := (prev.StartWeekday + len(prev.Days)) % 7
		if y.Months[i].StartWeekday != want {
			return fmt.Errorf("%s starts on weekday %d, want %d",
				y.Months[i].Name, y.Months[i].StartWeekday, want)
		}
	}
	return nil
}

func checkGlobalIndex(_ context.Context, y domain.Year) error {
	next := 0
	for mi, m := range y.Months {
		for di, d := range m.Days {
			if d.GlobalIndex != next {
				return fmt.Errorf("%s %d has global index %d, want %d", m.Name, di+1, d.GlobalIndex, next)
			}
			if d.MonthIndex != mi || d.DayOfMonth != di+1 {
				return fmt.Errorf("day %d claims %d/%d, stored at %d/%d",
					next, d.DayOfMonth, d.MonthIndex, di+1, mi)
			}
			next++
		}
	}
	if next != domain.DaysInYear {
		return fmt.Errorf("year holds %d days, want %d", next, domain.DaysInYear)
	}
	return nil
}

func checkManaSlots(_ context.Context, y domain.Year) error {
	for _, m := range y.Months {
		slot := 0
		for _, d := range m.Days {
			if !d.Flags.Mana {
				if d.ManaSlot != domain.NoManaSlot {
					return fmt.Errorf("%s %d has slot %d without mana", m.Name, d.DayOfMonth, d.ManaSlot)
				}
				continue
			}
			if d.ManaSlot != slot {
				return fmt.Errorf("%s %d has mana slot %d, want %d", m.Name, d.DayOfMonth, d.ManaSlot, slot)
			}
			slot++
		}
		if len(m.ManaUsed) != slot {
			return fmt.Errorf("%s tracks %d mana slots, calendar has %d", m.Name, len(m.ManaUsed), slot)
		}
	}
	return nil
}

func checkManaEarned(_ context.Context, y domain.Year) error {
	for _, m := range y.Months {
		for slot, used := range m.ManaUsed {
			if used && !m.ManaEarned(slot) {
				return fmt.Errorf("%s mana slot %d used but not earned", m.Name, slot)
			}
		}
	}
	return nil
}

func repairManaEarned(_ context.Context, y domain.Year) domain.Year {
	out := y.Clone()
	for mi := range out.Months {
		m := &out.Months[mi]
		for slot, used := range m.ManaUsed {
			if used && !m.ManaEarned(slot) {
				m.ManaUsed[slot] = false
			}
		}
	}
	return out
}

func checkWeeks(_ context.Context, y domain.Year) error {
	for _, m := range y.Months {
		pos := 0
		weeks := m.Weeks()
		for wi, w := range weeks {
			if w.Start != pos {
				return fmt.Errorf("%s week %d starts at %d, want %d", m.Name, wi, w.Start, pos)
			}
			last := wi == len(weeks)-1
			if !last && m.Weekday(w.End-1) != 6 {
				return fmt.Errorf("%s week %d does not end on Saturday", m.Name, wi)
			}
			if w.Len() > 7 {
				return fmt.Errorf("%s week %d spans %d days", m.Name, wi, w.Len())
			}
			pos = w.End
		}
		if pos != len(m.Days) {
			return fmt.Errorf("%s weeks cover %d of %d days", m.Name, pos, len(m.Days))
		}
	}
	return nil
}

func checkItemSlots(_ context.Context, y domain.Year) error {
	for _, m := range y.Months {
		for _, item := range domain.Items {
			for slot := 0; slot < 2; slot++ {
				if m.ItemUsed(item)[slot] && !m.SlotUsable(item, slot) {
					return fmt.Errorf("%s %s slot %d used while unavailable", m.Name, item, slot)
				}
			}
		}
	}
	return nil
}

func repairItemSlots(_ context.Context, y domain.Year) domain.Year {
	out := y.Clone()
	for mi := range out.Months {
		m := &out.Months[mi]
		for _, item := range domain.Items {
			for slot := 0; slot < 2; slot++ {
				if m.ItemUsed(item)[slot] && !m.SlotUsable(item, slot) {
					m.SetItemUsed(item, slot, false)
				}
			}
		}
	}
	return out
}
