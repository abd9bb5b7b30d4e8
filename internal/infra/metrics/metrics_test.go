package metrics

import (
	"bytes"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func gatheredNames(t *testing.T) map[string]bool {
	t.Helper()
	families, err := prometheus.DefaultGatherer.Gather()
	if err != nil {
		t.Fatalf("Gather() error: %v", err)
	}
	names := make(map[string]bool, len(families))
	for _, f := range families {
		names[f.GetName()] = true
	}
	return names
}

func TestProgressCounters(t *testing.T) {
	before := testutil.ToFloat64(DaysToggled.WithLabelValues("on"))
	DaysToggled.WithLabelValues("on").Inc()
	DaysToggled.WithLabelValues("off").Inc()
	ManaToggled.Inc()
	ItemsToggled.WithLabelValues("staff").Inc()
	DaysCompleted.Set(12)
	ScoreTotal.Set(30)

	if got := testutil.ToFloat64(DaysToggled.WithLabelValues("on")); got != before+1 {
		t.Errorf("days_toggled{on} = %v, want %v", got, before+1)
	}

	names := gatheredNames(t)
	expected := []string{
		"donjon_days_toggled_total",
		"donjon_mana_toggled_total",
		"donjon_items_toggled_total",
		"donjon_days_completed",
		"donjon_score_total",
	}
	for _, name := range expected {
		if !names[name] {
			t.Errorf("metric %q not found", name)
		}
	}
}

func TestSaveMetrics(t *testing.T) {
	SaveDecodes.WithLabelValues("fallback").Inc()
	SaveBytes.Set(80)

	if got := testutil.ToFloat64(SaveBytes); got != 80 {
		t.Errorf("save_bytes = %v, want 80", got)
	}
	if testutil.ToFloat64(SaveDecodes.WithLabelValues("fallback")) < 1 {
		t.Error("save_decodes{fallback} not incremented")
	}
}

func TestTrophyMetrics(t *testing.T) {
	TrophiesUnlocked.WithLabelValues("BRONZE").Add(2)
	PlayerXP.Set(50)
	PlayerLevel.Set(3)

	if got := testutil.ToFloat64(PlayerLevel); got != 3 {
		t.Errorf("player_level = %v, want 3", got)
	}
	names := gatheredNames(t)
	if !names["donjon_trophies_unlocked_total"] {
		t.Error("donjon_trophies_unlocked_total not found")
	}
}

func TestSimulationMetrics(t *testing.T) {
	SimulationTrials.Add(100)
	SimulationDuration.Observe(0.2)

	names := gatheredNames(t)
	if !names["donjon_simulation_duration_seconds"] {
		t.Error("donjon_simulation_duration_seconds not found")
	}
}

func TestHealthMetrics(t *testing.T) {
	HealthCheckStatus.WithLabelValues("mana_slots").Set(1)
	HealthCheckStatus.WithLabelValues("week_bounds").Set(0)
	HealthRecoveries.WithLabelValues("week_bounds").Inc()

	if got := testutil.ToFloat64(HealthCheckStatus.WithLabelValues("week_bounds")); got != 0 {
		t.Errorf("week_bounds status = %v, want 0", got)
	}
}

func TestWriteText(t *testing.T) {
	ScoreTotal.Set(42)

	var buf bytes.Buffer
	if err := WriteText(&buf, prometheus.DefaultGatherer, Namespace+"_"); err != nil {
		t.Fatalf("WriteText() error: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "donjon_score_total 42") {
		t.Errorf("output missing score sample:\n%s", out)
	}
	if strings.Contains(out, "go_goroutines") {
		t.Error("prefix filter let runtime metrics through")
	}
}

func TestWriteText_CustomRegistry(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := prometheus.NewCounter(prometheus.CounterOpts{Name: "other_total", Help: "x"})
	reg.MustRegister(c)
	c.Inc()

	var buf bytes.Buffer
	if err := WriteText(&buf, reg, ""); err != nil {
		t.Fatalf("WriteText() error: %v", err)
	}
	if !strings.Contains(buf.String(), "other_total 1") {
		t.Errorf("unexpected output:\n%s", buf.String())
	}
}
