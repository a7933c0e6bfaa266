package deniverse

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/deniverse/deniverse/date"
)

func TestLoadPreferencesMissingFile(t *testing.T) {
	p := LoadPreferences(t.TempDir())
	want := DefaultPreferences()
	if p.PreferredCurrency != want.PreferredCurrency ||
		p.CycleLengthDays != want.CycleLengthDays ||
		p.PeriodLengthDays != want.PeriodLengthDays ||
		p.Theme != want.Theme ||
		!p.NotificationsEnabled {
		t.Errorf("LoadPreferences() = %+v, want defaults %+v", p, want)
	}
	if !p.LastPeriodStart.IsZero() {
		t.Errorf("LastPeriodStart = %s, want zero", p.LastPeriodStart)
	}
}

func TestLoadPreferencesOverlaysDefaults(t *testing.T) {
	dir := t.TempDir()
	partial := `{
  "preferredCurrency": "EUR",
  "cycleLengthDays": 30,
  "lastPeriodStart": "2026-03-01"
}
`
	if err := os.WriteFile(filepath.Join(dir, PreferencesFile), []byte(partial), 0o644); err != nil {
		t.Fatal(err)
	}

	p := LoadPreferences(dir)
	if p.PreferredCurrency != "EUR" {
		t.Errorf("PreferredCurrency = %q, want EUR", p.PreferredCurrency)
	}
	if p.CycleLengthDays != 30 {
		t.Errorf("CycleLengthDays = %d, want 30", p.CycleLengthDays)
	}
	if p.LastPeriodStart != date.New(2026, time.March, 1) {
		t.Errorf("LastPeriodStart = %s, want 2026-03-01", p.LastPeriodStart)
	}
	// Untouched fields keep their defaults.
	if p.PeriodLengthDays != 5 || p.Theme != "mint" || p.AgendaEndHour != 22 {
		t.Errorf("defaults not preserved: %+v", p)
	}
}

func TestPreferencesSaveRoundTrip(t *testing.T) {
	dir := t.TempDir()
	p := LoadPreferences(dir)
	p.ShowFinance = true
	p.LastPeriodStart = date.New(2026, time.February, 20)
	p.Save()

	reloaded := LoadPreferences(dir)
	if !reloaded.ShowFinance {
		t.Error("ShowFinance lost on reload")
	}
	if reloaded.LastPeriodStart != p.LastPeriodStart {
		t.Errorf("LastPeriodStart = %s, want %s", reloaded.LastPeriodStart, p.LastPeriodStart)
	}
}

func TestPreferencesCycle(t *testing.T) {
	p := DefaultPreferences()
	p.LastPeriodStart = date.New(2026, time.March, 1)
	c := p.Cycle()
	if c.Start != p.LastPeriodStart || c.Length != 28 || c.PeriodLength != 5 {
		t.Errorf("Cycle() = %+v", c)
	}
}
