package deniverse

import (
	"log"
	"path/filepath"

	"github.com/deniverse/deniverse/date"
)

// Preferences holds the user settings document. The core consumes the
// cycle parameters and currency; theme and tone are carried as opaque
// values for the presentation layer.
type Preferences struct {
	ShowFinance          bool      `json:"showFinance"`
	HideWelcomeCard      bool      `json:"hideWelcomeCard"`
	Theme                string    `json:"theme"`
	Tone                 string    `json:"tone"`
	PreferredCurrency    string    `json:"preferredCurrency"`
	NotificationsEnabled bool      `json:"notificationsEnabled"`
	CycleLengthDays      int       `json:"cycleLengthDays"`
	PeriodLengthDays     int       `json:"periodLengthDays"`
	LastPeriodStart      date.Date `json:"lastPeriodStart,omitzero"`
	AgendaStartHour      int       `json:"agendaStartHour"`
	AgendaEndHour        int       `json:"agendaEndHour"`

	path string
}

// DefaultPreferences returns the settings used before any file exists.
func DefaultPreferences() Preferences {
	return Preferences{
		Theme:                "mint",
		Tone:                 "white",
		PreferredCurrency:    "MXN",
		NotificationsEnabled: true,
		CycleLengthDays:      28,
		PeriodLengthDays:     5,
		AgendaStartHour:      7,
		AgendaEndHour:        22,
	}
}

// LoadPreferences reads the preferences document from dir, overlaying the
// file on top of the defaults. A missing or corrupt file yields the
// defaults.
func LoadPreferences(dir string) *Preferences {
	p := DefaultPreferences()
	p.path = filepath.Join(dir, PreferencesFile)
	if err := readDocument(p.path, &p); err != nil && !isNotExist(err) {
		log.Printf("preferences: load %s: %v", p.path, err)
		p = DefaultPreferences()
		p.path = filepath.Join(dir, PreferencesFile)
	}
	return &p
}

// Save persists the preferences document; failures are logged and
// swallowed.
func (p *Preferences) Save() {
	if err := writeDocument(p.path, p); err != nil {
		log.Printf("preferences: save %s: %v", p.path, err)
	}
}

// Cycle assembles the cycle parameters for the calculator.
func (p *Preferences) Cycle() Cycle {
	return Cycle{
		Start:        p.LastPeriodStart,
		Length:       p.CycleLengthDays,
		PeriodLength: p.PeriodLengthDays,
	}
}
