package deniverse

import (
	"fmt"
	"log"
	"maps"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/deniverse/deniverse/date"
)

// NoteCategory classifies a note.
type NoteCategory string

const (
	NotePersonal NoteCategory = "personal"
	NoteWork     NoteCategory = "work"
	NoteFinance  NoteCategory = "finance"
	NoteHealth   NoteCategory = "health"
	NoteOther    NoteCategory = "other"
)

// NoteCategories lists all note categories.
var NoteCategories = []NoteCategory{NotePersonal, NoteWork, NoteFinance, NoteHealth, NoteOther}

// ParseNoteCategory parses a note category name.
func ParseNoteCategory(s string) (NoteCategory, error) {
	for _, c := range NoteCategories {
		if string(c) == strings.ToLower(s) {
			return c, nil
		}
	}
	return NoteOther, fmt.Errorf("unknown note category %q", s)
}

// NoteItem is a categorized note attached to a day. Notes keep their append
// order inside the day and may carry an independent reminder.
type NoteItem struct {
	ID        uuid.UUID    `json:"id"`
	Text      string       `json:"text"`
	Category  NoteCategory `json:"category"`
	CreatedAt time.Time    `json:"createdAt"`
	Reminder  *time.Time   `json:"reminder,omitempty"`
}

// MarshalJSON keeps the note fields in a fixed order and omits an unset
// reminder.
func (n NoteItem) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", n.ID)
	w.Append("text", n.Text)
	w.Append("category", n.Category)
	w.Append("createdAt", n.CreatedAt)
	if n.Reminder != nil {
		w.Append("reminder", n.Reminder)
	}
	return w.MarshalJSON()
}

// DayEntry aggregates everything attached to one calendar day. All fields
// are optional; an entry that normalizes to empty is dropped from the map
// entirely so it never reaches the persisted document.
type DayEntry struct {
	// Text is the free-form day note.
	Text string `json:"text,omitempty"`
	// Drawing is opaque serialized ink data, persisted as base64.
	Drawing []byte `json:"drawingData,omitempty"`
	// Reminder is the earliest pending reminder among this day's sources.
	Reminder *time.Time `json:"reminder,omitempty"`
	// Notes in append order.
	Notes []NoteItem `json:"notes,omitempty"`
	// Hourly maps hour-of-day (0-23) to a non-empty text slot.
	Hourly map[int]string `json:"hourly,omitempty"`
	// PeriodDelayed is set only when the day is explicitly marked.
	PeriodDelayed bool `json:"periodDelayed,omitempty"`
}

// MarshalJSON emits the canonical form: fields in fixed order, empty or
// false values absent.
func (e DayEntry) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Optional("text", e.Text)
	w.Optional("drawingData", e.Drawing)
	if e.Reminder != nil {
		w.Append("reminder", e.Reminder)
	}
	w.Optional("notes", e.Notes)
	w.Optional("hourly", e.Hourly)
	w.Optional("periodDelayed", e.PeriodDelayed)
	return w.MarshalJSON()
}

// normalize collapses blank or empty fields to their absent form, in memory,
// so the in-memory state always equals what serialization would produce.
func (e *DayEntry) normalize() {
	if strings.TrimSpace(e.Text) == "" {
		e.Text = ""
	}
	if len(e.Drawing) == 0 {
		e.Drawing = nil
	}
	if len(e.Notes) == 0 {
		e.Notes = nil
	}
	if len(e.Hourly) == 0 {
		e.Hourly = nil
	}
}

// isEmpty reports whether the entry holds no data at all.
func (e DayEntry) isEmpty() bool {
	return e.Text == "" && len(e.Drawing) == 0 && e.Reminder == nil &&
		len(e.Notes) == 0 && len(e.Hourly) == 0 && !e.PeriodDelayed
}

// earliestNoteReminder returns the minimum reminder over the entry's notes,
// or nil when no note carries one.
func (e DayEntry) earliestNoteReminder() *time.Time {
	var min *time.Time
	for _, n := range e.Notes {
		if n.Reminder == nil {
			continue
		}
		if min == nil || n.Reminder.Before(*min) {
			r := *n.Reminder
			min = &r
		}
	}
	return min
}

// clone returns a deep copy so callers can never alias store-owned state.
func (e DayEntry) clone() DayEntry {
	c := e
	if e.Drawing != nil {
		c.Drawing = append([]byte(nil), e.Drawing...)
	}
	if e.Reminder != nil {
		r := *e.Reminder
		c.Reminder = &r
	}
	if e.Notes != nil {
		c.Notes = make([]NoteItem, len(e.Notes))
		copy(c.Notes, e.Notes)
		for i, n := range e.Notes {
			if n.Reminder != nil {
				r := *n.Reminder
				c.Notes[i].Reminder = &r
			}
		}
	}
	if e.Hourly != nil {
		c.Hourly = maps.Clone(e.Hourly)
	}
	return c
}

// AgendaStore owns the day-entry and week-note maps and is their sole
// mutator. Every mutating method persists synchronously before returning,
// and in-memory state is kept normalized at mutation time, so readers
// always observe exactly the canonical persisted form.
type AgendaStore struct {
	path      string
	weekPath  string
	entries   map[string]DayEntry
	weekNotes map[string]string
	loading   bool
	scheduler ReminderScheduler
}

// NewAgendaStore loads the agenda documents from dir. Missing or corrupt
// files yield an empty store: absence is the expected first-run case, and
// availability wins over strict failure signaling for corrupt data.
func NewAgendaStore(dir string) *AgendaStore {
	s := &AgendaStore{
		path:      filepath.Join(dir, AgendaFile),
		weekPath:  filepath.Join(dir, WeekNotesFile),
		entries:   make(map[string]DayEntry),
		weekNotes: make(map[string]string),
	}
	s.loading = true
	if err := readDocument(s.path, &s.entries); err != nil && !isNotExist(err) {
		log.Printf("agenda: load %s: %v", s.path, err)
		s.entries = make(map[string]DayEntry)
	}
	if s.entries == nil {
		s.entries = make(map[string]DayEntry)
	}
	if err := readDocument(s.weekPath, &s.weekNotes); err != nil && !isNotExist(err) {
		log.Printf("agenda: load %s: %v", s.weekPath, err)
		s.weekNotes = make(map[string]string)
	}
	if s.weekNotes == nil {
		s.weekNotes = make(map[string]string)
	}
	s.loading = false
	return s
}

// SetScheduler installs the collaborator invoked with the earliest pending
// reminder after each mutation. A nil scheduler disables notifications.
func (s *AgendaStore) SetScheduler(rs ReminderScheduler) { s.scheduler = rs }

// Entry returns a copy of the day's entry, or nil if the day holds nothing.
func (s *AgendaStore) Entry(d date.Date) *DayEntry {
	e, ok := s.entries[d.Key()]
	if !ok {
		return nil
	}
	c := e.clone()
	return &c
}

// Days returns the keys of all days holding data, in no particular order.
func (s *AgendaStore) Days() []string {
	keys := make([]string, 0, len(s.entries))
	for k := range s.entries {
		keys = append(keys, k)
	}
	return keys
}

// Notes returns the day's notes in append order.
func (s *AgendaStore) Notes(d date.Date) []NoteItem {
	e, ok := s.entries[d.Key()]
	if !ok {
		return nil
	}
	return e.clone().Notes
}

// HourlyText returns the text of one hour slot.
func (s *AgendaStore) HourlyText(d date.Date, hour int) (string, bool) {
	e, ok := s.entries[d.Key()]
	if !ok {
		return "", false
	}
	text, ok := e.Hourly[hour]
	return text, ok
}

// IsPeriodDelayed reports whether the day was explicitly marked as a cycle
// delay.
func (s *AgendaStore) IsPeriodDelayed(d date.Date) bool {
	return s.entries[d.Key()].PeriodDelayed
}

// WeekNote returns the note for the ISO week containing d.
func (s *AgendaStore) WeekNote(d date.Date) (string, bool) {
	text, ok := s.weekNotes[d.WeekKey()]
	return text, ok
}

// UpdateDayText replaces the day's free text and drawing blob, leaving the
// day-level reminder untouched. Blank text normalizes to absent.
func (s *AgendaStore) UpdateDayText(d date.Date, text string, drawing []byte) {
	k := d.Key()
	e := s.entries[k]
	e.Text = text
	e.Drawing = drawing
	s.setEntry(k, e)
}

// UpdateDayTextReminder is UpdateDayText with an explicit day-level
// reminder: a value sets it, nil clears it.
func (s *AgendaStore) UpdateDayTextReminder(d date.Date, text string, drawing []byte, reminder *time.Time) {
	k := d.Key()
	e := s.entries[k]
	e.Text = text
	e.Drawing = drawing
	e.Reminder = reminder
	s.setEntry(k, e)
	s.notify(k)
}

// AddNote appends a new note to the day and returns it. When the note
// carries a reminder, the day reminder becomes the minimum of the existing
// day reminder and the new one.
func (s *AgendaStore) AddNote(d date.Date, text string, category NoteCategory, reminder *time.Time) NoteItem {
	k := d.Key()
	e := s.entries[k]
	note := NoteItem{
		ID:        uuid.New(),
		Text:      text,
		Category:  category,
		CreatedAt: time.Now(),
		Reminder:  reminder,
	}
	e.Notes = append(e.Notes, note)
	if reminder != nil {
		if e.Reminder == nil || reminder.Before(*e.Reminder) {
			r := *reminder
			e.Reminder = &r
		}
	}
	s.setEntry(k, e)
	s.notify(k)
	return note
}

// UpdateNote replaces a note's text, category, and reminder in place. The
// day reminder is recomputed from the notes list alone; a day-level text
// reminder is not preserved here. Unknown day or id is a silent no-op.
func (s *AgendaStore) UpdateNote(d date.Date, id uuid.UUID, text string, category NoteCategory, reminder *time.Time) {
	k := d.Key()
	e, ok := s.entries[k]
	if !ok || len(e.Notes) == 0 {
		return
	}
	idx := -1
	for i, n := range e.Notes {
		if n.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return
	}
	e.Notes[idx].Text = text
	e.Notes[idx].Category = category
	e.Notes[idx].Reminder = reminder
	e.Reminder = e.earliestNoteReminder()
	s.setEntry(k, e)
	s.notify(k)
}

// DeleteNote removes a note by id and recomputes the day reminder from the
// remaining notes, clearing it when none carry one. Unknown id is a silent
// no-op.
func (s *AgendaStore) DeleteNote(d date.Date, id uuid.UUID) {
	k := d.Key()
	e, ok := s.entries[k]
	if !ok || len(e.Notes) == 0 {
		return
	}
	kept := e.Notes[:0:0]
	for _, n := range e.Notes {
		if n.ID != id {
			kept = append(kept, n)
		}
	}
	if len(kept) == len(e.Notes) {
		return
	}
	e.Notes = kept
	e.Reminder = e.earliestNoteReminder()
	s.setEntry(k, e)
	s.notify(k)
}

// SetHourly assigns the text of one hour slot. Blank text removes the slot;
// the hourly map collapses to absent when its last slot goes away.
func (s *AgendaStore) SetHourly(d date.Date, hour int, text string) {
	k := d.Key()
	e := s.entries[k]
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		delete(e.Hourly, hour)
	} else {
		if e.Hourly == nil {
			e.Hourly = make(map[int]string)
		}
		e.Hourly[hour] = trimmed
	}
	s.setEntry(k, e)
}

// SetPeriodDelay marks or unmarks the day as a cycle delay. False is stored
// as absence, never as an explicit flag.
func (s *AgendaStore) SetPeriodDelay(d date.Date, delayed bool) {
	k := d.Key()
	e := s.entries[k]
	e.PeriodDelayed = delayed
	s.setEntry(k, e)
}

// SetWeekNote assigns the note of the ISO week containing d. Blank text
// removes the entry. Week notes live in their own document and carry no
// derived state.
func (s *AgendaStore) SetWeekNote(d date.Date, text string) {
	k := d.WeekKey()
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		delete(s.weekNotes, k)
	} else {
		s.weekNotes[k] = trimmed
	}
	s.persistWeekNotes()
}

// ReloadFromDisk re-reads the day-entry document and replaces in-memory
// state wholesale, suppressing saves while populating. On read failure the
// previous in-memory state is kept untouched.
func (s *AgendaStore) ReloadFromDisk() {
	fresh := make(map[string]DayEntry)
	if err := readDocument(s.path, &fresh); err != nil {
		if !isNotExist(err) {
			log.Printf("agenda: reload %s: %v", s.path, err)
		}
		return
	}
	s.loading = true
	s.entries = fresh
	s.loading = false
}

// setEntry normalizes and stores an entry, dropping it when empty, then
// persists the whole document.
func (s *AgendaStore) setEntry(k string, e DayEntry) {
	e.normalize()
	if e.isEmpty() {
		delete(s.entries, k)
	} else {
		s.entries[k] = e
	}
	s.persist()
}

// persist writes the day-entry document. Failures are logged and otherwise
// swallowed: the in-memory state stays consistent and the next successful
// save catches up.
func (s *AgendaStore) persist() {
	if s.loading {
		return
	}
	if err := writeDocument(s.path, s.entries); err != nil {
		log.Printf("agenda: save %s: %v", s.path, err)
	}
}

func (s *AgendaStore) persistWeekNotes() {
	if s.loading {
		return
	}
	if err := writeDocument(s.weekPath, s.weekNotes); err != nil {
		log.Printf("agenda: save %s: %v", s.weekPath, err)
	}
}

// notify forwards the day's earliest pending reminder to the scheduler,
// if one is installed and the reminder is still in the future.
func (s *AgendaStore) notify(k string) {
	if s.scheduler == nil {
		return
	}
	e, ok := s.entries[k]
	if !ok || e.Reminder == nil || !e.Reminder.After(time.Now()) {
		return
	}
	body := e.Text
	if body == "" && len(e.Notes) > 0 {
		body = e.Notes[0].Text
	}
	s.scheduler.ScheduleReminder(*e.Reminder, k, body)
}
