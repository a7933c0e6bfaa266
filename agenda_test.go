package deniverse

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/deniverse/deniverse/date"
)

// newTestAgenda creates an empty agenda store backed by a temp directory.
func newTestAgenda(t *testing.T) (*AgendaStore, string) {
	t.Helper()
	dir := t.TempDir()
	return NewAgendaStore(dir), dir
}

func futureReminder() *time.Time {
	r := time.Now().Add(24 * time.Hour).Truncate(time.Minute)
	return &r
}

func TestUpdateDayText(t *testing.T) {
	s, _ := newTestAgenda(t)
	d := date.New(2026, time.March, 14)

	s.UpdateDayText(d, "dentist at noon", nil)
	e := s.Entry(d)
	if e == nil || e.Text != "dentist at noon" {
		t.Fatalf("Entry() = %+v, want text %q", e, "dentist at noon")
	}

	// Clearing the text drops the whole entry.
	s.UpdateDayText(d, "", nil)
	if s.Entry(d) != nil {
		t.Errorf("Entry() after clearing = %+v, want nil", s.Entry(d))
	}
}

func TestBlankDayNeverPersisted(t *testing.T) {
	s, dir := newTestAgenda(t)
	d := date.New(2026, time.March, 14)

	s.UpdateDayText(d, "   ", nil)
	if s.Entry(d) != nil {
		t.Errorf("whitespace-only text should normalize to an absent entry")
	}

	data, err := os.ReadFile(filepath.Join(dir, AgendaFile))
	if err != nil {
		t.Fatalf("reading agenda document: %v", err)
	}
	if strings.Contains(string(data), d.Key()) {
		t.Errorf("document still holds key %s:\n%s", d.Key(), data)
	}
}

func TestRoundTrip(t *testing.T) {
	s, dir := newTestAgenda(t)
	d := date.New(2026, time.March, 14)

	s.UpdateDayText(d, "busy day", []byte{1, 2, 3})
	s.AddNote(d, "buy milk", NotePersonal, nil)
	s.SetHourly(d, 9, "standup")
	s.SetPeriodDelay(d, true)

	reloaded := NewAgendaStore(dir)
	got := reloaded.Entry(d)
	if got == nil {
		t.Fatal("entry lost on reload")
	}
	if got.Text != "busy day" {
		t.Errorf("Text = %q, want %q", got.Text, "busy day")
	}
	if string(got.Drawing) != string([]byte{1, 2, 3}) {
		t.Errorf("Drawing = %v, want [1 2 3]", got.Drawing)
	}
	if len(got.Notes) != 1 || got.Notes[0].Text != "buy milk" || got.Notes[0].Category != NotePersonal {
		t.Errorf("Notes = %+v", got.Notes)
	}
	if got.Hourly[9] != "standup" {
		t.Errorf("Hourly[9] = %q, want %q", got.Hourly[9], "standup")
	}
	if !got.PeriodDelayed {
		t.Error("PeriodDelayed lost on reload")
	}
}

func TestAbsentFieldsStayAbsent(t *testing.T) {
	s, dir := newTestAgenda(t)
	d := date.New(2026, time.March, 14)
	s.UpdateDayText(d, "only text", nil)

	data, err := os.ReadFile(filepath.Join(dir, AgendaFile))
	if err != nil {
		t.Fatalf("reading agenda document: %v", err)
	}
	for _, key := range []string{"notes", "hourly", "periodDelayed", "reminder", "drawingData"} {
		if strings.Contains(string(data), key) {
			t.Errorf("document holds absent field %q:\n%s", key, data)
		}
	}
}

func TestDayReminderIsEarliestNoteReminder(t *testing.T) {
	s, _ := newTestAgenda(t)
	d := date.New(2026, time.March, 14)

	early := time.Now().Add(2 * time.Hour)
	late := time.Now().Add(8 * time.Hour)

	s.AddNote(d, "late", NoteWork, &late)
	if got := s.Entry(d).Reminder; got == nil || !got.Equal(late) {
		t.Fatalf("Reminder = %v, want %v", got, late)
	}

	s.AddNote(d, "early", NoteWork, &early)
	if got := s.Entry(d).Reminder; got == nil || !got.Equal(early) {
		t.Fatalf("Reminder after earlier note = %v, want %v", got, early)
	}

	// A later note never moves the reminder forward.
	s.AddNote(d, "later still", NoteWork, &late)
	if got := s.Entry(d).Reminder; got == nil || !got.Equal(early) {
		t.Fatalf("Reminder after later note = %v, want %v", got, early)
	}

	// Deleting the early note recomputes the minimum over what remains.
	var earlyID uuid.UUID
	for _, n := range s.Notes(d) {
		if n.Text == "early" {
			earlyID = n.ID
		}
	}
	s.DeleteNote(d, earlyID)
	if got := s.Entry(d).Reminder; got == nil || !got.Equal(late) {
		t.Fatalf("Reminder after deleting early note = %v, want %v", got, late)
	}

	// Deleting every reminder-carrying note clears the day reminder.
	for _, n := range s.Notes(d) {
		s.DeleteNote(d, n.ID)
	}
	if s.Entry(d) != nil {
		t.Errorf("entry should be gone once the last note is deleted, got %+v", s.Entry(d))
	}
}

func TestUpdateDayTextReminder(t *testing.T) {
	s, _ := newTestAgenda(t)
	d := date.New(2026, time.March, 14)

	r := futureReminder()
	s.UpdateDayTextReminder(d, "call the bank", nil, r)
	e := s.Entry(d)
	if e == nil || e.Reminder == nil || !e.Reminder.Equal(*r) {
		t.Fatalf("Entry() = %+v, want reminder %v", e, r)
	}

	// The plain text update leaves the day reminder untouched.
	s.UpdateDayText(d, "call the bank, urgently", nil)
	if e := s.Entry(d); e.Reminder == nil || !e.Reminder.Equal(*r) {
		t.Errorf("UpdateDayText cleared the reminder: %+v", e)
	}

	// Passing nil clears it.
	s.UpdateDayTextReminder(d, "done", nil, nil)
	if e := s.Entry(d); e.Reminder != nil {
		t.Errorf("nil reminder not cleared: %+v", e)
	}
}

func TestUpdateNote(t *testing.T) {
	s, _ := newTestAgenda(t)
	d := date.New(2026, time.March, 14)

	r := futureReminder()
	note := s.AddNote(d, "draft", NoteWork, r)

	s.UpdateNote(d, note.ID, "final", NotePersonal, nil)
	notes := s.Notes(d)
	if len(notes) != 1 {
		t.Fatalf("Notes() = %+v, want one note", notes)
	}
	if notes[0].Text != "final" || notes[0].Category != NotePersonal || notes[0].Reminder != nil {
		t.Errorf("note after update = %+v", notes[0])
	}
	if notes[0].ID != note.ID {
		t.Errorf("update must keep the note id, got %s want %s", notes[0].ID, note.ID)
	}
	if got := s.Entry(d).Reminder; got != nil {
		t.Errorf("day reminder should clear when no note carries one, got %v", got)
	}

	// Unknown id is a silent no-op.
	s.UpdateNote(d, uuid.New(), "ghost", NoteOther, nil)
	if got := s.Notes(d); len(got) != 1 || got[0].Text != "final" {
		t.Errorf("unknown id mutated the notes: %+v", got)
	}
}

func TestDeleteNoteUnknownIDWritesNothing(t *testing.T) {
	s, dir := newTestAgenda(t)
	d := date.New(2026, time.March, 14)
	s.AddNote(d, "keep me", NoteOther, nil)

	path := filepath.Join(dir, AgendaFile)
	before, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading agenda document: %v", err)
	}

	s.DeleteNote(d, uuid.New())
	s.DeleteNote(date.New(2020, time.January, 1), uuid.New())

	after, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading agenda document: %v", err)
	}
	if string(before) != string(after) {
		t.Errorf("no-op delete rewrote the document:\nbefore %s\nafter %s", before, after)
	}
}

func TestSetHourly(t *testing.T) {
	s, _ := newTestAgenda(t)
	d := date.New(2026, time.March, 14)

	s.SetHourly(d, 9, "  standup  ")
	if text, ok := s.HourlyText(d, 9); !ok || text != "standup" {
		t.Errorf("HourlyText(9) = %q, %v; want trimmed %q", text, ok, "standup")
	}

	s.SetHourly(d, 14, "review")
	s.SetHourly(d, 9, "")
	if _, ok := s.HourlyText(d, 9); ok {
		t.Error("blank text should remove the slot")
	}

	// Removing the last slot collapses the map and the entry with it.
	s.SetHourly(d, 14, "   ")
	if s.Entry(d) != nil {
		t.Errorf("entry should be gone once the last slot is removed, got %+v", s.Entry(d))
	}
}

func TestSetPeriodDelay(t *testing.T) {
	s, dir := newTestAgenda(t)
	d := date.New(2026, time.March, 14)

	s.SetPeriodDelay(d, true)
	if !s.IsPeriodDelayed(d) {
		t.Error("IsPeriodDelayed() = false after marking")
	}
	if !NewAgendaStore(dir).IsPeriodDelayed(d) {
		t.Error("delay mark lost on reload")
	}

	// Unmarking stores absence, not an explicit false.
	s.SetPeriodDelay(d, false)
	if s.IsPeriodDelayed(d) {
		t.Error("IsPeriodDelayed() = true after unmarking")
	}
	if s.Entry(d) != nil {
		t.Errorf("unmarked delay should drop the entry, got %+v", s.Entry(d))
	}
}

func TestWeekNotes(t *testing.T) {
	s, dir := newTestAgenda(t)
	monday := date.New(2026, time.March, 9)
	sunday := date.New(2026, time.March, 15)

	s.SetWeekNote(monday, "sprint 12")
	if note, ok := s.WeekNote(sunday); !ok || note != "sprint 12" {
		t.Errorf("WeekNote(sunday) = %q, %v; want the note set on monday", note, ok)
	}

	// Week notes live in their own document, not in the agenda file.
	if _, err := os.Stat(filepath.Join(dir, WeekNotesFile)); err != nil {
		t.Errorf("week notes document missing: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, AgendaFile)); err == nil {
		t.Error("setting a week note should not create the agenda document")
	}

	if note, ok := NewAgendaStore(dir).WeekNote(monday); !ok || note != "sprint 12" {
		t.Errorf("week note lost on reload: %q, %v", note, ok)
	}

	s.SetWeekNote(monday, "  ")
	if _, ok := s.WeekNote(monday); ok {
		t.Error("blank text should remove the week note")
	}
}

func TestReloadFromDisk(t *testing.T) {
	s, dir := newTestAgenda(t)
	d := date.New(2026, time.March, 14)
	s.UpdateDayText(d, "stale", nil)

	// Simulate an external edit.
	external := NewAgendaStore(dir)
	external.UpdateDayText(d, "fresh", nil)

	s.ReloadFromDisk()
	if e := s.Entry(d); e == nil || e.Text != "fresh" {
		t.Fatalf("Entry() after reload = %+v, want text %q", e, "fresh")
	}

	// A corrupt file keeps the previous in-memory state.
	if err := os.WriteFile(filepath.Join(dir, AgendaFile), []byte("{oops"), 0o644); err != nil {
		t.Fatal(err)
	}
	s.ReloadFromDisk()
	if e := s.Entry(d); e == nil || e.Text != "fresh" {
		t.Errorf("Entry() after failed reload = %+v, want previous state kept", e)
	}
}

func TestSchedulerReceivesEarliestReminder(t *testing.T) {
	s, _ := newTestAgenda(t)
	d := date.New(2026, time.March, 14)

	var gotAt time.Time
	var gotTitle string
	s.SetScheduler(ReminderFunc(func(at time.Time, title, body string) {
		gotAt, gotTitle = at, title
	}))

	r := futureReminder()
	s.AddNote(d, "call mom", NotePersonal, r)
	if !gotAt.Equal(*r) {
		t.Errorf("scheduled at %v, want %v", gotAt, *r)
	}
	if gotTitle != d.Key() {
		t.Errorf("scheduled title %q, want day key %q", gotTitle, d.Key())
	}

	// Past reminders are never scheduled.
	gotAt = time.Time{}
	past := time.Now().Add(-time.Hour)
	s.AddNote(d, "too late", NotePersonal, &past)
	if !gotAt.IsZero() {
		t.Errorf("past reminder scheduled at %v", gotAt)
	}
}

func TestEntryReturnsCopy(t *testing.T) {
	s, _ := newTestAgenda(t)
	d := date.New(2026, time.March, 14)
	s.AddNote(d, "original", NoteOther, nil)
	s.SetHourly(d, 9, "standup")

	e := s.Entry(d)
	e.Notes[0].Text = "mutated"
	e.Hourly[9] = "mutated"

	fresh := s.Entry(d)
	if fresh.Notes[0].Text != "original" || fresh.Hourly[9] != "standup" {
		t.Errorf("Entry() aliases store state: %+v", fresh)
	}
}
