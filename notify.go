package deniverse

import "time"

// ReminderScheduler schedules a local alert for a future time. It is
// implemented by the host platform (notification center, cron, ...); the
// stores only invoke it after a mutation leaves a pending reminder.
type ReminderScheduler interface {
	ScheduleReminder(at time.Time, title, body string)
}

// ReminderFunc adapts a function to the ReminderScheduler interface.
type ReminderFunc func(at time.Time, title, body string)

func (f ReminderFunc) ScheduleReminder(at time.Time, title, body string) { f(at, title, body) }
