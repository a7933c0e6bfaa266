// Package deniverse provides the data core of a local-first personal
// organizer: a calendar agenda, a menstrual-cycle tracker, and a small
// finance ledger, all persisted as JSON documents on the local device.
//
// The core functionalities include:
//   - Agenda: a sparse, date-keyed map of per-day entries holding free
//     text, drawing blobs, categorized notes with reminders, hourly slots,
//     and week-level notes, with a derived earliest-reminder per day.
//   - Cycle tracking: pure calculations predicting period and fertile days
//     from the last period start and the configured cycle lengths.
//   - Finance: a most-recent-first transaction ledger with a wallet
//     balance that tracks mutations yet stays independently settable for
//     manual reconciliation, plus periodic income/expense summaries.
//   - Data persistence: every mutation rewrites the whole document
//     deterministically and atomically, with empty values normalized to
//     absence, so the files stay human-readable and diff-friendly.
//
// This package serves as the foundational logic for the `deni`
// command-line tool; there is no network surface and no multi-user
// concern.
package deniverse
