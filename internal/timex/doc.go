// Package timex implements the time-of-day business rules of reComenzar:
// daily deadlines ("can I still submit today's report?"), remaining-time
// warnings, and calendar helpers (same day, same week, Monday of the week,
// tomorrow).
//
// All functions are pure: the current instant is always passed in by the
// caller, which keeps deadline logic trivially testable.
package timex
