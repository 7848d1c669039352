// Package notify keeps the device's pending local notifications
// consistent with current business state.
//
// Reconciliation is cancel-then-reschedule, never an incremental patch:
// for a category, the scheduler cancels everything currently pending and
// schedules the full desired set recomputed from scratch. Running a
// reconciliation twice in a row therefore produces the same pending set.
//
// Notification ids are derived deterministically from (category, logical
// key) so re-scheduling the same logical notification reuses the same id
// and the platform's "same id replaces" semantics make the operation
// idempotent. Categories own disjoint id ranges, so ids never collide
// across categories. Within the Schedule category the id is a bounded
// hash of the entry id; distinct entries can collide, in which case one
// notification silently replaces the other. That loss is accepted:
// correctness rests on the per-category reconciliation recomputing the
// full desired set, not on id uniqueness.
package notify
