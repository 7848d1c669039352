package notify

import "context"

// Queue is the device notification queue. The real implementation is
// LocalQueue; tests substitute an in-memory fake.
type Queue interface {
	// Pending lists every notification currently scheduled.
	Pending(ctx context.Context) ([]Record, error)

	// Schedule adds the records to the queue. A record whose id is
	// already pending replaces the existing one.
	Schedule(ctx context.Context, records []Record) error

	// Cancel removes the notifications with the given ids. Unknown ids
	// are ignored.
	Cancel(ctx context.Context, ids []int) error
}

// PermissionChecker is implemented by queues that gate scheduling behind
// a user-granted permission.
type PermissionChecker interface {
	// PermissionGranted asks (once) whether notifications may be shown.
	PermissionGranted(ctx context.Context) bool
}
