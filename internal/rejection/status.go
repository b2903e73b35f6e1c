package rejection

import "context"

// CanToggle reports whether the pending/resolved toggle applies.
// APPROVED is a locked display state: nothing here forbids the backend
// from changing it, the client just offers no path.
func CanToggle(s Status) bool {
	return s == StatusPending || s == StatusResolved
}

// Toggled flips PENDING and RESOLVED into each other. Any other status
// is returned unchanged.
func Toggled(s Status) Status {
	switch s {
	case StatusPending:
		return StatusResolved
	case StatusResolved:
		return StatusPending
	default:
		return s
	}
}

// Toggle patches a rejection's status between pending and resolved.
func Toggle(ctx context.Context, svc Service, req *Request) (*Request, error) {
	return svc.UpdateRejectionRequestStatus(ctx, req.ID, Toggled(req.Status))
}

// Approve patches a rejection straight to APPROVED.
func Approve(ctx context.Context, svc Service, id int64) (*Request, error) {
	return svc.UpdateRejectionRequestStatus(ctx, id, StatusApproved)
}
