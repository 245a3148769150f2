// Package access is the design access controller: pure predicates deciding,
// for each operation on a design, whether the requesting actor may perform
// it. Handlers consult it before calling any service; services never
// authorize on their own.
package access

import "github.com/teedesigner/design-api/internal/core/domain"

// Verdict classifies the outcome of an access check.
type Verdict int

const (
	Allow Verdict = iota
	Unauthenticated
	Forbidden
	NotFound
)

// Operation names the action being checked, used for metrics and deny reasons.
type Operation string

const (
	OpCreate Operation = "create"
	OpRead   Operation = "read"
	OpUpdate Operation = "update"
	OpDelete Operation = "delete"
)

// Decision is the tagged result of an access check.
type Decision struct {
	Verdict   Verdict
	Operation Operation
	Reason    string
}

// Err maps the decision onto the domain sentinel consumed by the HTTP error
// handler. Allow yields nil.
func (d Decision) Err() error {
	switch d.Verdict {
	case Allow:
		return nil
	case Unauthenticated:
		return domain.ErrUnauthenticated
	case NotFound:
		return domain.ErrDesignNotFound
	default:
		return domain.ErrForbidden
	}
}

func allow(op Operation) Decision {
	return Decision{Verdict: Allow, Operation: op}
}

func deny(op Operation, v Verdict, reason string) Decision {
	return Decision{Verdict: v, Operation: op, Reason: reason}
}

// CanCreate requires an authenticated actor; the new design's owner is the
// actor, and visibility defaults to private unless explicitly set.
func CanCreate(actor domain.Actor) Decision {
	if !actor.Authenticated() {
		return deny(OpCreate, Unauthenticated, "anonymous")
	}
	return allow(OpCreate)
}

// CanRead allows public designs for any caller and private designs for their
// owner only. Admins get no read override. A nil design is NotFound before
// any visibility check.
func CanRead(actor domain.Actor, d *domain.Design) Decision {
	if d == nil {
		return deny(OpRead, NotFound, "missing")
	}
	if d.IsPublic || d.IsOwnedBy(actor) {
		return allow(OpRead)
	}
	return deny(OpRead, Forbidden, "private")
}

// CanUpdate allows the owner only. Admins are deliberately excluded: the
// admin override applies to delete, not update.
func CanUpdate(actor domain.Actor, d *domain.Design) Decision {
	if d == nil {
		return deny(OpUpdate, NotFound, "missing")
	}
	if !actor.Authenticated() {
		return deny(OpUpdate, Unauthenticated, "anonymous")
	}
	if !d.IsOwnedBy(actor) {
		return deny(OpUpdate, Forbidden, "not_owner")
	}
	return allow(OpUpdate)
}

// CanDelete allows the owner or any admin.
func CanDelete(actor domain.Actor, d *domain.Design) Decision {
	if d == nil {
		return deny(OpDelete, NotFound, "missing")
	}
	if !actor.Authenticated() {
		return deny(OpDelete, Unauthenticated, "anonymous")
	}
	if !d.IsOwnedBy(actor) && !actor.IsAdmin() {
		return deny(OpDelete, Forbidden, "not_owner")
	}
	return allow(OpDelete)
}
