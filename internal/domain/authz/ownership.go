// Package authz holds the ownership rule that scopes every business resource
// to the user who owns it.
package authz

import "github.com/google/uuid"

// Decision is the outcome of an ownership check.
type Decision int

const (
	Deny Decision = iota
	Allow
)

func (d Decision) String() string {
	if d == Allow {
		return "allow"
	}

	return "deny"
}

// Authorize allows access only when the caller is the resource owner.
// A zero ID on either side is always denied.
func Authorize(callerID, ownerID uuid.UUID) Decision {
	if callerID == uuid.Nil || ownerID == uuid.Nil {
		return Deny
	}
	if callerID != ownerID {
		return Deny
	}

	return Allow
}
