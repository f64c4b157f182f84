// Package authz holds the single ownership rule shared by every mutating operation.
package authz

import "errors"

// ErrForbidden: caller đã xác thực nhưng không sở hữu resource
var ErrForbidden = errors.New("not authorized")

// CheckOwnership allows the call only when the caller is the owner.
// Both sides are canonical identifier strings; an empty caller never matches.
func CheckOwnership(callerID, ownerID string) error {
	if callerID == "" || callerID != ownerID {
		return ErrForbidden
	}
	return nil
}

// IsOwner is the boolean form used when non-owned items are filtered out
// instead of rejected.
func IsOwner(callerID, ownerID string) bool {
	return CheckOwnership(callerID, ownerID) == nil
}
