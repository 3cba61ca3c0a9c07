// Package policy decides whether a caller may act on a resource.
// Decisions are pure functions of the caller identity, the caller's
// admin flag, and the resource owner's identity. Ownership is exact
// string equality over opaque uuid identities.
package policy

import "snapblog/internal/apperr"

type Action int

const (
	ActionUpdatePost Action = iota
	ActionDeletePost
	ActionReplacePostImage
	ActionUpdateComment
	ActionDeleteComment
	ActionUpdateUser
	ActionDeleteUser
	ActionListUsers
	ActionCountUsers
)

// ErrForbidden is the single deny outcome. Handlers translate it to a
// 403 with a generic message; a deny is never a silent no-op.
var ErrForbidden = apperr.New(apperr.KindForbidden, "access denied, forbidden")

// Decide returns nil when the caller may perform action on a resource
// owned by ownerID, and ErrForbidden otherwise. For user-targeted
// actions ownerID is the target user's own id. For admin-only reads
// ownerID is ignored.
func Decide(action Action, callerID string, callerIsAdmin bool, ownerID string) error {
	switch action {
	case ActionDeletePost, ActionDeleteUser:
		// Owner or admin.
		if callerIsAdmin || (callerID != "" && callerID == ownerID) {
			return nil
		}
	case ActionUpdatePost, ActionReplacePostImage, ActionUpdateComment, ActionDeleteComment, ActionUpdateUser:
		// Owner only. An admin flag does not override ownership here.
		if callerID != "" && callerID == ownerID {
			return nil
		}
	case ActionListUsers, ActionCountUsers:
		if callerIsAdmin {
			return nil
		}
	}
	return ErrForbidden
}
