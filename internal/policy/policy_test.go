package policy

import (
	"testing"

	"snapblog/internal/apperr"

	"github.com/stretchr/testify/assert"
)

func TestDecide_DeletePost(t *testing.T) {
	// Owner may delete regardless of admin flag
	assert.NoError(t, Decide(ActionDeletePost, "u1", false, "u1"))
	assert.NoError(t, Decide(ActionDeletePost, "u1", true, "u1"))

	// Admin may delete someone else's post
	assert.NoError(t, Decide(ActionDeletePost, "u2", true, "u1"))

	// Non-owner non-admin is denied
	err := Decide(ActionDeletePost, "u2", false, "u1")
	assert.Error(t, err)
	assert.Equal(t, apperr.KindForbidden, apperr.KindOf(err))
}

func TestDecide_UpdatePost_OwnerOnly(t *testing.T) {
	// Owner allowed regardless of admin flag
	assert.NoError(t, Decide(ActionUpdatePost, "u1", false, "u1"))
	assert.NoError(t, Decide(ActionUpdatePost, "u1", true, "u1"))

	// Admin does NOT override ownership for updates
	assert.Error(t, Decide(ActionUpdatePost, "admin", true, "u1"))
	assert.Error(t, Decide(ActionUpdatePost, "u2", false, "u1"))
}

func TestDecide_ReplacePostImage_OwnerOnly(t *testing.T) {
	assert.NoError(t, Decide(ActionReplacePostImage, "u1", false, "u1"))
	assert.Error(t, Decide(ActionReplacePostImage, "admin", true, "u1"))
}

func TestDecide_Comments_OwnerOnly(t *testing.T) {
	assert.NoError(t, Decide(ActionUpdateComment, "u1", false, "u1"))
	assert.NoError(t, Decide(ActionDeleteComment, "u1", false, "u1"))

	// Admin does not override for comments either
	assert.Error(t, Decide(ActionUpdateComment, "admin", true, "u1"))
	assert.Error(t, Decide(ActionDeleteComment, "admin", true, "u1"))
}

func TestDecide_UpdateUser_SelfOnly(t *testing.T) {
	assert.NoError(t, Decide(ActionUpdateUser, "u1", false, "u1"))
	assert.Error(t, Decide(ActionUpdateUser, "admin", true, "u1"))
	assert.Error(t, Decide(ActionUpdateUser, "u2", false, "u1"))
}

func TestDecide_DeleteUser_SelfOrAdmin(t *testing.T) {
	assert.NoError(t, Decide(ActionDeleteUser, "u1", false, "u1"))
	assert.NoError(t, Decide(ActionDeleteUser, "admin", true, "u1"))
	assert.Error(t, Decide(ActionDeleteUser, "u2", false, "u1"))
}

func TestDecide_AdminReads(t *testing.T) {
	assert.NoError(t, Decide(ActionListUsers, "admin", true, ""))
	assert.NoError(t, Decide(ActionCountUsers, "admin", true, ""))
	assert.Error(t, Decide(ActionListUsers, "u1", false, ""))
	assert.Error(t, Decide(ActionCountUsers, "u1", false, ""))
}

func TestDecide_EmptyCallerNeverOwner(t *testing.T) {
	// An anonymous caller must not match a resource with an empty
	// owner reference.
	assert.Error(t, Decide(ActionUpdatePost, "", false, ""))
	assert.Error(t, Decide(ActionDeletePost, "", false, ""))
}
