package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReviewerCreateValidate(t *testing.T) {
	valid := ReviewerCreate{Username: "alice", Email: "alice@example.com"}
	assert.NoError(t, valid.Validate())

	t.Run("missing username", func(t *testing.T) {
		in := ReviewerCreate{Email: "alice@example.com"}
		var vErr *ValidationError
		require.ErrorAs(t, in.Validate(), &vErr)
		assert.Contains(t, vErr.Fields, "username")
	})

	t.Run("malformed email", func(t *testing.T) {
		in := ReviewerCreate{Username: "alice", Email: "not-an-email"}
		var vErr *ValidationError
		require.ErrorAs(t, in.Validate(), &vErr)
		assert.Contains(t, vErr.Fields, "email")
	})
}

func TestReviewerUpdateChanges(t *testing.T) {
	name := "Alice A."
	patch := ReviewerUpdate{FullName: &name}

	changes := patch.Changes()
	assert.Equal(t, map[string]interface{}{"full_name": "Alice A."}, changes)
	assert.NoError(t, patch.Validate())
}
