package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "rollbook/pkg/domain-errors"
)

func TestParseRole(t *testing.T) {
	t.Run("case insensitive", func(t *testing.T) {
		for _, raw := range []string{"Teacher", "teacher", "TEACHER", " teacher "} {
			role, err := ParseRole(raw)
			require.NoError(t, err, raw)
			assert.Equal(t, RoleTeacher, role)
		}
		role, err := ParseRole("pupil")
		require.NoError(t, err)
		assert.Equal(t, RolePupil, role)
	})

	t.Run("unknown role is invalid input", func(t *testing.T) {
		_, err := ParseRole("Janitor")
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
	})
}

func TestRoleKnown(t *testing.T) {
	assert.True(t, RoleTeacher.Known())
	assert.True(t, RolePupil.Known())
	assert.False(t, Role("").Known())
	assert.False(t, Role("teacher").Known(), "stored roles are canonical case")
}
