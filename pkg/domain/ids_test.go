package domain

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "rollbook/pkg/domain-errors"
)

func TestParseIDs_Invariants(t *testing.T) {
	t.Run("rejects empty string", func(t *testing.T) {
		_, err := ParsePersonID("")
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
	})

	t.Run("rejects invalid format", func(t *testing.T) {
		_, err := ParseSchoolID("not-a-uuid")
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
	})

	t.Run("rejects nil UUID", func(t *testing.T) {
		_, err := ParseClassID(uuid.Nil.String())
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
	})

	t.Run("accepts valid UUID", func(t *testing.T) {
		u := uuid.New()
		parsed, err := ParsePersonID(u.String())
		require.NoError(t, err)
		assert.Equal(t, PersonID(u), parsed)
	})
}

// The distinct wrapper types prevent cross-entity assignment at compile time;
// the commented lines would not compile:
//
//	var _ SchoolID = NewClassID()
//	var _ PersonID = NewSchoolID()
func TestIDs_Distinct(t *testing.T) {
	assert.NotEqual(t, uuid.UUID(NewSchoolID()), uuid.UUID(NewClassID()))
}

func TestIDs_ZeroAndString(t *testing.T) {
	var zero SchoolID
	assert.True(t, zero.IsZero())
	assert.False(t, NewSchoolID().IsZero())

	u := uuid.New()
	assert.Equal(t, u.String(), PersonID(u).String())
}

func TestIDs_JSONRoundTrip(t *testing.T) {
	original := NewPersonID()
	body, err := json.Marshal(original)
	require.NoError(t, err)
	assert.Equal(t, `"`+original.String()+`"`, string(body))

	var decoded PersonID
	require.NoError(t, json.Unmarshal(body, &decoded))
	assert.Equal(t, original, decoded)
}

func TestIDs_SQLRoundTrip(t *testing.T) {
	original := NewClassID()
	v, err := original.Value()
	require.NoError(t, err)

	var scanned ClassID
	require.NoError(t, scanned.Scan(v))
	assert.Equal(t, original, scanned)

	require.NoError(t, scanned.Scan([]byte(original.String())))
	assert.Equal(t, original, scanned)

	assert.Error(t, scanned.Scan(42))
}
