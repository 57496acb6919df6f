package secrets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "rollbook/pkg/domain-errors"
)

func TestHashAndVerify(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		hash, err := Hash("correct horse battery staple")
		require.NoError(t, err)
		assert.NotEqual(t, "correct horse battery staple", hash)
		assert.NoError(t, Verify("correct horse battery staple", hash))
	})

	t.Run("wrong secret is unauthorized", func(t *testing.T) {
		hash, err := Hash("the real secret")
		require.NoError(t, err)
		err = Verify("a guess", hash)
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeUnauthorized))
	})

	t.Run("empty secret rejected at hash time", func(t *testing.T) {
		_, err := Hash("")
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
	})

	t.Run("overlong secret rejected", func(t *testing.T) {
		long := make([]byte, 100)
		for i := range long {
			long[i] = 'a'
		}
		_, err := Hash(string(long))
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
	})
}

func TestGenerate(t *testing.T) {
	first, err := Generate()
	require.NoError(t, err)
	second, err := Generate()
	require.NoError(t, err)

	assert.NotEmpty(t, first)
	assert.NotEqual(t, first, second)

	// Generated secrets must survive a hash/verify round trip.
	hash, err := Hash(first)
	require.NoError(t, err)
	assert.NoError(t, Verify(first, hash))
}
