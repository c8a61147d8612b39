package pinlock

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerify(t *testing.T) {
	hash, err := Hash("1234")
	require.NoError(t, err)
	require.NotEmpty(t, hash)

	assert.True(t, Verify(hash, "1234"))
	assert.False(t, Verify(hash, "4321"))
	assert.False(t, Verify(nil, "1234"))
}
