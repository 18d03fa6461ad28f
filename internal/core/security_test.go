// AngelaMos | 2026
// security_test.go

package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("correct-horse-battery")
	require.NoError(t, err)
	assert.NotEqual(t, "correct-horse-battery", hash)

	valid, err := VerifyPassword("correct-horse-battery", hash)
	require.NoError(t, err)
	assert.True(t, valid)

	valid, err = VerifyPassword("wrong-password", hash)
	require.NoError(t, err)
	assert.False(t, valid)
}

func TestHashPasswordProducesUniqueSalts(t *testing.T) {
	first, err := HashPassword("same-password")
	require.NoError(t, err)
	second, err := HashPassword("same-password")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestVerifyPasswordTimingSafe(t *testing.T) {
	hash, err := HashPassword("correct-horse-battery")
	require.NoError(t, err)
	empty := ""

	tests := []struct {
		name     string
		password string
		hash     *string
		want     bool
	}{
		{"matching password", "correct-horse-battery", &hash, true},
		{"wrong password", "wrong-password", &hash, false},
		{"nil hash never verifies", "correct-horse-battery", nil, false},
		{"empty hash never verifies", "correct-horse-battery", &empty, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			valid, err := VerifyPasswordTimingSafe(tt.password, tt.hash)
			require.NoError(t, err)
			assert.Equal(t, tt.want, valid)
		})
	}
}
