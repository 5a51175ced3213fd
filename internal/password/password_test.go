package password

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateTempMeetsPolicy(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		pw, err := GenerateTemp()
		require.NoError(t, err)
		assert.Len(t, pw, TempLength)
		assert.True(t, MeetsPolicy(pw), pw)
		assert.True(t, strings.ContainsAny(pw, symbols), pw)
		assert.False(t, seen[pw], "duplicate generated password")
		seen[pw] = true
	}
}

func TestMeetsPolicy(t *testing.T) {
	tests := []struct {
		pw   string
		want bool
	}{
		{"Aa1aaaaa", true},
		{"Aa1aaaa", false},  // too short
		{"aaaaaaa1", false}, // no upper
		{"AAAAAAA1", false}, // no lower
		{"Aaaaaaaa", false}, // no digit
		{"", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, MeetsPolicy(tt.pw), tt.pw)
	}
}

func TestHashAndCompare(t *testing.T) {
	hash, err := Hash("Secret123!")
	require.NoError(t, err)

	assert.True(t, Compare(hash, "Secret123!"))
	assert.False(t, Compare(hash, "Secret123?"))
	assert.False(t, Compare("not-a-hash", "Secret123!"))
}
