package regions

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsUS(t *testing.T) {
	r := Default()
	assert.Equal(t, "US", r.Code)
	assert.Equal(t, "United States", r.DisplayName)
	assert.Equal(t, "\U0001F1FA\U0001F1F8", r.FlagGlyph)
}

func TestLookup(t *testing.T) {
	r, ok := Lookup(" fr ")
	require.True(t, ok)
	assert.Equal(t, "France", r.DisplayName)

	_, ok = Lookup("XX")
	assert.False(t, ok)
}

func TestSearch(t *testing.T) {
	t.Run("by name substring", func(t *testing.T) {
		got := Search("united")
		codes := make([]string, 0, len(got))
		for _, r := range got {
			codes = append(codes, r.Code)
		}
		assert.Equal(t, []string{"US", "GB", "AE"}, codes)
	})

	t.Run("by code", func(t *testing.T) {
		got := Search("mx")
		require.NotEmpty(t, got)
		assert.Equal(t, "MX", got[0].Code)
	})

	t.Run("blank returns popular", func(t *testing.T) {
		assert.Equal(t, Popular(), Search("  "))
	})

	t.Run("no match", func(t *testing.T) {
		assert.Empty(t, Search("atlantis"))
	})
}

func TestAllReturnsCopy(t *testing.T) {
	a := All()
	a[0].DisplayName = "changed"
	assert.Equal(t, "United States", All()[0].DisplayName)
}

func TestCodesAreUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, r := range All() {
		assert.False(t, seen[r.Code], "duplicate region %s", r.Code)
		seen[r.Code] = true
		assert.NotEmpty(t, r.FlagGlyph)
	}
}
