package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTagListValueNilAndEmpty(t *testing.T) {
	var absent TagList
	v, err := absent.Value()
	require.NoError(t, err)
	assert.Nil(t, v, "nil tag list should store as NULL")

	empty := TagList{}
	v, err = empty.Value()
	require.NoError(t, err)
	assert.Nil(t, v, "empty tag list should store as NULL, not []")
}

func TestTagListRoundTrip(t *testing.T) {
	tags := TagList{"rapide", "végé"}

	v, err := tags.Value()
	require.NoError(t, err)

	var scanned TagList
	require.NoError(t, scanned.Scan(v))
	assert.Equal(t, tags, scanned)
}

func TestTagListScanNull(t *testing.T) {
	scanned := TagList{"stale"}
	require.NoError(t, scanned.Scan(nil))
	assert.Nil(t, scanned)
}

func TestTagListScanString(t *testing.T) {
	var scanned TagList
	require.NoError(t, scanned.Scan(`["a","b"]`))
	assert.Equal(t, TagList{"a", "b"}, scanned)
}

func TestIsKnownCategorie(t *testing.T) {
	for _, c := range KnownCategories {
		assert.True(t, IsKnownCategorie(c), c)
	}
	assert.False(t, IsKnownCategorie("Boissons"))
	assert.False(t, IsKnownCategorie("plat"), "categorie check is case-sensitive")
}
