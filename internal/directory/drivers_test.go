package directory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRosterIsStable(t *testing.T) {
	drivers := All()
	require.Len(t, drivers, 5)

	// All() hands out a copy, mutating it must not touch the roster.
	drivers[0].Name = "mutated"
	fresh := All()
	assert.NotEqual(t, "mutated", fresh[0].Name)
}

func TestGet(t *testing.T) {
	d, found := Get("2")
	require.True(t, found)
	assert.Equal(t, "Anitha Krishnan", d.Name)

	_, found = Get("99")
	assert.False(t, found)
}

func TestFilterByStatusTab(t *testing.T) {
	active := Filter(All(), StatusActive, "")
	assert.Len(t, active, 3)

	onRide := Filter(All(), StatusOnRide, "")
	require.Len(t, onRide, 1)
	assert.Equal(t, "2", onRide[0].ID)

	all := Filter(All(), "all", "")
	assert.Len(t, all, 5)
}

func TestFilterSearch(t *testing.T) {
	// Car model, case-insensitive.
	got := Filter(All(), "all", "maruti")
	assert.Len(t, got, 2)

	// Car number.
	got = Filter(All(), "all", "TN 27")
	require.Len(t, got, 1)
	assert.Equal(t, "Priya Chandrasekhar", got[0].Name)

	// Location.
	got = Filter(All(), "all", "coimbatore")
	require.Len(t, got, 1)
	assert.Equal(t, "Anitha Krishnan", got[0].Name)

	// Tab and search intersect.
	got = Filter(All(), StatusInactive, "maruti")
	assert.Empty(t, got)
}

func TestSetPhoto(t *testing.T) {
	require.True(t, SetPhoto("3", "https://example.com/new.jpg"))
	d, _ := Get("3")
	assert.Equal(t, "https://example.com/new.jpg", d.Photo)

	assert.False(t, SetPhoto("nope", "x"))
}
