package catalog_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/memmark/pkg/catalog"
	"github.com/aretw0/memmark/pkg/core"
)

func loadTestCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := catalog.Load("testdata/catalog.yaml")
	require.NoError(t, err)
	return c
}

func TestCatalog_Resolve(t *testing.T) {
	c := loadTestCatalog(t)
	var r core.Resolver

	tests := []struct {
		name string
		want core.Key
	}{
		{"water", "water_clean"},
		{"bottle_of_water", "water_clean"},
		{"mixed_bag", "bottle_plastic"},
		{"wolf_corpse", "mon_wolf"},
		{"pocket_knife", "knife_folded"},
		{"knife_unfolded", "knife_unfolded"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			it, err := c.Lookup(tt.name, false)
			require.NoError(t, err)
			assert.Equal(t, tt.want, r.Resolve(it))
		})
	}
}

func TestCatalog_Transform(t *testing.T) {
	c := loadTestCatalog(t)
	store := core.NewStore(nil, nil)

	knife, err := c.Lookup("pocket_knife", false)
	require.NoError(t, err)
	open, err := c.Lookup("knife_unfolded", false)
	require.NoError(t, err)

	store.Increment(knife)
	store.Increment(knife)
	assert.Equal(t, core.Mark('2'), store.Get(open))

	store.Remove(open)
	assert.Equal(t, core.Blank, store.Get(knife), "links run both ways when both types declare them")
}

func TestCatalog_Lookup(t *testing.T) {
	c := loadTestCatalog(t)

	_, err := c.Lookup("unobtainium", false)
	assert.ErrorIs(t, err, catalog.ErrUnknownItem)

	it, err := c.Lookup("unobtainium", true)
	require.NoError(t, err)
	assert.Equal(t, "unobtainium", it.TypeID())
	assert.Equal(t, "unobtainium", it.Label())

	assert.Equal(t, []string{"bottle_of_water", "mixed_bag", "pocket_knife", "water", "wolf_corpse"}, c.Names())
}

func TestCatalog_Stacks(t *testing.T) {
	c := loadTestCatalog(t)

	bottle, err := c.Lookup("bottle_of_water", false)
	require.NoError(t, err)
	assert.Equal(t, 1, bottle.StackCount())

	bag, err := c.Lookup("mixed_bag", false)
	require.NoError(t, err)
	assert.Equal(t, 2, bag.StackCount())
	assert.Nil(t, bag.SoleContent())
}

func TestParse_Errors(t *testing.T) {
	_, err := catalog.Parse(strings.NewReader("items:\n  a:\n    label: x\n"))
	assert.ErrorContains(t, err, "type is required")

	_, err = catalog.Parse(strings.NewReader("items:\n  a:\n    type: box\n    contents: [ghost]\n"))
	assert.ErrorIs(t, err, catalog.ErrUnknownItem)

	_, err = catalog.Parse(strings.NewReader("items: [oops"))
	assert.Error(t, err)

	c, err := catalog.Parse(strings.NewReader("items:\n  a:\n    type: box\n    contents: [a]\n"))
	require.NoError(t, err)
	_, err = c.Lookup("a", false)
	assert.ErrorContains(t, err, "contains itself")
}

func TestLoad_Empty(t *testing.T) {
	c, err := catalog.Load("")
	require.NoError(t, err)
	assert.Empty(t, c.Names())
}
