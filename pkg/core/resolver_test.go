package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aretw0/memmark/pkg/core"
)

func TestResolver_Resolve(t *testing.T) {
	var r core.Resolver

	water := item("water_clean")
	bottle := &fakeItem{id: "bottle_plastic", contents: []core.Item{water}}
	crate := &fakeItem{id: "crate", contents: []core.Item{bottle}}
	mixed := &fakeItem{id: "bag", contents: []core.Item{water, item("apple")}}
	empty := &fakeItem{id: "bag"}
	wolfCorpse := &fakeItem{id: "corpse", corpse: true, corpseOf: "mon_wolf", contents: []core.Item{water}}
	otherWolf := &fakeItem{id: "corpse_large", corpse: true, corpseOf: "mon_wolf"}

	tests := []struct {
		name string
		in   core.Item
		want core.Key
	}{
		{"Plain Item", water, "water_clean"},
		{"Single Stack Container", bottle, "water_clean"},
		{"Nested Single Stack", crate, "water_clean"},
		{"Mixed Container", mixed, "bag"},
		{"Empty Container", empty, "bag"},
		{"Corpse Ignores Contents", wolfCorpse, "mon_wolf"},
		{"Corpses Share Creature", otherWolf, "mon_wolf"},
		{"Corpse Without Creature", &fakeItem{id: "corpse", corpse: true, contents: []core.Item{water}}, "corpse"},
		{"Nil Item", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.Resolve(tt.in))
		})
	}
}

func TestResolver_LabelFallback(t *testing.T) {
	var r core.Resolver

	assert.Equal(t, core.Key("battery"), r.Resolve(&fakeItem{label: "battery (50)"}))
	assert.Equal(t, core.Key("battery"), r.Resolve(&fakeItem{label: "battery (12)"}))
	assert.Equal(t, core.Key(""), r.Resolve(&fakeItem{label: "none"}))
	assert.Equal(t, core.Key("rag"), r.Resolve(&fakeItem{id: "rag", label: "none"}))
}

func TestResolver_CyclicContainer(t *testing.T) {
	var r core.Resolver

	a := &fakeItem{id: "box_a"}
	b := &fakeItem{id: "box_b", contents: []core.Item{a}}
	a.contents = []core.Item{b}

	// Bounded recursion ends on one of the boxes instead of hanging.
	got := r.Resolve(a)
	assert.Contains(t, []core.Key{"box_a", "box_b"}, got)
}

func TestResolver_TransformKey(t *testing.T) {
	var r core.Resolver

	k, ok := r.TransformKey(&fakeItem{id: "knife_folded", transform: "knife_unfolded"})
	assert.True(t, ok)
	assert.Equal(t, core.Key("knife_unfolded"), k)

	_, ok = r.TransformKey(item("rock"))
	assert.False(t, ok)
}

func TestCleanLabel(t *testing.T) {
	assert.Equal(t, "flashlight", core.CleanLabel("flashlight (on) (20)"))
	assert.Equal(t, "flashlight", core.CleanLabel("  flashlight  "))
	assert.Equal(t, "", core.CleanLabel("none"))
	assert.Equal(t, "none of that", core.CleanLabel("none of that"))
}
