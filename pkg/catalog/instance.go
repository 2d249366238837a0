package catalog

import "github.com/aretw0/memmark/pkg/core"

// Instance is one item built from a catalog.
type Instance struct {
	typeID    string
	label     string
	corpseOf  string
	transform string
	contents  []*Instance
}

func (i *Instance) TypeID() string { return i.typeID }
func (i *Instance) Label() string  { return i.label }

// IsCorpse reports whether the instance is a creature's remains.
func (i *Instance) IsCorpse() bool { return i.corpseOf != "" }

func (i *Instance) CorpseOf() string { return i.corpseOf }

// StackCount counts distinct content kinds; repeated entries of one kind
// form a single stack.
func (i *Instance) StackCount() int {
	return len(i.stacks())
}

func (i *Instance) SoleContent() core.Item {
	stacks := i.stacks()
	if len(stacks) != 1 {
		return nil
	}
	return stacks[0]
}

func (i *Instance) stacks() []*Instance {
	seen := make(map[string]bool, len(i.contents))
	var out []*Instance
	for _, c := range i.contents {
		if seen[c.typeID] {
			continue
		}
		seen[c.typeID] = true
		out = append(out, c)
	}
	return out
}

func (i *Instance) TransformTarget() (string, bool) {
	return i.transform, i.transform != ""
}
