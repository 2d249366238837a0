package core

import "strings"

const (
	// noneLabel is the historical sentinel for "no custom label".
	noneLabel = "none"
	// maxContainerDepth bounds recursion through nested single-stack containers.
	maxContainerDepth = 8
)

// Resolver computes Identity Keys for item instances.
type Resolver struct{}

// Resolve returns the canonical key of it. It never fails: a nil item
// resolves to the empty key.
//
// Rules, in order: a corpse resolves to its creature type; a container
// holding exactly one stack resolves to that stack; anything else resolves
// to its own type identifier, or to its cleaned label when it has none.
func (Resolver) Resolve(it Item) Key {
	return resolve(it, 0)
}

func resolve(it Item, depth int) Key {
	if it == nil {
		return ""
	}

	if c, ok := it.(Corpse); ok && c.IsCorpse() {
		if id := c.CorpseOf(); id != "" {
			return Key(id)
		}
		// Contents of a corpse are never inspected.
		return ownKey(it)
	}

	if c, ok := it.(Container); ok && depth < maxContainerDepth && c.StackCount() == 1 {
		if inner := c.SoleContent(); inner != nil {
			return resolve(inner, depth+1)
		}
	}

	return ownKey(it)
}

func ownKey(it Item) Key {
	if id := it.TypeID(); id != "" {
		return Key(id)
	}
	return Key(CleanLabel(it.Label()))
}

// TransformKey returns the key of the item type it transforms into.
// The link is read from the item every time and never cached.
func (Resolver) TransformKey(it Item) (Key, bool) {
	t, ok := it.(Transformer)
	if !ok {
		return "", false
	}
	target, ok := t.TransformTarget()
	if !ok || target == "" {
		return "", false
	}
	return Key(target), true
}

// CleanLabel strips parenthetical annotations so "battery (50)" and
// "battery (12)" share one key. The "none" sentinel cleans to "".
func CleanLabel(label string) string {
	if i := strings.Index(label, " ("); i >= 0 {
		label = label[:i]
	}
	label = strings.TrimSpace(label)
	if label == noneLabel {
		return ""
	}
	return label
}
