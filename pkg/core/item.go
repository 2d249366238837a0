package core

// Item is the part of the host item model every item exposes.
// Optional capabilities (Corpse, Container, Transformer) are discovered with
// type assertions so hosts only implement what their items support.
type Item interface {
	// TypeID is the item kind identifier, e.g. "water_clean".
	TypeID() string
	// Label is the display label, possibly carrying annotations like " (3)".
	Label() string
}

// Corpse is implemented by items that can be the remains of a creature.
type Corpse interface {
	IsCorpse() bool
	// CorpseOf is the source creature type identifier.
	CorpseOf() string
}

// Container is implemented by items that can hold other items.
type Container interface {
	// StackCount is the number of distinct stacks held.
	StackCount() int
	// SoleContent returns the only stack when StackCount is 1.
	SoleContent() Item
}

// Transformer is implemented by items that may turn into another item type.
type Transformer interface {
	// TransformTarget returns the target type identifier, if any.
	TransformTarget() (string, bool)
}
