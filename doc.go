// Package memmark is the composition root for item memory marks.
//
// A mark is a single digit 1-9 a player attaches to a kind of item so later
// inventory views can show it. Marks are keyed by a resolved identity rather
// than the raw item: a container holding one kind of item shares the mark
// of its content, and every corpse of a creature shares the creature's mark.
// When an item can transform into another type, mark changes are copied onto
// the target type as well.
//
// Marks live in a JSON side-file next to the player's save
// (<world>/<player>.idr.json) and are written atomically.
//
// Usage:
//
//	store, err := memmark.Open(ctx, memmark.SaveSlot{WorldDir: dir, Player: name},
//		memmark.WithLogger(logger),
//	)
//
//	store.Increment(item)
//	ok, err := store.Save(ctx)
package memmark
