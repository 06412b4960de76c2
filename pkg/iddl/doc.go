// Package iddl defines the data model of the intent-driven design language:
// the semantic axes a node is described by (role, prominence, intent,
// density), the structural [Context] an ambient supplier hands down from the
// composition tree, and the [TokenOutput] the engine resolves them into.
//
// # Overview
//
// Everything in this package is plain data. A [TokenInput] is built fresh for
// every resolution request by merging a node's own properties with the
// context inherited from its parent; the engine never walks a tree itself.
//
//	in := iddl.TokenInput{
//	    Role:       "Button",
//	    Prominence: iddl.ProminenceHero,
//	    Intent:     iddl.IntentBrand,
//	    Context:    iddl.DefaultContext(),
//	}
//	in.Context.Ancestry.Space = iddl.SpaceSurface
//
// Zero values are meaningful: an empty prominence is Standard, an empty intent
// is Neutral, an empty space is surface. [TokenInput.Normalize] makes those
// defaults explicit, and the engine normalizes every input before it derives a
// cache key, so inputs that differ only in omitted defaults share one entry.
//
// # Vocabulary
//
// Roles are an open vocabulary: any component kind may be named, and unknown
// roles resolve through strategy-table defaults. Every other axis is a closed
// set with Parse helpers for text input (CLI flags, batch files).
package iddl
