// Package render maps resolved semantic tokens to presentation classes.
//
// # Overview
//
// The resolution pipeline decides which tokens a node uses (scale.lg,
// surface.raised, content.on-brand). This package decides what those tokens
// look like, by looking each one up in a [Vocabulary]:
//
//	r := pipeline.Default().Run(tables, input)
//	out := render.Default().Render(r)
//	fmt.Println(out.Classes())
//
// The default vocabulary targets utility-class CSS. Themes replace individual
// entries with [Vocabulary.Apply]; tokens without an entry render through the
// table's fallback.
package render
