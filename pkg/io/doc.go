// Package io reads token input batches and writes resolution reports.
//
// # Batch Format
//
// A batch is a list of named inputs. The same structure is accepted as JSON,
// YAML or TOML; the format is chosen by file extension:
//
//	inputs:
//	  - id: primary-cta
//	    role: Button
//	    prominence: Hero
//	    intent: Brand
//	    context:
//	      ancestry: {space: surface}
//	  - id: sidebar
//	    role: Sidebar
//	    context:
//	      ancestry: {space: rail}
//
// The id is optional; unnamed entries are called "#1", "#2", ... by position.
// Every field of an entry is validated and all problems are reported at once.
//
// # Reports
//
// [Run] resolves every entry and returns a [Report] stamped with a random run
// ID. Reports are written in any of the batch formats with [WriteReport] or
// [ExportReport].
//
// # Filesystems
//
// File-based helpers take an afero filesystem so batches can be read from and
// written to memory in tests.
package io
