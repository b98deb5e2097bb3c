// Package jsonc implements the two text-level halves of the JSONC format:
// Strip turns JSONC into plain JSON a standard parser accepts, and Writer
// emits JSON with line comments and deterministic member order.
//
// JSONC is JSON plus // line comments, /* block */ comments and tolerance for
// trailing commas. The package works on bytes only; it neither parses values
// nor touches the filesystem.
//
//	data = jsonc.Strip(data) // now plain JSON
//
// Writing is explicit and ordered, one call per structural token:
//
//	w := jsonc.NewWriter(&buf)
//	w.BeginObject()
//	w.Comment("Maximum number of connections.")
//	w.Name("maxConns")
//	w.Value(3)
//	w.EndObject()
//
// Errors stick: the first failed call poisons the Writer and every later call
// returns the same error, so a single check after EndObject suffices.
package jsonc
