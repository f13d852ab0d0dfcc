// Package textutil provides the word normalization and text comparison
// helpers shared by the aligner, the input loaders, and the CLI.
//
// The primary use cases are:
//   - Reducing a surface word to its canonical comparison token
//   - Fingerprinting whole texts to detect a reference/transcript mismatch
//   - Sanitizing file names derived from song titles
//
// Canonical tokens are lowercased, stripped of everything that is not a
// letter, number, underscore, or whitespace, and trimmed. They exist only for
// comparison and are never written to output.
package textutil
