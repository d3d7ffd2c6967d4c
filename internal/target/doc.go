// Package target prepares a CLI-supplied target string into the raw
// goal bytes the rest of the module searches for: decoding a small
// regex-like escape grammar, then encoding the result byte-for-byte as
// ISO-8859-1.
//
// This package has no dependency on any other package's internals; it
// only produces a []byte goal, matching the "external collaborator"
// role target preparation plays in the rest of the module.
package target
