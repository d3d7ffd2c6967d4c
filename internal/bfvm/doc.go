// Package bfvm is a minimal Brainfuck interpreter used only by tests,
// to check that an emitted program actually produces its target
// output. It is never imported by cmd/bfcrunch or any non-test file:
// emitted programs are never verified by simulation at runtime.
//
// Supported commands: > < + - . [ ]. Brainfuck's input command , is
// unsupported since bf-crunch never emits it. All other characters are
// ignored, matching the reference interpreters' comment convention.
package bfvm
