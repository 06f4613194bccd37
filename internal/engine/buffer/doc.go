// Package buffer provides the editor's text store: raw content plus a
// line-start offset index that is maintained incrementally across edits.
//
// The index makes line lookup O(1) and keeps per-edit cost proportional to
// the number of lines after the edit (a simple integer shift), instead of
// rescanning the whole text on every keystroke. The incremental
// maintenance is a performance requirement of the editor's frame loop, not
// a style choice; see the benchmarks in buffer_bench_test.go.
//
// Position handling is byte-accurate for arbitrary Unicode content:
// cursor columns are measured in characters and converted to byte offsets
// by walking rune boundaries, so edits never split a multi-byte encoding.
//
// Basic usage:
//
//	buf := buffer.New("main.go", "package main\n")
//	buf.InsertRune(0, 7, ' ')
//	line, ok := buf.Line(0)
//
// Out-of-range queries return a zero value and false; no buffer operation
// panics on bad input.
//
// A Buffer assumes exclusive sequential ownership by the editor loop.
// It is not safe for concurrent use.
package buffer
