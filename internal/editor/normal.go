package editor

import (
	"github.com/dshills/vigor/internal/input/key"
)

// handleNormal dispatches one normal-mode keypress.
//
// Priority order: the pending "d" prefix, count accumulation, motions,
// line-boundary keys, then edits and mode switches. A key that cancels
// the pending prefix is re-evaluated as a fresh keypress in the same
// call: the prefix check runs first and falls through to the regular
// dispatch below, so no re-entrant call is needed.
func (e *Editor) handleNormal(ev key.Event) {
	if e.pendingD {
		e.pendingD = false
		if ev.IsRune() && ev.Rune == 'd' {
			e.deleteCurrentLine()
			e.count.Reset()
			return
		}
		// Cancelled; ev falls through untouched.
	}

	if !ev.IsRune() {
		e.count.Reset()
		return
	}

	switch r := ev.Rune; r {
	case '1', '2', '3', '4', '5', '6', '7', '8', '9':
		e.count.Accumulate(r)

	case '0':
		// Leading '0' is the line-start motion; inside a count it
		// multiplies by ten like any other digit.
		if !e.count.Accumulate(r) {
			e.lineStart()
		}

	case 'h':
		e.repeat(e.moveLeft)
	case 'j':
		e.repeat(e.moveDown)
	case 'k':
		e.repeat(e.moveUp)
	case 'l':
		e.repeat(e.moveRight)
	case 'w':
		e.repeat(e.wordForward)
	case 'b':
		e.repeat(e.wordBackward)

	case '$':
		e.lineEnd()
		e.count.Reset()
	case 'g':
		e.bufferTop()
		e.count.Reset()
	case 'G':
		e.bufferBottom()
		e.count.Reset()

	case 'x':
		e.deleteCharAtCursor()
		e.count.Reset()

	case 'd':
		e.pendingD = true
		e.count.Reset()

	case 'i':
		e.mode = ModeInsert
		e.count.Reset()

	case ':':
		e.mode = ModeCommand
		e.cmdline.Activate()
		e.count.Reset()

	default:
		// Unmatched keys clear the pending repeat count only.
		e.count.Reset()
	}
}

// repeat applies a single-step motion count times (default 1),
// consuming the count.
func (e *Editor) repeat(step func()) {
	n := e.count.Take()
	for i := 0; i < n; i++ {
		step()
	}
}
