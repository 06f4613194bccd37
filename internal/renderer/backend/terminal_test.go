package backend

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/vigor/internal/input/key"
	"github.com/dshills/vigor/internal/renderer"
)

func newSimTerminal(t *testing.T) (*Terminal, tcell.SimulationScreen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	term := NewTerminalScreen(sim)
	if err := term.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	t.Cleanup(term.Fini)
	return term, sim
}

func TestApplyWritesCells(t *testing.T) {
	term, sim := newSimTerminal(t)
	sim.SetSize(10, 4)

	term.Apply([]renderer.CellWrite{
		{X: 1, Y: 2, Cell: renderer.NewCell('x', renderer.NewStyle(renderer.ColorRed))},
		{X: 2, Y: 2, Cell: renderer.NewCell('y', renderer.DefaultStyle())},
	})
	term.Show()

	cells, w, _ := sim.GetContents()
	if got := cells[2*w+1].Runes; len(got) == 0 || got[0] != 'x' {
		t.Errorf("cell (1,2) = %v, want x", got)
	}
	if got := cells[2*w+2].Runes; len(got) == 0 || got[0] != 'y' {
		t.Errorf("cell (2,2) = %v, want y", got)
	}
}

func TestApplySkipsContinuationCells(t *testing.T) {
	term, sim := newSimTerminal(t)
	sim.SetSize(10, 4)

	term.Apply([]renderer.CellWrite{
		{X: 0, Y: 0, Cell: renderer.NewCell('日', renderer.DefaultStyle())},
		{X: 1, Y: 0, Cell: renderer.ContinuationCell(renderer.DefaultStyle())},
	})
	term.Show()

	cells, _, _ := sim.GetContents()
	if got := cells[0].Runes; len(got) == 0 || got[0] != '日' {
		t.Errorf("cell (0,0) = %v, want the wide rune", got)
	}
}

func TestPollEventKey(t *testing.T) {
	term, sim := newSimTerminal(t)
	sim.InjectKey(tcell.KeyRune, 'w', tcell.ModNone)

	for i := 0; i < 5; i++ {
		ev := term.PollEvent()
		if ev.Type != EventKey {
			continue
		}
		if !ev.Key.IsRune() || ev.Key.Rune != 'w' {
			t.Errorf("event = %+v, want rune w", ev.Key)
		}
		return
	}
	t.Fatal("no key event received")
}

func TestConvertKey(t *testing.T) {
	tests := []struct {
		name string
		in   *tcell.EventKey
		want key.Event
	}{
		{"rune", tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModNone), key.Rune('a')},
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), key.Special(key.KeyEscape)},
		{"enter", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), key.Special(key.KeyEnter)},
		{"backspace2", tcell.NewEventKey(tcell.KeyBackspace2, 0, tcell.ModNone), key.Special(key.KeyBackspace)},
		{"left", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), key.Special(key.KeyLeft)},
		{"unmapped", tcell.NewEventKey(tcell.KeyF5, 0, tcell.ModNone), key.Special(key.KeyNone)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := convertKey(tt.in)
			if got.Key != tt.want.Key || got.Rune != tt.want.Rune {
				t.Errorf("convertKey = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestConvertStyleAttributes(t *testing.T) {
	s := renderer.NewStyle(renderer.ColorRed).WithBackground(renderer.ColorBlue).Bold()
	fg, bg, attrs := convertStyle(s).Decompose()

	if fg != tcell.NewRGBColor(255, 0, 0) {
		t.Errorf("foreground = %v", fg)
	}
	if bg != tcell.NewRGBColor(0, 0, 255) {
		t.Errorf("background = %v", bg)
	}
	if attrs&tcell.AttrBold == 0 {
		t.Error("bold attribute lost")
	}
}
