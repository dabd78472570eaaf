package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

func testPlayer() *Player {
	return NewPlayer("wave",
		[]float64{0, 0.1, 0.2},
		[][]float64{{0, 1, 0}, {0, 0.5, 0}, {0, 0, 0}},
		10)
}

func TestPlayerAdvancesOnTick(t *testing.T) {
	p := testPlayer()

	m, cmd := p.Update(tickMsg(time.Now()))
	if cmd == nil {
		t.Error("expected a follow-up tick command")
	}
	got := m.(*Player)
	if got.frame != 1 {
		t.Errorf("expected frame 1 after tick, got %d", got.frame)
	}

	// ticking past the end must not run off the grid
	got.frame = 2
	m, _ = got.Update(tickMsg(time.Now()))
	if m.(*Player).frame != 2 {
		t.Errorf("frame advanced past the last row: %d", m.(*Player).frame)
	}
}

func TestPlayerKeys(t *testing.T) {
	p := testPlayer()

	m, _ := p.Update(tea.KeyMsg{Type: tea.KeySpace})
	if m.(*Player).playing {
		t.Error("space should pause")
	}

	m, _ = m.(*Player).Update(tea.KeyMsg{Type: tea.KeyRight})
	if m.(*Player).frame != 1 {
		t.Errorf("right should step forward, frame = %d", m.(*Player).frame)
	}

	m, _ = m.(*Player).Update(tea.KeyMsg{Type: tea.KeyLeft})
	if m.(*Player).frame != 0 {
		t.Errorf("left should step back, frame = %d", m.(*Player).frame)
	}

	m, _ = m.(*Player).Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})
	if !m.(*Player).playing || m.(*Player).frame != 0 {
		t.Error("r should restart playback")
	}

	_, cmd := m.(*Player).Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("q should quit")
	}
}

func TestPlayerView(t *testing.T) {
	p := testPlayer()
	out := p.View()
	if !strings.Contains(out, "wave") {
		t.Error("view missing equation name")
	}
	if !strings.Contains(out, "1/3") {
		t.Error("view missing frame counter")
	}

	empty := NewPlayer("wave", nil, nil, 10)
	if !strings.Contains(empty.View(), "no data") {
		t.Error("empty player should say so")
	}
}
