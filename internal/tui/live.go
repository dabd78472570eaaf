// Package tui plays a solved space-time grid back in the terminal, one time
// level per frame.
package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/numlab/internal/viz"
)

type tickMsg time.Time

// Player is a bubbletea model stepping through the rows of a solution grid.
type Player struct {
	equation string
	t        []float64
	u        [][]float64
	frame    int
	playing  bool
	fps      int
}

// NewPlayer builds a player over a solved grid. fps values below 1 fall back
// to 30.
func NewPlayer(equation string, t []float64, u [][]float64, fps int) *Player {
	if fps < 1 {
		fps = 30
	}
	return &Player{
		equation: equation,
		t:        t,
		u:        u,
		playing:  true,
		fps:      fps,
	}
}

// Run plays the grid until the user quits.
func (p *Player) Run() error {
	_, err := tea.NewProgram(p).Run()
	return err
}

func (p *Player) Init() tea.Cmd {
	return p.tick()
}

func (p *Player) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(p.fps), func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (p *Player) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return p, tea.Quit
		case " ":
			p.playing = !p.playing
		case "left", "h":
			p.playing = false
			if p.frame > 0 {
				p.frame--
			}
		case "right", "l":
			p.playing = false
			if p.frame < len(p.u)-1 {
				p.frame++
			}
		case "r":
			p.frame = 0
			p.playing = true
		}
		return p, nil

	case tickMsg:
		if p.playing && p.frame < len(p.u)-1 {
			p.frame++
		}
		return p, p.tick()
	}
	return p, nil
}

func (p *Player) View() string {
	if len(p.u) == 0 {
		return "no data\n"
	}

	state := "playing"
	if !p.playing {
		state = "paused"
	}
	if p.frame == len(p.u)-1 {
		state = "done"
	}

	header := viz.Header(fmt.Sprintf("%s  %d/%d  (%s)", p.equation, p.frame+1, len(p.u), state))
	plot := viz.PlotRow(p.u[p.frame], viz.RowCaption(p.frame, p.t[p.frame]))
	help := viz.Caption("space pause · ←/→ step · r restart · q quit")

	return header + "\n" + plot + "\n" + help + "\n"
}
