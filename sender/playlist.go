package sender

import (
	"context"
	"fmt"
	"path/filepath"
	"time"
)

// Program is one demo in the show.
type Program struct {
	Name string
	File string
	Hold time.Duration // after RUN
	Idle bool          // run the Injector after RUN
}

// DefaultShow is hello, mouse, maze, bounce.
func DefaultShow(dir string) []Program {
	return []Program{
		{Name: "hello", File: filepath.Join(dir, "hello.bas"), Hold: 10 * time.Second},
		{Name: "mouse", File: filepath.Join(dir, "mouse.bas"), Hold: 20 * time.Second},
		{Name: "maze", File: filepath.Join(dir, "maze.bas"), Idle: true},
		{Name: "bounce", File: filepath.Join(dir, "bounce.bas"), Hold: 60 * time.Second},
	}
}

// Playlist plays its programs once each, in order.
type Playlist struct {
	Sequencer *Sequencer
	Injector  *Injector
	Programs  []Program
}

func NewPlaylist(kb *Keyboard, dir string) *Playlist {
	return &Playlist{
		Sequencer: NewSequencer(kb),
		Injector:  NewInjector(kb),
		Programs:  DefaultShow(dir),
	}
}

// Play stops at the first failure and names the program that failed.
func (p *Playlist) Play(ctx context.Context) error {
	c := p.Sequencer.Keyboard.Clock
	for _, prog := range p.Programs {
		Logf("=== %s ===", prog.Name)
		if err := p.Sequencer.LoadAndRun(ctx, prog.File); err != nil {
			return fmt.Errorf("%s: %w", prog.Name, err)
		}
		if prog.Idle {
			if err := p.Injector.Run(ctx); err != nil {
				return fmt.Errorf("%s: %w", prog.Name, err)
			}
		}
		if err := c.Sleep(ctx, prog.Hold); err != nil {
			return fmt.Errorf("%s: %w", prog.Name, err)
		}
	}
	return nil
}
