package terminal

import (
	"errors"
	"fmt"
	"sync"

	"power4/engine"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog/log"
)

var (
	_ engine.Input    = (*Terminal)(nil)
	_ engine.Renderer = (*Terminal)(nil)
)

var ErrClosed = errors.New("terminal closed")

// Terminal plays the game on a tcell screen: it reads keys as intents and
// draws frames.
type Terminal struct {
	screen  tcell.Screen
	theme   Theme
	intents chan engine.Intent
	done    chan struct{}
	started sync.Once
	closed  sync.Once
}

// New initializes screen. The caller must Close the terminal to restore the
// console.
func New(screen tcell.Screen, theme Theme) (*Terminal, error) {
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize screen: %w", err)
	}
	screen.HideCursor()
	screen.Clear()

	return &Terminal{
		screen:  screen,
		theme:   theme,
		intents: make(chan engine.Intent),
		done:    make(chan struct{}),
	}, nil
}

// Start begins polling key events. Calling it more than once has no effect.
func (t *Terminal) Start() {
	t.started.Do(func() {
		go t.poll()
	})
}

func (t *Terminal) Intents() <-chan engine.Intent {
	return t.intents
}

// Close finalizes the screen; the intent channel is closed once polling stops.
func (t *Terminal) Close() {
	t.closed.Do(func() {
		close(t.done)
		t.screen.Fini()
	})
}

func (t *Terminal) poll() {
	defer close(t.intents)
	for {
		switch ev := t.screen.PollEvent().(type) {
		case nil:
			return
		case *tcell.EventResize:
			t.screen.Sync()
		case *tcell.EventKey:
			intent, ok := translate(ev)
			if !ok {
				log.Debug().Msgf("ignoring key %s", ev.Name())
				continue
			}
			select {
			case t.intents <- intent:
			case <-t.done:
				return
			}
		}
	}
}

func translate(ev *tcell.EventKey) (engine.Intent, bool) {
	switch ev.Key() {
	case tcell.KeyLeft:
		return engine.IntentLeft, true
	case tcell.KeyRight:
		return engine.IntentRight, true
	case tcell.KeyEnter:
		return engine.IntentCommit, true
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return engine.IntentQuit, true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'h':
			return engine.IntentLeft, true
		case 'l':
			return engine.IntentRight, true
		case ' ':
			return engine.IntentCommit, true
		case 'q', 'Q':
			return engine.IntentQuit, true
		}
	}
	return 0, false
}
