package engine

import (
	"context"
	"fmt"
	"time"

	"power4/game"
	"power4/meta"
	"power4/stats"

	"github.com/rs/zerolog/log"
)

var _ Engine = (*Local)(nil)

type Option func(l *Local)

func WithTickInterval(interval time.Duration) Option {
	return func(l *Local) {
		if interval > 0 {
			l.tick = interval
		}
	}
}

func WithStats(collector stats.Collector) Option {
	return func(l *Local) {
		if collector != nil {
			l.stats = collector
		}
	}
}

// Local drives a game on this machine: it owns the column selector, turns
// intents into moves and advances the animation on a fixed tick.
type Local struct {
	Game     *game.Engine
	input    Input
	renderer Renderer
	stats    stats.Collector
	tick     time.Duration
	selected int  // Column under the drop indicator
	recorded bool // Finished game already sent to stats
}

func NewLocal(g *game.Engine, input Input, renderer Renderer, options ...Option) *Local {
	if g == nil {
		panic("game engine is required")
	}
	if input == nil || renderer == nil {
		panic("input and renderer are required")
	}

	l := &Local{ // Default values
		Game:     g,
		input:    input,
		renderer: renderer,
		stats:    stats.NewDummyCollector(),
		tick:     meta.TICK_INTERVAL,
		selected: game.Columns / 2,
	}
	for _, option := range options {
		option(l)
	}
	l.stats.StartGame(g.CurrentPlayer())
	return l
}

func (l *Local) Selected() int {
	return l.selected
}

// Frame captures the current game for rendering.
func (l *Local) Frame() Frame {
	winner, won := l.Game.Winner()
	return Frame{
		Board:     l.Game.Board(),
		Player:    l.Game.CurrentPlayer(),
		Winner:    winner,
		Won:       won,
		Full:      l.Game.IsFull(),
		Resetting: l.Game.Resetting(),
		Tokens:    [2]int{l.Game.TokensRemaining(game.One), l.Game.TokensRemaining(game.Two)},
		Selected:  l.selected,
		Score:     l.stats.Scoreboard(),
	}
}

// Handle applies one intent and reports whether the loop should keep going.
func (l *Local) Handle(intent Intent) bool {
	switch intent {
	case IntentLeft:
		if l.selected > 0 {
			l.selected--
		}
	case IntentRight:
		if l.selected < game.Columns-1 {
			l.selected++
		}
	case IntentCommit:
		l.commit()
	case IntentQuit:
		log.Info().Msg("quit requested")
		return false
	default:
		log.Warn().Msgf("ignoring unknown intent %d", intent)
	}
	return true
}

// commit drops into the selected column while the game is on, and starts a
// new game once it is over.
func (l *Local) commit() {
	_, won := l.Game.Winner()
	if won || l.Game.IsFull() {
		if !l.Game.Resetting() {
			log.Info().Msg("clearing the board")
		}
		l.Game.Reset()
		return
	}

	player := l.Game.CurrentPlayer()
	if !l.Game.CanDrop(l.selected) {
		log.Debug().Msgf("player %s cannot drop into column %d", player, l.selected)
		return
	}
	l.Game.Drop(l.selected)
	l.stats.AddMove()
	log.Debug().Msgf("player %s dropped into column %d", player, l.selected)

	l.recordGameOver()
}

func (l *Local) recordGameOver() {
	if l.recorded {
		return
	}
	winner, won := l.Game.Winner()
	full := l.Game.IsFull()
	if !won && !full {
		return
	}
	l.recorded = true

	m := l.stats.CompleteGame(winner, !won)
	if won {
		log.Info().Msgf("game over! winner: player %s after %d moves", winner, m.TotalMoves)
	} else {
		log.Info().Msgf("game over! draw after %d moves", m.TotalMoves)
	}
}

// Tick advances the animation by one step.
func (l *Local) Tick() {
	wasResetting := l.Game.Resetting()
	l.Game.Animate()
	if wasResetting && !l.Game.Resetting() {
		l.recorded = false
		l.stats.StartGame(l.Game.CurrentPlayer())
		log.Info().Msgf("board cleared, player %s is starting", l.Game.CurrentPlayer())
	}
}

// Run executes the game loop: one render per event, one Animate per tick.
func (l *Local) Run(ctx context.Context) error {
	ticker := time.NewTicker(l.tick)
	defer ticker.Stop()
	intents := l.input.Intents()

	log.Info().Msgf("player %s is starting", l.Game.CurrentPlayer())

	for {
		if err := l.renderer.Render(l.Frame()); err != nil {
			return fmt.Errorf("failed to render frame: %w", err)
		}

		select {
		case <-ctx.Done():
			log.Info().Msg("game loop cancelled")
			return nil
		case <-ticker.C:
			l.Tick()
		case intent, ok := <-intents:
			if !ok {
				log.Info().Msg("input closed")
				return nil
			}
			if !l.Handle(intent) {
				return nil
			}
		}
	}
}
