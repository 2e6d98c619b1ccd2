package engine

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"power4/game"
	"power4/stats"
)

type chanInput chan Intent

func (c chanInput) Intents() <-chan Intent {
	return c
}

type recordingRenderer struct {
	frames   []Frame
	err      error
	onRender func(Frame)
}

func (r *recordingRenderer) Render(f Frame) error {
	r.frames = append(r.frames, f)
	if r.onRender != nil {
		r.onRender(f)
	}
	return r.err
}

func newTestLocal(options ...Option) (*Local, chanInput, *recordingRenderer) {
	input := make(chanInput, 16)
	renderer := &recordingRenderer{}
	return NewLocal(game.New(), input, renderer, options...), input, renderer
}

// dropAt moves the selector to column, commits and lets the token land.
func dropAt(l *Local, column int) {
	for l.Selected() > column {
		l.Handle(IntentLeft)
	}
	for l.Selected() < column {
		l.Handle(IntentRight)
	}
	l.Handle(IntentCommit)
	for i := 0; i < game.Rows; i++ {
		l.Tick()
	}
}

func TestNewLocal(t *testing.T) {
	t.Run("starts with the selector in the middle", func(t *testing.T) {
		l, _, _ := newTestLocal()

		require.Equal(t, 3, l.Selected())
		require.Equal(t, 250*time.Millisecond, l.tick)
	})

	t.Run("applies options", func(t *testing.T) {
		collector := stats.NewCollector()
		l, _, _ := newTestLocal(WithTickInterval(time.Second), WithStats(collector))

		require.Equal(t, time.Second, l.tick)
		require.Same(t, collector, l.stats)
	})

	t.Run("ignores invalid options", func(t *testing.T) {
		l, _, _ := newTestLocal(WithTickInterval(0), WithStats(nil))

		require.Equal(t, 250*time.Millisecond, l.tick)
		require.NotNil(t, l.stats)
	})

	t.Run("panics without collaborators", func(t *testing.T) {
		require.Panics(t, func() { NewLocal(nil, make(chanInput), &recordingRenderer{}) })
		require.Panics(t, func() { NewLocal(game.New(), nil, &recordingRenderer{}) })
		require.Panics(t, func() { NewLocal(game.New(), make(chanInput), nil) })
	})
}

func TestHandle(t *testing.T) {
	t.Run("selector stays on the board", func(t *testing.T) {
		l, _, _ := newTestLocal()

		for i := 0; i < 10; i++ {
			require.True(t, l.Handle(IntentRight))
		}
		require.Equal(t, game.Columns-1, l.Selected())

		for i := 0; i < 10; i++ {
			require.True(t, l.Handle(IntentLeft))
		}
		require.Equal(t, 0, l.Selected())
	})

	t.Run("commit drops into the selected column", func(t *testing.T) {
		l, _, _ := newTestLocal()
		l.Handle(IntentLeft)

		l.Handle(IntentCommit)

		frame := l.Frame()
		require.Equal(t, game.Occupied(game.One), frame.Board[0][2])
		require.Equal(t, game.Two, frame.Player)
		require.Equal(t, [2]int{game.TokensPerPlayer - 1, game.TokensPerPlayer}, frame.Tokens)
	})

	t.Run("commit into a busy column is ignored", func(t *testing.T) {
		l, _, _ := newTestLocal()
		l.Handle(IntentCommit)
		before := l.Frame()

		l.Handle(IntentCommit)

		require.Equal(t, before, l.Frame())
	})

	t.Run("quit stops the loop", func(t *testing.T) {
		l, _, _ := newTestLocal()

		require.False(t, l.Handle(IntentQuit))
	})

	t.Run("unknown intent is ignored", func(t *testing.T) {
		l, _, _ := newTestLocal()
		before := l.Frame()

		require.True(t, l.Handle(Intent(42)))
		require.Equal(t, before, l.Frame())
	})
}

func TestGameFlow(t *testing.T) {
	t.Run("win is recorded once and commit starts a new game", func(t *testing.T) {
		collector := stats.NewCollector()
		l, _, _ := newTestLocal(WithStats(collector))

		for _, column := range []int{0, 1, 0, 1, 0, 1, 0} {
			dropAt(l, column)
		}
		frame := l.Frame()
		require.True(t, frame.Won)
		require.Equal(t, game.One, frame.Winner)
		require.True(t, frame.Over())
		require.Equal(t, 1, frame.Score.Wins[game.One])
		require.Equal(t, 7, collector.Games()[0].TotalMoves)

		l.Handle(IntentCommit)
		require.True(t, l.Frame().Resetting)
		l.Handle(IntentCommit)
		for i := 0; i < game.Rows; i++ {
			l.Tick()
		}

		frame = l.Frame()
		require.False(t, frame.Resetting)
		require.False(t, frame.Over())
		require.Equal(t, game.Grid{}, frame.Board)
		require.Equal(t, game.One, frame.Player)
		require.Equal(t, stats.Scoreboard{Wins: [2]int{1, 0}, Games: 1}, frame.Score, "Game should be recorded once")
	})

	t.Run("draw is recorded", func(t *testing.T) {
		collector := stats.NewCollector()
		l, _, _ := newTestLocal(WithStats(collector))
		fillPair := func(index int) {
			for i := 0; i < game.Rows/2; i++ {
				dropAt(l, index)
				dropAt(l, index+1)
			}
			for i := game.Rows / 2; i < game.Rows; i++ {
				dropAt(l, index+1)
				dropAt(l, index)
			}
		}
		fillPair(0)
		fillPair(2)
		fillPair(5)
		for i := 0; i < game.Rows; i++ {
			dropAt(l, 4)
		}

		frame := l.Frame()
		require.False(t, frame.Won)
		require.True(t, frame.Full)
		require.Equal(t, 1, frame.Score.Draws)
		require.Equal(t, 42, collector.Games()[0].TotalMoves)
	})
}

func TestRun(t *testing.T) {
	t.Run("quit intent ends the loop", func(t *testing.T) {
		l, input, renderer := newTestLocal(WithTickInterval(time.Hour))
		input <- IntentRight
		input <- IntentCommit
		input <- IntentQuit

		err := l.Run(context.Background())

		require.NoError(t, err)
		require.Len(t, renderer.frames, 3, "One frame before each intent")
		require.Equal(t, game.Occupied(game.One), l.Game.Board()[0][4])
	})

	t.Run("closed input ends the loop", func(t *testing.T) {
		l, input, _ := newTestLocal(WithTickInterval(time.Hour))
		close(input)

		require.NoError(t, l.Run(context.Background()))
	})

	t.Run("cancelled context ends the loop", func(t *testing.T) {
		l, _, _ := newTestLocal(WithTickInterval(time.Hour))
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		require.NoError(t, l.Run(ctx))
	})

	t.Run("render failure is returned", func(t *testing.T) {
		l, _, renderer := newTestLocal(WithTickInterval(time.Hour))
		boom := errors.New("boom")
		renderer.err = boom

		err := l.Run(context.Background())

		require.ErrorIs(t, err, boom)
	})

	t.Run("ticks animate the board", func(t *testing.T) {
		l, input, renderer := newTestLocal(WithTickInterval(time.Millisecond))
		parent, stop := context.WithTimeout(context.Background(), 5*time.Second)
		defer stop()
		ctx, cancel := context.WithCancel(parent)
		defer cancel()
		landed := false
		renderer.onRender = func(f Frame) {
			if !f.Board[game.Rows-1][3].IsEmpty() {
				landed = true
				cancel()
			}
		}
		input <- IntentCommit

		require.NoError(t, l.Run(ctx))
		require.True(t, landed, "Token should reach the bottom row")
	})
}
