package stats

import (
	"time"

	"power4/game"
)

type GameMetric struct {
	ID             int
	StartingPlayer game.Player
	Winner         game.Player // Valid only when Draw is false
	Draw           bool
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
}

// Scoreboard tallies the finished games of a session.
type Scoreboard struct {
	Wins  [2]int // Indexed by game.Player
	Draws int
	Games int
}

type Collector interface {
	StartGame(starting game.Player)
	AddMove()
	CompleteGame(winner game.Player, draw bool) GameMetric
	Scoreboard() Scoreboard
	Games() []GameMetric
}

type collector struct {
	now     func() time.Time
	current GameMetric
	started bool
	games   []GameMetric
	board   Scoreboard
}

func NewCollector() Collector {
	return &collector{now: time.Now}
}

func (c *collector) StartGame(starting game.Player) {
	c.current = GameMetric{
		ID:             len(c.games) + 1,
		StartingPlayer: starting,
		StartTime:      c.now(),
	}
	c.started = true
}

func (c *collector) AddMove() {
	if !c.started {
		c.StartGame(game.One)
	}
	c.current.TotalMoves++
}

func (c *collector) CompleteGame(winner game.Player, draw bool) GameMetric {
	if !c.started {
		c.StartGame(game.One)
	}
	m := c.current
	m.EndTime = c.now()
	m.Duration = m.EndTime.Sub(m.StartTime)
	m.Draw = draw
	if !draw {
		m.Winner = winner
		c.board.Wins[winner]++
	} else {
		c.board.Draws++
	}
	c.board.Games++
	c.games = append(c.games, m)
	c.started = false
	return m
}

func (c *collector) Scoreboard() Scoreboard {
	return c.board
}

func (c *collector) Games() []GameMetric {
	games := make([]GameMetric, len(c.games))
	copy(games, c.games)
	return games
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) StartGame(starting game.Player) {}
func (m *dummyCollector) AddMove()                       {}
func (m *dummyCollector) CompleteGame(winner game.Player, draw bool) GameMetric {
	return GameMetric{}
}
func (m *dummyCollector) Scoreboard() Scoreboard { return Scoreboard{} }
func (m *dummyCollector) Games() []GameMetric    { return nil }
