package terminal

import (
	"fmt"

	"power4/engine"
	"power4/game"
	"power4/meta"
	"power4/stats"

	"github.com/gdamore/tcell/v2"
)

// Screen layout, in cells.
const (
	left         = 2
	cellWidth    = 2
	titleRow     = 0
	statusRow    = 2
	indicatorRow = 4
	boardTop     = 5
	bannerRow    = boardTop + game.Rows + 1
	scoreRow     = bannerRow + 2
	footerRow    = scoreRow + 1
)

const (
	emptyRune     = '.'
	tokenRune     = '●'
	indicatorRune = '↓'
)

// Render draws frame and shows it.
func (t *Terminal) Render(frame engine.Frame) error {
	select {
	case <-t.done:
		return ErrClosed
	default:
	}

	t.screen.Clear()
	bold := tcell.StyleDefault.Bold(true)
	t.drawText(left, titleRow, meta.TITLE, bold.Reverse(true))

	if frame.Over() {
		t.drawText(left, statusRow, "GAME OVER", bold)
		if frame.Won {
			banner := fmt.Sprintf("Player %s Wins !!!", frame.Winner)
			t.drawText(left, bannerRow, banner, bold.Foreground(t.theme.color(frame.Winner)))
		} else {
			t.drawText(left, bannerRow, "DRAW !!!", bold)
		}
		t.drawText(left, footerRow, "space new game   q quit", tcell.StyleDefault.Dim(true))
	} else {
		t.drawStatus(frame)
		if !frame.Resetting {
			x := left + frame.Selected*cellWidth
			t.screen.SetContent(x, indicatorRow, indicatorRune, nil, bold.Foreground(t.theme.color(frame.Player)))
		}
		t.drawText(left, footerRow, "←/→ move   space drop   q quit", tcell.StyleDefault.Dim(true))
	}

	t.drawBoard(frame.Board)
	t.drawText(left, scoreRow, scoreLine(frame.Score), tcell.StyleDefault)

	t.screen.Show()
	return nil
}

func (t *Terminal) drawStatus(frame engine.Frame) {
	style := tcell.StyleDefault.Foreground(t.theme.color(frame.Player))
	x := t.drawText(left, statusRow, fmt.Sprintf("Player %s", frame.Player), style.Bold(true))
	t.drawText(x+2, statusRow, fmt.Sprintf("%c %d left", tokenRune, frame.Tokens[frame.Player]), style)
}

func (t *Terminal) drawBoard(board game.Grid) {
	for row := 0; row < game.Rows; row++ {
		for column := 0; column < game.Columns; column++ {
			x, y := left+column*cellWidth, boardTop+row
			p, ok := board[row][column].Player()
			if !ok {
				t.screen.SetContent(x, y, emptyRune, nil, tcell.StyleDefault.Dim(true))
				continue
			}
			t.screen.SetContent(x, y, tokenRune, nil, tcell.StyleDefault.Foreground(t.theme.color(p)))
		}
	}
}

// drawText writes text from (x, y) and returns the column after its end.
func (t *Terminal) drawText(x, y int, text string, style tcell.Style) int {
	for _, r := range text {
		t.screen.SetContent(x, y, r, nil, style)
		x++
	}
	return x
}

func scoreLine(score stats.Scoreboard) string {
	return fmt.Sprintf("One %d - %d Two   draws %d   games %d",
		score.Wins[game.One], score.Wins[game.Two], score.Draws, score.Games)
}
