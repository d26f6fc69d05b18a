package main

import (
	"fmt"
	"time"

	"beatfall/internal/config"
	"beatfall/internal/game"
	"beatfall/internal/input"
	"beatfall/internal/render"
	"beatfall/internal/score"
	"beatfall/internal/theme"
)

type Program struct {
	Renderer  render.Renderer
	Theme     theme.Theme
	Input     input.Input
	Evaluator *score.Evaluator

	rows, cols int
	laneCols   [game.NLanes]int
	hitRow     int
	centerRow  int
	centerCol  int
	sideCol    int

	noteRows    map[*game.Note]int
	feedbackSeq uint64
}

func (p *Program) Resize(rows, cols int) {
	p.rows = rows
	p.cols = cols
	for i := range p.laneCols {
		p.laneCols[i] = p.column(game.LaneColumn(i))
	}
	p.hitRow = p.row(game.HitLineY)
	p.centerRow = rows / 2
	p.centerCol = cols / 2
	p.sideCol = p.laneCols[0] - 28
	if p.sideCol < 2 {
		p.sideCol = 2
	}
	p.noteRows = make(map[*game.Note]int)
}

// row maps a playfield y coordinate onto a terminal row.
func (p *Program) row(y float64) int {
	return int(y / game.ScreenHeight * float64(p.rows))
}

func (p *Program) column(x float64) int {
	return int(x / game.ScreenWidth * float64(p.cols))
}

func (p *Program) Frame(now time.Time, duration time.Duration) bool {
	pressed, held, quit := p.Input.Poll(duration)
	if quit {
		return false
	}
	if *config.Length > 0 && duration > *config.Length {
		return false
	}

	p.Evaluator.Frame(duration, pressed, held)

	p.renderGame()
	p.renderFeedback()
	p.renderStats()
	return true
}

func (p *Program) renderGame() {
	r := p.Renderer

	// clear all existing renders
	for n, row := range p.noteRows {
		r.Fill(row, p.laneCols[n.Lane], " ")
		delete(p.noteRows, n)
	}

	// Render the hit bar
	for i := 0; i < game.NLanes; i++ {
		r.Fill(p.hitRow, p.laneCols[i], p.Theme.RenderHitField(i))
	}

	// Render notes
	for _, note := range p.Evaluator.Notes() {
		if note.Hit && !note.BeingHeld {
			continue
		}
		row := p.row(note.Center())
		if row <= 0 || row >= p.rows || row == p.hitRow {
			continue
		}
		r.Fill(row, p.laneCols[note.Lane], p.Theme.RenderNote(note))
		p.noteRows[note] = row
	}
}

func (p *Program) renderFeedback() {
	fb, ok := p.Evaluator.Feedback()
	col := p.centerCol - 4

	if fb.Seq != p.feedbackSeq {
		p.feedbackSeq = fb.Seq
		if fb.Accuracy == game.Miss {
			p.Renderer.AddDecoration(p.centerRow-1, col-2, "\033[1;31m╭\033[0m", score.FeedbackFrames)
			p.Renderer.AddDecoration(p.centerRow-1, col+10, "\033[1;31m╮\033[0m", score.FeedbackFrames)
		}
	}

	if !ok {
		p.Renderer.Fill(p.centerRow, col, "        ")
		p.Renderer.Fill(p.centerRow+1, col, "      ")
		return
	}

	c := p.Theme.AccuracyColor(fb.Accuracy)
	p.Renderer.FillColor(p.centerRow, col, c, fmt.Sprintf("%-8v", fb.Accuracy))
	if fb.Award > 0 {
		p.Renderer.FillColor(p.centerRow+1, col, c, fmt.Sprintf("%-6v", fmt.Sprintf("+%v", fb.Award)))
	} else {
		p.Renderer.Fill(p.centerRow+1, col, "      ")
	}
}

func (p *Program) renderStats() {
	r := p.Renderer
	l := p.Evaluator.Ledger()

	r.Fill(10, p.sideCol, fmt.Sprintf("    Score:  %7v", l.Score()))
	r.Fill(11, p.sideCol, fmt.Sprintf("    Combo:  %7v", l.Combo()))
	r.Fill(12, p.sideCol, fmt.Sprintf("Max Combo:  %7v", l.MaxCombo()))
	r.Fill(13, p.sideCol, fmt.Sprintf(" Accuracy:  %6.1f%%", l.AccuracyPercentage()))

	counts := [...]int{l.Perfects(), l.Goods(), l.Misses()}
	for i, count := range counts {
		acc := game.Accuracy(i)
		r.FillColor(16+i, p.sideCol, p.Theme.AccuracyColor(acc),
			fmt.Sprintf("%8v:  %6v", acc, count))
	}
}
