package main

import (
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"beatfall/internal/audio"
	"beatfall/internal/config"
	"beatfall/internal/game"
	"beatfall/internal/input"
	"beatfall/internal/render"
	"beatfall/internal/score"
	"beatfall/internal/theme"
	"golang.org/x/term"
)

func main() {
	if err := run(); nil != err {
		log.Fatalln(err)
	}
}

func run() error {
	config.Parse()

	// Ensure our Default implementations are used as interfaces
	var r render.Renderer = &render.DefaultRenderer{}
	var th theme.Theme = &theme.DefaultTheme{}

	columns, rows, err := term.GetSize(int(os.Stdout.Fd()))
	if nil != err {
		return fmt.Errorf("unable to get terminal size: %w", err)
	}

	var in input.Input
	in, err = input.NewDefaultInput()
	if nil != err {
		return err
	}
	defer in.Close()

	player := audio.NewDefaultPlayer(*config.Mute)

	seed := *config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	factory := game.NewFactory(rand.New(rand.NewSource(seed)))
	ledger := score.NewLedger()
	evaluator := score.NewEvaluator(factory, ledger, player)

	p := &Program{
		Renderer:  r,
		Theme:     th,
		Input:     in,
		Evaluator: evaluator,
	}
	p.Resize(rows, columns)

	if err := r.Init(); nil != err {
		return err
	}

	r.RenderLoop(*config.Delay, p.Frame)

	// Restore the terminal state before the summary goes to stdout
	if err := r.Deinit(); nil != err {
		log.Println("unable to restore terminal:", err)
	}

	fmt.Printf("score %v  max combo %v  accuracy %.1f%%\n",
		ledger.Score(), ledger.MaxCombo(), ledger.AccuracyPercentage())
	fmt.Printf("perfect %v  good %v  miss %v\n",
		ledger.Perfects(), ledger.Goods(), ledger.Misses())
	return nil
}
