/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>

*/
package cmd

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/BurritoBandit28/Memory-Game/game"
)

var (
	recall  float64
	matches int
	step    float32
)

// roundPrinter collects what happened in a simulated match.
type roundPrinter struct {
	rounds  [][]string
	summary *game.MatchSummary
}

func (p *roundPrinter) RoundEvaluated(r game.RoundResult) {
	p.rounds = append(p.rounds, []string{
		fmt.Sprint(r.Round), r.Player.String(), r.Cards[0].Name, r.Cards[1].Name, r.Outcome.String(),
	})
}

func (p *roundPrinter) MatchFinished(m game.MatchSummary) {
	p.summary = &m
}

func (p *roundPrinter) print(w io.Writer) {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle.Padding(0, 1)
			}
			return cellStyle
		}).
		Headers("round", "player", "first", "second", "outcome").
		Rows(p.rounds...)
	fmt.Fprintln(w, t.Render())
	if p.summary != nil {
		fmt.Fprintln(w, titleStyle.Render(fmt.Sprintf("%s  %d - %d  in %d rounds",
			p.summary.Verdict, p.summary.Player1, p.summary.Player2, p.summary.Rounds)))
	}
}

// simulateCmd represents the simulate command
var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Play full matches headlessly with scripted picks",
	RunE: func(cmd *cobra.Command, args []string) error {
		rng := newRand()
		for i := 0; i < matches; i++ {
			printer := &roundPrinter{}
			session, _, closeLedger, err := newSession(game.Options{Rand: rng, Listeners: []game.Listener{printer}})
			if err != nil {
				return err
			}
			err = simulate(session, game.NewAutoplayer(rng, recall), step)
			closeLedger()
			if err != nil {
				return err
			}
			printer.print(cmd.OutOrStdout())
		}
		return nil
	},
}

// simulate deals and drives the session with the autoplayer until the match
// is over.
func simulate(s *game.Session, bot *game.Autoplayer, delta float32) error {
	if err := s.CreateMemoryGameScene(); err != nil {
		return err
	}
	view := viewSize()
	maxFrames := 100000
	for frame := 0; !s.MatchOver(); frame++ {
		if frame == maxFrames {
			return fmt.Errorf("match not finished after %d frames", maxFrames)
		}
		s.Cycle(delta, bot.Next(s, view))
	}
	return nil
}

func init() {
	simulateCmd.Flags().Float64Var(&recall, "recall", 0.8, "chance the bot remembers a revealed card")
	simulateCmd.Flags().IntVar(&matches, "matches", 1, "number of matches to play")
	simulateCmd.Flags().Float32Var(&step, "step", 1.0/60, "seconds per simulated frame")
	rootCmd.AddCommand(simulateCmd)
}
