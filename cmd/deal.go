/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>

*/
package cmd

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/BurritoBandit28/Memory-Game/game"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ffa300"))
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#29adff"))
)

// dealCmd represents the deal command
var dealCmd = &cobra.Command{
	Use:   "deal",
	Short: "Deal a board without opening a window and print it",
	RunE: func(cmd *cobra.Command, args []string) error {
		session, d, closeLedger, err := newSession(game.Options{})
		if err != nil {
			return err
		}
		defer closeLedger()
		if err := session.CreateMemoryGameScene(); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), titleStyle.Render(fmt.Sprintf("%s, %d pairs, match %s", d.Name, len(session.Catalog()), session.MatchID())))
		fmt.Fprintln(cmd.OutOrStdout(), boardTable(session))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(dealCmd)
}

// boardGrid lays the dealt cards out as rows top to bottom, columns left to
// right. Empty slots are blank.
func boardGrid(s *game.Session) [][]string {
	var xs, ys []float32
	seen := map[float32]bool{}
	for _, p := range game.BoardPositions {
		if !seen[p.X] {
			seen[p.X] = true
			xs = append(xs, p.X)
		}
	}
	seen = map[float32]bool{}
	for _, p := range game.BoardPositions {
		if !seen[p.Y] {
			seen[p.Y] = true
			ys = append(ys, p.Y)
		}
	}
	names := map[game.Vec]string{}
	for _, e := range s.Entities() {
		if c, ok := e.(*game.CardEntity); ok {
			names[c.Base()] = c.Card().Name
		}
	}
	grid := make([][]string, len(ys))
	for r, y := range ys {
		grid[r] = make([]string, len(xs))
		for c, x := range xs {
			grid[r][c] = names[game.Vec{X: x, Y: y}]
		}
	}
	return grid
}

func boardTable(s *game.Session) string {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		StyleFunc(func(row, col int) lipgloss.Style { return cellStyle }).
		Rows(boardGrid(s)...).
		Render()
}
