/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>

*/
package cmd

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/BurritoBandit28/Memory-Game/history"
)

var limit int

// historyCmd represents the history command
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recently finished matches",
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg.HistoryDB == "" {
			return errors.New("no ledger configured, set MEMORY_HISTORY_DB")
		}
		repo, err := history.Open(cfg.HistoryDB)
		if err != nil {
			return err
		}
		defer repo.Close()
		recent, err := repo.Recent(limit)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), historyTable(recent))
		return nil
	},
}

func historyTable(recent []history.Match) string {
	rows := make([][]string, len(recent))
	for i, m := range recent {
		rows[i] = []string{
			m.Finished.Format("2006-01-02 15:04"),
			m.ID,
			fmt.Sprintf("%d - %d", m.Player1, m.Player2),
			fmt.Sprint(m.Rounds),
			m.Verdict,
			m.Elapsed.Round(time.Second).String(),
		}
	}
	return table.New().
		Border(lipgloss.NormalBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle.Padding(0, 1)
			}
			return cellStyle
		}).
		Headers("finished", "match", "score", "rounds", "verdict", "time").
		Rows(rows...).
		Render()
}

func init() {
	historyCmd.Flags().IntVar(&limit, "limit", 10, "number of matches to list")
	rootCmd.AddCommand(historyCmd)
}
