package cmd

import (
	"context"
	"fmt"
)

// HistoryCmd lists past sessions on stdout
type HistoryCmd struct {
	Limit int `help:"Maximum number of sessions to show" default:"20"`
}

// Run executes the history listing
func (h *HistoryCmd) Run(cli *CLI) error {
	entries, err := cli.Container.SessionService.History(context.Background(), h.Limit)
	if err != nil {
		return fmt.Errorf("failed to load history: %w", err)
	}

	if len(entries) == 0 {
		fmt.Println("No sessions yet.")
		return nil
	}

	for _, entry := range entries {
		line := fmt.Sprintf("%s  %-16s  %d/%d answered, %d skipped",
			entry.Date.Format("2006-01-02"),
			entry.Target,
			entry.Answered, entry.Total, entry.Skipped)
		if entry.Minutes > 0 {
			line += fmt.Sprintf(", %d min", entry.Minutes)
		}
		if len(entry.Favorites) > 0 {
			line += fmt.Sprintf(", %d favorites", len(entry.Favorites))
		}
		fmt.Println(line)
	}
	return nil
}
