package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
)

// ClearCmd deletes all history and favorites
type ClearCmd struct {
	Force bool `help:"Skip the confirmation prompt" short:"f"`
}

// Run executes the clear command
func (c *ClearCmd) Run(cli *CLI) error {
	if !c.Force {
		fmt.Print("Delete all session history and favorites? [y/N] ")
		reader := bufio.NewReader(os.Stdin)
		answer, _ := reader.ReadString('\n')
		if strings.ToLower(strings.TrimSpace(answer)) != "y" {
			fmt.Println("Nothing deleted.")
			return nil
		}
	}

	if err := cli.Container.SessionService.ClearData(context.Background()); err != nil {
		return fmt.Errorf("failed to clear data: %w", err)
	}
	fmt.Println("History and favorites deleted.")
	return nil
}
