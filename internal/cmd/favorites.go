package cmd

import (
	"context"
	"fmt"
)

// FavoritesCmd lists all favorited question texts on stdout
type FavoritesCmd struct{}

// Run executes the favorites listing
func (f *FavoritesCmd) Run(cli *CLI) error {
	favorites, err := cli.Container.SessionService.AllFavorites(context.Background())
	if err != nil {
		return fmt.Errorf("failed to load favorites: %w", err)
	}

	if len(favorites) == 0 {
		fmt.Println("No favorites yet. Press f on a question during a session.")
		return nil
	}

	for _, text := range favorites {
		fmt.Println("♥ " + text)
	}
	return nil
}
