package cmd

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/charmbracelet/x/ansi"
	"github.com/kerbaras/quotes/pkg/app/styles"
	"github.com/kerbaras/quotes/pkg/data"
	"github.com/spf13/cobra"
)

var favouritesCmd = &cobra.Command{
	Use:     "favourites",
	Aliases: []string{"favs"},
	Short:   "List your favourite quotes",
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := setup(true)
		if err != nil {
			return err
		}
		defer env.Close()

		list, err := env.loadFavourites()
		if err != nil {
			return err
		}

		if len(list) == 0 {
			fmt.Println("♡ No favourites yet. Use 'quotes random --favourite' or the TUI to add some.")
			return nil
		}

		fmt.Printf("\n♥ Favourites (%d)\n\n", len(list))
		fmt.Println(favouritesTable(list))
		return nil
	},
}

var removeFavouriteCmd = &cobra.Command{
	Use:   "remove [number]",
	Short: "Remove a favourite by its number in the list",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := strconv.Atoi(args[0])
		if err != nil || n < 1 {
			return fmt.Errorf("invalid favourite number %q", args[0])
		}

		env, err := setup(true)
		if err != nil {
			return err
		}
		defer env.Close()

		if _, err := env.loadFavourites(); err != nil {
			return err
		}

		removed, err := env.controller.RemoveFavourite(n - 1)
		if err != nil {
			return err
		}
		if err := env.controller.Background(); err != nil {
			return err
		}

		fmt.Printf("✓ Removed quote by %s\n", removed.Author())
		return nil
	},
}

func init() {
	favouritesCmd.AddCommand(removeFavouriteCmd)
}

func favouritesTable(list []data.Quote) string {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(styles.Muted)).
		Headers("#", "Quote", "Author").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return lipgloss.NewStyle().Foreground(styles.Primary).Bold(true).Padding(0, 1)
			}
			return lipgloss.NewStyle().Padding(0, 1)
		})

	for i, q := range list {
		t.Row(strconv.Itoa(i+1), ansi.Truncate(q.Text(), 60, "…"), q.Author())
	}
	return t.String()
}
