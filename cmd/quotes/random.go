package cmd

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/kerbaras/quotes/pkg/app/styles"
	"github.com/kerbaras/quotes/pkg/data"
	"github.com/spf13/cobra"
)

var addFavourite bool

var randomCmd = &cobra.Command{
	Use:   "random",
	Short: "Print a random quote",
	Long:  "Fetch a random quote and print it, optionally adding it to your favourites",
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := setup(true)
		if err != nil {
			return err
		}
		defer env.Close()

		// Load first so saving never replaces a file we could not read
		if addFavourite {
			if _, err := env.loadFavourites(); err != nil {
				return err
			}
		}
		if err := env.controller.Next(cmd.Context()); err != nil {
			return err
		}

		state := env.controller.State()
		fmt.Println(renderQuote(state.Current))

		if !addFavourite {
			return nil
		}
		if !env.controller.Favourite() {
			fmt.Println(styles.StatusInfo.Render("♥ Already in favourites"))
			return nil
		}
		if err := env.controller.Background(); err != nil {
			return err
		}
		fmt.Println(styles.StatusSuccess.Render(fmt.Sprintf("♥ Added to favourites (%d total)", len(env.controller.State().Favourites))))
		return nil
	},
}

func init() {
	randomCmd.Flags().BoolVarP(&addFavourite, "favourite", "f", false, "add the quote to your favourites")
}

func renderQuote(q data.Quote) string {
	body := lipgloss.JoinVertical(
		lipgloss.Left,
		styles.QuoteTextStyle.Render(q.Text()),
		styles.AuthorStyle.Render("— "+q.Author()),
	)
	if q.QuoteLink != "" {
		body = lipgloss.JoinVertical(lipgloss.Left, body, styles.MutedStyle.Render(q.QuoteLink))
	}
	return styles.QuoteCardStyle.Width(72).Render(body)
}
