package cmd

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/spf13/cobra"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recently fetched quotes",
	Long:  "Display the quotes you have seen, newest first, in a formatted table",
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := setup(true)
		if err != nil {
			return err
		}
		defer env.Close()

		if env.history == nil {
			return fmt.Errorf("history database %s is unavailable", env.cfg.Storage.History)
		}

		entries, err := env.history.List(historyLimit)
		if err != nil {
			return err
		}

		if len(entries) == 0 {
			fmt.Println("📜 No quotes seen yet. Run 'quotes random' to fetch one.")
			return nil
		}

		total, err := env.history.Count()
		if err != nil {
			return err
		}

		columns := []table.Column{
			{Title: "Seen", Width: 19},
			{Title: "Quote", Width: 50},
			{Title: "Author", Width: 24},
		}

		rows := []table.Row{}
		for _, e := range entries {
			rows = append(rows, table.Row{
				e.FetchedAt.Local().Format("2006-01-02 15:04:05"),
				ansi.Truncate(e.Quote.Text(), 48, "…"),
				ansi.Truncate(e.Quote.Author(), 22, "…"),
			})
		}

		t := table.New(
			table.WithColumns(columns),
			table.WithRows(rows),
			table.WithFocused(false),
			table.WithHeight(len(rows)),
		)

		s := table.DefaultStyles()
		s.Header = s.Header.
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240")).
			BorderBottom(true).
			Bold(true)
		s.Selected = s.Selected.
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")).
			Bold(false)
		t.SetStyles(s)

		fmt.Printf("\n📜 History (%d of %d quotes)\n\n", len(entries), total)
		fmt.Println(t.View())
		return nil
	},
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "number of quotes to show (0 for all)")
}
