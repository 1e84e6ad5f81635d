package cmd

import (
	"context"
	"os"
	"os/signal"

	"github.com/kerbaras/quotes/pkg/app"
	"github.com/spf13/cobra"
)

var (
	configPath string
	logLevel   string
)

var rootCmd = &cobra.Command{
	Use:   "quotes",
	Short: "A random quote, and the ones you liked",
	Long:  "Fetch random quotes, keep your favourites and export them, from a TUI or the command line",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Launch TUI by default; the terminal belongs to the UI so logs only go to file
		env, err := setup(false)
		if err != nil {
			return err
		}
		defer env.Close()

		a := app.NewApp(env.controller)
		if err := a.Run(cmd.Context()); err != nil {
			env.logger.Error("tui exited", "err", err)
			return err
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default $XDG_CONFIG_HOME/quotes/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn or error")

	// Add all subcommands
	rootCmd.AddCommand(randomCmd)
	rootCmd.AddCommand(favouritesCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(exportCmd)
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
