package commands

import (
	"fmt"
	"os"

	"github.com/battlesnakeio/snake/version"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:     "snake",
	Short:   "snake plays wrap-around snake in the terminal and serves the session endpoint",
	Version: version.Version,
	PersistentPreRun: func(*cobra.Command, []string) {
		lvl, err := log.ParseLevel(logLevel)
		if err != nil {
			log.WithField("level", logLevel).Warn("unknown log level, using info")
			lvl = log.InfoLevel
		}
		log.SetLevel(lvl)
	},
	Run: func(c *cobra.Command, args []string) {
		playCmd.Run(c, args)
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "prints the snake version",
	Run: func(*cobra.Command, []string) {
		fmt.Println(version.Version)
	},
}

var (
	logLevel = "info"
)

// Execute runs the root command
func Execute() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", logLevel, "log level, as one of: [debug, info, warn, error]")
	rootCmd.Flags().AddFlagSet(playCmd.Flags())

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(highscoreCmd)
	rootCmd.AddCommand(versionCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
