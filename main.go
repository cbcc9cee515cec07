// obstaclecourse is a single-level tile platformer: guide the ninja past the
// lava to the trophy.
//
// Usage:
//
//	obstaclecourse [play]                  - Play the embedded level
//	obstaclecourse play --level map.json   - Play a level file
//	obstaclecourse autotile <in.json>      - Recompute stone tile variants
//	obstaclecourse inspect <in.json>       - Summarize a level file
//
// Global flags:
//
//	--log-level <level>  - debug, info, warn or error (default: info)
//	--log-file <path>    - Write logs to a rotating file instead of stderr
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/milk9111/obstaclecourse/logging"
)

var (
	flagLogLevel string
	flagLogFile  string
)

// logger is set up by rootCmd before any subcommand runs.
var (
	logger    *log.Logger
	logCloser io.Closer
)

func main() {
	err := rootCmd.Execute()
	if logCloser != nil {
		_ = logCloser.Close()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "obstaclecourse",
	Short: "Ninja Obstacle Course - a tile platformer",
	Long: `Ninja Obstacle Course: run and jump past the lava to reach the trophy.

Controls:
  Left/Right or A/D  - Move
  Space              - Jump
  Y / N              - Play again / quit after the level ends

Running without a subcommand is the same as "obstaclecourse play".`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		l, closer, err := logging.New(logging.Options{
			Level:  flagLogLevel,
			File:   flagLogFile,
			Prefix: "obstaclecourse",
		})
		if err != nil {
			return err
		}
		logger, logCloser = l, closer
		return nil
	},
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this rotating file instead of stderr")

	addPlayFlags(rootCmd)
	addPlayFlags(playCmd)

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(autotileCmd)
	rootCmd.AddCommand(inspectCmd)
}
