// looper is a rotation pipe-loop puzzle for the terminal.
//
// Usage:
//
//	looper list                - List game modes
//	looper play [mode]         - Play a mode (default: looper)
//	looper menu                - Start menu to pick a mode interactively
//	looper generate            - Print a generated level
//	looper check <file>...     - Validate level files
//	looper scores [mode]       - Show high scores
//	looper history [mode]      - Show recent solves
//	looper serve               - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 30)
//	--seed <value>       - Set RNG seed for reproducible puzzles
//	--db <path>          - Set database path (default: ~/.looper/scores.db)
//	--config <path>      - Use a custom config YAML
//	--log-level <level>  - Override the configured log level
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagLogLevel   string
	flagLogFile    string
	flagDifficulty string
	flagTheme      string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "looper",
	Short: "Looper - Rotate tiles until every pipe closes",
	Long: `Looper is a rotation puzzle played in the terminal. Every tile holds a
piece of pipe; rotate the tiles until all pipes join into closed networks.

Available commands:
  list      - Show game modes
  play      - Play a mode directly
  menu      - Interactive mode picker
  generate  - Print a generated level
  check     - Validate level files
  scores    - View high scores
  history   - View recent solves
  serve     - Start SSH server for remote play

Examples:
  looper play
  looper play --difficulty hard
  looper play looper_pack --level 3
  looper generate --width 8 --height 6 --seed 42
  looper serve --ssh :2222`,
	SilenceUsage: true,
	Run:          runMenu,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.looper/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (rotated)")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Board preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagTheme, "theme", "", "Color theme: default, neon, mono")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

// fatal prints err and exits.
func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
