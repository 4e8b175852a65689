package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/looper/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration Looper would use, after --config, --difficulty
and the log flags are applied. The output is valid YAML and can be saved
as ~/.looper/configs/looper.yaml.

Examples:
  looper config
  looper config --difficulty hard > ~/.looper/configs/looper.yaml`,
	Run: runConfig,
}

func runConfig(_ *cobra.Command, _ []string) {
	cfg, source, err := loadConfig()
	if err != nil {
		fatal("%v", err)
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		fatal("%v", err)
	}

	fmt.Fprintf(os.Stderr, "# source: %s\n", source)
	os.Stdout.Write(data)
}
