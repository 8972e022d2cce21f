package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"mpass/internal/config"
)

// loadConfig reads --config when given, otherwise searches upwards from the
// working directory. MPASS_* variables apply on top in both cases.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, err := cmd.Root().PersistentFlags().GetString("config")
	if err != nil {
		return config.Config{}, fmt.Errorf("failed to get config flag: %w", err)
	}
	if path != "" {
		cfg, err := config.LoadFile(path)
		if err != nil {
			return config.Config{}, err
		}
		return config.ApplyEnv(cfg, ".")
	}
	wd, err := os.Getwd()
	if err != nil {
		return config.Config{}, err
	}
	return config.Load(wd)
}
