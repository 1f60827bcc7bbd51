// Package config prints the effective configuration
package config

import (
	"fmt"

	"fjacquet/extracto/cmd/root"
	appconfig "fjacquet/extracto/internal/config"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var defaults bool

// Cmd represents the config command
var Cmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration as YAML",
	Long: `Print the configuration after defaults, config.yaml and EXTRACTO_*
environment variables are applied. The output is a valid config.yaml.`,
	Args: cobra.NoArgs,
	RunE: configFunc,
}

func init() {
	Cmd.Flags().BoolVar(&defaults, "defaults", false, "Print the built-in defaults instead")
}

func configFunc(cmd *cobra.Command, args []string) error {
	cfg := root.GetConfig()
	if defaults || cfg == nil {
		cfg = appconfig.Default()
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal configuration: %w", err)
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
