// Package root contains the root command for the application
package root

import (
	"fmt"
	"sync"

	"fjacquet/extracto/internal/config"
	"fjacquet/extracto/internal/container"
	"fjacquet/extracto/internal/logging"

	"github.com/spf13/cobra"
)

// CommonFlags represents the flags that are common to multiple commands
type CommonFlags struct {
	Input    string
	Output   string
	Validate bool
}

var (
	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "extracto",
		Short: "A CLI tool to convert Bancolombia PDF statements to Excel.",
		Long: `extracto reads a Bancolombia account statement PDF, finds every
transaction in its text and writes them to a spreadsheet with the columns
Fecha, Tipo de transacción, Descripción and Valor.`,
		SilenceUsage:      true,
		PersistentPreRunE: initContainer,
		PersistentPostRun: closeContainer,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	// SharedFlags are accessible to all commands
	SharedFlags = CommonFlags{}

	// ConfigFile overrides the config.yaml search when set
	ConfigFile string

	// AppConfig and AppContainer are built before each command runs
	AppConfig    *config.Config
	AppContainer *container.Container

	containerOptions []container.Option
	initOnce         sync.Once
)

// Init initializes the root command and all flags. It is safe to call more
// than once.
func Init() {
	initOnce.Do(func() {
		Cmd.PersistentFlags().StringVarP(&SharedFlags.Input, "input", "i", "", "Input file (or directory for batch)")
		Cmd.PersistentFlags().StringVarP(&SharedFlags.Output, "output", "o", "", "Output file (or directory for batch)")
		Cmd.PersistentFlags().BoolVarP(&SharedFlags.Validate, "validate", "v", false, "Validate file format before conversion")
		Cmd.PersistentFlags().StringVar(&ConfigFile, "config", "", "Config file (default searches $HOME/.extracto, .extracto and .)")
	})
}

// SetContainerOptions sets options applied to every container built by the
// root command, replacing earlier ones.
func SetContainerOptions(opts ...container.Option) {
	containerOptions = opts
}

func initContainer(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig(ConfigFile)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	c, err := container.NewContainer(cfg, containerOptions...)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	AppConfig = cfg
	AppContainer = c
	return nil
}

func closeContainer(cmd *cobra.Command, args []string) {
	if AppContainer == nil {
		return
	}
	if err := AppContainer.Close(); err != nil {
		AppContainer.GetLogger().WithError(err).Warn("Failed to close container")
	}
}

// GetContainer returns the container built for the running command.
func GetContainer() *container.Container {
	return AppContainer
}

// GetConfig returns the configuration loaded for the running command.
func GetConfig() *config.Config {
	return AppConfig
}

// GetLogger returns the container logger, or a default one when no command
// has started yet.
func GetLogger() logging.Logger {
	if AppContainer != nil {
		return AppContainer.GetLogger()
	}
	return logging.NewLogrusAdapter("info", "text")
}

// InputFrom returns the --input flag, or the first positional argument when
// the flag is empty.
func InputFrom(args []string) string {
	if SharedFlags.Input != "" {
		return SharedFlags.Input
	}
	if len(args) > 0 {
		return args[0]
	}
	return ""
}
