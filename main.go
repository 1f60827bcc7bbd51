package main

import (
	"os"

	"fjacquet/extracto/cmd/batch"
	configcmd "fjacquet/extracto/cmd/config"
	"fjacquet/extracto/cmd/convert"
	"fjacquet/extracto/cmd/root"
	"fjacquet/extracto/cmd/text"
	"fjacquet/extracto/internal/config"
	"fjacquet/extracto/internal/logging"
)

func init() {
	// .env first so LOG_LEVEL from it applies before anything logs
	config.LoadEnv()
	logging.SetAllLogLevels(config.LogLevelFromEnv())

	root.Init()

	root.Cmd.AddCommand(convert.Cmd)
	root.Cmd.AddCommand(batch.Cmd)
	root.Cmd.AddCommand(text.Cmd)
	root.Cmd.AddCommand(configcmd.Cmd)
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
