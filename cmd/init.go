package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/exprscript/lang/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Scaffold a starter .exprscript.yaml",
	Run: func(cmd *cobra.Command, args []string) {
		path := cfgFile
		if path == "" {
			path = ".exprscript.yaml"
		}
		exitOnError(config.Default().Save(path))
		fmt.Printf("Configuration file created/updated: %s\n", path)
	},
}
