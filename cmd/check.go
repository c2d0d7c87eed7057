package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/exprscript/lang/internal/pattern"
)

type patternFile struct {
	Patterns []string `yaml:"patterns"`
}

var checkCmd = &cobra.Command{
	Use:   "check <patterns.yaml>",
	Short: "Validate a batch of pattern strings without a live registry",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		raw, err := os.ReadFile(args[0])
		exitOnError(err)

		var pf patternFile
		exitOnError(yaml.Unmarshal(raw, &pf))

		pluralize := configuredPluralize(loadConfig())

		bar := progressbar.NewOptions(len(pf.Patterns),
			progressbar.OptionSetDescription(args[0]),
			progressbar.OptionEnableColorCodes(true),
			progressbar.OptionSetWidth(40),
			progressbar.OptionShowCount(),
			progressbar.OptionSetTheme(progressbar.Theme{
				Saucer:        "[green]=[reset]",
				SaucerHead:    "[green]>[reset]",
				SaucerPadding: " ",
				BarStart:      "[",
				BarEnd:        "]",
			}))
		failures := 0
		for _, p := range pf.Patterns {
			if err := pattern.Validate(p, pluralize); err != nil {
				fmt.Println()
				color.New(color.FgRed, color.Bold).Printf("invalid: %q: %s\n", p, err)
				failures++
			}
			_ = bar.Add(1)
		}
		fmt.Println()

		if failures == 0 {
			color.New(color.FgGreen, color.Bold).Printf("all %d patterns are well-formed\n", len(pf.Patterns))
			return
		}
		color.New(color.FgRed, color.Bold).Printf("%d of %d patterns are malformed\n", failures, len(pf.Patterns))
		os.Exit(1)
	},
}
