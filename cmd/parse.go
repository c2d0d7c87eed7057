package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/exprscript/lang/internal/demo"
	"github.com/exprscript/lang/internal/diag"
	"github.com/exprscript/lang/internal/diagfmt"
)

var allowLiteralFallback bool

var parseCmd = &cobra.Command{
	Use:   "parse <input>...",
	Short: "Parse input against the demo expression registry",
	Run: func(cmd *cobra.Command, args []string) {
		input := strings.Join(args, " ")
		cfg := loadConfig()
		driver := newDriver(cfg)
		sink := diag.NewRoot(logger)

		defaultError := fmt.Sprintf("%q could not be understood", input)
		v, err := driver.ParseExpression(input, demo.Registry{}.Expressions(), allowLiteralFallback, defaultError, sink)
		if err != nil {
			fmt.Println(diagfmt.Error(err))
			return
		}
		fmt.Println(diagfmt.Result(v))
	},
}

func init() {
	parseCmd.Flags().BoolVar(&allowLiteralFallback, "literal-fallback", false, "fall back to an unparsed literal instead of failing when nothing matches")
}
