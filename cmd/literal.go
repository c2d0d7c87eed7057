package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/exprscript/lang/internal/diag"
	"github.com/exprscript/lang/internal/diagfmt"
)

var literalCmd = &cobra.Command{
	Use:   "literal <input>...",
	Short: "Split input into a conjunction-aware list of literal parts",
	Run: func(cmd *cobra.Command, args []string) {
		input := strings.Join(args, " ")
		driver := newDriver(loadConfig())
		sink := diag.NewRoot(logger)

		lit := driver.ParseLiteral(input, sink)
		sink.PrintLog()
		fmt.Println(diagfmt.Literal(lit))
	},
}
