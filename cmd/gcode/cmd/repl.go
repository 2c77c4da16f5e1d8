/*
File    : go-gcode/cmd/gcode/cmd/repl.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package cmd

import (
	"github.com/akashmaji946/go-gcode/repl"
	"github.com/spf13/cobra"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive G-code session",
	Long: `Start an interactive session: one G-code statement per line,
echoed back as its syntax tree. History and line editing are available.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		r := repl.NewRepl(
			"go-gcode",
			Version,
			"----------------------------------------",
			"gcode >>> ",
		)
		r.Start(cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(replCmd)
}
