/*
File    : go-gcode/cmd/gcode/cmd/version.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the go-gcode version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "go-gcode version %s\n", Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
