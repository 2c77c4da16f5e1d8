/*
File    : go-gcode/cmd/gcode/main.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package main

import (
	"os"

	"github.com/akashmaji946/go-gcode/cmd/gcode/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
