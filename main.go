package main

import (
	"fmt"
	"os"

	"github.com/arcanaland/vadar/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "[ERROR]", err)
		os.Exit(1)
	}
}
