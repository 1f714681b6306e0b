package main

import (
	"fmt"
	"os"

	"turboscribe/cmd/turboscribe/cmd"
	"turboscribe/internal/config"
)

func main() {
	if err := config.LoadEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "warning: %v\n", err)
	}

	cmd.Execute()
}
