package main

import (
	"context"
	"errors"
	"fmt"
	"os"
)

func main() {
	cmd := newRootCommand()
	if err := cmd.Execute(); err != nil {
		if errors.Is(err, context.Canceled) {
			fmt.Println("\nInterrupted, stopping.")
			os.Exit(130)
		}
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}
