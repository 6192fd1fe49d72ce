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
			fmt.Println("\nScan cancelled.")
			os.Exit(130)
		}
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}
