package main

import (
	"context"
	"os"
)

func main() {
	if err := ExecuteWithFang(context.Background()); err != nil {
		// Fang has already rendered the error
		os.Exit(1)
	}
}
