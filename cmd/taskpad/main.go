package main

import (
	"fmt"
	"os"

	"taskpad/internal/commands"
)

func main() {
	if err := commands.New().Execute(); err != nil {
		fmt.Printf("taskpad: %v\n", err)
		os.Exit(1)
	}
}
