package main

import (
	"log"
	"os"

	"github.com/spandigital/scaffold/internal/app"
)

func main() {
	code, err := app.Main(os.Args[1:], os.Stdout, os.Stderr)
	if err != nil {
		log.Fatalf("Error: %v", err)
	}
	os.Exit(code)
}
