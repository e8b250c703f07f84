package main

import (
	"log"

	"github.com/openswim/swimrec/internal/app"
)

func main() {
	if err := app.New().Run(); err != nil {
		log.Fatalf("recordsd failed to start: %v", err)
	}
}
