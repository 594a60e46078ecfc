package main

import (
	"log"

	"github.com/editkit/recently/internal/app"
)

func main() {
	if err := app.New().Run(); err != nil {
		log.Fatalf("recently failed: %v", err)
	}
}
