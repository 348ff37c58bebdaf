package main

import (
	"log"

	"github.com/MrSnakeDoc/jumplink/internal/app"
)

func main() {
	if err := app.New().Run(); err != nil {
		log.Fatalf("❌ jumplink failed to start: %v", err)
	}
}
