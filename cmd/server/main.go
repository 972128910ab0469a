package main

import (
	"os"

	"github.com/Sellaris/chat-frontend-journey/internal/app"
)

// @title        DB Chat API
// @version      1.0
// @description  Retrieval-augmented chat backend.
// @BasePath     /api
func main() {
	os.Exit(app.Run())
}
