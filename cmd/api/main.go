package main

import (
	"log/slog"
	"os"

	"github.com/metinatakli/movies-api/internal/app"
)

func main() {
	err := app.Run(os.Args[1:])
	if err != nil {
		slog.Error("movies-api exited", "error", err)
		os.Exit(1)
	}
}
