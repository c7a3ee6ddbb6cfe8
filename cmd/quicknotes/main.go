package main

import (
	"context"
	"log"

	"github.com/Jai71/quicknotes/internal/quicknotes/cli"
	"github.com/Jai71/quicknotes/internal/quicknotes/config"
)

func main() {
	ctx := context.Background()

	cfg := config.LoadConfig()
	app, err := cli.NewApp(ctx, cfg)
	if err != nil {
		log.Fatalf("%v", err)
	}

	if err := app.Run(ctx); err != nil {
		log.Fatalf("%v", err)
	}
}
