package main

import (
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/storekeeper/internal/server"
	"github.com/dmitrijs2005/storekeeper/internal/server/config"
)

func main() {

	ctx := context.Background()
	cfg := config.LoadConfig(os.Args[1:])
	app, err := server.NewApp(ctx, cfg)

	if err != nil {
		log.Fatalf("%v", err)
	}

	app.Run(ctx)

}
