package main

import (
	"context"
	"log/slog"
	baseHttp "net/http"
	"time"

	"github.com/inkwell/api/metal/kernel"
	"github.com/inkwell/api/pkg/endpoint"
	"github.com/inkwell/api/pkg/portal"
)

var app *kernel.App

func init() {
	validate := portal.GetDefaultValidator()

	environment, err := kernel.Ignite("./.env", validate)
	if err != nil {
		panic("Error loading the environment: " + err.Error())
	}

	if app, err = kernel.MakeApp(environment, validate); err != nil {
		panic("Error bootstrapping the application: " + err.Error())
	}
}

func main() {
	defer app.CloseDB()
	defer app.CloseLogs()

	app.Boot()
	app.GetDB().Ping()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := app.StartPruner(ctx); err != nil {
		panic("Error starting the sessions pruner: " + err.Error())
	}

	addr := app.GetEnv().Network.GetHostURL()

	server := &baseHttp.Server{
		Addr:              addr,
		Handler:           app.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	if err := endpoint.RunServer(addr, server); err != nil {
		slog.Error("Error running server", "error", err)
		panic("Error running server: " + err.Error())
	}
}
