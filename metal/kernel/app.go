package kernel

import (
	"context"
	"fmt"
	baseHttp "net/http"

	"github.com/inkwell/api/database"
	"github.com/inkwell/api/database/repository"
	"github.com/inkwell/api/metal/env"
	"github.com/inkwell/api/pkg/auth"
	"github.com/inkwell/api/pkg/endpoint"
	"github.com/inkwell/api/pkg/llogs"
	"github.com/inkwell/api/pkg/middleware"
	"github.com/inkwell/api/pkg/portal"
	"github.com/inkwell/api/pkg/scheduler"
)

type App struct {
	router    *Router
	sentry    *portal.Sentry
	logs      llogs.Driver
	validator *portal.Validator
	env       *env.Environment
	db        *database.Connection
	pruner    *scheduler.Scheduler
}

func MakeApp(env *env.Environment, validator *portal.Validator) (*App, error) {
	jwtHandler, err := auth.MakeJWTHandler(
		[]byte(env.App.MasterKey),
		auth.SessionTTL,
	)

	if err != nil {
		return nil, fmt.Errorf("bootstrapping error > could not create jwt handler: %w", err)
	}

	db := MakeDbConnection(env)

	users := repository.Users{DB: db}
	sessions := repository.Sessions{DB: db}

	app := App{
		env:       env,
		validator: validator,
		logs:      MakeLogs(env),
		sentry:    MakeSentry(env),
		db:        db,
		pruner:    MakeSessionsScheduler(env, sessions),
	}

	router := Router{
		Env: env,
		Db:  db,
		JWT: jwtHandler,
		Mux: baseHttp.NewServeMux(),
		Pipeline: middleware.Pipeline{
			Auth: middleware.MakeAuthMiddleware(jwtHandler, users),
		},
	}

	app.SetRouter(&router)

	return &app, nil
}

func (a *App) Boot() {
	if a == nil || a.router == nil {
		panic("bootstrapping error > Invalid setup")
	}

	router := a.router

	router.Auth()
	router.Posts()
	router.Categories()
	router.Comments()
}

// StartPruner kicks off the expired-session cron job. It stops when the
// context is cancelled.
func (a *App) StartPruner(ctx context.Context) error {
	return a.pruner.Start(ctx)
}

// Handler wraps the mux with CORS (outside production) and Sentry
// instrumentation.
func (a *App) Handler() baseHttp.Handler {
	return endpoint.NewServerHandler(endpoint.ServerHandlerConfig{
		Mux:          a.router.Mux,
		IsProduction: a.env.App.IsProduction(),
		DevHost:      a.env.Network.DevHost,
		Wrap:         a.sentry.Handler.Handle,
	})
}

func (a *App) SetRouter(router *Router) {
	a.router = router
}

func (a *App) GetMux() *baseHttp.ServeMux {
	return a.router.Mux
}

func (a *App) GetEnv() *env.Environment {
	return a.env
}

func (a *App) GetDB() *database.Connection {
	return a.db
}

func (a *App) CloseDB() {
	a.db.Close()
}

func (a *App) CloseLogs() {
	a.logs.Close()
}
