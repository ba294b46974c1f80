package kernel

import (
	baseHttp "net/http"

	"github.com/inkwell/api/database"
	"github.com/inkwell/api/database/repository"
	"github.com/inkwell/api/handler"
	"github.com/inkwell/api/metal/env"
	"github.com/inkwell/api/pkg/auth"
	"github.com/inkwell/api/pkg/endpoint"
	"github.com/inkwell/api/pkg/middleware"
)

type Router struct {
	Env      *env.Environment
	Mux      *baseHttp.ServeMux
	Pipeline middleware.Pipeline
	Db       *database.Connection
	JWT      auth.JWTHandler
}

// PublicPipelineFor serves anonymous traffic but still resolves the caller
// when a valid token rides along, so read visibility can widen.
func (r *Router) PublicPipelineFor(apiHandler endpoint.ApiHandler) baseHttp.HandlerFunc {
	return endpoint.NewApiHandler(
		r.Pipeline.Chain(
			apiHandler,
			r.Pipeline.Auth.Optional,
		),
	)
}

// PipelineFor rejects requests without a valid identity before the handler
// runs.
func (r *Router) PipelineFor(apiHandler endpoint.ApiHandler) baseHttp.HandlerFunc {
	return endpoint.NewApiHandler(
		r.Pipeline.Chain(
			apiHandler,
			r.Pipeline.Auth.Required,
		),
	)
}

func (r *Router) Auth() {
	users := repository.Users{DB: r.Db}
	sessions := repository.Sessions{DB: r.Db}

	abstract := handler.MakeAuthHandler(users, sessions, r.JWT, r.Env.App.IsProduction())

	login := r.PublicPipelineFor(abstract.Login)
	me := r.PipelineFor(abstract.Me)

	r.Mux.HandleFunc("POST /api/auth/login", login)
	r.Mux.HandleFunc("GET /api/auth/me", me)
}

func (r *Router) Posts() {
	posts := repository.MakePostsRepository(r.Db)
	comments := repository.Comments{DB: r.Db}

	abstract := handler.MakePostsHandler(posts, comments)

	index := r.PublicPipelineFor(abstract.Index)
	store := r.PipelineFor(abstract.Store)
	show := r.PublicPipelineFor(abstract.Show)
	update := r.PipelineFor(abstract.Update)
	remove := r.PipelineFor(abstract.Delete)

	r.Mux.HandleFunc("GET /api/blog/posts", index)
	r.Mux.HandleFunc("POST /api/blog/posts", store)
	r.Mux.HandleFunc("GET /api/blog/{id}", show)
	r.Mux.HandleFunc("PUT /api/blog/{id}", update)
	r.Mux.HandleFunc("DELETE /api/blog/{id}", remove)
}

func (r *Router) Categories() {
	categories := repository.Categories{DB: r.Db}

	abstract := handler.MakeCategoriesHandler(categories)

	index := r.PublicPipelineFor(abstract.Index)
	store := r.PipelineFor(abstract.Store)

	r.Mux.HandleFunc("GET /api/blog/categories", index)
	r.Mux.HandleFunc("POST /api/blog/categories", store)
}

func (r *Router) Comments() {
	comments := repository.Comments{DB: r.Db}
	posts := repository.MakePostsRepository(r.Db)
	settings := repository.Settings{DB: r.Db}

	abstract := handler.MakeCommentsHandler(comments, posts, settings)

	index := r.PublicPipelineFor(abstract.Index)
	store := r.PublicPipelineFor(abstract.Store)

	r.Mux.HandleFunc("GET /api/blog/comment", index)
	r.Mux.HandleFunc("POST /api/blog/comment", store)
}
