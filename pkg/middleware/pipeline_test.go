package middleware_test

import (
	baseHttp "net/http"
	"net/http/httptest"
	"testing"

	"github.com/inkwell/api/pkg/endpoint"
	"github.com/inkwell/api/pkg/middleware"
)

func TestChainRunsMiddlewaresInOrder(t *testing.T) {
	var order []string

	tag := func(name string) endpoint.Middleware {
		return func(next endpoint.ApiHandler) endpoint.ApiHandler {
			return func(w baseHttp.ResponseWriter, r *baseHttp.Request) *endpoint.ApiError {
				order = append(order, name)

				return next(w, r)
			}
		}
	}

	handler := func(w baseHttp.ResponseWriter, r *baseHttp.Request) *endpoint.ApiError {
		order = append(order, "handler")

		return nil
	}

	pipeline := middleware.Pipeline{}
	chained := pipeline.Chain(handler, tag("first"), tag("second"))

	req := httptest.NewRequest("GET", "/", nil)
	if apiErr := chained(httptest.NewRecorder(), req); apiErr != nil {
		t.Fatalf("unexpected error: %+v", apiErr)
	}

	if len(order) != 3 || order[0] != "first" || order[1] != "second" || order[2] != "handler" {
		t.Fatalf("unexpected order: %v", order)
	}
}

func TestChainStopsOnError(t *testing.T) {
	blocker := func(next endpoint.ApiHandler) endpoint.ApiHandler {
		return func(w baseHttp.ResponseWriter, r *baseHttp.Request) *endpoint.ApiError {
			return endpoint.UnauthorizedError("nope")
		}
	}

	handler := func(w baseHttp.ResponseWriter, r *baseHttp.Request) *endpoint.ApiError {
		t.Fatalf("handler must not run")

		return nil
	}

	pipeline := middleware.Pipeline{}
	chained := pipeline.Chain(handler, blocker)

	req := httptest.NewRequest("GET", "/", nil)
	apiErr := chained(httptest.NewRecorder(), req)

	if apiErr == nil || apiErr.Status != baseHttp.StatusUnauthorized {
		t.Fatalf("expected the blocker's error, got %+v", apiErr)
	}
}
