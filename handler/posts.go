package handler

import (
	"encoding/json"
	"errors"
	"log/slog"

	baseHttp "net/http"

	"github.com/inkwell/api/database"
	"github.com/inkwell/api/database/repository"
	"github.com/inkwell/api/handler/paginate"
	"github.com/inkwell/api/handler/payload"
	"github.com/inkwell/api/pkg/auth"
	"github.com/inkwell/api/pkg/endpoint"
	"github.com/inkwell/api/pkg/middleware"
	"github.com/inkwell/api/pkg/portal"
)

// DefaultPostsPageSize bounds unpaginated listing requests.
const DefaultPostsPageSize = 10

// ExcerptLength is the number of content runes used when the client sends no
// excerpt of its own.
const ExcerptLength = 200

type PostsHandler struct {
	Posts    repository.Posts
	Comments repository.Comments
}

func MakePostsHandler(posts repository.Posts, comments repository.Comments) PostsHandler {
	return PostsHandler{
		Posts:    posts,
		Comments: comments,
	}
}

// policyError translates a policy outcome into its HTTP shape. Unauthenticated
// always wins over forbidden.
func policyError(err error) *endpoint.ApiError {
	switch {
	case errors.Is(err, auth.ErrUnauthenticated):
		return endpoint.UnauthorizedError("Authentication required")
	case errors.Is(err, auth.ErrForbidden):
		return endpoint.ForbiddenError("Insufficient permissions")
	default:
		return endpoint.LogInternalError("could not authorise request", err)
	}
}

func (h *PostsHandler) Index(w baseHttp.ResponseWriter, r *baseHttp.Request) *endpoint.ApiError {
	caller := middleware.GetCaller(r)
	query := r.URL.Query()

	result, err := h.Posts.GetPage(
		paginate.MakeFrom(query, DefaultPostsPageSize),
		payload.GetPostFiltersFrom(query),
		caller,
	)

	if err != nil {
		return endpoint.LogInternalError("Error getting posts", err)
	}

	postIDs := make([]uint64, 0, len(result.Data))
	for _, post := range result.Data {
		postIDs = append(postIDs, post.ID)
	}

	counts, err := h.Comments.CountApproved(postIDs)
	if err != nil {
		return endpoint.LogInternalError("Error counting comments", err)
	}

	posts := make([]payload.PostResponse, 0, len(result.Data))
	for _, post := range result.Data {
		posts = append(posts, payload.GetPostResponse(post, counts[post.ID]))
	}

	resp := payload.PostsIndexResponse{
		Posts: posts,
		Pagination: payload.PaginationResponse{
			Page:  result.Page,
			Limit: result.Limit,
			Total: result.Total,
			Pages: result.TotalPages,
		},
	}

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		return endpoint.LogInternalError("There was an issue processing the response. Please, try later.", err)
	}

	return nil
}

func (h *PostsHandler) Store(w baseHttp.ResponseWriter, r *baseHttp.Request) *endpoint.ApiError {
	defer portal.CloseWithLog(r.Body)

	caller := middleware.GetCaller(r)
	if caller.IsAnonymous() {
		return endpoint.UnauthorizedError("Authentication required")
	}

	req, err := endpoint.ParseRequestBody[payload.StorePostRequest](r)
	if err != nil {
		return endpoint.BadRequestError("Invalid request body")
	}

	validator := portal.GetDefaultValidator()
	if rejects, _ := validator.Rejects(req); rejects {
		return &endpoint.ApiError{
			Message: "Title and content are required",
			Status:  baseHttp.StatusBadRequest,
			Data:    map[string]any{"errors": validator.GetErrors()},
		}
	}

	excerpt := req.Excerpt
	if excerpt == "" {
		excerpt = portal.Excerpt(req.Content, ExcerptLength)
	}

	post, err := h.Posts.Create(database.PostsAttrs{
		AuthorID:      caller.ID,
		Title:         req.Title,
		Excerpt:       excerpt,
		Content:       req.Content,
		Status:        req.Status,
		Featured:      req.Featured,
		CategoryUUIDs: req.CategoryIDs,
		TagNames:      req.TagNames,
	})

	if err != nil {
		return endpoint.LogInternalError("Error creating post", err)
	}

	w.WriteHeader(baseHttp.StatusCreated)

	resp := payload.PostMutatedResponse{
		ID:      post.UUID,
		Slug:    post.Slug,
		Message: "Post created successfully",
	}

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		return endpoint.LogInternalError("There was an issue processing the response. Please, try later.", err)
	}

	return nil
}

func (h *PostsHandler) Show(w baseHttp.ResponseWriter, r *baseHttp.Request) *endpoint.ApiError {
	caller := middleware.GetCaller(r)

	post := h.Posts.GetVisible(payload.GetPostIDFrom(r), caller)
	if post == nil {
		return endpoint.NotFound("Post not found")
	}

	if post.IsPublished() {
		if err := h.Posts.IncrementViews(post); err != nil {
			slog.Error("failed to count post view", "err", err)
		} else {
			post.ViewCount++
		}
	}

	counts, err := h.Comments.CountApproved([]uint64{post.ID})
	if err != nil {
		return endpoint.LogInternalError("Error counting comments", err)
	}

	if err := json.NewEncoder(w).Encode(payload.GetPostResponse(*post, counts[post.ID])); err != nil {
		return endpoint.LogInternalError("There was an issue processing the response. Please, try later.", err)
	}

	return nil
}

func (h *PostsHandler) Update(w baseHttp.ResponseWriter, r *baseHttp.Request) *endpoint.ApiError {
	defer portal.CloseWithLog(r.Body)

	caller := middleware.GetCaller(r)

	post := h.Posts.FindByUUID(payload.GetPostIDFrom(r))
	if post == nil {
		return endpoint.NotFound("Post not found")
	}

	if err := auth.CanMutatePost(caller, post.AuthorID); err != nil {
		return policyError(err)
	}

	req, err := endpoint.ParseRequestBody[payload.UpdatePostRequest](r)
	if err != nil {
		return endpoint.BadRequestError("Invalid request body")
	}

	validator := portal.GetDefaultValidator()
	if rejects, _ := validator.Rejects(req); rejects {
		return &endpoint.ApiError{
			Message: "Invalid post fields",
			Status:  baseHttp.StatusBadRequest,
			Data:    map[string]any{"errors": validator.GetErrors()},
		}
	}

	changed, err := h.Posts.Update(post, database.PostUpdateAttrs{
		Title:         req.Title,
		Content:       req.Content,
		Excerpt:       req.Excerpt,
		Status:        req.Status,
		Featured:      req.Featured,
		CategoryUUIDs: req.CategoryIDs,
		TagNames:      req.TagNames,
	})

	if err != nil {
		return endpoint.LogInternalError("Error updating post", err)
	}

	if !changed {
		if err := json.NewEncoder(w).Encode(payload.MessageResponse{Message: "No changes made"}); err != nil {
			return endpoint.LogInternalError("There was an issue processing the response. Please, try later.", err)
		}

		return nil
	}

	// Reload to pick up the regenerated slug and timestamps.
	if fresh := h.Posts.FindByUUID(post.UUID); fresh != nil {
		post = fresh
	}

	resp := payload.PostMutatedResponse{
		ID:      post.UUID,
		Slug:    post.Slug,
		Message: "Post updated successfully",
	}

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		return endpoint.LogInternalError("There was an issue processing the response. Please, try later.", err)
	}

	return nil
}

func (h *PostsHandler) Delete(w baseHttp.ResponseWriter, r *baseHttp.Request) *endpoint.ApiError {
	caller := middleware.GetCaller(r)

	post := h.Posts.FindByUUID(payload.GetPostIDFrom(r))
	if post == nil {
		return endpoint.NotFound("Post not found")
	}

	if err := auth.CanMutatePost(caller, post.AuthorID); err != nil {
		return policyError(err)
	}

	if err := h.Posts.Delete(post); err != nil {
		return endpoint.LogInternalError("Error deleting post", err)
	}

	if err := json.NewEncoder(w).Encode(payload.MessageResponse{Message: "Post deleted successfully"}); err != nil {
		return endpoint.LogInternalError("There was an issue processing the response. Please, try later.", err)
	}

	return nil
}
