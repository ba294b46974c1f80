package handler

import (
	"encoding/json"
	"strings"

	baseHttp "net/http"

	"github.com/inkwell/api/database"
	"github.com/inkwell/api/database/repository"
	"github.com/inkwell/api/handler/payload"
	"github.com/inkwell/api/pkg/endpoint"
	"github.com/inkwell/api/pkg/middleware"
	"github.com/inkwell/api/pkg/portal"
)

type CommentsHandler struct {
	Comments repository.Comments
	Posts    repository.Posts
	Settings repository.Settings
}

func MakeCommentsHandler(comments repository.Comments, posts repository.Posts, settings repository.Settings) CommentsHandler {
	return CommentsHandler{
		Comments: comments,
		Posts:    posts,
		Settings: settings,
	}
}

// Index lists comment threads, scoped to a post when post_id is supplied and
// across all posts otherwise (the moderation dashboard view). With parent_id
// it lists that comment's direct replies instead, never both at once.
func (h *CommentsHandler) Index(w baseHttp.ResponseWriter, r *baseHttp.Request) *endpoint.ApiError {
	caller := middleware.GetCaller(r)
	query := r.URL.Query()

	var post *database.Post

	if postID := strings.TrimSpace(query.Get("post_id")); postID != "" {
		if post = h.Posts.GetVisible(postID, caller); post == nil {
			return endpoint.NotFound("Post not found")
		}
	}

	status := strings.TrimSpace(query.Get("status"))

	var comments []database.Comment
	var err error

	if parentID := strings.TrimSpace(query.Get("parent_id")); parentID != "" {
		parent := h.Comments.FindByUUID(parentID)
		if parent == nil || (post != nil && parent.PostID != post.ID) {
			return endpoint.NotFound("Comment not found")
		}

		comments, err = h.Comments.ListReplies(parent, caller, status)
	} else {
		comments, err = h.Comments.ListThreads(post, caller, status)
	}

	if err != nil {
		return endpoint.LogInternalError("Error getting comments", err)
	}

	resp := payload.CommentsIndexResponse{
		Comments: payload.GetCommentsResponse(comments),
	}

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		return endpoint.LogInternalError("There was an issue processing the response. Please, try later.", err)
	}

	return nil
}

func (h *CommentsHandler) Store(w baseHttp.ResponseWriter, r *baseHttp.Request) *endpoint.ApiError {
	defer portal.CloseWithLog(r.Body)

	caller := middleware.GetCaller(r)

	req, err := endpoint.ParseRequestBody[payload.StoreCommentRequest](r)
	if err != nil {
		return endpoint.BadRequestError("Invalid request body")
	}

	validator := portal.GetDefaultValidator()
	if rejects, _ := validator.Rejects(req); rejects {
		return &endpoint.ApiError{
			Message: "post_id and content are required",
			Status:  baseHttp.StatusBadRequest,
			Data:    map[string]any{"errors": validator.GetErrors()},
		}
	}

	// Comments only land on published posts, drafts stay silent even for
	// their owner.
	post := h.Posts.FindByUUID(req.PostID)
	if post == nil || !post.IsPublished() {
		return endpoint.NotFound("Post not found")
	}

	var parentID *uint64

	if reqParent := strings.TrimSpace(req.ParentID); reqParent != "" {
		parent := h.Comments.FindParent(post, reqParent)
		if parent == nil {
			return endpoint.NotFound("Parent comment not found")
		}

		parentID = &parent.ID
	}

	attrs := database.CommentsAttrs{
		PostID:   post.ID,
		Content:  req.Content,
		ParentID: parentID,
	}

	if caller.IsAnonymous() {
		if strings.TrimSpace(req.AuthorName) == "" || strings.TrimSpace(req.AuthorEmail) == "" {
			return endpoint.BadRequestError("Name and email are required for guest comments")
		}

		attrs.AuthorName = req.AuthorName
		attrs.AuthorEmail = req.AuthorEmail
		attrs.Status = database.CommentApproved

		if h.Settings.RequiresCommentApproval() {
			attrs.Status = database.CommentPending
		}
	} else {
		attrs.UserID = &caller.ID
		attrs.AuthorName = caller.Name
		attrs.AuthorEmail = caller.Email
		attrs.Status = database.CommentApproved
	}

	comment, err := h.Comments.Create(attrs)
	if err != nil {
		return endpoint.LogInternalError("Error creating comment", err)
	}

	w.WriteHeader(baseHttp.StatusCreated)

	message := "Comment added successfully"
	if comment.Status == database.CommentPending {
		message = "Comment submitted for approval"
	}

	resp := payload.CommentCreatedResponse{
		ID:      comment.UUID,
		Status:  comment.Status,
		Message: message,
	}

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		return endpoint.LogInternalError("There was an issue processing the response. Please, try later.", err)
	}

	return nil
}
