package handler

import (
	"encoding/json"

	baseHttp "net/http"

	"github.com/inkwell/api/database"
	"github.com/inkwell/api/database/repository"
	"github.com/inkwell/api/handler/payload"
	"github.com/inkwell/api/pkg/auth"
	"github.com/inkwell/api/pkg/endpoint"
	"github.com/inkwell/api/pkg/gorm"
	"github.com/inkwell/api/pkg/middleware"
	"github.com/inkwell/api/pkg/portal"
)

type CategoriesHandler struct {
	Categories repository.Categories
}

func MakeCategoriesHandler(categories repository.Categories) CategoriesHandler {
	return CategoriesHandler{
		Categories: categories,
	}
}

func (h *CategoriesHandler) Index(w baseHttp.ResponseWriter, r *baseHttp.Request) *endpoint.ApiError {
	items, err := h.Categories.GetAllWithCounts()
	if err != nil {
		return endpoint.LogInternalError("Error getting categories", err)
	}

	resp := payload.CategoriesIndexResponse{
		Categories: payload.GetCategoryCountsResponse(items),
	}

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		return endpoint.LogInternalError("There was an issue processing the response. Please, try later.", err)
	}

	return nil
}

func (h *CategoriesHandler) Store(w baseHttp.ResponseWriter, r *baseHttp.Request) *endpoint.ApiError {
	defer portal.CloseWithLog(r.Body)

	caller := middleware.GetCaller(r)

	if err := auth.CanCreateCategory(caller); err != nil {
		return policyError(err)
	}

	req, err := endpoint.ParseRequestBody[payload.StoreCategoryRequest](r)
	if err != nil {
		return endpoint.BadRequestError("Invalid request body")
	}

	validator := portal.GetDefaultValidator()
	if rejects, _ := validator.Rejects(req); rejects {
		return &endpoint.ApiError{
			Message: "Name is required",
			Status:  baseHttp.StatusBadRequest,
			Data:    map[string]any{"errors": validator.GetErrors()},
		}
	}

	category, err := h.Categories.Create(database.CategoriesAttrs{
		Name:        req.Name,
		Slug:        portal.NewStringable(req.Name).Slug(),
		Description: req.Description,
	})

	if err != nil {
		if gorm.IsDuplicatedKey(err) {
			return endpoint.ConflictError("Category already exists")
		}

		return endpoint.LogInternalError("Error creating category", err)
	}

	w.WriteHeader(baseHttp.StatusCreated)

	resp := payload.CategoryCreatedResponse{
		ID:      category.UUID,
		Name:    category.Name,
		Slug:    category.Slug,
		Message: "Category created successfully",
	}

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		return endpoint.LogInternalError("There was an issue processing the response. Please, try later.", err)
	}

	return nil
}
