package payload

import (
	"github.com/inkwell/api/database"
	"github.com/inkwell/api/database/repository"
)

type StoreCategoryRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
}

type CategoryResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description,omitempty"`
}

// CategoryCountResponse is the public listing row: a category plus its
// published-post total.
type CategoryCountResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	PostCount   int64  `json:"post_count"`
}

type CategoriesIndexResponse struct {
	Categories []CategoryCountResponse `json:"categories"`
}

type CategoryCreatedResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Slug    string `json:"slug"`
	Message string `json:"message"`
}

func GetCategoriesResponse(categories []database.Category) []CategoryResponse {
	data := make([]CategoryResponse, 0, len(categories))

	for _, category := range categories {
		data = append(data, CategoryResponse{
			ID:          category.UUID,
			Name:        category.Name,
			Slug:        category.Slug,
			Description: category.Description,
		})
	}

	return data
}

func GetCategoryCountsResponse(items []repository.CategoryCount) []CategoryCountResponse {
	data := make([]CategoryCountResponse, 0, len(items))

	for _, item := range items {
		data = append(data, CategoryCountResponse{
			ID:          item.UUID,
			Name:        item.Name,
			Slug:        item.Slug,
			Description: item.Description,
			PostCount:   item.PostCount,
		})
	}

	return data
}
