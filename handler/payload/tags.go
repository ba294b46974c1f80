package payload

import "github.com/inkwell/api/database"

type TagResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

func GetTagsResponse(tags []database.Tag) []TagResponse {
	data := make([]TagResponse, 0, len(tags))

	for _, tag := range tags {
		data = append(data, TagResponse{
			ID:   tag.UUID,
			Name: tag.Name,
			Slug: tag.Slug,
		})
	}

	return data
}
