package pagination

import "math"

// Pagination holds the data for a single page along with all pagination
// metadata. It's generic and can be used for any data type.
type Pagination[T any] struct {
	Data       []T
	Page       int
	Limit      int
	Total      int64
	TotalPages int
}

func MakePagination[T any](data []T, paginate Paginate) *Pagination[T] {
	pSize := float64(paginate.Limit)
	if pSize <= 0 {
		pSize = 10
	}

	totalPages := int(
		math.Ceil(paginate.GetNumItemsAsFloat() / pSize),
	)

	return &Pagination[T]{
		Data:       data,
		Page:       paginate.Page,
		Limit:      paginate.Limit,
		Total:      paginate.GetNumItemsAsInt(),
		TotalPages: totalPages,
	}
}

// HydratePagination transforms a paginated result containing items of a
// source type (S) into a new result containing items of a destination type
// (D), preserving all pagination metadata.
func HydratePagination[S any, D any](source *Pagination[S], mapper func(S) D) *Pagination[D] {
	mappedData := make([]D, len(source.Data))

	for i, item := range source.Data {
		mappedData[i] = mapper(item)
	}

	return &Pagination[D]{
		Data:       mappedData,
		Page:       source.Page,
		Limit:      source.Limit,
		Total:      source.Total,
		TotalPages: source.TotalPages,
	}
}
