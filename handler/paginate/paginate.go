package paginate

import (
	"net/url"
	"strconv"

	"github.com/inkwell/api/database/repository/pagination"
)

func MakeFrom(query url.Values, defaultLimit int) pagination.Paginate {
	page := pagination.MinPage
	limit := defaultLimit

	if query.Get("page") != "" {
		if tPage, err := strconv.Atoi(query.Get("page")); err == nil {
			page = tPage
		}
	}

	if query.Get("limit") != "" {
		if tLimit, err := strconv.Atoi(query.Get("limit")); err == nil {
			limit = tLimit
		}
	}

	if page < pagination.MinPage {
		page = pagination.MinPage
	}

	if limit > pagination.MaxLimit || limit < 1 {
		limit = defaultLimit
	}

	return pagination.Paginate{
		Page:  page,
		Limit: limit,
	}
}
