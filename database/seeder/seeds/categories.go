package seeds

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/inkwell/api/database"
	"github.com/inkwell/api/pkg/gorm"
	"github.com/inkwell/api/pkg/portal"
)

type CategoriesSeed struct {
	db *database.Connection
}

func MakeCategoriesSeed(db *database.Connection) *CategoriesSeed {
	return &CategoriesSeed{
		db: db,
	}
}

func (s CategoriesSeed) Create() ([]database.Category, error) {
	var categories []database.Category

	seeds := []string{
		"Tech", "AI", "Leadership", "Innovation",
		"Cloud", "Data", "DevOps", "Engineering",
	}

	for _, seed := range seeds {
		categories = append(categories, database.Category{
			UUID:        uuid.NewString(),
			Name:        seed,
			Slug:        portal.NewStringable(seed).Slug(),
			Description: fmt.Sprintf("Posts about %s.", seed),
		})
	}

	result := s.db.Sql().Create(&categories)

	if gorm.HasDbIssues(result.Error) {
		return nil, fmt.Errorf("error seeding categories: %s", result.Error)
	}

	return categories, nil
}
