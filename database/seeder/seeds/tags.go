package seeds

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/inkwell/api/database"
	"github.com/inkwell/api/pkg/gorm"
	"github.com/inkwell/api/pkg/portal"
)

type TagsSeed struct {
	db *database.Connection
}

func MakeTagsSeed(db *database.Connection) *TagsSeed {
	return &TagsSeed{
		db: db,
	}
}

func (s TagsSeed) Create() ([]database.Tag, error) {
	var tags []database.Tag

	seeds := []string{
		"go", "postgres", "testing", "distributed systems",
		"observability", "apis", "career",
	}

	for _, seed := range seeds {
		tags = append(tags, database.Tag{
			UUID: uuid.NewString(),
			Name: seed,
			Slug: portal.NewStringable(seed).TagSlug(),
		})
	}

	result := s.db.Sql().Create(&tags)

	if gorm.HasDbIssues(result.Error) {
		return nil, fmt.Errorf("error seeding tags: %s", result.Error)
	}

	return tags, nil
}
