package seeds

import (
	"github.com/inkwell/api/database"
	"github.com/inkwell/api/metal/env"
)

// Seeder wires the per-entity seeds against one connection so main can run
// them in dependency order.
type Seeder struct {
	db  *database.Connection
	env *env.Environment

	Users      *UsersSeed
	Categories *CategoriesSeed
	Tags       *TagsSeed
	Posts      *PostsSeed
	Comments   *CommentsSeed
	Settings   *SettingsSeed
}

func MakeSeeder(db *database.Connection, env *env.Environment) *Seeder {
	return &Seeder{
		db:         db,
		env:        env,
		Users:      MakeUsersSeed(db),
		Categories: MakeCategoriesSeed(db),
		Tags:       MakeTagsSeed(db),
		Posts:      MakePostsSeed(db),
		Comments:   MakeCommentsSeed(db),
		Settings:   MakeSettingsSeed(db),
	}
}

// MigrateDB creates any missing tables before seeding runs.
func (s Seeder) MigrateDB() error {
	return s.db.Sql().AutoMigrate(
		&database.User{},
		&database.Session{},
		&database.Category{},
		&database.Tag{},
		&database.Post{},
		&database.PostCategory{},
		&database.PostTag{},
		&database.Comment{},
		&database.Setting{},
	)
}

func (s Seeder) TruncateDB() error {
	return database.NewTruncate(s.db, s.env).Execute()
}
