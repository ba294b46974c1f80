package main

import (
	"log/slog"
	"sync"

	"github.com/inkwell/api/database"
	"github.com/inkwell/api/database/seeder/seeds"
	"github.com/inkwell/api/metal/env"
	"github.com/inkwell/api/metal/kernel"
	"github.com/inkwell/api/pkg/auth"
	"github.com/inkwell/api/pkg/portal"
)

var environment *env.Environment

func init() {
	secrets, err := kernel.Ignite("./.env", portal.GetDefaultValidator())
	if err != nil {
		panic("Error loading the environment: " + err.Error())
	}

	environment = secrets
}

func main() {
	dbConnection := kernel.MakeDbConnection(environment)
	logs := kernel.MakeLogs(environment)

	defer logs.Close()
	defer dbConnection.Close()

	seeder := seeds.MakeSeeder(dbConnection, environment)

	if err := seeder.MigrateDB(); err != nil {
		panic(err)
	}

	if err := seeder.TruncateDB(); err != nil {
		panic(err)
	}

	slog.Info("db truncated successfully ...")

	// Users first: everything else hangs off them.
	admin, err := seeder.Users.Create(adminAttrs())
	if err != nil {
		panic(err)
	}

	author, err := seeder.Users.Create(authorAttrs())
	if err != nil {
		panic(err)
	}

	categories, err := seeder.Categories.Create()
	if err != nil {
		panic(err)
	}

	tags, err := seeder.Tags.Create()
	if err != nil {
		panic(err)
	}

	posts, err := seeder.Posts.Create(admin, author)
	if err != nil {
		panic(err)
	}

	if err := seeder.Posts.Attach(posts, categories, tags); err != nil {
		panic(err)
	}

	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()

		slog.Info("seeding comments ...")

		if _, err := seeder.Comments.Create(author, posts...); err != nil {
			panic(err)
		}
	}()

	go func() {
		defer wg.Done()

		slog.Info("seeding settings ...")

		if err := seeder.Settings.Create(); err != nil {
			panic(err)
		}
	}()

	wg.Wait()

	slog.Info("db seeded successfully")
}

func adminAttrs() database.UsersAttrs {
	return database.UsersAttrs{
		Name:  "Ada Admin",
		Email: "admin@test.com",
		Role:  auth.RoleAdmin,
	}
}

func authorAttrs() database.UsersAttrs {
	return database.UsersAttrs{
		Name:  "Wren Writer",
		Email: "author@test.com",
		Role:  auth.RoleAuthor,
	}
}
