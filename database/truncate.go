package database

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/inkwell/api/metal/env"
)

var tableNamePattern = regexp.MustCompile(`^[a-z][a-z_]*$`)

type Truncate struct {
	database *Connection
	env      *env.Environment
}

func NewTruncate(db *Connection, env *env.Environment) *Truncate {
	return &Truncate{
		database: db,
		env:      env,
	}
}

func (t Truncate) Execute() error {
	if t.env.App.IsProduction() {
		panic("Cannot truncate production environment")
	}

	tables := GetSchemaTables()
	var errs []error

	db := t.database.Sql()

	for i := len(tables) - 1; i >= 0; i-- {
		table := tables[i]

		if !isValidTable(table) {
			errs = append(errs, fmt.Errorf("table '%s' does not exist", table))
			continue
		}

		if !db.Migrator().HasTable(table) {
			continue
		}

		exec := db.Exec(fmt.Sprintf("TRUNCATE TABLE %s RESTART IDENTITY CASCADE;", table))
		if exec.Error != nil {
			errs = append(errs, fmt.Errorf("truncate table %s: %w", table, exec.Error))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("truncate completed with %d error(s): %w", len(errs), errors.Join(errs...))
	}

	return nil
}

func isValidTable(name string) bool {
	if name == "" || len(name) > 63 {
		return false
	}

	if !tableNamePattern.MatchString(name) {
		return false
	}

	for _, table := range GetSchemaTables() {
		if table == name {
			return true
		}
	}

	return false
}
