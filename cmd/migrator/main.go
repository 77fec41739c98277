package main

import (
	"errors"
	"flag"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/mongodb"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

func main() {
	var migrationsPath, uri string

	flag.StringVar(&migrationsPath, "migrations-path", "migrations", "path to migrations")
	flag.StringVar(&uri, "uri", "mongodb://127.0.0.1:27017/storeforge", "mongodb uri including the database name")
	flag.Parse()

	m, err := migrate.New("file://"+migrationsPath, uri)
	if err != nil {
		panic(err)
	}

	if err := m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			fmt.Println("no migrations to apply")
			return
		}

		panic(err)
	}

	fmt.Println("all migrations have been successfully applied")
}
