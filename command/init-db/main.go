package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	gallery "github.com/galeria-yaya/gallery-api"
)

func main() {
	_ = godotenv.Load()

	dsn := flag.String("dsn", os.Getenv("GALLERY_STORE_DSN"), "postgres dsn; leave empty to use the sqlite file")
	sqlitePath := flag.String("sqlite", "gallery.db", "sqlite database file")
	flag.Parse()

	store, err := gallery.NewGalleryStore(gallery.StoreConfig{
		DSN:        *dsn,
		SQLitePath: *sqlitePath,
	})
	if err != nil {
		panic(err)
	}
	defer store.Close()

	fmt.Println("creating gallery tables if they do not exist...")
	if err := store.AutoMigrate(); err != nil {
		panic(err)
	}
	fmt.Println("done")
}
