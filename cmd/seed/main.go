// Seeds the built-in glossary into a vocabulary database so a fresh
// install starts with meanings for the most common words.
package main

import (
	"flag"
	"log"

	"github.com/wordnest/api/internal/database"
	"github.com/wordnest/api/internal/dict"
	"github.com/wordnest/api/internal/store"
)

func main() {
	dbPath := flag.String("db", "vocabulary.db", "path to the vocabulary database")
	flag.Parse()

	db, err := database.Connect(*dbPath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer database.Close(db)

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	wordStore := store.New(db)
	seeded := 0
	for word, meaning := range dict.Glossary() {
		_, created, err := wordStore.Upsert(word, store.Meta{Meaning: meaning})
		if err != nil {
			log.Printf("Warning: Failed to seed %q: %v", word, err)
			continue
		}
		if created {
			seeded++
		}
	}

	log.Printf("Seeded %d new words from the built-in glossary", seeded)
}
