package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"

	"library-catalog/internal/catalog"
	"library-catalog/internal/models"
	"library-catalog/internal/storage"
)

func main() {
	// Wczytaj zmienne środowiskowe
	if err := godotenv.Load(); err != nil {
		log.Println("Brak pliku .env - używam zmiennych systemowych")
	}

	dataFile := os.Getenv("LIBRARY_DATA_FILE")
	if dataFile == "" {
		dataFile = storage.DefaultDataFile
	}

	store := storage.NewStore(dataFile)
	if err := store.Load(); err != nil {
		log.Fatalf("Błąd wczytywania katalogu: %v", err)
	}

	service := catalog.NewService(store, catalog.NopRecorder{})

	log.Printf("Dodawanie przykładowych książek do katalogu %s...", dataFile)

	books := []models.Book{
		{
			Title:  "Wiedźmin: Ostatnie życzenie",
			Author: "Andrzej Sapkowski",
			Year:   1993,
		},
		{
			Title:  "Zbrodnia i kara",
			Author: "Fiodor Dostojewski",
			Year:   1866,
		},
		{
			Title:  "Rok 1984",
			Author: "George Orwell",
			Year:   1949,
		},
		{
			Title:  "Diuna",
			Author: "Frank Herbert",
			Year:   1965,
		},
		{
			Title:  "Mistrz i Małgorzata",
			Author: "Michaił Bułhakow",
			Year:   1967,
		},
		{
			Title:  "Władca Pierścieni: Drużyna Pierścienia",
			Author: "J.R.R. Tolkien",
			Year:   1954,
		},
		{
			Title:  "Solaris",
			Author: "Stanisław Lem",
			Year:   1961,
		},
	}

	successCount := 0

	for _, book := range books {
		added, err := service.Add(book.Title, book.Author, book.Year)
		if err != nil {
			log.Printf("❌ Błąd dodawania książki '%s': %v", book.Title, err)
			continue
		}
		log.Printf("✓ Dodano: %s - %s (id %d)", added.Title, added.Author, added.ID)
		successCount++
	}

	log.Printf("\n✅ Pomyślnie dodano %d/%d książek do katalogu", successCount, len(books))
}
