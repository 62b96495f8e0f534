package main

import (
	"errors"
	"log"
	"os"

	"github.com/joho/godotenv"

	"library-catalog/internal/catalog"
	"library-catalog/internal/eventlog"
	"library-catalog/internal/shell"
	"library-catalog/internal/storage"
)

func main() {
	// Wczytaj zmienne środowiskowe z pliku .env
	if err := godotenv.Load(); err != nil {
		log.Println("Brak pliku .env - używam zmiennych systemowych")
	}

	// Ścieżki plików z zmiennych środowiskowych lub domyślne
	dataFile := os.Getenv("LIBRARY_DATA_FILE")
	if dataFile == "" {
		dataFile = storage.DefaultDataFile
	}

	logFile := os.Getenv("LIBRARY_LOG_FILE")
	if logFile == "" {
		logFile = eventlog.DefaultLogFile
	}

	// Dziennik zdarzeń - dopisywany, niezależny od pliku katalogu
	recorder, err := eventlog.NewFileRecorder(logFile)
	if err != nil {
		log.Fatalf("Błąd otwierania dziennika zdarzeń: %v", err)
	}
	defer recorder.Close()

	// Wczytaj katalog z pliku; uszkodzony plik przerywa uruchomienie
	store := storage.NewStore(dataFile)
	if err := store.Load(); err != nil {
		if errors.Is(err, storage.ErrCorruptData) {
			log.Fatalf("Nie można wczytać katalogu: %v", err)
		}
		log.Fatalf("Błąd wczytywania katalogu: %v", err)
	}

	service := catalog.NewService(store, recorder)

	sh := shell.New(service, recorder, os.Stdin, os.Stdout)
	sh.Run()
}
