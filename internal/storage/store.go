package storage

import (
	"errors"
	"fmt"
	"os"

	jsoniter "github.com/json-iterator/go"

	"library-catalog/internal/models"
)

// json zachowuje się jak encoding/json (UTF-8 bez escapowania znaków narodowych)
var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	// DefaultDataFile to domyślna ścieżka pliku katalogu
	DefaultDataFile = "library.json"
)

// ErrCorruptData oznacza, że plik katalogu istnieje, ale nie zawiera
// poprawnych rekordów książek
var ErrCorruptData = errors.New("plik katalogu jest uszkodzony")

// Store przechowuje rekordy książek w pamięci, w kolejności dodawania,
// i synchronizuje je z plikiem JSON. Store jest jedynym właścicielem pliku.
type Store struct {
	dataFile string
	books    []*models.Book
}

// NewStore tworzy magazyn rekordów dla podanego pliku katalogu
func NewStore(dataFile string) *Store {
	if dataFile == "" {
		dataFile = DefaultDataFile
	}
	return &Store{dataFile: dataFile}
}

// DataFile zwraca ścieżkę pliku katalogu
func (s *Store) DataFile() string {
	return s.dataFile
}

// Load wczytuje rekordy z pliku katalogu. Brak pliku oznacza pusty katalog.
// Plik, którego nie da się sparsować lub który zawiera niepoprawne rekordy,
// zgłaszany jest jako ErrCorruptData.
func (s *Store) Load() error {
	data, err := os.ReadFile(s.dataFile)
	if errors.Is(err, os.ErrNotExist) {
		s.books = nil
		return nil
	}
	if err != nil {
		return fmt.Errorf("błąd odczytu pliku %s: %w", s.dataFile, err)
	}

	var books []*models.Book
	if err := json.Unmarshal(data, &books); err != nil {
		return fmt.Errorf("%w: %v", ErrCorruptData, err)
	}

	// Każdy rekord musi być kompletny, a id unikalne w całym katalogu
	seen := make(map[int]bool, len(books))
	for _, book := range books {
		if book == nil {
			return fmt.Errorf("%w: pusty rekord", ErrCorruptData)
		}
		if err := book.Validate(); err != nil {
			return fmt.Errorf("%w: %v", ErrCorruptData, err)
		}
		if seen[book.ID] {
			return fmt.Errorf("%w: zduplikowane id %d", ErrCorruptData, book.ID)
		}
		seen[book.ID] = true
	}

	s.books = books
	return nil
}

// Save serializuje cały katalog i nadpisuje plik. Pełny zapis zamiast
// dopisywania - prostota ponad wydajność przy spodziewanym rozmiarze katalogu.
func (s *Store) Save() error {
	books := s.books
	if books == nil {
		books = []*models.Book{}
	}

	data, err := json.MarshalIndent(books, "", "    ")
	if err != nil {
		return fmt.Errorf("błąd serializacji katalogu: %w", err)
	}

	if err := os.WriteFile(s.dataFile, data, 0o644); err != nil {
		return fmt.Errorf("błąd zapisu pliku %s: %w", s.dataFile, err)
	}

	return nil
}

// All zwraca wszystkie rekordy w kolejności dodawania
func (s *Store) All() []*models.Book {
	return s.books
}

// Len zwraca liczbę rekordów w katalogu
func (s *Store) Len() int {
	return len(s.books)
}

// FindByID zwraca rekord o podanym id albo nil, gdy nie istnieje.
// Przeszukiwanie liniowe - katalog jest mały.
func (s *Store) FindByID(id int) *models.Book {
	for _, book := range s.books {
		if book.ID == id {
			return book
		}
	}
	return nil
}

// Append dodaje rekord na koniec katalogu
func (s *Store) Append(book *models.Book) {
	s.books = append(s.books, book)
}

// Remove usuwa rekord o podanym id; zwraca false, gdy rekord nie istnieje
func (s *Store) Remove(id int) bool {
	for i, book := range s.books {
		if book.ID == id {
			s.books = append(s.books[:i], s.books[i+1:]...)
			return true
		}
	}
	return false
}

// MaxID zwraca największe id w katalogu, 0 dla pustego katalogu
func (s *Store) MaxID() int {
	maxID := 0
	for _, book := range s.books {
		if book.ID > maxID {
			maxID = book.ID
		}
	}
	return maxID
}
