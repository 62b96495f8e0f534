package catalog

import (
	"fmt"
	"strconv"
	"strings"

	"library-catalog/internal/models"
	"library-catalog/internal/storage"
)

// Recorder przyjmuje komunikaty o zdarzeniach w katalogu. Dziennik zdarzeń
// jest wstrzykiwany, serwis nie trzyma żadnego globalnego stanu.
type Recorder interface {
	Record(event string)
}

// NopRecorder ignoruje wszystkie zdarzenia
type NopRecorder struct{}

// Record nic nie robi
func (NopRecorder) Record(string) {}

// Pola, po których można wyszukiwać książki
const (
	FieldTitle  = "title"
	FieldAuthor = "author"
	FieldYear   = "year"
)

// Service realizuje operacje na katalogu książek: dodawanie, usuwanie,
// wyszukiwanie, listowanie i zmianę statusu. Po każdej mutacji zapisuje
// katalog do pliku i rejestruje zdarzenie w dzienniku.
type Service struct {
	store    *storage.Store
	recorder Recorder
}

// NewService tworzy serwis katalogu nad podanym magazynem rekordów
func NewService(store *storage.Store, recorder Recorder) *Service {
	if recorder == nil {
		recorder = NopRecorder{}
	}
	return &Service{
		store:    store,
		recorder: recorder,
	}
}

// Add dodaje nową książkę do katalogu i zapisuje zmiany. Nowe id to
// największe istniejące id + 1, a status początkowy to "available".
// Zakres roku wydania waliduje warstwa wywołująca przed dodaniem.
func (s *Service) Add(title, author string, year int) (*models.Book, error) {
	if title == "" {
		return nil, models.ErrTitleRequired
	}

	newID := s.store.MaxID() + 1

	// Niezmiennik: wygenerowane id nie może kolidować z istniejącym rekordem
	if s.store.FindByID(newID) != nil {
		return nil, fmt.Errorf("%w: id %d", ErrDuplicateID, newID)
	}

	book := &models.Book{
		ID:     newID,
		Title:  title,
		Author: author,
		Year:   year,
		Status: models.StatusAvailable,
	}

	s.store.Append(book)
	if err := s.store.Save(); err != nil {
		return nil, err
	}

	s.recorder.Record(fmt.Sprintf("Książka '%s' została dodana z id %d.", title, newID))
	return book, nil
}

// Delete usuwa książkę o podanym id i zapisuje zmiany. Gdy książka nie
// istnieje, zwraca ErrBookNotFound i zostawia katalog bez zmian.
func (s *Service) Delete(id int) error {
	if !s.store.Remove(id) {
		s.recorder.Record(fmt.Sprintf("Próba usunięcia książki z id %d, ale nie została znaleziona.", id))
		return fmt.Errorf("%w: id %d", ErrBookNotFound, id)
	}

	if err := s.store.Save(); err != nil {
		return err
	}

	s.recorder.Record(fmt.Sprintf("Książka z id %d została usunięta.", id))
	return nil
}

// FindByID zwraca książkę o podanym id albo ErrBookNotFound
func (s *Service) FindByID(id int) (*models.Book, error) {
	book := s.store.FindByID(id)
	if book == nil {
		return nil, fmt.Errorf("%w: id %d", ErrBookNotFound, id)
	}
	return book, nil
}

// List zwraca wszystkie książki w kolejności dodawania
func (s *Service) List() []*models.Book {
	return s.store.All()
}

// Search wyszukuje książki po podanym polu (title, author albo year).
// Dopasowanie jest podciągiem bez rozróżniania wielkości liter; puste
// zapytanie pasuje do każdej książki.
func (s *Service) Search(query, field string) ([]*models.Book, error) {
	switch field {
	case FieldTitle, FieldAuthor, FieldYear:
	default:
		return nil, fmt.Errorf("%w: '%s'", ErrUnknownField, field)
	}

	queryLower := strings.ToLower(query)

	var results []*models.Book
	for _, book := range s.store.All() {
		if strings.Contains(strings.ToLower(fieldValue(book, field)), queryLower) {
			results = append(results, book)
		}
	}

	return results, nil
}

// fieldValue zwraca tekstową reprezentację pola książki
func fieldValue(book *models.Book, field string) string {
	switch field {
	case FieldTitle:
		return book.Title
	case FieldAuthor:
		return book.Author
	case FieldYear:
		return strconv.Itoa(book.Year)
	default:
		return ""
	}
}

// ToggleStatus przełącza status książki między "available" i "checked_out"
// i zapisuje zmiany. Decyzja o zmianie (np. potwierdzenie użytkownika)
// należy do warstwy wywołującej. Gdy książka nie istnieje, zwraca
// ErrBookNotFound.
func (s *Service) ToggleStatus(id int) (*models.Book, error) {
	book := s.store.FindByID(id)
	if book == nil {
		s.recorder.Record(fmt.Sprintf("Próba zmiany statusu książki z id %d, ale nie została znaleziona.", id))
		return nil, fmt.Errorf("%w: id %d", ErrBookNotFound, id)
	}

	book.Status = book.Status.Toggle()
	if err := s.store.Save(); err != nil {
		return nil, err
	}

	s.recorder.Record(fmt.Sprintf("Status książki z id %d został zmieniony na '%s'.", id, book.Status))
	return book, nil
}
