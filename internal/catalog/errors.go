package catalog

import "errors"

// Błędy operacji na katalogu
var (
	// ErrBookNotFound - brak książki o podanym id; operacje usuwania
	// i zmiany statusu zgłaszają go zamiast przerywać program
	ErrBookNotFound = errors.New("książka nie została znaleziona")

	// ErrDuplicateID - kolizja id przy dodawaniu książki; zabezpieczenie
	// niezmiennika, przy generowaniu id max+1 nie powinna wystąpić
	ErrDuplicateID = errors.New("książka z tym id już istnieje")

	// ErrUnknownField - wyszukiwanie po nieobsługiwanym polu
	ErrUnknownField = errors.New("nieznane pole wyszukiwania")
)
