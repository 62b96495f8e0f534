package models

import "errors"

// Błędy walidacji rekordu książki
var (
	// ErrInvalidID - id musi być dodatnią liczbą całkowitą
	ErrInvalidID = errors.New("id książki musi być liczbą dodatnią")

	// ErrTitleRequired - tytuł nie może być pusty
	ErrTitleRequired = errors.New("tytuł książki jest wymagany")

	// ErrInvalidStatus - status spoza dozwolonych wartości
	ErrInvalidStatus = errors.New("nieznany status książki")

	// ErrInvalidYear - rok wydania poza dozwolonym zakresem
	ErrInvalidYear = errors.New("rok wydania poza dozwolonym zakresem")
)
