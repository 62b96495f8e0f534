package models

import (
	"fmt"
	"time"
)

// BookStatus określa status książki w katalogu
type BookStatus string

const (
	StatusAvailable  BookStatus = "available"   // Książka dostępna na półce
	StatusCheckedOut BookStatus = "checked_out" // Książka wypożyczona
)

// IsValid sprawdza czy status ma jedną z dozwolonych wartości
func (s BookStatus) IsValid() bool {
	return s == StatusAvailable || s == StatusCheckedOut
}

// Toggle zwraca przeciwny status
func (s BookStatus) Toggle() BookStatus {
	if s == StatusAvailable {
		return StatusCheckedOut
	}
	return StatusAvailable
}

// Display zwraca status w formie czytelnej dla użytkownika
func (s BookStatus) Display() string {
	switch s {
	case StatusAvailable:
		return "dostępna"
	case StatusCheckedOut:
		return "wypożyczona"
	default:
		return string(s)
	}
}

// Book reprezentuje jedną pozycję w katalogu biblioteki
type Book struct {
	ID     int        `json:"id"`
	Title  string     `json:"title"`
	Author string     `json:"author"`
	Year   int        `json:"year"`
	Status BookStatus `json:"status"`
}

// Validate sprawdza czy rekord książki jest kompletny i poprawny
func (b *Book) Validate() error {
	if b.ID <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidID, b.ID)
	}
	if b.Title == "" {
		return ErrTitleRequired
	}
	if !b.Status.IsValid() {
		return fmt.Errorf("%w: '%s'", ErrInvalidStatus, b.Status)
	}
	return nil
}

// ValidateYear sprawdza zakres roku wydania: rok musi być większy od 0
// i nie większy niż bieżący rok
func ValidateYear(year int) error {
	if year <= 0 || year > time.Now().Year() {
		return fmt.Errorf("%w: %d", ErrInvalidYear, year)
	}
	return nil
}
