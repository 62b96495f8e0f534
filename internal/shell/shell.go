package shell

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"

	"library-catalog/internal/catalog"
	"library-catalog/internal/models"
)

// Kolory komunikatów terminala
var (
	menuColor  = color.New(color.FgBlue)
	infoColor  = color.New(color.FgGreen)
	warnColor  = color.New(color.FgYellow)
	errorColor = color.New(color.FgRed)
)

// Shell prowadzi interaktywne menu katalogu. Cała obsługa terminala,
// parsowanie wejścia i walidacja zakresu roku odbywa się tutaj - serwis
// katalogu dostaje już sprawdzone wartości i rozstrzygnięte potwierdzenia.
type Shell struct {
	service  *catalog.Service
	recorder catalog.Recorder
	in       *bufio.Scanner
	out      io.Writer
}

// New tworzy powłokę nad podanym serwisem katalogu. Wejście i wyjście są
// wstrzykiwane, żeby powłokę dało się testować bez terminala.
func New(service *catalog.Service, recorder catalog.Recorder, in io.Reader, out io.Writer) *Shell {
	if recorder == nil {
		recorder = catalog.NopRecorder{}
	}
	return &Shell{
		service:  service,
		recorder: recorder,
		in:       bufio.NewScanner(in),
		out:      out,
	}
}

// Run prowadzi pętlę menu aż do wybrania wyjścia albo końca wejścia
func (s *Shell) Run() {
	for {
		s.printMenu()

		choice, ok := s.readLine(menuColor.Sprint("Wybierz działanie: "))
		if !ok {
			return
		}

		switch choice {
		case "1":
			s.handleAdd()
		case "2":
			s.handleDelete()
		case "3":
			s.handleSearch()
		case "4":
			s.handleList()
		case "5":
			s.handleToggle()
		case "6":
			warnColor.Fprintln(s.out, "Zakończenie programu.")
			return
		default:
			errorColor.Fprintln(s.out, "Nieprawidłowy wybór, spróbuj ponownie.")
		}
	}
}

func (s *Shell) printMenu() {
	menuColor.Fprintln(s.out, "\n--- Menu ---")
	infoColor.Fprintln(s.out, "1. Dodaj książkę")
	infoColor.Fprintln(s.out, "2. Usuń książkę")
	infoColor.Fprintln(s.out, "3. Wyszukaj książki")
	infoColor.Fprintln(s.out, "4. Pokaż wszystkie książki")
	infoColor.Fprintln(s.out, "5. Zmień status książki")
	errorColor.Fprintln(s.out, "6. Wyjście")
}

// handleAdd zbiera dane nowej książki i waliduje je przed wywołaniem serwisu
func (s *Shell) handleAdd() {
	title, ok := s.readLine("Podaj tytuł książki: ")
	if !ok {
		return
	}
	if title == "" {
		errorColor.Fprintln(s.out, "Tytuł książki nie może być pusty!")
		return
	}

	author, ok := s.readLine("Podaj autora książki: ")
	if !ok {
		return
	}

	yearInput, ok := s.readLine("Podaj rok wydania: ")
	if !ok {
		return
	}

	year, err := strconv.Atoi(yearInput)
	if err != nil {
		errorColor.Fprintln(s.out, "Rok wydania musi być liczbą!")
		return
	}

	// Zakres roku sprawdzamy tutaj, serwis go nie waliduje
	if err := models.ValidateYear(year); err != nil {
		errorColor.Fprintf(s.out, "Rok musi być większy od 0 i nie większy niż %d!\n", time.Now().Year())
		return
	}

	book, err := s.service.Add(title, author, year)
	if err != nil {
		errorColor.Fprintf(s.out, "Błąd dodawania książki: %v\n", err)
		return
	}

	infoColor.Fprintf(s.out, "Książka '%s' została dodana z id %d.\n", book.Title, book.ID)
}

func (s *Shell) handleDelete() {
	id, ok := s.readID("Podaj id książki do usunięcia: ")
	if !ok {
		return
	}

	if err := s.service.Delete(id); err != nil {
		if errors.Is(err, catalog.ErrBookNotFound) {
			errorColor.Fprintf(s.out, "Książka z id %d nie została znaleziona.\n", id)
		} else {
			errorColor.Fprintf(s.out, "Błąd usuwania książki: %v\n", err)
		}
		return
	}

	infoColor.Fprintf(s.out, "Książka z id %d została usunięta.\n", id)
}

func (s *Shell) handleSearch() {
	menuColor.Fprintln(s.out, "Szukaj po:")
	fmt.Fprintln(s.out, "1. Tytule")
	fmt.Fprintln(s.out, "2. Autorze")
	fmt.Fprintln(s.out, "3. Roku wydania")

	fieldChoice, ok := s.readLine("Wybierz pole wyszukiwania (1/2/3): ")
	if !ok {
		return
	}

	fields := map[string]string{
		"1": catalog.FieldTitle,
		"2": catalog.FieldAuthor,
		"3": catalog.FieldYear,
	}
	field, valid := fields[fieldChoice]
	if !valid {
		errorColor.Fprintln(s.out, "Nieprawidłowy wybór pola.")
		return
	}

	query, ok := s.readLine(fmt.Sprintf("Podaj frazę wyszukiwania po polu %s: ", field))
	if !ok {
		return
	}

	results, err := s.service.Search(query, field)
	if err != nil {
		errorColor.Fprintf(s.out, "Błąd wyszukiwania: %v\n", err)
		return
	}

	if len(results) == 0 {
		warnColor.Fprintln(s.out, "Nie znaleziono książek.")
		return
	}
	for _, book := range results {
		s.printBook(book)
	}
}

func (s *Shell) handleList() {
	books := s.service.List()
	if len(books) == 0 {
		warnColor.Fprintln(s.out, "Katalog jest pusty.")
		return
	}
	for _, book := range books {
		s.printBook(book)
	}
}

// handleToggle pokazuje aktualny status i pyta o potwierdzenie; serwis
// przełącza status dopiero po decyzji użytkownika
func (s *Shell) handleToggle() {
	id, ok := s.readID("Podaj id książki: ")
	if !ok {
		return
	}

	book, err := s.service.FindByID(id)
	if err != nil {
		errorColor.Fprintf(s.out, "Książka z id %d nie została znaleziona.\n", id)
		s.recorder.Record(fmt.Sprintf("Próba zmiany statusu książki z id %d, ale nie została znaleziona.", id))
		return
	}

	warnColor.Fprintf(s.out, "Aktualny status książki: '%s'.\n", book.Status.Display())

	confirm, ok := s.readLine("Czy zmienić status na przeciwny? (tak/nie): ")
	if !ok {
		return
	}

	if strings.ToLower(confirm) != "tak" {
		warnColor.Fprintln(s.out, "Status książki nie został zmieniony.")
		s.recorder.Record(fmt.Sprintf("Status książki z id %d nie został zmieniony.", id))
		return
	}

	updated, err := s.service.ToggleStatus(id)
	if err != nil {
		errorColor.Fprintf(s.out, "Błąd zmiany statusu: %v\n", err)
		return
	}

	infoColor.Fprintf(s.out, "Status książki z id %d został zmieniony na '%s'.\n", id, updated.Status.Display())
}

func (s *Shell) printBook(book *models.Book) {
	fmt.Fprintf(s.out, "ID: %d, Tytuł: %s, Autor: %s, Rok: %d, Status: %s\n",
		book.ID, book.Title, book.Author, book.Year, book.Status.Display())
}

// readLine wyświetla zachętę i zwraca jedną linię wejścia bez białych znaków
// na brzegach; false oznacza koniec wejścia
func (s *Shell) readLine(prompt string) (string, bool) {
	fmt.Fprint(s.out, prompt)
	if !s.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(s.in.Text()), true
}

// readID czyta i parsuje id książki
func (s *Shell) readID(prompt string) (int, bool) {
	input, ok := s.readLine(prompt)
	if !ok {
		return 0, false
	}

	id, err := strconv.Atoi(input)
	if err != nil {
		errorColor.Fprintln(s.out, "Id książki musi być liczbą!")
		return 0, false
	}

	return id, true
}
