package eventlog

import (
	"fmt"
	"log"
	"os"
)

const (
	// DefaultLogFile to domyślna ścieżka pliku dziennika zdarzeń
	DefaultLogFile = "library.log"
)

// FileRecorder dopisuje zdarzenia katalogu do pliku dziennika, każde
// w osobnej linii z sygnaturą czasową. Plik dziennika jest niezależny
// od pliku katalogu i nigdy nie jest nadpisywany.
type FileRecorder struct {
	file   *os.File
	logger *log.Logger
}

// NewFileRecorder otwiera (lub tworzy) plik dziennika w trybie dopisywania
func NewFileRecorder(logFile string) (*FileRecorder, error) {
	if logFile == "" {
		logFile = DefaultLogFile
	}

	file, err := os.OpenFile(logFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("błąd otwierania pliku dziennika %s: %w", logFile, err)
	}

	return &FileRecorder{
		file:   file,
		logger: log.New(file, "", log.LstdFlags),
	}, nil
}

// Record dopisuje jedno zdarzenie do dziennika
func (r *FileRecorder) Record(event string) {
	r.logger.Printf("INFO - %s", event)
}

// Close zamyka plik dziennika
func (r *FileRecorder) Close() error {
	return r.file.Close()
}
