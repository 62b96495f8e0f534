package eventlog_test

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"library-catalog/internal/eventlog"
)

var eventLinePattern = regexp.MustCompile(`^\d{4}/\d{2}/\d{2} \d{2}:\d{2}:\d{2} INFO - `)

func Test_FileRecorder_WritesTimestampedLines(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "library.log")

	recorder, err := eventlog.NewFileRecorder(logFile)
	require.NoError(t, err)

	recorder.Record("Książka 'Diuna' została dodana z id 1.")
	recorder.Record("Książka z id 1 została usunięta.")
	require.NoError(t, recorder.Close())

	data, err := os.ReadFile(logFile)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Regexp(t, eventLinePattern, lines[0])
	assert.Contains(t, lines[0], "Książka 'Diuna' została dodana z id 1.")
	assert.Contains(t, lines[1], "została usunięta")
}

func Test_FileRecorder_AppendsAcrossReopen(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "library.log")

	recorder, err := eventlog.NewFileRecorder(logFile)
	require.NoError(t, err)
	recorder.Record("pierwsze zdarzenie")
	require.NoError(t, recorder.Close())

	// Ponowne otwarcie nie może nadpisać dziennika
	recorder, err = eventlog.NewFileRecorder(logFile)
	require.NoError(t, err)
	recorder.Record("drugie zdarzenie")
	require.NoError(t, recorder.Close())

	data, err := os.ReadFile(logFile)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "pierwsze zdarzenie")
	assert.Contains(t, lines[1], "drugie zdarzenie")
}
