package models_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"library-catalog/internal/models"
)

func Test_BookStatus_Toggle(t *testing.T) {
	assert.Equal(t, models.StatusCheckedOut, models.StatusAvailable.Toggle())
	assert.Equal(t, models.StatusAvailable, models.StatusCheckedOut.Toggle())
}

func Test_BookStatus_IsValid(t *testing.T) {
	assert.True(t, models.StatusAvailable.IsValid())
	assert.True(t, models.StatusCheckedOut.IsValid())
	assert.False(t, models.BookStatus("").IsValid())
	assert.False(t, models.BookStatus("lost").IsValid())
}

func Test_Book_Validate(t *testing.T) {
	tests := []struct {
		name    string
		book    models.Book
		wantErr error
	}{
		{
			name: "poprawny_rekord",
			book: models.Book{ID: 1, Title: "Diuna", Author: "Frank Herbert", Year: 1965, Status: models.StatusAvailable},
		},
		{
			name:    "niedodatnie_id",
			book:    models.Book{ID: 0, Title: "Diuna", Status: models.StatusAvailable},
			wantErr: models.ErrInvalidID,
		},
		{
			name:    "pusty_tytul",
			book:    models.Book{ID: 1, Title: "", Status: models.StatusAvailable},
			wantErr: models.ErrTitleRequired,
		},
		{
			name:    "nieznany_status",
			book:    models.Book{ID: 1, Title: "Diuna", Status: "lost"},
			wantErr: models.ErrInvalidStatus,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.book.Validate()
			if tc.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tc.wantErr)
			}
		})
	}
}

func Test_ValidateYear(t *testing.T) {
	currentYear := time.Now().Year()

	assert.NoError(t, models.ValidateYear(1965))
	assert.NoError(t, models.ValidateYear(currentYear))
	assert.ErrorIs(t, models.ValidateYear(0), models.ErrInvalidYear)
	assert.ErrorIs(t, models.ValidateYear(-5), models.ErrInvalidYear)
	assert.ErrorIs(t, models.ValidateYear(currentYear+1), models.ErrInvalidYear)
}
