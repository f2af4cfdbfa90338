package helpers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"indywinners/internal/domain"
)

func TestParsePage(t *testing.T) {
	tests := []struct {
		name    string
		target  string
		want    int
		wantErr bool
	}{
		{"missing defaults to 1", "/winners", 1, false},
		{"explicit first page", "/winners?page=1", 1, false},
		{"later page", "/winners?page=7", 7, false},
		{"first value wins", "/winners?page=4&page=9", 4, false},
		{"empty value", "/winners?page=", 1, true},
		{"not a number", "/winners?page=abc", 1, true},
		{"zero", "/winners?page=0", 1, true},
		{"negative", "/winners?page=-2", 1, true},
		{"padded", "/winners?page=%202", 1, true},
		{"overflow", "/winners?page=99999999999999999999", 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			got, err := ParsePage(req)
			assert.Equal(t, tt.want, got)
			if tt.wantErr {
				require.Error(t, err)
				require.ErrorIs(t, err, domain.ErrInvalidPage)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestParsePage_PostForm(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/winners", strings.NewReader("page=3"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	got, err := ParsePage(req)
	require.NoError(t, err)
	assert.Equal(t, 3, got)
}

func TestPageURL(t *testing.T) {
	assert.Equal(t, "/winners?page=2", PageURL("/winners", 2))
	assert.Equal(t, "/IndyWinnerSimpleSV?page=10", PageURL("/IndyWinnerSimpleSV", 10))
}
