package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"indywinners/internal/adapters/page"
	"indywinners/internal/delivery/http/controllers"
	"indywinners/internal/domain"
)

type stubWinnerService struct{}

func (stubWinnerService) GetWinnerPage(ctx context.Context, p int) (*domain.WinnerPage, error) {
	return &domain.WinnerPage{
		Page:  p,
		Table: domain.WinnersTable([]*domain.Winner{domain.NewWinner(1, "Helio Castroneves", 2021)}),
	}, nil
}

type stubPinger struct{}

func (stubPinger) PingContext(ctx context.Context) error { return nil }

func newTestRouter(t *testing.T) *http.ServeMux {
	t.Helper()
	renderer, err := page.NewRenderer()
	require.NoError(t, err)
	return NewRouter(
		controllers.NewWinnerController(zerolog.Nop(), stubWinnerService{}, renderer, false),
		controllers.NewHealthController(zerolog.Nop(), stubPinger{}),
	)
}

func TestNewRouter(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		name         string
		method       string
		target       string
		wantStatus   int
		wantContains string
	}{
		{"winners get", http.MethodGet, "/winners?page=2", http.StatusOK, "Helio Castroneves"},
		{"winners post", http.MethodPost, "/winners", http.StatusOK, "Helio Castroneves"},
		{"winners other method", http.MethodDelete, "/winners", http.StatusMethodNotAllowed, ""},
		{"liveness", http.MethodGet, "/health/live", http.StatusOK, `"alive"`},
		{"readiness", http.MethodGet, "/health/ready", http.StatusOK, `"ready"`},
		{"unknown path", http.MethodGet, "/nope", http.StatusNotFound, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, httptest.NewRequest(tt.method, tt.target, nil))

			require.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantContains != "" {
				assert.Contains(t, rr.Body.String(), tt.wantContains)
			}
		})
	}
}
