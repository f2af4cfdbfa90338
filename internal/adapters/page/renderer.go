package page

import (
	"embed"
	"fmt"
	"html/template"
	"io"

	"indywinners/internal/domain"
)

//go:embed templates/*
var templateFS embed.FS

// renderer implements domain.PageRenderer using embedded template files.
type renderer struct {
	winners *template.Template
}

// NewRenderer parses the embedded page templates and returns a domain.PageRenderer.
// The parsed templates are shared and safe for concurrent use.
func NewRenderer() (domain.PageRenderer, error) {
	winners, err := template.ParseFS(templateFS, "templates/winners.html")
	if err != nil {
		return nil, fmt.Errorf("parse winners template: %w", err)
	}
	return &renderer{winners: winners}, nil
}

// RenderWinners writes the winners page for view to w.
func (r *renderer) RenderWinners(w io.Writer, view *domain.WinnersPageView) error {
	if view.Error == "" && view.Table == nil {
		view.Table = &domain.Table{}
	}
	if err := r.winners.Execute(w, view); err != nil {
		return fmt.Errorf("render winners: %w", err)
	}
	return nil
}
