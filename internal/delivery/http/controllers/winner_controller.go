package controllers

import (
	"bytes"
	"net/http"

	"github.com/rs/zerolog"

	"indywinners/internal/delivery/http/helpers"
	"indywinners/internal/domain"
)

// WinnerController serves the paginated winners listing page.
type WinnerController struct {
	Logger   zerolog.Logger
	Service  domain.WinnerService
	Renderer domain.PageRenderer
	// StrictPage rejects a malformed page parameter with 400 instead of serving page 1.
	StrictPage bool
}

// NewWinnerController creates a WinnerController with the given logger, service and renderer.
func NewWinnerController(logger zerolog.Logger, svc domain.WinnerService, renderer domain.PageRenderer, strictPage bool) *WinnerController {
	return &WinnerController{
		Logger:     logger.With().Str("component", "winner_controller").Logger(),
		Service:    svc,
		Renderer:   renderer,
		StrictPage: strictPage,
	}
}

// ListWinners godoc
// @Summary Winners listing page
// @Description Render one page of ten Indianapolis 500 winners as HTML with Previous/Next links. Query failures are shown in the page as "Exception! ..." with status 200.
// @Tags winners
// @Accept x-www-form-urlencoded
// @Produce html
// @Param page query int false "1-based page number (default 1)"
// @Success 200 {string} string "HTML page"
// @Failure 400 {string} string "malformed page parameter (strict mode only)"
// @Failure 500 {string} string "page could not be rendered"
// @Router /winners [get]
// @Router /winners [post]
func (c *WinnerController) ListWinners(w http.ResponseWriter, r *http.Request) {
	page, err := helpers.ParsePage(r)
	if err != nil {
		if c.StrictPage {
			helpers.WriteText(w, http.StatusBadRequest, err.Error())
			return
		}
		c.Logger.Debug().Err(err).Msg("malformed page parameter, serving first page")
	}

	view := &domain.WinnersPageView{
		Title:   domain.WinnersPageTitle,
		NextURL: helpers.PageURL(r.URL.Path, page+1),
	}
	if domain.NewWinnerPagination(page).HasPrevious() {
		view.PreviousURL = helpers.PageURL(r.URL.Path, page-1)
	}

	result, err := c.Service.GetWinnerPage(r.Context(), page)
	if err != nil {
		c.Logger.Error().Err(err).Int("page", page).Msg("list winners failed")
		view.Error = err.Error()
	} else {
		view.Table = result.Table
		view.RowCount = result.RowCount()
		view.ElapsedMS = result.Elapsed.Milliseconds()
	}

	var buf bytes.Buffer
	if err := c.Renderer.RenderWinners(&buf, view); err != nil {
		c.Logger.Error().Err(err).Int("page", page).Msg("render winners page failed")
		helpers.WriteText(w, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
		return
	}
	helpers.WriteHTML(w, http.StatusOK, buf.Bytes())
}
