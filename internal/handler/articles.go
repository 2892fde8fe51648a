// Package handler serves the demo pages: a paginated article list with
// htmx partial navigation.
package handler

import (
	"bytes"
	"context"
	"html/template"
	"log/slog"
	"net/http"
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/DukeRupert/pagenav/internal/catalog"
	"github.com/DukeRupert/pagenav/internal/metrics"
	"github.com/DukeRupert/pagenav/nav"
	"github.com/DukeRupert/pagenav/pagination"
)

// contentTargetID is the element swapped by htmx page navigation.
const contentTargetID = "article-list"

// ArticleListPageData contains data for the article list page.
type ArticleListPageData struct {
	Articles   []catalog.Article
	Pagination pagination.Data
	TotalLabel string
	Nav        template.HTML
}

// ArticleHandler handles the article list pages.
type ArticleHandler struct {
	store    catalog.Store
	renderer *Renderer
	logger   *slog.Logger
	perPage  int
	printer  *message.Printer
}

// NewArticleHandler creates a new ArticleHandler.
func NewArticleHandler(store catalog.Store, renderer *Renderer, logger *slog.Logger, perPage int) *ArticleHandler {
	return &ArticleHandler{
		store:    store,
		renderer: renderer,
		logger:   logger,
		perPage:  perPage,
		printer:  message.NewPrinter(language.English),
	}
}

// RegisterRoutes registers the article routes on the mux.
func (h *ArticleHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /articles", h.handleList)
}

// =============================================================================
// GET /articles - Paginated List
// =============================================================================

func (h *ArticleHandler) handleList(w http.ResponseWriter, r *http.Request) {
	// Parse pagination parameters
	page := 1
	if pageStr := r.URL.Query().Get("page"); pageStr != "" {
		if p, err := strconv.Atoi(pageStr); err == nil && p > 0 {
			page = p
		}
	}

	total, err := h.store.Count(r.Context())
	if err != nil {
		h.logger.Error("failed to count articles", "error", err)
		http.Error(w, "Failed to load articles. Please try again.", http.StatusInternalServerError)
		return
	}

	data := pagination.NewData(page, h.perPage, total)

	articles, err := h.store.List(r.Context(), data.PerPage, data.Offset())
	if err != nil {
		h.logger.Error("failed to list articles", "error", err, "page", data.CurrentPage)
		http.Error(w, "Failed to load articles. Please try again.", http.StatusInternalServerError)
		return
	}

	navHTML, err := h.renderNav(r.Context(), data)
	if err != nil {
		h.logger.Error("failed to render pagination nav", "error", err)
		http.Error(w, "Failed to render page.", http.StatusInternalServerError)
		return
	}

	metrics.PagesServed.Observe(float64(data.CurrentPage))

	pageData := ArticleListPageData{
		Articles:   articles,
		Pagination: data,
		TotalLabel: h.printer.Sprintf("%d articles", total),
		Nav:        navHTML,
	}

	// htmx navigation swaps the list fragment only
	if r.Header.Get("HX-Request") == "true" {
		metrics.NavRendered.WithLabelValues("partial").Inc()
		h.renderer.RenderPartial(w, "article-list", pageData)
		return
	}

	metrics.NavRendered.WithLabelValues("full").Inc()
	h.renderer.RenderHTTP(w, "articles", pageData)
}

// renderNav builds the pagination control markup for the list.
func (h *ArticleHandler) renderNav(ctx context.Context, data pagination.Data) (template.HTML, error) {
	component := nav.Nav(data, nav.Config{
		BaseURL:  "/articles",
		UseHtmx:  true,
		TargetID: contentTargetID,
		PushURL:  true,
	})

	var buf bytes.Buffer
	if err := component.Render(ctx, &buf); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil
}
