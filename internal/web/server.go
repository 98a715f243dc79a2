// internal/web/server.go
package web

import (
	"html/template"
	"log/slog"
	"net/http"
	"strings"

	"github.com/jeanmonodalex/partage-web/internal/core/domain"
	"github.com/jeanmonodalex/partage-web/internal/core/ports"
	"github.com/jeanmonodalex/partage-web/internal/core/services"
	"github.com/jeanmonodalex/partage-web/internal/pkg/config"
	"github.com/jeanmonodalex/partage-web/internal/web/static"
	"github.com/jeanmonodalex/partage-web/internal/web/templates"
)

// Server renders the marketplace pages. All data comes from the backend
// API; the server holds no persistent state of its own.
type Server struct {
	listing  *services.ListingService
	items    ports.ListingAPI
	accounts ports.AccountAPI
	bookings ports.BookingAPI
	messages ports.MessageAPI
	security config.SecurityConfig
	logger   *slog.Logger
	mux      *http.ServeMux
}

// NewServer wires the page handlers onto a ServeMux.
func NewServer(
	listing *services.ListingService,
	items ports.ListingAPI,
	accounts ports.AccountAPI,
	bookings ports.BookingAPI,
	messages ports.MessageAPI,
	security config.SecurityConfig,
	logger *slog.Logger,
) *Server {
	s := &Server{
		listing:  listing,
		items:    items,
		accounts: accounts,
		bookings: bookings,
		messages: messages,
		security: security,
		logger:   logger.With(slog.String("component", "web")),
		mux:      http.NewServeMux(),
	}
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	s.mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/search", http.StatusSeeOther)
	})
	s.mux.HandleFunc("GET /search", s.handleSearch)
	s.mux.HandleFunc("POST /search/filters", s.handleApplyFilters)
	s.mux.HandleFunc("GET /items/{id}", s.handleItemDetail)

	s.mux.HandleFunc("GET /login", s.handleLoginPage)
	s.mux.HandleFunc("POST /login", s.handleLogin)
	s.mux.HandleFunc("GET /register", s.handleRegisterPage)
	s.mux.HandleFunc("POST /register", s.handleRegister)
	s.mux.HandleFunc("GET /logout", s.handleLogout)

	s.mux.HandleFunc("GET /bookings", s.handleMyBookings)
	s.mux.HandleFunc("POST /bookings", s.handleCreateBooking)

	s.mux.HandleFunc("GET /messages", s.handleConversations)
	s.mux.HandleFunc("POST /messages", s.handleSendMessage)

	s.mux.HandleFunc("GET /healthz", s.handleHealthz)

	s.mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServerFS(static.FS)))
}

// ServeHTTP implements http.Handler; middleware wraps this in cmd/web.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

// Close releases the listing service, aborting in-flight searches.
func (s *Server) Close() {
	s.listing.Close()
}

// renderPage parses and executes a full-page template set.
func (s *Server) renderPage(w http.ResponseWriter, data any, files ...string) {
	tmpl, err := template.New("").Funcs(funcMap()).ParseFS(templates.FS, files...)
	if err != nil {
		s.logger.Error("template parse failed", slog.String("error", err.Error()))
		http.Error(w, "Erreur de rendu", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := tmpl.ExecuteTemplate(w, "base", data); err != nil {
		s.logger.Error("template render failed", slog.String("error", err.Error()))
	}
}

// renderPartial parses and executes a single named fragment template.
func (s *Server) renderPartial(w http.ResponseWriter, file, name string, data any) {
	tmpl, err := template.New("").Funcs(funcMap()).ParseFS(templates.FS, file)
	if err != nil {
		s.logger.Error("template parse failed", slog.String("error", err.Error()))
		http.Error(w, "Erreur de rendu", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := tmpl.ExecuteTemplate(w, name, data); err != nil {
		s.logger.Error("template render failed", slog.String("error", err.Error()))
	}
}

// cantonChoices fetches the canton list from the backend, falling back to
// the built-in list when the call fails. The form must stay usable even
// when the backend is briefly down.
func (s *Server) cantonChoices(r *http.Request) []string {
	cantons, err := s.items.Cantons(r.Context())
	if err != nil || len(cantons) == 0 {
		if err != nil {
			s.logger.WarnContext(r.Context(), "canton list unavailable, using built-in",
				slog.String("error", err.Error()))
		}
		return domain.Cantons
	}
	return cantons
}

// isPartial reports whether the request wants only the results fragment.
func isPartial(r *http.Request) bool {
	return strings.EqualFold(r.Header.Get("HX-Request"), "true")
}
