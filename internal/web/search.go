// internal/web/search.go
package web

import (
	"net/http"

	"github.com/jeanmonodalex/partage-web/internal/core/domain"
	"github.com/jeanmonodalex/partage-web/internal/core/services"
)

// searchPage is the template data for the search view.
type searchPage struct {
	Filters    domain.FilterSet
	Cantons    []string
	Categories []domain.ItemCategory
	Result     services.ListingResult
	User       *domain.UserProfile
	ActiveNav  string
}

// handleSearch handles GET /search. The request URL is the source of truth:
// the filter set is derived from it, seeds the form one-way, and drives the
// fetch. The primary search form navigates here with free text and canton
// only, so submitting it rewrites the address and re-enters this handler.
func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	filters := domain.ParseFilterSet(r.URL.Query())

	result := s.listing.Fetch(r.Context(), filters)

	if isPartial(r) {
		s.renderPartial(w, "partials/search_results.html", "search_results", result)
		return
	}

	s.renderPage(w, searchPage{
		Filters:    filters,
		Cantons:    s.cantonChoices(r),
		Categories: domain.Categories(),
		Result:     result,
		User:       s.currentUser(r),
		ActiveNav:  "search",
	}, "base.html", "pages/search.html", "partials/search_results.html")
}

// handleApplyFilters handles POST /search/filters: the advanced panel's
// "apply" action. It fetches directly with the full combined filter set and
// returns only the results fragment, leaving the address untouched.
func (s *Server) handleApplyFilters(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Formulaire invalide", http.StatusBadRequest)
		return
	}

	filters := domain.ParseFilterSet(r.PostForm)

	result := s.listing.Fetch(r.Context(), filters)

	s.renderPartial(w, "partials/search_results.html", "search_results", result)
}
