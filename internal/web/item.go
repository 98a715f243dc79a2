// internal/web/item.go
package web

import (
	"log/slog"
	"net/http"

	"github.com/jeanmonodalex/partage-web/internal/core/domain"
)

// itemPage is the template data for the item detail view.
type itemPage struct {
	Item      *domain.ItemSummary
	User      *domain.UserProfile
	Error     string
	ActiveNav string
}

// handleItemDetail handles GET /items/{id}.
func (s *Server) handleItemDetail(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	item, err := s.items.GetItem(r.Context(), id)
	if err != nil {
		if notFound(err) {
			http.Error(w, "Objet non trouvé", http.StatusNotFound)
			return
		}
		s.logger.ErrorContext(r.Context(), "item detail fetch failed",
			slog.String("item_id", id),
			slog.String("error", err.Error()))
		http.Error(w, "Le service est momentanément indisponible", http.StatusBadGateway)
		return
	}

	s.renderPage(w, itemPage{
		Item:      item,
		User:      s.currentUser(r),
		ActiveNav: "search",
	}, "base.html", "pages/item.html")
}
