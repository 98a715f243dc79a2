// internal/web/message.go
package web

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/jeanmonodalex/partage-web/internal/core/domain"
)

// messagesPage is the template data for the conversations view.
type messagesPage struct {
	Messages  []domain.Message
	User      *domain.UserProfile
	Error     string
	ActiveNav string
}

// handleConversations handles GET /messages.
func (s *Server) handleConversations(w http.ResponseWriter, r *http.Request) {
	token, ok := s.requireToken(w, r)
	if !ok {
		return
	}

	page := messagesPage{User: s.currentUser(r), ActiveNav: "messages"}

	messages, err := s.messages.Conversations(r.Context(), token)
	if err != nil {
		s.logger.ErrorContext(r.Context(), "conversations fetch failed",
			slog.String("error", err.Error()))
		page.Error = "Impossible de charger vos messages: " + userMessage(err)
	}
	page.Messages = messages

	s.renderPage(w, page, "base.html", "pages/messages.html")
}

// handleSendMessage handles POST /messages.
func (s *Server) handleSendMessage(w http.ResponseWriter, r *http.Request) {
	token, ok := s.requireToken(w, r)
	if !ok {
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "Formulaire invalide", http.StatusBadRequest)
		return
	}

	req := domain.MessageRequest{
		RecipientID: r.PostFormValue("destinataire_id"),
		Content:     strings.TrimSpace(r.PostFormValue("contenu")),
		BookingID:   r.PostFormValue("booking_id"),
	}
	if req.RecipientID == "" || req.Content == "" {
		http.Error(w, "Destinataire et contenu requis", http.StatusBadRequest)
		return
	}

	if err := s.messages.SendMessage(r.Context(), token, req); err != nil {
		s.logger.ErrorContext(r.Context(), "message send failed",
			slog.String("recipient_id", req.RecipientID),
			slog.String("error", err.Error()))
		http.Error(w, "Envoi impossible: "+userMessage(err), http.StatusBadGateway)
		return
	}

	http.Redirect(w, r, "/messages", http.StatusSeeOther)
}
