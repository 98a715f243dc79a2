// internal/web/auth.go
package web

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/jeanmonodalex/partage-web/internal/core/domain"
)

// authPage is the template data for the login and register views.
type authPage struct {
	Error     string
	Email     string
	Cantons   []string
	User      *domain.UserProfile
	ActiveNav string
}

// sessionToken extracts the backend bearer token from the session cookie.
// The gateway stores nothing server-side; the token lives in the browser.
func (s *Server) sessionToken(r *http.Request) string {
	cookie, err := r.Cookie(s.security.SessionCookie)
	if err != nil {
		return ""
	}
	return cookie.Value
}

// currentUser resolves the session token to a profile, or nil when the
// visitor is not authenticated or the token is no longer accepted.
func (s *Server) currentUser(r *http.Request) *domain.UserProfile {
	token := s.sessionToken(r)
	if token == "" {
		return nil
	}
	profile, err := s.accounts.Me(r.Context(), token)
	if err != nil {
		s.logger.DebugContext(r.Context(), "session token rejected",
			slog.String("error", err.Error()))
		return nil
	}
	return profile
}

// requireToken redirects unauthenticated visitors to the login page and
// reports whether the request may proceed.
func (s *Server) requireToken(w http.ResponseWriter, r *http.Request) (string, bool) {
	token := s.sessionToken(r)
	if token == "" {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return "", false
	}
	return token, true
}

func (s *Server) setSession(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     s.security.SessionCookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   s.security.SessionCookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
}

func (s *Server) clearSession(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     s.security.SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   s.security.SessionCookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
}

func (s *Server) handleLoginPage(w http.ResponseWriter, r *http.Request) {
	s.renderPage(w, authPage{User: s.currentUser(r), ActiveNav: "login"},
		"base.html", "pages/login.html")
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Formulaire invalide", http.StatusBadRequest)
		return
	}

	creds := domain.Credentials{
		Email:    strings.TrimSpace(r.PostFormValue("email")),
		Password: r.PostFormValue("password"),
	}

	token, err := s.accounts.Login(r.Context(), creds)
	if err != nil {
		s.logger.WarnContext(r.Context(), "login failed",
			slog.String("error", err.Error()))
		w.WriteHeader(http.StatusUnauthorized)
		s.renderPage(w, authPage{
			Error:     "Email ou mot de passe incorrect",
			Email:     creds.Email,
			ActiveNav: "login",
		}, "base.html", "pages/login.html")
		return
	}

	s.setSession(w, token)
	http.Redirect(w, r, "/search", http.StatusSeeOther)
}

func (s *Server) handleRegisterPage(w http.ResponseWriter, r *http.Request) {
	s.renderPage(w, authPage{
		Cantons:   s.cantonChoices(r),
		User:      s.currentUser(r),
		ActiveNav: "register",
	}, "base.html", "pages/register.html")
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Formulaire invalide", http.StatusBadRequest)
		return
	}

	reg := domain.Registration{
		Email:     strings.TrimSpace(r.PostFormValue("email")),
		Password:  r.PostFormValue("password"),
		LastName:  strings.TrimSpace(r.PostFormValue("nom")),
		FirstName: strings.TrimSpace(r.PostFormValue("prenom")),
		Phone:     strings.TrimSpace(r.PostFormValue("telephone")),
		Canton:    r.PostFormValue("canton"),
	}

	renderError := func(msg string, status int) {
		w.WriteHeader(status)
		s.renderPage(w, authPage{
			Error:     msg,
			Email:     reg.Email,
			Cantons:   s.cantonChoices(r),
			ActiveNav: "register",
		}, "base.html", "pages/register.html")
	}

	if reg.Email == "" || reg.Password == "" || reg.LastName == "" || reg.FirstName == "" {
		renderError("Tous les champs obligatoires doivent être remplis", http.StatusBadRequest)
		return
	}
	if !domain.ValidCanton(reg.Canton) {
		renderError("Canton invalide", http.StatusBadRequest)
		return
	}

	token, err := s.accounts.Register(r.Context(), reg)
	if err != nil {
		s.logger.WarnContext(r.Context(), "registration failed",
			slog.String("error", err.Error()))
		renderError("Inscription impossible: "+userMessage(err), http.StatusBadRequest)
		return
	}

	s.setSession(w, token)
	http.Redirect(w, r, "/search", http.StatusSeeOther)
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	s.clearSession(w)
	http.Redirect(w, r, "/search", http.StatusSeeOther)
}
