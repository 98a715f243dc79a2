// internal/core/domain/user.go
package domain

// UserProfile is the authenticated user's projection from /api/auth/me.
type UserProfile struct {
	ID            string    `json:"id"`
	Email         string    `json:"email"`
	LastName      string    `json:"nom"`
	FirstName     string    `json:"prenom"`
	Phone         string    `json:"telephone,omitempty"`
	Canton        string    `json:"canton"`
	CreatedAt     Timestamp `json:"date_creation"`
	AverageRating float64   `json:"note_moyenne"`
	ReviewCount   int       `json:"nombre_avis"`
}

// FullName renders "Prénom Nom" the way the backend composes owner names.
func (u *UserProfile) FullName() string {
	if u.FirstName == "" {
		return u.LastName
	}
	return u.FirstName + " " + u.LastName
}

// Registration is the payload for /api/auth/register.
type Registration struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	LastName  string `json:"nom"`
	FirstName string `json:"prenom"`
	Phone     string `json:"telephone,omitempty"`
	Canton    string `json:"canton"`
}

// Credentials is the payload for /api/auth/login.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
