// internal/core/domain/message.go
package domain

// Message is one entry in a conversation between two users.
type Message struct {
	ID          string    `json:"id"`
	SenderID    string    `json:"expediteur_id"`
	SenderName  string    `json:"expediteur_nom"`
	RecipientID string    `json:"destinataire_id"`
	Content     string    `json:"contenu"`
	BookingID   string    `json:"booking_id,omitempty"`
	SentAt      Timestamp `json:"date_envoi"`
	Read        bool      `json:"lu"`
}

// MessageRequest is the payload for sending a message.
type MessageRequest struct {
	RecipientID string `json:"destinataire_id"`
	Content     string `json:"contenu"`
	BookingID   string `json:"booking_id,omitempty"`
}
