package domain

import "time"

// ChatMessage represents a single entry in the chat log.
type ChatMessage struct {
	ID        string    `json:"id"`
	From      string    `json:"from"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}

// ValidSenders contains all valid chat sender roles.
var ValidSenders = []string{"user", "admin", "bot"}

// IsValidSender checks if a sender role is valid.
func IsValidSender(from string) bool {
	for _, s := range ValidSenders {
		if s == from {
			return true
		}
	}
	return false
}
