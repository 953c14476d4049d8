package domain

// Notification is a plain-text message handed to the Notifier.
type Notification struct {
	From    string
	To      string
	Subject string
	Body    string
}
