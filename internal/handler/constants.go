package handler

import "time"

const (
	// TimeFormat is the standard time format for API responses (RFC3339)
	TimeFormat = time.RFC3339
	// DateFormat is the date-only form accepted for application deadlines.
	DateFormat = "2006-01-02"

	// imageField is the multipart field that carries an uploaded image.
	imageField = "image"
)
