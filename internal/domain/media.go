package domain

import "io"

// MediaFile is a single uploaded file on its way to the media store.
type MediaFile struct {
	Filename    string
	ContentType string
	Size        int64
	Content     io.Reader
}
