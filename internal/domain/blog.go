package domain

import "time"

// BlogPost represents a blog post entity in the system.
type BlogPost struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Excerpt   string    `json:"excerpt"`
	Author    string    `json:"author"`
	Image     string    `json:"image"`
	Tags      []string  `json:"tags"`
	Published bool      `json:"published"`
	Slug      string    `json:"slug"`
	CreatedAt time.Time `json:"createdAt"`
}
