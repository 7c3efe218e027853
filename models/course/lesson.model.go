package course

import "time"

// Lesson is a leaf node. It belongs to exactly one list at a time: either a
// module's direct lessons or one section's lessons.
type Lesson struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	MediaURL    string    `json:"media_url"`
	Duration    int       `json:"duration"` // seconds
	IsPublished bool      `json:"is_published"`
	Order       int       `json:"order"` // 1..N within its owning list
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
