package course

import "time"

// Module groups sections and direct lessons within a course. Sections and
// direct lessons are independent sibling lists; each keeps its own
// contiguous 1..N order.
type Module struct {
	ID          string    `json:"id"` // stable uuid, never reused
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Order       int       `json:"order"` // 1..N within the course
	Sections    []Section `json:"sections"`
	Lessons     []Lesson  `json:"lessons"` // lessons not attached to any section
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
