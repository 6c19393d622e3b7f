package songs

import "time"

// Song is a managed song record. Title, author, and words are required;
// the remaining classification fields are free-form and optional.
type Song struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Author    string    `json:"author"`
	Words     string    `json:"words"`
	Category  string    `json:"category,omitempty"`
	Typology  string    `json:"typology,omitempty"`
	Tone      string    `json:"tone,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}
