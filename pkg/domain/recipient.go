package domain

import "time"

// Recipient is a named digest subscriber with filtering preferences
type Recipient struct {
	ID        string       `json:"id"`
	Name      string       `json:"name"`
	Country   string       `json:"country,omitempty"`
	Profile   TopicProfile `json:"profile"`
	CreatedAt time.Time    `json:"created_at,omitempty"`
	UpdatedAt time.Time    `json:"updated_at,omitempty"`
}
