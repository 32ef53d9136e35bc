package models

import "time"

// Team mirrors the backend team entity. Ownership lives in the backend;
// this service only reads teams to build views.
type Team struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Abbreviation string       `json:"abbreviation"`
	CreatedAt    *time.Time   `json:"created_at,omitempty"`
	Status       string       `json:"status,omitempty"`
	CampusCode   string       `json:"campus_code,omitempty"`
	Members      []TeamMember `json:"members,omitempty"`
}

type TeamMember struct {
	UserID       string `json:"user_id"`
	Name         string `json:"name,omitempty"`
	Registration string `json:"registration,omitempty"`
	Course       string `json:"course,omitempty"`
}
