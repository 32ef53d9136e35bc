package models

// Stage is a named phase of a competition's lifecycle, e.g.
// {"group-stage", "FASE DE GRUPOS"} or {"final", "FINAL"}.
type Stage struct {
	Key  string `json:"key"`
	Name string `json:"name"`
}

// RoundData is a named, ordered collection of matches.
type RoundData struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Matches []Match `json:"matches"`
}

// GroupData is the per-group (or whole-league) display structure: the
// ranked classification table plus the rounds played inside the group.
type GroupData struct {
	ID              string               `json:"id"`
	Name            string               `json:"name"`
	Classifications []TeamClassification `json:"classifications"`
	Rounds          []RoundData          `json:"rounds"`
}

// CompetitionView is the assembled, format-specific view model served to
// presentation. All of it is a pure projection of the backend payloads,
// recomputed whenever any of them changes.
type CompetitionView struct {
	Competition    Competition `json:"competition"`
	Stages         []Stage     `json:"stages"`
	Groups         []GroupData `json:"groups"`
	KnockoutRounds []RoundData `json:"knockout_rounds,omitempty"`
}
