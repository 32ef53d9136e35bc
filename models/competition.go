package models

import "time"

// CompetitionSystem enumerates the formats a competition can be played in,
// matching the `system` ENUM values of the backend API.
type CompetitionSystem string

const (
	SystemLeague            CompetitionSystem = "league"
	SystemGroupsElimination CompetitionSystem = "groups_elimination"
	SystemElimination       CompetitionSystem = "elimination"
)

type CompetitionStatus string

const (
	CompetitionNotStarted CompetitionStatus = "not-started"
	CompetitionInProgress CompetitionStatus = "in-progress"
	CompetitionFinished   CompetitionStatus = "finished"
)

// Competition is the competition entity exactly as the external backend
// serves it. JSON field names are a wire contract and must not change.
type Competition struct {
	ID                     string            `json:"id"`
	Name                   string            `json:"name"`
	Modality               string            `json:"modality"`
	Status                 CompetitionStatus `json:"status"`
	StartDate              *time.Time        `json:"start_date,omitempty"`
	EndDate                *time.Time        `json:"end_date,omitempty"`
	System                 CompetitionSystem `json:"system"`
	Image                  *string           `json:"image,omitempty"`
	MinMembersPerTeam      int               `json:"min_members_per_team"`
	MaxMembersPerTeam      int               `json:"max_members_per_team"`
	TeamsPerGroup          int               `json:"teams_per_group"`
	TeamsQualifiedPerGroup int               `json:"teams_qualified_per_group"`
}

// Started reports whether the competition has left the not-started state.
// The group synthesis path is only valid before that.
func (c Competition) Started() bool {
	return c.Status != CompetitionNotStarted && c.Status != ""
}
