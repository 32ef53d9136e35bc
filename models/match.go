package models

import "time"

type MatchStatus string

const (
	MatchNotStarted MatchStatus = "not-started"
	MatchInProgress MatchStatus = "in-progress"
	MatchFinished   MatchStatus = "finished"
)

// PlaceholderTeamID is the sentinel team reference carried by display-only
// bracket slots that have no real team assigned yet.
const PlaceholderTeamID = "tbd"

// MatchTeam is a team slot inside a match: a team reference scoped to a
// competition. Nil slots on a Match mean the slot is not yet determined.
type MatchTeam struct {
	Competition string `json:"competition"`
	TeamID      string `json:"team_id"`
}

// Match mirrors the backend match entity. A match with a nil TeamHome or
// TeamAway is a placeholder: display-only, never played.
type Match struct {
	ID               string      `json:"id"`
	Competition      string      `json:"competition"`
	Group            *string     `json:"group,omitempty"`
	Round            *string     `json:"round,omitempty"`
	RoundMatchNumber int         `json:"round_match_number"`
	Status           MatchStatus `json:"status"`
	ScheduledAt      *time.Time  `json:"scheduled_datetime,omitempty"`
	TeamHome         *MatchTeam  `json:"team_home,omitempty"`
	TeamAway         *MatchTeam  `json:"team_away,omitempty"`
	HomeFeederMatch  *string     `json:"home_feeder_match,omitempty"`
	AwayFeederMatch  *string     `json:"away_feeder_match,omitempty"`
	ScoreHome        *int        `json:"score_home,omitempty"`
	ScoreAway        *int        `json:"score_away,omitempty"`
	Winner           *string     `json:"winner,omitempty"`
}

// IsPlaceholder reports whether the match is a display-only slot.
func (m Match) IsPlaceholder() bool {
	return m.TeamHome == nil || m.TeamAway == nil ||
		m.TeamHome.TeamID == PlaceholderTeamID || m.TeamAway.TeamID == PlaceholderTeamID
}

func (m Match) Finished() bool {
	return m.Status == MatchFinished
}
