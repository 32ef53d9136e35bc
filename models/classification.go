package models

import "encoding/json"

// GroupRef is the group reference attached to a classification row. The
// backend is not consistent about its shape: depending on the endpoint it
// arrives as an object {"id": ...}, as a bare string id, or as a numeric
// id. UnmarshalJSON folds all three into one resolved ID.
type GroupRef struct {
	ID string `json:"id"`
}

func (g *GroupRef) UnmarshalJSON(data []byte) error {
	var obj struct {
		ID json.RawMessage `json:"id"`
	}
	if err := json.Unmarshal(data, &obj); err == nil && len(obj.ID) > 0 {
		var s string
		if err := json.Unmarshal(obj.ID, &s); err == nil {
			g.ID = s
			return nil
		}
		var n json.Number
		if err := json.Unmarshal(obj.ID, &n); err == nil {
			g.ID = n.String()
			return nil
		}
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		g.ID = s
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err == nil {
		g.ID = n.String()
		return nil
	}

	// Unknown shape: leave the reference empty rather than failing the
	// whole payload. Group resolution has its own fallback chain.
	g.ID = ""
	return nil
}

func (g GroupRef) MarshalJSON() ([]byte, error) {
	type ref struct {
		ID string `json:"id"`
	}
	return json.Marshal(ref{ID: g.ID})
}

// TeamClassification is one ranked standing row. Aggregate counters are
// backend-computed; this service treats them as already-scored input and
// never re-derives points from raw scores, except for the zero-filled
// rows it synthesizes before any match has been played.
type TeamClassification struct {
	ID              string    `json:"id"`
	Team            Team      `json:"team"`
	Position        int       `json:"position"`
	Points          int       `json:"points"`
	GamesPlayed     int       `json:"games_played"`
	Wins            int       `json:"wins"`
	Draws           int       `json:"draws"`
	Losses          int       `json:"losses"`
	ScorePro        int       `json:"score_pro"`
	ScoreAgainst    int       `json:"score_against"`
	ScoreDifference int       `json:"score_difference"`
	Group           *GroupRef `json:"group,omitempty"`
	GroupID         string    `json:"group_id,omitempty"`
}
