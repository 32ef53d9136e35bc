package brackets

import "github.com/matchdaybr/campeonato-system/models"

// ladderRung is one rung of the fixed knockout ladder used to name the
// stages a competition will pass through. Rungs are kept in
// descending-size order; stage selection walks from the smallest rung
// that still fits the qualifier count down to the final.
type ladderRung struct {
	size int
	key  string
	name string
}

var knockoutLadder = []ladderRung{
	{size: 16, key: "round-of-16", name: "OITAVAS DE FINAL"},
	{size: 8, key: "quarterfinals", name: "QUARTAS DE FINAL"},
	{size: 4, key: "semifinal", name: "SEMIFINAL"},
	{size: 2, key: "final", name: "FINAL"},
}

// StageParams carries the size inputs of ComputeStages. Only the fields
// relevant to the competition system are consulted.
type StageParams struct {
	TeamsPerGroup          int
	TeamsQualifiedPerGroup int
	NumberOfGroups         int
	TotalTeams             int
}

// ComputeStages returns the ordered list of named stages a competition
// will pass through, derived from its system and size parameters.
//
// Unknown systems yield an empty list: the UI must render, not crash, on
// unexpected backend data. A qualifier count outside the ladder (zero or
// above sixteen) silently appends no knockout stages.
func ComputeStages(system models.CompetitionSystem, params StageParams) []models.Stage {
	switch system {
	case models.SystemLeague:
		return []models.Stage{{Key: "league", Name: "PONTOS CORRIDOS"}}

	case models.SystemGroupsElimination:
		stages := []models.Stage{{Key: "group-stage", Name: "FASE DE GRUPOS"}}
		qualified := params.NumberOfGroups * params.TeamsQualifiedPerGroup
		return append(stages, ladderSuffix(qualified)...)

	case models.SystemElimination:
		return ladderSuffix(params.TotalTeams)

	default:
		return []models.Stage{}
	}
}

// ladderSuffix selects the ladder suffix starting at the smallest rung
// that holds at least teams participants, down to the final.
func ladderSuffix(teams int) []models.Stage {
	if teams <= 0 {
		return nil
	}
	start := -1
	for i := len(knockoutLadder) - 1; i >= 0; i-- {
		if knockoutLadder[i].size >= teams {
			start = i
			break
		}
	}
	if start < 0 {
		// Does not map to any rung (more than sixteen qualifiers).
		return nil
	}
	stages := make([]models.Stage, 0, len(knockoutLadder)-start)
	for _, rung := range knockoutLadder[start:] {
		stages = append(stages, models.Stage{Key: rung.key, Name: rung.name})
	}
	return stages
}
