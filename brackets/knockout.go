package brackets

import (
	"fmt"
	"math"
	"strings"

	"github.com/matchdaybr/campeonato-system/models"
)

// CalculateKnockoutPhases projects the phase names a knockout stage will
// pass through for the given number of participating teams, from the
// first phase down to "Final". It is a forward-looking preview used while
// the real fixtures do not exist yet; once the backend generates actual
// knockout rounds the projection is never consulted again.
func CalculateKnockoutPhases(teams int) []string {
	var phases []string
	remaining := teams
	for remaining > 1 {
		switch {
		case remaining == 2:
			phases = append(phases, "Final")
			remaining = 1
		case remaining < 8:
			phases = append(phases, "Semifinal")
			remaining = 2
		case remaining < 16:
			phases = append(phases, "Quartas de Final")
			remaining = 4
		case remaining < 32:
			phases = append(phases, "Oitavas de Final")
			remaining = 8
		case remaining < 64:
			phases = append(phases, "Primeira Fase")
			remaining = 16
		default:
			k := int(math.Ceil(math.Log2(float64(remaining)))) - 4 + 1
			phases = append(phases, fmt.Sprintf("%dª Fase", k))
			remaining = (remaining + 1) / 2
		}
	}
	return phases
}

// GeneratePlaceholderMatches builds matchCount display-only match slots
// for a projected phase. Both team references point at the "tbd"
// sentinel; schedule, scores, winner and feeder links stay nil so a
// placeholder can never look playable.
func GeneratePlaceholderMatches(phaseName string, matchCount int, competitionID string) []models.Match {
	matches := make([]models.Match, 0, matchCount)
	slug := slugPhase(phaseName)
	for i := 1; i <= matchCount; i++ {
		matches = append(matches, models.Match{
			ID:               fmt.Sprintf("placeholder-%s-%d", slug, i),
			Competition:      competitionID,
			RoundMatchNumber: i,
			Status:           models.MatchNotStarted,
			TeamHome:         &models.MatchTeam{Competition: competitionID, TeamID: models.PlaceholderTeamID},
			TeamAway:         &models.MatchTeam{Competition: competitionID, TeamID: models.PlaceholderTeamID},
		})
	}
	return matches
}

// ProjectKnockoutRounds combines the phase projection with placeholder
// generation: one RoundData per projected phase, each holding
// floor(teamsInPhase/2) placeholder slots.
func ProjectKnockoutRounds(qualifiedTeams int, competitionID string) []models.RoundData {
	var rounds []models.RoundData
	remaining := qualifiedTeams
	for _, phase := range CalculateKnockoutPhases(qualifiedTeams) {
		if remaining < 2 {
			break
		}
		rounds = append(rounds, models.RoundData{
			ID:      "placeholder-" + slugPhase(phase),
			Name:    phase,
			Matches: GeneratePlaceholderMatches(phase, remaining/2, competitionID),
		})
		remaining = nextPhaseTeams(remaining)
	}
	return rounds
}

// nextPhaseTeams mirrors the remaining-teams update of
// CalculateKnockoutPhases for a single step.
func nextPhaseTeams(remaining int) int {
	switch {
	case remaining == 2:
		return 1
	case remaining < 8:
		return 2
	case remaining < 16:
		return 4
	case remaining < 32:
		return 8
	case remaining < 64:
		return 16
	default:
		return (remaining + 1) / 2
	}
}

var slugReplacer = strings.NewReplacer("ª", "a", "º", "o", " ", "-")

func slugPhase(name string) string {
	return strings.ToLower(slugReplacer.Replace(name))
}
