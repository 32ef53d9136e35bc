package brackets

import (
	"fmt"
	"sort"

	"github.com/matchdaybr/campeonato-system/models"
)

// UnknownRoundID buckets matches that carry no round reference. The UI
// renders this bucket like any other round.
const UnknownRoundID = "rodada-desconhecida"

// GroupMatchesIntoRounds partitions a flat match list into named rounds.
//
// Rounds come out in discovery order: the first round id seen becomes
// round zero. That order is part of the display contract and must not be
// replaced with chronological or lexical sorting. Matches inside a round
// are ordered by round_match_number.
//
// With elimination naming enabled, round names come from
// GenerateEliminationRoundNames indexed by position; when that list is
// shorter than the round count the leftover rounds fall back to
// "{total-index}ª Fase".
func GroupMatchesIntoRounds(matches []models.Match, eliminationNaming bool) []models.RoundData {
	byRound := make(map[string][]models.Match)
	var order []string

	for _, m := range matches {
		id := UnknownRoundID
		if m.Round != nil && *m.Round != "" {
			id = *m.Round
		}
		if _, seen := byRound[id]; !seen {
			order = append(order, id)
		}
		byRound[id] = append(byRound[id], m)
	}

	var names []string
	if eliminationNaming {
		names = GenerateEliminationRoundNames(len(order))
	}

	rounds := make([]models.RoundData, 0, len(order))
	for i, id := range order {
		name := fmt.Sprintf("Rodada %d", i+1)
		if eliminationNaming {
			if i < len(names) {
				name = names[i]
			} else {
				name = fmt.Sprintf("%dª Fase", len(order)-i)
			}
		}

		ms := byRound[id]
		sort.SliceStable(ms, func(a, b int) bool {
			return ms[a].RoundMatchNumber < ms[b].RoundMatchNumber
		})

		rounds = append(rounds, models.RoundData{ID: id, Name: name, Matches: ms})
	}
	return rounds
}

// SplitRoundsByGroup explodes each round into one RoundData per (round,
// group) pair, used by the groups_elimination format where every group
// plays its own copy of the round. The per-group round keeps the original
// round name under the id "{roundID}-{groupID}". Matches without a group
// reference cannot be attributed to any group and are dropped from the
// split.
func SplitRoundsByGroup(rounds []models.RoundData) []models.RoundData {
	var split []models.RoundData
	for _, round := range rounds {
		byGroup := make(map[string][]models.Match)
		var order []string
		for _, m := range round.Matches {
			if m.Group == nil || *m.Group == "" {
				continue
			}
			gid := *m.Group
			if _, seen := byGroup[gid]; !seen {
				order = append(order, gid)
			}
			byGroup[gid] = append(byGroup[gid], m)
		}
		for _, gid := range order {
			split = append(split, models.RoundData{
				ID:      fmt.Sprintf("%s-%s", round.ID, gid),
				Name:    round.Name,
				Matches: byGroup[gid],
			})
		}
	}
	return split
}
