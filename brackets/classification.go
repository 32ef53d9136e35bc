package brackets

import (
	"fmt"

	"github.com/matchdaybr/campeonato-system/models"
)

// BuildClassifications returns the standing rows to display for a set of
// teams. Backend-computed standings pass through untouched when present;
// before any match has been played (no standings yet) one zero-valued row
// per team is synthesized, positioned 1..N in input order. The synthetic
// position is stable, not score-based: there are no scores yet.
func BuildClassifications(teams []models.Team, standings []models.TeamClassification) []models.TeamClassification {
	if len(standings) > 0 {
		return standings
	}
	rows := make([]models.TeamClassification, 0, len(teams))
	for i, team := range teams {
		rows = append(rows, zeroClassification(team, i+1))
	}
	return rows
}

func zeroClassification(team models.Team, position int) models.TeamClassification {
	return models.TeamClassification{
		ID:       team.ID,
		Team:     team,
		Position: position,
	}
}

// ResolveGroupID extracts the group id of a classification row. The
// backend serves the group reference in three different shapes depending
// on the endpoint, so resolution tries them in priority order: the
// embedded group object, then the flat group_id field, then the fallback.
// The fallback (normally the first group id discovered in the payload)
// keeps orphan rows visible instead of silently dropping them.
func ResolveGroupID(row models.TeamClassification, fallback string) string {
	if row.Group != nil && row.Group.ID != "" {
		return row.Group.ID
	}
	if row.GroupID != "" {
		return row.GroupID
	}
	return fallback
}

// FirstGroupID returns the first resolvable group id in the rows, or ""
// when none of them carries one.
func FirstGroupID(rows []models.TeamClassification) string {
	for _, row := range rows {
		if id := ResolveGroupID(row, ""); id != "" {
			return id
		}
	}
	return ""
}

// SplitClassificationsByGroup buckets standing rows per group, preserving
// both row order inside a group and the discovery order of group ids.
func SplitClassificationsByGroup(rows []models.TeamClassification) ([]string, map[string][]models.TeamClassification) {
	fallback := FirstGroupID(rows)
	byGroup := make(map[string][]models.TeamClassification)
	var order []string
	for _, row := range rows {
		gid := ResolveGroupID(row, fallback)
		if _, seen := byGroup[gid]; !seen {
			order = append(order, gid)
		}
		byGroup[gid] = append(byGroup[gid], row)
	}
	return order, byGroup
}

// GroupLabel names the group at the given index: "Grupo A", "Grupo B"…
func GroupLabel(index int) string {
	return fmt.Sprintf("Grupo %c", rune('A'+index))
}

// SynthesizeGroups partitions the team list into consecutive chunks of
// teamsPerGroup (defaulting to 2 when unset) and labels them
// alphabetically. Used for groups_elimination competitions that have not
// started: no standings exist, so every chunk gets zero-valued
// classification rows with positions restarting at 1.
func SynthesizeGroups(teams []models.Team, teamsPerGroup int) []models.GroupData {
	if teamsPerGroup <= 0 {
		teamsPerGroup = 2
	}
	var groups []models.GroupData
	for start := 0; start < len(teams); start += teamsPerGroup {
		end := start + teamsPerGroup
		if end > len(teams) {
			end = len(teams)
		}
		index := start / teamsPerGroup
		chunk := teams[start:end]

		rows := make([]models.TeamClassification, 0, len(chunk))
		for i, team := range chunk {
			rows = append(rows, zeroClassification(team, i+1))
		}
		groups = append(groups, models.GroupData{
			ID:              fmt.Sprintf("grupo-%c", rune('a'+index)),
			Name:            GroupLabel(index),
			Classifications: rows,
			Rounds:          []models.RoundData{},
		})
	}
	return groups
}
