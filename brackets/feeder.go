package brackets

import (
	"errors"
	"fmt"

	"github.com/dominikbraun/graph"

	"github.com/matchdaybr/campeonato-system/models"
)

// ErrInvalidProgression reports a malformed knockout progression: a
// feeder link pointing at a missing match, a match feeding itself, or a
// cycle in the bracket tree.
var ErrInvalidProgression = errors.New("invalid bracket progression")

// ValidateProgression checks the feeder links of a knockout match list.
// The links must form a directed acyclic graph: each
// home_feeder_match/away_feeder_match edge goes from the preceding match
// to the match its winner advances into, like a conventional tournament
// tree. Consumers treat a validation failure as a data-quality warning,
// never as a reason to drop the view.
func ValidateProgression(matches []models.Match) error {
	g := graph.New(graph.StringHash, graph.Directed(), graph.PreventCycles())

	for _, m := range matches {
		if err := g.AddVertex(m.ID); err != nil && !errors.Is(err, graph.ErrVertexAlreadyExists) {
			return fmt.Errorf("%w: match %s: %v", ErrInvalidProgression, m.ID, err)
		}
	}

	for _, m := range matches {
		for _, feeder := range []*string{m.HomeFeederMatch, m.AwayFeederMatch} {
			if feeder == nil || *feeder == "" {
				continue
			}
			if *feeder == m.ID {
				return fmt.Errorf("%w: match %s feeds itself", ErrInvalidProgression, m.ID)
			}
			if _, err := g.Vertex(*feeder); err != nil {
				return fmt.Errorf("%w: match %s references unknown feeder %s", ErrInvalidProgression, m.ID, *feeder)
			}
			err := g.AddEdge(*feeder, m.ID)
			switch {
			case err == nil:
			case errors.Is(err, graph.ErrEdgeAlreadyExists):
				// Same feeder wired into both slots; tolerated.
			case errors.Is(err, graph.ErrEdgeCreatesCycle):
				return fmt.Errorf("%w: cycle through match %s", ErrInvalidProgression, m.ID)
			default:
				return fmt.Errorf("%w: match %s: %v", ErrInvalidProgression, m.ID, err)
			}
		}
	}

	if _, err := graph.TopologicalSort(g); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidProgression, err)
	}
	return nil
}
