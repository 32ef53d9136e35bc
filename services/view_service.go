package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"hash/fnv"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/matchdaybr/campeonato-system/backend"
	"github.com/matchdaybr/campeonato-system/brackets"
	"github.com/matchdaybr/campeonato-system/metrics"
	"github.com/matchdaybr/campeonato-system/models"
)

// CompetitionDataFetcher is the slice of the backend client the view
// service depends on.
type CompetitionDataFetcher interface {
	FetchCompetitionData(ctx context.Context, competitionID string) (*backend.CompetitionData, error)
}

// ViewService turns raw backend payloads into the format-specific view
// model the presentation layer consumes. Assembly is a pure derivation;
// the service adds fetching and a memo cache keyed by an input hash, so
// identical payloads never recompute.
type ViewService interface {
	GetCompetitionView(ctx context.Context, competitionID string) (*models.CompetitionView, error)
	GetStages(ctx context.Context, competitionID string) ([]models.Stage, error)
	GetKnockoutRounds(ctx context.Context, competitionID string) ([]models.RoundData, error)
	Invalidate(competitionID string)
}

type viewService struct {
	fetcher CompetitionDataFetcher
	logger  *slog.Logger

	mu    sync.Mutex
	cache map[string]cachedView
}

type cachedView struct {
	inputHash uint64
	view      models.CompetitionView
}

func NewViewService(fetcher CompetitionDataFetcher, logger *slog.Logger) ViewService {
	return &viewService{
		fetcher: fetcher,
		logger:  logger,
		cache:   make(map[string]cachedView),
	}
}

func (s *viewService) GetCompetitionView(ctx context.Context, competitionID string) (*models.CompetitionView, error) {
	start := time.Now()
	data, err := s.fetcher.FetchCompetitionData(ctx, competitionID)
	metrics.ObserveBackendFetch(time.Since(start).Seconds())
	if err != nil {
		return nil, s.mapFetchError(competitionID, err)
	}

	hash, err := hashInputs(data)
	if err != nil {
		// Hashing failure only disables memoization; assembly proceeds.
		s.logger.WarnContext(ctx, "failed to hash view inputs, skipping cache",
			slog.String("competition_id", competitionID), slog.Any("error", err))
		view := s.assemble(ctx, data)
		return &view, nil
	}

	s.mu.Lock()
	if cached, ok := s.cache[competitionID]; ok && cached.inputHash == hash {
		s.mu.Unlock()
		metrics.RecordViewCacheHit()
		view := cached.view
		return &view, nil
	}
	s.mu.Unlock()

	metrics.RecordViewCacheMiss()
	view := s.assemble(ctx, data)

	s.mu.Lock()
	s.cache[competitionID] = cachedView{inputHash: hash, view: view}
	s.mu.Unlock()

	return &view, nil
}

func (s *viewService) GetStages(ctx context.Context, competitionID string) ([]models.Stage, error) {
	view, err := s.GetCompetitionView(ctx, competitionID)
	if err != nil {
		return nil, err
	}
	return view.Stages, nil
}

func (s *viewService) GetKnockoutRounds(ctx context.Context, competitionID string) ([]models.RoundData, error) {
	view, err := s.GetCompetitionView(ctx, competitionID)
	if err != nil {
		return nil, err
	}
	return view.KnockoutRounds, nil
}

// Invalidate drops the memoized view of a competition so the next read
// recomputes even for identical inputs.
func (s *viewService) Invalidate(competitionID string) {
	s.mu.Lock()
	delete(s.cache, competitionID)
	s.mu.Unlock()
}

func (s *viewService) mapFetchError(competitionID string, err error) error {
	switch {
	case errors.Is(err, backend.ErrNotFound):
		return fmt.Errorf("%w: %s", ErrCompetitionNotFound, competitionID)
	case errors.Is(err, backend.ErrBackendUnavailable):
		return fmt.Errorf("%w: %v", ErrBackendUnavailable, err)
	default:
		return err
	}
}

func (s *viewService) assemble(ctx context.Context, data *backend.CompetitionData) models.CompetitionView {
	view := AssembleView(*data)
	metrics.RecordViewAssembled(string(data.Competition.System))

	// Feeder links are backend-owned; a broken progression is worth a
	// warning but never blocks the view.
	if data.Competition.System != models.SystemLeague {
		if err := brackets.ValidateProgression(knockoutMatches(data.Matches)); err != nil {
			s.logger.WarnContext(ctx, "bracket progression validation failed",
				slog.String("competition_id", data.Competition.ID),
				slog.Any("error", err))
		}
	}
	return view
}

// AssembleView is the pure derivation at the heart of the service: given
// a competition's config, teams, matches and standings it builds the
// per-format display structure. It never fails; malformed or missing
// input degrades to empty output.
func AssembleView(data backend.CompetitionData) models.CompetitionView {
	competition := data.Competition
	view := models.CompetitionView{
		Competition: competition,
		Groups:      []models.GroupData{},
	}

	switch competition.System {
	case models.SystemLeague:
		view.Groups = []models.GroupData{{
			ID:              "tabela-geral",
			Name:            "Tabela Geral",
			Classifications: brackets.BuildClassifications(data.Teams, data.Standings),
			Rounds:          brackets.GroupMatchesIntoRounds(data.Matches, false),
		}}
		view.Stages = brackets.ComputeStages(competition.System, brackets.StageParams{})

	case models.SystemGroupsElimination:
		if competition.Started() {
			view.Groups = assembleStartedGroups(data)
		} else {
			view.Groups = assembleSynthesizedGroups(data)
		}
		view.KnockoutRounds = assembleKnockoutRounds(data, len(view.Groups))
		view.Stages = brackets.ComputeStages(competition.System, brackets.StageParams{
			TeamsPerGroup:          competition.TeamsPerGroup,
			TeamsQualifiedPerGroup: competition.TeamsQualifiedPerGroup,
			NumberOfGroups:         len(view.Groups),
		})

	case models.SystemElimination:
		view.Groups = []models.GroupData{{
			ID:              "chaveamento",
			Name:            "Chaveamento",
			Classifications: []models.TeamClassification{},
			Rounds:          brackets.GroupMatchesIntoRounds(data.Matches, true),
		}}
		view.Stages = brackets.ComputeStages(competition.System, brackets.StageParams{
			TotalTeams: len(data.Teams),
		})

	default:
		// Unknown system from the backend: render an empty but valid view.
		view.Stages = brackets.ComputeStages(competition.System, brackets.StageParams{})
	}

	return view
}

// assembleSynthesizedGroups covers groups_elimination competitions that
// have not started: teams are chunked into previewed groups and a round
// is attributed to every group one of its matches involves.
func assembleSynthesizedGroups(data backend.CompetitionData) []models.GroupData {
	groups := brackets.SynthesizeGroups(data.Teams, data.Competition.TeamsPerGroup)
	rounds := brackets.GroupMatchesIntoRounds(data.Matches, false)

	for i := range groups {
		members := make(map[string]bool, len(groups[i].Classifications))
		for _, row := range groups[i].Classifications {
			members[row.Team.ID] = true
		}
		for _, round := range rounds {
			if roundInvolves(round, members) {
				groups[i].Rounds = append(groups[i].Rounds, round)
			}
		}
	}
	return groups
}

func roundInvolves(round models.RoundData, members map[string]bool) bool {
	for _, m := range round.Matches {
		if m.TeamHome != nil && members[m.TeamHome.TeamID] {
			return true
		}
		if m.TeamAway != nil && members[m.TeamAway.TeamID] {
			return true
		}
	}
	return false
}

// assembleStartedGroups covers groups_elimination competitions that are
// underway: the group id set is the union of ids seen in standings and in
// matches, in first-seen order, and each group is labeled alphabetically
// over that union.
func assembleStartedGroups(data backend.CompetitionData) []models.GroupData {
	clsOrder, clsByGroup := brackets.SplitClassificationsByGroup(data.Standings)

	union := make([]string, 0, len(clsOrder))
	seen := make(map[string]bool, len(clsOrder))
	for _, gid := range clsOrder {
		if gid == "" || seen[gid] {
			continue
		}
		seen[gid] = true
		union = append(union, gid)
	}
	for _, m := range data.Matches {
		if m.Group == nil || *m.Group == "" || seen[*m.Group] {
			continue
		}
		seen[*m.Group] = true
		union = append(union, *m.Group)
	}

	splitRounds := brackets.SplitRoundsByGroup(brackets.GroupMatchesIntoRounds(groupStageMatches(data.Matches), false))
	roundsByGroup := make(map[string][]models.RoundData)
	for _, round := range splitRounds {
		if len(round.Matches) == 0 || round.Matches[0].Group == nil {
			continue
		}
		gid := *round.Matches[0].Group
		roundsByGroup[gid] = append(roundsByGroup[gid], round)
	}

	groups := make([]models.GroupData, 0, len(union))
	for i, gid := range union {
		classifications := clsByGroup[gid]
		if classifications == nil {
			classifications = []models.TeamClassification{}
		}
		rounds := roundsByGroup[gid]
		if rounds == nil {
			rounds = []models.RoundData{}
		}
		groups = append(groups, models.GroupData{
			ID:              gid,
			Name:            brackets.GroupLabel(i),
			Classifications: classifications,
			Rounds:          rounds,
		})
	}
	return groups
}

// assembleKnockoutRounds decides between the forward-looking placeholder
// projection and the real backend-supplied knockout rounds. The
// projection is only authoritative while the group stage is still being
// played (or has no fixtures yet); once every group match is finished the
// real rounds win, relabeled uppercase.
func assembleKnockoutRounds(data backend.CompetitionData, numberOfGroups int) []models.RoundData {
	competition := data.Competition
	groupMatches := groupStageMatches(data.Matches)
	knockout := knockoutMatches(data.Matches)

	groupStageFinished := len(groupMatches) > 0 && allFinished(groupMatches)

	if !groupStageFinished && numberOfGroups > 0 && competition.TeamsQualifiedPerGroup > 0 {
		qualified := numberOfGroups * competition.TeamsQualifiedPerGroup
		return brackets.ProjectKnockoutRounds(qualified, competition.ID)
	}

	if len(knockout) == 0 {
		return nil
	}
	rounds := brackets.GroupMatchesIntoRounds(knockout, true)
	for i := range rounds {
		rounds[i].Name = strings.ToUpper(rounds[i].Name)
	}
	return rounds
}

func groupStageMatches(matches []models.Match) []models.Match {
	var out []models.Match
	for _, m := range matches {
		if m.Group != nil && *m.Group != "" {
			out = append(out, m)
		}
	}
	return out
}

func knockoutMatches(matches []models.Match) []models.Match {
	var out []models.Match
	for _, m := range matches {
		if m.Group == nil || *m.Group == "" {
			out = append(out, m)
		}
	}
	return out
}

func allFinished(matches []models.Match) bool {
	for _, m := range matches {
		if !m.Finished() {
			return false
		}
	}
	return true
}

// hashInputs fingerprints the full input payload. FNV over the canonical
// JSON is enough here: the hash only gates memoization, collisions are
// not a correctness risk worth a cryptographic digest.
func hashInputs(data *backend.CompetitionData) (uint64, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return 0, err
	}
	h := fnv.New64a()
	if _, err := h.Write(raw); err != nil {
		return 0, err
	}
	return h.Sum64(), nil
}
