package services

import (
	"context"
	"encoding/json"
	"hash/fnv"
	"log/slog"
	"sync"
	"time"

	"github.com/matchdaybr/campeonato-system/brackets"
	"github.com/matchdaybr/campeonato-system/metrics"
	"github.com/matchdaybr/campeonato-system/models"
)

// RoomForCompetition names the WebSocket room carrying a competition's
// live view updates.
func RoomForCompetition(competitionID string) string {
	return "competition_" + competitionID
}

// RefreshService periodically re-derives the views of followed
// competitions and pushes them to their WebSocket rooms when they
// actually changed. Competitions are followed as soon as any client asks
// for them and unfollowed when their room empties out.
type RefreshService interface {
	Follow(competitionID string)
	Unfollow(competitionID string)
	RefreshNow(ctx context.Context, competitionID string) (*models.CompetitionView, error)
	Run(ctx context.Context, interval time.Duration)
}

type refreshService struct {
	views  ViewService
	hub    *brackets.Hub
	logger *slog.Logger

	mu       sync.Mutex
	followed map[string]bool
	lastHash map[string]uint64
}

func NewRefreshService(views ViewService, hub *brackets.Hub, logger *slog.Logger) RefreshService {
	return &refreshService{
		views:    views,
		hub:      hub,
		logger:   logger,
		followed: make(map[string]bool),
		lastHash: make(map[string]uint64),
	}
}

func (s *refreshService) Follow(competitionID string) {
	if competitionID == "" {
		return
	}
	s.mu.Lock()
	s.followed[competitionID] = true
	s.mu.Unlock()
}

func (s *refreshService) Unfollow(competitionID string) {
	s.mu.Lock()
	delete(s.followed, competitionID)
	delete(s.lastHash, competitionID)
	s.mu.Unlock()
}

// RefreshNow busts the view cache, re-derives the view and broadcasts it
// unconditionally. Used by the organizer-triggered refresh endpoint.
func (s *refreshService) RefreshNow(ctx context.Context, competitionID string) (*models.CompetitionView, error) {
	s.views.Invalidate(competitionID)
	view, err := s.views.GetCompetitionView(ctx, competitionID)
	if err != nil {
		return nil, err
	}
	s.broadcast(competitionID, view)
	return view, nil
}

// Run drives the refresh loop until the context is canceled. One
// immediate cycle happens at startup, then one per interval, mirroring
// the scheduler the rest of the service wiring expects.
func (s *refreshService) Run(ctx context.Context, interval time.Duration) {
	s.logger.Info("view refresh scheduler started", slog.Duration("interval", interval))
	s.cycle(ctx)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			s.logger.Info("view refresh scheduler stopped")
			return
		case <-ticker.C:
			s.cycle(ctx)
		}
	}
}

func (s *refreshService) cycle(ctx context.Context) {
	start := time.Now()
	defer func() { metrics.ObserveRefreshCycle(time.Since(start).Seconds()) }()

	s.mu.Lock()
	ids := make([]string, 0, len(s.followed))
	for id := range s.followed {
		ids = append(ids, id)
	}
	s.mu.Unlock()

	for _, id := range ids {
		// An empty room means nobody is watching live; stop polling.
		if s.hub.RoomClients(RoomForCompetition(id)) == 0 {
			s.Unfollow(id)
			continue
		}

		view, err := s.views.GetCompetitionView(ctx, id)
		if err != nil {
			s.logger.WarnContext(ctx, "refresh cycle: failed to rebuild view",
				slog.String("competition_id", id), slog.Any("error", err))
			continue
		}

		hash, err := hashView(view)
		if err != nil {
			s.logger.WarnContext(ctx, "refresh cycle: failed to hash view",
				slog.String("competition_id", id), slog.Any("error", err))
			continue
		}

		s.mu.Lock()
		changed := s.lastHash[id] != hash
		s.lastHash[id] = hash
		s.mu.Unlock()

		if changed {
			s.broadcast(id, view)
		}
	}
}

func (s *refreshService) broadcast(competitionID string, view *models.CompetitionView) {
	s.hub.BroadcastToRoom(RoomForCompetition(competitionID), brackets.ViewMessage{
		Type:          "VIEW_UPDATED",
		Payload:       view,
		CompetitionID: competitionID,
	})
}

func hashView(view *models.CompetitionView) (uint64, error) {
	raw, err := json.Marshal(view)
	if err != nil {
		return 0, err
	}
	h := fnv.New64a()
	if _, err := h.Write(raw); err != nil {
		return 0, err
	}
	return h.Sum64(), nil
}
