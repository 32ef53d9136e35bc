package backend

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/matchdaybr/campeonato-system/models"
)

var (
	// ErrNotFound means the backend answered 404 for the resource.
	ErrNotFound = errors.New("backend resource not found")
	// ErrBackendUnavailable wraps transport failures and 5xx answers.
	ErrBackendUnavailable = errors.New("backend unavailable")
)

// CompetitionData bundles the four payloads the view engine derives from.
// Auxiliary collections may be empty when their fetch failed or the
// backend has nothing yet; the engine treats missing inputs as empty.
type CompetitionData struct {
	Competition models.Competition
	Teams       []models.Team
	Matches     []models.Match
	Standings   []models.TeamClassification
}

// Client is a typed HTTP client for the external tournament backend.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

func NewClient(baseURL string, timeout time.Duration, logger *slog.Logger) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

func (c *Client) GetCompetition(ctx context.Context, competitionID string) (*models.Competition, error) {
	var competition models.Competition
	path := fmt.Sprintf("/competitions/%s", url.PathEscape(competitionID))
	if err := c.getJSON(ctx, path, &competition); err != nil {
		return nil, err
	}
	return &competition, nil
}

func (c *Client) ListTeams(ctx context.Context, competitionID string) ([]models.Team, error) {
	var teams []models.Team
	path := fmt.Sprintf("/competitions/%s/teams", url.PathEscape(competitionID))
	if err := c.getJSON(ctx, path, &teams); err != nil {
		return nil, err
	}
	return teams, nil
}

func (c *Client) ListMatches(ctx context.Context, competitionID string) ([]models.Match, error) {
	var matches []models.Match
	path := fmt.Sprintf("/competitions/%s/matches", url.PathEscape(competitionID))
	if err := c.getJSON(ctx, path, &matches); err != nil {
		return nil, err
	}
	return matches, nil
}

func (c *Client) ListStandings(ctx context.Context, competitionID string) ([]models.TeamClassification, error) {
	var standings []models.TeamClassification
	path := fmt.Sprintf("/competitions/%s/classifications", url.PathEscape(competitionID))
	if err := c.getJSON(ctx, path, &standings); err != nil {
		return nil, err
	}
	return standings, nil
}

// FetchCompetitionData fetches the competition plus its teams, matches
// and standings concurrently. The competition itself is mandatory; any of
// the auxiliary fetches failing degrades to an empty collection with a
// warn log, never to an error, so a half-available backend still yields a
// renderable view.
func (c *Client) FetchCompetitionData(ctx context.Context, competitionID string) (*CompetitionData, error) {
	data := &CompetitionData{}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		competition, err := c.GetCompetition(gctx, competitionID)
		if err != nil {
			return fmt.Errorf("fetch competition %s: %w", competitionID, err)
		}
		data.Competition = *competition
		return nil
	})
	g.Go(func() error {
		teams, err := c.ListTeams(gctx, competitionID)
		if err != nil {
			c.warnPartial(ctx, "teams", competitionID, err)
			return nil
		}
		data.Teams = teams
		return nil
	})
	g.Go(func() error {
		matches, err := c.ListMatches(gctx, competitionID)
		if err != nil {
			c.warnPartial(ctx, "matches", competitionID, err)
			return nil
		}
		data.Matches = matches
		return nil
	})
	g.Go(func() error {
		standings, err := c.ListStandings(gctx, competitionID)
		if err != nil {
			c.warnPartial(ctx, "standings", competitionID, err)
			return nil
		}
		data.Standings = standings
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return data, nil
}

func (c *Client) warnPartial(ctx context.Context, payload, competitionID string, err error) {
	c.logger.WarnContext(ctx, "partial competition data, continuing with empty collection",
		slog.String("payload", payload),
		slog.String("competition_id", competitionID),
		slog.Any("error", err))
}

func (c *Client) getJSON(ctx context.Context, path string, dst interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("build request %s: %w", path, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: GET %s: %v", ErrBackendUnavailable, path, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("%w: GET %s", ErrNotFound, path)
	case resp.StatusCode >= http.StatusInternalServerError:
		return fmt.Errorf("%w: GET %s returned %d", ErrBackendUnavailable, path, resp.StatusCode)
	case resp.StatusCode != http.StatusOK:
		return fmt.Errorf("GET %s returned unexpected status %d", path, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 10<<20))
	if err != nil {
		return fmt.Errorf("read response of GET %s: %w", path, err)
	}
	if err := json.Unmarshal(body, dst); err != nil {
		return fmt.Errorf("decode response of GET %s: %w", path, err)
	}
	return nil
}
