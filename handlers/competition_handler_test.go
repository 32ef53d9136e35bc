package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v4"
	. "github.com/smartystreets/goconvey/convey"

	"github.com/matchdaybr/campeonato-system/handlers"
	"github.com/matchdaybr/campeonato-system/middleware"
	"github.com/matchdaybr/campeonato-system/models"
	"github.com/matchdaybr/campeonato-system/services"
)

type stubViewService struct {
	view *models.CompetitionView
	err  error
}

func (s *stubViewService) GetCompetitionView(ctx context.Context, competitionID string) (*models.CompetitionView, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.view, nil
}

func (s *stubViewService) GetStages(ctx context.Context, competitionID string) ([]models.Stage, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.view.Stages, nil
}

func (s *stubViewService) GetKnockoutRounds(ctx context.Context, competitionID string) ([]models.RoundData, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.view.KnockoutRounds, nil
}

func (s *stubViewService) Invalidate(competitionID string) {}

type stubRefreshService struct {
	view      *models.CompetitionView
	refreshed []string
}

func (s *stubRefreshService) Follow(competitionID string)   {}
func (s *stubRefreshService) Unfollow(competitionID string) {}

func (s *stubRefreshService) RefreshNow(ctx context.Context, competitionID string) (*models.CompetitionView, error) {
	s.refreshed = append(s.refreshed, competitionID)
	return s.view, nil
}

func (s *stubRefreshService) Run(ctx context.Context, interval time.Duration) {}

func sampleView() *models.CompetitionView {
	return &models.CompetitionView{
		Competition: models.Competition{ID: "c1", Name: "Copa", System: models.SystemLeague},
		Stages:      []models.Stage{{Key: "league", Name: "PONTOS CORRIDOS"}},
		Groups: []models.GroupData{{
			ID:              "tabela-geral",
			Name:            "Tabela Geral",
			Classifications: []models.TeamClassification{},
			Rounds:          []models.RoundData{},
		}},
	}
}

func testRouter(views services.ViewService, refresh *stubRefreshService, auth *middleware.Auth) *chi.Mux {
	competition := handlers.NewCompetitionHandler(views, refresh)
	router := chi.NewRouter()
	router.Route("/competitions/{competitionID}", func(r chi.Router) {
		r.Get("/view", competition.GetViewHandler)
		r.Get("/stages", competition.GetStagesHandler)
		r.Get("/knockout", competition.GetKnockoutHandler)
		r.Group(func(r chi.Router) {
			r.Use(auth.Authenticate)
			r.Use(auth.Authorize("organizer"))
			r.Post("/refresh", competition.RefreshHandler)
		})
	})
	return router
}

func TestCompetitionHandlers(t *testing.T) {
	Convey("Given the competition routes over stub services", t, func() {
		views := &stubViewService{view: sampleView()}
		refresh := &stubRefreshService{view: sampleView()}
		auth := middleware.NewAuth("test-secret")
		router := testRouter(views, refresh, auth)

		Convey("When the view endpoint is hit", func() {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/competitions/c1/view", nil))

			Convey("Then the assembled view comes back wrapped", func() {
				So(rec.Code, ShouldEqual, http.StatusOK)
				So(rec.Header().Get("Content-Type"), ShouldEqual, "application/json")

				var body struct {
					View models.CompetitionView `json:"view"`
				}
				So(json.Unmarshal(rec.Body.Bytes(), &body), ShouldBeNil)
				So(body.View.Competition.ID, ShouldEqual, "c1")
				So(body.View.Groups, ShouldHaveLength, 1)
			})
		})

		Convey("When the stages endpoint is hit", func() {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/competitions/c1/stages", nil))

			So(rec.Code, ShouldEqual, http.StatusOK)
			var body struct {
				Stages []models.Stage `json:"stages"`
			}
			So(json.Unmarshal(rec.Body.Bytes(), &body), ShouldBeNil)
			So(body.Stages, ShouldResemble, sampleView().Stages)
		})

		Convey("When the competition does not exist", func() {
			views.err = services.ErrCompetitionNotFound
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/competitions/ghost/view", nil))

			So(rec.Code, ShouldEqual, http.StatusNotFound)
		})

		Convey("When the backend is unavailable", func() {
			views.err = services.ErrBackendUnavailable
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/competitions/c1/knockout", nil))

			So(rec.Code, ShouldEqual, http.StatusBadGateway)
		})

		Convey("When a refresh is posted without a token", func() {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/competitions/c1/refresh", nil))

			Convey("Then the request is rejected before reaching the service", func() {
				So(rec.Code, ShouldEqual, http.StatusUnauthorized)
				So(refresh.refreshed, ShouldBeEmpty)
			})
		})

		Convey("When an organizer posts a refresh", func() {
			token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
				"user_id": "u1",
				"role":    "organizer",
			})
			signed, err := token.SignedString([]byte("test-secret"))
			So(err, ShouldBeNil)

			req := httptest.NewRequest(http.MethodPost, "/competitions/c1/refresh", nil)
			req.Header.Set("Authorization", "Bearer "+signed)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			Convey("Then the view is rebuilt and returned", func() {
				So(rec.Code, ShouldEqual, http.StatusOK)
				So(refresh.refreshed, ShouldResemble, []string{"c1"})
			})
		})
	})
}

func TestNamingHandlers(t *testing.T) {
	Convey("Given the naming routes", t, func() {
		naming := handlers.NewNamingHandler()
		router := chi.NewRouter()
		router.Get("/naming/elimination-rounds", naming.EliminationRoundNamesHandler)
		router.Get("/naming/knockout-phases", naming.KnockoutPhasesHandler)

		Convey("When round names are requested for four rounds", func() {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/naming/elimination-rounds?total=4", nil))

			So(rec.Code, ShouldEqual, http.StatusOK)
			var body struct {
				RoundNames []string `json:"round_names"`
			}
			So(json.Unmarshal(rec.Body.Bytes(), &body), ShouldBeNil)
			So(body.RoundNames, ShouldResemble, []string{"Oitavas de Final", "Quartas de Final", "Semifinal", "Final"})
		})

		Convey("When phases are requested for six teams", func() {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/naming/knockout-phases?teams=6", nil))

			So(rec.Code, ShouldEqual, http.StatusOK)
			var body struct {
				Phases []string `json:"phases"`
			}
			So(json.Unmarshal(rec.Body.Bytes(), &body), ShouldBeNil)
			So(body.Phases, ShouldResemble, []string{"Semifinal", "Final"})
		})

		Convey("When the query parameter is missing or not a positive number", func() {
			for _, target := range []string{
				"/naming/elimination-rounds",
				"/naming/elimination-rounds?total=zero",
				"/naming/knockout-phases?teams=-2",
			} {
				rec := httptest.NewRecorder()
				router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
				So(rec.Code, ShouldEqual, http.StatusBadRequest)
			}
		})
	})
}
