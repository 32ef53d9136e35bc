package services_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/matchdaybr/campeonato-system/backend"
	"github.com/matchdaybr/campeonato-system/brackets"
	"github.com/matchdaybr/campeonato-system/models"
	"github.com/matchdaybr/campeonato-system/services"
)

func waitForRoomClients(hub *brackets.Hub, room string, want int) bool {
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if hub.RoomClients(room) == want {
			return true
		}
		time.Sleep(5 * time.Millisecond)
	}
	return false
}

func TestRoomForCompetition(t *testing.T) {
	Convey("Room names are derived from the competition id", t, func() {
		So(services.RoomForCompetition("c1"), ShouldEqual, "competition_c1")
	})
}

func TestRefreshNow(t *testing.T) {
	Convey("Given a refresh service with one live subscriber", t, func() {
		data := &backend.CompetitionData{
			Competition: models.Competition{
				ID:     "c1",
				System: models.SystemLeague,
				Status: models.CompetitionInProgress,
			},
			Teams: []models.Team{team("t1", "Alfa")},
		}
		fetcher := &stubFetcher{data: data}
		views := services.NewViewService(fetcher, discardLogger())

		hub := brackets.NewHub(discardLogger())
		go hub.Run()

		room := services.RoomForCompetition("c1")
		client := brackets.NewClient(hub, nil, room)
		hub.Register <- client
		So(waitForRoomClients(hub, room, 1), ShouldBeTrue)

		refresh := services.NewRefreshService(views, hub, discardLogger())

		Convey("When a refresh is forced", func() {
			view, err := refresh.RefreshNow(context.Background(), "c1")

			Convey("Then the rebuilt view is returned", func() {
				So(err, ShouldBeNil)
				So(view.Competition.ID, ShouldEqual, "c1")
			})

			Convey("Then the subscriber receives the update envelope", func() {
				select {
				case raw := <-client.Send:
					var msg brackets.ViewMessage
					So(json.Unmarshal(raw, &msg), ShouldBeNil)
					So(msg.Type, ShouldEqual, "VIEW_UPDATED")
					So(msg.CompetitionID, ShouldEqual, "c1")
					So(msg.Payload, ShouldNotBeNil)
				case <-time.After(2 * time.Second):
					So("broadcast received", ShouldBeEmpty)
				}
			})
		})

		Convey("When the backend fetch fails", func() {
			fetcher.err = backend.ErrNotFound

			_, err := refresh.RefreshNow(context.Background(), "c1")

			Convey("Then the error propagates and nothing is broadcast", func() {
				So(err, ShouldWrap, services.ErrCompetitionNotFound)
				So(client.Send, ShouldBeEmpty)
			})
		})
	})
}
