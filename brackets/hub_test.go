package brackets_test

import (
	"io"
	"log/slog"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/matchdaybr/campeonato-system/brackets"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func waitForClients(hub *brackets.Hub, room string, want int) bool {
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if hub.RoomClients(room) == want {
			return true
		}
		time.Sleep(5 * time.Millisecond)
	}
	return false
}

func TestHubRooms(t *testing.T) {
	Convey("Given a running hub", t, func() {
		hub := brackets.NewHub(testLogger())
		go hub.Run()

		Convey("When two clients join the same room", func() {
			first := brackets.NewClient(hub, nil, "competition_c1")
			second := brackets.NewClient(hub, nil, "competition_c1")
			hub.Register <- first
			hub.Register <- second

			Convey("Then the room counts both", func() {
				So(waitForClients(hub, "competition_c1", 2), ShouldBeTrue)
			})

			Convey("Then a broadcast reaches both send queues", func() {
				So(waitForClients(hub, "competition_c1", 2), ShouldBeTrue)
				hub.BroadcastToRoom("competition_c1", brackets.ViewMessage{Type: "VIEW_UPDATED"})
				So(len(first.Send), ShouldEqual, 1)
				So(len(second.Send), ShouldEqual, 1)
			})

			Convey("Then unregistering both empties the room", func() {
				So(waitForClients(hub, "competition_c1", 2), ShouldBeTrue)
				hub.Unregister <- first
				hub.Unregister <- second
				So(waitForClients(hub, "competition_c1", 0), ShouldBeTrue)
			})
		})

		Convey("When a broadcast targets a room nobody joined", func() {
			Convey("Then it is a no-op", func() {
				hub.BroadcastToRoom("competition_ghost", brackets.ViewMessage{Type: "VIEW_UPDATED"})
				So(hub.RoomClients("competition_ghost"), ShouldEqual, 0)
			})
		})
	})
}
