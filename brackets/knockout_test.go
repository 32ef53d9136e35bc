package brackets_test

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/matchdaybr/campeonato-system/brackets"
	"github.com/matchdaybr/campeonato-system/models"
)

func TestCalculateKnockoutPhases(t *testing.T) {
	Convey("Given various qualified team counts", t, func() {
		Convey("Then 2 teams play only the final", func() {
			So(brackets.CalculateKnockoutPhases(2), ShouldResemble, []string{"Final"})
		})

		Convey("Then 6 teams go semifinal then final", func() {
			So(brackets.CalculateKnockoutPhases(6), ShouldResemble, []string{"Semifinal", "Final"})
		})

		Convey("Then 8 teams start at the quarterfinals", func() {
			So(brackets.CalculateKnockoutPhases(8), ShouldResemble,
				[]string{"Quartas de Final", "Semifinal", "Final"})
		})

		Convey("Then 16 teams start at the round of sixteen", func() {
			So(brackets.CalculateKnockoutPhases(16), ShouldResemble,
				[]string{"Oitavas de Final", "Quartas de Final", "Semifinal", "Final"})
		})

		Convey("Then 32 teams gain a first phase", func() {
			So(brackets.CalculateKnockoutPhases(32), ShouldResemble,
				[]string{"Primeira Fase", "Oitavas de Final", "Quartas de Final", "Semifinal", "Final"})
		})

		Convey("Then every cascade ends in the final", func() {
			for _, teams := range []int{2, 3, 5, 6, 8, 12, 16, 24, 32, 64} {
				phases := brackets.CalculateKnockoutPhases(teams)
				So(phases, ShouldNotBeEmpty)
				So(phases[len(phases)-1], ShouldEqual, "Final")
			}
		})

		Convey("Then fewer than two teams project nothing", func() {
			So(brackets.CalculateKnockoutPhases(1), ShouldBeEmpty)
			So(brackets.CalculateKnockoutPhases(0), ShouldBeEmpty)
		})
	})
}

func TestGeneratePlaceholderMatches(t *testing.T) {
	Convey("Given a projected semifinal with two slots", t, func() {
		matches := brackets.GeneratePlaceholderMatches("Semifinal", 2, "comp-1")

		Convey("Then every slot is a display-only placeholder", func() {
			So(matches, ShouldHaveLength, 2)
			for _, m := range matches {
				So(m.TeamHome.TeamID, ShouldEqual, models.PlaceholderTeamID)
				So(m.TeamAway.TeamID, ShouldEqual, models.PlaceholderTeamID)
				So(m.Status, ShouldEqual, models.MatchNotStarted)
				So(m.ScoreHome, ShouldBeNil)
				So(m.ScoreAway, ShouldBeNil)
				So(m.Winner, ShouldBeNil)
				So(m.ScheduledAt, ShouldBeNil)
				So(m.HomeFeederMatch, ShouldBeNil)
				So(m.AwayFeederMatch, ShouldBeNil)
				So(m.IsPlaceholder(), ShouldBeTrue)
			}
		})

		Convey("Then ids slug the phase name", func() {
			So(matches[0].ID, ShouldEqual, "placeholder-semifinal-1")
			So(matches[1].ID, ShouldEqual, "placeholder-semifinal-2")
		})
	})

	Convey("Given a phase with an accented ordinal name", t, func() {
		matches := brackets.GeneratePlaceholderMatches("1ª Fase", 1, "comp-1")
		So(matches[0].ID, ShouldEqual, "placeholder-1a-fase-1")
	})
}

func TestProjectKnockoutRounds(t *testing.T) {
	Convey("Given eight qualified teams", t, func() {
		rounds := brackets.ProjectKnockoutRounds(8, "comp-1")

		Convey("Then the projection carries one round per phase", func() {
			So(rounds, ShouldHaveLength, 3)
			So(rounds[0].Name, ShouldEqual, "Quartas de Final")
			So(rounds[1].Name, ShouldEqual, "Semifinal")
			So(rounds[2].Name, ShouldEqual, "Final")
		})

		Convey("Then slot counts halve phase by phase", func() {
			So(rounds[0].Matches, ShouldHaveLength, 4)
			So(rounds[1].Matches, ShouldHaveLength, 2)
			So(rounds[2].Matches, ShouldHaveLength, 1)
		})
	})
}
