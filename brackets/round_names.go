package brackets

import "fmt"

// eliminationRoundNames is the explicit lookup used when the real number
// of knockout rounds is already known. Keyed by total round count.
var eliminationRoundNames = map[int][]string{
	1: {"Final"},
	2: {"Semifinal", "Final"},
	3: {"Quartas de Final", "Semifinal", "Final"},
	4: {"Oitavas de Final", "Quartas de Final", "Semifinal", "Final"},
	5: {"1ª Fase", "Oitavas de Final", "Quartas de Final", "Semifinal", "Final"},
	6: {"2ª Fase", "1ª Fase", "Oitavas de Final", "Quartas de Final", "Semifinal", "Final"},
}

// GenerateEliminationRoundNames names the rounds of an elimination
// bracket with totalRounds rounds, first round first. Totals above six
// synthesize leading "{n}ª Fase" phases counting down before the fixed
// Quartas/Semifinal/Final tail.
//
// This is intentionally NOT the same algorithm as ComputeStages' ladder:
// it names rounds that already exist, while the ladder guesses future
// stages from qualification math. The two can disagree in edge cases and
// both behaviors are load-bearing for the UI.
func GenerateEliminationRoundNames(totalRounds int) []string {
	if totalRounds <= 0 {
		return []string{}
	}
	if names, ok := eliminationRoundNames[totalRounds]; ok {
		out := make([]string, len(names))
		copy(out, names)
		return out
	}

	names := make([]string, 0, totalRounds)
	for n := totalRounds - 3; n >= 1; n-- {
		names = append(names, fmt.Sprintf("%dª Fase", n))
	}
	names = append(names, "Quartas de Final", "Semifinal", "Final")
	return names
}
