package services

// Task difficulty labels. Anything outside this set is treated as Medium.
const (
	DifficultyEasy   = "Easy"
	DifficultyMedium = "Medium"
	DifficultyHard   = "Hard"
)

// Point values per difficulty.
const (
	EasyPoints   = 5
	MediumPoints = 10
	HardPoints   = 20
)

// Points maps a difficulty label to its point value. Unrecognized or missing
// labels score as Medium.
func Points(difficulty string) int {
	switch difficulty {
	case DifficultyEasy:
		return EasyPoints
	case DifficultyHard:
		return HardPoints
	default:
		return MediumPoints
	}
}

// NormalizeDifficulty returns the canonical label for storage, defaulting
// to Medium for anything unrecognized.
func NormalizeDifficulty(difficulty string) string {
	switch difficulty {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return difficulty
	default:
		return DifficultyMedium
	}
}
