package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPoints(t *testing.T) {
	cases := []struct {
		difficulty string
		want       int
	}{
		{DifficultyEasy, 5},
		{DifficultyMedium, 10},
		{DifficultyHard, 20},
		{"", 10},
		{"banana", 10},
		{"easy", 10}, // labels are case-sensitive; anything off falls back to Medium
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Points(tc.difficulty), "difficulty %q", tc.difficulty)
	}
}

func TestNormalizeDifficulty(t *testing.T) {
	assert.Equal(t, DifficultyEasy, NormalizeDifficulty("Easy"))
	assert.Equal(t, DifficultyHard, NormalizeDifficulty("Hard"))
	assert.Equal(t, DifficultyMedium, NormalizeDifficulty(""))
	assert.Equal(t, DifficultyMedium, NormalizeDifficulty("Impossible"))
}
