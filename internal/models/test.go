package models

import "strings"

// Test difficulty levels. Input is matched case-insensitively; values are
// stored lower case.
const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
)

// Difficulties lists the accepted difficulty values in display order.
var Difficulties = []string{DifficultyEasy, DifficultyMedium, DifficultyHard}

// ValidDifficulty reports whether v names a known difficulty, ignoring case.
func ValidDifficulty(v string) bool {
	switch strings.ToLower(v) {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

// NormalizeDifficulty lower-cases a difficulty for storage.
func NormalizeDifficulty(v string) string {
	return strings.ToLower(v)
}

// Test represents a scheduled test owned by a teacher (by email).
type Test struct {
	ID            int    `db:"id" json:"id"`
	Name          string `db:"name" json:"name"`
	Marks         int    `db:"marks" json:"marks"`
	QuestionCount int    `db:"questions_count" json:"totalQuestions"`
	Duration      int    `db:"duration" json:"duration"`
	Difficulty    string `db:"difficulty" json:"difficulty"`
	Subject       string `db:"subject" json:"subject"`
	Teacher       string `db:"teacher" json:"createdBy"`
	ScheduledAt   string `db:"scheduled_at" json:"scheduleDate"`
	DeptName      string `db:"dept_name" json:"dept_name"`
}
