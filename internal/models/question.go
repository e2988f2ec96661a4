package models

// Question is a multiple-choice question-bank entry. Only the primary key
// guards against duplicates; the platform has no dedup semantics beyond it.
type Question struct {
	ID            int    `db:"id" json:"id"`
	Question      string `db:"question" json:"question"`
	OptionA       string `db:"option_a" json:"optionA"`
	OptionB       string `db:"option_b" json:"optionB"`
	OptionC       string `db:"option_c" json:"optionC"`
	OptionD       string `db:"option_d" json:"optionD"`
	CorrectOption string `db:"correct_option" json:"correctOption"`
	Difficulty    string `db:"difficulty" json:"difficulty"`
	Subject       string `db:"subject" json:"subject"`
}
