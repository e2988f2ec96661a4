package models

import "time"

// ResultRecord is one row of the result feed: a result joined with the
// student who produced it, filtered by owning teacher.
type ResultRecord struct {
	ID           int       `db:"id" json:"id"`
	TestID       int       `db:"test_id" json:"test_id"`
	TestName     string    `db:"test_name" json:"test_name"`
	TeacherEmail string    `db:"teacher_email" json:"teacher_email"`
	StudentEmail string    `db:"student_email" json:"student_email"`
	StudentName  string    `db:"student_name" json:"student_name"`
	Score        int       `db:"score" json:"score"`
	TotalMarks   int       `db:"total_marks" json:"total_marks"`
	SubmittedAt  time.Time `db:"submitted_at" json:"submitted_at"`
}
