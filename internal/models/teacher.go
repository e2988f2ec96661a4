package models

// Teacher represents a teacher account row. Passwords are stored as
// ciphertext, not hashes; login recovers the plaintext for comparison.
type Teacher struct {
	ID       int    `db:"id" json:"id"`
	Email    string `db:"email" json:"email"`
	Name     string `db:"name" json:"name"`
	DeptName string `db:"dept_name" json:"department"`
	Password []byte `db:"password" json:"-"`
	Verified bool   `db:"verified" json:"verified"`
}

// TeacherProfile is the login payload: the account plus the aggregates the
// dashboard renders.
type TeacherProfile struct {
	ID              int      `json:"id"`
	Email           string   `json:"email"`
	Name            string   `json:"name"`
	Department      string   `json:"department"`
	Verified        bool     `json:"verified"`
	Subjects        []string `json:"subjects"`
	TestsCreated    int      `json:"tests_created"`
	ResultsAnalyzed int      `json:"results_analyzed"`
}
