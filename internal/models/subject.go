package models

// Department is a referential anchor only; nothing in the API mutates it.
type Department struct {
	Name string `db:"department_name" json:"department_name"`
}

// Subject belongs to a department and feeds the login profile's subject list.
type Subject struct {
	Name     string `db:"subject_name" json:"subject_name"`
	DeptName string `db:"dept_name" json:"dept_name"`
}
