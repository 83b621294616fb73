package employee

// EmployeeInfo is the create-request payload: everything an employee record
// carries except the id. Salary is a pointer so an absent field is told apart
// from an explicit zero; zero (interns) is fine, negative and missing are not.
type EmployeeInfo struct {
	Name       string `json:"name" validate:"required,notblank"`
	Salary     *int   `json:"salary" validate:"required,gte=0"`
	Department string `json:"department" validate:"required,notblank"`
}

// EmployeeView is the read/update shape. The id must be positive on the
// update and delete paths.
type EmployeeView struct {
	ID int64 `json:"id" validate:"required,gte=1"`
	EmployeeInfo
}

// BulkEmployeeView wraps the full employee listing.
type BulkEmployeeView struct {
	Employees []EmployeeView `json:"employees"`
}
