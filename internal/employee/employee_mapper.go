package employee

// Explicit per-type conversions between the persisted entity and the API
// shapes. Deterministic and side-effect-free.

func toView(e Employee) EmployeeView {
	salary := e.Salary
	return EmployeeView{
		ID: e.ID,
		EmployeeInfo: EmployeeInfo{
			Name:       e.Name,
			Salary:     &salary,
			Department: e.Department,
		},
	}
}

func toEntity(v EmployeeView) Employee {
	return Employee{
		ID:         v.ID,
		Name:       v.Name,
		Salary:     salaryValue(v.Salary),
		Department: v.Department,
	}
}

func infoToEntity(info EmployeeInfo) Employee {
	return Employee{
		Name:       info.Name,
		Salary:     salaryValue(info.Salary),
		Department: info.Department,
	}
}

// salaryValue collapses the request-side pointer back to the stored int.
// Validation rejects absent salaries before any mapping happens, the nil
// branch just keeps the conversion total.
func salaryValue(s *int) int {
	if s == nil {
		return 0
	}
	return *s
}

func toBulkView(list []Employee) BulkEmployeeView {
	views := make([]EmployeeView, len(list))
	for i, e := range list {
		views[i] = toView(e)
	}
	return BulkEmployeeView{Employees: views}
}
