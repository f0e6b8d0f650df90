package directory

type EmployeeOption struct {
	ID       string `json:"id"`
	StaffNo  string `json:"staff_no"`
	FullName string `json:"full_name"`
	Role     string `json:"role"`
}

// RoutingOptionsResponse lists the candidates an employee may pick as
// recommender, approver or substitute when submitting a leave request.
type RoutingOptionsResponse struct {
	Recommenders []EmployeeOption `json:"recommenders"`
	Approvers    []EmployeeOption `json:"approvers"`
	Substitutes  []EmployeeOption `json:"substitutes"`
}
