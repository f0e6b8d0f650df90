package ledger

type ProvisionBalanceRequest struct {
	EmployeeID string `json:"employee_id" binding:"required,uuid"`
	LeaveType  string `json:"leave_type" binding:"required,oneof=CL SL EL RH"`
	Year       int    `json:"year" binding:"required,min=2000,max=2100"`
	Entitled   string `json:"entitled" binding:"required"`
}

type BalanceResponse struct {
	EmployeeID string `json:"employee_id"`
	LeaveType  string `json:"leave_type"`
	Year       int    `json:"year"`
	Entitled   string `json:"entitled"`
	Reserved   string `json:"reserved"`
	Consumed   string `json:"consumed"`
	Available  string `json:"available"`
}
