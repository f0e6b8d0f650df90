package joining

type SubmitJoiningRequest struct {
	JoiningDate string `json:"joining_date" binding:"required"`
	ReportRef   string `json:"report_ref"`
}

type JoiningResponse struct {
	ID             string  `json:"id"`
	LeaveRequestID string  `json:"leave_request_id"`
	Status         string  `json:"status"`
	JoiningDate    *string `json:"joining_date,omitempty"`
	ReportRef      *string `json:"report_ref,omitempty"`
	SubmittedAt    *string `json:"submitted_at,omitempty"`
}
