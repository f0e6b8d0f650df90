package leave

type SubmitLeaveRequest struct {
	LeaveType     string  `json:"leave_type" binding:"required,oneof=CL SL EL RH"`
	StartDate     string  `json:"start_date" binding:"required"`
	EndDate       string  `json:"end_date" binding:"required"`
	Session       string  `json:"session" binding:"required,oneof=FULL_DAY HALF_DAY_MORNING HALF_DAY_AFTERNOON"`
	Reason        string  `json:"reason"`
	AttachmentRef string  `json:"attachment_ref"`
	RecommenderID *string `json:"recommender_id" binding:"omitempty,uuid"`
	ApproverID    *string `json:"approver_id" binding:"omitempty,uuid"`
	SubstituteID  *string `json:"substitute_id" binding:"omitempty,uuid"`
}

type DecisionRequest struct {
	Remarks string `json:"remarks"`
}

type LeaveResponse struct {
	ID            string  `json:"id"`
	ApplicationNo string  `json:"application_no"`
	EmployeeID    string  `json:"employee_id"`
	LeaveType     string  `json:"leave_type"`
	StartDate     string  `json:"start_date"`
	EndDate       string  `json:"end_date"`
	Session       string  `json:"session"`
	TotalDays     string  `json:"total_days"`
	Reason        string  `json:"reason"`
	AttachmentRef string  `json:"attachment_ref,omitempty"`
	RecommenderID *string `json:"recommender_id,omitempty"`
	ApproverID    *string `json:"approver_id,omitempty"`
	SubstituteID  *string `json:"substitute_id,omitempty"`
	Status        string  `json:"status"`
	Remarks       *string `json:"remarks,omitempty"`
	DecidedBy     *string `json:"decided_by,omitempty"`
	DecidedAt     *string `json:"decided_at,omitempty"`
}

// IncomingResponse is the work queue for a reviewer: requests awaiting
// their recommendation and requests awaiting their approval.
type IncomingResponse struct {
	ToRecommend []LeaveResponse `json:"to_recommend"`
	ToApprove   []LeaveResponse `json:"to_approve"`
}
