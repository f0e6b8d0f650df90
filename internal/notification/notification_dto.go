package notification

type NotificationResponse struct {
	ID             string `json:"id"`
	LeaveRequestID string `json:"leave_request_id"`
	EventType      string `json:"event_type"`
	Message        string `json:"message"`
	CreatedAt      string `json:"created_at"`
}
