package dto

// NotifyRequest carries the shared secret of the reminder trigger.
type NotifyRequest struct {
	APIKey string `json:"apiKey"`
}

// NotifyResponse reports the outcome of a reminder run.
type NotifyResponse struct {
	Success bool            `json:"success"`
	Message string          `json:"message,omitempty"`
	Stats   *NotifyStats    `json:"stats,omitempty"`
	Errors  []NotifyFailure `json:"errors,omitempty"`
	Error   string          `json:"error,omitempty"`
}

// NotifyStats are the counters of a reminder run.
type NotifyStats struct {
	TotalOrders    int `json:"totalOrders"`
	EligibleOrders int `json:"eligibleOrders"`
	EmailsSent     int `json:"emailsSent"`
	Errors         int `json:"errors"`
}

// NotifyFailure describes a reminder that was not delivered.
type NotifyFailure struct {
	Order string `json:"order"`
	Email string `json:"email"`
	Error string `json:"error"`
}
