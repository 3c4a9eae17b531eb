package request

type RejectRequest struct {
	Reason string `json:"reason" binding:"required,max=1000"`
}

type RequestChangesRequest struct {
	Notes string `json:"notes" binding:"required,max=1000"`
}
