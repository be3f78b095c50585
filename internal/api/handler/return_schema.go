package handler

// --- Request types for tax-return endpoints ---

type createReturnRequest struct {
	Type string `json:"type" validate:"required"`
	Year string `json:"year" validate:"required,len=4,numeric"`
	// Owner fields are honored for staff creating a return on a client's
	// behalf; absent, the return belongs to the caller.
	OwnerID   int    `json:"owner_id,omitempty"`
	OwnerName string `json:"owner_name,omitempty"`
}

type updateReturnRequest struct {
	Type       *string `json:"type,omitempty"`
	Year       *string `json:"year,omitempty"`
	Status     *string `json:"status,omitempty"`
	AssignedTo *string `json:"assigned_to,omitempty"`
}

type addDocumentRequest struct {
	Name  string `json:"name" validate:"required"`
	Type  string `json:"type" validate:"required"`
	Size  string `json:"size"`
	Notes string `json:"comments"`
}

type addCommentRequest struct {
	Text string `json:"text" validate:"required"`
}
