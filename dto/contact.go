package dto

// ContactRequest is the body of POST /api/contacts/submit
type ContactRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
	Message string `json:"message" binding:"required"`
}

// ContactStatusRequest moves a ticket through its workflow states
type ContactStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
