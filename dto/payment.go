package dto

// PaymentRequest is the body of POST /api/payments
type PaymentRequest struct {
	RoomID        uint   `json:"roomId" binding:"required"`
	RoomName      string `json:"roomName" binding:"required"`
	PaymentType   string `json:"paymentType" binding:"required"`
	Amount        int    `json:"amount" binding:"required"`
	Currency      string `json:"currency"`
	CustomerName  string `json:"customerName" binding:"required"`
	CustomerEmail string `json:"customerEmail" binding:"required"`
	CustomerPhone string `json:"customerPhone"`
	TransactionID string `json:"transactionId" binding:"required"`
}

// PaymentStatusRequest updates a payment's lifecycle state
type PaymentStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
