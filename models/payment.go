package models

import "time"

// Payment is a logged payment intent. No gateway is involved; the
// transaction id is supplied by the customer and verified manually.
type Payment struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	RoomID        uint      `json:"roomId" gorm:"index"`
	RoomName      string    `json:"roomName"`
	PaymentType   string    `json:"paymentType"`
	Amount        int       `json:"amount"`
	Currency      string    `json:"currency" gorm:"default:USD"`
	CustomerName  string    `json:"customerName"`
	CustomerPhone string    `json:"customerPhone"`
	CustomerEmail string    `json:"customerEmail" gorm:"index"`
	TransactionID string    `json:"transactionId" gorm:"uniqueIndex"`
	Status        string    `json:"status" gorm:"default:pending"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}
