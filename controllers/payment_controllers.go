package controllers

import (
	"errors"
	"log"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"eldercare/config"
	"eldercare/constants"
	"eldercare/dto"
	appErrors "eldercare/errors"
	"eldercare/models"
	"eldercare/response"
	"eldercare/services"
	"eldercare/utils"
	"eldercare/validator"
)

// SubmitPayment logs a manually-verified payment intent. The
// transaction id comes from the customer's bank receipt and must be
// unique.
func SubmitPayment(c *gin.Context) {
	var req dto.PaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Missing required payment fields")
		return
	}

	if err := validator.ValidatePayment(&req); err != nil {
		if appErr := appErrors.GetAppError(err); appErr != nil {
			response.ValidationError(c, appErr.Message)
			return
		}
		response.ValidationError(c, "payment payload is invalid")
		return
	}

	room, err := services.GetRoomByID(req.RoomID)
	if errors.Is(err, appErrors.ErrRoomNotFound) {
		response.NotFound(c, "Room not found")
		return
	}
	if err != nil {
		log.Printf("Failed to fetch room %d for payment: %v", req.RoomID, err)
		response.ServerError(c)
		return
	}

	var existing models.Payment
	dupErr := config.DB.Where("transaction_id = ?", req.TransactionID).First(&existing).Error
	if dupErr == nil {
		response.Conflict(c, "A payment with this transaction ID already exists")
		return
	}
	if !errors.Is(dupErr, gorm.ErrRecordNotFound) {
		log.Printf("Failed to check transaction %s: %v", req.TransactionID, dupErr)
		response.ServerError(c)
		return
	}

	currency := req.Currency
	if currency == "" {
		currency = room.Pricing.Currency
	}

	payment := models.Payment{
		RoomID:        room.ID,
		RoomName:      req.RoomName,
		PaymentType:   req.PaymentType,
		Amount:        req.Amount,
		Currency:      currency,
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		CustomerEmail: req.CustomerEmail,
		TransactionID: req.TransactionID,
		Status:        constants.PaymentStatusPending,
	}

	if err := config.DB.Create(&payment).Error; err != nil {
		utils.LogError("Failed to store payment %s: %v", req.TransactionID, err)
		response.ServerError(c)
		return
	}

	go services.SendPaymentReceiptEmail(
		payment.CustomerEmail, payment.CustomerName, payment.RoomName,
		payment.TransactionID, payment.Amount, payment.Currency,
	)
	go services.BroadcastAdminEvent("payment.created", gin.H{
		"id":            payment.ID,
		"roomId":        payment.RoomID,
		"amount":        payment.Amount,
		"currency":      payment.Currency,
		"transactionId": payment.TransactionID,
	})

	response.Created(c, "Payment submitted and pending verification", gin.H{"payment": payment})
}

// GetAllPayments lists payments for the back office, newest first,
// optionally filtered by status.
func GetAllPayments(c *gin.Context) {
	page, limit := parsePageLimit(c)

	query := config.DB.Model(&models.Payment{})
	if status := c.Query("status"); status != "" {
		if err := validator.ValidatePaymentStatus(status); err != nil {
			response.BadRequest(c, "status must be pending, verified or rejected")
			return
		}
		query = query.Where("status = ?", status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		log.Printf("Failed to count payments: %v", err)
		response.ServerError(c)
		return
	}

	var payments []models.Payment
	err := query.Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&payments).Error
	if err != nil {
		log.Printf("Failed to list payments: %v", err)
		response.ServerError(c)
		return
	}

	response.SuccessWithPagination(c, gin.H{"payments": payments}, page, limit, total)
}

// GetPaymentByID returns one payment record by its numeric id
func GetPaymentByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		response.BadRequest(c, "Payment ID is required")
		return
	}

	var payment models.Payment
	dbErr := config.DB.First(&payment, id).Error
	if errors.Is(dbErr, gorm.ErrRecordNotFound) {
		response.NotFound(c, "Payment not found")
		return
	}
	if dbErr != nil {
		log.Printf("Failed to fetch payment %d: %v", id, dbErr)
		response.ServerError(c)
		return
	}

	response.Success(c, gin.H{"payment": payment})
}

// GetPaymentByTransaction lets a customer check their payment status
func GetPaymentByTransaction(c *gin.Context) {
	transactionID := c.Param("transactionId")
	if transactionID == "" {
		response.BadRequest(c, "Transaction ID is required")
		return
	}

	var payment models.Payment
	err := config.DB.Where("transaction_id = ?", transactionID).First(&payment).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		response.NotFound(c, "Payment not found")
		return
	}
	if err != nil {
		log.Printf("Failed to fetch payment %s: %v", transactionID, err)
		response.ServerError(c)
		return
	}

	response.Success(c, gin.H{"payment": payment})
}

// UpdatePaymentStatus verifies or rejects a pending payment
func UpdatePaymentStatus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		response.BadRequest(c, "Payment ID is required")
		return
	}

	var req dto.PaymentStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "status is required")
		return
	}
	if err := validator.ValidatePaymentStatus(req.Status); err != nil {
		response.BadRequest(c, "status must be pending, verified or rejected")
		return
	}

	var payment models.Payment
	dbErr := config.DB.First(&payment, id).Error
	if errors.Is(dbErr, gorm.ErrRecordNotFound) {
		response.NotFound(c, "Payment not found")
		return
	}
	if dbErr != nil {
		log.Printf("Failed to fetch payment %d: %v", id, dbErr)
		response.ServerError(c)
		return
	}

	if err := config.DB.Model(&payment).Update("status", req.Status).Error; err != nil {
		utils.LogError("Failed to update payment %d status: %v", id, err)
		response.ServerError(c)
		return
	}

	response.SuccessWithMessage(c, "Payment status updated", gin.H{"payment": payment})
}
