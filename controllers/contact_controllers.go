package controllers

import (
	"errors"
	"log"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"eldercare/config"
	"eldercare/constants"
	"eldercare/dto"
	appErrors "eldercare/errors"
	"eldercare/models"
	"eldercare/response"
	"eldercare/services"
	"eldercare/validator"
)

// SubmitContact stores an inquiry, emails a confirmation and notifies
// connected admins.
func SubmitContact(c *gin.Context) {
	var req dto.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Missing required fields. Please provide name, email, subject, and message.")
		return
	}

	if err := validator.ValidateContact(&req); err != nil {
		if appErr := appErrors.GetAppError(err); appErr != nil {
			response.ValidationError(c, appErr.Message)
			return
		}
		response.ValidationError(c, "contact payload is invalid")
		return
	}

	contact := models.Contact{
		Reference: uuid.NewString(),
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Subject:   req.Subject,
		Message:   req.Message,
		Status:    constants.ContactStatusNew,
	}

	if err := config.DB.Create(&contact).Error; err != nil {
		log.Printf("Failed to store contact from %s: %v", req.Email, err)
		response.ServerError(c)
		return
	}

	go services.SendContactConfirmationEmail(contact.Email, contact.Name, contact.Reference)
	go services.SendContactNotificationEmail(contact.Name, contact.Subject, contact.Reference)
	go services.BroadcastAdminEvent("contact.created", gin.H{
		"id":        contact.ID,
		"reference": contact.Reference,
		"name":      contact.Name,
		"subject":   contact.Subject,
	})

	response.SuccessWithMessage(c,
		"Thank you for your message! We have sent a confirmation email and will get back to you soon.",
		gin.H{
			"reference":   contact.Reference,
			"name":        contact.Name,
			"email":       contact.Email,
			"subject":     contact.Subject,
			"submittedAt": contact.CreatedAt,
		})
}

// TestEmail probes the SMTP configuration
func TestEmail(c *gin.Context) {
	if err := services.SendTestEmail(); err != nil {
		log.Printf("SMTP test failed: %v", err)
		response.ServiceUnavailable(c, "SMTP is not configured or unreachable")
		return
	}
	response.SuccessWithMessage(c, "Test email sent", nil)
}

// GetAllContacts lists inquiries for the back office, newest first,
// optionally filtered by status.
func GetAllContacts(c *gin.Context) {
	page, limit := parsePageLimit(c)

	query := config.DB.Model(&models.Contact{})
	if status := c.Query("status"); status != "" {
		if err := validator.ValidateContactStatus(status); err != nil {
			response.BadRequest(c, "status must be new, in_progress or resolved")
			return
		}
		query = query.Where("status = ?", status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		log.Printf("Failed to count contacts: %v", err)
		response.ServerError(c)
		return
	}

	var contacts []models.Contact
	err := query.Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&contacts).Error
	if err != nil {
		log.Printf("Failed to list contacts: %v", err)
		response.ServerError(c)
		return
	}

	response.SuccessWithPagination(c, gin.H{"contacts": contacts}, page, limit, total)
}

// UpdateContactStatus moves a ticket through its workflow
func UpdateContactStatus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		response.BadRequest(c, "Contact ID is required")
		return
	}

	var req dto.ContactStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "status is required")
		return
	}
	if err := validator.ValidateContactStatus(req.Status); err != nil {
		response.BadRequest(c, "status must be new, in_progress or resolved")
		return
	}

	var contact models.Contact
	dbErr := config.DB.First(&contact, id).Error
	if errors.Is(dbErr, gorm.ErrRecordNotFound) {
		response.NotFound(c, "Contact not found")
		return
	}
	if dbErr != nil {
		log.Printf("Failed to fetch contact %d: %v", id, dbErr)
		response.ServerError(c)
		return
	}

	if err := config.DB.Model(&contact).Update("status", req.Status).Error; err != nil {
		log.Printf("Failed to update contact %d status: %v", id, err)
		response.ServerError(c)
		return
	}

	response.SuccessWithMessage(c, "Contact status updated", gin.H{"contact": contact})
}

// DeleteContact removes a ticket permanently
func DeleteContact(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		response.BadRequest(c, "Contact ID is required")
		return
	}

	result := config.DB.Delete(&models.Contact{}, id)
	if result.Error != nil {
		log.Printf("Failed to delete contact %d: %v", id, result.Error)
		response.ServerError(c)
		return
	}
	if result.RowsAffected == 0 {
		response.NotFound(c, "Contact not found")
		return
	}

	response.SuccessWithMessage(c, "Contact deleted successfully", nil)
}
