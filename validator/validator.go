package validator

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"eldercare/constants"
	"eldercare/dto"
	appErrors "eldercare/errors"
	"eldercare/models"
)

var validate = validator.New()

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// ValidateRoom checks every struct tag on the room model and returns
// the first violation as an AppError.
func ValidateRoom(room *models.Room) error {
	if err := validate.Struct(room); err != nil {
		var verrs validator.ValidationErrors
		if ok := asValidationErrors(err, &verrs); ok && len(verrs) > 0 {
			fe := verrs[0]
			return appErrors.NewAppError(
				appErrors.ErrCodeValidation,
				fmt.Sprintf("field %s failed on the %s rule", fe.Namespace(), fe.Tag()),
				err,
			)
		}
		return appErrors.NewAppError(appErrors.ErrCodeValidation, "room payload is invalid", err)
	}
	return nil
}

func asValidationErrors(err error, target *validator.ValidationErrors) bool {
	verrs, ok := err.(validator.ValidationErrors)
	if ok {
		*target = verrs
	}
	return ok
}

// ValidateBlog checks the article title and description bounds
func ValidateBlog(title, description string) error {
	if strings.TrimSpace(title) == "" {
		return appErrors.NewAppError(appErrors.ErrCodeRequiredField, "title is required", nil)
	}
	if len(title) > 200 {
		return appErrors.NewAppError(appErrors.ErrCodeValidation, "title must be at most 200 characters", nil)
	}
	if len(description) > 500 {
		return appErrors.NewAppError(appErrors.ErrCodeValidation, "description must be at most 500 characters", nil)
	}
	return nil
}

// ValidateContact checks the inquiry form fields
func ValidateContact(req *dto.ContactRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return appErrors.NewAppError(appErrors.ErrCodeRequiredField, "name is required", nil)
	}
	if !emailPattern.MatchString(req.Email) {
		return appErrors.NewAppError(appErrors.ErrCodeInvalidEmail, "email address is invalid", nil)
	}
	if strings.TrimSpace(req.Subject) == "" {
		return appErrors.NewAppError(appErrors.ErrCodeRequiredField, "subject is required", nil)
	}
	if len(req.Message) < 10 {
		return appErrors.NewAppError(appErrors.ErrCodeValidation, "message must be at least 10 characters long", nil)
	}
	return nil
}

// ValidatePayment checks the payment submission fields
func ValidatePayment(req *dto.PaymentRequest) error {
	if req.RoomID == 0 {
		return appErrors.NewAppError(appErrors.ErrCodeRequiredField, "roomId is required", nil)
	}
	if req.Amount <= 0 {
		return appErrors.NewAppError(appErrors.ErrCodeInvalidAmount, "amount must be positive", nil)
	}
	if req.PaymentType != constants.PaymentTypeBuy && req.PaymentType != constants.PaymentTypeRent {
		return appErrors.NewAppError(appErrors.ErrCodeValidation, "paymentType must be buy or rent", nil)
	}
	if !emailPattern.MatchString(req.CustomerEmail) {
		return appErrors.NewAppError(appErrors.ErrCodeInvalidEmail, "customerEmail is invalid", nil)
	}
	if strings.TrimSpace(req.TransactionID) == "" {
		return appErrors.NewAppError(appErrors.ErrCodeRequiredField, "transactionId is required", nil)
	}
	if req.Currency != "" && !constants.IsOneOf(req.Currency, constants.Currencies) {
		return appErrors.NewAppError(appErrors.ErrCodeValidation, "currency is not supported", nil)
	}
	return nil
}

// ValidateContactStatus checks a ticket workflow transition target
func ValidateContactStatus(status string) error {
	allowed := []string{constants.ContactStatusNew, constants.ContactStatusInProgress, constants.ContactStatusResolved}
	if !constants.IsOneOf(status, allowed) {
		return appErrors.NewAppError(appErrors.ErrCodeInvalidStatus, "status must be new, in_progress or resolved", nil)
	}
	return nil
}

// ValidatePaymentStatus checks a payment lifecycle transition target
func ValidatePaymentStatus(status string) error {
	allowed := []string{constants.PaymentStatusPending, constants.PaymentStatusVerified, constants.PaymentStatusRejected}
	if !constants.IsOneOf(status, allowed) {
		return appErrors.NewAppError(appErrors.ErrCodeInvalidStatus, "status must be pending, verified or rejected", nil)
	}
	return nil
}

// ValidateRegistration checks a new family-member account
func ValidateRegistration(req *dto.RegisterRequest) error {
	if strings.TrimSpace(req.FirstName) == "" {
		return appErrors.NewAppError(appErrors.ErrCodeRequiredField, "firstName is required", nil)
	}
	if !emailPattern.MatchString(req.Email) {
		return appErrors.NewAppError(appErrors.ErrCodeInvalidEmail, "email address is invalid", nil)
	}
	if len(req.Password) < 8 {
		return appErrors.NewAppError(appErrors.ErrCodeValidation, "password must be at least 8 characters", nil)
	}
	return nil
}
