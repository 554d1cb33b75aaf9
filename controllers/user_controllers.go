package controllers

import (
	"context"
	"errors"
	"log"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
	"golang.org/x/crypto/bcrypt"
	"google.golang.org/api/idtoken"
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

const userTokenMinutes = 24 * 60

func issueUserToken(user *models.User) (string, error) {
	return services.GenerateToken(services.TokenInfo{
		ID:   user.ID,
		Type: "user",
		Role: user.Role,
	}, userTokenMinutes)
}

// Register creates a family-member account
func Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "firstName, email and password are required")
		return
	}

	if err := validator.ValidateRegistration(&req); err != nil {
		if appErr := appErrors.GetAppError(err); appErr != nil {
			response.ValidationError(c, appErr.Message)
			return
		}
		response.ValidationError(c, "registration payload is invalid")
		return
	}

	var existing models.User
	dupErr := config.DB.Where("email = ?", req.Email).First(&existing).Error
	if dupErr == nil {
		response.Conflict(c, "An account with this email already exists")
		return
	}
	if !errors.Is(dupErr, gorm.ErrRecordNotFound) {
		log.Printf("Failed to check email %s: %v", req.Email, dupErr)
		response.ServerError(c)
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("Failed to hash password: %v", err)
		response.ServerError(c)
		return
	}

	user := models.User{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		Password:    string(hashed),
		PhoneNumber: req.Phone,
		Role:        constants.UserRoleFamilyMember,
		IsActive:    true,
	}

	if err := config.DB.Create(&user).Error; err != nil {
		log.Printf("Failed to create user %s: %v", req.Email, err)
		response.ServerError(c)
		return
	}

	go services.SendWelcomeEmail(user.Email, user.FullName())

	token, err := issueUserToken(&user)
	if err != nil {
		log.Printf("Failed to sign token for user %d: %v", user.ID, err)
		response.ServerError(c)
		return
	}

	response.Created(c, "Account created successfully", gin.H{
		"accessToken": token,
		"user":        user,
	})
}

// Login authenticates an account by email and password
func Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "email and password are required")
		return
	}

	var user models.User
	err := config.DB.Where("email = ? AND is_active = ?", req.Email, true).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		response.Unauthorized(c, "Invalid credentials")
		return
	}
	if err != nil {
		log.Printf("Failed to fetch user %s: %v", req.Email, err)
		response.ServerError(c)
		return
	}

	if user.Password == "" ||
		bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)) != nil {
		response.Unauthorized(c, "Invalid credentials")
		return
	}

	token, err := issueUserToken(&user)
	if err != nil {
		log.Printf("Failed to sign token for user %d: %v", user.ID, err)
		response.ServerError(c)
		return
	}

	now := time.Now()
	if err := config.DB.Model(&user).Update("last_login", now).Error; err != nil {
		log.Printf("Failed to record last login for user %d: %v", user.ID, err)
	}

	response.SuccessWithMessage(c, "Login successful", gin.H{
		"accessToken": token,
		"user":        user,
	})
}

func verifyGoogleIDToken(credential string) (*idtoken.Payload, error) {
	clientID := os.Getenv("GOOGLE_CLIENT_ID")
	return idtoken.Validate(context.Background(), credential, clientID)
}

// GoogleAuth signs in with a Google ID token, creating the account on
// first use.
func GoogleAuth(c *gin.Context) {
	var req dto.GoogleAuthRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "credential is required")
		return
	}

	payload, err := verifyGoogleIDToken(req.Credential)
	if err != nil {
		response.Unauthorized(c, "Invalid Google credential")
		return
	}

	email, _ := payload.Claims["email"].(string)
	if email == "" {
		response.Unauthorized(c, "Google account has no email")
		return
	}
	givenName, _ := payload.Claims["given_name"].(string)
	familyName, _ := payload.Claims["family_name"].(string)

	var user models.User
	err = config.DB.Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		user = models.User{
			FirstName:     givenName,
			LastName:      familyName,
			Email:         email,
			Role:          constants.UserRoleFamilyMember,
			IsActive:      true,
			EmailVerified: true,
		}
		if err := config.DB.Create(&user).Error; err != nil {
			log.Printf("Failed to create google user %s: %v", email, err)
			response.ServerError(c)
			return
		}
		go services.SendWelcomeEmail(user.Email, user.FullName())
	} else if err != nil {
		log.Printf("Failed to fetch user %s: %v", email, err)
		response.ServerError(c)
		return
	}

	if !user.IsActive {
		response.Forbidden(c, "Account is deactivated")
		return
	}

	token, err := issueUserToken(&user)
	if err != nil {
		log.Printf("Failed to sign token for user %d: %v", user.ID, err)
		response.ServerError(c)
		return
	}

	response.SuccessWithMessage(c, "Login successful", gin.H{
		"accessToken": token,
		"user":        user,
	})
}

// GetProfile returns the calling user's account
func GetProfile(c *gin.Context) {
	userID := c.GetUint("userID")

	var user models.User
	err := config.DB.First(&user, userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		response.NotFound(c, "User not found")
		return
	}
	if err != nil {
		log.Printf("Failed to fetch user %d: %v", userID, err)
		response.ServerError(c)
		return
	}

	response.Success(c, gin.H{"user": user})
}

// UpdateProfile applies partial changes to the calling user's account
func UpdateProfile(c *gin.Context) {
	userID := c.GetUint("userID")

	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid profile payload")
		return
	}

	var user models.User
	err := config.DB.First(&user, userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		response.NotFound(c, "User not found")
		return
	}
	if err != nil {
		log.Printf("Failed to fetch user %d: %v", userID, err)
		response.ServerError(c)
		return
	}

	if req.FirstName != nil {
		user.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		user.LastName = *req.LastName
	}
	if req.Phone != nil {
		user.PhoneNumber = *req.Phone
	}
	if req.Password != nil {
		if len(*req.Password) < 8 {
			response.ValidationError(c, "password must be at least 8 characters")
			return
		}
		hashed, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			log.Printf("Failed to hash password: %v", err)
			response.ServerError(c)
			return
		}
		user.Password = string(hashed)
	}

	if err := config.DB.Save(&user).Error; err != nil {
		log.Printf("Failed to update user %d: %v", userID, err)
		response.ServerError(c)
		return
	}

	response.SuccessWithMessage(c, "Profile updated successfully", gin.H{"user": user})
}

// DeactivateAccount disables the calling user's account
func DeactivateAccount(c *gin.Context) {
	userID := c.GetUint("userID")

	result := config.DB.Model(&models.User{}).Where("id = ?", userID).Update("is_active", false)
	if result.Error != nil {
		log.Printf("Failed to deactivate user %d: %v", userID, result.Error)
		response.ServerError(c)
		return
	}
	if result.RowsAffected == 0 {
		response.NotFound(c, "User not found")
		return
	}

	response.SuccessWithMessage(c, "Account deactivated", nil)
}

// GetAllUsers lists accounts for the back office, newest first,
// optionally filtered by role.
func GetAllUsers(c *gin.Context) {
	page, limit := parsePageLimit(c)

	query := config.DB.Model(&models.User{})
	if role := c.Query("role"); role != "" {
		if !constants.IsOneOf(role, constants.UserRoles) {
			response.BadRequest(c, "role is not recognized")
			return
		}
		query = query.Where("role = ?", role)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		log.Printf("Failed to count users: %v", err)
		response.ServerError(c)
		return
	}

	var users []models.User
	err := query.Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&users).Error
	if err != nil {
		log.Printf("Failed to list users: %v", err)
		response.ServerError(c)
		return
	}

	response.SuccessWithPagination(c, gin.H{"users": users}, page, limit, total)
}

// SaveShortlist replaces the caller's saved-room list. Unknown and
// inactive room ids are dropped the same way comparison drops them.
func SaveShortlist(c *gin.Context) {
	userID := c.GetUint("userID")

	var req dto.ShortlistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "roomIds is required")
		return
	}

	var validIDs pq.Int64Array
	if len(req.RoomIDs) > 0 {
		err := config.DB.Model(&models.Room{}).
			Where("id IN ? AND is_active = ?", req.RoomIDs, true).
			Pluck("id", &validIDs).Error
		if err != nil {
			log.Printf("Failed to resolve shortlist rooms for user %d: %v", userID, err)
			response.ServerError(c)
			return
		}
	}

	result := config.DB.Model(&models.User{}).Where("id = ?", userID).Update("saved_room_ids", validIDs)
	if result.Error != nil {
		log.Printf("Failed to save shortlist for user %d: %v", userID, result.Error)
		response.ServerError(c)
		return
	}
	if result.RowsAffected == 0 {
		response.NotFound(c, "User not found")
		return
	}

	response.SuccessWithMessage(c, "Shortlist saved", gin.H{"savedRoomIds": validIDs})
}

// GetShortlist returns the caller's saved rooms as list summaries
func GetShortlist(c *gin.Context) {
	userID := c.GetUint("userID")

	var user models.User
	err := config.DB.First(&user, userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		response.NotFound(c, "User not found")
		return
	}
	if err != nil {
		log.Printf("Failed to fetch user %d: %v", userID, err)
		response.ServerError(c)
		return
	}

	var rooms []models.Room
	if len(user.SavedRoomIDs) > 0 {
		err := config.DB.Where("id IN ? AND is_active = ?", []int64(user.SavedRoomIDs), true).
			Find(&rooms).Error
		if err != nil {
			log.Printf("Failed to load shortlist for user %d: %v", userID, err)
			response.ServerError(c)
			return
		}
	}

	summaries := make([]dto.RoomSummary, 0, len(rooms))
	for i := range rooms {
		summaries = append(summaries, buildRoomSummary(&rooms[i]))
	}

	response.Success(c, gin.H{"rooms": summaries})
}
