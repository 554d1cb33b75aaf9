package controllers

import (
	"errors"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"eldercare/config"
	"eldercare/constants"
	"eldercare/dto"
	"eldercare/models"
	"eldercare/response"
	"eldercare/services"
)

const adminTokenMinutes = 8 * 60

// AdminLogin authenticates a back-office account and issues a token
func AdminLogin(c *gin.Context) {
	var req dto.AdminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "username and password are required")
		return
	}

	var admin models.Admin
	err := config.DB.Where("(username = ? OR email = ?) AND is_active = ?", req.Username, req.Username, true).First(&admin).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		response.Unauthorized(c, "Invalid credentials")
		return
	}
	if err != nil {
		log.Printf("Failed to fetch admin %q: %v", req.Username, err)
		response.ServerError(c)
		return
	}

	if bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(req.Password)) != nil {
		response.Unauthorized(c, "Invalid credentials")
		return
	}

	token, err := services.GenerateToken(services.TokenInfo{
		ID:   admin.ID,
		Type: "admin",
		Role: admin.Role,
	}, adminTokenMinutes)
	if err != nil {
		log.Printf("Failed to sign token for admin %d: %v", admin.ID, err)
		response.ServerError(c)
		return
	}

	now := time.Now()
	if err := config.DB.Model(&admin).Update("last_login", now).Error; err != nil {
		log.Printf("Failed to record last login for admin %d: %v", admin.ID, err)
	}

	response.SuccessWithMessage(c, "Login successful", gin.H{
		"accessToken": token,
		"admin": gin.H{
			"id":       admin.ID,
			"username": admin.Username,
			"email":    admin.Email,
			"name":     admin.Name,
			"role":     admin.Role,
		},
	})
}

// GetAdminProfile returns the calling admin's account
func GetAdminProfile(c *gin.Context) {
	adminID := c.GetUint("adminID")

	var admin models.Admin
	err := config.DB.First(&admin, adminID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		response.NotFound(c, "Admin not found")
		return
	}
	if err != nil {
		log.Printf("Failed to fetch admin %d: %v", adminID, err)
		response.ServerError(c)
		return
	}

	response.Success(c, gin.H{"admin": admin})
}

// GetDashboard aggregates the back-office landing numbers
func GetDashboard(c *gin.Context) {
	type counter struct {
		name  string
		model interface{}
		where []interface{}
	}

	weekAgo := time.Now().AddDate(0, 0, -7)
	counters := []counter{
		{"totalRooms", &models.Room{}, nil},
		{"activeRooms", &models.Room{}, []interface{}{"is_active = ?", true}},
		{"totalContacts", &models.Contact{}, nil},
		{"newContacts", &models.Contact{}, []interface{}{"status = ?", constants.ContactStatusNew}},
		{"contactsLast7Days", &models.Contact{}, []interface{}{"created_at >= ?", weekAgo}},
		{"totalPayments", &models.Payment{}, nil},
		{"pendingPayments", &models.Payment{}, []interface{}{"status = ?", constants.PaymentStatusPending}},
		{"totalBlogs", &models.Blog{}, nil},
		{"publishedBlogs", &models.Blog{}, []interface{}{"published = ?", true}},
		{"totalUsers", &models.User{}, nil},
	}

	stats := gin.H{}
	for _, ct := range counters {
		query := config.DB.Model(ct.model)
		if ct.where != nil {
			query = query.Where(ct.where[0], ct.where[1:]...)
		}
		var count int64
		if err := query.Count(&count).Error; err != nil {
			log.Printf("Failed to count %s: %v", ct.name, err)
			response.ServerError(c)
			return
		}
		stats[ct.name] = count
	}

	roomStats, err := services.GetGlobalStatistics()
	if err != nil {
		log.Printf("Failed to compute room statistics: %v", err)
		response.ServerError(c)
		return
	}
	stats["averageRent"] = roomStats.AverageRent
	stats["topRatedRooms"] = roomStats.TopRatedRooms

	response.Success(c, gin.H{"dashboard": stats})
}
