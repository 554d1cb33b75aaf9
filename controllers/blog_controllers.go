package controllers

import (
	"encoding/json"
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
	"eldercare/validator"
)

func parsePageLimit(c *gin.Context) (int, int) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if limit < 1 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}
	return page, limit
}

// GetAllBlogs lists articles, newest first. Published only by default;
// ?published=false widens to everything and is admin-facing.
func GetAllBlogs(c *gin.Context) {
	page, limit := parsePageLimit(c)
	publishedOnly := c.Query("published") != "false"

	query := config.DB.Model(&models.Blog{})
	if publishedOnly {
		query = query.Where("published = ?", true)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		log.Printf("Failed to count blogs: %v", err)
		response.ServerError(c)
		return
	}

	// the list skips the article body
	var blogs []models.Blog
	err := query.Omit("content").
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&blogs).Error
	if err != nil {
		log.Printf("Failed to list blogs: %v", err)
		response.ServerError(c)
		return
	}

	response.SuccessWithPagination(c, gin.H{"blogs": blogs}, page, limit, total)
}

// GetBlogBySlug returns one published article and bumps its view count
func GetBlogBySlug(c *gin.Context) {
	slug := c.Param("slug")

	var blog models.Blog
	err := config.DB.Where("slug = ? AND published = ?", slug, true).First(&blog).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		response.NotFound(c, "Blog post not found")
		return
	}
	if err != nil {
		log.Printf("Failed to fetch blog %q: %v", slug, err)
		response.ServerError(c)
		return
	}

	// best-effort counter, lost increments are acceptable
	go func(id uint) {
		if err := config.DB.Model(&models.Blog{}).Where("id = ?", id).
			Update("views", gorm.Expr("views + 1")).Error; err != nil {
			log.Printf("Failed to increment views for blog %d: %v", id, err)
		}
	}(blog.ID)

	blog.Views++
	response.Success(c, gin.H{"blog": blog})
}

// GetBlogByID returns one published article by its numeric id
func GetBlogByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		response.BadRequest(c, "Blog ID is required")
		return
	}

	var blog models.Blog
	dbErr := config.DB.Where("id = ? AND published = ?", id, true).First(&blog).Error
	if errors.Is(dbErr, gorm.ErrRecordNotFound) {
		response.NotFound(c, "Blog post not found")
		return
	}
	if dbErr != nil {
		log.Printf("Failed to fetch blog %d: %v", id, dbErr)
		response.ServerError(c)
		return
	}

	response.Success(c, gin.H{"blog": blog})
}

// GetMyBlogs lists the calling admin's own articles, drafts included
func GetMyBlogs(c *gin.Context) {
	page, limit := parsePageLimit(c)
	adminID := c.GetUint("adminID")

	query := config.DB.Model(&models.Blog{}).Where("author_id = ?", adminID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		log.Printf("Failed to count blogs for admin %d: %v", adminID, err)
		response.ServerError(c)
		return
	}

	var blogs []models.Blog
	err := query.Omit("content").
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&blogs).Error
	if err != nil {
		log.Printf("Failed to list blogs for admin %d: %v", adminID, err)
		response.ServerError(c)
		return
	}

	response.SuccessWithPagination(c, gin.H{"blogs": blogs}, page, limit, total)
}

// CreateBlog publishes a new article under the calling admin's byline
func CreateBlog(c *gin.Context) {
	var req dto.CreateBlogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "title and content are required")
		return
	}

	if err := validator.ValidateBlog(req.Title, req.Description); err != nil {
		if appErr := appErrors.GetAppError(err); appErr != nil {
			response.ValidationError(c, appErr.Message)
			return
		}
		response.ValidationError(c, "blog payload is invalid")
		return
	}

	adminID := c.GetUint("adminID")
	var admin models.Admin
	if err := config.DB.First(&admin, adminID).Error; err != nil {
		response.NotFound(c, "Admin not found")
		return
	}

	tags, err := json.Marshal(req.Tags)
	if err != nil {
		response.BadRequest(c, "tags are invalid")
		return
	}

	blog := models.Blog{
		Title:       req.Title,
		Description: req.Description,
		Content:     req.Content,
		Image:       req.Image,
		Tags:        tags,
		AuthorID:    admin.ID,
		AuthorName:  admin.Name,
	}
	if req.Published != nil {
		blog.Published = *req.Published
	}

	if err := config.DB.Create(&blog).Error; err != nil {
		log.Printf("Failed to create blog: %v", err)
		response.ServerError(c)
		return
	}

	response.Created(c, "Blog post created successfully", gin.H{"blog": blog})
}

// UploadBlogImage pushes an article image to the image host
func UploadBlogImage(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, "file is required")
		return
	}

	src, err := fileHeader.Open()
	if err != nil {
		response.BadRequest(c, "file could not be read")
		return
	}
	defer src.Close()

	url, err := services.UploadImage(src, "blogs")
	if err != nil {
		log.Printf("Failed to upload blog image: %v", err)
		response.ServiceUnavailable(c, "Image upload is not available")
		return
	}

	response.Success(c, gin.H{"url": url})
}

// UpdateBlog applies partial changes to an article
func UpdateBlog(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		response.BadRequest(c, "Blog ID is required")
		return
	}

	var req dto.UpdateBlogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid blog payload")
		return
	}

	var blog models.Blog
	dbErr := config.DB.First(&blog, id).Error
	if errors.Is(dbErr, gorm.ErrRecordNotFound) {
		response.NotFound(c, "Blog post not found")
		return
	}
	if dbErr != nil {
		log.Printf("Failed to fetch blog %d: %v", id, dbErr)
		response.ServerError(c)
		return
	}

	if req.Title != nil {
		blog.Title = *req.Title
	}
	if req.Description != nil {
		blog.Description = *req.Description
	}
	if req.Content != nil {
		blog.Content = *req.Content
	}
	if req.Image != nil {
		blog.Image = *req.Image
	}
	if req.Published != nil {
		blog.Published = *req.Published
	}
	if req.Tags != nil {
		tags, err := json.Marshal(req.Tags)
		if err != nil {
			response.BadRequest(c, "tags are invalid")
			return
		}
		blog.Tags = tags
	}

	if err := validator.ValidateBlog(blog.Title, blog.Description); err != nil {
		if appErr := appErrors.GetAppError(err); appErr != nil {
			response.ValidationError(c, appErr.Message)
			return
		}
		response.ValidationError(c, "blog payload is invalid")
		return
	}

	if err := config.DB.Save(&blog).Error; err != nil {
		log.Printf("Failed to update blog %d: %v", id, err)
		response.ServerError(c)
		return
	}

	response.SuccessWithMessage(c, "Blog post updated successfully", gin.H{"blog": blog})
}

// DeleteBlog removes an article permanently. Only the author or a
// super admin may delete.
func DeleteBlog(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		response.BadRequest(c, "Blog ID is required")
		return
	}

	var blog models.Blog
	dbErr := config.DB.First(&blog, id).Error
	if errors.Is(dbErr, gorm.ErrRecordNotFound) {
		response.NotFound(c, "Blog post not found")
		return
	}
	if dbErr != nil {
		log.Printf("Failed to fetch blog %d: %v", id, dbErr)
		response.ServerError(c)
		return
	}

	adminID := c.GetUint("adminID")
	adminRole := c.GetString("adminRole")
	if blog.AuthorID != adminID && adminRole != constants.AdminRoleSuper {
		response.Forbidden(c, "Only the author or a super admin can delete this post")
		return
	}

	if err := config.DB.Delete(&blog).Error; err != nil {
		log.Printf("Failed to delete blog %d: %v", id, err)
		response.ServerError(c)
		return
	}

	response.SuccessWithMessage(c, "Blog post deleted successfully", nil)
}
