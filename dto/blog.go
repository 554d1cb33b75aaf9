package dto

// CreateBlogRequest is the body of POST /api/blogs
type CreateBlogRequest struct {
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description"`
	Content     string   `json:"content" binding:"required"`
	Image       string   `json:"image"`
	Tags        []string `json:"tags"`
	Published   *bool    `json:"published"`
}

// UpdateBlogRequest carries partial blog updates; nil fields are untouched
type UpdateBlogRequest struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	Content     *string  `json:"content"`
	Image       *string  `json:"image"`
	Tags        []string `json:"tags"`
	Published   *bool    `json:"published"`
}
