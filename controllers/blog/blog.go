package blogController

import (
	"time"

	"lms/database"
	"lms/middleware"
	blogModels "lms/models/blog"
	"lms/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// GetAllPosts lists published blog posts with pagination
func GetAllPosts(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 10)
	category := c.Query("category")

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	offset := (page - 1) * limit

	db := database.Database.Db.Model(&blogModels.Post{}).Where("is_deleted = ? AND is_published = ?", false, true)

	if category != "" {
		db = db.Where("category = ?", category)
	}

	var total int64
	db.Count(&total)

	var posts []blogModels.Post
	if err := db.Offset(offset).Limit(limit).Order("published_at desc").Find(&posts).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch posts!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Posts fetched successfully!", fiber.Map{
		"posts": posts,
		"pagination": fiber.Map{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}

// GetPostBySlug fetches a single post and bumps its view counter
func GetPostBySlug(c *fiber.Ctx) error {
	slug := c.Params("slug")
	if slug == "" {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Post slug is required!", nil)
	}

	var post blogModels.Post
	if err := database.Database.Db.Where("slug = ? AND is_deleted = ? AND is_published = ?", slug, false, true).First(&post).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Post not found!", nil)
	}

	// View counter is best-effort; a lost increment is acceptable
	database.Database.Db.Model(&blogModels.Post{}).Where("id = ?", post.ID).
		UpdateColumn("views", gorm.Expr("views + ?", 1))
	post.Views++

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Post fetched successfully!", fiber.Map{
		"post": post,
	})
}

// AdminCreatePost creates a blog post
func AdminCreatePost(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedPost").(*struct {
		Title        string `json:"title"`
		Excerpt      string `json:"excerpt"`
		Content      string `json:"content"`
		Category     string `json:"category"`
		ThumbnailURL string `json:"thumbnail_url"`
		IsPublished  bool   `json:"is_published"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	slug := utils.Slugify(reqData.Title)

	var count int64
	database.Database.Db.Model(&blogModels.Post{}).Where("slug LIKE ?", slug+"%").Count(&count)
	if count > 0 {
		slug = utils.SlugWithSuffix(slug, count)
	}

	post := blogModels.Post{
		Title:        reqData.Title,
		Slug:         slug,
		Excerpt:      reqData.Excerpt,
		Content:      reqData.Content,
		AuthorID:     userID,
		Category:     reqData.Category,
		ThumbnailURL: reqData.ThumbnailURL,
		IsPublished:  reqData.IsPublished,
	}
	if reqData.IsPublished {
		now := time.Now()
		post.PublishedAt = &now
	}

	if err := database.Database.Db.Create(&post).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create post!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Post created successfully!", post)
}

// AdminUpdatePost updates a blog post
func AdminUpdatePost(c *fiber.Ctx) error {
	postID := c.Locals("postID").(int)

	var post blogModels.Post
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", postID, false).First(&post).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Post not found!", nil)
	}

	reqData, ok := c.Locals("validatedPostUpdate").(*struct {
		Title        string `json:"title"`
		Excerpt      string `json:"excerpt"`
		Content      string `json:"content"`
		Category     string `json:"category"`
		ThumbnailURL string `json:"thumbnail_url"`
		IsPublished  *bool  `json:"is_published"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if reqData.Title != "" {
		post.Title = reqData.Title
	}
	if reqData.Excerpt != "" {
		post.Excerpt = reqData.Excerpt
	}
	if reqData.Content != "" {
		post.Content = reqData.Content
	}
	if reqData.Category != "" {
		post.Category = reqData.Category
	}
	if reqData.ThumbnailURL != "" {
		post.ThumbnailURL = reqData.ThumbnailURL
	}
	if reqData.IsPublished != nil {
		if *reqData.IsPublished && !post.IsPublished {
			now := time.Now()
			post.PublishedAt = &now
		}
		post.IsPublished = *reqData.IsPublished
	}

	if err := database.Database.Db.Save(&post).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update post!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Post updated successfully!", post)
}

// AdminDeletePost soft-deletes a blog post
func AdminDeletePost(c *fiber.Ctx) error {
	postID := c.Locals("postID").(int)

	var post blogModels.Post
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", postID, false).First(&post).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Post not found!", nil)
	}

	post.IsDeleted = true
	if err := database.Database.Db.Save(&post).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete post!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Post deleted successfully!", nil)
}
