package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nandini9934/MyApi/models"
	"github.com/nandini9934/MyApi/services"
)

// Uploader is the slice of the S3 client the media routes need.
type Uploader interface {
	UploadBase64Image(data, keyPrefix string) (string, error)
}

type MediaController struct {
	flyers   *services.FlyerService
	faqs     *services.FAQService
	uploader Uploader
}

func NewMediaController(flyers *services.FlyerService, faqs *services.FAQService, uploader Uploader) *MediaController {
	return &MediaController{flyers: flyers, faqs: faqs, uploader: uploader}
}

func (ctl *MediaController) Upload(c *gin.Context) {
	var req struct {
		Image  string `json:"image"`
		Folder string `json:"folder"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Image == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image is required"})
		return
	}
	if req.Folder == "" {
		req.Folder = "uploads"
	}
	if ctl.uploader == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Uploads not configured"})
		return
	}

	url, err := ctl.uploader.UploadBase64Image(req.Image, req.Folder)
	if err != nil {
		log.Printf("upload: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Upload failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": url})
}

func (ctl *MediaController) CreateFlyer(c *gin.Context) {
	var flyer models.Flyer
	if err := c.ShouldBindJSON(&flyer); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if flyer.Name == "" || flyer.ImageURL == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}

	if err := ctl.flyers.Create(&flyer); err != nil {
		log.Printf("flyer create: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	c.JSON(http.StatusCreated, flyer)
}

func (ctl *MediaController) ListFlyers(c *gin.Context) {
	flyers, err := ctl.flyers.List()
	if err != nil {
		log.Printf("flyer list: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	c.JSON(http.StatusOK, flyers)
}

func (ctl *MediaController) CreateFAQ(c *gin.Context) {
	var faq models.FAQ
	if err := c.ShouldBindJSON(&faq); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if faq.Question == "" || faq.Answer == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}

	if err := ctl.faqs.Create(&faq); err != nil {
		log.Printf("faq create: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	c.JSON(http.StatusCreated, faq)
}

func (ctl *MediaController) ListFAQs(c *gin.Context) {
	faqs, err := ctl.faqs.List()
	if err != nil {
		log.Printf("faq list: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	c.JSON(http.StatusOK, faqs)
}

func (ctl *MediaController) DeleteFAQ(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	if err := ctl.faqs.Delete(id); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "FAQ not found"})
			return
		}
		log.Printf("faq delete: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "FAQ deleted successfully"})
}
