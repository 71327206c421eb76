package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/foliocms/foliocms/internal/content"
	"github.com/foliocms/foliocms/internal/models"
	"github.com/foliocms/foliocms/pkg/logger"
)

// PortfolioHandler serves the public read-only routes plus the contact form.
type PortfolioHandler struct {
	content *content.Service
}

func NewPortfolioHandler(s *content.Service) *PortfolioHandler {
	return &PortfolioHandler{content: s}
}

func (h *PortfolioHandler) Register(rg *gin.RouterGroup) {
	rg.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Portfolio API v1.0.0"})
	})

	p := rg.Group("/portfolio")
	p.GET("/hero", h.section(func(c *gin.Context) (interface{}, error) { return h.content.Hero(c.Request.Context()) }))
	p.GET("/about", h.section(func(c *gin.Context) (interface{}, error) { return h.content.About(c.Request.Context()) }))
	p.GET("/education", h.section(func(c *gin.Context) (interface{}, error) { return h.content.Education(c.Request.Context()) }))
	p.GET("/experience", h.section(func(c *gin.Context) (interface{}, error) { return h.content.Experience(c.Request.Context()) }))
	p.GET("/skills", h.section(func(c *gin.Context) (interface{}, error) { return h.content.Skills(c.Request.Context()) }))
	p.GET("/projects", h.section(func(c *gin.Context) (interface{}, error) { return h.content.Projects(c.Request.Context()) }))
	p.GET("/certifications", h.section(func(c *gin.Context) (interface{}, error) { return h.content.Certifications(c.Request.Context()) }))
	p.GET("/testimonials", h.section(func(c *gin.Context) (interface{}, error) { return h.content.Testimonials(c.Request.Context()) }))
	p.GET("/blog", h.section(func(c *gin.Context) (interface{}, error) { return h.content.BlogArticles(c.Request.Context()) }))
	p.GET("/settings", h.section(func(c *gin.Context) (interface{}, error) { return h.content.Settings(c.Request.Context()) }))

	rg.POST("/contact", h.CreateContactMessage)
}

// section wraps a read with uniform error handling.
func (h *PortfolioHandler) section(load func(c *gin.Context) (interface{}, error)) gin.HandlerFunc {
	return func(c *gin.Context) {
		v, err := load(c)
		if err != nil {
			logger.Errorf("portfolio read: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"detail": "failed to load section"})
			return
		}
		c.JSON(http.StatusOK, v)
	}
}

func (h *PortfolioHandler) CreateContactMessage(c *gin.Context) {
	var msg models.ContactMessage
	if err := c.ShouldBindJSON(&msg); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}
	if err := msg.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}
	created, err := h.content.CreateContactMessage(c.Request.Context(), msg)
	if err != nil {
		logger.Errorf("contact message: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "failed to store message"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Message sent successfully!",
		"data":    gin.H{"id": created.ID},
	})
}
