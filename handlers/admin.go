package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/foliocms/foliocms/internal/content"
	"github.com/foliocms/foliocms/pkg/logger"
)

// AdminHandler serves the authenticated content-mutation routes.
type AdminHandler struct {
	content *content.Service
}

func NewAdminHandler(s *content.Service) *AdminHandler {
	return &AdminHandler{content: s}
}

// Register mounts /admin content routes behind the auth guard.
func (h *AdminHandler) Register(rg *gin.RouterGroup, guard gin.HandlerFunc) {
	a := rg.Group("/admin", guard)

	a.PUT("/hero", handlePatchSingleton(h.content.UpdateHero))
	a.PUT("/about", handlePatchSingleton(h.content.UpdateAbout))
	a.PUT("/skills", handlePatchSingleton(h.content.UpdateSkills))
	a.PUT("/settings", handlePatchSingleton(h.content.UpdateSettings))

	a.POST("/education", handleCreate(h.content.CreateEducation))
	a.PUT("/education/:id", handlePatchByID(h.content.UpdateEducation))
	a.DELETE("/education/:id", handleDelete(h.content.DeleteEducation, "Education entry"))

	a.POST("/experience", handleCreate(h.content.CreateExperience))
	a.PUT("/experience/:id", handlePatchByID(h.content.UpdateExperience))
	a.DELETE("/experience/:id", handleDelete(h.content.DeleteExperience, "Experience entry"))

	a.POST("/projects", handleCreate(h.content.CreateProject))
	a.PUT("/projects/:id", handlePatchByID(h.content.UpdateProject))
	a.DELETE("/projects/:id", handleDelete(h.content.DeleteProject, "Project"))

	a.POST("/certifications", handleCreate(h.content.CreateCertification))
	a.PUT("/certifications/:id", handlePatchByID(h.content.UpdateCertification))
	a.DELETE("/certifications/:id", handleDelete(h.content.DeleteCertification, "Certification"))

	a.POST("/testimonials", handleCreate(h.content.CreateTestimonial))
	a.PUT("/testimonials/:id", handlePatchByID(h.content.UpdateTestimonial))
	a.DELETE("/testimonials/:id", handleDelete(h.content.DeleteTestimonial, "Testimonial"))

	a.POST("/blog/articles", handleCreate(h.content.CreateBlogArticle))
	a.PUT("/blog/articles/:id", handlePatchByID(h.content.UpdateBlogArticle))
	a.DELETE("/blog/articles/:id", handleDelete(h.content.DeleteBlogArticle, "Blog article"))

	a.GET("/contact-messages", func(c *gin.Context) {
		msgs, err := h.content.ContactMessages(c.Request.Context())
		if err != nil {
			logger.Errorf("list contact messages: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"detail": "failed to load messages"})
			return
		}
		c.JSON(http.StatusOK, msgs)
	})
}

type validatable interface {
	Validate() error
}

// handleCreate binds the payload, validates it and stores a new entity.
func handleCreate[In validatable, Out any](create func(ctx context.Context, in In) (Out, error)) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in In
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
			return
		}
		if err := in.Validate(); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
			return
		}
		out, err := create(c.Request.Context(), in)
		if err != nil {
			logger.Errorf("create: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"detail": "create failed"})
			return
		}
		c.JSON(http.StatusOK, out)
	}
}

// handlePatchSingleton merges supplied fields into a singleton section.
func handlePatchSingleton[P, Out any](update func(ctx context.Context, p P) (Out, error)) gin.HandlerFunc {
	return func(c *gin.Context) {
		var p P
		if err := c.ShouldBindJSON(&p); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
			return
		}
		out, err := update(c.Request.Context(), p)
		if err != nil {
			logger.Errorf("update singleton: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"detail": "update failed"})
			return
		}
		c.JSON(http.StatusOK, out)
	}
}

// handlePatchByID merges supplied fields into one collection document.
func handlePatchByID[P, Out any](update func(ctx context.Context, id string, p P) (Out, error)) gin.HandlerFunc {
	return func(c *gin.Context) {
		var p P
		if err := c.ShouldBindJSON(&p); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
			return
		}
		out, err := update(c.Request.Context(), c.Param("id"), p)
		if err != nil {
			var nf *content.NotFoundError
			if errors.As(err, &nf) {
				c.JSON(http.StatusNotFound, gin.H{"detail": nf.Error()})
				return
			}
			logger.Errorf("update: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"detail": "update failed"})
			return
		}
		c.JSON(http.StatusOK, out)
	}
}

func handleDelete(del func(ctx context.Context, id string) error, entity string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := del(c.Request.Context(), c.Param("id")); err != nil {
			var nf *content.NotFoundError
			if errors.As(err, &nf) {
				c.JSON(http.StatusNotFound, gin.H{"detail": nf.Error()})
				return
			}
			logger.Errorf("delete: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"detail": "delete failed"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": entity + " deleted successfully"})
	}
}
