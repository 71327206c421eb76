package handlers

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/foliocms/foliocms/internal/uploads"
	"github.com/foliocms/foliocms/pkg/logger"
)

// FilesHandler serves the authenticated upload management routes.
type FilesHandler struct {
	uploads *uploads.Manager
}

func NewFilesHandler(m *uploads.Manager) *FilesHandler {
	return &FilesHandler{uploads: m}
}

// Register mounts the /admin file routes behind the auth guard.
func (h *FilesHandler) Register(rg *gin.RouterGroup, guard gin.HandlerFunc) {
	a := rg.Group("/admin", guard)

	a.POST("/upload", h.Upload)
	a.GET("/files", h.List)
	a.DELETE("/files/:filename", h.Delete)
}

// AssetRedirect serves stored asset URLs for object-storage backends by
// redirecting each request to a short-lived direct download URL.
func AssetRedirect(presign func(ctx context.Context, key string) (string, error)) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := strings.TrimPrefix(c.Param("key"), "/")
		if key == "" {
			c.JSON(http.StatusNotFound, gin.H{"detail": "File not found"})
			return
		}
		url, err := presign(c.Request.Context(), key)
		if err != nil {
			logger.Errorf("presign asset %s: %v", key, err)
			c.JSON(http.StatusNotFound, gin.H{"detail": "File not found"})
			return
		}
		c.Redirect(http.StatusTemporaryRedirect, url)
	}
}

func (h *FilesHandler) Upload(c *gin.Context) {
	fh, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "file field is required"})
		return
	}
	if fh.Size > uploads.MaxFileSize {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "File too large. Maximum size is 10MB"})
		return
	}

	f, err := fh.Open()
	if err != nil {
		logger.Errorf("open upload: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "upload failed"})
		return
	}
	defer f.Close()
	data, err := io.ReadAll(io.LimitReader(f, uploads.MaxFileSize+1))
	if err != nil {
		logger.Errorf("read upload: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "upload failed"})
		return
	}

	info, err := h.uploads.Save(
		c.Request.Context(),
		fh.Filename,
		fh.Header.Get("Content-Type"),
		data,
		c.PostForm("subfolder"),
	)
	if err != nil {
		switch {
		case errors.Is(err, uploads.ErrTypeNotAllowed):
			c.JSON(http.StatusBadRequest, gin.H{"detail": "File type not allowed"})
		case errors.Is(err, uploads.ErrTooLarge):
			c.JSON(http.StatusBadRequest, gin.H{"detail": "File too large. Maximum size is 10MB"})
		default:
			logger.Errorf("save upload: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"detail": "upload failed"})
		}
		return
	}
	c.JSON(http.StatusOK, info)
}

func (h *FilesHandler) List(c *gin.Context) {
	files, err := h.uploads.List(c.Request.Context(), c.Query("subfolder"))
	if err != nil {
		logger.Errorf("list uploads: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "failed to list files"})
		return
	}
	c.JSON(http.StatusOK, files)
}

func (h *FilesHandler) Delete(c *gin.Context) {
	removed, err := h.uploads.Delete(c.Request.Context(), c.Param("filename"), c.Query("subfolder"))
	if err != nil {
		logger.Errorf("delete upload: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "failed to delete file"})
		return
	}
	if !removed {
		c.JSON(http.StatusNotFound, gin.H{"detail": "File not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "File deleted successfully"})
}
