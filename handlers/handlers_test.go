package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/foliocms/foliocms/internal/auth"
	"github.com/foliocms/foliocms/internal/content"
	"github.com/foliocms/foliocms/internal/models"
	"github.com/foliocms/foliocms/internal/store"
	"github.com/foliocms/foliocms/internal/uploads"
	"github.com/foliocms/foliocms/pkg/middleware"
)

type testAPI struct {
	router  *gin.Engine
	auth    *auth.Service
	content *content.Service
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()
	gin.SetMode(gin.TestMode)

	st := store.NewMemoryStore()
	authSvc := auth.NewService(st, "test-secret", time.Hour)
	require.NoError(t, authSvc.EnsureDefaultAdmin(context.Background()))
	contentSvc := content.NewService(st)

	backend, err := uploads.NewLocal(t.TempDir())
	require.NoError(t, err)
	uploadsMgr := uploads.NewManager(backend)

	r := gin.New()
	guard := middleware.RequireAuth(authSvc, authSvc)
	api := r.Group("/api")
	NewAuthHandler(authSvc).Register(api, guard)
	NewPortfolioHandler(contentSvc).Register(api)
	NewAdminHandler(contentSvc).Register(api, guard)
	NewFilesHandler(uploadsMgr).Register(api, guard)

	return &testAPI{router: r, auth: authSvc, content: contentSvc}
}

func (a *testAPI) do(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

func (a *testAPI) login(t *testing.T) string {
	t.Helper()
	w := a.do(t, http.MethodPost, "/api/auth/login", "", gin.H{
		"email":    auth.DefaultAdminEmail,
		"password": auth.DefaultAdminPassword,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp models.LoginResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.AccessToken)
	return resp.AccessToken
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}

func TestLoginSuccess(t *testing.T) {
	api := newTestAPI(t)

	w := api.do(t, http.MethodPost, "/api/auth/login", "", gin.H{
		"email":    auth.DefaultAdminEmail,
		"password": auth.DefaultAdminPassword,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.LoginResponse
	decodeBody(t, w, &resp)
	assert.Equal(t, "bearer", resp.TokenType)
	assert.Equal(t, auth.DefaultAdminEmail, resp.User.Email)
	assert.NotContains(t, w.Body.String(), "password")
}

func TestLoginWrongPassword(t *testing.T) {
	api := newTestAPI(t)

	w := api.do(t, http.MethodPost, "/api/auth/login", "", gin.H{
		"email":    auth.DefaultAdminEmail,
		"password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Incorrect email or password")
	assert.Equal(t, "Bearer", w.Header().Get("WWW-Authenticate"))
}

func TestLoginValidation(t *testing.T) {
	api := newTestAPI(t)

	w := api.do(t, http.MethodPost, "/api/auth/login", "", gin.H{"email": "not-an-email", "password": "x"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMeRequiresToken(t *testing.T) {
	api := newTestAPI(t)

	w := api.do(t, http.MethodGet, "/api/auth/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	token := api.login(t)
	w = api.do(t, http.MethodGet, "/api/auth/me", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var u models.PublicUser
	decodeBody(t, w, &u)
	assert.Equal(t, auth.DefaultAdminEmail, u.Email)
	assert.Equal(t, auth.RoleAdmin, u.Role)
}

func TestPublicSectionsServeDefaults(t *testing.T) {
	api := newTestAPI(t)

	w := api.do(t, http.MethodGet, "/api/portfolio/hero", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var hero models.Hero
	decodeBody(t, w, &hero)
	assert.Equal(t, "Your Name", hero.Name)

	w = api.do(t, http.MethodGet, "/api/portfolio/settings", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var settings models.SiteSettings
	decodeBody(t, w, &settings)
	assert.Equal(t, "light", settings.Theme)

	w = api.do(t, http.MethodGet, "/api/portfolio/projects", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var projects []models.Project
	decodeBody(t, w, &projects)
	assert.Empty(t, projects)
}

func TestAdminMutationRequiresToken(t *testing.T) {
	api := newTestAPI(t)

	w := api.do(t, http.MethodPut, "/api/admin/hero", "", gin.H{"name": "Mallory"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// state unchanged
	w = api.do(t, http.MethodGet, "/api/portfolio/hero", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var hero models.Hero
	decodeBody(t, w, &hero)
	assert.Equal(t, "Your Name", hero.Name)
}

func TestAdminUpdateHero(t *testing.T) {
	api := newTestAPI(t)
	token := api.login(t)

	w := api.do(t, http.MethodPut, "/api/admin/hero", token, gin.H{"name": "Ada Lovelace"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var hero models.Hero
	decodeBody(t, w, &hero)
	assert.Equal(t, "Ada Lovelace", hero.Name)
	assert.Equal(t, "Your Job Title", hero.JobTitle)

	w = api.do(t, http.MethodGet, "/api/portfolio/hero", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	decodeBody(t, w, &hero)
	assert.Equal(t, "Ada Lovelace", hero.Name)
}

func TestProjectCRUDOverHTTP(t *testing.T) {
	api := newTestAPI(t)
	token := api.login(t)

	w := api.do(t, http.MethodPost, "/api/admin/projects", token, gin.H{
		"title":       "FolioCMS",
		"description": "Headless portfolio backend",
		"order":       1,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var created models.Project
	decodeBody(t, w, &created)
	require.NotEmpty(t, created.ID)

	w = api.do(t, http.MethodPut, "/api/admin/projects/"+created.ID, token, gin.H{"featured": true})
	require.Equal(t, http.StatusOK, w.Code)
	var updated models.Project
	decodeBody(t, w, &updated)
	assert.True(t, updated.Featured)
	assert.Equal(t, "FolioCMS", updated.Title)

	w = api.do(t, http.MethodGet, "/api/portfolio/projects", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var list []models.Project
	decodeBody(t, w, &list)
	require.Len(t, list, 1)

	w = api.do(t, http.MethodDelete, "/api/admin/projects/"+created.ID, token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Project deleted successfully")

	w = api.do(t, http.MethodGet, "/api/portfolio/projects", "", nil)
	decodeBody(t, w, &list)
	assert.Empty(t, list)
}

func TestAdminUnknownIDReturns404(t *testing.T) {
	api := newTestAPI(t)
	token := api.login(t)

	w := api.do(t, http.MethodPut, "/api/admin/education/nope", token, gin.H{"degree": "PhD"})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Education entry not found")

	w = api.do(t, http.MethodDelete, "/api/admin/testimonials/nope", token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Testimonial not found")
}

func TestAdminCreateValidation(t *testing.T) {
	api := newTestAPI(t)
	token := api.login(t)

	w := api.do(t, http.MethodPost, "/api/admin/projects", token, gin.H{"description": "no title"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestContactFlow(t *testing.T) {
	api := newTestAPI(t)

	w := api.do(t, http.MethodPost, "/api/contact", "", gin.H{
		"name":    "Visitor",
		"email":   "visitor@example.com",
		"subject": "Hello",
		"message": "Nice site",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), "Message sent successfully!")

	// invalid email rejected
	w = api.do(t, http.MethodPost, "/api/contact", "", gin.H{
		"name": "V", "email": "bad", "subject": "s", "message": "m",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// reading messages needs auth
	w = api.do(t, http.MethodGet, "/api/admin/contact-messages", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	token := api.login(t)
	w = api.do(t, http.MethodGet, "/api/admin/contact-messages", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var msgs []models.ContactMessage
	decodeBody(t, w, &msgs)
	require.Len(t, msgs, 1)
	assert.Equal(t, "Visitor", msgs[0].Name)
	assert.False(t, msgs[0].Read)
}

func TestBlogCreateAndPublicList(t *testing.T) {
	api := newTestAPI(t)
	token := api.login(t)

	w := api.do(t, http.MethodPost, "/api/admin/blog/articles", token, gin.H{
		"title":   "First Post",
		"content": "Hello world",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var article models.BlogArticle
	decodeBody(t, w, &article)
	assert.True(t, article.Published)

	w = api.do(t, http.MethodGet, "/api/portfolio/blog", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var list []models.BlogArticle
	decodeBody(t, w, &list)
	require.Len(t, list, 1)
	assert.Equal(t, "First Post", list[0].Title)
}

func TestUploadLifecycle(t *testing.T) {
	api := newTestAPI(t)
	token := api.login(t)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreatePart(map[string][]string{
		"Content-Disposition": {`form-data; name="file"; filename="doc.pdf"`},
		"Content-Type":        {"application/pdf"},
	})
	require.NoError(t, err)
	_, err = part.Write([]byte("%PDF-1.4 fake"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/admin/upload", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	api.router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var info uploads.FileInfo
	decodeBody(t, w, &info)
	require.NotEmpty(t, info.Filename)
	assert.Equal(t, "doc.pdf", info.OriginalFilename)

	lw := api.do(t, http.MethodGet, "/api/admin/files", token, nil)
	require.Equal(t, http.StatusOK, lw.Code)
	// the listing is a bare JSON array of asset info
	var listing []uploads.FileInfo
	decodeBody(t, lw, &listing)
	require.Len(t, listing, 1)
	assert.Equal(t, info.Filename, listing[0].Filename)

	dw := api.do(t, http.MethodDelete, "/api/admin/files/"+info.Filename, token, nil)
	require.Equal(t, http.StatusOK, dw.Code)
	assert.Contains(t, dw.Body.String(), "File deleted successfully")

	dw = api.do(t, http.MethodDelete, "/api/admin/files/"+info.Filename, token, nil)
	assert.Equal(t, http.StatusNotFound, dw.Code)
}

func TestUploadRejectsBadType(t *testing.T) {
	api := newTestAPI(t)
	token := api.login(t)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreatePart(map[string][]string{
		"Content-Disposition": {`form-data; name="file"; filename="evil.sh"`},
		"Content-Type":        {"application/x-sh"},
	})
	require.NoError(t, err)
	_, err = part.Write([]byte("#!/bin/sh"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/admin/upload", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	api.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "File type not allowed")
}

func TestAssetRedirect(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET(uploads.PublicPath+"/*key", AssetRedirect(func(ctx context.Context, key string) (string, error) {
		if key != "avatars/pic.jpg" {
			return "", errors.New("no such object")
		}
		return "https://storage.example.com/signed/" + key, nil
	}))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/files/avatars/pic.jpg", nil))
	require.Equal(t, http.StatusTemporaryRedirect, w.Code)
	assert.Equal(t, "https://storage.example.com/signed/avatars/pic.jpg", w.Header().Get("Location"))

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/files/missing.jpg", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestBannerRoute(t *testing.T) {
	api := newTestAPI(t)

	w := api.do(t, http.MethodGet, "/api/", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Portfolio API v1.0.0")
}
