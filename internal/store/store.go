package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
)

// ErrNotFound is returned when a lookup matches no document.
var ErrNotFound = errors.New("document not found")

// Store is the raw document-collection adapter. Operations work on whole
// collections identified by name; documents travel as bson.Raw so the
// typed helpers in typed.go can decode them into concrete entities.
//
// Singleton operations are filterless: a singleton collection holds at
// most one logical document, enforced by replace-upsert. Concurrent first
// reads of an empty singleton may both attempt the initial write; the
// upsert converges to one surviving document.
type Store interface {
	FindSingleton(ctx context.Context, col string) (bson.Raw, error)
	ReplaceSingleton(ctx context.Context, col string, doc interface{}) error
	MergeSingleton(ctx context.Context, col string, set bson.M) error

	Insert(ctx context.Context, col string, doc interface{}) error
	FindAll(ctx context.Context, col, sortKey string, descending bool) ([]bson.Raw, error)
	FindOneBy(ctx context.Context, col string, filter bson.M) (bson.Raw, error)
	UpdateByID(ctx context.Context, col, id string, set bson.M) error
	DeleteByID(ctx context.Context, col, id string) (bool, error)
}

// Collection names used by the content and auth services.
const (
	ColUsers           = "users"
	ColHero            = "hero"
	ColAbout           = "about"
	ColSkills          = "skills"
	ColSettings        = "settings"
	ColEducation       = "education"
	ColExperience      = "experience"
	ColProjects        = "projects"
	ColCertifications  = "certifications"
	ColTestimonials    = "testimonials"
	ColBlogArticles    = "blog_articles"
	ColContactMessages = "contact_messages"
)
