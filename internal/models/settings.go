package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
)

type SEOSettings struct {
	Title       string `bson:"title" json:"title"`
	Description string `bson:"description" json:"description"`
	Keywords    string `bson:"keywords" json:"keywords"`
	OGImage     string `bson:"og_image,omitempty" json:"og_image,omitempty"`
}

type AnalyticsSettings struct {
	GoogleAnalyticsID string `bson:"google_analytics_id,omitempty" json:"google_analytics_id,omitempty"`
	Enabled           bool   `bson:"enabled" json:"enabled"`
}

// SectionSettings controls visibility and placement of one portfolio section.
type SectionSettings struct {
	Enabled bool `bson:"enabled" json:"enabled"`
	Order   int  `bson:"order" json:"order"`
}

type SiteSettings struct {
	ID             string                     `bson:"id" json:"id"`
	Theme          string                     `bson:"theme" json:"theme"` // light, dark, auto
	PrimaryColor   string                     `bson:"primary_color" json:"primary_color"`
	SecondaryColor string                     `bson:"secondary_color" json:"secondary_color"`
	AccentColor    string                     `bson:"accent_color" json:"accent_color"`
	Font           string                     `bson:"font" json:"font"`
	Language       string                     `bson:"language" json:"language"`
	SEO            SEOSettings                `bson:"seo" json:"seo"`
	Analytics      AnalyticsSettings          `bson:"analytics" json:"analytics"`
	BlogEnabled    bool                       `bson:"blog_enabled" json:"blog_enabled"`
	Sections       map[string]SectionSettings `bson:"sections" json:"sections"`
	CreatedAt      time.Time                  `bson:"created_at" json:"created_at"`
	UpdatedAt      time.Time                  `bson:"updated_at" json:"updated_at"`
}

type SiteSettingsPatch struct {
	Theme          *string                     `json:"theme"`
	PrimaryColor   *string                     `json:"primary_color"`
	SecondaryColor *string                     `json:"secondary_color"`
	AccentColor    *string                     `json:"accent_color"`
	Font           *string                     `json:"font"`
	Language       *string                     `json:"language"`
	SEO            *SEOSettings                `json:"seo"`
	Analytics      *AnalyticsSettings          `json:"analytics"`
	BlogEnabled    *bool                       `json:"blog_enabled"`
	Sections       *map[string]SectionSettings `json:"sections"`
}

func (p SiteSettingsPatch) Fields() bson.M {
	set := bson.M{}
	setIf(set, "theme", p.Theme)
	setIf(set, "primary_color", p.PrimaryColor)
	setIf(set, "secondary_color", p.SecondaryColor)
	setIf(set, "accent_color", p.AccentColor)
	setIf(set, "font", p.Font)
	setIf(set, "language", p.Language)
	setIf(set, "seo", p.SEO)
	setIf(set, "analytics", p.Analytics)
	setIf(set, "blog_enabled", p.BlogEnabled)
	setIf(set, "sections", p.Sections)
	return set
}
