package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
)

// Singleton portfolio sections. Exactly one document of each exists per
// deployment; reads materialize a default when the collection is empty.

type SocialLinks struct {
	LinkedIn string `bson:"linkedin,omitempty" json:"linkedin,omitempty"`
	GitHub   string `bson:"github,omitempty" json:"github,omitempty"`
	Twitter  string `bson:"twitter,omitempty" json:"twitter,omitempty"`
	Email    string `bson:"email,omitempty" json:"email,omitempty"`
}

type Hero struct {
	ID              string      `bson:"id" json:"id"`
	Name            string      `bson:"name" json:"name"`
	JobTitle        string      `bson:"job_title" json:"job_title"`
	Tagline         string      `bson:"tagline" json:"tagline"`
	ProfileImage    string      `bson:"profile_image,omitempty" json:"profile_image,omitempty"`
	BackgroundImage string      `bson:"background_image,omitempty" json:"background_image,omitempty"`
	ResumeURL       string      `bson:"resume_url,omitempty" json:"resume_url,omitempty"`
	SocialLinks     SocialLinks `bson:"social_links" json:"social_links"`
	CreatedAt       time.Time   `bson:"created_at" json:"created_at"`
	UpdatedAt       time.Time   `bson:"updated_at" json:"updated_at"`
}

// HeroPatch carries only the fields the caller supplied; nil means "leave as is".
type HeroPatch struct {
	Name            *string      `json:"name"`
	JobTitle        *string      `json:"job_title"`
	Tagline         *string      `json:"tagline"`
	ProfileImage    *string      `json:"profile_image"`
	BackgroundImage *string      `json:"background_image"`
	ResumeURL       *string      `json:"resume_url"`
	SocialLinks     *SocialLinks `json:"social_links"`
}

func (p HeroPatch) Fields() bson.M {
	set := bson.M{}
	setIf(set, "name", p.Name)
	setIf(set, "job_title", p.JobTitle)
	setIf(set, "tagline", p.Tagline)
	setIf(set, "profile_image", p.ProfileImage)
	setIf(set, "background_image", p.BackgroundImage)
	setIf(set, "resume_url", p.ResumeURL)
	setIf(set, "social_links", p.SocialLinks)
	return set
}

type About struct {
	ID                string    `bson:"id" json:"id"`
	Title             string    `bson:"title" json:"title"`
	Description       string    `bson:"description" json:"description"`
	LongDescription   string    `bson:"long_description" json:"long_description"`
	Location          string    `bson:"location" json:"location"`
	YearsOfExperience int       `bson:"years_of_experience" json:"years_of_experience"`
	ProjectsCompleted int       `bson:"projects_completed" json:"projects_completed"`
	Technologies      []string  `bson:"technologies" json:"technologies"`
	CreatedAt         time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt         time.Time `bson:"updated_at" json:"updated_at"`
}

type AboutPatch struct {
	Title             *string   `json:"title"`
	Description       *string   `json:"description"`
	LongDescription   *string   `json:"long_description"`
	Location          *string   `json:"location"`
	YearsOfExperience *int      `json:"years_of_experience"`
	ProjectsCompleted *int      `json:"projects_completed"`
	Technologies      *[]string `json:"technologies"`
}

func (p AboutPatch) Fields() bson.M {
	set := bson.M{}
	setIf(set, "title", p.Title)
	setIf(set, "description", p.Description)
	setIf(set, "long_description", p.LongDescription)
	setIf(set, "location", p.Location)
	setIf(set, "years_of_experience", p.YearsOfExperience)
	setIf(set, "projects_completed", p.ProjectsCompleted)
	setIf(set, "technologies", p.Technologies)
	return set
}

type TechnicalSkill struct {
	ID       string `bson:"id" json:"id"`
	Name     string `bson:"name" json:"name"`
	Level    int    `bson:"level" json:"level"` // 0-100
	Category string `bson:"category" json:"category"`
}

type Skills struct {
	ID        string           `bson:"id" json:"id"`
	Technical []TechnicalSkill `bson:"technical" json:"technical"`
	Soft      []string         `bson:"soft" json:"soft"`
	CreatedAt time.Time        `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time        `bson:"updated_at" json:"updated_at"`
}

type SkillsPatch struct {
	Technical *[]TechnicalSkill `json:"technical"`
	Soft      *[]string         `json:"soft"`
}

func (p SkillsPatch) Fields() bson.M {
	set := bson.M{}
	setIf(set, "technical", p.Technical)
	setIf(set, "soft", p.Soft)
	return set
}

// setIf adds key to set when the pointer is non-nil. Pointers are the
// presence markers for partial updates; absent JSON fields stay nil.
func setIf[T any](set bson.M, key string, v *T) {
	if v != nil {
		set[key] = *v
	}
}
