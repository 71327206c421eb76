package models

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"go.mongodb.org/mongo-driver/bson"
)

// Collection entities: many instances, individually identified, display
// order controlled by the `order` field (ascending; blog sorts by publish
// date instead).

type Education struct {
	ID          string    `bson:"id" json:"id"`
	Degree      string    `bson:"degree" json:"degree"`
	Institution string    `bson:"institution" json:"institution"`
	Location    string    `bson:"location" json:"location"`
	Duration    string    `bson:"duration" json:"duration"`
	GPA         string    `bson:"gpa,omitempty" json:"gpa,omitempty"`
	Description string    `bson:"description" json:"description"`
	Order       int       `bson:"order" json:"order"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time `bson:"updated_at" json:"updated_at"`
}

func (e Education) Validate() error {
	return validation.ValidateStruct(&e,
		validation.Field(&e.Degree, validation.Required),
		validation.Field(&e.Institution, validation.Required),
	)
}

type EducationPatch struct {
	Degree      *string `json:"degree"`
	Institution *string `json:"institution"`
	Location    *string `json:"location"`
	Duration    *string `json:"duration"`
	GPA         *string `json:"gpa"`
	Description *string `json:"description"`
	Order       *int    `json:"order"`
}

func (p EducationPatch) Fields() bson.M {
	set := bson.M{}
	setIf(set, "degree", p.Degree)
	setIf(set, "institution", p.Institution)
	setIf(set, "location", p.Location)
	setIf(set, "duration", p.Duration)
	setIf(set, "gpa", p.GPA)
	setIf(set, "description", p.Description)
	setIf(set, "order", p.Order)
	return set
}

type Experience struct {
	ID           string    `bson:"id" json:"id"`
	Position     string    `bson:"position" json:"position"`
	Company      string    `bson:"company" json:"company"`
	Location     string    `bson:"location" json:"location"`
	Duration     string    `bson:"duration" json:"duration"`
	Type         string    `bson:"type" json:"type"` // Full-time, Contract, ...
	Description  string    `bson:"description" json:"description"`
	Achievements []string  `bson:"achievements" json:"achievements"`
	Technologies []string  `bson:"technologies" json:"technologies"`
	Order        int       `bson:"order" json:"order"`
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time `bson:"updated_at" json:"updated_at"`
}

func (e Experience) Validate() error {
	return validation.ValidateStruct(&e,
		validation.Field(&e.Position, validation.Required),
		validation.Field(&e.Company, validation.Required),
	)
}

type ExperiencePatch struct {
	Position     *string   `json:"position"`
	Company      *string   `json:"company"`
	Location     *string   `json:"location"`
	Duration     *string   `json:"duration"`
	Type         *string   `json:"type"`
	Description  *string   `json:"description"`
	Achievements *[]string `json:"achievements"`
	Technologies *[]string `json:"technologies"`
	Order        *int      `json:"order"`
}

func (p ExperiencePatch) Fields() bson.M {
	set := bson.M{}
	setIf(set, "position", p.Position)
	setIf(set, "company", p.Company)
	setIf(set, "location", p.Location)
	setIf(set, "duration", p.Duration)
	setIf(set, "type", p.Type)
	setIf(set, "description", p.Description)
	setIf(set, "achievements", p.Achievements)
	setIf(set, "technologies", p.Technologies)
	setIf(set, "order", p.Order)
	return set
}

type Project struct {
	ID              string    `bson:"id" json:"id"`
	Title           string    `bson:"title" json:"title"`
	Description     string    `bson:"description" json:"description"`
	LongDescription string    `bson:"long_description" json:"long_description"`
	Image           string    `bson:"image,omitempty" json:"image,omitempty"`
	Technologies    []string  `bson:"technologies" json:"technologies"`
	GitHubURL       string    `bson:"github_url,omitempty" json:"github_url,omitempty"`
	LiveURL         string    `bson:"live_url,omitempty" json:"live_url,omitempty"`
	Featured        bool      `bson:"featured" json:"featured"`
	Category        string    `bson:"category" json:"category"`
	Order           int       `bson:"order" json:"order"`
	CreatedAt       time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt       time.Time `bson:"updated_at" json:"updated_at"`
}

func (pr Project) Validate() error {
	return validation.ValidateStruct(&pr,
		validation.Field(&pr.Title, validation.Required),
	)
}

type ProjectPatch struct {
	Title           *string   `json:"title"`
	Description     *string   `json:"description"`
	LongDescription *string   `json:"long_description"`
	Image           *string   `json:"image"`
	Technologies    *[]string `json:"technologies"`
	GitHubURL       *string   `json:"github_url"`
	LiveURL         *string   `json:"live_url"`
	Featured        *bool     `json:"featured"`
	Category        *string   `json:"category"`
	Order           *int      `json:"order"`
}

func (p ProjectPatch) Fields() bson.M {
	set := bson.M{}
	setIf(set, "title", p.Title)
	setIf(set, "description", p.Description)
	setIf(set, "long_description", p.LongDescription)
	setIf(set, "image", p.Image)
	setIf(set, "technologies", p.Technologies)
	setIf(set, "github_url", p.GitHubURL)
	setIf(set, "live_url", p.LiveURL)
	setIf(set, "featured", p.Featured)
	setIf(set, "category", p.Category)
	setIf(set, "order", p.Order)
	return set
}

type Certification struct {
	ID           string    `bson:"id" json:"id"`
	Name         string    `bson:"name" json:"name"`
	Issuer       string    `bson:"issuer" json:"issuer"`
	Date         string    `bson:"date" json:"date"`
	CredentialID string    `bson:"credential_id,omitempty" json:"credential_id,omitempty"`
	Image        string    `bson:"image,omitempty" json:"image,omitempty"`
	URL          string    `bson:"url,omitempty" json:"url,omitempty"`
	Order        int       `bson:"order" json:"order"`
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time `bson:"updated_at" json:"updated_at"`
}

func (c Certification) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Name, validation.Required),
		validation.Field(&c.Issuer, validation.Required),
	)
}

type CertificationPatch struct {
	Name         *string `json:"name"`
	Issuer       *string `json:"issuer"`
	Date         *string `json:"date"`
	CredentialID *string `json:"credential_id"`
	Image        *string `json:"image"`
	URL          *string `json:"url"`
	Order        *int    `json:"order"`
}

func (p CertificationPatch) Fields() bson.M {
	set := bson.M{}
	setIf(set, "name", p.Name)
	setIf(set, "issuer", p.Issuer)
	setIf(set, "date", p.Date)
	setIf(set, "credential_id", p.CredentialID)
	setIf(set, "image", p.Image)
	setIf(set, "url", p.URL)
	setIf(set, "order", p.Order)
	return set
}

type Testimonial struct {
	ID        string    `bson:"id" json:"id"`
	Name      string    `bson:"name" json:"name"`
	Position  string    `bson:"position" json:"position"`
	Company   string    `bson:"company" json:"company"`
	Avatar    string    `bson:"avatar,omitempty" json:"avatar,omitempty"`
	Quote     string    `bson:"quote" json:"quote"`
	Rating    int       `bson:"rating" json:"rating"` // 1-5, defaults to 5
	Order     int       `bson:"order" json:"order"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

func (t Testimonial) Validate() error {
	return validation.ValidateStruct(&t,
		validation.Field(&t.Name, validation.Required),
		validation.Field(&t.Quote, validation.Required),
		validation.Field(&t.Rating, validation.Min(1), validation.Max(5)),
	)
}

type TestimonialPatch struct {
	Name     *string `json:"name"`
	Position *string `json:"position"`
	Company  *string `json:"company"`
	Avatar   *string `json:"avatar"`
	Quote    *string `json:"quote"`
	Rating   *int    `json:"rating"`
	Order    *int    `json:"order"`
}

func (p TestimonialPatch) Fields() bson.M {
	set := bson.M{}
	setIf(set, "name", p.Name)
	setIf(set, "position", p.Position)
	setIf(set, "company", p.Company)
	setIf(set, "avatar", p.Avatar)
	setIf(set, "quote", p.Quote)
	setIf(set, "rating", p.Rating)
	setIf(set, "order", p.Order)
	return set
}

type BlogArticle struct {
	ID          string    `bson:"id" json:"id"`
	Title       string    `bson:"title" json:"title"`
	Excerpt     string    `bson:"excerpt" json:"excerpt"`
	Content     string    `bson:"content" json:"content"`
	PublishDate time.Time `bson:"publish_date" json:"publish_date"`
	ReadTime    string    `bson:"read_time" json:"read_time"`
	Tags        []string  `bson:"tags" json:"tags"`
	Image       string    `bson:"image,omitempty" json:"image,omitempty"`
	Featured    bool      `bson:"featured" json:"featured"`
	Published   bool      `bson:"published" json:"published"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time `bson:"updated_at" json:"updated_at"`
}

// BlogArticleCreate keeps publish_date and published optional so their
// defaults (now / true) survive JSON binding of absent fields.
type BlogArticleCreate struct {
	Title       string     `json:"title"`
	Excerpt     string     `json:"excerpt"`
	Content     string     `json:"content"`
	PublishDate *time.Time `json:"publish_date"`
	ReadTime    string     `json:"read_time"`
	Tags        []string   `json:"tags"`
	Image       string     `json:"image"`
	Featured    bool       `json:"featured"`
	Published   *bool      `json:"published"`
}

func (b BlogArticleCreate) Validate() error {
	return validation.ValidateStruct(&b,
		validation.Field(&b.Title, validation.Required),
		validation.Field(&b.Content, validation.Required),
	)
}

func (b BlogArticleCreate) Article() BlogArticle {
	a := BlogArticle{
		Title:       b.Title,
		Excerpt:     b.Excerpt,
		Content:     b.Content,
		PublishDate: time.Now().UTC().Truncate(time.Millisecond),
		ReadTime:    b.ReadTime,
		Tags:        b.Tags,
		Image:       b.Image,
		Featured:    b.Featured,
		Published:   true,
	}
	if b.PublishDate != nil {
		a.PublishDate = *b.PublishDate
	}
	if b.Published != nil {
		a.Published = *b.Published
	}
	return a
}

type BlogArticlePatch struct {
	Title       *string    `json:"title"`
	Excerpt     *string    `json:"excerpt"`
	Content     *string    `json:"content"`
	PublishDate *time.Time `json:"publish_date"`
	ReadTime    *string    `json:"read_time"`
	Tags        *[]string  `json:"tags"`
	Image       *string    `json:"image"`
	Featured    *bool      `json:"featured"`
	Published   *bool      `json:"published"`
}

func (p BlogArticlePatch) Fields() bson.M {
	set := bson.M{}
	setIf(set, "title", p.Title)
	setIf(set, "excerpt", p.Excerpt)
	setIf(set, "content", p.Content)
	setIf(set, "publish_date", p.PublishDate)
	setIf(set, "read_time", p.ReadTime)
	setIf(set, "tags", p.Tags)
	setIf(set, "image", p.Image)
	setIf(set, "featured", p.Featured)
	setIf(set, "published", p.Published)
	return set
}
