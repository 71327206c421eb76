package content

import (
	"context"
	"errors"

	"github.com/foliocms/foliocms/internal/models"
	"github.com/foliocms/foliocms/internal/store"
)

// NotFoundError identifies a mutation that referenced an unknown id.
// Entity is the human-readable label used in the 404 message.
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string { return e.Entity + " not found" }

// Service exposes one method group per content type, each a thin
// composition of the generic store helpers plus a type-specific default.
type Service struct {
	store store.Store
}

func NewService(s store.Store) *Service {
	return &Service{store: s}
}

func (s *Service) notFound(entity string, err error) error {
	if errors.Is(err, store.ErrNotFound) {
		return &NotFoundError{Entity: entity}
	}
	return err
}

// Singleton sections

func (s *Service) Hero(ctx context.Context) (models.Hero, error) {
	return store.GetOrInit(ctx, s.store, store.ColHero, defaultHero)
}

func (s *Service) UpdateHero(ctx context.Context, p models.HeroPatch) (models.Hero, error) {
	return store.PatchSingleton(ctx, s.store, store.ColHero, defaultHero, p)
}

func (s *Service) About(ctx context.Context) (models.About, error) {
	return store.GetOrInit(ctx, s.store, store.ColAbout, defaultAbout)
}

func (s *Service) UpdateAbout(ctx context.Context, p models.AboutPatch) (models.About, error) {
	return store.PatchSingleton(ctx, s.store, store.ColAbout, defaultAbout, p)
}

func (s *Service) Skills(ctx context.Context) (models.Skills, error) {
	return store.GetOrInit(ctx, s.store, store.ColSkills, defaultSkills)
}

func (s *Service) UpdateSkills(ctx context.Context, p models.SkillsPatch) (models.Skills, error) {
	return store.PatchSingleton(ctx, s.store, store.ColSkills, defaultSkills, p)
}

func (s *Service) Settings(ctx context.Context) (models.SiteSettings, error) {
	return store.GetOrInit(ctx, s.store, store.ColSettings, defaultSettings)
}

func (s *Service) UpdateSettings(ctx context.Context, p models.SiteSettingsPatch) (models.SiteSettings, error) {
	return store.PatchSingleton(ctx, s.store, store.ColSettings, defaultSettings, p)
}

// Education

func (s *Service) Education(ctx context.Context) ([]models.Education, error) {
	return store.ListSorted[models.Education](ctx, s.store, store.ColEducation, "order", false)
}

func (s *Service) CreateEducation(ctx context.Context, e models.Education) (models.Education, error) {
	err := store.CreateOne(ctx, s.store, store.ColEducation, &e)
	return e, err
}

func (s *Service) UpdateEducation(ctx context.Context, id string, p models.EducationPatch) (models.Education, error) {
	v, err := store.PatchByID[models.Education](ctx, s.store, store.ColEducation, id, p)
	if err != nil {
		return v, s.notFound("Education entry", err)
	}
	return v, nil
}

func (s *Service) DeleteEducation(ctx context.Context, id string) error {
	ok, err := s.store.DeleteByID(ctx, store.ColEducation, id)
	if err != nil {
		return err
	}
	if !ok {
		return &NotFoundError{Entity: "Education entry"}
	}
	return nil
}

// Experience

func (s *Service) Experience(ctx context.Context) ([]models.Experience, error) {
	return store.ListSorted[models.Experience](ctx, s.store, store.ColExperience, "order", false)
}

func (s *Service) CreateExperience(ctx context.Context, e models.Experience) (models.Experience, error) {
	if e.Type == "" {
		e.Type = "Full-time"
	}
	err := store.CreateOne(ctx, s.store, store.ColExperience, &e)
	return e, err
}

func (s *Service) UpdateExperience(ctx context.Context, id string, p models.ExperiencePatch) (models.Experience, error) {
	v, err := store.PatchByID[models.Experience](ctx, s.store, store.ColExperience, id, p)
	if err != nil {
		return v, s.notFound("Experience entry", err)
	}
	return v, nil
}

func (s *Service) DeleteExperience(ctx context.Context, id string) error {
	ok, err := s.store.DeleteByID(ctx, store.ColExperience, id)
	if err != nil {
		return err
	}
	if !ok {
		return &NotFoundError{Entity: "Experience entry"}
	}
	return nil
}

// Projects

func (s *Service) Projects(ctx context.Context) ([]models.Project, error) {
	return store.ListSorted[models.Project](ctx, s.store, store.ColProjects, "order", false)
}

func (s *Service) CreateProject(ctx context.Context, p models.Project) (models.Project, error) {
	err := store.CreateOne(ctx, s.store, store.ColProjects, &p)
	return p, err
}

func (s *Service) UpdateProject(ctx context.Context, id string, p models.ProjectPatch) (models.Project, error) {
	v, err := store.PatchByID[models.Project](ctx, s.store, store.ColProjects, id, p)
	if err != nil {
		return v, s.notFound("Project", err)
	}
	return v, nil
}

func (s *Service) DeleteProject(ctx context.Context, id string) error {
	ok, err := s.store.DeleteByID(ctx, store.ColProjects, id)
	if err != nil {
		return err
	}
	if !ok {
		return &NotFoundError{Entity: "Project"}
	}
	return nil
}

// Certifications

func (s *Service) Certifications(ctx context.Context) ([]models.Certification, error) {
	return store.ListSorted[models.Certification](ctx, s.store, store.ColCertifications, "order", false)
}

func (s *Service) CreateCertification(ctx context.Context, c models.Certification) (models.Certification, error) {
	err := store.CreateOne(ctx, s.store, store.ColCertifications, &c)
	return c, err
}

func (s *Service) UpdateCertification(ctx context.Context, id string, p models.CertificationPatch) (models.Certification, error) {
	v, err := store.PatchByID[models.Certification](ctx, s.store, store.ColCertifications, id, p)
	if err != nil {
		return v, s.notFound("Certification", err)
	}
	return v, nil
}

func (s *Service) DeleteCertification(ctx context.Context, id string) error {
	ok, err := s.store.DeleteByID(ctx, store.ColCertifications, id)
	if err != nil {
		return err
	}
	if !ok {
		return &NotFoundError{Entity: "Certification"}
	}
	return nil
}

// Testimonials

func (s *Service) Testimonials(ctx context.Context) ([]models.Testimonial, error) {
	return store.ListSorted[models.Testimonial](ctx, s.store, store.ColTestimonials, "order", false)
}

func (s *Service) CreateTestimonial(ctx context.Context, t models.Testimonial) (models.Testimonial, error) {
	if t.Rating == 0 {
		t.Rating = 5
	}
	err := store.CreateOne(ctx, s.store, store.ColTestimonials, &t)
	return t, err
}

func (s *Service) UpdateTestimonial(ctx context.Context, id string, p models.TestimonialPatch) (models.Testimonial, error) {
	v, err := store.PatchByID[models.Testimonial](ctx, s.store, store.ColTestimonials, id, p)
	if err != nil {
		return v, s.notFound("Testimonial", err)
	}
	return v, nil
}

func (s *Service) DeleteTestimonial(ctx context.Context, id string) error {
	ok, err := s.store.DeleteByID(ctx, store.ColTestimonials, id)
	if err != nil {
		return err
	}
	if !ok {
		return &NotFoundError{Entity: "Testimonial"}
	}
	return nil
}

// Blog articles sort newest-first by publish date.

func (s *Service) BlogArticles(ctx context.Context) ([]models.BlogArticle, error) {
	return store.ListSorted[models.BlogArticle](ctx, s.store, store.ColBlogArticles, "publish_date", true)
}

func (s *Service) CreateBlogArticle(ctx context.Context, c models.BlogArticleCreate) (models.BlogArticle, error) {
	a := c.Article()
	err := store.CreateOne(ctx, s.store, store.ColBlogArticles, &a)
	return a, err
}

func (s *Service) UpdateBlogArticle(ctx context.Context, id string, p models.BlogArticlePatch) (models.BlogArticle, error) {
	v, err := store.PatchByID[models.BlogArticle](ctx, s.store, store.ColBlogArticles, id, p)
	if err != nil {
		return v, s.notFound("Blog article", err)
	}
	return v, nil
}

func (s *Service) DeleteBlogArticle(ctx context.Context, id string) error {
	ok, err := s.store.DeleteByID(ctx, store.ColBlogArticles, id)
	if err != nil {
		return err
	}
	if !ok {
		return &NotFoundError{Entity: "Blog article"}
	}
	return nil
}

// Contact messages are ordered by recency, not by an explicit order field.

func (s *Service) CreateContactMessage(ctx context.Context, m models.ContactMessage) (models.ContactMessage, error) {
	err := store.CreateOne(ctx, s.store, store.ColContactMessages, &m)
	return m, err
}

func (s *Service) ContactMessages(ctx context.Context) ([]models.ContactMessage, error) {
	return store.ListSorted[models.ContactMessage](ctx, s.store, store.ColContactMessages, "created_at", true)
}
