package content

import (
	"github.com/google/uuid"

	"github.com/foliocms/foliocms/internal/models"
	"github.com/foliocms/foliocms/internal/store"
)

// Default documents materialized on first read of an empty singleton
// collection. Values are deliberate placeholders the operator replaces
// through the admin API.

func defaultHero() models.Hero {
	now := store.Now()
	return models.Hero{
		ID:        uuid.NewString(),
		Name:      "Your Name",
		JobTitle:  "Your Job Title",
		Tagline:   "Your professional tagline",
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func defaultAbout() models.About {
	now := store.Now()
	return models.About{
		ID:              uuid.NewString(),
		Title:           "About Me",
		Description:     "Your professional description",
		LongDescription: "Additional details about yourself",
		Location:        "Your Location",
		Technologies:    []string{},
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

func defaultSkills() models.Skills {
	now := store.Now()
	return models.Skills{
		ID:        uuid.NewString(),
		Technical: []models.TechnicalSkill{},
		Soft:      []string{},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func defaultSettings() models.SiteSettings {
	now := store.Now()
	return models.SiteSettings{
		ID:             uuid.NewString(),
		Theme:          "light",
		PrimaryColor:   "#000000",
		SecondaryColor: "#666666",
		AccentColor:    "#0066cc",
		Font:           "Inter",
		Language:       "en",
		SEO: models.SEOSettings{
			Title:       "Portfolio",
			Description: "Personal portfolio website",
			Keywords:    "portfolio, developer, web development",
		},
		BlogEnabled: true,
		Sections: map[string]models.SectionSettings{
			"hero":           {Enabled: true, Order: 1},
			"about":          {Enabled: true, Order: 2},
			"experience":     {Enabled: true, Order: 3},
			"education":      {Enabled: true, Order: 4},
			"skills":         {Enabled: true, Order: 5},
			"projects":       {Enabled: true, Order: 6},
			"certifications": {Enabled: true, Order: 7},
			"testimonials":   {Enabled: true, Order: 8},
			"blog":           {Enabled: true, Order: 9},
			"contact":        {Enabled: true, Order: 10},
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
}
