package models

import "time"

// Stamp assigns identity and creation/update timestamps at insert time.
// Both timestamps start equal; updates refresh UpdatedAt only.

func (u *User) Stamp(id string, now time.Time) { u.ID, u.CreatedAt, u.UpdatedAt = id, now, now }

func (e *Education) Stamp(id string, now time.Time) { e.ID, e.CreatedAt, e.UpdatedAt = id, now, now }

func (e *Experience) Stamp(id string, now time.Time) { e.ID, e.CreatedAt, e.UpdatedAt = id, now, now }

func (p *Project) Stamp(id string, now time.Time) { p.ID, p.CreatedAt, p.UpdatedAt = id, now, now }

func (c *Certification) Stamp(id string, now time.Time) {
	c.ID, c.CreatedAt, c.UpdatedAt = id, now, now
}

func (t *Testimonial) Stamp(id string, now time.Time) { t.ID, t.CreatedAt, t.UpdatedAt = id, now, now }

func (b *BlogArticle) Stamp(id string, now time.Time) { b.ID, b.CreatedAt, b.UpdatedAt = id, now, now }

func (m *ContactMessage) Stamp(id string, now time.Time) {
	m.ID, m.CreatedAt, m.UpdatedAt = id, now, now
}
