package auth

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/foliocms/foliocms/internal/models"
	"github.com/foliocms/foliocms/internal/store"
	"github.com/foliocms/foliocms/pkg/logger"
)

// First-run convenience account. Documented operator expectation: log in
// once and rotate the password immediately.
const (
	DefaultAdminEmail    = "admin@portfolio.com"
	DefaultAdminPassword = "admin123"
	DefaultAdminName     = "Portfolio Admin"
	RoleAdmin            = "admin"
)

// ErrInvalidCredentials is returned for unknown email and wrong password
// alike, so login responses cannot be used to enumerate accounts.
var ErrInvalidCredentials = errors.New("invalid credentials")

// Service implements authentication against the users collection.
type Service struct {
	store  store.Store
	secret string
	ttl    time.Duration
}

func NewService(s store.Store, secret string, ttl time.Duration) *Service {
	return &Service{store: s, secret: secret, ttl: ttl}
}

// Authenticate looks up a user by email and checks the password.
func (s *Service) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	raw, err := s.store.FindOneBy(ctx, store.ColUsers, bson.M{"email": email})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	var u models.User
	if err := bson.Unmarshal(raw, &u); err != nil {
		return nil, err
	}
	if !CheckPassword(password, u.Password) {
		return nil, ErrInvalidCredentials
	}
	return &u, nil
}

// GetByID returns the user with the given id, or store.ErrNotFound.
func (s *Service) GetByID(ctx context.Context, id string) (*models.User, error) {
	raw, err := s.store.FindOneBy(ctx, store.ColUsers, bson.M{"id": id})
	if err != nil {
		return nil, err
	}
	var u models.User
	if err := bson.Unmarshal(raw, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// IssueToken creates a bearer token for the user with the configured TTL.
func (s *Service) IssueToken(u *models.User) (string, error) {
	return GenerateAccessToken(s.secret, u.ID, s.ttl)
}

// VerifyToken validates a bearer token and returns the subject id.
func (s *Service) VerifyToken(token string) (string, error) {
	return VerifyAccessToken(s.secret, token)
}

// EnsureDefaultAdmin creates the well-known admin account when no user with
// the admin role exists yet. Runs before the server accepts traffic.
func (s *Service) EnsureDefaultAdmin(ctx context.Context) error {
	_, err := s.store.FindOneBy(ctx, store.ColUsers, bson.M{"role": RoleAdmin})
	if err == nil {
		return nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return err
	}
	hash, err := HashPassword(DefaultAdminPassword)
	if err != nil {
		return err
	}
	u := &models.User{
		Email:    DefaultAdminEmail,
		Password: hash,
		Name:     DefaultAdminName,
		Role:     RoleAdmin,
	}
	if err := store.CreateOne(ctx, s.store, store.ColUsers, u); err != nil {
		return err
	}
	logger.Warnf("created default admin user %s; rotate its password now", DefaultAdminEmail)
	return nil
}
