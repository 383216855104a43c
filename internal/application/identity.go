package application

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/linskybing/portal-go/internal/api/middleware"
	"github.com/linskybing/portal-go/internal/domain/user"
	"github.com/linskybing/portal-go/internal/repository"
	"github.com/linskybing/portal-go/pkg/logger"
	"github.com/linskybing/portal-go/pkg/metrics"
	"github.com/linskybing/portal-go/pkg/types"
	"github.com/linskybing/portal-go/pkg/validation"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrUserNotFound        = errors.New("user not found")
	ErrEmailTaken          = errors.New("email already registered")
	ErrInvalidCredentials  = errors.New("invalid email or password")
	ErrPasswordHashFailure = errors.New("failed to hash password")
	ErrCannotDemoteSelf    = errors.New("cannot remove your own super admin role")
	ErrInvalidRole         = errors.New("invalid role")
)

type SessionEventKind string

const (
	SessionSignedIn  SessionEventKind = "signed_in"
	SessionSignedOut SessionEventKind = "signed_out"
)

type SessionEvent struct {
	Kind   SessionEventKind
	UserID uint
	At     time.Time
}

type SessionListener func(SessionEvent)

// Session is a freshly issued sign-in.
type Session struct {
	Token     string
	ExpiresAt time.Time
	User      user.User
}

type IdentityService struct {
	Repos *repository.Repos
	deps  Deps

	mu        sync.RWMutex
	nextID    int
	listeners map[int]SessionListener
}

func NewIdentityService(repos *repository.Repos, deps Deps) *IdentityService {
	return &IdentityService{
		Repos:     repos,
		deps:      deps.withDefaults(),
		listeners: map[int]SessionListener{},
	}
}

// OnSessionChange registers fn for sign-in and sign-out events and returns its unsubscribe.
func (s *IdentityService) OnSessionChange(fn SessionListener) func() {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = fn
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.listeners, id)
			s.mu.Unlock()
		})
	}
}

func (s *IdentityService) notify(e SessionEvent) {
	s.mu.RLock()
	fns := make([]SessionListener, 0, len(s.listeners))
	for _, fn := range s.listeners {
		fns = append(fns, fn)
	}
	s.mu.RUnlock()

	for _, fn := range fns {
		fn(e)
	}
}

func (s *IdentityService) SignUp(in user.SignUpInput) (user.Profile, error) {
	if err := validation.Struct(in); err != nil {
		return user.Profile{}, err
	}

	_, err := s.Repos.User.GetByEmail(in.Email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return user.Profile{}, err
	}
	if err == nil {
		return user.Profile{}, ErrEmailTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return user.Profile{}, ErrPasswordHashFailure
	}

	u := user.User{
		Email:    in.Email,
		Password: string(hashed),
		Name:     in.Name,
		Phone:    in.Phone,
		Role:     user.RoleCustomer,
	}
	if err := s.Repos.User.Create(&u); err != nil {
		return user.Profile{}, err
	}
	return u.Profile(), nil
}

// SignIn reports bad email and bad password the same way.
func (s *IdentityService) SignIn(in user.SignInInput) (Session, error) {
	u, err := s.Repos.User.GetByEmail(in.Email)
	if err != nil {
		metrics.RecordAuthAttempt(false)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Session{}, ErrInvalidCredentials
		}
		return Session{}, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(in.Password)); err != nil {
		metrics.RecordAuthAttempt(false)
		return Session{}, ErrInvalidCredentials
	}

	now := s.deps.Clock()
	if err := s.Repos.User.UpdateLastLogin(u.ID, now); err != nil {
		s.deps.Logger.Warn("update last login", logger.Uint("user_id", u.ID), logger.Error(err))
	} else {
		u.LastLogin = &now
	}

	token, claims, err := middleware.GenerateToken(u, s.deps.TokenTTL)
	if err != nil {
		return Session{}, err
	}
	metrics.RecordAuthAttempt(true)
	s.notify(SessionEvent{Kind: SessionSignedIn, UserID: u.ID, At: now})

	return Session{Token: token, ExpiresAt: claims.ExpiresAt.Time, User: u}, nil
}

// SignOut denylists the token id until the token would have expired anyway.
func (s *IdentityService) SignOut(ctx context.Context, claims *types.Claims) error {
	now := s.deps.Clock()
	if claims.ID != "" && claims.ExpiresAt != nil {
		if ttl := claims.ExpiresAt.Sub(now); ttl > 0 {
			if _, err := s.deps.Revoked.SetNX(ctx, middleware.RevocationKey(claims.ID), ttl); err != nil {
				return err
			}
		}
	}
	s.notify(SessionEvent{Kind: SessionSignedOut, UserID: claims.UserID, At: now})
	return nil
}

func (s *IdentityService) GetCurrentSession(claims *types.Claims) (user.SessionDTO, error) {
	u, err := s.getUser(claims.UserID)
	if err != nil {
		return user.SessionDTO{}, err
	}
	dto := user.SessionDTO{User: user.ToDTO(u), Profile: u.Profile()}
	if claims.ExpiresAt != nil {
		dto.ExpiresAt = claims.ExpiresAt.Time
	}
	return dto, nil
}

func (s *IdentityService) GetProfile(userID uint) (user.Profile, error) {
	u, err := s.getUser(userID)
	if err != nil {
		return user.Profile{}, err
	}
	return u.Profile(), nil
}

func (s *IdentityService) UpdateProfile(userID uint, in user.UpdateProfileInput) (user.Profile, error) {
	if err := validation.Struct(in); err != nil {
		return user.Profile{}, err
	}
	u, err := s.getUser(userID)
	if err != nil {
		return user.Profile{}, err
	}
	if in.Name != nil {
		u.Name = *in.Name
	}
	if in.Phone != nil {
		u.Phone = in.Phone
	}
	if err := s.Repos.User.Save(&u); err != nil {
		return user.Profile{}, err
	}
	return u.Profile(), nil
}

func (s *IdentityService) ListUsers(role string) ([]user.UserDTO, error) {
	var filter *user.Role
	if role != "" {
		r := user.Role(role)
		if !r.Valid() {
			return nil, ErrInvalidRole
		}
		filter = &r
	}
	users, err := s.Repos.User.List(filter)
	if err != nil {
		return nil, err
	}
	out := make([]user.UserDTO, 0, len(users))
	for _, u := range users {
		out = append(out, user.ToDTO(u))
	}
	return out, nil
}

// UpdateRole changes a user's role. A super admin cannot demote themself.
func (s *IdentityService) UpdateRole(actorID, targetID uint, role string) (user.UserDTO, error) {
	r := user.Role(role)
	if !r.Valid() {
		return user.UserDTO{}, ErrInvalidRole
	}
	if actorID == targetID && r != user.RoleSuperAdmin {
		return user.UserDTO{}, ErrCannotDemoteSelf
	}
	if err := s.Repos.User.UpdateRole(targetID, r); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return user.UserDTO{}, ErrUserNotFound
		}
		return user.UserDTO{}, err
	}
	u, err := s.getUser(targetID)
	if err != nil {
		return user.UserDTO{}, err
	}
	return user.ToDTO(u), nil
}

func (s *IdentityService) getUser(id uint) (user.User, error) {
	u, err := s.Repos.User.GetByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return user.User{}, ErrUserNotFound
	}
	return u, err
}
