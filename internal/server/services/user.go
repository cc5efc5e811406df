package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/dmitrijs2005/storekeeper/internal/common"
	"github.com/dmitrijs2005/storekeeper/internal/cryptox"
	"github.com/dmitrijs2005/storekeeper/internal/dbx"
	"github.com/dmitrijs2005/storekeeper/internal/logging"
	"github.com/dmitrijs2005/storekeeper/internal/server/auth"
	"github.com/dmitrijs2005/storekeeper/internal/server/models"
	"github.com/dmitrijs2005/storekeeper/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/storekeeper/internal/timex"
)

// TokenPair is what Login and Refresh hand back. The refresh token is valid
// only together with RefreshTokenExpiry, which the client presents back
// unchanged.
type TokenPair struct {
	AccessToken        string    `json:"access_token"`
	RefreshToken       string    `json:"refresh_token"`
	RefreshTokenExpiry time.Time `json:"refresh_token_expiry"`
}

type RegisterInput struct {
	UserName string `validate:"required,min=3,max=64"`
	Password string `validate:"required,min=8,max=128"`
}

var knownRoles = []string{common.RoleAdmin, common.RoleCustomer}

// UserService registers accounts, checks credentials and rotates refresh
// tokens. Each user has exactly one live refresh token, stored on the user
// row; a new Login overwrites it.
type UserService struct {
	db            *sql.DB
	repomanager   repomanager.RepositoryManager
	issuer        *auth.Issuer
	refreshWindow time.Duration
	clock         timex.Clock
	logger        logging.Logger
}

func NewUserService(db *sql.DB, m repomanager.RepositoryManager, issuer *auth.Issuer,
	refreshWindow time.Duration, clock timex.Clock, logger logging.Logger) *UserService {
	return &UserService{
		db:            db,
		repomanager:   m,
		issuer:        issuer,
		refreshWindow: refreshWindow,
		clock:         clock,
		logger:        logger.With("module", "users"),
	}
}

// Register creates a user with the given roles, Customer when none are given.
func (s *UserService) Register(ctx context.Context, userName, password string, roles []string) (*models.User, error) {
	if err := validateStruct(RegisterInput{UserName: userName, Password: password}); err != nil {
		return nil, err
	}
	if len(roles) == 0 {
		roles = []string{common.RoleCustomer}
	}
	for _, r := range roles {
		if !slices.Contains(knownRoles, r) {
			return nil, fmt.Errorf("%w: unknown role %q", common.ErrorValidation, r)
		}
	}

	hash, err := cryptox.HashPassword(password)
	if err != nil {
		return nil, common.ErrorInternal
	}

	var user *models.User
	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Users(tx)
		u, err := repo.Create(ctx, &models.User{UserName: userName, PasswordHash: hash})
		if err != nil {
			return err
		}
		for _, r := range roles {
			if err := repo.AddRole(ctx, u.ID, r); err != nil {
				return err
			}
		}
		u.Roles = roles
		user = u
		return nil
	})
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil, common.ErrorAlreadyExists
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	s.logger.Info(ctx, "user registered", "user", userName)
	return user, nil
}

// dummyHash is verified against when the user does not exist so that an
// unknown name costs the same as a wrong password.
var dummyHash = sync.OnceValue(func() string {
	h, _ := cryptox.HashPassword("not-a-real-password")
	return h
})

// Login checks the credentials and, on success, replaces the user's refresh
// token with a new one valid for the refresh window. Unknown users and
// wrong passwords both yield common.ErrorUnauthorized.
func (s *UserService) Login(ctx context.Context, userName, password string) (*TokenPair, error) {
	repo := s.repomanager.Users(s.db)

	user, err := repo.GetUserByLogin(ctx, userName)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			_ = cryptox.VerifyPassword(password, dummyHash())
			return nil, common.ErrorUnauthorized
		}
		s.logger.Error(ctx, "user lookup failed", "error", err)
		return nil, common.ErrorInternal
	}

	if err := cryptox.VerifyPassword(password, user.PasswordHash); err != nil {
		if !errors.Is(err, cryptox.ErrMismatchedPassword) {
			s.logger.Error(ctx, "stored password hash is unusable", "user", userName, "error", err)
		}
		return nil, common.ErrorUnauthorized
	}

	now := s.clock.Now()
	access, err := s.accessToken(ctx, user, now)
	if err != nil {
		return nil, err
	}

	refresh, err := cryptox.GenerateToken(cryptox.RefreshTokenSize)
	if err != nil {
		return nil, common.ErrorInternal
	}
	// Postgres keeps microseconds; the pair must compare equal when presented back.
	expiry := now.Add(s.refreshWindow).UTC().Truncate(time.Microsecond)

	if err := repo.UpdateRefreshToken(ctx, user.ID, refresh, expiry); err != nil {
		s.logger.Error(ctx, "storing refresh token failed", "error", err)
		return nil, common.ErrorInternal
	}

	return &TokenPair{AccessToken: access, RefreshToken: refresh, RefreshTokenExpiry: expiry}, nil
}

// Refresh issues a new access token for the user whose stored refresh token
// and expiry both equal the presented ones. The refresh token itself is
// returned unchanged. The stored expiry is compared, not checked against
// the clock: a matching pair is accepted even after its expiry.
func (s *UserService) Refresh(ctx context.Context, token string, expiry time.Time) (*TokenPair, error) {
	if token == "" {
		return nil, common.ErrorUnauthorized
	}
	expiry = expiry.UTC().Truncate(time.Microsecond)

	user, err := s.repomanager.Users(s.db).FindByRefreshToken(ctx, token, expiry)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorUnauthorized
		}
		s.logger.Error(ctx, "refresh token lookup failed", "error", err)
		return nil, common.ErrorInternal
	}

	access, err := s.accessToken(ctx, user, s.clock.Now())
	if err != nil {
		return nil, err
	}
	return &TokenPair{AccessToken: access, RefreshToken: token, RefreshTokenExpiry: expiry}, nil
}

// AssignRole grants role to an existing user.
func (s *UserService) AssignRole(ctx context.Context, userName, role string) error {
	if !slices.Contains(knownRoles, role) {
		return fmt.Errorf("%w: unknown role %q", common.ErrorValidation, role)
	}
	repo := s.repomanager.Users(s.db)
	user, err := repo.GetUserByLogin(ctx, userName)
	if err != nil {
		return err
	}
	return repo.AddRole(ctx, user.ID, role)
}

func (s *UserService) accessToken(ctx context.Context, user *models.User, now time.Time) (string, error) {
	roles, err := s.repomanager.Users(s.db).GetRoles(ctx, user.ID)
	if err != nil {
		s.logger.Error(ctx, "role lookup failed", "error", err)
		return "", common.ErrorInternal
	}
	token, err := s.issuer.IssueAccessToken(user, roles, now)
	if err != nil {
		s.logger.Error(ctx, "signing access token failed", "error", err)
		return "", common.ErrorInternal
	}
	return token, nil
}
