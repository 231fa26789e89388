// Package services contains the business logic. Each operation is
// stateless: the only shared resources are the connection pool and the
// read-only signing key, both injected at construction.
package services

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"strings"

	"github.com/tunckiral/pocketledger/internal/apperrors"
	"github.com/tunckiral/pocketledger/internal/auth"
	"github.com/tunckiral/pocketledger/internal/dbx"
	"github.com/tunckiral/pocketledger/internal/dto"
	"github.com/tunckiral/pocketledger/internal/models"
	"github.com/tunckiral/pocketledger/internal/repositories/repomanager"
	"github.com/tunckiral/pocketledger/internal/repositories/users"
	"github.com/tunckiral/pocketledger/internal/validate"
)

type UserService struct {
	db     *sql.DB
	repos  repomanager.RepositoryManager
	hasher *auth.Hasher
	tokens *auth.TokenIssuer
}

func NewUserService(db *sql.DB, repos repomanager.RepositoryManager, hasher *auth.Hasher, tokens *auth.TokenIssuer) *UserService {
	return &UserService{db: db, repos: repos, hasher: hasher, tokens: tokens}
}

// Create validates the input, hashes the password, and inserts the user.
// Username availability is decided by the store's unique index, not a
// pre-check. The returned token is bound to the new user id.
func (s *UserService) Create(ctx context.Context, req *dto.CreateUserRequest) (*dto.CreateUserResponse, error) {
	if err := validate.Apply(
		validate.Username(req.Username),
		validate.Password(req.Password),
		validate.Email(req.Email),
	); err != nil {
		return nil, err
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, s.storeFailure(ctx, "hash password", err)
	}

	user := &models.User{Username: req.Username, Password: hash, Email: req.Email}
	userID, err := s.repos.Users(s.db).Create(ctx, user)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicateUsername) {
			return nil, apperrors.Conflict("Username is already taken")
		}
		return nil, s.storeFailure(ctx, "create user", err)
	}

	token, err := s.tokens.Issue(userID)
	if err != nil {
		return nil, s.storeFailure(ctx, "issue token", err)
	}

	return &dto.CreateUserResponse{UserID: userID, Token: token}, nil
}

// Login returns the same AuthError for an unknown username and a wrong
// password so callers cannot enumerate accounts.
func (s *UserService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	if err := validate.Apply(
		validate.Username(req.Username),
		validate.Password(req.Password),
	); err != nil {
		return nil, err
	}

	user, err := s.repos.Users(s.db).GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.Auth()
		}
		return nil, s.storeFailure(ctx, "find user", err)
	}

	if !s.hasher.Verify(req.Password, user.Password) {
		return nil, apperrors.Auth()
	}

	token, err := s.tokens.Issue(user.UserID)
	if err != nil {
		return nil, s.storeFailure(ctx, "issue token", err)
	}

	return &dto.LoginResponse{UserID: user.UserID, Username: user.Username, Token: token}, nil
}

// Update loads the current row, works out which of username/email/password
// actually changed, and applies them in one partial UPDATE. The response
// message names the updated fields.
func (s *UserService) Update(ctx context.Context, req *dto.UpdateUserRequest) (*dto.MessageResponse, error) {
	if err := validate.Apply(
		validate.UserID(req.UserID),
		validate.Username(req.Username),
		validate.Password(req.Password),
		validate.Email(req.Email),
	); err != nil {
		return nil, err
	}

	repo := s.repos.Users(s.db)
	user, err := repo.GetByID(ctx, req.UserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NotFound("Failed to find user")
		}
		return nil, s.storeFailure(ctx, "find user", err)
	}

	var (
		fields  users.UpdateFields
		changed []string
	)
	if req.Username != user.Username {
		fields.Username = &req.Username
		changed = append(changed, "Username")
	}
	if req.Email != user.Email {
		fields.Email = &req.Email
		changed = append(changed, "Email")
	}
	if !s.hasher.Verify(req.Password, user.Password) {
		hash, err := s.hasher.Hash(req.Password)
		if err != nil {
			return nil, s.storeFailure(ctx, "hash password", err)
		}
		fields.PasswordHash = &hash
		changed = append(changed, "Password")
	}

	if fields.IsEmpty() {
		return &dto.MessageResponse{Message: "No Fields Updated"}, nil
	}

	affected, err := repo.Update(ctx, req.UserID, fields)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicateUsername) {
			return nil, apperrors.Conflict("Username is already taken")
		}
		return nil, s.storeFailure(ctx, "update user", err)
	}
	if affected == 0 {
		return nil, apperrors.NotFound("Failed to find user")
	}

	return &dto.MessageResponse{Message: strings.Join(changed, " and ") + " Updated Successfully"}, nil
}

// Delete verifies the credential pair, then removes the user's records,
// account books, and user row in a single transaction so no orphaned data
// survives. Unknown username and wrong password fail identically.
func (s *UserService) Delete(ctx context.Context, req *dto.DeleteUserRequest) (*dto.MessageResponse, error) {
	if err := validate.Apply(
		validate.Username(req.Username),
		validate.Password(req.Password),
	); err != nil {
		return nil, err
	}

	user, err := s.repos.Users(s.db).GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NotFound("Failed to find user")
		}
		return nil, s.storeFailure(ctx, "find user", err)
	}
	if !s.hasher.Verify(req.Password, user.Password) {
		return nil, apperrors.NotFound("Failed to find user")
	}

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if _, err := s.repos.Records(tx).DeleteAllForUser(ctx, user.UserID); err != nil {
			return err
		}
		if _, err := s.repos.AccountBooks(tx).DeleteAllForUser(ctx, user.UserID); err != nil {
			return err
		}
		affected, err := s.repos.Users(tx).Delete(ctx, user.UserID)
		if err != nil {
			return err
		}
		if affected == 0 {
			return apperrors.ErrNotFound
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NotFound("Failed to find user")
		}
		return nil, s.storeFailure(ctx, "delete user", err)
	}

	return &dto.MessageResponse{Message: "User was deleted successfully"}, nil
}

// storeFailure logs the cause and hands the caller a detail-free 500.
func (s *UserService) storeFailure(ctx context.Context, action string, err error) error {
	slog.ErrorContext(ctx, "store operation failed", "action", action, "error", err)
	return apperrors.Store()
}
