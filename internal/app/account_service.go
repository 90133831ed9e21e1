package app

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"sync"

	"github.com/stack4devs/stack4devs/internal/domain"
	"github.com/stack4devs/stack4devs/internal/platform/logging"
	"github.com/stack4devs/stack4devs/internal/ports"
)

// Messages shown to the user verbatim.
const (
	MsgUsernameTaken      = "Username already exists"
	MsgInvalidCredentials = "Invalid username or password"
	MsgSignInRequired     = "Sign in required"
)

// AccountService manages local accounts and the signed-in user slot.
type AccountService struct {
	store  ports.Store
	logger *slog.Logger
	mu     sync.Mutex
}

// NewAccountService creates an AccountService.
func NewAccountService(store ports.Store, logger *slog.Logger) *AccountService {
	return &AccountService{store: store, logger: loggerOrDefault(logger, "app.AccountService")}
}

// Credentials is a username and plain-text password.
type Credentials struct {
	Username string
	Password string
}

func (c Credentials) validate() error {
	if strings.TrimSpace(c.Username) == "" {
		return domain.NewValidationError("username", "is required")
	}

	if c.Password == "" {
		return domain.NewValidationError("password", "is required")
	}

	return nil
}

// HashPassword returns the lower-case hex SHA-256 of password.
func HashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))

	return hex.EncodeToString(sum[:])
}

// Register creates the account and signs it in. If signing in fails the
// new account is withdrawn, so the store never holds an account that was
// reported as not created.
func (s *AccountService) Register(ctx context.Context, creds Credentials) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return Execute(ctx, Operation[Credentials, []domain.User, string]{
		Name: "register",
		Validate: func(_ context.Context, in Credentials) error {
			return in.validate()
		},
		Perform: func(ctx context.Context, in Credentials) ([]domain.User, error) {
			users, err := load(ctx, s.store, keyUsers, []domain.User{})
			if err != nil {
				return nil, err
			}

			if slices.ContainsFunc(users, func(u domain.User) bool { return u.Username == in.Username }) {
				return nil, domain.NewConflictErrorWithDetails("user", MsgUsernameTaken, in.Username)
			}

			return append(users, domain.User{Username: in.Username, PasswordHash: HashPassword(in.Password)}), nil
		},
		Archive: func(ctx context.Context, in Credentials, users []domain.User) error {
			if err := s.store.Set(ctx, keyUsers, users); err != nil {
				return fmt.Errorf("saving users: %w", err)
			}

			if err := s.store.Set(ctx, keyCurrentUser, in.Username); err != nil {
				if rbErr := s.store.Set(ctx, keyUsers, users[:len(users)-1]); rbErr != nil {
					s.logger.ErrorContext(ctx, "withdrawing account failed",
						slog.String("username", in.Username), slog.Any("error", rbErr))
				}

				return fmt.Errorf("saving current user: %w", err)
			}

			return nil
		},
		Respond: func(ctx context.Context, in Credentials, _ []domain.User) (string, error) {
			logging.FromContext(ctx).InfoContext(ctx, "account registered", slog.String("username", in.Username))
			return in.Username, nil
		},
	}, creds)
}

// Login checks the credentials and signs the user in.
func (s *AccountService) Login(ctx context.Context, creds Credentials) (string, error) {
	if err := creds.validate(); err != nil {
		return "", err
	}

	users, err := load(ctx, s.store, keyUsers, []domain.User{})
	if err != nil {
		return "", err
	}

	hash := HashPassword(creds.Password)

	if !slices.ContainsFunc(users, func(u domain.User) bool {
		return u.Username == creds.Username && u.PasswordHash == hash
	}) {
		s.logger.WarnContext(ctx, "login rejected", slog.String("username", creds.Username))
		return "", domain.NewUnauthorizedError(MsgInvalidCredentials)
	}

	if err := s.store.Set(ctx, keyCurrentUser, creds.Username); err != nil {
		return "", fmt.Errorf("saving current user: %w", err)
	}

	return creds.Username, nil
}

// Logout clears the signed-in user.
func (s *AccountService) Logout(ctx context.Context) error {
	if err := s.store.Remove(ctx, keyCurrentUser); err != nil {
		return fmt.Errorf("clearing current user: %w", err)
	}

	return nil
}

// CurrentUser returns the signed-in username, or "" when nobody is.
func (s *AccountService) CurrentUser(ctx context.Context) (string, error) {
	return load(ctx, s.store, keyCurrentUser, "")
}

// RequireUser is CurrentUser that fails with domain.ErrUnauthorized when
// nobody is signed in.
func (s *AccountService) RequireUser(ctx context.Context) (string, error) {
	user, err := s.CurrentUser(ctx)
	if err != nil {
		return "", err
	}

	if user == "" {
		return "", domain.NewUnauthorizedError(MsgSignInRequired)
	}

	return user, nil
}
