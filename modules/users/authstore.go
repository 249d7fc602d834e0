package users

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/hirehub/jobboard/modules/audit"
	"github.com/hirehub/jobboard/modules/auth"
)

// AuthStore adapts the user repository to the auth module's account
// contract so the token lifecycle never touches the full user document.
type AuthStore struct {
	repo *Repository
}

// NewAuthStore wraps the repository for the auth service.
func NewAuthStore(repo *Repository) *AuthStore {
	return &AuthStore{repo: repo}
}

func (s *AuthStore) FindByEmail(ctx context.Context, email string) (auth.Account, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return auth.Account{}, mapStoreError(err)
	}
	return toAccount(user), nil
}

func (s *AuthStore) FindByRefreshToken(ctx context.Context, token string) (auth.Account, error) {
	user, err := s.repo.FindByRefreshToken(ctx, token)
	if err != nil {
		return auth.Account{}, mapStoreError(err)
	}
	return toAccount(user), nil
}

func (s *AuthStore) SetRefreshToken(ctx context.Context, id bson.ObjectID, token string) error {
	return s.repo.SetRefreshToken(ctx, id, token)
}

// Create inserts a self-registered account. There is no acting user yet,
// so the audit trail starts without a creator stamp.
func (s *AuthStore) Create(ctx context.Context, acc auth.NewAccount) (bson.ObjectID, time.Time, error) {
	now := time.Now()
	user, err := s.repo.Insert(ctx, User{
		Name:     acc.Name,
		Email:    acc.Email,
		Password: acc.PasswordHash,
		Age:      acc.Age,
		Gender:   acc.Gender,
		Address:  acc.Address,
		Role:     acc.Role,
		Fields:   audit.Fields{CreatedAt: now, UpdatedAt: now},
	})
	if err != nil {
		if errors.Is(err, ErrEmailTaken) {
			return bson.ObjectID{}, time.Time{}, auth.ErrEmailTaken
		}
		return bson.ObjectID{}, time.Time{}, err
	}
	return user.ID, user.CreatedAt, nil
}

func toAccount(user User) auth.Account {
	return auth.Account{
		ID:           user.ID,
		Email:        user.Email,
		Name:         user.Name,
		Role:         user.Role,
		PasswordHash: user.Password,
		RefreshToken: user.RefreshToken,
	}
}

func mapStoreError(err error) error {
	if errors.Is(err, ErrNotFound) {
		return auth.ErrAccountNotFound
	}
	return err
}
