package service

import (
	"context"
	"fmt"

	"github.com/Badsnus/qrage/internal/domain/common/errorz"
	"github.com/Badsnus/qrage/internal/domain/entity"
	"github.com/Badsnus/qrage/internal/domain/utils/validator"

	tele "gopkg.in/telebot.v3"
)

type UserStorage interface {
	Get(ctx context.Context, id int64) (*entity.User, error)
	Upsert(ctx context.Context, user *entity.User) (*entity.User, error)
	Update(ctx context.Context, user *entity.User) (*entity.User, error)
	Count(ctx context.Context) (int64, error)
}

type UserService struct {
	userStorage UserStorage
}

func NewUserService(userStorage UserStorage) *UserService {
	return &UserService{
		userStorage: userStorage,
	}
}

// Track creates the user on first contact and refreshes its profile.
func (s *UserService) Track(ctx context.Context, sender *tele.User) (*entity.User, error) {
	return s.userStorage.Upsert(ctx, &entity.User{
		ID:        sender.ID,
		Username:  sender.Username,
		FirstName: sender.FirstName,
	})
}

func (s *UserService) Get(ctx context.Context, userID int64) (*entity.User, error) {
	return s.userStorage.Get(ctx, userID)
}

// SetEmail remembers the default address for e-mailed exports.
func (s *UserService) SetEmail(ctx context.Context, userID int64, email string) (*entity.User, error) {
	if !validator.Email(email, nil) {
		return nil, fmt.Errorf("%w: invalid email %q", errorz.ErrInvalidInput, email)
	}
	user, err := s.userStorage.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	user.Email = email
	return s.userStorage.Update(ctx, user)
}

func (s *UserService) Count(ctx context.Context) (int64, error) {
	return s.userStorage.Count(ctx)
}
