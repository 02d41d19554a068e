package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/SLondon725/retoBoleteriaManejoSenaSoft/internal/models"
	"github.com/SLondon725/retoBoleteriaManejoSenaSoft/internal/repository"
)

type UserService interface {
	Register(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id string) (*models.User, error)
	List(ctx context.Context) ([]models.User, error)
	ListByRole(ctx context.Context, roleID uint) ([]models.User, error)
	SearchByName(ctx context.Context, name string) ([]models.User, error)
	Update(ctx context.Context, user *models.User) error
	ChangePassword(ctx context.Context, id, password string) error
	Delete(ctx context.Context, id string) error
}

type userService struct {
	users     repository.UserRepository
	purchases repository.PurchaseRepository
	catalog   repository.CatalogRepository
}

func NewUserService(
	users repository.UserRepository,
	purchases repository.PurchaseRepository,
	catalog repository.CatalogRepository,
) UserService {
	return &userService{users: users, purchases: purchases, catalog: catalog}
}

func (s *userService) Register(ctx context.Context, user *models.User) error {
	ok, err := s.catalog.RoleExists(ctx, user.RoleID)
	if err != nil {
		return fmt.Errorf("check role: %w", err)
	}
	if !ok {
		return ErrRoleNotFound
	}

	if _, err := s.users.FindByID(ctx, user.ID); err == nil {
		return ErrUserIDTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("check user id: %w", err)
	}

	if _, err := s.users.FindByEmail(ctx, user.Email); err == nil {
		return ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("check email: %w", err)
	}

	return s.users.Create(ctx, user)
}

func (s *userService) GetByID(ctx context.Context, id string) (*models.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *userService) List(ctx context.Context) ([]models.User, error) {
	return s.users.FindAll(ctx)
}

func (s *userService) ListByRole(ctx context.Context, roleID uint) ([]models.User, error) {
	return s.users.FindByRole(ctx, roleID)
}

func (s *userService) SearchByName(ctx context.Context, name string) ([]models.User, error) {
	return s.users.SearchByName(ctx, name)
}

// Update changes profile fields. The identification number is the key and
// never changes; the password has its own path.
func (s *userService) Update(ctx context.Context, user *models.User) error {
	current, err := s.GetByID(ctx, user.ID)
	if err != nil {
		return err
	}

	ok, err := s.catalog.RoleExists(ctx, user.RoleID)
	if err != nil {
		return fmt.Errorf("check role: %w", err)
	}
	if !ok {
		return ErrRoleNotFound
	}

	if user.Email != current.Email {
		if _, err := s.users.FindByEmail(ctx, user.Email); err == nil {
			return ErrEmailTaken
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("check email: %w", err)
		}
	}

	user.Password = current.Password
	return s.users.Update(ctx, user)
}

func (s *userService) ChangePassword(ctx context.Context, id, password string) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}
	return s.users.UpdatePassword(ctx, id, password)
}

func (s *userService) Delete(ctx context.Context, id string) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}

	count, err := s.purchases.CountByUser(ctx, id)
	if err != nil {
		return fmt.Errorf("count purchases: %w", err)
	}
	if count > 0 {
		return ErrUserHasPurchases
	}

	return s.users.Delete(ctx, id)
}
