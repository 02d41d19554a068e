package repository

import (
	"context"

	"github.com/SLondon725/retoBoleteriaManejoSenaSoft/internal/models"
	"gorm.io/gorm"
)

type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	FindByID(ctx context.Context, id string) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindAll(ctx context.Context) ([]models.User, error)
	FindByRole(ctx context.Context, roleID uint) ([]models.User, error)
	SearchByName(ctx context.Context, name string) ([]models.User, error)
	Update(ctx context.Context, user *models.User) error
	UpdatePassword(ctx context.Context, id, password string) error
	Delete(ctx context.Context, id string) error
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepository) FindByID(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).
		Preload("Role").
		Where("num_identificacion = ?", id).
		First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).
		Preload("Role").
		Where("correo = ?", email).
		First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindAll(ctx context.Context) ([]models.User, error) {
	var users []models.User
	err := r.db.WithContext(ctx).
		Preload("Role").
		Order("nombres ASC").
		Find(&users).Error
	return users, err
}

func (r *userRepository) FindByRole(ctx context.Context, roleID uint) ([]models.User, error) {
	var users []models.User
	err := r.db.WithContext(ctx).
		Preload("Role").
		Where("id_rol = ?", roleID).
		Order("nombres ASC").
		Find(&users).Error
	return users, err
}

func (r *userRepository) SearchByName(ctx context.Context, name string) ([]models.User, error) {
	var users []models.User
	pattern := "%" + name + "%"
	err := r.db.WithContext(ctx).
		Preload("Role").
		Where("nombres ILIKE ? OR apellidos ILIKE ?", pattern, pattern).
		Order("nombres ASC").
		Find(&users).Error
	return users, err
}

func (r *userRepository) Update(ctx context.Context, user *models.User) error {
	return r.db.WithContext(ctx).Save(user).Error
}

func (r *userRepository) UpdatePassword(ctx context.Context, id, password string) error {
	return r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("num_identificacion = ?", id).
		Update("pass", password).Error
}

func (r *userRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("num_identificacion = ?", id).
		Delete(&models.User{}).Error
}
