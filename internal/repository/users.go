package repository

import (
	"errors"

	"github.com/google/uuid"
	"github.com/witoldp/petcare-backend/internal/apperrors"
	"github.com/witoldp/petcare-backend/internal/models"
	"gorm.io/gorm"
)

type Users struct {
	db *gorm.DB
}

func NewUsers(db *gorm.DB) Users { return Users{db: db} }

func (r Users) WithTx(tx *gorm.DB) Users { return Users{db: tx} }

func (r Users) GetByID(id uuid.UUID) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("user not found")
		}
		return nil, err
	}
	return &user, nil
}

func (r Users) GetByUsername(username string) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, "username = ?", username).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("user not found")
		}
		return nil, err
	}
	return &user, nil
}

func (r Users) UsernameTaken(username string) (bool, error) {
	var count int64
	err := r.db.Model(&models.User{}).Where("username = ?", username).Count(&count).Error
	return count > 0, err
}

func (r Users) EmailTaken(email string) (bool, error) {
	var count int64
	err := r.db.Model(&models.User{}).Where("email = ?", email).Count(&count).Error
	return count > 0, err
}

func (r Users) Create(user *models.User) error {
	if err := r.db.Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperrors.Duplicate("username or email already taken")
		}
		return err
	}
	return nil
}

func (r Users) Save(user *models.User) error {
	if err := r.db.Save(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperrors.Duplicate("username or email already taken")
		}
		return err
	}
	return nil
}

func (r Users) Delete(user *models.User) error {
	if err := r.db.Delete(user).Error; err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return apperrors.FkInUse("user is still referenced by pets or a vet profile")
		}
		return err
	}
	return nil
}

func (r Users) List(page Page) ([]models.User, int64, error) {
	page = page.Normalized()
	var total int64
	if err := r.db.Model(&models.User{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var users []models.User
	err := r.db.Order("username ASC").
		Offset(page.Offset()).Limit(page.Size).
		Find(&users).Error
	return users, total, err
}
