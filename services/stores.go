package services

import (
	"context"

	"gorm.io/gorm"

	"hotel-backoffice/models"
)

type RoomStore interface {
	FindByID(ctx context.Context, id uint) (*models.Room, error)
	Create(ctx context.Context, room *models.Room) error
	Save(ctx context.Context, room *models.Room) error
}

type CategoryStore interface {
	FindByID(ctx context.Context, id uint) (*models.Category, error)
	FindAll(ctx context.Context) ([]models.Category, error)
	Create(ctx context.Context, category *models.Category) error
	Save(ctx context.Context, category *models.Category) error
}

type UserStore interface {
	FindByID(ctx context.Context, id uint) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindAll(ctx context.Context) ([]models.User, error)
	Create(ctx context.Context, user *models.User) error
	Save(ctx context.Context, user *models.User) error
}

type GormRoomStore struct {
	DB *gorm.DB
}

func NewRoomStore(db *gorm.DB) *GormRoomStore {
	return &GormRoomStore{DB: db}
}

func (s *GormRoomStore) FindByID(ctx context.Context, id uint) (*models.Room, error) {
	var room models.Room
	if err := s.DB.WithContext(ctx).First(&room, id).Error; err != nil {
		return nil, err
	}
	return &room, nil
}

func (s *GormRoomStore) Create(ctx context.Context, room *models.Room) error {
	return s.DB.WithContext(ctx).Create(room).Error
}

func (s *GormRoomStore) Save(ctx context.Context, room *models.Room) error {
	return s.DB.WithContext(ctx).Save(room).Error
}

type GormCategoryStore struct {
	DB *gorm.DB
}

func NewCategoryStore(db *gorm.DB) *GormCategoryStore {
	return &GormCategoryStore{DB: db}
}

func (s *GormCategoryStore) FindByID(ctx context.Context, id uint) (*models.Category, error) {
	var category models.Category
	if err := s.DB.WithContext(ctx).First(&category, id).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (s *GormCategoryStore) FindAll(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	err := s.DB.WithContext(ctx).
		Preload("Rooms").
		Order("categories.id").
		Find(&categories).Error
	return categories, err
}

func (s *GormCategoryStore) Create(ctx context.Context, category *models.Category) error {
	return s.DB.WithContext(ctx).Create(category).Error
}

func (s *GormCategoryStore) Save(ctx context.Context, category *models.Category) error {
	return s.DB.WithContext(ctx).Save(category).Error
}

type GormUserStore struct {
	DB *gorm.DB
}

func NewUserStore(db *gorm.DB) *GormUserStore {
	return &GormUserStore{DB: db}
}

func (s *GormUserStore) FindByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	if err := s.DB.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *GormUserStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := s.DB.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *GormUserStore) FindAll(ctx context.Context) ([]models.User, error) {
	var users []models.User
	err := s.DB.WithContext(ctx).Order("users.id").Find(&users).Error
	return users, err
}

func (s *GormUserStore) Create(ctx context.Context, user *models.User) error {
	return s.DB.WithContext(ctx).Create(user).Error
}

func (s *GormUserStore) Save(ctx context.Context, user *models.User) error {
	return s.DB.WithContext(ctx).Save(user).Error
}
