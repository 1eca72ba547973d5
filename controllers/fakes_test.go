package controllers_test

import (
	"context"
	"fmt"
	"sync"

	"gorm.io/gorm"

	"hotel-backoffice/models"
)

type fakeRoomStore struct {
	mu     sync.Mutex
	rooms  map[uint]*models.Room
	nextID uint
}

func newFakeRoomStore() *fakeRoomStore {
	return &fakeRoomStore{rooms: map[uint]*models.Room{}, nextID: 100}
}

func (f *fakeRoomStore) FindByID(_ context.Context, id uint) (*models.Room, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	room, ok := f.rooms[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return room, nil
}

func (f *fakeRoomStore) Create(_ context.Context, room *models.Room) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	room.ID = f.nextID
	f.rooms[room.ID] = room
	return nil
}

func (f *fakeRoomStore) Save(_ context.Context, room *models.Room) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rooms[room.ID] = room
	return nil
}

type fakeCategoryStore struct {
	mu         sync.Mutex
	categories map[uint]*models.Category
	nextID     uint
}

func newFakeCategoryStore() *fakeCategoryStore {
	return &fakeCategoryStore{categories: map[uint]*models.Category{}}
}

func (f *fakeCategoryStore) FindByID(_ context.Context, id uint) (*models.Category, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	category, ok := f.categories[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return category, nil
}

func (f *fakeCategoryStore) FindAll(_ context.Context) ([]models.Category, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]models.Category, 0, len(f.categories))
	for _, category := range f.categories {
		out = append(out, *category)
	}
	return out, nil
}

func (f *fakeCategoryStore) Create(_ context.Context, category *models.Category) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	category.ID = f.nextID
	f.categories[category.ID] = category
	return nil
}

func (f *fakeCategoryStore) Save(_ context.Context, category *models.Category) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.categories[category.ID] = category
	return nil
}

type fakeUserStore struct {
	mu     sync.Mutex
	users  map[uint]*models.User
	nextID uint
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: map[uint]*models.User{}}
}

func (f *fakeUserStore) FindByID(_ context.Context, id uint) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	user, ok := f.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return user, nil
}

func (f *fakeUserStore) FindByEmail(_ context.Context, email string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, user := range f.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserStore) FindAll(_ context.Context) ([]models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]models.User, 0, len(f.users))
	for _, user := range f.users {
		out = append(out, *user)
	}
	return out, nil
}

func (f *fakeUserStore) Create(_ context.Context, user *models.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	user.ID = f.nextID
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserStore) Save(_ context.Context, user *models.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.users[user.ID] = user
	return nil
}

// fakeMediaStore hands out deterministic ids and records deletions.
type fakeMediaStore struct {
	mu      sync.Mutex
	uploads int
	deleted []string
}

func (f *fakeMediaStore) Upload(_ context.Context, _ string) (string, string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.uploads++
	id := fmt.Sprintf("img-%d", f.uploads)
	return "http://media.local/room-images/" + id + ".jpg", id, nil
}

func (f *fakeMediaStore) Delete(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleted = append(f.deleted, id)
	return nil
}
