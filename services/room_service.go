package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"gorm.io/gorm"

	"hotel-backoffice/models"
)

var (
	ErrCategoryNotFound = errors.New("category not found")
	ErrRoomNotFound     = errors.New("room not found")
	ErrImageNotFound    = errors.New("image not found in room")
)

type CreateRoomInput struct {
	RoomName    string
	RoomNumber  string
	Description string
	Price       float64
}

// RoomService orchestrates the room-image lifecycle: uploads to the media
// store, local temp-file cleanup, and the room/category writes that keep the
// category's back-reference list in step with room creation.
type RoomService struct {
	Rooms      RoomStore
	Categories CategoryStore
	Media      MediaStore
}

func NewRoomService(rooms RoomStore, categories CategoryStore, media MediaStore) *RoomService {
	return &RoomService{Rooms: rooms, Categories: categories, Media: media}
}

// CreateRoom uploads tempFiles one after the other (input order is the
// persisted image order), persists the room, then appends the new room id to
// the parent category. A failed upload aborts the whole operation and
// best-effort deletes the remote objects uploaded earlier in this call.
func (s *RoomService) CreateRoom(ctx context.Context, categoryID uint, in CreateRoomInput, tempFiles []string) (*models.Room, error) {
	category, err := s.Categories.FindByID(ctx, categoryID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}

	images := make([]models.Image, 0, len(tempFiles))
	for _, path := range tempFiles {
		url, id, err := s.Media.Upload(ctx, path)
		if err != nil {
			s.compensateUploads(ctx, images)
			return nil, fmt.Errorf("upload %s: %w", filepath.Base(path), err)
		}
		if rmErr := os.Remove(path); rmErr != nil {
			log.Printf("⚠️ could not remove temp file %s: %v", path, rmErr)
		}
		images = append(images, models.Image{ImageURL: url, ImageID: id})
	}

	room := &models.Room{
		CategoryID:  category.ID,
		RoomName:    in.RoomName,
		RoomNumber:  in.RoomNumber,
		Description: in.Description,
		Price:       in.Price,
		Images:      images,
	}
	if err := s.Rooms.Create(ctx, room); err != nil {
		s.compensateUploads(ctx, images)
		return nil, err
	}

	// Room row first, back-reference second. A failure here leaves a room
	// without a category back-reference; the caller sees the error.
	category.RoomIDs = append(category.RoomIDs, room.ID)
	if err := s.Categories.Save(ctx, category); err != nil {
		return nil, err
	}

	return room, nil
}

// DeleteImage removes one image from a room. The remote delete runs before
// anything local changes, so a media-store failure leaves the room untouched.
func (s *RoomService) DeleteImage(ctx context.Context, roomID uint, imageID string) (*models.Room, error) {
	room, err := s.Rooms.FindByID(ctx, roomID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}

	idx := room.ImageIndex(imageID)
	if idx < 0 {
		return nil, ErrImageNotFound
	}

	if err := s.Media.Delete(ctx, imageID); err != nil {
		return nil, fmt.Errorf("media delete %s: %w", imageID, err)
	}

	room.Images = append(room.Images[:idx], room.Images[idx+1:]...)
	if err := s.Rooms.Save(ctx, room); err != nil {
		return nil, err
	}
	return room, nil
}

// ReplaceImage swaps one image for a freshly uploaded file, keeping its
// position in the list. The new object is uploaded before the old one is
// evicted, so the slot is never left pointing at nothing.
func (s *RoomService) ReplaceImage(ctx context.Context, roomID uint, imageID string, tempFile string) (*models.Room, error) {
	room, err := s.Rooms.FindByID(ctx, roomID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}

	idx := room.ImageIndex(imageID)
	if idx < 0 {
		return nil, ErrImageNotFound
	}

	url, newID, err := s.Media.Upload(ctx, tempFile)
	if err != nil {
		return nil, fmt.Errorf("upload %s: %w", filepath.Base(tempFile), err)
	}
	if rmErr := os.Remove(tempFile); rmErr != nil {
		log.Printf("⚠️ could not remove temp file %s: %v", tempFile, rmErr)
	}

	if err := s.Media.Delete(ctx, imageID); err != nil {
		return nil, fmt.Errorf("media delete %s: %w", imageID, err)
	}

	room.Images[idx] = models.Image{ImageURL: url, ImageID: newID}
	if err := s.Rooms.Save(ctx, room); err != nil {
		return nil, err
	}
	return room, nil
}

// compensateUploads best-effort deletes remote objects uploaded earlier in a
// failed create. Failures are logged only; the original error still wins.
func (s *RoomService) compensateUploads(ctx context.Context, images []models.Image) {
	for _, img := range images {
		if err := s.Media.Delete(ctx, img.ImageID); err != nil {
			log.Printf("⚠️ compensation failed for uploaded image %s: %v", img.ImageID, err)
		}
	}
}
