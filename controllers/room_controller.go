package controllers

import (
	"errors"
	"log"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"hotel-backoffice/services"
	"hotel-backoffice/utils"
)

const maxRoomImages = 10

type RoomController struct {
	Service *services.RoomService
	// TmpDir is where multipart uploads are spooled before they go to the
	// media store.
	TmpDir string
}

func NewRoomController(service *services.RoomService, tmpDir string) *RoomController {
	return &RoomController{Service: service, TmpDir: tmpDir}
}

func parseID(raw string) (uint, bool) {
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}

func (rc *RoomController) saveTempFile(c *gin.Context, file *multipart.FileHeader) (string, error) {
	dst := filepath.Join(rc.TmpDir, uuid.New().String()+strings.ToLower(filepath.Ext(file.Filename)))
	if err := c.SaveUploadedFile(file, dst); err != nil {
		return "", err
	}
	return dst, nil
}

// ----------------------------------------------------
// 1. Create Room (POST /room/:categoryId)
// ----------------------------------------------------

func (rc *RoomController) CreateRoom(c *gin.Context) {
	categoryID, ok := parseID(c.Param("categoryId"))
	if !ok {
		utils.JSONError(c, http.StatusNotFound, "Category not found")
		return
	}

	price, err := strconv.ParseFloat(c.PostForm("price"), 64)
	if err != nil || price < 0 {
		utils.JSONError(c, http.StatusBadRequest, "Invalid price")
		return
	}

	input := services.CreateRoomInput{
		RoomName:    strings.TrimSpace(c.PostForm("roomName")),
		RoomNumber:  strings.TrimSpace(c.PostForm("roomNumber")),
		Description: c.PostForm("description"),
		Price:       price,
	}

	var files []*multipart.FileHeader
	if form, err := c.MultipartForm(); err == nil {
		files = form.File["images"]
	}
	if len(files) > maxRoomImages {
		utils.JSONError(c, http.StatusBadRequest, "A maximum of 10 images is allowed")
		return
	}

	tempFiles := make([]string, 0, len(files))
	for _, file := range files {
		path, err := rc.saveTempFile(c, file)
		if err != nil {
			log.Printf("❌ saving upload %s: %v", file.Filename, err)
			utils.JSONError(c, http.StatusInternalServerError, "Internal Server Error")
			return
		}
		tempFiles = append(tempFiles, path)
	}

	room, err := rc.Service.CreateRoom(c.Request.Context(), categoryID, input, tempFiles)
	if err != nil {
		if errors.Is(err, services.ErrCategoryNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Category not found")
			return
		}
		log.Printf("❌ create room: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	utils.JSONMessage(c, http.StatusOK, "room added successfully", room)
}

// ----------------------------------------------------
// 2. Delete Room Image (DELETE /room/:roomId/:imageId)
// ----------------------------------------------------

func (rc *RoomController) DeleteRoomImage(c *gin.Context) {
	roomID, ok := parseID(c.Param("roomId"))
	if !ok {
		utils.JSONError(c, http.StatusNotFound, "Room Not Found")
		return
	}
	imageID := c.Param("imageId")

	room, err := rc.Service.DeleteImage(c.Request.Context(), roomID, imageID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrRoomNotFound):
			utils.JSONError(c, http.StatusNotFound, "Room Not Found")
		case errors.Is(err, services.ErrImageNotFound):
			utils.JSONError(c, http.StatusNotFound, "Image Not Found in this Room")
		default:
			log.Printf("❌ delete room image: %v", err)
			utils.JSONError(c, http.StatusInternalServerError, "Internal Server Error")
		}
		return
	}

	utils.JSONMessage(c, http.StatusOK, "Room image deleted successfully", room)
}

// ----------------------------------------------------
// 3. Update Room Image (PATCH /roomthesecond/:roomId/:imageId)
// ----------------------------------------------------

func (rc *RoomController) UpdateRoomImage(c *gin.Context) {
	roomID, ok := parseID(c.Param("roomId"))
	if !ok {
		utils.JSONError(c, http.StatusNotFound, "Room not found")
		return
	}
	imageID := c.Param("imageId")

	file, err := c.FormFile("image")
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "No image uploaded")
		return
	}

	tempFile, err := rc.saveTempFile(c, file)
	if err != nil {
		log.Printf("❌ saving upload %s: %v", file.Filename, err)
		utils.JSONError(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	room, err := rc.Service.ReplaceImage(c.Request.Context(), roomID, imageID, tempFile)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrRoomNotFound):
			utils.JSONError(c, http.StatusNotFound, "Room not found")
		case errors.Is(err, services.ErrImageNotFound):
			utils.JSONError(c, http.StatusNotFound, "Image not found in room")
		default:
			log.Printf("❌ update room image: %v", err)
			utils.JSONError(c, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	utils.JSONMessage(c, http.StatusOK, "Image updated successfully", room)
}
