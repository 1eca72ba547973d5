package controllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"hotel-backoffice/services"
	"hotel-backoffice/utils"
)

type CategoryController struct {
	Service *services.CategoryService
}

func NewCategoryController(service *services.CategoryService) *CategoryController {
	return &CategoryController{Service: service}
}

type createCategoryPayload struct {
	Name      string   `json:"name" binding:"required"`
	Amenities []string `json:"amenities"`
}

// CreateCategory (POST /category, admin only)
func (cc *CategoryController) CreateCategory(c *gin.Context) {
	var payload createCategoryPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	category, err := cc.Service.Create(c.Request.Context(), payload.Name, payload.Amenities)
	if err != nil {
		log.Printf("❌ create category: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	utils.JSONMessage(c, http.StatusCreated, "Category created successfully", category)
}

// GetAll (GET /category) returns every category with populated rooms.
func (cc *CategoryController) GetAll(c *gin.Context) {
	categories, err := cc.Service.GetAll(c.Request.Context())
	if err != nil {
		log.Printf("❌ list categories: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	utils.JSONMessage(c, http.StatusOK, "Categories fetched successfully", categories)
}
