package controllers

import (
	"errors"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/ameerhamza-malik/ItemManagement/models"
	"github.com/ameerhamza-malik/ItemManagement/validation"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ## Item Handlers

// ListItems returns items newest first, optionally filtered by a
// case-insensitive substring over title and description. Public.
func (h *Handler) ListItems(c *gin.Context) {
	q := strings.TrimSpace(c.Query("q"))

	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	query := h.DB.Model(&models.Item{})
	if q != "" {
		like := "%" + strings.ToLower(q) + "%"
		query = query.Where("LOWER(title) LIKE ? OR LOWER(description) LIKE ?", like, like)
	}
	// Shared between the count and the page fetch.
	query = query.Session(&gorm.Session{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		h.Log.WithError(err).Error("Failed to count items")
		h.jsonError(c, http.StatusInternalServerError, "Failed to fetch items")
		return
	}

	var items []models.Item
	if err := query.
		Order("created_at DESC, id DESC").
		Limit(pageSize).
		Offset((page - 1) * pageSize).
		Find(&items).Error; err != nil {
		h.Log.WithError(err).Error("Failed to fetch items")
		h.jsonError(c, http.StatusInternalServerError, "Failed to fetch items")
		return
	}

	totalPages := int(math.Ceil(float64(total) / float64(pageSize)))
	if totalPages < 1 {
		totalPages = 1
	}

	c.JSON(http.StatusOK, gin.H{
		"items":       items,
		"total":       total,
		"page":        page,
		"total_pages": totalPages,
		"q":           q,
	})
}

// GetItem fetches a single item by identifier. Public.
func (h *Handler) GetItem(c *gin.Context) {
	itemID, err := h.parseID(c.Param("id"))
	if err != nil {
		h.jsonError(c, http.StatusBadRequest, "Invalid item ID")
		return
	}

	var item models.Item
	err = h.DB.First(&item, itemID).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		h.jsonError(c, http.StatusNotFound, "Item not found")
		return
	}
	if err != nil {
		h.jsonError(c, http.StatusInternalServerError, "Failed to fetch item")
		return
	}

	c.JSON(http.StatusOK, gin.H{"item": item})
}

// CreateItem inserts a new item owned by the current identity.
func (h *Handler) CreateItem(c *gin.Context) {
	user, err := h.getUserFromContext(c)
	if err != nil {
		h.jsonError(c, http.StatusUnauthorized, err.Error())
		return
	}

	var form validation.ItemForm
	if err := c.ShouldBindJSON(&form); err != nil {
		h.jsonError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if errs := form.Validate(); len(errs) > 0 {
		h.validationError(c, errs)
		return
	}

	item := models.Item{
		Title:       form.Title,
		Description: form.Description,
		UserID:      user.ID,
	}

	if result := h.DB.Create(&item); result.Error != nil {
		h.Log.WithError(result.Error).Error("Failed to save item")
		h.jsonError(c, http.StatusInternalServerError, "Could not save item")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"item": item})
}

// UpdateItem replaces the title and description of an existing item.
// Any authenticated user may edit any item.
func (h *Handler) UpdateItem(c *gin.Context) {
	itemID, err := h.parseID(c.Param("id"))
	if err != nil {
		h.jsonError(c, http.StatusBadRequest, "Invalid item ID")
		return
	}

	var form validation.ItemForm
	if err := c.ShouldBindJSON(&form); err != nil {
		h.jsonError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if errs := form.Validate(); len(errs) > 0 {
		h.validationError(c, errs)
		return
	}

	result := h.DB.Model(&models.Item{}).
		Where("id = ?", itemID).
		Updates(map[string]interface{}{
			"title":       form.Title,
			"description": form.Description,
		})

	if result.Error != nil {
		h.Log.WithError(result.Error).Error("Failed to update item")
		h.jsonError(c, http.StatusInternalServerError, "Failed to update item")
		return
	}
	if result.RowsAffected == 0 {
		h.jsonError(c, http.StatusNotFound, "Item not found")
		return
	}

	// Reload the updated item
	var updatedItem models.Item
	if err := h.DB.First(&updatedItem, itemID).Error; err != nil {
		h.jsonError(c, http.StatusInternalServerError, "Failed to fetch updated item")
		return
	}

	c.JSON(http.StatusOK, gin.H{"item": updatedItem})
}

// DeleteItem removes an item by identifier. The confirm parameter is the
// explicit confirmation step; deleting an identifier that does not exist
// answers not found and changes nothing.
func (h *Handler) DeleteItem(c *gin.Context) {
	itemID, err := h.parseID(c.Param("id"))
	if err != nil {
		h.jsonError(c, http.StatusBadRequest, "Invalid item ID")
		return
	}

	if c.Query("confirm") != "true" {
		h.jsonError(c, http.StatusBadRequest, "Deletion requires confirmation")
		return
	}

	// Single round-trip to the database, instead of fetch-then-delete
	result := h.DB.Delete(&models.Item{}, itemID)
	if result.Error != nil {
		h.Log.WithError(result.Error).Error("Failed to delete item")
		h.jsonError(c, http.StatusInternalServerError, "Failed to delete item")
		return
	}
	if result.RowsAffected == 0 {
		h.jsonError(c, http.StatusNotFound, "Item not found")
		return
	}

	c.Status(http.StatusNoContent)
}
