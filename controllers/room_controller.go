package controllers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	"tyco-hotel-backend/models"
	"tyco-hotel-backend/services"

	mysql "github.com/go-sql-driver/mysql"
	"github.com/gin-gonic/gin"
)

type CreateRoomRequest struct {
	Name         string   `json:"name" binding:"required"`
	Price        float64  `json:"price" binding:"required,gt=0"`
	Description  string   `json:"description"`
	Rating       float64  `json:"rating"`
	TotalReviews int      `json:"totalReviews"`
	Amenities    []string `json:"amenities"`
	Status       string   `json:"status"`
	Images       []string `json:"images"`
}

type RoomController struct {
	RoomSvc *services.RoomService
}

func NewRoomController(svc *services.RoomService) *RoomController {
	return &RoomController{RoomSvc: svc}
}

func parseIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid id",
		})
		return 0, false
	}
	return uint(id), true
}

func isDuplicateKeyError(err error) bool {
	var me *mysql.MySQLError
	if errors.As(err, &me) {
		return me.Number == 1062
	}
	// sqlite in tests
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}

// GetRooms lists the catalog. Optional query params: status, minPrice,
// maxPrice, sort (featured|price-low|price-high|rating), limit.
func (ctrl *RoomController) GetRooms(c *gin.Context) {
	filter := services.RoomFilter{
		Status: strings.TrimSpace(c.Query("status")),
		Sort:   strings.TrimSpace(c.Query("sort")),
	}

	if filter.Status != "" && !models.IsValidRoomStatus(filter.Status) {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid status filter",
		})
		return
	}

	if raw := c.Query("minPrice"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Invalid minPrice"})
			return
		}
		filter.MinPrice = &v
	}
	if raw := c.Query("maxPrice"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Invalid maxPrice"})
			return
		}
		filter.MaxPrice = &v
	}
	if raw := c.Query("limit"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Invalid limit"})
			return
		}
		filter.Limit = v
	}

	rooms, err := ctrl.RoomSvc.List(filter)
	if err != nil {
		log.Printf("list rooms failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "Database error"})
		return
	}

	c.JSON(http.StatusOK, rooms)
}

func (ctrl *RoomController) GetRoom(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	room, err := ctrl.RoomSvc.GetByID(id)
	if err != nil {
		if errors.Is(err, services.ErrRoomNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"status": "error", "message": "Room not found"})
			return
		}
		log.Printf("get room %d failed: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "Database error"})
		return
	}

	c.JSON(http.StatusOK, room)
}

// CreateRoom writes a room record. Image URLs come from the upload endpoint
// and are written here afterwards, so uploads always precede the record.
func (ctrl *RoomController) CreateRoom(c *gin.Context) {
	var req CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request payload",
			"details": err.Error(),
		})
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Room name is required"})
		return
	}
	if req.Rating < 0 || req.Rating > 5 {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Rating must be between 0 and 5"})
		return
	}
	if req.TotalReviews < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Total reviews cannot be negative"})
		return
	}
	if req.Status == "" {
		req.Status = models.RoomStatusAvailable
	}
	if !models.IsValidRoomStatus(req.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Invalid room status"})
		return
	}
	if len(req.Images) > models.MaxRoomImages {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "A room can have at most 4 images"})
		return
	}

	amenities, err := models.EncodeStringList(req.Amenities)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Invalid amenities"})
		return
	}
	images, err := models.EncodeStringList(req.Images)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Invalid images"})
		return
	}

	room := models.Room{
		Name:         req.Name,
		Price:        req.Price,
		Description:  req.Description,
		Rating:       req.Rating,
		TotalReviews: req.TotalReviews,
		Amenities:    amenities,
		Images:       images,
		Status:       req.Status,
	}

	if err := ctrl.RoomSvc.Create(&room); err != nil {
		if isDuplicateKeyError(err) {
			c.JSON(http.StatusConflict, gin.H{
				"status":  "error",
				"message": "A room with this name already exists",
			})
			return
		}
		log.Printf("create room failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "Database error"})
		return
	}

	c.JSON(http.StatusCreated, room)
}

// UpdateRoom applies a partial update. List fields arrive as JSON arrays and
// are re-encoded for the JSON columns.
func (ctrl *RoomController) UpdateRoom(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var fields map[string]interface{}
	if err := c.ShouldBindJSON(&fields); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request payload",
			"details": err.Error(),
		})
		return
	}

	if raw, present := fields["status"]; present {
		status, isString := raw.(string)
		if !isString || !models.IsValidRoomStatus(status) {
			c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Invalid room status"})
			return
		}
	}

	if raw, present := fields["name"]; present {
		name, isString := raw.(string)
		name = strings.TrimSpace(name)
		if !isString || name == "" {
			c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Room name is required"})
			return
		}
		fields["name"] = name
	}

	// JSON numbers bind as float64
	if raw, present := fields["price"]; present {
		price, isNumber := raw.(float64)
		if !isNumber || price <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Price must be greater than zero"})
			return
		}
	}
	if raw, present := fields["rating"]; present {
		rating, isNumber := raw.(float64)
		if !isNumber || rating < 0 || rating > 5 {
			c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Rating must be between 0 and 5"})
			return
		}
	}
	if raw, present := fields["totalReviews"]; present {
		reviews, isNumber := raw.(float64)
		if !isNumber || reviews < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Total reviews cannot be negative"})
			return
		}
		delete(fields, "totalReviews")
		fields["total_reviews"] = raw
	}

	for _, key := range []string{"amenities", "images"} {
		raw, present := fields[key]
		if !present {
			continue
		}
		encoded, err := json.Marshal(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Invalid " + key})
			return
		}
		var list []string
		if err := json.Unmarshal(encoded, &list); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": key + " must be a list of strings"})
			return
		}
		if key == "images" && len(list) > models.MaxRoomImages {
			c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "A room can have at most 4 images"})
			return
		}
		fields[key] = encoded
	}

	if err := ctrl.RoomSvc.Update(id, fields); err != nil {
		if errors.Is(err, services.ErrRoomNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"status": "error", "message": "Room not found"})
			return
		}
		if isDuplicateKeyError(err) {
			c.JSON(http.StatusConflict, gin.H{"status": "error", "message": "A room with this name already exists"})
			return
		}
		log.Printf("update room %d failed: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "Update failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Room updated successfully"})
}

func (ctrl *RoomController) DeleteRoom(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := ctrl.RoomSvc.Delete(id); err != nil {
		if errors.Is(err, services.ErrRoomNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"status": "error", "message": "Room not found"})
			return
		}
		log.Printf("delete room %d failed: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "Failed to delete room"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Room deleted successfully"})
}
