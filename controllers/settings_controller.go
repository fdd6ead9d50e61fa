package controllers

import (
	"log"
	"net/http"

	"tyco-hotel-backend/models"
	"tyco-hotel-backend/services"
	"tyco-hotel-backend/utils"

	"github.com/gin-gonic/gin"
)

type hotelSettingsPayload struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Website string `json:"website"`
	Logo    string `json:"logo"`
}

type SettingsController struct {
	SettingsSvc *services.SettingsService
}

func NewSettingsController(svc *services.SettingsService) *SettingsController {
	return &SettingsController{SettingsSvc: svc}
}

func (ctrl *SettingsController) GetHotelSettings(c *gin.Context) {
	hotel, err := ctrl.SettingsSvc.Get()
	if err != nil {
		log.Printf("load hotel settings failed: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "Failed to load settings")
		return
	}

	c.JSON(http.StatusOK, gin.H{"hotel": hotel})
}

func (ctrl *SettingsController) UpdateHotelSettings(c *gin.Context) {
	var payload hotelSettingsPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	hotel, err := ctrl.SettingsSvc.Update(models.HotelSetting{
		Name:    payload.Name,
		Address: payload.Address,
		Phone:   payload.Phone,
		Email:   payload.Email,
		Website: payload.Website,
		Logo:    payload.Logo,
	})
	if err != nil {
		log.Printf("save hotel settings failed: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "Failed to save settings")
		return
	}

	c.JSON(http.StatusOK, gin.H{"hotel": hotel})
}
