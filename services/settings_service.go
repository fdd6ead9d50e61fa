package services

import (
	"errors"
	"fmt"

	"tyco-hotel-backend/models"

	"gorm.io/gorm"
)

type SettingsService struct {
	DB *gorm.DB
}

func NewSettingsService(db *gorm.DB) *SettingsService {
	return &SettingsService{DB: db}
}

// Get returns the single hotel profile row, or a zero profile if none has
// been saved yet.
func (s *SettingsService) Get() (models.HotelSetting, error) {
	var hotel models.HotelSetting
	if err := s.DB.First(&hotel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.HotelSetting{}, nil
		}
		return hotel, fmt.Errorf("failed to load hotel settings: %w", err)
	}
	return hotel, nil
}

// Update overwrites the profile, creating the row on first save.
func (s *SettingsService) Update(input models.HotelSetting) (models.HotelSetting, error) {
	var hotel models.HotelSetting
	err := s.DB.First(&hotel).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return hotel, fmt.Errorf("failed to load hotel settings: %w", err)
		}
		hotel = models.HotelSetting{}
	}

	hotel.Name = input.Name
	hotel.Address = input.Address
	hotel.Phone = input.Phone
	hotel.Email = input.Email
	hotel.Website = input.Website
	hotel.Logo = input.Logo

	if err := s.DB.Save(&hotel).Error; err != nil {
		return hotel, fmt.Errorf("failed to save hotel settings: %w", err)
	}
	return hotel, nil
}
