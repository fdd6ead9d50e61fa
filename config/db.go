package config

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"strings"
	"time"

	"tyco-hotel-backend/models"
	"tyco-hotel-backend/utils"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// SeedDatabase inserts the default admin account and a starter room catalog
// so a fresh install is usable immediately.
func SeedDatabase() {
	var adminCount int64
	DB.Model(&models.Admin{}).Count(&adminCount)
	if adminCount == 0 {
		email := utils.EnvOrDefault("ADMIN_EMAIL", "admin@tycohotel.com")
		password := utils.EnvOrDefault("ADMIN_PASSWORD", "admin123")

		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			log.Printf("warning: failed to hash default admin password: %v", err)
		} else {
			admin := models.Admin{
				FullName: "Admin User",
				Email:    email,
				Password: string(hash),
			}
			if err := DB.Create(&admin).Error; err != nil {
				log.Printf("warning: failed to create default admin: %v", err)
			} else {
				log.Println("Default admin seeded")
			}
		}
	}

	var roomCount int64
	DB.Model(&models.Room{}).Count(&roomCount)
	if roomCount == 0 {
		type seedRoom struct {
			name        string
			price       float64
			description string
			rating      float64
			reviews     int
			amenities   []string
		}

		seeds := []seedRoom{
			{"Standard Room", 199, "Cozy room with a queen bed and city view", 4.5, 128,
				[]string{"Free WiFi", "Air Conditioning", "Flat-screen TV"}},
			{"Superior Room", 299, "Spacious room with a king bed and balcony", 4.7, 245,
				[]string{"Free WiFi", "Air Conditioning", "Mini Bar", "Balcony"}},
			{"Deluxe Suite", 459, "Suite with separate living area and panoramic view", 4.9, 186,
				[]string{"Free WiFi", "Air Conditioning", "Mini Bar", "Jacuzzi", "Room Service"}},
		}

		for _, seed := range seeds {
			amenities, err := models.EncodeStringList(seed.amenities)
			if err != nil {
				log.Printf("warning: failed to encode amenities for %s: %v", seed.name, err)
				continue
			}
			images, _ := models.EncodeStringList(nil)

			room := models.Room{
				Name:         seed.name,
				Price:        seed.price,
				Description:  seed.description,
				Rating:       seed.rating,
				TotalReviews: seed.reviews,
				Amenities:    amenities,
				Images:       images,
				Status:       models.RoomStatusAvailable,
			}
			if err := DB.Create(&room).Error; err != nil {
				log.Printf("warning: failed to seed room %s: %v", seed.name, err)
			}
		}
		log.Println("Rooms seeded")
	}
}

func mysqlDSNFromURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}

	user := u.User.Username()
	pass, _ := u.User.Password()
	host := u.Hostname()
	port := u.Port()
	if port == "" {
		port = "3306"
	}

	dbName := strings.TrimPrefix(u.Path, "/")
	if dbName == "" {
		return "", fmt.Errorf("mysql url missing database name")
	}

	q := u.Query()
	if q.Get("charset") == "" {
		q.Set("charset", "utf8mb4")
	}
	if q.Get("parseTime") == "" {
		q.Set("parseTime", "True")
	}
	if q.Get("loc") == "" {
		q.Set("loc", "Local")
	}

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?%s", user, pass, host, port, dbName, q.Encode()), nil
}

func resolveMySQLDSN() (string, error) {
	raw := strings.TrimSpace(os.Getenv("MYSQL_URL"))
	if raw == "" {
		raw = strings.TrimSpace(os.Getenv("DATABASE_URL"))
	}

	if raw != "" {
		if strings.HasPrefix(raw, "mysql://") {
			return mysqlDSNFromURL(raw)
		}
		return raw, nil
	}

	user := utils.EnvOrDefault("DB_USER", "root")
	pass := utils.EnvOrDefault("DB_PASS", "")
	host := utils.EnvOrDefault("DB_HOST", "127.0.0.1")
	port := utils.EnvOrDefault("DB_PORT", "3306")
	dbName := utils.EnvOrDefault("DB_NAME", "tyco_hotel")

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		user, pass, host, port, dbName,
	), nil
}

func ConnectDatabase() error {
	dsn, err := resolveMySQLDSN()
	if err != nil {
		return err
	}

	gormLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold: time.Second,
			LogLevel:      logger.Warn,
			Colorful:      true,
		},
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{Logger: gormLogger})
	if err != nil {
		return err
	}

	DB = db

	if err := DB.AutoMigrate(
		&models.Admin{},
		&models.HotelSetting{},
		&models.Room{},
		&models.Reservation{},
	); err != nil {
		return err
	}

	SeedDatabase()
	return nil
}
