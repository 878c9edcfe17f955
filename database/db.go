package database

import (
	"log"

	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/postgres"
	"github.com/cecepns/lily-mily-kosmetik/config"

	"github.com/cecepns/lily-mily-kosmetik/models"
)

var DB *gorm.DB

func ConnectDatabase() {
	cfg := config.LoadConfig()

	var err error
	DB, err = gorm.Open("postgres", cfg.DatabaseDSN())
	if err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}

	//migrations
	DB.AutoMigrate(&models.Category{}, &models.Brand{}, &models.Product{}, &models.Review{})
}
