package database

import (
	"errors"
	"fmt"
	"log"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/kopeckyd/vocabulaire/internal/entities"
)

type Database struct {
	DB *gorm.DB
}

func NewDatabase(dbPath string) (*Database, error) {
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Auto-migrate all entities
	err = db.AutoMigrate(
		&entities.User{},
		&entities.Catalogue{},
		&entities.Book{},
		&entities.Vocabulary{},
		&entities.Word{},
		&entities.WordUsage{},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	log.Printf("Database initialized successfully at %s", dbPath)

	return &Database{DB: db}, nil
}

func (d *Database) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// ProvisionUser creates a user together with their catalogue. This is the
// bootstrap step the runtime API depends on; it is never exposed over HTTP.
func (d *Database) ProvisionUser(username, firstName, lastName, email string) (*entities.User, error) {
	user := &entities.User{
		Username:  username,
		FirstName: firstName,
		LastName:  lastName,
		Email:     email,
	}

	err := d.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		catalogue := &entities.Catalogue{UserID: user.ID}
		if err := tx.Create(catalogue).Error; err != nil {
			return err
		}
		user.Catalogue = catalogue
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to provision user %s: %w", username, err)
	}

	return user, nil
}

// GetUserByUsername returns the user with their catalogue loaded.
func (d *Database) GetUserByUsername(username string) (*entities.User, error) {
	var user entities.User
	err := d.DB.Preload("Catalogue").Where("username = ?", username).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// CurrentUser resolves the user the API serves: the configured username
// when set, otherwise the single provisioned user.
func (d *Database) CurrentUser(username string) (*entities.User, error) {
	if username != "" {
		return d.GetUserByUsername(username)
	}

	var user entities.User
	err := d.DB.Preload("Catalogue").Order("id ASC").First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("no user provisioned, run the provision command first")
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}
