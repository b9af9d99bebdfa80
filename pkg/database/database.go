package database

import (
	"fmt"
	"log"
	"mindmate_backend/internal/config"
	"mindmate_backend/internal/model"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func InitDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.DBName,
		cfg.Charset,
		cfg.ParseTime,
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})

	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	return db, nil
}

// Migrate applies the schema and seeds the starter data. Run on every boot in
// debug mode; in release it only runs when forced from the command line.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&model.User{},
		&model.MoodEntry{},
		&model.JournalEntry{},
		&model.Goal{},
		&model.UserStats{},
		&model.Quiz{},
		&model.QuizResult{},
		&model.Quote{},
	)

	if err != nil {
		return err
	}

	log.Println("Database migration completed")

	seedDefaultQuotes(db)

	return nil
}

// seedDefaultQuotes inserts the starter quote set when the table is empty.
func seedDefaultQuotes(db *gorm.DB) {
	var count int64
	db.Model(&model.Quote{}).Count(&count)
	if count != 0 {
		return
	}

	defaults := []model.Quote{
		{Text: "The only way to do great work is to love what you do.", Author: "Steve Jobs", IsEnabled: true, IsCurrentlyUsed: true},
		{Text: "In the midst of difficulty lies opportunity.", Author: "Albert Einstein", IsEnabled: true},
		{Text: "Happiness is not something ready-made. It comes from your own actions.", Author: "Dalai Lama", IsEnabled: true},
		{Text: "Your mind is a powerful thing. When you fill it with positive thoughts, your life will start to change.", Author: "Unknown", IsEnabled: true},
		{Text: "Every moment is a fresh beginning.", Author: "T.S. Eliot", IsEnabled: true},
	}
	for i := range defaults {
		db.Create(&defaults[i])
	}
}
