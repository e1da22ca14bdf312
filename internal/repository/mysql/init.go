package mysql

import (
	"gorm.io/gorm"

	"github.com/Guyuepp/Go-Social-Interaction/internal/repository/mysql/model"
)

// InitTables creates or migrates every table the engine owns.
func InitTables(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.Post{},
		&model.Comment{},
		&model.InteractionRecord{},
		&model.DeadLetter{},
	)
}
