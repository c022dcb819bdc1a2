package migration

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/roblesfd/helpdesk-backend/internal/infrastructure/persistence/models"
	appLogger "github.com/roblesfd/helpdesk-backend/internal/shared/logger"
)

// AutoMigrateModels lists every persistence model in dependency order.
func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.UserModel{},
		&models.TicketModel{},
		&models.CommentModel{},
		&models.NotificationModel{},
		&models.CategoryModel{},
		&models.TagModel{},
		&models.ArticleModel{},
		&models.ArticleTagModel{},
	}
}

// Run applies the schema for all registered models.
func Run(db *gorm.DB) error {
	for _, model := range AutoMigrateModels() {
		if err := db.AutoMigrate(model); err != nil {
			return fmt.Errorf("failed to migrate %T: %w", model, err)
		}
	}

	appLogger.Info("database schema migrated", "models", len(AutoMigrateModels()))
	return nil
}
