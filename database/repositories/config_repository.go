package repositories

import (
	"github.com/fleetdesk-io/fleetdesk/database/models"
	"github.com/fleetdesk-io/fleetdesk/utils"
	"gorm.io/gorm"
)

type configRepository struct {
	utils.Repository[string, models.Config, *gorm.DB]
	db *gorm.DB
}

func NewConfigRepository(db *gorm.DB) *configRepository {
	return &configRepository{
		db:         db,
		Repository: newGormRepository[string, models.Config](db),
	}
}

// Read overrides the generic lookup - the config table is keyed by "key",
// not "id".
func (c *configRepository) Read(key string) (models.Config, error) {
	var config models.Config
	err := c.db.First(&config, "key = ?", key).Error
	return config, err
}
