package repositories

import (
	"github.com/fleetdesk-io/fleetdesk/database/models"
	"github.com/fleetdesk-io/fleetdesk/utils"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type gormUserRepository struct {
	utils.Repository[uuid.UUID, models.User, *gorm.DB]
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *gormUserRepository {
	return &gormUserRepository{
		db:         db,
		Repository: newGormRepository[uuid.UUID, models.User](db),
	}
}

func (g *gormUserRepository) ReadByEmail(email string) (models.User, error) {
	var u models.User
	err := g.db.First(&u, "email = ?", email).Error
	return u, err
}
