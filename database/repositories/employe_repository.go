package repositories

import (
	"github.com/fleetdesk-io/fleetdesk/database/models"
	"github.com/fleetdesk-io/fleetdesk/utils"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type gormEmployeRepository struct {
	utils.Repository[int64, models.Employe, *gorm.DB]
	db *gorm.DB
}

func NewEmployeRepository(db *gorm.DB) *gormEmployeRepository {
	return &gormEmployeRepository{
		db:         db,
		Repository: newGormRepository[int64, models.Employe](db),
	}
}

func (g *gormEmployeRepository) GetAll() ([]models.Employe, error) {
	var employes []models.Employe
	err := g.db.Order("nom ASC").Find(&employes).Error
	return employes, err
}

func (g *gormEmployeRepository) ReadByUserID(userID uuid.UUID) (models.Employe, error) {
	var e models.Employe
	err := g.db.First(&e, "user_id = ?", userID).Error
	return e, err
}

func (g *gormEmployeRepository) ReadByEmail(email string) (models.Employe, error) {
	var e models.Employe
	err := g.db.First(&e, "email = ?", email).Error
	return e, err
}
