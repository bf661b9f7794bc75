package repositories

import (
	"github.com/fleetdesk-io/fleetdesk/database/models"
	"github.com/fleetdesk-io/fleetdesk/utils"
	"gorm.io/gorm"
)

type gormVehiculeRepository struct {
	utils.Repository[int64, models.Vehicule, *gorm.DB]
	db *gorm.DB
}

func NewVehiculeRepository(db *gorm.DB) *gormVehiculeRepository {
	return &gormVehiculeRepository{
		db:         db,
		Repository: newGormRepository[int64, models.Vehicule](db),
	}
}

func (g *gormVehiculeRepository) GetAll() ([]models.Vehicule, error) {
	var vehicules []models.Vehicule
	err := g.db.Order("immatriculation ASC").Find(&vehicules).Error
	return vehicules, err
}

func (g *gormVehiculeRepository) GetAvailable() ([]models.Vehicule, error) {
	var vehicules []models.Vehicule
	err := g.db.Where("disponible = ?", true).Order("immatriculation ASC").Find(&vehicules).Error
	return vehicules, err
}

func (g *gormVehiculeRepository) ReadByImmatriculation(immatriculation string) (models.Vehicule, error) {
	var v models.Vehicule
	err := g.db.First(&v, "immatriculation = ?", immatriculation).Error
	return v, err
}
