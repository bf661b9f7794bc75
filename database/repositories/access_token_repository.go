package repositories

import (
	"time"

	"github.com/fleetdesk-io/fleetdesk/database/models"
	"github.com/fleetdesk-io/fleetdesk/shared"
	"github.com/fleetdesk-io/fleetdesk/utils"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type gormAccessTokenRepository struct {
	utils.Repository[uuid.UUID, models.AccessToken, *gorm.DB]
	db *gorm.DB
}

func NewAccessTokenRepository(db *gorm.DB) *gormAccessTokenRepository {
	return &gormAccessTokenRepository{
		db:         db,
		Repository: newGormRepository[uuid.UUID, models.AccessToken](db),
	}
}

func (g *gormAccessTokenRepository) ReadByToken(token string) (models.AccessToken, error) {
	var t models.AccessToken
	// make sure to hash the token before querying
	err := g.db.First(&t, "token = ?", t.HashToken(token)).Error
	return t, err
}

func (g *gormAccessTokenRepository) MarkAsLastUsedNow(id uuid.UUID) error {
	return g.db.Model(&models.AccessToken{}).Where("id = ?", id).Update("last_used_at", time.Now()).Error
}

func (g *gormAccessTokenRepository) DeleteByUserID(tx shared.DB, userID uuid.UUID) error {
	return g.GetDB(tx).Where("user_id = ?", userID).Delete(&models.AccessToken{}).Error
}
