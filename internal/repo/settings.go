package repo

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Maaz9703/maazweb-api/internal/models"
)

// GetSettings returns the singleton row, creating an empty one on first read.
func (r *GormRepo) GetSettings(ctx context.Context) (*models.Setting, error) {
	var setting models.Setting
	err := r.DB.WithContext(ctx).First(&setting, models.SettingsID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		setting = models.Setting{ID: models.SettingsID, Data: []byte("{}")}
		if err := r.DB.WithContext(ctx).Create(&setting).Error; err != nil {
			return nil, err
		}
		return &setting, nil
	}
	if err != nil {
		return nil, err
	}
	return &setting, nil
}

func (r *GormRepo) UpsertSettings(ctx context.Context, data []byte) (*models.Setting, error) {
	setting := models.Setting{
		ID:        models.SettingsID,
		Data:      data,
		UpdatedAt: time.Now().UTC(),
	}
	err := r.DB.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"data", "updated_at"}),
		}).
		Create(&setting).Error
	if err != nil {
		return nil, err
	}
	return &setting, nil
}
