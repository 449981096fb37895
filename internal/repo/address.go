package repo

import (
	"context"

	"github.com/Maaz9703/maazweb-api/internal/models"
)

func (r *GormRepo) ListAddresses(ctx context.Context, userID uint) ([]models.Address, error) {
	var addresses []models.Address
	err := r.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("is_default DESC, created_at DESC").
		Find(&addresses).Error
	if err != nil {
		return nil, err
	}
	return addresses, nil
}

func (r *GormRepo) GetAddress(ctx context.Context, id uint) (*models.Address, error) {
	var address models.Address
	if err := r.DB.WithContext(ctx).First(&address, id).Error; err != nil {
		return nil, err
	}
	return &address, nil
}

// SaveAddress persists the address; when it is flagged as default, every other
// address of the same user is unset first. Two explicit writes, not a
// transaction.
func (r *GormRepo) SaveAddress(ctx context.Context, address *models.Address) error {
	tx := r.DB.WithContext(ctx)

	if address.IsDefault {
		err := tx.Model(&models.Address{}).
			Where("user_id = ? AND id <> ?", address.UserID, address.ID).
			Update("is_default", false).Error
		if err != nil {
			return err
		}
	}

	return tx.Save(address).Error
}

func (r *GormRepo) DeleteAddress(ctx context.Context, id uint) error {
	return r.DB.WithContext(ctx).Delete(&models.Address{}, id).Error
}
