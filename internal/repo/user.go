package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/Maaz9703/maazweb-api/internal/models"
)

var ErrUserAlreadyExists = errors.New("user already exists")

func (r *GormRepo) CreateUserIfNotExists(ctx context.Context, u *models.User) error {
	tx := r.DB.WithContext(ctx).Where("email = ?", u.Email).FirstOrCreate(u)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return ErrUserAlreadyExists
	}
	return nil
}

func (r *GormRepo) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := r.DB.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *GormRepo) GetUserByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	if err := r.DB.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *GormRepo) ListUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := r.DB.WithContext(ctx).Order("created_at DESC").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

type DashboardStats struct {
	TotalUsers      int64   `json:"totalUsers"`
	TotalOrders     int64   `json:"totalOrders"`
	TotalRevenue    float64 `json:"totalRevenue"`
	CompletedOrders int64   `json:"completedOrders"`
}

// DashboardStatsQuery is the single server-side aggregate the API exposes:
// revenue and order count over non-cancelled orders, plus row counts.
func (r *GormRepo) DashboardStatsQuery(ctx context.Context) (*DashboardStats, error) {
	tx := r.DB.WithContext(ctx)
	var stats DashboardStats

	if err := tx.Model(&models.User{}).Where("role = ?", models.RoleUser).Count(&stats.TotalUsers).Error; err != nil {
		return nil, err
	}
	if err := tx.Model(&models.Order{}).Count(&stats.TotalOrders).Error; err != nil {
		return nil, err
	}

	row := struct {
		TotalRevenue    float64
		CompletedOrders int64
	}{}
	err := tx.Model(&models.Order{}).
		Select("COALESCE(SUM(total), 0) AS total_revenue, COUNT(*) AS completed_orders").
		Where("status <> ?", models.OrderStatusCancelled).
		Scan(&row).Error
	if err != nil {
		return nil, err
	}
	stats.TotalRevenue = row.TotalRevenue
	stats.CompletedOrders = row.CompletedOrders

	return &stats, nil
}

func (r *GormRepo) PromoteToAdmin(ctx context.Context, email string) error {
	res := r.DB.WithContext(ctx).
		Model(&models.User{}).
		Where("email = ?", email).
		Update("role", models.RoleAdmin)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
