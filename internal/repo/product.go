package repo

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/Maaz9703/maazweb-api/internal/models"
)

// sortColumns whitelists the columns ListProducts accepts, keyed by the API
// parameter name.
var sortColumns = map[string]string{
	"created_at": "created_at",
	"price":      "price",
	"title":      "title",
	"stock":      "stock",
}

type ProductFilter struct {
	Search   string
	Category string
	Sort     string
}

func (r *GormRepo) GetProduct(ctx context.Context, id uint) (*models.Product, error) {
	var product models.Product
	if err := r.DB.WithContext(ctx).Preload("QuantityDiscounts").First(&product, id).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *GormRepo) ListProducts(ctx context.Context, f ProductFilter) ([]models.Product, error) {
	q := r.DB.WithContext(ctx).Model(&models.Product{}).Preload("QuantityDiscounts")

	if f.Search != "" {
		like := "%" + strings.ToLower(f.Search) + "%"
		q = q.Where(
			"LOWER(title) LIKE ? OR LOWER(description) LIKE ? OR LOWER(category) LIKE ?",
			like, like, like,
		)
	}
	if f.Category != "" {
		q = q.Where("LOWER(category) LIKE ?", "%"+strings.ToLower(f.Category)+"%")
	}

	col, dir := "created_at", "DESC"
	if f.Sort != "" {
		name := strings.TrimPrefix(f.Sort, "-")
		if c, ok := sortColumns[name]; ok {
			col = c
			if strings.HasPrefix(f.Sort, "-") {
				dir = "DESC"
			} else {
				dir = "ASC"
			}
		}
	}

	var items []models.Product
	if err := q.Order(col + " " + dir).Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *GormRepo) Categories(ctx context.Context) ([]string, error) {
	var categories []string
	err := r.DB.WithContext(ctx).
		Model(&models.Product{}).
		Distinct("category").
		Order("category ASC").
		Pluck("category", &categories).Error
	if err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *GormRepo) CreateProduct(ctx context.Context, prod *models.Product) error {
	return r.DB.WithContext(ctx).Create(prod).Error
}

func (r *GormRepo) SaveProduct(ctx context.Context, prod *models.Product) error {
	return r.DB.WithContext(ctx).Omit("QuantityDiscounts").Save(prod).Error
}

func (r *GormRepo) ReplaceQuantityDiscounts(ctx context.Context, productID uint, discounts []models.QuantityDiscount) error {
	tx := r.DB.WithContext(ctx)
	if err := tx.Where("product_id = ?", productID).Delete(&models.QuantityDiscount{}).Error; err != nil {
		return err
	}
	if len(discounts) == 0 {
		return nil
	}
	for i := range discounts {
		discounts[i].ID = 0
		discounts[i].ProductID = productID
	}
	return tx.Create(&discounts).Error
}

func (r *GormRepo) DeleteProduct(ctx context.Context, id uint) error {
	res := r.DB.WithContext(ctx).Delete(&models.Product{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// DecrementStock applies an unconditional atomic per-row decrement. The caller
// is responsible for checking stock beforehand; two racing orders can both
// pass that check and drive stock negative.
func (r *GormRepo) DecrementStock(ctx context.Context, productID uint, qty int) error {
	return r.DB.WithContext(ctx).
		Model(&models.Product{}).
		Where("id = ?", productID).
		UpdateColumn("stock", gorm.Expr("stock - ?", qty)).Error
}
