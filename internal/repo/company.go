package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/skillbridge/skillbridge/internal/models"
)

func (r *GormRepo) CreateCompany(ctx context.Context, c *models.Company) error {
	return r.DB.WithContext(ctx).Create(c).Error
}

func (r *GormRepo) GetCompany(ctx context.Context, id uint) (*models.Company, error) {
	var company models.Company
	if err := r.DB.WithContext(ctx).First(&company, id).Error; err != nil {
		return nil, err
	}
	return &company, nil
}

func (r *GormRepo) ListCompanies(ctx context.Context, offset, limit int) (int64, []models.Company, error) {
	var total int64
	if err := r.DB.WithContext(ctx).Model(&models.Company{}).Count(&total).Error; err != nil {
		return 0, nil, err
	}

	var items []models.Company
	if err := r.DB.WithContext(ctx).Model(&models.Company{}).Order("id ASC").Offset(offset).Limit(limit).Find(&items).Error; err != nil {
		return 0, nil, err
	}
	return total, items, nil
}

func (r *GormRepo) SaveCompany(ctx context.Context, c *models.Company) error {
	return r.DB.WithContext(ctx).Save(c).Error
}

func (r *GormRepo) DeleteCompany(ctx context.Context, id uint) error {
	res := r.DB.WithContext(ctx).Delete(&models.Company{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *GormRepo) CompanyExists(ctx context.Context, id uint) (bool, error) {
	var n int64
	if err := r.DB.WithContext(ctx).Model(&models.Company{}).Where("id = ?", id).Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}
