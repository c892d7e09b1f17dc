package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/skillbridge/skillbridge/internal/models"
)

func (r *GormRepo) CreateCertificate(ctx context.Context, c *models.Certificate) error {
	return r.DB.WithContext(ctx).Create(c).Error
}

func (r *GormRepo) GetCertificate(ctx context.Context, id uint) (*models.Certificate, error) {
	var cert models.Certificate
	if err := r.DB.WithContext(ctx).Preload("User").Preload("Course").First(&cert, id).Error; err != nil {
		return nil, err
	}
	return &cert, nil
}

func (r *GormRepo) ListCertificates(ctx context.Context, offset, limit int) (int64, []models.Certificate, error) {
	var total int64
	if err := r.DB.WithContext(ctx).Model(&models.Certificate{}).Count(&total).Error; err != nil {
		return 0, nil, err
	}

	var items []models.Certificate
	if err := r.DB.WithContext(ctx).Model(&models.Certificate{}).Preload("User").Preload("Course").Order("id ASC").Offset(offset).Limit(limit).Find(&items).Error; err != nil {
		return 0, nil, err
	}
	return total, items, nil
}

func (r *GormRepo) SaveCertificate(ctx context.Context, c *models.Certificate) error {
	return r.DB.WithContext(ctx).Save(c).Error
}

func (r *GormRepo) DeleteCertificate(ctx context.Context, id uint) error {
	res := r.DB.WithContext(ctx).Delete(&models.Certificate{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
