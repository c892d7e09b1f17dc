package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/skillbridge/skillbridge/internal/models"
)

func (r *GormRepo) CreateJobPosting(ctx context.Context, j *models.JobPosting) error {
	return r.DB.WithContext(ctx).Create(j).Error
}

func (r *GormRepo) GetJobPosting(ctx context.Context, id uint) (*models.JobPosting, error) {
	var job models.JobPosting
	if err := r.DB.WithContext(ctx).Preload("Company").First(&job, id).Error; err != nil {
		return nil, err
	}
	return &job, nil
}

func (r *GormRepo) ListJobPostings(ctx context.Context, offset, limit int) (int64, []models.JobPosting, error) {
	var total int64
	if err := r.DB.WithContext(ctx).Model(&models.JobPosting{}).Count(&total).Error; err != nil {
		return 0, nil, err
	}

	var items []models.JobPosting
	if err := r.DB.WithContext(ctx).Model(&models.JobPosting{}).Preload("Company").Order("id ASC").Offset(offset).Limit(limit).Find(&items).Error; err != nil {
		return 0, nil, err
	}
	return total, items, nil
}

func (r *GormRepo) SaveJobPosting(ctx context.Context, j *models.JobPosting) error {
	return r.DB.WithContext(ctx).Save(j).Error
}

func (r *GormRepo) DeleteJobPosting(ctx context.Context, id uint) error {
	res := r.DB.WithContext(ctx).Delete(&models.JobPosting{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
