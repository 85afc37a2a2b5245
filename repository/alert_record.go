package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/airpulse-io/airpulse/entity"
)

type AlertRecordRepository struct {
	db *gorm.DB
}

func NewAlertRecordRepository(db *gorm.DB) *AlertRecordRepository {
	return &AlertRecordRepository{db: db}
}

func (r *AlertRecordRepository) Create(ctx context.Context, record *entity.AlertRecord) error {
	return r.db.WithContext(ctx).Create(record).Error
}

// List returns the most recent alerts, optionally filtered by area.
func (r *AlertRecordRepository) List(ctx context.Context, area string, limit int) ([]entity.AlertRecord, error) {
	query := r.db.WithContext(ctx).Order("timestamp DESC").Limit(limit)
	if area != "" {
		query = query.Where("area = ?", area)
	}

	var records []entity.AlertRecord
	if err := query.Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

// LatestByArea returns the most recent alert for one area, or gorm.ErrRecordNotFound.
func (r *AlertRecordRepository) LatestByArea(ctx context.Context, area string) (*entity.AlertRecord, error) {
	var record entity.AlertRecord
	err := r.db.WithContext(ctx).
		Where("area = ?", area).
		Order("timestamp DESC").
		First(&record).Error
	if err != nil {
		return nil, err
	}
	return &record, nil
}
