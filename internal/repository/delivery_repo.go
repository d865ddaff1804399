package repository

import (
	"context"

	"uniformes/internal/model"

	"gorm.io/gorm"
)

// DeliveryRepository defines data access for submitted uniform requests.
// Records are append-only; there are no update or delete operations.
type DeliveryRepository interface {
	Create(ctx context.Context, delivery *model.Delivery) error
	ListNewestFirst(ctx context.Context) ([]model.Delivery, error)
	List(ctx context.Context, page, limit int) ([]model.Delivery, int64, error)
}

type deliveryRepository struct {
	db *gorm.DB
}

// NewDeliveryRepository returns a new instance of DeliveryRepository
func NewDeliveryRepository(db *gorm.DB) DeliveryRepository {
	return &deliveryRepository{db: db}
}

func (r *deliveryRepository) Create(ctx context.Context, delivery *model.Delivery) error {
	return r.db.WithContext(ctx).Create(delivery).Error
}

// ListNewestFirst returns the full record set ordered most recent first.
// The id tie-break keeps the order deterministic for equal timestamps.
func (r *deliveryRepository) ListNewestFirst(ctx context.Context) ([]model.Delivery, error) {
	var deliveries []model.Delivery
	if err := r.db.WithContext(ctx).
		Order("timestamp DESC").
		Order("id DESC").
		Find(&deliveries).Error; err != nil {
		return nil, err
	}
	return deliveries, nil
}

func (r *deliveryRepository) List(ctx context.Context, page, limit int) ([]model.Delivery, int64, error) {
	var deliveries []model.Delivery
	var total int64

	if err := r.db.WithContext(ctx).Model(&model.Delivery{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	if err := r.db.WithContext(ctx).
		Order("timestamp DESC").
		Order("id DESC").
		Offset(offset).
		Limit(limit).
		Find(&deliveries).Error; err != nil {
		return nil, 0, err
	}

	return deliveries, total, nil
}
