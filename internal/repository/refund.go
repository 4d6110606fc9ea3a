package repository

import (
	"context"
	"errors"

	"github.com/vtuhub/vtugateway/internal/model"
	"gorm.io/gorm"
)

var ErrRefundNotFound = errors.New("REFUND_NOT_FOUND")

type RefundRepository interface {
	Create(ctx context.Context, refund *model.Refund) error
	GetByID(id int64) (*model.Refund, error)
	Update(ctx context.Context, refund *model.Refund) error
	FindUnpublishedPending(limit int) ([]model.Refund, error)
}

type refund struct {
	db *gorm.DB
}

func NewRefundRepository(db *gorm.DB) RefundRepository {
	return &refund{db: db}
}

func (r *refund) Create(ctx context.Context, refund *model.Refund) error {
	db := GetTx(ctx, r.db)
	return db.Create(refund).Error
}

func (r *refund) GetByID(id int64) (*model.Refund, error) {
	var ref model.Refund

	err := r.db.Where("id = ?", id).First(&ref).Error
	if err == nil {
		return &ref, nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrRefundNotFound
	}

	return nil, err
}

func (r *refund) Update(ctx context.Context, refund *model.Refund) error {
	db := GetTx(ctx, r.db)
	return db.Model(refund).Where("id = ?", refund.ID).Updates(refund).Error
}

func (r *refund) FindUnpublishedPending(limit int) ([]model.Refund, error) {
	var refunds []model.Refund

	err := r.db.Where("published = ? AND state = ?", false, model.RefundStatePending).
		Order("created_at ASC").
		Limit(limit).
		Find(&refunds).Error
	if err != nil {
		return nil, err
	}

	return refunds, nil
}
