package repository

import (
	"context"

	"github.com/vtuhub/vtugateway/internal/model"
	"gorm.io/gorm"
)

// ProductRepository reads the catalog reference tables. Only active rows are
// returned, ordered the way the storefront lists them.
type ProductRepository interface {
	DataPlans(ctx context.Context, network model.NetworkProvider) ([]model.DataPlan, error)
	AirtimeProducts(ctx context.Context) ([]model.AirtimeProduct, error)
	CablePackages(ctx context.Context) ([]model.CablePackage, error)
	Discos(ctx context.Context) ([]model.Disco, error)
}

type product struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) ProductRepository {
	return &product{db: db}
}

func (p *product) DataPlans(ctx context.Context, network model.NetworkProvider) ([]model.DataPlan, error) {
	var plans []model.DataPlan

	query := p.db.WithContext(ctx).Where("is_active = ?", true)
	if network != "" {
		query = query.Where("network_provider = ?", network)
	}

	if err := query.Order("price ASC").Find(&plans).Error; err != nil {
		return nil, err
	}

	return plans, nil
}

func (p *product) AirtimeProducts(ctx context.Context) ([]model.AirtimeProduct, error) {
	var products []model.AirtimeProduct

	err := p.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("denomination ASC").
		Find(&products).Error
	if err != nil {
		return nil, err
	}

	return products, nil
}

func (p *product) CablePackages(ctx context.Context) ([]model.CablePackage, error) {
	var packages []model.CablePackage

	err := p.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("price ASC").
		Find(&packages).Error
	if err != nil {
		return nil, err
	}

	return packages, nil
}

func (p *product) Discos(ctx context.Context) ([]model.Disco, error) {
	var discos []model.Disco

	err := p.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("disco_name ASC").
		Find(&discos).Error
	if err != nil {
		return nil, err
	}

	return discos, nil
}
