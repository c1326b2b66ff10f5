package repository

import (
	"context"

	"loja/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProdutoRepository defines the data access contract for products.
// Services depend on this interface, not on the concrete GORM implementation,
// enabling clean unit testing via in-memory stubs.
type ProdutoRepository interface {
	Create(ctx context.Context, p *model.Produto) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Produto, error)
	List(ctx context.Context) ([]model.Produto, error)
	Update(ctx context.Context, p *model.Produto) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type produtoRepo struct{ db *gorm.DB }

func NewProdutoRepository(db *gorm.DB) ProdutoRepository { return &produtoRepo{db: db} }

func (r *produtoRepo) Create(ctx context.Context, p *model.Produto) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *produtoRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Produto, error) {
	var p model.Produto
	err := r.db.WithContext(ctx).First(&p, id).Error
	return &p, err
}

func (r *produtoRepo) List(ctx context.Context) ([]model.Produto, error) {
	var produtos []model.Produto
	err := r.db.WithContext(ctx).Order("nome ASC").Find(&produtos).Error
	return produtos, err
}

func (r *produtoRepo) Update(ctx context.Context, p *model.Produto) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *produtoRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Produto{}, id).Error
}
