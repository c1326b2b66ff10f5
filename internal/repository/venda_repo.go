package repository

import (
	"context"

	"loja/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// VendaRepository is the data access contract for the sales ledger.
// All list methods preload Cliente and Produto and return rows ordered by
// data_venda ASC, id ASC so reports are reproducible.
type VendaRepository interface {
	Create(ctx context.Context, tx *gorm.DB, v *model.Venda) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Venda, error)
	ListByProduto(ctx context.Context, produtoID uuid.UUID) ([]model.Venda, error)
	ListByCliente(ctx context.Context, clienteID uuid.UUID) ([]model.Venda, error)
	ListAll(ctx context.Context) ([]model.Venda, error)
	DB() *gorm.DB // exposes the DB for transaction creation in the service layer
}

type vendaRepo struct{ db *gorm.DB }

func NewVendaRepository(db *gorm.DB) VendaRepository { return &vendaRepo{db: db} }

func (r *vendaRepo) DB() *gorm.DB { return r.db }

func (r *vendaRepo) Create(ctx context.Context, tx *gorm.DB, v *model.Venda) error {
	return tx.WithContext(ctx).Create(v).Error
}

func (r *vendaRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Venda, error) {
	var v model.Venda
	err := r.db.WithContext(ctx).Preload("Cliente").Preload("Produto").First(&v, id).Error
	return &v, err
}

func (r *vendaRepo) ListByProduto(ctx context.Context, produtoID uuid.UUID) ([]model.Venda, error) {
	return r.list(ctx, r.db.Where("produto_id = ?", produtoID))
}

func (r *vendaRepo) ListByCliente(ctx context.Context, clienteID uuid.UUID) ([]model.Venda, error) {
	return r.list(ctx, r.db.Where("cliente_id = ?", clienteID))
}

func (r *vendaRepo) ListAll(ctx context.Context) ([]model.Venda, error) {
	return r.list(ctx, r.db)
}

func (r *vendaRepo) list(ctx context.Context, q *gorm.DB) ([]model.Venda, error) {
	var vendas []model.Venda
	err := q.WithContext(ctx).
		Preload("Cliente").Preload("Produto").
		Order("data_venda ASC, id ASC").
		Find(&vendas).Error
	return vendas, err
}
