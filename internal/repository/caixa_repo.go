package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/lobatoremulo/Restaurante-PDV/internal/model"
)

type CaixaRepository interface {
	Create(ctx context.Context, c *model.Caixa) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Caixa, error)
	FindAberto(ctx context.Context) (*model.Caixa, error)
	TemCaixaAberto(ctx context.Context) (bool, error)
	Update(ctx context.Context, tx *gorm.DB, c *model.Caixa) error
	List(ctx context.Context, limit, offset int) ([]model.Caixa, int64, error)
	// AtualizarTotais recomputes TotalVendas/TotalSangrias/TotalSuprimentos
	// from the movement ledger, inside tx when given.
	AtualizarTotais(ctx context.Context, tx *gorm.DB, caixaID uuid.UUID) error
	DB() *gorm.DB
}

type caixaRepo struct{ db *gorm.DB }

func NewCaixaRepository(db *gorm.DB) CaixaRepository { return &caixaRepo{db: db} }

func (r *caixaRepo) DB() *gorm.DB { return r.db }

func (r *caixaRepo) Create(ctx context.Context, c *model.Caixa) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *caixaRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Caixa, error) {
	var c model.Caixa
	err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error
	return &c, err
}

func (r *caixaRepo) FindAberto(ctx context.Context) (*model.Caixa, error) {
	var c model.Caixa
	err := r.db.WithContext(ctx).Where("status = ?", model.CaixaAberto).First(&c).Error
	return &c, err
}

func (r *caixaRepo) TemCaixaAberto(ctx context.Context) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Caixa{}).
		Where("status = ?", model.CaixaAberto).Count(&n).Error
	return n > 0, err
}

func (r *caixaRepo) Update(ctx context.Context, tx *gorm.DB, c *model.Caixa) error {
	if tx == nil {
		tx = r.db
	}
	return tx.WithContext(ctx).Save(c).Error
}

func (r *caixaRepo) List(ctx context.Context, limit, offset int) ([]model.Caixa, int64, error) {
	var caixas []model.Caixa
	var total int64
	q := r.db.WithContext(ctx).Model(&model.Caixa{})
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := q.Order("data_abertura DESC").Limit(limit).Offset(offset).Find(&caixas).Error
	return caixas, total, err
}

func (r *caixaRepo) AtualizarTotais(ctx context.Context, tx *gorm.DB, caixaID uuid.UUID) error {
	if tx == nil {
		tx = r.db
	}
	// COALESCE keeps the totals at zero for a fresh session with no movements.
	return tx.WithContext(ctx).Exec(`
		UPDATE caixas SET
			total_vendas = COALESCE((SELECT SUM(valor) FROM movimentos_caixa WHERE caixa_id = ? AND tipo_movimento = 'venda'), 0),
			total_sangrias = COALESCE((SELECT SUM(valor) FROM movimentos_caixa WHERE caixa_id = ? AND tipo_movimento = 'sangria'), 0),
			total_suprimentos = COALESCE((SELECT SUM(valor) FROM movimentos_caixa WHERE caixa_id = ? AND tipo_movimento = 'suprimento'), 0)
		WHERE id = ?`,
		caixaID, caixaID, caixaID, caixaID).Error
}
