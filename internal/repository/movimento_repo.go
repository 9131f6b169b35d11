package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/lobatoremulo/Restaurante-PDV/internal/model"
)

type MovimentoCaixaRepository interface {
	Create(ctx context.Context, tx *gorm.DB, m *model.MovimentoCaixa) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.MovimentoCaixa, error)
	ListByCaixa(ctx context.Context, caixaID uuid.UUID) ([]model.MovimentoCaixa, error)
	ListByCaixaETipo(ctx context.Context, caixaID uuid.UUID, tipo string) ([]model.MovimentoCaixa, error)
	ListPorPeriodo(ctx context.Context, inicio, fim time.Time) ([]model.MovimentoCaixa, error)
	// TotalPorTipo sums one movement kind via tx when given, so a closing
	// session reads the same ledger snapshot it is freezing.
	TotalPorTipo(ctx context.Context, tx *gorm.DB, caixaID uuid.UUID, tipo string) (decimal.Decimal, error)
	ExisteMovimentoVenda(ctx context.Context, caixaID, vendaID uuid.UUID) (bool, error)
	SumVendasPorFormaPagamento(ctx context.Context, caixaID uuid.UUID) (map[string]decimal.Decimal, error)
}

type movimentoRepo struct{ db *gorm.DB }

func NewMovimentoCaixaRepository(db *gorm.DB) MovimentoCaixaRepository {
	return &movimentoRepo{db: db}
}

func (r *movimentoRepo) Create(ctx context.Context, tx *gorm.DB, m *model.MovimentoCaixa) error {
	if tx == nil {
		tx = r.db
	}
	return tx.WithContext(ctx).Create(m).Error
}

func (r *movimentoRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.MovimentoCaixa, error) {
	var m model.MovimentoCaixa
	err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error
	return &m, err
}

func (r *movimentoRepo) ListByCaixa(ctx context.Context, caixaID uuid.UUID) ([]model.MovimentoCaixa, error) {
	var movs []model.MovimentoCaixa
	err := r.db.WithContext(ctx).Where("caixa_id = ?", caixaID).
		Order("data_movimento ASC").Find(&movs).Error
	return movs, err
}

func (r *movimentoRepo) ListByCaixaETipo(ctx context.Context, caixaID uuid.UUID, tipo string) ([]model.MovimentoCaixa, error) {
	var movs []model.MovimentoCaixa
	err := r.db.WithContext(ctx).Where("caixa_id = ? AND tipo_movimento = ?", caixaID, tipo).
		Order("data_movimento ASC").Find(&movs).Error
	return movs, err
}

func (r *movimentoRepo) ListPorPeriodo(ctx context.Context, inicio, fim time.Time) ([]model.MovimentoCaixa, error) {
	var movs []model.MovimentoCaixa
	err := r.db.WithContext(ctx).
		Where("data_movimento BETWEEN ? AND ?", inicio, fim).
		Order("data_movimento ASC").Find(&movs).Error
	return movs, err
}

func (r *movimentoRepo) TotalPorTipo(ctx context.Context, tx *gorm.DB, caixaID uuid.UUID, tipo string) (decimal.Decimal, error) {
	if tx == nil {
		tx = r.db
	}
	var total decimal.Decimal
	err := tx.WithContext(ctx).Model(&model.MovimentoCaixa{}).
		Where("caixa_id = ? AND tipo_movimento = ?", caixaID, tipo).
		Select("COALESCE(SUM(valor), 0)").Scan(&total).Error
	return total, err
}

func (r *movimentoRepo) ExisteMovimentoVenda(ctx context.Context, caixaID, vendaID uuid.UUID) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.MovimentoCaixa{}).
		Where("caixa_id = ? AND venda_id = ? AND tipo_movimento = ?", caixaID, vendaID, model.MovimentoVenda).
		Count(&n).Error
	return n > 0, err
}

func (r *movimentoRepo) SumVendasPorFormaPagamento(ctx context.Context, caixaID uuid.UUID) (map[string]decimal.Decimal, error) {
	var rows []struct {
		FormaPagamento string
		Total          decimal.Decimal
	}
	err := r.db.WithContext(ctx).Model(&model.MovimentoCaixa{}).
		Where("caixa_id = ? AND tipo_movimento = ? AND forma_pagamento IS NOT NULL", caixaID, model.MovimentoVenda).
		Select("forma_pagamento, SUM(valor) AS total").
		Group("forma_pagamento").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make(map[string]decimal.Decimal, len(rows))
	for _, row := range rows {
		out[row.FormaPagamento] = row.Total
	}
	return out, nil
}
