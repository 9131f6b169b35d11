package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/lobatoremulo/Restaurante-PDV/internal/model"
)

type VendaRepository interface {
	Create(ctx context.Context, tx *gorm.DB, v *model.Venda) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Venda, error)
	FindByNumero(ctx context.Context, numero string) (*model.Venda, error)
	Update(ctx context.Context, tx *gorm.DB, v *model.Venda) error
	UpdateStatus(ctx context.Context, tx *gorm.DB, id uuid.UUID, status string) error
	// ExisteVendaFinalizadaParaComanda backs the one-finalized-venda-per-comanda
	// invariant (the partial unique index is the hard guarantee).
	ExisteVendaFinalizadaParaComanda(ctx context.Context, comandaID uuid.UUID) (bool, error)
	FindFinalizadaPorComanda(ctx context.Context, comandaID uuid.UUID) (*model.Venda, error)
	// NextNumero issues the next date-scoped sale number (VND20240131001).
	// Must run inside the sale transaction so concurrent checkouts serialize.
	NextNumero(ctx context.Context, tx *gorm.DB, dia time.Time) (string, error)
	ListPorPeriodo(ctx context.Context, inicio, fim time.Time) ([]model.Venda, error)
	DB() *gorm.DB
}

type vendaRepo struct{ db *gorm.DB }

func NewVendaRepository(db *gorm.DB) VendaRepository { return &vendaRepo{db: db} }

func (r *vendaRepo) DB() *gorm.DB { return r.db }

func (r *vendaRepo) Create(ctx context.Context, tx *gorm.DB, v *model.Venda) error {
	if tx == nil {
		tx = r.db
	}
	return tx.WithContext(ctx).Create(v).Error
}

func (r *vendaRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Venda, error) {
	var v model.Venda
	err := r.db.WithContext(ctx).
		Preload("Itens.Produto").Preload("Pagamentos").
		First(&v, "id = ?", id).Error
	return &v, err
}

func (r *vendaRepo) FindByNumero(ctx context.Context, numero string) (*model.Venda, error) {
	var v model.Venda
	err := r.db.WithContext(ctx).
		Preload("Itens.Produto").Preload("Pagamentos").
		Where("numero_venda = ?", numero).First(&v).Error
	return &v, err
}

func (r *vendaRepo) Update(ctx context.Context, tx *gorm.DB, v *model.Venda) error {
	if tx == nil {
		tx = r.db
	}
	return tx.WithContext(ctx).Save(v).Error
}

func (r *vendaRepo) UpdateStatus(ctx context.Context, tx *gorm.DB, id uuid.UUID, status string) error {
	if tx == nil {
		tx = r.db
	}
	return tx.WithContext(ctx).Model(&model.Venda{}).
		Where("id = ?", id).Update("status", status).Error
}

func (r *vendaRepo) ExisteVendaFinalizadaParaComanda(ctx context.Context, comandaID uuid.UUID) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Venda{}).
		Where("comanda_id = ? AND status = ?", comandaID, model.VendaFinalizada).
		Count(&n).Error
	return n > 0, err
}

func (r *vendaRepo) FindFinalizadaPorComanda(ctx context.Context, comandaID uuid.UUID) (*model.Venda, error) {
	var v model.Venda
	err := r.db.WithContext(ctx).
		Preload("Itens").Preload("Pagamentos").
		Where("comanda_id = ? AND status = ?", comandaID, model.VendaFinalizada).
		First(&v).Error
	return &v, err
}

func (r *vendaRepo) NextNumero(ctx context.Context, tx *gorm.DB, dia time.Time) (string, error) {
	if tx == nil {
		tx = r.db
	}
	prefixo := "VND" + dia.Format("20060102")
	var seq int64
	// MAX over the day's numbers under the tx; the unique index on numero_venda
	// catches the race if two transactions read the same MAX.
	err := tx.WithContext(ctx).Model(&model.Venda{}).
		Where("numero_venda LIKE ?", prefixo+"%").
		Select("COALESCE(MAX(CAST(RIGHT(numero_venda, 3) AS INTEGER)), 0)").
		Scan(&seq).Error
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s%03d", prefixo, seq+1), nil
}

func (r *vendaRepo) ListPorPeriodo(ctx context.Context, inicio, fim time.Time) ([]model.Venda, error) {
	var vendas []model.Venda
	err := r.db.WithContext(ctx).
		Preload("Itens").Preload("Pagamentos").
		Where("data_venda >= ? AND data_venda < ?", inicio, fim).
		Order("data_venda ASC").
		Find(&vendas).Error
	return vendas, err
}
