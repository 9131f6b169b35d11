package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/lobatoremulo/Restaurante-PDV/internal/model"
)

type ComandaRepository interface {
	Create(ctx context.Context, c *model.Comanda) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Comanda, error)
	FindByIDComItens(ctx context.Context, id uuid.UUID) (*model.Comanda, error)
	FindByNumero(ctx context.Context, numero string) (*model.Comanda, error)
	Update(ctx context.Context, tx *gorm.DB, c *model.Comanda) error
	UpdateStatus(ctx context.Context, tx *gorm.DB, id uuid.UUID, status string) error
	ListAbertas(ctx context.Context) ([]model.Comanda, error)
	// ListPendentesPagamento returns fechada comandas with no finalized venda.
	ListPendentesPagamento(ctx context.Context) ([]model.Comanda, error)
	CreateItem(ctx context.Context, item *model.ItemComanda) error
	FindItem(ctx context.Context, itemID uuid.UUID) (*model.ItemComanda, error)
	UpdateItem(ctx context.Context, item *model.ItemComanda) error
	DeleteItem(ctx context.Context, itemID uuid.UUID) error
	NextNumero(ctx context.Context) (string, error)
}

type comandaRepo struct{ db *gorm.DB }

func NewComandaRepository(db *gorm.DB) ComandaRepository { return &comandaRepo{db: db} }

func (r *comandaRepo) Create(ctx context.Context, c *model.Comanda) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *comandaRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Comanda, error) {
	var c model.Comanda
	err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error
	return &c, err
}

func (r *comandaRepo) FindByIDComItens(ctx context.Context, id uuid.UUID) (*model.Comanda, error) {
	var c model.Comanda
	err := r.db.WithContext(ctx).Preload("Itens.Produto").First(&c, "id = ?", id).Error
	return &c, err
}

func (r *comandaRepo) FindByNumero(ctx context.Context, numero string) (*model.Comanda, error) {
	var c model.Comanda
	err := r.db.WithContext(ctx).Preload("Itens.Produto").
		Where("numero_comanda = ?", numero).First(&c).Error
	return &c, err
}

func (r *comandaRepo) Update(ctx context.Context, tx *gorm.DB, c *model.Comanda) error {
	if tx == nil {
		tx = r.db
	}
	return tx.WithContext(ctx).Save(c).Error
}

func (r *comandaRepo) UpdateStatus(ctx context.Context, tx *gorm.DB, id uuid.UUID, status string) error {
	if tx == nil {
		tx = r.db
	}
	return tx.WithContext(ctx).Model(&model.Comanda{}).
		Where("id = ?", id).Update("status", status).Error
}

func (r *comandaRepo) ListAbertas(ctx context.Context) ([]model.Comanda, error) {
	var comandas []model.Comanda
	err := r.db.WithContext(ctx).Preload("Itens.Produto").
		Where("status = ?", model.ComandaAberta).
		Order("data_abertura ASC").
		Find(&comandas).Error
	return comandas, err
}

func (r *comandaRepo) ListPendentesPagamento(ctx context.Context) ([]model.Comanda, error) {
	var comandas []model.Comanda
	err := r.db.WithContext(ctx).Preload("Itens.Produto").
		Where("status = ?", model.ComandaFechada).
		Where(`NOT EXISTS (
			SELECT 1 FROM vendas v
			WHERE v.comanda_id = comandas.id AND v.status = ?)`, model.VendaFinalizada).
		Order("data_fechamento ASC").
		Find(&comandas).Error
	return comandas, err
}

func (r *comandaRepo) CreateItem(ctx context.Context, item *model.ItemComanda) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *comandaRepo) FindItem(ctx context.Context, itemID uuid.UUID) (*model.ItemComanda, error) {
	var item model.ItemComanda
	err := r.db.WithContext(ctx).First(&item, "id = ?", itemID).Error
	return &item, err
}

func (r *comandaRepo) UpdateItem(ctx context.Context, item *model.ItemComanda) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *comandaRepo) DeleteItem(ctx context.Context, itemID uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.ItemComanda{}, "id = ?", itemID).Error
}

func (r *comandaRepo) NextNumero(ctx context.Context) (string, error) {
	var num string
	err := r.db.WithContext(ctx).
		Raw("SELECT 'CMD' || LPAD(nextval('comandas_numero_seq')::text, 6, '0')").
		Scan(&num).Error
	return num, err
}
