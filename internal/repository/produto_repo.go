package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/lobatoremulo/Restaurante-PDV/internal/model"
)

type ProdutoRepository interface {
	Create(ctx context.Context, p *model.Produto) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Produto, error)
	FindByCodigoBarras(ctx context.Context, codigo string) (*model.Produto, error)
	Update(ctx context.Context, p *model.Produto) error
	List(ctx context.Context, tipo string, apenasAtivos bool) ([]model.Produto, error)
	ListEstoqueBaixo(ctx context.Context) ([]model.Produto, error)
	// DescontarEstoque decrements stock atomically and fails when the product
	// is stock-tracked and has less than qtd on hand (zero rows affected).
	DescontarEstoque(ctx context.Context, tx *gorm.DB, produtoID uuid.UUID, qtd decimal.Decimal) (bool, error)
	ReporEstoque(ctx context.Context, tx *gorm.DB, produtoID uuid.UUID, qtd decimal.Decimal) error
	CreateMovimentoEstoque(ctx context.Context, tx *gorm.DB, m *model.MovimentoEstoque) error
	ListMovimentosEstoque(ctx context.Context, produtoID uuid.UUID) ([]model.MovimentoEstoque, error)
}

type produtoRepo struct{ db *gorm.DB }

func NewProdutoRepository(db *gorm.DB) ProdutoRepository { return &produtoRepo{db: db} }

func (r *produtoRepo) Create(ctx context.Context, p *model.Produto) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *produtoRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Produto, error) {
	var p model.Produto
	err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error
	return &p, err
}

func (r *produtoRepo) FindByCodigoBarras(ctx context.Context, codigo string) (*model.Produto, error) {
	var p model.Produto
	err := r.db.WithContext(ctx).Where("codigo_barras = ?", codigo).First(&p).Error
	return &p, err
}

func (r *produtoRepo) Update(ctx context.Context, p *model.Produto) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *produtoRepo) List(ctx context.Context, tipo string, apenasAtivos bool) ([]model.Produto, error) {
	var produtos []model.Produto
	q := r.db.WithContext(ctx).Model(&model.Produto{})
	if tipo != "" {
		q = q.Where("tipo = ?", tipo)
	}
	if apenasAtivos {
		q = q.Where("ativo = true")
	}
	err := q.Order("nome ASC").Find(&produtos).Error
	return produtos, err
}

func (r *produtoRepo) ListEstoqueBaixo(ctx context.Context) ([]model.Produto, error) {
	var produtos []model.Produto
	err := r.db.WithContext(ctx).
		Where("ativo = true AND controla_nao_estoque = false AND estoque_atual <= estoque_minimo").
		Order("nome ASC").
		Find(&produtos).Error
	return produtos, err
}

func (r *produtoRepo) DescontarEstoque(ctx context.Context, tx *gorm.DB, produtoID uuid.UUID, qtd decimal.Decimal) (bool, error) {
	if tx == nil {
		tx = r.db
	}
	// Non-tracked products always succeed without touching the row.
	var controla bool
	err := tx.WithContext(ctx).Model(&model.Produto{}).
		Where("id = ?", produtoID).
		Select("controla_nao_estoque").Scan(&controla).Error
	if err != nil {
		return false, err
	}
	if controla {
		return true, nil
	}
	res := tx.WithContext(ctx).Exec(
		"UPDATE produtos SET estoque_atual = estoque_atual - ? WHERE id = ? AND estoque_atual >= ?",
		qtd, produtoID, qtd)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func (r *produtoRepo) ReporEstoque(ctx context.Context, tx *gorm.DB, produtoID uuid.UUID, qtd decimal.Decimal) error {
	if tx == nil {
		tx = r.db
	}
	return tx.WithContext(ctx).Exec(
		"UPDATE produtos SET estoque_atual = estoque_atual + ? WHERE id = ? AND controla_nao_estoque = false",
		qtd, produtoID).Error
}

func (r *produtoRepo) CreateMovimentoEstoque(ctx context.Context, tx *gorm.DB, m *model.MovimentoEstoque) error {
	if tx == nil {
		tx = r.db
	}
	return tx.WithContext(ctx).Create(m).Error
}

func (r *produtoRepo) ListMovimentosEstoque(ctx context.Context, produtoID uuid.UUID) ([]model.MovimentoEstoque, error) {
	var movs []model.MovimentoEstoque
	err := r.db.WithContext(ctx).
		Where("produto_id = ?", produtoID).
		Order("criado_em DESC").
		Find(&movs).Error
	return movs, err
}
