package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/lobatoremulo/Restaurante-PDV/internal/model"
)

type ClienteRepository interface {
	Create(ctx context.Context, c *model.Cliente) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Cliente, error)
	FindByCpfCnpj(ctx context.Context, cpfCnpj string) (*model.Cliente, error)
	Update(ctx context.Context, c *model.Cliente) error
	List(ctx context.Context, apenasAtivos bool) ([]model.Cliente, error)
	ListComRestricaoAtiva(ctx context.Context) ([]model.Cliente, error)
	CreateRestricao(ctx context.Context, r *model.ClienteRestricao) error
	FindRestricao(ctx context.Context, id uuid.UUID) (*model.ClienteRestricao, error)
	UpdateRestricao(ctx context.Context, r *model.ClienteRestricao) error
}

type clienteRepo struct{ db *gorm.DB }

func NewClienteRepository(db *gorm.DB) ClienteRepository { return &clienteRepo{db: db} }

func (r *clienteRepo) Create(ctx context.Context, c *model.Cliente) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *clienteRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Cliente, error) {
	var c model.Cliente
	err := r.db.WithContext(ctx).Preload("Restricoes").First(&c, "id = ?", id).Error
	return &c, err
}

func (r *clienteRepo) FindByCpfCnpj(ctx context.Context, cpfCnpj string) (*model.Cliente, error) {
	var c model.Cliente
	err := r.db.WithContext(ctx).Preload("Restricoes").
		Where("cpf_cnpj = ?", cpfCnpj).First(&c).Error
	return &c, err
}

func (r *clienteRepo) Update(ctx context.Context, c *model.Cliente) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *clienteRepo) List(ctx context.Context, apenasAtivos bool) ([]model.Cliente, error) {
	var clientes []model.Cliente
	q := r.db.WithContext(ctx).Preload("Restricoes")
	if apenasAtivos {
		q = q.Where("ativo = true")
	}
	err := q.Order("nome ASC").Find(&clientes).Error
	return clientes, err
}

func (r *clienteRepo) ListComRestricaoAtiva(ctx context.Context) ([]model.Cliente, error) {
	var clientes []model.Cliente
	err := r.db.WithContext(ctx).Preload("Restricoes").
		Where(`EXISTS (
			SELECT 1 FROM clientes_restricoes cr
			WHERE cr.cliente_id = clientes.id AND cr.ativa = true)`).
		Order("nome ASC").
		Find(&clientes).Error
	return clientes, err
}

func (r *clienteRepo) CreateRestricao(ctx context.Context, restricao *model.ClienteRestricao) error {
	return r.db.WithContext(ctx).Create(restricao).Error
}

func (r *clienteRepo) FindRestricao(ctx context.Context, id uuid.UUID) (*model.ClienteRestricao, error) {
	var restricao model.ClienteRestricao
	err := r.db.WithContext(ctx).First(&restricao, "id = ?", id).Error
	return &restricao, err
}

func (r *clienteRepo) UpdateRestricao(ctx context.Context, restricao *model.ClienteRestricao) error {
	return r.db.WithContext(ctx).Save(restricao).Error
}
