package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/lobatoremulo/Restaurante-PDV/internal/model"
)

type FuncionarioRepository interface {
	Create(ctx context.Context, f *model.Funcionario) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Funcionario, error)
	FindByEmail(ctx context.Context, email string) (*model.Funcionario, error)
	FindByCpf(ctx context.Context, cpf string) (*model.Funcionario, error)
	Update(ctx context.Context, f *model.Funcionario) error
	List(ctx context.Context, apenasAtivos bool) ([]model.Funcionario, error)
}

type funcionarioRepo struct{ db *gorm.DB }

func NewFuncionarioRepository(db *gorm.DB) FuncionarioRepository {
	return &funcionarioRepo{db: db}
}

func (r *funcionarioRepo) Create(ctx context.Context, f *model.Funcionario) error {
	return r.db.WithContext(ctx).Create(f).Error
}

func (r *funcionarioRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Funcionario, error) {
	var f model.Funcionario
	err := r.db.WithContext(ctx).First(&f, "id = ?", id).Error
	return &f, err
}

func (r *funcionarioRepo) FindByEmail(ctx context.Context, email string) (*model.Funcionario, error) {
	var f model.Funcionario
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&f).Error
	return &f, err
}

func (r *funcionarioRepo) FindByCpf(ctx context.Context, cpf string) (*model.Funcionario, error) {
	var f model.Funcionario
	err := r.db.WithContext(ctx).Where("cpf = ?", cpf).First(&f).Error
	return &f, err
}

func (r *funcionarioRepo) Update(ctx context.Context, f *model.Funcionario) error {
	return r.db.WithContext(ctx).Save(f).Error
}

func (r *funcionarioRepo) List(ctx context.Context, apenasAtivos bool) ([]model.Funcionario, error) {
	var funcs []model.Funcionario
	q := r.db.WithContext(ctx).Model(&model.Funcionario{})
	if apenasAtivos {
		q = q.Where("ativo = true")
	}
	err := q.Order("nome ASC").Find(&funcs).Error
	return funcs, err
}
