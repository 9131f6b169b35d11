package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/lobatoremulo/Restaurante-PDV/internal/model"
)

type EscalaRepository interface {
	Create(ctx context.Context, e *model.EscalaTrabalho) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.EscalaTrabalho, error)
	Update(ctx context.Context, e *model.EscalaTrabalho) error
	ListPorFuncionario(ctx context.Context, funcionarioID uuid.UUID, inicio, fim time.Time) ([]model.EscalaTrabalho, error)
	ListPorData(ctx context.Context, dia time.Time) ([]model.EscalaTrabalho, error)
	// ExisteConflito reports an active shift for the employee on the same day
	// whose time window overlaps [horaInicio, horaFim).
	ExisteConflito(ctx context.Context, funcionarioID uuid.UUID, dia time.Time, horaInicio, horaFim string, ignorarID *uuid.UUID) (bool, error)
}

type escalaRepo struct{ db *gorm.DB }

func NewEscalaRepository(db *gorm.DB) EscalaRepository { return &escalaRepo{db: db} }

func (r *escalaRepo) Create(ctx context.Context, e *model.EscalaTrabalho) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *escalaRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.EscalaTrabalho, error) {
	var e model.EscalaTrabalho
	err := r.db.WithContext(ctx).Preload("Funcionario").First(&e, "id = ?", id).Error
	return &e, err
}

func (r *escalaRepo) Update(ctx context.Context, e *model.EscalaTrabalho) error {
	return r.db.WithContext(ctx).Save(e).Error
}

func (r *escalaRepo) ListPorFuncionario(ctx context.Context, funcionarioID uuid.UUID, inicio, fim time.Time) ([]model.EscalaTrabalho, error) {
	var escalas []model.EscalaTrabalho
	err := r.db.WithContext(ctx).
		Where("funcionario_id = ? AND data_escala >= ? AND data_escala <= ? AND ativo = true",
			funcionarioID, inicio, fim).
		Order("data_escala ASC, hora_inicio ASC").
		Find(&escalas).Error
	return escalas, err
}

func (r *escalaRepo) ListPorData(ctx context.Context, dia time.Time) ([]model.EscalaTrabalho, error) {
	var escalas []model.EscalaTrabalho
	err := r.db.WithContext(ctx).Preload("Funcionario").
		Where("data_escala = ? AND ativo = true", dia.Format("2006-01-02")).
		Order("hora_inicio ASC").
		Find(&escalas).Error
	return escalas, err
}

func (r *escalaRepo) ExisteConflito(ctx context.Context, funcionarioID uuid.UUID, dia time.Time, horaInicio, horaFim string, ignorarID *uuid.UUID) (bool, error) {
	var n int64
	q := r.db.WithContext(ctx).Model(&model.EscalaTrabalho{}).
		Where("funcionario_id = ? AND data_escala = ? AND ativo = true", funcionarioID, dia.Format("2006-01-02")).
		Where("hora_inicio < ? AND hora_fim > ?", horaFim, horaInicio)
	if ignorarID != nil {
		q = q.Where("id <> ?", *ignorarID)
	}
	err := q.Count(&n).Error
	return n > 0, err
}
