package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/lobatoremulo/Restaurante-PDV/internal/apierror"
	"github.com/lobatoremulo/Restaurante-PDV/internal/dto"
	"github.com/lobatoremulo/Restaurante-PDV/internal/model"
	"github.com/lobatoremulo/Restaurante-PDV/internal/repository"
)

type EscalaService interface {
	Criar(ctx context.Context, req dto.CriarEscalaRequest) (*dto.EscalaResponse, error)
	Atualizar(ctx context.Context, id uuid.UUID, req dto.AtualizarEscalaRequest) (*dto.EscalaResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.EscalaResponse, error)
	ListPorFuncionario(ctx context.Context, funcionarioID uuid.UUID, inicio, fim time.Time) ([]dto.EscalaResponse, error)
	ListPorData(ctx context.Context, dia time.Time) ([]dto.EscalaResponse, error)
	Desativar(ctx context.Context, id uuid.UUID) error
}

type escalaService struct {
	repo            repository.EscalaRepository
	funcionarioRepo repository.FuncionarioRepository
}

func NewEscalaService(repo repository.EscalaRepository, funcionarioRepo repository.FuncionarioRepository) EscalaService {
	return &escalaService{repo: repo, funcionarioRepo: funcionarioRepo}
}

func (s *escalaService) Criar(ctx context.Context, req dto.CriarEscalaRequest) (*dto.EscalaResponse, error) {
	f, err := s.funcionarioRepo.FindByID(ctx, req.FuncionarioID)
	if err != nil {
		return nil, apierror.NotFound("Funcionário não encontrado")
	}
	if !f.Ativo {
		return nil, apierror.Invalid("Funcionário inativo não pode ser escalado")
	}
	if req.HoraFim <= req.HoraInicio {
		return nil, apierror.Invalid("Hora final deve ser posterior à hora inicial")
	}

	conflito, err := s.repo.ExisteConflito(ctx, req.FuncionarioID, req.DataEscala, req.HoraInicio, req.HoraFim, nil)
	if err != nil {
		return nil, err
	}
	if conflito {
		return nil, apierror.Conflict("Funcionário já possui escala no horário")
	}

	e := &model.EscalaTrabalho{
		FuncionarioID: req.FuncionarioID,
		DataEscala:    req.DataEscala,
		Turno:         req.Turno,
		HoraInicio:    req.HoraInicio,
		HoraFim:       req.HoraFim,
		Observacoes:   req.Observacoes,
		Ativo:         true,
	}
	if err := s.repo.Create(ctx, e); err != nil {
		return nil, err
	}
	e.Funcionario = f
	return escalaToResponse(e), nil
}

func (s *escalaService) Atualizar(ctx context.Context, id uuid.UUID, req dto.AtualizarEscalaRequest) (*dto.EscalaResponse, error) {
	e, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apierror.NotFound("Escala não encontrada")
	}

	if req.DataEscala != nil {
		e.DataEscala = *req.DataEscala
	}
	if req.Turno != nil {
		e.Turno = *req.Turno
	}
	if req.HoraInicio != nil {
		e.HoraInicio = *req.HoraInicio
	}
	if req.HoraFim != nil {
		e.HoraFim = *req.HoraFim
	}
	if req.Observacoes != nil {
		e.Observacoes = req.Observacoes
	}
	if req.Ativo != nil {
		e.Ativo = *req.Ativo
	}
	if e.HoraFim <= e.HoraInicio {
		return nil, apierror.Invalid("Hora final deve ser posterior à hora inicial")
	}

	if e.Ativo {
		conflito, err := s.repo.ExisteConflito(ctx, e.FuncionarioID, e.DataEscala, e.HoraInicio, e.HoraFim, &e.ID)
		if err != nil {
			return nil, err
		}
		if conflito {
			return nil, apierror.Conflict("Funcionário já possui escala no horário")
		}
	}

	if err := s.repo.Update(ctx, e); err != nil {
		return nil, err
	}
	return escalaToResponse(e), nil
}

func (s *escalaService) GetByID(ctx context.Context, id uuid.UUID) (*dto.EscalaResponse, error) {
	e, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apierror.NotFound("Escala não encontrada")
	}
	return escalaToResponse(e), nil
}

func (s *escalaService) ListPorFuncionario(ctx context.Context, funcionarioID uuid.UUID, inicio, fim time.Time) ([]dto.EscalaResponse, error) {
	escalas, err := s.repo.ListPorFuncionario(ctx, funcionarioID, inicio, fim)
	if err != nil {
		return nil, err
	}
	return escalasToResponse(escalas), nil
}

func (s *escalaService) ListPorData(ctx context.Context, dia time.Time) ([]dto.EscalaResponse, error) {
	escalas, err := s.repo.ListPorData(ctx, dia)
	if err != nil {
		return nil, err
	}
	return escalasToResponse(escalas), nil
}

func (s *escalaService) Desativar(ctx context.Context, id uuid.UUID) error {
	e, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return apierror.NotFound("Escala não encontrada")
	}
	if !e.Ativo {
		return apierror.Conflict("Escala já está inativa")
	}
	e.Ativo = false
	return s.repo.Update(ctx, e)
}

func escalasToResponse(escalas []model.EscalaTrabalho) []dto.EscalaResponse {
	out := make([]dto.EscalaResponse, 0, len(escalas))
	for i := range escalas {
		out = append(out, *escalaToResponse(&escalas[i]))
	}
	return out
}

func escalaToResponse(e *model.EscalaTrabalho) *dto.EscalaResponse {
	nome := ""
	if e.Funcionario != nil {
		nome = e.Funcionario.Nome
	}
	return &dto.EscalaResponse{
		ID:              e.ID,
		FuncionarioID:   e.FuncionarioID,
		FuncionarioNome: nome,
		DataEscala:      e.DataEscala,
		Turno:           e.Turno,
		HoraInicio:      e.HoraInicio,
		HoraFim:         e.HoraFim,
		Observacoes:     e.Observacoes,
		Ativo:           e.Ativo,
	}
}
