package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/lobatoremulo/Restaurante-PDV/internal/apierror"
	"github.com/lobatoremulo/Restaurante-PDV/internal/dto"
	"github.com/lobatoremulo/Restaurante-PDV/internal/model"
	"github.com/lobatoremulo/Restaurante-PDV/internal/repository"
)

type MovimentoCaixaService interface {
	Adicionar(ctx context.Context, req dto.MovimentoCaixaRequest) (*dto.MovimentoCaixaResponse, error)
	RegistrarSangria(ctx context.Context, req dto.SangriaRequest) (*dto.MovimentoCaixaResponse, error)
	RegistrarSuprimento(ctx context.Context, req dto.SuprimentoRequest) (*dto.MovimentoCaixaResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.MovimentoCaixaResponse, error)
	ListByCaixa(ctx context.Context, caixaID uuid.UUID) ([]dto.MovimentoCaixaResponse, error)
	ListByCaixaETipo(ctx context.Context, caixaID uuid.UUID, tipo string) ([]dto.MovimentoCaixaResponse, error)
	ListByPeriodo(ctx context.Context, inicio, fim time.Time) ([]dto.MovimentoCaixaResponse, error)
	TotalPorTipo(ctx context.Context, caixaID uuid.UUID, tipo string) (decimal.Decimal, error)
}

type movimentoService struct {
	repo            repository.MovimentoCaixaRepository
	caixaRepo       repository.CaixaRepository
	vendaRepo       repository.VendaRepository
	funcionarioRepo repository.FuncionarioRepository
}

func NewMovimentoCaixaService(
	repo repository.MovimentoCaixaRepository,
	caixaRepo repository.CaixaRepository,
	vendaRepo repository.VendaRepository,
	funcionarioRepo repository.FuncionarioRepository,
) MovimentoCaixaService {
	return &movimentoService{
		repo:            repo,
		caixaRepo:       caixaRepo,
		vendaRepo:       vendaRepo,
		funcionarioRepo: funcionarioRepo,
	}
}

// Adicionar posts one movement to the open caixa. Ledger write and totals
// update commit together; a venda movement that duplicates an existing
// (caixa, venda) pair is rejected.
func (s *movimentoService) Adicionar(ctx context.Context, req dto.MovimentoCaixaRequest) (*dto.MovimentoCaixaResponse, error) {
	caixa, err := s.caixaRepo.FindAberto(ctx)
	if err != nil {
		return nil, apierror.Conflict("Nenhum caixa aberto")
	}
	if _, err := s.funcionarioRepo.FindByID(ctx, req.OperadorID); err != nil {
		return nil, apierror.NotFound("Operador não encontrado")
	}
	if req.VendaID != nil {
		if _, err := s.vendaRepo.FindByID(ctx, *req.VendaID); err != nil {
			return nil, apierror.NotFound("Venda não encontrada")
		}
	}

	if req.TipoMovimento == model.MovimentoVenda {
		if req.VendaID == nil {
			return nil, apierror.Invalid("Movimento de venda exige venda_id")
		}
		if req.FormaPagamento == nil {
			return nil, apierror.Invalid("Movimento de venda exige forma_pagamento")
		}
		existe, err := s.repo.ExisteMovimentoVenda(ctx, caixa.ID, *req.VendaID)
		if err != nil {
			return nil, err
		}
		if existe {
			return nil, apierror.Conflict("Venda já registrada neste caixa")
		}
	}

	mov := &model.MovimentoCaixa{
		CaixaID:         caixa.ID,
		DataMovimento:   time.Now(),
		TipoMovimento:   req.TipoMovimento,
		Valor:           req.Valor,
		Descricao:       req.Descricao,
		Observacoes:     req.Observacoes,
		FormaPagamento:  req.FormaPagamento,
		VendaID:         req.VendaID,
		OperadorID:      req.OperadorID,
		NumeroDocumento: req.NumeroDocumento,
	}

	err = runTx(ctx, s.caixaRepo.DB(), func(tx *gorm.DB) error {
		if err := s.repo.Create(ctx, tx, mov); err != nil {
			return err
		}
		return s.caixaRepo.AtualizarTotais(ctx, tx, caixa.ID)
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apierror.Conflict("Venda já registrada neste caixa")
		}
		return nil, err
	}
	return movimentoToResponse(mov), nil
}

func (s *movimentoService) RegistrarSangria(ctx context.Context, req dto.SangriaRequest) (*dto.MovimentoCaixaResponse, error) {
	return s.Adicionar(ctx, dto.MovimentoCaixaRequest{
		TipoMovimento:   model.MovimentoSangria,
		Valor:           req.Valor,
		Descricao:       req.Descricao,
		Observacoes:     req.Observacoes,
		OperadorID:      req.OperadorID,
		NumeroDocumento: req.NumeroDocumento,
	})
}

func (s *movimentoService) RegistrarSuprimento(ctx context.Context, req dto.SuprimentoRequest) (*dto.MovimentoCaixaResponse, error) {
	return s.Adicionar(ctx, dto.MovimentoCaixaRequest{
		TipoMovimento:   model.MovimentoSuprimento,
		Valor:           req.Valor,
		Descricao:       req.Descricao,
		Observacoes:     req.Observacoes,
		OperadorID:      req.OperadorID,
		NumeroDocumento: req.NumeroDocumento,
	})
}

func (s *movimentoService) GetByID(ctx context.Context, id uuid.UUID) (*dto.MovimentoCaixaResponse, error) {
	mov, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apierror.NotFound("Movimento não encontrado")
	}
	return movimentoToResponse(mov), nil
}

func (s *movimentoService) ListByCaixa(ctx context.Context, caixaID uuid.UUID) ([]dto.MovimentoCaixaResponse, error) {
	movs, err := s.repo.ListByCaixa(ctx, caixaID)
	if err != nil {
		return nil, err
	}
	return movimentosToResponse(movs), nil
}

func (s *movimentoService) ListByCaixaETipo(ctx context.Context, caixaID uuid.UUID, tipo string) ([]dto.MovimentoCaixaResponse, error) {
	movs, err := s.repo.ListByCaixaETipo(ctx, caixaID, tipo)
	if err != nil {
		return nil, err
	}
	return movimentosToResponse(movs), nil
}

func (s *movimentoService) ListByPeriodo(ctx context.Context, inicio, fim time.Time) ([]dto.MovimentoCaixaResponse, error) {
	if fim.Before(inicio) {
		return nil, apierror.Invalid("Data final anterior à data inicial")
	}
	movs, err := s.repo.ListPorPeriodo(ctx, inicio, fim)
	if err != nil {
		return nil, err
	}
	return movimentosToResponse(movs), nil
}

func (s *movimentoService) TotalPorTipo(ctx context.Context, caixaID uuid.UUID, tipo string) (decimal.Decimal, error) {
	return s.repo.TotalPorTipo(ctx, nil, caixaID, tipo)
}

func movimentosToResponse(movs []model.MovimentoCaixa) []dto.MovimentoCaixaResponse {
	out := make([]dto.MovimentoCaixaResponse, 0, len(movs))
	for i := range movs {
		out = append(out, *movimentoToResponse(&movs[i]))
	}
	return out
}
