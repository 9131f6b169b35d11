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

type ClienteService interface {
	Criar(ctx context.Context, req dto.CriarClienteRequest) (*dto.ClienteResponse, error)
	Atualizar(ctx context.Context, id uuid.UUID, req dto.AtualizarClienteRequest) (*dto.ClienteResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.ClienteResponse, error)
	List(ctx context.Context, apenasAtivos bool) ([]dto.ClienteResponse, error)
	ListComRestricao(ctx context.Context) ([]dto.ClienteResponse, error)
	AdicionarRestricao(ctx context.Context, clienteID uuid.UUID, req dto.CriarRestricaoRequest) (*dto.RestricaoResponse, error)
	RemoverRestricao(ctx context.Context, clienteID, restricaoID uuid.UUID, req dto.RemoverRestricaoRequest) error
	Desativar(ctx context.Context, id uuid.UUID) error
}

type clienteService struct {
	repo            repository.ClienteRepository
	funcionarioRepo repository.FuncionarioRepository
}

func NewClienteService(repo repository.ClienteRepository, funcionarioRepo repository.FuncionarioRepository) ClienteService {
	return &clienteService{repo: repo, funcionarioRepo: funcionarioRepo}
}

func (s *clienteService) Criar(ctx context.Context, req dto.CriarClienteRequest) (*dto.ClienteResponse, error) {
	limite := decimal.Zero
	if req.LimiteCredito != nil {
		limite = *req.LimiteCredito
	}
	c := &model.Cliente{
		Nome:           req.Nome,
		CpfCnpj:        req.CpfCnpj,
		Telefone:       req.Telefone,
		Email:          req.Email,
		Endereco:       req.Endereco,
		Cidade:         req.Cidade,
		Estado:         req.Estado,
		Cep:            req.Cep,
		DataNascimento: req.DataNascimento,
		LimiteCredito:  limite,
		Observacoes:    req.Observacoes,
		Ativo:          true,
	}
	if err := s.repo.Create(ctx, c); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apierror.Conflict("CPF/CNPJ já cadastrado")
		}
		return nil, err
	}
	return clienteToResponse(c), nil
}

func (s *clienteService) Atualizar(ctx context.Context, id uuid.UUID, req dto.AtualizarClienteRequest) (*dto.ClienteResponse, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apierror.NotFound("Cliente não encontrado")
	}

	if req.Nome != nil {
		c.Nome = *req.Nome
	}
	if req.Telefone != nil {
		c.Telefone = req.Telefone
	}
	if req.Email != nil {
		c.Email = req.Email
	}
	if req.Endereco != nil {
		c.Endereco = req.Endereco
	}
	if req.Cidade != nil {
		c.Cidade = req.Cidade
	}
	if req.Estado != nil {
		c.Estado = req.Estado
	}
	if req.Cep != nil {
		c.Cep = req.Cep
	}
	if req.DataNascimento != nil {
		c.DataNascimento = req.DataNascimento
	}
	if req.LimiteCredito != nil {
		c.LimiteCredito = *req.LimiteCredito
	}
	if req.Observacoes != nil {
		c.Observacoes = req.Observacoes
	}
	if req.Ativo != nil {
		c.Ativo = *req.Ativo
	}

	if err := s.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	return clienteToResponse(c), nil
}

func (s *clienteService) GetByID(ctx context.Context, id uuid.UUID) (*dto.ClienteResponse, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apierror.NotFound("Cliente não encontrado")
	}
	return clienteToResponse(c), nil
}

func (s *clienteService) List(ctx context.Context, apenasAtivos bool) ([]dto.ClienteResponse, error) {
	clientes, err := s.repo.List(ctx, apenasAtivos)
	if err != nil {
		return nil, err
	}
	return clientesToResponse(clientes), nil
}

func (s *clienteService) ListComRestricao(ctx context.Context) ([]dto.ClienteResponse, error) {
	clientes, err := s.repo.ListComRestricaoAtiva(ctx)
	if err != nil {
		return nil, err
	}
	return clientesToResponse(clientes), nil
}

func (s *clienteService) AdicionarRestricao(ctx context.Context, clienteID uuid.UUID, req dto.CriarRestricaoRequest) (*dto.RestricaoResponse, error) {
	if _, err := s.repo.FindByID(ctx, clienteID); err != nil {
		return nil, apierror.NotFound("Cliente não encontrado")
	}
	if _, err := s.funcionarioRepo.FindByID(ctx, req.ResponsavelID); err != nil {
		return nil, apierror.NotFound("Responsável não encontrado")
	}

	r := &model.ClienteRestricao{
		ClienteID:             clienteID,
		Motivo:                req.Motivo,
		Descricao:             req.Descricao,
		DataInclusao:          time.Now(),
		ResponsavelInclusaoID: req.ResponsavelID,
		Ativa:                 true,
	}
	if err := s.repo.CreateRestricao(ctx, r); err != nil {
		return nil, err
	}
	return restricaoToResponse(r), nil
}

// RemoverRestricao lifts a restriction without deleting the row: the entry
// stays for audit with who removed it and when.
func (s *clienteService) RemoverRestricao(ctx context.Context, clienteID, restricaoID uuid.UUID, req dto.RemoverRestricaoRequest) error {
	r, err := s.repo.FindRestricao(ctx, restricaoID)
	if err != nil {
		return apierror.NotFound("Restrição não encontrada")
	}
	if r.ClienteID != clienteID {
		return apierror.NotFound("Restrição não pertence ao cliente")
	}
	if !r.Ativa {
		return apierror.Conflict("Restrição já foi removida")
	}
	if _, err := s.funcionarioRepo.FindByID(ctx, req.ResponsavelID); err != nil {
		return apierror.NotFound("Responsável não encontrado")
	}

	agora := time.Now()
	r.Ativa = false
	r.DataRemocao = &agora
	r.ResponsavelRemocaoID = &req.ResponsavelID
	r.ObservacoesRemocao = req.Observacoes
	return s.repo.UpdateRestricao(ctx, r)
}

func (s *clienteService) Desativar(ctx context.Context, id uuid.UUID) error {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return apierror.NotFound("Cliente não encontrado")
	}
	c.Ativo = false
	return s.repo.Update(ctx, c)
}

func clientesToResponse(clientes []model.Cliente) []dto.ClienteResponse {
	out := make([]dto.ClienteResponse, 0, len(clientes))
	for i := range clientes {
		out = append(out, *clienteToResponse(&clientes[i]))
	}
	return out
}

func clienteToResponse(c *model.Cliente) *dto.ClienteResponse {
	restricoes := make([]dto.RestricaoResponse, 0, len(c.Restricoes))
	for i := range c.Restricoes {
		restricoes = append(restricoes, *restricaoToResponse(&c.Restricoes[i]))
	}
	return &dto.ClienteResponse{
		ID:                c.ID,
		Nome:              c.Nome,
		CpfCnpj:           c.CpfCnpj,
		Telefone:          c.Telefone,
		Email:             c.Email,
		Endereco:          c.Endereco,
		Cidade:            c.Cidade,
		Estado:            c.Estado,
		Cep:               c.Cep,
		DataNascimento:    c.DataNascimento,
		LimiteCredito:     c.LimiteCredito,
		Observacoes:       c.Observacoes,
		Ativo:             c.Ativo,
		TemRestricaoAtiva: c.TemRestricaoAtiva(),
		Restricoes:        restricoes,
		CriadoEm:          c.CriadoEm,
	}
}

func restricaoToResponse(r *model.ClienteRestricao) *dto.RestricaoResponse {
	return &dto.RestricaoResponse{
		ID:                    r.ID,
		ClienteID:             r.ClienteID,
		Motivo:                r.Motivo,
		Descricao:             r.Descricao,
		DataInclusao:          r.DataInclusao,
		DataRemocao:           r.DataRemocao,
		ResponsavelInclusaoID: r.ResponsavelInclusaoID,
		ResponsavelRemocaoID:  r.ResponsavelRemocaoID,
		ObservacoesRemocao:    r.ObservacoesRemocao,
		Ativa:                 r.Ativa,
	}
}
