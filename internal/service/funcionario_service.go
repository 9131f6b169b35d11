package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/lobatoremulo/Restaurante-PDV/internal/apierror"
	"github.com/lobatoremulo/Restaurante-PDV/internal/dto"
	"github.com/lobatoremulo/Restaurante-PDV/internal/model"
	"github.com/lobatoremulo/Restaurante-PDV/internal/repository"
)

type FuncionarioService interface {
	Criar(ctx context.Context, req dto.CriarFuncionarioRequest) (*dto.FuncionarioResponse, error)
	Atualizar(ctx context.Context, id uuid.UUID, req dto.AtualizarFuncionarioRequest) (*dto.FuncionarioResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.FuncionarioResponse, error)
	List(ctx context.Context, apenasAtivos bool) ([]dto.FuncionarioResponse, error)
	Demitir(ctx context.Context, id uuid.UUID) error
}

type funcionarioService struct {
	repo repository.FuncionarioRepository
}

func NewFuncionarioService(repo repository.FuncionarioRepository) FuncionarioService {
	return &funcionarioService{repo: repo}
}

func (s *funcionarioService) Criar(ctx context.Context, req dto.CriarFuncionarioRequest) (*dto.FuncionarioResponse, error) {
	nivel := req.NivelAcesso
	if nivel == "" {
		nivel = model.NivelComum
	}
	f := &model.Funcionario{
		Nome:           req.Nome,
		Cpf:            req.Cpf,
		Rg:             req.Rg,
		Telefone:       req.Telefone,
		Email:          req.Email,
		Cargo:          req.Cargo,
		Setor:          req.Setor,
		NivelAcesso:    nivel,
		Status:         model.FuncionarioAtivo,
		DataAdmissao:   req.DataAdmissao,
		DataNascimento: req.DataNascimento,
		Salario:        req.Salario,
		Endereco:       req.Endereco,
		Cidade:         req.Cidade,
		Estado:         req.Estado,
		Cep:            req.Cep,
		Observacoes:    req.Observacoes,
		Ativo:          true,
	}
	if req.Senha != nil {
		if req.Email == nil {
			return nil, apierror.Invalid("Funcionário com senha exige email")
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Senha), 12)
		if err != nil {
			return nil, err
		}
		h := string(hash)
		f.SenhaHash = &h
	}

	if err := s.repo.Create(ctx, f); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apierror.Conflict("CPF ou email já cadastrado")
		}
		return nil, err
	}
	return funcionarioToResponse(f), nil
}

func (s *funcionarioService) Atualizar(ctx context.Context, id uuid.UUID, req dto.AtualizarFuncionarioRequest) (*dto.FuncionarioResponse, error) {
	f, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apierror.NotFound("Funcionário não encontrado")
	}

	if req.Nome != nil {
		f.Nome = *req.Nome
	}
	if req.Telefone != nil {
		f.Telefone = req.Telefone
	}
	if req.Email != nil {
		f.Email = req.Email
	}
	if req.Cargo != nil {
		f.Cargo = *req.Cargo
	}
	if req.Setor != nil {
		f.Setor = *req.Setor
	}
	if req.NivelAcesso != nil {
		f.NivelAcesso = *req.NivelAcesso
	}
	if req.Status != nil {
		f.Status = *req.Status
	}
	if req.Salario != nil {
		f.Salario = req.Salario
	}
	if req.Endereco != nil {
		f.Endereco = req.Endereco
	}
	if req.Cidade != nil {
		f.Cidade = req.Cidade
	}
	if req.Estado != nil {
		f.Estado = req.Estado
	}
	if req.Cep != nil {
		f.Cep = req.Cep
	}
	if req.Observacoes != nil {
		f.Observacoes = req.Observacoes
	}
	if req.Senha != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Senha), 12)
		if err != nil {
			return nil, err
		}
		h := string(hash)
		f.SenhaHash = &h
	}

	if err := s.repo.Update(ctx, f); err != nil {
		return nil, err
	}
	return funcionarioToResponse(f), nil
}

func (s *funcionarioService) GetByID(ctx context.Context, id uuid.UUID) (*dto.FuncionarioResponse, error) {
	f, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apierror.NotFound("Funcionário não encontrado")
	}
	return funcionarioToResponse(f), nil
}

func (s *funcionarioService) List(ctx context.Context, apenasAtivos bool) ([]dto.FuncionarioResponse, error) {
	funcs, err := s.repo.List(ctx, apenasAtivos)
	if err != nil {
		return nil, err
	}
	out := make([]dto.FuncionarioResponse, 0, len(funcs))
	for i := range funcs {
		out = append(out, *funcionarioToResponse(&funcs[i]))
	}
	return out, nil
}

// Demitir records the dismissal date and revokes access. The row survives for
// the ledger's operator references.
func (s *funcionarioService) Demitir(ctx context.Context, id uuid.UUID) error {
	f, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return apierror.NotFound("Funcionário não encontrado")
	}
	if !f.Ativo {
		return apierror.Conflict("Funcionário já está inativo")
	}
	agora := time.Now()
	f.Ativo = false
	f.Status = model.FuncionarioInativo
	f.DataDemissao = &agora
	f.SenhaHash = nil
	return s.repo.Update(ctx, f)
}

func funcionarioToResponse(f *model.Funcionario) *dto.FuncionarioResponse {
	return &dto.FuncionarioResponse{
		ID:             f.ID,
		Nome:           f.Nome,
		Cpf:            f.Cpf,
		Rg:             f.Rg,
		Telefone:       f.Telefone,
		Email:          f.Email,
		Cargo:          f.Cargo,
		Setor:          f.Setor,
		NivelAcesso:    f.NivelAcesso,
		Status:         f.Status,
		DataAdmissao:   f.DataAdmissao,
		DataDemissao:   f.DataDemissao,
		DataNascimento: f.DataNascimento,
		Salario:        f.Salario,
		Endereco:       f.Endereco,
		Cidade:         f.Cidade,
		Estado:         f.Estado,
		Cep:            f.Cep,
		Observacoes:    f.Observacoes,
		Ativo:          f.Ativo,
		CriadoEm:       f.CriadoEm,
	}
}
