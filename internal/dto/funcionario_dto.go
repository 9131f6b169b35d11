package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CriarFuncionarioRequest struct {
	Nome           string           `json:"nome" validate:"required,max=100"`
	Cpf            string           `json:"cpf" validate:"required,max=14"`
	Rg             *string          `json:"rg" validate:"omitempty,max=15"`
	Telefone       *string          `json:"telefone" validate:"omitempty,max=20"`
	Email          *string          `json:"email" validate:"omitempty,email"`
	Cargo          string           `json:"cargo" validate:"required,max=100"`
	Setor          string           `json:"setor" validate:"required,max=100"`
	NivelAcesso    string           `json:"nivel_acesso" validate:"omitempty,oneof=comum gerente admin"`
	Senha          *string          `json:"senha" validate:"omitempty,min=6"`
	DataAdmissao   *time.Time       `json:"data_admissao"`
	DataNascimento *time.Time       `json:"data_nascimento"`
	Salario        *decimal.Decimal `json:"salario" validate:"omitempty,min=0"`
	Endereco       *string          `json:"endereco" validate:"omitempty,max=200"`
	Cidade         *string          `json:"cidade" validate:"omitempty,max=50"`
	Estado         *string          `json:"estado" validate:"omitempty,len=2"`
	Cep            *string          `json:"cep" validate:"omitempty,max=9"`
	Observacoes    *string          `json:"observacoes" validate:"omitempty,max=500"`
}

type AtualizarFuncionarioRequest struct {
	Nome        *string          `json:"nome" validate:"omitempty,max=100"`
	Telefone    *string          `json:"telefone" validate:"omitempty,max=20"`
	Email       *string          `json:"email" validate:"omitempty,email"`
	Cargo       *string          `json:"cargo" validate:"omitempty,max=100"`
	Setor       *string          `json:"setor" validate:"omitempty,max=100"`
	NivelAcesso *string          `json:"nivel_acesso" validate:"omitempty,oneof=comum gerente admin"`
	Status      *string          `json:"status" validate:"omitempty,oneof=ativo inativo ferias afastado"`
	Senha       *string          `json:"senha" validate:"omitempty,min=6"`
	Salario     *decimal.Decimal `json:"salario" validate:"omitempty,min=0"`
	Endereco    *string          `json:"endereco" validate:"omitempty,max=200"`
	Cidade      *string          `json:"cidade" validate:"omitempty,max=50"`
	Estado      *string          `json:"estado" validate:"omitempty,len=2"`
	Cep         *string          `json:"cep" validate:"omitempty,max=9"`
	Observacoes *string          `json:"observacoes" validate:"omitempty,max=500"`
}

type FuncionarioResponse struct {
	ID             uuid.UUID        `json:"id"`
	Nome           string           `json:"nome"`
	Cpf            string           `json:"cpf"`
	Rg             *string          `json:"rg,omitempty"`
	Telefone       *string          `json:"telefone,omitempty"`
	Email          *string          `json:"email,omitempty"`
	Cargo          string           `json:"cargo"`
	Setor          string           `json:"setor"`
	NivelAcesso    string           `json:"nivel_acesso"`
	Status         string           `json:"status"`
	DataAdmissao   *time.Time       `json:"data_admissao,omitempty"`
	DataDemissao   *time.Time       `json:"data_demissao,omitempty"`
	DataNascimento *time.Time       `json:"data_nascimento,omitempty"`
	Salario        *decimal.Decimal `json:"salario,omitempty"`
	Endereco       *string          `json:"endereco,omitempty"`
	Cidade         *string          `json:"cidade,omitempty"`
	Estado         *string          `json:"estado,omitempty"`
	Cep            *string          `json:"cep,omitempty"`
	Observacoes    *string          `json:"observacoes,omitempty"`
	Ativo          bool             `json:"ativo"`
	CriadoEm       time.Time        `json:"criado_em"`
}
