package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CriarClienteRequest struct {
	Nome           string           `json:"nome" validate:"required,max=100"`
	CpfCnpj        *string          `json:"cpf_cnpj" validate:"omitempty,max=14"`
	Telefone       *string          `json:"telefone" validate:"omitempty,max=20"`
	Email          *string          `json:"email" validate:"omitempty,email"`
	Endereco       *string          `json:"endereco" validate:"omitempty,max=200"`
	Cidade         *string          `json:"cidade" validate:"omitempty,max=50"`
	Estado         *string          `json:"estado" validate:"omitempty,len=2"`
	Cep            *string          `json:"cep" validate:"omitempty,max=9"`
	DataNascimento *time.Time       `json:"data_nascimento"`
	LimiteCredito  *decimal.Decimal `json:"limite_credito" validate:"omitempty,min=0"`
	Observacoes    *string          `json:"observacoes" validate:"omitempty,max=500"`
}

type AtualizarClienteRequest struct {
	Nome           *string          `json:"nome" validate:"omitempty,max=100"`
	Telefone       *string          `json:"telefone" validate:"omitempty,max=20"`
	Email          *string          `json:"email" validate:"omitempty,email"`
	Endereco       *string          `json:"endereco" validate:"omitempty,max=200"`
	Cidade         *string          `json:"cidade" validate:"omitempty,max=50"`
	Estado         *string          `json:"estado" validate:"omitempty,len=2"`
	Cep            *string          `json:"cep" validate:"omitempty,max=9"`
	DataNascimento *time.Time       `json:"data_nascimento"`
	LimiteCredito  *decimal.Decimal `json:"limite_credito" validate:"omitempty,min=0"`
	Observacoes    *string          `json:"observacoes" validate:"omitempty,max=500"`
	Ativo          *bool            `json:"ativo"`
}

type CriarRestricaoRequest struct {
	Motivo        string    `json:"motivo" validate:"required,oneof=inadimplencia comportamento_inadequado fraude_identificada solicitacao_cliente outros"`
	Descricao     string    `json:"descricao" validate:"required,max=500"`
	ResponsavelID uuid.UUID `json:"responsavel_id" validate:"required"`
}

type RemoverRestricaoRequest struct {
	ResponsavelID uuid.UUID `json:"responsavel_id" validate:"required"`
	Observacoes   *string   `json:"observacoes" validate:"omitempty,max=500"`
}

type RestricaoResponse struct {
	ID                    uuid.UUID  `json:"id"`
	ClienteID             uuid.UUID  `json:"cliente_id"`
	Motivo                string     `json:"motivo"`
	Descricao             string     `json:"descricao"`
	DataInclusao          time.Time  `json:"data_inclusao"`
	DataRemocao           *time.Time `json:"data_remocao,omitempty"`
	ResponsavelInclusaoID uuid.UUID  `json:"responsavel_inclusao_id"`
	ResponsavelRemocaoID  *uuid.UUID `json:"responsavel_remocao_id,omitempty"`
	ObservacoesRemocao    *string    `json:"observacoes_remocao,omitempty"`
	Ativa                 bool       `json:"ativa"`
}

type ClienteResponse struct {
	ID                uuid.UUID           `json:"id"`
	Nome              string              `json:"nome"`
	CpfCnpj           *string             `json:"cpf_cnpj,omitempty"`
	Telefone          *string             `json:"telefone,omitempty"`
	Email             *string             `json:"email,omitempty"`
	Endereco          *string             `json:"endereco,omitempty"`
	Cidade            *string             `json:"cidade,omitempty"`
	Estado            *string             `json:"estado,omitempty"`
	Cep               *string             `json:"cep,omitempty"`
	DataNascimento    *time.Time          `json:"data_nascimento,omitempty"`
	LimiteCredito     decimal.Decimal     `json:"limite_credito"`
	Observacoes       *string             `json:"observacoes,omitempty"`
	Ativo             bool                `json:"ativo"`
	TemRestricaoAtiva bool                `json:"tem_restricao_ativa"`
	Restricoes        []RestricaoResponse `json:"restricoes,omitempty"`
	CriadoEm          time.Time           `json:"criado_em"`
}
