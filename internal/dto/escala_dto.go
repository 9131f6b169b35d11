package dto

import (
	"time"

	"github.com/google/uuid"
)

type CriarEscalaRequest struct {
	FuncionarioID uuid.UUID `json:"funcionario_id" validate:"required"`
	DataEscala    time.Time `json:"data_escala" validate:"required"`
	Turno         string    `json:"turno" validate:"required,oneof=manha tarde noite integral"`
	HoraInicio    string    `json:"hora_inicio" validate:"required,len=5"`
	HoraFim       string    `json:"hora_fim" validate:"required,len=5"`
	Observacoes   *string   `json:"observacoes" validate:"omitempty,max=200"`
}

type AtualizarEscalaRequest struct {
	DataEscala  *time.Time `json:"data_escala"`
	Turno       *string    `json:"turno" validate:"omitempty,oneof=manha tarde noite integral"`
	HoraInicio  *string    `json:"hora_inicio" validate:"omitempty,len=5"`
	HoraFim     *string    `json:"hora_fim" validate:"omitempty,len=5"`
	Observacoes *string    `json:"observacoes" validate:"omitempty,max=200"`
	Ativo       *bool      `json:"ativo"`
}

type EscalaResponse struct {
	ID              uuid.UUID `json:"id"`
	FuncionarioID   uuid.UUID `json:"funcionario_id"`
	FuncionarioNome string    `json:"funcionario_nome,omitempty"`
	DataEscala      time.Time `json:"data_escala"`
	Turno           string    `json:"turno"`
	HoraInicio      string    `json:"hora_inicio"`
	HoraFim         string    `json:"hora_fim"`
	Observacoes     *string   `json:"observacoes,omitempty"`
	Ativo           bool      `json:"ativo"`
}
