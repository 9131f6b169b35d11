package dto

import (
	"time"

	"github.com/google/uuid"
)

type LoginRequest struct {
	Email string `json:"email" validate:"required,email"`
	Senha string `json:"senha" validate:"required,min=6"`
}

type LoginResponse struct {
	Token        string              `json:"token"`
	RefreshToken string              `json:"refresh_token"`
	ExpiraEm     time.Time           `json:"expira_em"`
	Funcionario  FuncionarioResumido `json:"funcionario"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type FuncionarioResumido struct {
	ID          uuid.UUID `json:"id"`
	Nome        string    `json:"nome"`
	Email       string    `json:"email"`
	Cargo       string    `json:"cargo"`
	NivelAcesso string    `json:"nivel_acesso"`
}
