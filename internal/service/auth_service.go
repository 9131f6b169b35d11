package service

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/lobatoremulo/Restaurante-PDV/internal/apierror"
	"github.com/lobatoremulo/Restaurante-PDV/internal/config"
	"github.com/lobatoremulo/Restaurante-PDV/internal/dto"
	"github.com/lobatoremulo/Restaurante-PDV/internal/model"
	"github.com/lobatoremulo/Restaurante-PDV/internal/repository"
)

type AuthService interface {
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
	Refresh(ctx context.Context, refreshToken string) (*dto.LoginResponse, error)
}

type authService struct {
	repo repository.FuncionarioRepository
	cfg  *config.Config
}

func NewAuthService(repo repository.FuncionarioRepository, cfg *config.Config) AuthService {
	return &authService{repo: repo, cfg: cfg}
}

func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	f, err := s.repo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, apierror.Invalid("Credenciais inválidas")
	}
	if !f.Ativo || f.Status != model.FuncionarioAtivo || f.SenhaHash == nil {
		return nil, apierror.Invalid("Credenciais inválidas")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(*f.SenhaHash), []byte(req.Senha)); err != nil {
		return nil, apierror.Invalid("Credenciais inválidas")
	}
	return s.emitirTokens(f)
}

func (s *authService) Refresh(ctx context.Context, refreshToken string) (*dto.LoginResponse, error) {
	token, err := jwt.Parse(refreshToken, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(s.cfg.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, apierror.Invalid("Refresh token inválido ou expirado")
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, apierror.Invalid("Token mal formado")
	}
	idStr, ok := claims["funcionario_id"].(string)
	if !ok {
		return nil, apierror.Invalid("Token mal formado")
	}
	id, err := uuid.Parse(idStr)
	if err != nil {
		return nil, apierror.Invalid("Token mal formado")
	}

	f, err := s.repo.FindByID(ctx, id)
	if err != nil || !f.Ativo {
		return nil, apierror.Invalid("Funcionário não encontrado ou inativo")
	}
	return s.emitirTokens(f)
}

func (s *authService) emitirTokens(f *model.Funcionario) (*dto.LoginResponse, error) {
	expiraEm := time.Now().Add(time.Duration(s.cfg.JWTExpirationHours) * time.Hour)
	access, err := s.gerarToken(f, expiraEm)
	if err != nil {
		return nil, err
	}
	refresh, err := s.gerarToken(f, time.Now().Add(time.Duration(s.cfg.JWTRefreshHours)*time.Hour))
	if err != nil {
		return nil, err
	}

	email := ""
	if f.Email != nil {
		email = *f.Email
	}
	return &dto.LoginResponse{
		Token:        access,
		RefreshToken: refresh,
		ExpiraEm:     expiraEm,
		Funcionario: dto.FuncionarioResumido{
			ID:          f.ID,
			Nome:        f.Nome,
			Email:       email,
			Cargo:       f.Cargo,
			NivelAcesso: f.NivelAcesso,
		},
	}, nil
}

func (s *authService) gerarToken(f *model.Funcionario, expiraEm time.Time) (string, error) {
	claims := jwt.MapClaims{
		"funcionario_id": f.ID.String(),
		"nome":           f.Nome,
		"nivel_acesso":   f.NivelAcesso,
		"exp":            expiraEm.Unix(),
		"iat":            time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}
