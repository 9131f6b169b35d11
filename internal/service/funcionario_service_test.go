package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lobatoremulo/Restaurante-PDV/internal/dto"
	"github.com/lobatoremulo/Restaurante-PDV/internal/model"
	"github.com/lobatoremulo/Restaurante-PDV/internal/service"
)

func newFuncionarioFixture(t *testing.T) (service.FuncionarioService, *fakeFuncionarioRepo) {
	t.Helper()
	repo := newFakeFuncionarioRepo()
	return service.NewFuncionarioService(repo), repo
}

func TestCriarFuncionario(t *testing.T) {
	svc, _ := newFuncionarioFixture(t)

	resp, err := svc.Criar(context.Background(), dto.CriarFuncionarioRequest{
		Nome:  "Ana",
		Cpf:   "12312312312",
		Cargo: "Atendente",
		Setor: "salao",
	})
	require.NoError(t, err)
	assert.Equal(t, model.NivelComum, resp.NivelAcesso, "nível vazio assume comum")
	assert.Equal(t, model.FuncionarioAtivo, resp.Status)
	assert.True(t, resp.Ativo)
}

func TestCriarFuncionarioComSenhaSemEmail(t *testing.T) {
	svc, _ := newFuncionarioFixture(t)
	senha := "segredo1"

	_, err := svc.Criar(context.Background(), dto.CriarFuncionarioRequest{
		Nome:  "Ana",
		Cpf:   "12312312312",
		Cargo: "Atendente",
		Setor: "salao",
		Senha: &senha,
	})
	assert.ErrorContains(t, err, "Funcionário com senha exige email")
}

func TestCriarFuncionarioComLogin(t *testing.T) {
	svc, repo := newFuncionarioFixture(t)
	senha := "segredo1"
	email := "ana@restaurantepdv.com"

	resp, err := svc.Criar(context.Background(), dto.CriarFuncionarioRequest{
		Nome:        "Ana",
		Cpf:         "12312312312",
		Email:       &email,
		Cargo:       "Gerente",
		Setor:       "administrativo",
		NivelAcesso: model.NivelGerente,
		Senha:       &senha,
	})
	require.NoError(t, err)

	guardado, err := repo.FindByID(context.Background(), resp.ID)
	require.NoError(t, err)
	require.NotNil(t, guardado.SenhaHash)
	assert.NotEqual(t, senha, *guardado.SenhaHash, "senha nunca é guardada em claro")
}

func TestCriarFuncionarioCpfDuplicado(t *testing.T) {
	svc, _ := newFuncionarioFixture(t)
	req := dto.CriarFuncionarioRequest{
		Nome:  "Ana",
		Cpf:   "12312312312",
		Cargo: "Atendente",
		Setor: "salao",
	}
	_, err := svc.Criar(context.Background(), req)
	require.NoError(t, err)

	_, err = svc.Criar(context.Background(), req)
	assert.ErrorContains(t, err, "CPF ou email já cadastrado")
}

func TestDemitirFuncionario(t *testing.T) {
	svc, repo := newFuncionarioFixture(t)
	senha := "segredo1"
	email := "ana@restaurantepdv.com"
	resp, err := svc.Criar(context.Background(), dto.CriarFuncionarioRequest{
		Nome:  "Ana",
		Cpf:   "12312312312",
		Email: &email,
		Cargo: "Atendente",
		Setor: "salao",
		Senha: &senha,
	})
	require.NoError(t, err)

	require.NoError(t, svc.Demitir(context.Background(), resp.ID))

	guardado, err := repo.FindByID(context.Background(), resp.ID)
	require.NoError(t, err)
	assert.False(t, guardado.Ativo)
	assert.Equal(t, model.FuncionarioInativo, guardado.Status)
	assert.NotNil(t, guardado.DataDemissao)
	assert.Nil(t, guardado.SenhaHash, "demissão revoga o acesso")

	err = svc.Demitir(context.Background(), resp.ID)
	assert.ErrorContains(t, err, "Funcionário já está inativo")
}

func TestAtualizarFuncionario(t *testing.T) {
	svc, _ := newFuncionarioFixture(t)
	resp, err := svc.Criar(context.Background(), dto.CriarFuncionarioRequest{
		Nome:  "Ana",
		Cpf:   "12312312312",
		Cargo: "Atendente",
		Setor: "salao",
	})
	require.NoError(t, err)

	cargo := "Supervisora"
	nivel := model.NivelGerente
	atualizado, err := svc.Atualizar(context.Background(), resp.ID, dto.AtualizarFuncionarioRequest{
		Cargo:       &cargo,
		NivelAcesso: &nivel,
	})
	require.NoError(t, err)
	assert.Equal(t, "Supervisora", atualizado.Cargo)
	assert.Equal(t, model.NivelGerente, atualizado.NivelAcesso)
}
