package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lobatoremulo/Restaurante-PDV/internal/dto"
	"github.com/lobatoremulo/Restaurante-PDV/internal/model"
	"github.com/lobatoremulo/Restaurante-PDV/internal/service"
)

type escalaFixture struct {
	escalas      *fakeEscalaRepo
	funcionarios *fakeFuncionarioRepo
	svc          service.EscalaService
	garcom       *model.Funcionario
}

func newEscalaFixture(t *testing.T) *escalaFixture {
	t.Helper()
	escalas := newFakeEscalaRepo()
	funcionarios := newFakeFuncionarioRepo()
	garcom := &model.Funcionario{
		Nome:        "Garçom",
		Cpf:         "11122233344",
		Cargo:       "Garçom",
		Setor:       "salao",
		NivelAcesso: model.NivelComum,
		Status:      model.FuncionarioAtivo,
		Ativo:       true,
	}
	require.NoError(t, funcionarios.Create(context.Background(), garcom))
	return &escalaFixture{
		escalas:      escalas,
		funcionarios: funcionarios,
		svc:          service.NewEscalaService(escalas, funcionarios),
		garcom:       garcom,
	}
}

func TestCriarEscala(t *testing.T) {
	f := newEscalaFixture(t)
	dia := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	resp, err := f.svc.Criar(context.Background(), dto.CriarEscalaRequest{
		FuncionarioID: f.garcom.ID,
		DataEscala:    dia,
		Turno:         model.TurnoNoite,
		HoraInicio:    "18:00",
		HoraFim:       "23:00",
	})
	require.NoError(t, err)
	assert.True(t, resp.Ativo)
	assert.Equal(t, "Garçom", resp.FuncionarioNome)
	assert.Equal(t, model.TurnoNoite, resp.Turno)
}

func TestCriarEscalaFuncionarioInativo(t *testing.T) {
	f := newEscalaFixture(t)
	f.garcom.Ativo = false

	_, err := f.svc.Criar(context.Background(), dto.CriarEscalaRequest{
		FuncionarioID: f.garcom.ID,
		DataEscala:    time.Now(),
		Turno:         model.TurnoManha,
		HoraInicio:    "08:00",
		HoraFim:       "12:00",
	})
	assert.ErrorContains(t, err, "Funcionário inativo não pode ser escalado")
}

func TestCriarEscalaHorarioInvertido(t *testing.T) {
	f := newEscalaFixture(t)

	_, err := f.svc.Criar(context.Background(), dto.CriarEscalaRequest{
		FuncionarioID: f.garcom.ID,
		DataEscala:    time.Now(),
		Turno:         model.TurnoManha,
		HoraInicio:    "12:00",
		HoraFim:       "08:00",
	})
	assert.ErrorContains(t, err, "Hora final deve ser posterior à hora inicial")
}

func TestCriarEscalaComConflito(t *testing.T) {
	f := newEscalaFixture(t)
	dia := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	_, err := f.svc.Criar(context.Background(), dto.CriarEscalaRequest{
		FuncionarioID: f.garcom.ID,
		DataEscala:    dia,
		Turno:         model.TurnoManha,
		HoraInicio:    "08:00",
		HoraFim:       "14:00",
	})
	require.NoError(t, err)

	// Sobreposição parcial 12:00–16:00.
	_, err = f.svc.Criar(context.Background(), dto.CriarEscalaRequest{
		FuncionarioID: f.garcom.ID,
		DataEscala:    dia,
		Turno:         model.TurnoTarde,
		HoraInicio:    "12:00",
		HoraFim:       "16:00",
	})
	assert.ErrorContains(t, err, "Funcionário já possui escala no horário")

	// Turno que encosta sem sobrepor é permitido.
	_, err = f.svc.Criar(context.Background(), dto.CriarEscalaRequest{
		FuncionarioID: f.garcom.ID,
		DataEscala:    dia,
		Turno:         model.TurnoTarde,
		HoraInicio:    "14:00",
		HoraFim:       "18:00",
	})
	assert.NoError(t, err)
}

func TestAtualizarEscalaIgnoraPropriaEscala(t *testing.T) {
	f := newEscalaFixture(t)
	dia := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	criada, err := f.svc.Criar(context.Background(), dto.CriarEscalaRequest{
		FuncionarioID: f.garcom.ID,
		DataEscala:    dia,
		Turno:         model.TurnoManha,
		HoraInicio:    "08:00",
		HoraFim:       "12:00",
	})
	require.NoError(t, err)

	// Esticar o próprio turno não conflita consigo mesmo.
	fim := "13:00"
	resp, err := f.svc.Atualizar(context.Background(), criada.ID, dto.AtualizarEscalaRequest{HoraFim: &fim})
	require.NoError(t, err)
	assert.Equal(t, "13:00", resp.HoraFim)
}

func TestAtualizarEscalaHorarioInvertido(t *testing.T) {
	f := newEscalaFixture(t)
	criada, err := f.svc.Criar(context.Background(), dto.CriarEscalaRequest{
		FuncionarioID: f.garcom.ID,
		DataEscala:    time.Now(),
		Turno:         model.TurnoManha,
		HoraInicio:    "08:00",
		HoraFim:       "12:00",
	})
	require.NoError(t, err)

	fim := "07:00"
	_, err = f.svc.Atualizar(context.Background(), criada.ID, dto.AtualizarEscalaRequest{HoraFim: &fim})
	assert.ErrorContains(t, err, "Hora final deve ser posterior à hora inicial")
}

func TestDesativarEscala(t *testing.T) {
	f := newEscalaFixture(t)
	criada, err := f.svc.Criar(context.Background(), dto.CriarEscalaRequest{
		FuncionarioID: f.garcom.ID,
		DataEscala:    time.Now(),
		Turno:         model.TurnoManha,
		HoraInicio:    "08:00",
		HoraFim:       "12:00",
	})
	require.NoError(t, err)

	require.NoError(t, f.svc.Desativar(context.Background(), criada.ID))
	err = f.svc.Desativar(context.Background(), criada.ID)
	assert.ErrorContains(t, err, "Escala já está inativa")
}

func TestEscalaInativaNaoConflita(t *testing.T) {
	f := newEscalaFixture(t)
	dia := time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC)

	criada, err := f.svc.Criar(context.Background(), dto.CriarEscalaRequest{
		FuncionarioID: f.garcom.ID,
		DataEscala:    dia,
		Turno:         model.TurnoManha,
		HoraInicio:    "08:00",
		HoraFim:       "12:00",
	})
	require.NoError(t, err)
	require.NoError(t, f.svc.Desativar(context.Background(), criada.ID))

	_, err = f.svc.Criar(context.Background(), dto.CriarEscalaRequest{
		FuncionarioID: f.garcom.ID,
		DataEscala:    dia,
		Turno:         model.TurnoManha,
		HoraInicio:    "08:00",
		HoraFim:       "12:00",
	})
	assert.NoError(t, err)
}

func TestListPorFuncionarioEData(t *testing.T) {
	f := newEscalaFixture(t)
	dia := time.Date(2026, 9, 3, 0, 0, 0, 0, time.UTC)

	_, err := f.svc.Criar(context.Background(), dto.CriarEscalaRequest{
		FuncionarioID: f.garcom.ID,
		DataEscala:    dia,
		Turno:         model.TurnoIntegral,
		HoraInicio:    "08:00",
		HoraFim:       "18:00",
	})
	require.NoError(t, err)

	porFuncionario, err := f.svc.ListPorFuncionario(context.Background(), f.garcom.ID, dia.AddDate(0, 0, -1), dia.AddDate(0, 0, 1))
	require.NoError(t, err)
	assert.Len(t, porFuncionario, 1)

	porData, err := f.svc.ListPorData(context.Background(), dia)
	require.NoError(t, err)
	assert.Len(t, porData, 1)

	vazio, err := f.svc.ListPorFuncionario(context.Background(), uuid.New(), dia.AddDate(0, 0, -1), dia.AddDate(0, 0, 1))
	require.NoError(t, err)
	assert.Empty(t, vazio)
}
