package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lobatoremulo/Restaurante-PDV/internal/dto"
	"github.com/lobatoremulo/Restaurante-PDV/internal/model"
	"github.com/lobatoremulo/Restaurante-PDV/internal/service"
)

func newProdutoFixture(t *testing.T) (service.ProdutoService, *fakeProdutoRepo) {
	t.Helper()
	repo := newFakeProdutoRepo()
	return service.NewProdutoService(repo, nil), repo
}

func TestCriarProduto(t *testing.T) {
	svc, _ := newProdutoFixture(t)

	resp, err := svc.Criar(context.Background(), dto.CriarProdutoRequest{
		Nome:          "Caipirinha",
		Tipo:          model.ProdutoBebida,
		PrecoVenda:    decimal.RequireFromString("18.00"),
		EstoqueAtual:  decimal.RequireFromString("50"),
		EstoqueMinimo: decimal.RequireFromString("5"),
	})
	require.NoError(t, err)

	assert.True(t, resp.Ativo)
	assert.Equal(t, "UN", resp.Unidade, "unidade vazia assume UN")
	assert.False(t, resp.EstoqueBaixo)
}

func TestAjustarEstoque(t *testing.T) {
	svc, repo := newProdutoFixture(t)
	criado, err := svc.Criar(context.Background(), dto.CriarProdutoRequest{
		Nome:         "Cerveja",
		Tipo:         model.ProdutoBebida,
		PrecoVenda:   decimal.RequireFromString("9.00"),
		EstoqueAtual: decimal.RequireFromString("10"),
	})
	require.NoError(t, err)

	resp, err := svc.AjustarEstoque(context.Background(), criado.ID, dto.AjusteEstoqueRequest{
		Quantidade: decimal.RequireFromString("-4"),
	})
	require.NoError(t, err)
	assert.True(t, resp.EstoqueAtual.Equal(decimal.RequireFromString("6")))

	// Todo ajuste deixa um movimento com a quantidade absoluta.
	movs, err := repo.ListMovimentosEstoque(context.Background(), criado.ID)
	require.NoError(t, err)
	require.Len(t, movs, 1)
	assert.Equal(t, model.EstoqueAjuste, movs[0].TipoMovimento)
	assert.True(t, movs[0].Quantidade.Equal(decimal.RequireFromString("4")))
}

func TestAjustarEstoqueQuantidadeZero(t *testing.T) {
	svc, _ := newProdutoFixture(t)
	criado, err := svc.Criar(context.Background(), dto.CriarProdutoRequest{
		Nome:       "Cerveja",
		Tipo:       model.ProdutoBebida,
		PrecoVenda: decimal.RequireFromString("9.00"),
	})
	require.NoError(t, err)

	_, err = svc.AjustarEstoque(context.Background(), criado.ID, dto.AjusteEstoqueRequest{
		Quantidade: decimal.Zero,
	})
	assert.ErrorContains(t, err, "Quantidade do ajuste não pode ser zero")
}

func TestAjustarEstoqueNegativo(t *testing.T) {
	svc, _ := newProdutoFixture(t)
	criado, err := svc.Criar(context.Background(), dto.CriarProdutoRequest{
		Nome:         "Cerveja",
		Tipo:         model.ProdutoBebida,
		PrecoVenda:   decimal.RequireFromString("9.00"),
		EstoqueAtual: decimal.RequireFromString("3"),
	})
	require.NoError(t, err)

	_, err = svc.AjustarEstoque(context.Background(), criado.ID, dto.AjusteEstoqueRequest{
		Quantidade: decimal.RequireFromString("-5"),
	})
	assert.ErrorContains(t, err, "Ajuste deixaria o estoque negativo")
}

func TestAjustarEstoqueProdutoSemControle(t *testing.T) {
	svc, _ := newProdutoFixture(t)
	criado, err := svc.Criar(context.Background(), dto.CriarProdutoRequest{
		Nome:               "Prato executivo",
		Tipo:               model.ProdutoPrato,
		PrecoVenda:         decimal.RequireFromString("25.00"),
		ControlaNaoEstoque: true,
	})
	require.NoError(t, err)

	_, err = svc.AjustarEstoque(context.Background(), criado.ID, dto.AjusteEstoqueRequest{
		Quantidade: decimal.RequireFromString("10"),
	})
	assert.ErrorContains(t, err, "Produto não controla estoque")
}

func TestListEstoqueBaixo(t *testing.T) {
	svc, _ := newProdutoFixture(t)

	_, err := svc.Criar(context.Background(), dto.CriarProdutoRequest{
		Nome:          "Quase acabando",
		Tipo:          model.ProdutoBebida,
		PrecoVenda:    decimal.RequireFromString("5.00"),
		EstoqueAtual:  decimal.RequireFromString("2"),
		EstoqueMinimo: decimal.RequireFromString("5"),
	})
	require.NoError(t, err)
	_, err = svc.Criar(context.Background(), dto.CriarProdutoRequest{
		Nome:          "Abastecido",
		Tipo:          model.ProdutoBebida,
		PrecoVenda:    decimal.RequireFromString("5.00"),
		EstoqueAtual:  decimal.RequireFromString("50"),
		EstoqueMinimo: decimal.RequireFromString("5"),
	})
	require.NoError(t, err)

	baixos, err := svc.ListEstoqueBaixo(context.Background())
	require.NoError(t, err)
	require.Len(t, baixos, 1)
	assert.Equal(t, "Quase acabando", baixos[0].Nome)
	assert.True(t, baixos[0].EstoqueBaixo)
}

func TestGetByCodigoBarras(t *testing.T) {
	svc, _ := newProdutoFixture(t)
	codigo := "7891234567890"

	criado, err := svc.Criar(context.Background(), dto.CriarProdutoRequest{
		Nome:         "Refrigerante",
		Tipo:         model.ProdutoBebida,
		CodigoBarras: &codigo,
		PrecoVenda:   decimal.RequireFromString("7.00"),
	})
	require.NoError(t, err)

	resp, err := svc.GetByCodigoBarras(context.Background(), codigo)
	require.NoError(t, err)
	assert.Equal(t, criado.ID, resp.ID)

	_, err = svc.GetByCodigoBarras(context.Background(), "000")
	assert.ErrorContains(t, err, "Produto não encontrado")
}

func TestAtualizarProduto(t *testing.T) {
	svc, _ := newProdutoFixture(t)
	criado, err := svc.Criar(context.Background(), dto.CriarProdutoRequest{
		Nome:       "Suco",
		Tipo:       model.ProdutoBebida,
		PrecoVenda: decimal.RequireFromString("8.00"),
	})
	require.NoError(t, err)

	novoPreco := decimal.RequireFromString("9.50")
	nome := "Suco natural"
	resp, err := svc.Atualizar(context.Background(), criado.ID, dto.AtualizarProdutoRequest{
		Nome:       &nome,
		PrecoVenda: &novoPreco,
	})
	require.NoError(t, err)
	assert.Equal(t, "Suco natural", resp.Nome)
	assert.True(t, resp.PrecoVenda.Equal(novoPreco))
}

func TestDesativarProduto(t *testing.T) {
	svc, repo := newProdutoFixture(t)
	criado, err := svc.Criar(context.Background(), dto.CriarProdutoRequest{
		Nome:       "Sazonal",
		Tipo:       model.ProdutoSobremesa,
		PrecoVenda: decimal.RequireFromString("12.00"),
	})
	require.NoError(t, err)

	require.NoError(t, svc.Desativar(context.Background(), criado.ID))

	p, err := repo.FindByID(context.Background(), criado.ID)
	require.NoError(t, err)
	assert.False(t, p.Ativo)

	ativos, err := svc.List(context.Background(), "", true)
	require.NoError(t, err)
	assert.Empty(t, ativos)
}

func TestProdutoNaoEncontrado(t *testing.T) {
	svc, _ := newProdutoFixture(t)

	_, err := svc.GetByID(context.Background(), uuid.New())
	assert.ErrorContains(t, err, "Produto não encontrado")

	err = svc.Desativar(context.Background(), uuid.New())
	assert.ErrorContains(t, err, "Produto não encontrado")
}
