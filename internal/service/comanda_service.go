package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lobatoremulo/Restaurante-PDV/internal/apierror"
	"github.com/lobatoremulo/Restaurante-PDV/internal/dto"
	"github.com/lobatoremulo/Restaurante-PDV/internal/model"
	"github.com/lobatoremulo/Restaurante-PDV/internal/repository"
)

type ComandaService interface {
	Criar(ctx context.Context, req dto.CriarComandaRequest) (*dto.ComandaResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.ComandaResponse, error)
	GetByNumero(ctx context.Context, numero string) (*dto.ComandaResponse, error)
	ListAbertas(ctx context.Context) ([]dto.ComandaResponse, error)
	AdicionarItem(ctx context.Context, comandaID uuid.UUID, req dto.AdicionarItemComandaRequest) (*dto.ComandaResponse, error)
	RemoverItem(ctx context.Context, comandaID, itemID uuid.UUID) (*dto.ComandaResponse, error)
	MarcarItemPreparado(ctx context.Context, comandaID, itemID uuid.UUID) error
	MarcarItemEntregue(ctx context.Context, comandaID, itemID uuid.UUID) error
	AplicarDesconto(ctx context.Context, comandaID uuid.UUID, req dto.AplicarDescontoRequest) (*dto.ComandaResponse, error)
	Fechar(ctx context.Context, comandaID uuid.UUID) (*dto.ComandaResponse, error)
	Cancelar(ctx context.Context, comandaID uuid.UUID) error
}

type comandaService struct {
	repo        repository.ComandaRepository
	produtoRepo repository.ProdutoRepository
	clienteRepo repository.ClienteRepository
	vendaRepo   repository.VendaRepository
}

func NewComandaService(
	repo repository.ComandaRepository,
	produtoRepo repository.ProdutoRepository,
	clienteRepo repository.ClienteRepository,
	vendaRepo repository.VendaRepository,
) ComandaService {
	return &comandaService{
		repo:        repo,
		produtoRepo: produtoRepo,
		clienteRepo: clienteRepo,
		vendaRepo:   vendaRepo,
	}
}

func (s *comandaService) Criar(ctx context.Context, req dto.CriarComandaRequest) (*dto.ComandaResponse, error) {
	if req.ClienteID != nil {
		cliente, err := s.clienteRepo.FindByID(ctx, *req.ClienteID)
		if err != nil {
			return nil, apierror.NotFound("Cliente não encontrado")
		}
		if cliente.TemRestricaoAtiva() {
			return nil, apierror.Invalid("Cliente possui restrição ativa")
		}
	}

	numero, err := s.repo.NextNumero(ctx)
	if err != nil {
		return nil, err
	}

	comanda := &model.Comanda{
		NumeroComanda: numero,
		ClienteID:     req.ClienteID,
		GarcomID:      req.GarcomID,
		Mesa:          req.Mesa,
		DataAbertura:  time.Now(),
		Status:        model.ComandaAberta,
		Observacoes:   req.Observacoes,
	}

	for _, item := range req.Itens {
		linha, err := s.montarItem(ctx, item.ProdutoID, item.Quantidade, item.Observacoes)
		if err != nil {
			return nil, err
		}
		comanda.Itens = append(comanda.Itens, *linha)
	}
	recalcularComanda(comanda)

	if err := s.repo.Create(ctx, comanda); err != nil {
		return nil, err
	}
	return comandaToResponse(comanda), nil
}

func (s *comandaService) GetByID(ctx context.Context, id uuid.UUID) (*dto.ComandaResponse, error) {
	comanda, err := s.repo.FindByIDComItens(ctx, id)
	if err != nil {
		return nil, apierror.NotFound("Comanda não encontrada")
	}
	return comandaToResponse(comanda), nil
}

func (s *comandaService) GetByNumero(ctx context.Context, numero string) (*dto.ComandaResponse, error) {
	comanda, err := s.repo.FindByNumero(ctx, numero)
	if err != nil {
		return nil, apierror.NotFound("Comanda não encontrada")
	}
	return comandaToResponse(comanda), nil
}

func (s *comandaService) ListAbertas(ctx context.Context) ([]dto.ComandaResponse, error) {
	comandas, err := s.repo.ListAbertas(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ComandaResponse, 0, len(comandas))
	for i := range comandas {
		out = append(out, *comandaToResponse(&comandas[i]))
	}
	return out, nil
}

func (s *comandaService) AdicionarItem(ctx context.Context, comandaID uuid.UUID, req dto.AdicionarItemComandaRequest) (*dto.ComandaResponse, error) {
	comanda, err := s.repo.FindByIDComItens(ctx, comandaID)
	if err != nil {
		return nil, apierror.NotFound("Comanda não encontrada")
	}
	if comanda.Status != model.ComandaAberta {
		return nil, apierror.Conflict("Comanda não está aberta")
	}

	linha, err := s.montarItem(ctx, req.ProdutoID, req.Quantidade, req.Observacoes)
	if err != nil {
		return nil, err
	}
	linha.ComandaID = comanda.ID
	if err := s.repo.CreateItem(ctx, linha); err != nil {
		return nil, err
	}

	comanda.Itens = append(comanda.Itens, *linha)
	recalcularComanda(comanda)
	if err := s.repo.Update(ctx, nil, comanda); err != nil {
		return nil, err
	}
	return comandaToResponse(comanda), nil
}

func (s *comandaService) RemoverItem(ctx context.Context, comandaID, itemID uuid.UUID) (*dto.ComandaResponse, error) {
	comanda, err := s.repo.FindByIDComItens(ctx, comandaID)
	if err != nil {
		return nil, apierror.NotFound("Comanda não encontrada")
	}
	if comanda.Status != model.ComandaAberta {
		return nil, apierror.Conflict("Comanda não está aberta")
	}

	idx := -1
	for i := range comanda.Itens {
		if comanda.Itens[i].ID == itemID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, apierror.NotFound("Item não encontrado na comanda")
	}
	if comanda.Itens[idx].Entregue {
		return nil, apierror.Conflict("Item já entregue não pode ser removido")
	}

	if err := s.repo.DeleteItem(ctx, itemID); err != nil {
		return nil, err
	}
	comanda.Itens = append(comanda.Itens[:idx], comanda.Itens[idx+1:]...)
	recalcularComanda(comanda)
	if err := s.repo.Update(ctx, nil, comanda); err != nil {
		return nil, err
	}
	return comandaToResponse(comanda), nil
}

func (s *comandaService) MarcarItemPreparado(ctx context.Context, comandaID, itemID uuid.UUID) error {
	return s.marcarItem(ctx, comandaID, itemID, func(item *model.ItemComanda) error {
		if item.Preparado {
			return apierror.Conflict("Item já está preparado")
		}
		agora := time.Now()
		item.Preparado = true
		item.DataPreparo = &agora
		return nil
	})
}

func (s *comandaService) MarcarItemEntregue(ctx context.Context, comandaID, itemID uuid.UUID) error {
	return s.marcarItem(ctx, comandaID, itemID, func(item *model.ItemComanda) error {
		if !item.Preparado {
			return apierror.Conflict("Item ainda não foi preparado")
		}
		if item.Entregue {
			return apierror.Conflict("Item já está entregue")
		}
		agora := time.Now()
		item.Entregue = true
		item.DataEntrega = &agora
		return nil
	})
}

func (s *comandaService) marcarItem(ctx context.Context, comandaID, itemID uuid.UUID, fn func(*model.ItemComanda) error) error {
	item, err := s.repo.FindItem(ctx, itemID)
	if err != nil {
		return apierror.NotFound("Item não encontrado")
	}
	if item.ComandaID != comandaID {
		return apierror.NotFound("Item não pertence à comanda")
	}
	if err := fn(item); err != nil {
		return err
	}
	return s.repo.UpdateItem(ctx, item)
}

func (s *comandaService) AplicarDesconto(ctx context.Context, comandaID uuid.UUID, req dto.AplicarDescontoRequest) (*dto.ComandaResponse, error) {
	comanda, err := s.repo.FindByIDComItens(ctx, comandaID)
	if err != nil {
		return nil, apierror.NotFound("Comanda não encontrada")
	}
	if comanda.Status == model.ComandaCancelada {
		return nil, apierror.Conflict("Comanda cancelada")
	}
	if req.Desconto.GreaterThan(comanda.ValorTotal) {
		return nil, apierror.Invalid("Desconto maior que o valor da comanda")
	}
	comanda.Desconto = req.Desconto
	comanda.Acrescimo = req.Acrescimo
	recalcularComanda(comanda)
	if err := s.repo.Update(ctx, nil, comanda); err != nil {
		return nil, err
	}
	return comandaToResponse(comanda), nil
}

// Fechar freezes the comanda for payment. Totals are recomputed from the items
// one last time; from here on only the checkout pipeline touches it.
func (s *comandaService) Fechar(ctx context.Context, comandaID uuid.UUID) (*dto.ComandaResponse, error) {
	comanda, err := s.repo.FindByIDComItens(ctx, comandaID)
	if err != nil {
		return nil, apierror.NotFound("Comanda não encontrada")
	}
	if comanda.Status != model.ComandaAberta {
		return nil, apierror.Conflict("Comanda não está aberta")
	}
	if len(comanda.Itens) == 0 {
		return nil, apierror.Invalid("Comanda sem itens não pode ser fechada")
	}

	agora := time.Now()
	comanda.Status = model.ComandaFechada
	comanda.DataFechamento = &agora
	recalcularComanda(comanda)
	if err := s.repo.Update(ctx, nil, comanda); err != nil {
		return nil, err
	}
	return comandaToResponse(comanda), nil
}

func (s *comandaService) Cancelar(ctx context.Context, comandaID uuid.UUID) error {
	comanda, err := s.repo.FindByID(ctx, comandaID)
	if err != nil {
		return apierror.NotFound("Comanda não encontrada")
	}
	if comanda.Status == model.ComandaCancelada {
		return apierror.Conflict("Comanda já está cancelada")
	}
	jaPaga, err := s.vendaRepo.ExisteVendaFinalizadaParaComanda(ctx, comandaID)
	if err != nil {
		return err
	}
	if jaPaga {
		return apierror.Conflict("Comanda com venda finalizada não pode ser cancelada")
	}
	return s.repo.UpdateStatus(ctx, nil, comandaID, model.ComandaCancelada)
}

func (s *comandaService) montarItem(ctx context.Context, produtoID uuid.UUID, quantidade decimal.Decimal, obs *string) (*model.ItemComanda, error) {
	p, err := s.produtoRepo.FindByID(ctx, produtoID)
	if err != nil {
		return nil, apierror.NotFound(fmt.Sprintf("Produto %s não encontrado", produtoID))
	}
	if !p.Ativo {
		return nil, apierror.Invalid(fmt.Sprintf("Produto %s está inativo", p.Nome))
	}
	return &model.ItemComanda{
		ProdutoID:     p.ID,
		Quantidade:    quantidade,
		ValorUnitario: p.PrecoVenda,
		ValorTotal:    p.PrecoVenda.Mul(quantidade),
		Observacoes:   obs,
		Produto:       p,
	}, nil
}

// recalcularComanda re-derives ValorTotal/ValorFinal from the items.
func recalcularComanda(c *model.Comanda) {
	total := decimal.Zero
	for i := range c.Itens {
		total = total.Add(c.Itens[i].ValorTotal)
	}
	c.ValorTotal = total
	c.ValorFinal = total.Sub(c.Desconto).Add(c.Acrescimo)
}

func comandaToResponse(c *model.Comanda) *dto.ComandaResponse {
	itens := make([]dto.ItemComandaResponse, 0, len(c.Itens))
	for _, item := range c.Itens {
		nome := ""
		if item.Produto != nil {
			nome = item.Produto.Nome
		}
		itens = append(itens, dto.ItemComandaResponse{
			ID:            item.ID,
			ProdutoID:     item.ProdutoID,
			ProdutoNome:   nome,
			Quantidade:    item.Quantidade,
			ValorUnitario: item.ValorUnitario,
			ValorTotal:    item.ValorTotal,
			Preparado:     item.Preparado,
			Entregue:      item.Entregue,
			Observacoes:   item.Observacoes,
		})
	}
	return &dto.ComandaResponse{
		ID:             c.ID,
		NumeroComanda:  c.NumeroComanda,
		DataAbertura:   c.DataAbertura,
		DataFechamento: c.DataFechamento,
		Status:         c.Status,
		ClienteID:      c.ClienteID,
		GarcomID:       c.GarcomID,
		Mesa:           c.Mesa,
		ValorTotal:     c.ValorTotal,
		Desconto:       c.Desconto,
		Acrescimo:      c.Acrescimo,
		ValorFinal:     c.ValorFinal,
		Observacoes:    c.Observacoes,
		Itens:          itens,
	}
}
