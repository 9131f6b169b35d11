package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/lobatoremulo/Restaurante-PDV/internal/apierror"
	"github.com/lobatoremulo/Restaurante-PDV/internal/dto"
	"github.com/lobatoremulo/Restaurante-PDV/internal/model"
	"github.com/lobatoremulo/Restaurante-PDV/internal/repository"
)

const produtoCacheTTL = 4 * time.Hour

type ProdutoService interface {
	Criar(ctx context.Context, req dto.CriarProdutoRequest) (*dto.ProdutoResponse, error)
	Atualizar(ctx context.Context, id uuid.UUID, req dto.AtualizarProdutoRequest) (*dto.ProdutoResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.ProdutoResponse, error)
	GetByCodigoBarras(ctx context.Context, codigo string) (*dto.ProdutoResponse, error)
	List(ctx context.Context, tipo string, apenasAtivos bool) ([]dto.ProdutoResponse, error)
	ListEstoqueBaixo(ctx context.Context) ([]dto.ProdutoResponse, error)
	AjustarEstoque(ctx context.Context, id uuid.UUID, req dto.AjusteEstoqueRequest) (*dto.ProdutoResponse, error)
	ListMovimentosEstoque(ctx context.Context, produtoID uuid.UUID) ([]dto.MovimentoEstoqueResponse, error)
	Desativar(ctx context.Context, id uuid.UUID) error
}

type produtoService struct {
	repo repository.ProdutoRepository
	rdb  *redis.Client
}

// NewProdutoService wires the product catalog. rdb may be nil (tests); the
// barcode cache is best-effort and never blocks a lookup.
func NewProdutoService(repo repository.ProdutoRepository, rdb *redis.Client) ProdutoService {
	return &produtoService{repo: repo, rdb: rdb}
}

func (s *produtoService) Criar(ctx context.Context, req dto.CriarProdutoRequest) (*dto.ProdutoResponse, error) {
	unidade := req.Unidade
	if unidade == "" {
		unidade = "UN"
	}
	p := &model.Produto{
		Nome:                req.Nome,
		Descricao:           req.Descricao,
		Tipo:                req.Tipo,
		CodigoBarras:        req.CodigoBarras,
		Unidade:             unidade,
		PrecoVenda:          req.PrecoVenda,
		PrecoCusto:          req.PrecoCusto,
		ControlaNaoEstoque:  req.ControlaNaoEstoque,
		EstoqueMinimo:       req.EstoqueMinimo,
		EstoqueAtual:        req.EstoqueAtual,
		Ingredientes:        req.Ingredientes,
		TempoPreparoMinutos: req.TempoPreparoMinutos,
		DisponivelDelivery:  req.DisponivelDelivery,
		Ativo:               true,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return produtoToResponse(p), nil
}

func (s *produtoService) Atualizar(ctx context.Context, id uuid.UUID, req dto.AtualizarProdutoRequest) (*dto.ProdutoResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apierror.NotFound("Produto não encontrado")
	}

	if req.Nome != nil {
		p.Nome = *req.Nome
	}
	if req.Descricao != nil {
		p.Descricao = req.Descricao
	}
	if req.Tipo != nil {
		p.Tipo = *req.Tipo
	}
	if req.CodigoBarras != nil {
		p.CodigoBarras = req.CodigoBarras
	}
	if req.Unidade != nil {
		p.Unidade = *req.Unidade
	}
	if req.PrecoVenda != nil {
		p.PrecoVenda = *req.PrecoVenda
	}
	if req.PrecoCusto != nil {
		p.PrecoCusto = req.PrecoCusto
	}
	if req.EstoqueMinimo != nil {
		p.EstoqueMinimo = *req.EstoqueMinimo
	}
	if req.Ingredientes != nil {
		p.Ingredientes = req.Ingredientes
	}
	if req.TempoPreparoMinutos != nil {
		p.TempoPreparoMinutos = req.TempoPreparoMinutos
	}
	if req.DisponivelDelivery != nil {
		p.DisponivelDelivery = *req.DisponivelDelivery
	}
	if req.Ativo != nil {
		p.Ativo = *req.Ativo
	}

	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	s.invalidarCache(p)
	return produtoToResponse(p), nil
}

func (s *produtoService) GetByID(ctx context.Context, id uuid.UUID) (*dto.ProdutoResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apierror.NotFound("Produto não encontrado")
	}
	return produtoToResponse(p), nil
}

// GetByCodigoBarras serves the PDV scanner lookup, cached in Redis.
func (s *produtoService) GetByCodigoBarras(ctx context.Context, codigo string) (*dto.ProdutoResponse, error) {
	cacheKey := "produto:barras:" + codigo

	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, cacheKey).Bytes(); err == nil {
			var resp dto.ProdutoResponse
			if jsonErr := json.Unmarshal(cached, &resp); jsonErr == nil {
				return &resp, nil
			}
		}
	}

	p, err := s.repo.FindByCodigoBarras(ctx, codigo)
	if err != nil {
		return nil, apierror.NotFound("Produto não encontrado")
	}
	resp := produtoToResponse(p)

	if s.rdb != nil {
		if b, jsonErr := json.Marshal(resp); jsonErr == nil {
			if err := s.rdb.Set(context.Background(), cacheKey, b, produtoCacheTTL).Err(); err != nil {
				log.Warn().Err(err).Str("codigo", codigo).Msg("falha ao popular cache de produto")
			}
		}
	}
	return resp, nil
}

func (s *produtoService) List(ctx context.Context, tipo string, apenasAtivos bool) ([]dto.ProdutoResponse, error) {
	produtos, err := s.repo.List(ctx, tipo, apenasAtivos)
	if err != nil {
		return nil, err
	}
	return produtosToResponse(produtos), nil
}

func (s *produtoService) ListEstoqueBaixo(ctx context.Context) ([]dto.ProdutoResponse, error) {
	produtos, err := s.repo.ListEstoqueBaixo(ctx)
	if err != nil {
		return nil, err
	}
	return produtosToResponse(produtos), nil
}

// AjustarEstoque applies a manual correction. Positive quantities add stock,
// negative remove; every adjustment leaves a movement.
func (s *produtoService) AjustarEstoque(ctx context.Context, id uuid.UUID, req dto.AjusteEstoqueRequest) (*dto.ProdutoResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apierror.NotFound("Produto não encontrado")
	}
	if p.ControlaNaoEstoque {
		return nil, apierror.Invalid("Produto não controla estoque")
	}
	if req.Quantidade.IsZero() {
		return nil, apierror.Invalid("Quantidade do ajuste não pode ser zero")
	}
	novoEstoque := p.EstoqueAtual.Add(req.Quantidade)
	if novoEstoque.IsNegative() {
		return nil, apierror.Invalid("Ajuste deixaria o estoque negativo")
	}

	p.EstoqueAtual = novoEstoque
	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	mov := &model.MovimentoEstoque{
		ProdutoID:     p.ID,
		TipoMovimento: model.EstoqueAjuste,
		Quantidade:    req.Quantidade.Abs(),
		Observacoes:   req.Observacoes,
	}
	if err := s.repo.CreateMovimentoEstoque(ctx, nil, mov); err != nil {
		return nil, err
	}
	return produtoToResponse(p), nil
}

func (s *produtoService) ListMovimentosEstoque(ctx context.Context, produtoID uuid.UUID) ([]dto.MovimentoEstoqueResponse, error) {
	movs, err := s.repo.ListMovimentosEstoque(ctx, produtoID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.MovimentoEstoqueResponse, 0, len(movs))
	for _, m := range movs {
		out = append(out, dto.MovimentoEstoqueResponse{
			ID:            m.ID,
			ProdutoID:     m.ProdutoID,
			TipoMovimento: m.TipoMovimento,
			Quantidade:    m.Quantidade,
			ValorUnitario: m.ValorUnitario,
			VendaID:       m.VendaID,
			Observacoes:   m.Observacoes,
			CriadoEm:      m.CriadoEm,
		})
	}
	return out, nil
}

func (s *produtoService) Desativar(ctx context.Context, id uuid.UUID) error {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return apierror.NotFound("Produto não encontrado")
	}
	p.Ativo = false
	if err := s.repo.Update(ctx, p); err != nil {
		return err
	}
	s.invalidarCache(p)
	return nil
}

func (s *produtoService) invalidarCache(p *model.Produto) {
	if s.rdb == nil || p.CodigoBarras == nil {
		return
	}
	_ = s.rdb.Del(context.Background(), "produto:barras:"+*p.CodigoBarras).Err()
}

func produtosToResponse(produtos []model.Produto) []dto.ProdutoResponse {
	out := make([]dto.ProdutoResponse, 0, len(produtos))
	for i := range produtos {
		out = append(out, *produtoToResponse(&produtos[i]))
	}
	return out
}

func produtoToResponse(p *model.Produto) *dto.ProdutoResponse {
	estoqueBaixo := !p.ControlaNaoEstoque && p.EstoqueAtual.LessThanOrEqual(p.EstoqueMinimo)
	return &dto.ProdutoResponse{
		ID:                  p.ID,
		Nome:                p.Nome,
		Descricao:           p.Descricao,
		Tipo:                p.Tipo,
		CodigoBarras:        p.CodigoBarras,
		Unidade:             p.Unidade,
		PrecoVenda:          p.PrecoVenda,
		PrecoCusto:          p.PrecoCusto,
		ControlaNaoEstoque:  p.ControlaNaoEstoque,
		EstoqueMinimo:       p.EstoqueMinimo,
		EstoqueAtual:        p.EstoqueAtual,
		EstoqueBaixo:        estoqueBaixo,
		Ingredientes:        p.Ingredientes,
		TempoPreparoMinutos: p.TempoPreparoMinutos,
		DisponivelDelivery:  p.DisponivelDelivery,
		Ativo:               p.Ativo,
		CriadoEm:            p.CriadoEm,
	}
}
