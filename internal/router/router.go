package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/lobatoremulo/Restaurante-PDV/internal/config"
	"github.com/lobatoremulo/Restaurante-PDV/internal/handler"
	"github.com/lobatoremulo/Restaurante-PDV/internal/middleware"
	"github.com/lobatoremulo/Restaurante-PDV/internal/model"
	"github.com/lobatoremulo/Restaurante-PDV/internal/repository"
	"github.com/lobatoremulo/Restaurante-PDV/internal/service"
	"github.com/lobatoremulo/Restaurante-PDV/internal/worker"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client, dispatcher *worker.Dispatcher) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Repositories ─────────────────────────────────────────────────────────
	funcionarioRepo := repository.NewFuncionarioRepository(db)
	clienteRepo := repository.NewClienteRepository(db)
	produtoRepo := repository.NewProdutoRepository(db)
	caixaRepo := repository.NewCaixaRepository(db)
	movimentoRepo := repository.NewMovimentoCaixaRepository(db)
	comandaRepo := repository.NewComandaRepository(db)
	vendaRepo := repository.NewVendaRepository(db)
	escalaRepo := repository.NewEscalaRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(funcionarioRepo, cfg)
	funcionarioSvc := service.NewFuncionarioService(funcionarioRepo)
	clienteSvc := service.NewClienteService(clienteRepo, funcionarioRepo)
	produtoSvc := service.NewProdutoService(produtoRepo, rdb)
	caixaSvc := service.NewCaixaService(caixaRepo, movimentoRepo, vendaRepo, funcionarioRepo)
	movimentoSvc := service.NewMovimentoCaixaService(movimentoRepo, caixaRepo, vendaRepo, funcionarioRepo)
	comandaSvc := service.NewComandaService(comandaRepo, produtoRepo, clienteRepo, vendaRepo)
	vendaSvc := service.NewVendaService(vendaRepo, comandaRepo, caixaRepo, movimentoRepo, produtoRepo, clienteRepo, dispatcher)
	escalaSvc := service.NewEscalaService(escalaRepo, funcionarioRepo)

	// ── Handlers ─────────────────────────────────────────────────────────────
	healthH := handler.NewHealthHandler(db, rdb)
	authH := handler.NewAuthHandler(authSvc)
	funcionariosH := handler.NewFuncionarioHandler(funcionarioSvc)
	clientesH := handler.NewClienteHandler(clienteSvc)
	produtosH := handler.NewProdutoHandler(produtoSvc)
	caixasH := handler.NewCaixaHandler(caixaSvc, dispatcher, cfg.PDFStoragePath, cfg.AlertaEstoqueEmail)
	movimentosH := handler.NewMovimentoHandler(movimentoSvc)
	comandasH := handler.NewComandaHandler(comandaSvc)
	vendasH := handler.NewVendaHandler(vendaSvc)
	escalasH := handler.NewEscalaHandler(escalaSvc)

	// Access levels declared per-endpoint
	operacional := middleware.RequireNivel(model.NivelComum, model.NivelGerente, model.NivelAdmin)
	gestao := middleware.RequireNivel(model.NivelGerente, model.NivelAdmin)
	admin := middleware.RequireNivel(model.NivelAdmin)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", healthH.Check)

	auth := r.Group("/v1/auth")
	{
		auth.POST("/login", middleware.LoginRateLimiter(), authH.Login)
		auth.POST("/refresh", authH.Refresh)
	}

	jwtMW := middleware.JWTAuth(cfg.JWTSecret)
	v1 := r.Group("/v1", jwtMW)
	{
		caixas := v1.Group("/caixas")
		{
			caixas.POST("/abrir", gestao, caixasH.Abrir)
			caixas.POST("/:id/fechar", gestao, caixasH.Fechar)
			caixas.GET("/aberto", operacional, caixasH.GetAberto)
			caixas.GET("/status", operacional, caixasH.Status)
			caixas.GET("", gestao, caixasH.List)
			caixas.GET("/:id", operacional, caixasH.GetByID)
			caixas.GET("/:id/relatorio", gestao, caixasH.Relatorio)
			caixas.GET("/:id/relatorio/pdf", gestao, caixasH.RelatorioPDF)
			caixas.GET("/:id/movimentos", operacional, movimentosH.ListByCaixa)
			caixas.GET("/:id/movimentos/total/:tipo", gestao, movimentosH.TotalPorTipo)
		}

		movimentos := v1.Group("/movimentos")
		{
			movimentos.POST("", operacional, movimentosH.Adicionar)
			movimentos.POST("/sangria", gestao, movimentosH.Sangria)
			movimentos.POST("/suprimento", gestao, movimentosH.Suprimento)
			movimentos.GET("", gestao, movimentosH.ListByPeriodo)
			movimentos.GET("/:id", operacional, movimentosH.GetByID)
		}

		comandas := v1.Group("/comandas", operacional)
		{
			comandas.POST("", comandasH.Criar)
			comandas.GET("/abertas", comandasH.ListAbertas)
			comandas.GET("/numero/:numero", comandasH.GetByNumero)
			comandas.GET("/:id", comandasH.GetByID)
			comandas.POST("/:id/itens", comandasH.AdicionarItem)
			comandas.DELETE("/:id/itens/:itemId", comandasH.RemoverItem)
			comandas.PATCH("/:id/itens/:itemId/preparado", comandasH.MarcarItemPreparado)
			comandas.PATCH("/:id/itens/:itemId/entregue", comandasH.MarcarItemEntregue)
			comandas.POST("/:id/desconto", comandasH.AplicarDesconto)
			comandas.POST("/:id/fechar", comandasH.Fechar)
			comandas.DELETE("/:id", comandasH.Cancelar)
		}

		vendas := v1.Group("/vendas")
		{
			vendas.POST("", operacional, vendasH.Criar)
			vendas.POST("/:id/finalizar", operacional, vendasH.Finalizar)
			vendas.DELETE("/:id", gestao, vendasH.Cancelar)
			vendas.GET("/numero/:numero", operacional, vendasH.GetByNumero)
			vendas.GET("/:id", operacional, vendasH.GetByID)
			vendas.POST("/pagamento-comanda", operacional, vendasH.PagamentoComanda)
			vendas.POST("/validar-pagamento", operacional, vendasH.ValidarPagamento)
			vendas.GET("/preparar-pagamento/:comandaId", operacional, vendasH.PrepararPagamento)
			vendas.GET("/comandas-pendentes", operacional, vendasH.ComandasPendentes)
			vendas.POST("/reprocessar-pagamento", gestao, vendasH.ReprocessarPagamento)
		}

		relatorios := v1.Group("/relatorios", gestao)
		{
			relatorios.GET("/financeiro", caixasH.RelatorioFinanceiro)
			relatorios.GET("/vendas", vendasH.RelatorioVendas)
		}

		v1.GET("/produtos", operacional, produtosH.List)
		v1.GET("/produtos/barras/:codigo", operacional, produtosH.GetByCodigoBarras)
		v1.GET("/produtos/estoque-baixo", gestao, produtosH.ListEstoqueBaixo)
		v1.GET("/produtos/:id", operacional, produtosH.GetByID)
		v1.GET("/produtos/:id/movimentos-estoque", gestao, produtosH.ListMovimentosEstoque)
		v1.PATCH("/produtos/:id/estoque", gestao, produtosH.AjustarEstoque)
		produtos := v1.Group("/produtos", admin)
		{
			produtos.POST("", produtosH.Criar)
			produtos.PUT("/:id", produtosH.Atualizar)
			produtos.DELETE("/:id", produtosH.Desativar)
		}

		clientes := v1.Group("/clientes", operacional)
		{
			clientes.POST("", clientesH.Criar)
			clientes.GET("", clientesH.List)
			clientes.GET("/:id", clientesH.GetByID)
			clientes.PUT("/:id", clientesH.Atualizar)
		}
		v1.GET("/clientes-restritos", gestao, clientesH.ListComRestricao)
		v1.POST("/clientes/:id/restricoes", gestao, clientesH.AdicionarRestricao)
		v1.DELETE("/clientes/:id/restricoes/:restricaoId", gestao, clientesH.RemoverRestricao)
		v1.DELETE("/clientes/:id", gestao, clientesH.Desativar)

		funcionarios := v1.Group("/funcionarios", admin)
		{
			funcionarios.POST("", funcionariosH.Criar)
			funcionarios.GET("", funcionariosH.List)
			funcionarios.GET("/:id", funcionariosH.GetByID)
			funcionarios.PUT("/:id", funcionariosH.Atualizar)
			funcionarios.DELETE("/:id", funcionariosH.Demitir)
		}

		escalas := v1.Group("/escalas", gestao)
		{
			escalas.POST("", escalasH.Criar)
			escalas.GET("/dia", escalasH.ListPorData)
			escalas.GET("/funcionario/:funcionarioId", escalasH.ListPorFuncionario)
			escalas.GET("/:id", escalasH.GetByID)
			escalas.PUT("/:id", escalasH.Atualizar)
			escalas.DELETE("/:id", escalasH.Desativar)
		}
	}

	return r
}
