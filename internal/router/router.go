package router

import (
	"time"

	"loja/internal/config"
	"loja/internal/handler"
	"loja/internal/middleware"
	"loja/internal/repository"
	"loja/internal/service"
	"loja/internal/worker"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client) *gin.Engine {
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
	usuarioRepo := repository.NewUsuarioRepository(db)
	produtoRepo := repository.NewProdutoRepository(db)
	clienteRepo := repository.NewClienteRepository(db)
	fornecedorRepo := repository.NewFornecedorRepository(db)
	vendaRepo := repository.NewVendaRepository(db)

	// Worker dispatcher — injected into services that enqueue async jobs
	dispatcher := worker.NewDispatcher(rdb)

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(usuarioRepo, cfg)
	produtoSvc := service.NewProdutoService(produtoRepo, fornecedorRepo)
	clienteSvc := service.NewClienteService(clienteRepo)
	fornecedorSvc := service.NewFornecedorService(fornecedorRepo)
	vendaSvc := service.NewVendaService(vendaRepo, clienteRepo, produtoRepo, dispatcher)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	produtosH := handler.NewProdutosHandler(produtoSvc)
	clientesH := handler.NewClientesHandler(clienteSvc)
	fornecedoresH := handler.NewFornecedoresHandler(fornecedorSvc)
	vendasH := handler.NewVendasHandler(vendaSvc)
	usuariosH := handler.NewUsuariosHandler(authSvc)
	consultaH := handler.NewConsultaPrecosHandler(produtoRepo, rdb)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db, rdb))

	// Auth (public)
	auth := r.Group("/v1/auth")
	{
		auth.POST("/login", middleware.LoginRateLimiter(), authH.Login)
	}

	// Price check — no auth required
	r.GET("/v1/preco/:id", consultaH.GetPreco)

	// Protected routes
	jwtMW := middleware.JWTAuth(cfg.JWTSecret)
	v1 := r.Group("/v1", jwtMW)
	{
		vendas := v1.Group("/vendas")
		{
			vendas.POST("", vendasH.GravarVenda)
			vendas.GET("/produto/:id/detalhada", vendasH.DetalhadaPorProduto)
			vendas.GET("/produto/:id/sumarizada", vendasH.SumarizadaPorProduto)
			vendas.GET("/cliente/:id/detalhada", vendasH.DetalhadaPorCliente)
			vendas.GET("/cliente/:id/sumarizada", vendasH.SumarizadaPorCliente)
			vendas.GET("/relatorios/produtos", vendasH.RelatorioProdutos)
			vendas.GET("/relatorios/clientes", vendasH.RelatorioClientes)
		}

		produtos := v1.Group("/produtos")
		{
			produtos.POST("", produtosH.Criar)
			produtos.GET("", produtosH.Listar)
			produtos.GET("/:id", produtosH.ObterPorID)
			produtos.PUT("/:id", produtosH.Atualizar)
			produtos.DELETE("/:id", produtosH.Remover)
		}

		clientes := v1.Group("/clientes")
		{
			clientes.POST("", clientesH.Criar)
			clientes.GET("", clientesH.Listar)
			clientes.GET("/:id", clientesH.ObterPorID)
			clientes.PUT("/:id", clientesH.Atualizar)
			clientes.DELETE("/:id", clientesH.Remover)
		}

		fornecedores := v1.Group("/fornecedores")
		{
			fornecedores.POST("", fornecedoresH.Criar)
			fornecedores.GET("", fornecedoresH.Listar)
			fornecedores.GET("/:id", fornecedoresH.ObterPorID)
			fornecedores.PUT("/:id", fornecedoresH.Atualizar)
			fornecedores.DELETE("/:id", fornecedoresH.Remover)
		}

		usuarios := v1.Group("/usuarios")
		{
			usuarios.POST("", usuariosH.Criar)
			usuarios.GET("", usuariosH.Listar)
			usuarios.PUT("/:id", usuariosH.Atualizar)
			usuarios.DELETE("/:id", usuariosH.Remover)
		}
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
