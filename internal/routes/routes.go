package routes

import (
	"log"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/libertaapp/atendimentos-api/internal/audit"
	"github.com/libertaapp/atendimentos-api/internal/config"
	"github.com/libertaapp/atendimentos-api/internal/handlers"
	"github.com/libertaapp/atendimentos-api/internal/infra/bucket"
	"github.com/libertaapp/atendimentos-api/internal/infra/catalogo"
	"github.com/libertaapp/atendimentos-api/internal/infra/pagamento"
	infraStore "github.com/libertaapp/atendimentos-api/internal/infra/store"
	"github.com/libertaapp/atendimentos-api/internal/middleware"
	"github.com/libertaapp/atendimentos-api/internal/storage"
	ucAnalise "github.com/libertaapp/atendimentos-api/internal/usecase/analise"
	ucAtendimento "github.com/libertaapp/atendimentos-api/internal/usecase/atendimento"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, kv storage.KV, cfg *config.Config) {

	// ======================================================
	// 🌍 MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	recordStore := infraStore.NewKVStore(kv)
	servicoCatalogo := catalogo.NewGormCatalogo(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	fotoBucket := bucket.New(cfg)

	var mp *pagamento.MercadoPago
	if cfg.MercadoPagoToken != "" {
		client, err := pagamento.NewMercadoPago(cfg)
		if err != nil {
			log.Printf("mercadopago disabled: %v", err)
		} else {
			mp = client
		}
	}

	// ======================================================
	// 🧠 USE CASES — ATENDIMENTOS
	// ======================================================
	createAtendimentoUC := ucAtendimento.NewCreateAtendimento(
		recordStore,
		servicoCatalogo,
		auditDispatcher,
	)

	updateAtendimentoUC := ucAtendimento.NewUpdateAtendimento(
		recordStore,
		auditDispatcher,
	)

	deleteAtendimentoUC := ucAtendimento.NewDeleteAtendimento(
		recordStore,
		auditDispatcher,
	)

	// ======================================================
	// 🧠 USE CASES — ANÁLISES FREQUENCIAIS
	// ======================================================
	createAnaliseUC := ucAnalise.NewCreateAnalise(recordStore, auditDispatcher)
	updateAnaliseUC := ucAnalise.NewUpdateAnalise(recordStore, auditDispatcher)
	deleteAnaliseUC := ucAnalise.NewDeleteAnalise(recordStore, auditDispatcher)
	finalizarAnaliseUC := ucAnalise.NewFinalizarAnalise(recordStore, auditDispatcher)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)

	atendimentoHandler := handlers.NewAtendimentoHandler(
		recordStore,
		createAtendimentoUC,
		updateAtendimentoUC,
		deleteAtendimentoUC,
	)

	analiseHandler := handlers.NewAnaliseHandler(
		recordStore,
		createAnaliseUC,
		updateAnaliseUC,
		deleteAnaliseUC,
		finalizarAnaliseUC,
	)

	dashboardHandler := handlers.NewDashboardHandler(recordStore)
	lembretesHandler := handlers.NewLembretesHandler(recordStore)
	relatorioHandler := handlers.NewRelatorioHandler(recordStore)
	clienteHandler := handlers.NewClienteHandler(recordStore)
	servicoHandler := handlers.NewServicoHandler(db)
	fotoHandler := handlers.NewFotoHandler(recordStore, fotoBucket)
	pagamentoHandler := handlers.NewPagamentoHandler(recordStore, mp)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// 🔐 AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// 🔐 API PRIVADA
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)

			// ------------------------------
			// ATENDIMENTOS
			// ------------------------------
			secured.GET("/me/atendimentos", atendimentoHandler.List)
			secured.POST("/me/atendimentos", atendimentoHandler.Create)
			secured.GET("/me/atendimentos/:id", atendimentoHandler.Get)
			secured.PUT("/me/atendimentos/:id", atendimentoHandler.Update)
			secured.DELETE("/me/atendimentos/:id", atendimentoHandler.Delete)
			secured.POST("/me/atendimentos/:id/foto", fotoHandler.Upload)
			secured.POST("/me/atendimentos/:id/pagamento", pagamentoHandler.CriarLink)

			// ------------------------------
			// ANÁLISES FREQUENCIAIS
			// ------------------------------
			secured.GET("/me/analises", analiseHandler.List)
			secured.POST("/me/analises", analiseHandler.Create)
			secured.GET("/me/analises/:id", analiseHandler.Get)
			secured.PUT("/me/analises/:id", analiseHandler.Update)
			secured.DELETE("/me/analises/:id", analiseHandler.Delete)
			secured.PATCH("/me/analises/:id/finalizar", analiseHandler.Finalizar)
			secured.PATCH("/me/analises/:id/reabrir", analiseHandler.Reabrir)

			// ------------------------------
			// PAINEL E RELATÓRIOS
			// ------------------------------
			secured.GET("/me/dashboard", dashboardHandler.Get)
			secured.GET("/me/lembretes/expirando", lembretesHandler.Expirando)
			secured.GET("/me/relatorios/geral", relatorioHandler.Geral)
			secured.GET("/me/clientes", clienteHandler.List)
			secured.GET("/me/clientes/:nome", clienteHandler.Individual)

			// ------------------------------
			// CATÁLOGO E AUDITORIA
			// ------------------------------
			secured.GET("/me/servicos", servicoHandler.List)
			secured.POST("/me/servicos", servicoHandler.Create)
			secured.PATCH("/me/servicos/:id", servicoHandler.Update)

			secured.GET("/me/audit-logs", auditLogsHandler.List)
		}
	}
}
