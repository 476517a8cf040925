package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"conciliacion-bancaria-backend/internal/config"
	handler "conciliacion-bancaria-backend/internal/handlers"
	"conciliacion-bancaria-backend/internal/locker"
	"conciliacion-bancaria-backend/internal/repository"
	"conciliacion-bancaria-backend/internal/services/balance"
	"conciliacion-bancaria-backend/internal/services/reconciliation"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, matching config.Matching, workers int) {
	movementRepo := repository.NewBankMovementRepository(db)
	paymentRepo := repository.NewConductorPaymentRepository(db)
	resultRepo := repository.NewReconciliationResultRepository(db)
	batchRepo := repository.NewImportBatchRepository(db)

	movementLocker := locker.New()

	reconService := reconciliation.NewService(
		movementRepo,
		paymentRepo,
		resultRepo,
		movementLocker,
		matching,
		workers,
	)
	aggregator := balance.NewAggregator(paymentRepo)

	reconHandler := handler.NewReconciliationHandler(reconService)
	importHandler := handler.NewImportHandler(movementRepo, batchRepo, paymentRepo)
	balanceHandler := handler.NewBalanceHandler(aggregator)

	api := r.Group("/api")

	// Health check
	api.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Bank movement ingestion
	movements := api.Group("/bank-movements")
	movements.POST("/import", importHandler.ImportMovements)
	movements.POST("/import/csv", importHandler.UploadMovementsCSV)
	movements.GET("/import/:batchId", importHandler.GetBatchProgress)

	// Conductor payments
	payments := api.Group("/conductor-payments")
	payments.POST("", importHandler.CreatePayment)

	// Reconciliation engine
	recon := api.Group("/reconciliation")
	recon.GET("/run", reconHandler.Run)
	recon.POST("/manual", reconHandler.Manual)
	recon.GET("/summary", reconHandler.Summary)
	recon.GET("/movements", reconHandler.ListMovements)

	// Reports
	reports := api.Group("/reports")
	reports.GET("/balances", balanceHandler.GetBalances)
}
