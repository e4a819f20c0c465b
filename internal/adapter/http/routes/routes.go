package routes

import (
	"os"

	_ "gestao_manutencao/docs" // swag generated documentation
	"gestao_manutencao/internal/adapter/http/handlers"
	"gestao_manutencao/internal/adapter/http/middleware"
	persistencecache "gestao_manutencao/internal/adapter/persistence/cache"
	"gestao_manutencao/internal/adapter/persistence/repository"
	infracache "gestao_manutencao/internal/infrastructure/cache"
	"gestao_manutencao/internal/infrastructure/database"
	"gestao_manutencao/internal/infrastructure/payments"
	"gestao_manutencao/internal/usecase"
	"gestao_manutencao/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := router.Run(":" + port); err != nil {
		log.Fatal().Err(err).Msg("failed to start the application")
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	workOrderRepo := repository.NewWorkOrderDynamoRepository(ddb)
	templateRepo := repository.NewChecklistTemplateDynamoRepository(ddb)
	contractRepo := repository.NewContractDynamoRepository(ddb)
	chargeRepo := repository.NewContractChargeDynamoRepository(ddb)
	productRepo := repository.NewProductDynamoRepository(ddb)
	technicianRepo := repository.NewTechnicianDynamoRepository(ddb)

	var rollupCache interfaces.IRollupCache
	if rdb := infracache.ConnectRedis(); rdb != nil {
		rollupCache = persistencecache.NewRollupRedisCache(rdb)
	}

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Warn().Err(err).Msg("mercado pago gateway not configured")
	} else {
		paymentGateway = mpGateway
	}

	workOrderUseCase := usecase.NewWorkOrderUseCase(workOrderRepo)
	checklistUseCase := usecase.NewChecklistUseCase(workOrderRepo, templateRepo)
	partsUseCase := usecase.NewPartsUseCase(workOrderRepo, productRepo, usecase.StockPolicyFromEnv())
	signatureUseCase := usecase.NewSignatureUseCase(workOrderRepo)
	rollupUseCase := usecase.NewRollupUseCase(contractRepo, workOrderRepo, productRepo, technicianRepo, rollupCache)
	billingUseCase := usecase.NewContractBillingUseCase(contractRepo, chargeRepo, paymentGateway)

	workOrderHandler := handlers.NewWorkOrderHandler(workOrderUseCase, checklistUseCase, partsUseCase, signatureUseCase)
	contractHandler := handlers.NewContractHandler(rollupUseCase, billingUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)

	protected := v1.Group("")
	protected.Use(middleware.Auth([]byte(os.Getenv("JWT_SECRET"))))
	addWorkOrderRoutes(protected, workOrderHandler)
	addContractRoutes(protected, contractHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Error().Interface("panic", recovered).Msg("recovered from panic")
		c.AbortWithStatus(500)
	}))
	router.Use(middleware.NewRateLimiter(50, 100).Limit())
}
