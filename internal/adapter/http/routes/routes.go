package routes

import (
	"log"
	"os"
	"strconv"

	_ "himmel_payments/docs" // This will be auto-generated
	"himmel_payments/internal/adapter/http/handlers"
	repository2 "himmel_payments/internal/adapter/persistence/repository"
	"himmel_payments/internal/domain/entities"
	"himmel_payments/internal/infrastructure/database"
	"himmel_payments/internal/infrastructure/payments"
	"himmel_payments/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()
	transactionRepo := repository2.NewTransactionDynamoRepository(ddb)

	registry := payments.NewProviderRegistry()
	timeout := payments.GatewayTimeout()

	momoCfg, err := payments.LoadMoMoConfig()
	if err != nil {
		log.Printf("MoMo gateway not configured: %v", err)
	} else {
		registry.Register(entities.ProviderMoMo, payments.NewMoMoGateway(momoCfg, timeout), momoCfg)
	}

	if token := os.Getenv("MERCADOPAGO_ACCESS_TOKEN"); token != "" {
		// Checkout Pro reuses MoMo's default redirect/IPN URLs unless
		// provider-specific ones are set.
		mpCfg := entities.ProviderConfig{
			StoreName:          getenvDefault("STORE_NAME", "Himmel"),
			DefaultRedirectURL: getenvDefault("MERCADOPAGO_REDIRECT_URL", momoCfg.DefaultRedirectURL),
			DefaultIPNURL:      getenvDefault("MERCADOPAGO_IPN_URL", momoCfg.DefaultIPNURL),
		}
		mpGateway, err := payments.NewMercadoPagoGateway(token, mpCfg)
		if err != nil {
			log.Printf("Mercado Pago gateway not configured: %v", err)
		} else {
			registry.Register(entities.ProviderMercadoPago, mpGateway, mpCfg)
		}
	}

	paymentUseCase := usecase.NewPaymentUseCase(transactionRepo, registry)
	paymentHandler := handlers.NewPaymentHandler(paymentUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addPaymentRoutes(v1, paymentHandler)
}

func setMiddlewares() {
	router.Use(correlationID())
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
