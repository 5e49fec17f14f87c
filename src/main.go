package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"project/api"
	"project/catalog"
	"project/config"
	"project/database"
	"project/middleware"
	"project/models"
	"project/repository"
	"project/services"
)

func main() {
	config.LoadConfig()

	db, err := database.Init()
	if err != nil {
		log.Fatalf("FATAL: [Main] Failed to initialize database: %v", err)
	}
	runMigrations(db)

	cat, err := loadCatalog()
	if err != nil {
		log.Fatalf("FATAL: [Main] Failed to load catalog: %v", err)
	}

	sessionRepo := repository.NewSessionRepository(db)

	navigator := services.NewNavigator(cat)
	scorer := services.NewScoreAccumulator()
	matcher := services.NewArchetypeMatcher(cat, config.AppConfig.Assessment.TieEpsilon)
	selector := services.NewPersonaSelector(cat, config.AppConfig.Assessment.EscalationConfidence)
	sessionService := services.NewSessionService(sessionRepo, cat, navigator, scorer, matcher, selector)
	log.Println("INFO: [Main] Services initialized.")

	apiHandler := api.NewAPIHandler(sessionService, cat)

	r := gin.New()
	r.SetTrustedProxies(nil)
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Cors())

	registerRoutes(r, apiHandler)
	log.Println("INFO: [Main] Routes registered.")

	serverPort := ":" + config.AppConfig.Server.Port
	if config.AppConfig.Server.Port == "" {
		log.Println("WARN: [Main] Server port not configured, using default :8080.")
		serverPort = ":8080"
	}
	log.Printf("INFO: [Main] Starting server on %s", serverPort)
	if err := r.Run(serverPort); err != nil {
		log.Fatalf("FATAL: [Main] Server failed to start: %v", err)
	}
}

// loadCatalog uses the configured YAML file when one is set, otherwise the
// built-in content. Either way the same integrity validation runs.
func loadCatalog() (catalog.Catalog, error) {
	if file := config.AppConfig.Catalog.File; file != "" {
		return catalog.LoadFromFile(file)
	}
	return catalog.Default()
}

func runMigrations(db *gorm.DB) {
	log.Println("INFO: [Main] Running database migrations...")
	if err := db.AutoMigrate(&models.AssessmentSession{}); err != nil {
		log.Fatalf("FATAL: [Main] Failed to auto-migrate database: %v", err)
	}
	log.Println("INFO: [Main] Database migration completed.")
}

func registerRoutes(r *gin.Engine, handler *api.APIHandler) {
	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/init", handler.InitHandler)

		assessmentGroup := apiGroup.Group("/assessment")
		{
			assessmentGroup.POST("/start", handler.StartHandler)
			assessmentGroup.POST("/answer", handler.SubmitAnswerHandler)
			assessmentGroup.POST("/previous", handler.PreviousHandler)
			assessmentGroup.POST("/reset", handler.ResetHandler)
			assessmentGroup.GET("/session/:userID", handler.SessionHandler)
			assessmentGroup.GET("/by-key/:sessionKey", handler.SessionByKeyHandler)
			assessmentGroup.GET("/result/:userID", handler.ResultHandler)
			assessmentGroup.GET("/scenario/:id", handler.ScenarioHandler)
		}
	}
}
