package main

import (
	"fmt"
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/ecoshare/ecoshare/internal/config"
	"github.com/ecoshare/ecoshare/internal/database"
	"github.com/ecoshare/ecoshare/internal/handlers"
	"github.com/ecoshare/ecoshare/internal/middleware"
	"github.com/ecoshare/ecoshare/internal/models"
	"github.com/ecoshare/ecoshare/internal/repository"
	"github.com/ecoshare/ecoshare/internal/services"
	"github.com/ecoshare/ecoshare/internal/storage"

	_ "github.com/ecoshare/ecoshare/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the EcoShare API server",
	Run: func(cmd *cobra.Command, args []string) {
		if err := runServe(); err != nil {
			log.Fatal(err)
		}
	},
}

func runServe() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	gin.SetMode(cfg.GinMode)

	db, err := database.Connect(cfg.Database.URL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := database.Migrate(db); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	accountRepo := repository.NewAccountRepository(db)
	profileRepo := repository.NewProfileRepository(db)
	donationRepo := repository.NewDonationRepository(db)
	needRepo := repository.NewNeedRepository(db)
	engagementRepo := repository.NewEngagementRepository(db)

	tokenService := services.NewTokenService(cfg.JWT.Secret, cfg.JWT.TTL)
	registrationService := services.NewRegistrationService(accountRepo, profileRepo, db)
	donationService := services.NewDonationService(donationRepo, profileRepo)
	lifecycleService := services.NewLifecycleService(donationRepo, profileRepo)
	feedService := services.NewFeedService(donationRepo, profileRepo)
	needsService := services.NewNeedsService(needRepo, profileRepo)
	engagementService := services.NewEngagementService(engagementRepo, donationRepo, accountRepo)
	volunteerService := services.NewVolunteerService(profileRepo)

	var uploader storage.Uploader = storage.DisabledUploader{}
	if cfg.Cloudinary.CloudName != "" {
		cloudinaryUploader, err := storage.NewCloudinaryUploader(cfg.Cloudinary)
		if err != nil {
			return fmt.Errorf("failed to configure uploads: %w", err)
		}
		uploader = cloudinaryUploader
	} else {
		log.Println("Cloudinary not configured, uploads disabled")
	}

	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	authHandler := handlers.NewAuthHandler(registrationService, tokenService)
	donationHandler := handlers.NewDonationHandler(donationService, feedService)
	lifecycleHandler := handlers.NewLifecycleHandler(lifecycleService)
	deliveryHandler := handlers.NewDeliveryHandler(lifecycleService, feedService, volunteerService)
	needHandler := handlers.NewNeedHandler(needsService)
	engagementHandler := handlers.NewEngagementHandler(engagementService)
	uploadHandler := handlers.NewUploadHandler(uploader, profileRepo)
	publicHandler := handlers.NewPublicHandler(feedService)

	router := gin.Default()

	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("/api/v1")
	{
		api.GET("/stats", publicHandler.Stats)

		auth := api.Group("/auth")
		{
			auth.POST("/register/donor", authHandler.RegisterDonor)
			auth.POST("/register/ngo", authHandler.RegisterNGO)
			auth.POST("/register/volunteer", authHandler.RegisterVolunteer)
			auth.POST("/login", authHandler.Login)
		}

		authenticated := api.Group("")
		authenticated.Use(authMiddleware.RequireAuth())
		{
			authenticated.POST("/messages", engagementHandler.SendMessage)
			authenticated.GET("/messages", engagementHandler.Inbox)
			authenticated.POST("/messages/:id/read", engagementHandler.MarkRead)
			authenticated.POST("/reviews", engagementHandler.PostReview)
			authenticated.GET("/reviews/:id", engagementHandler.ReviewsFor)
			authenticated.POST("/uploads/photo", uploadHandler.Photo)

			donor := authenticated.Group("")
			donor.Use(middleware.RequireRole(models.RoleDonor))
			{
				donor.POST("/donations", donationHandler.Create)
				donor.GET("/donations/mine", donationHandler.MyListings)
				donor.GET("/needs/board", needHandler.Board)
			}

			ngo := authenticated.Group("")
			ngo.Use(middleware.RequireRole(models.RoleNGO))
			{
				ngo.GET("/donations/feed", donationHandler.Feed)
				ngo.GET("/donations/claimed", donationHandler.Claimed)
				ngo.POST("/donations/:id/claim", lifecycleHandler.Claim)
				ngo.POST("/donations/:id/complete", lifecycleHandler.Complete)
				ngo.POST("/donations/:id/impact", engagementHandler.AddImpactNote)
				ngo.GET("/impact", engagementHandler.ImpactNotes)
				ngo.GET("/ngo/analytics", donationHandler.Analytics)
				ngo.POST("/needs", needHandler.Post)
				ngo.GET("/needs", needHandler.Mine)
				ngo.POST("/needs/:id/fulfill", needHandler.Fulfil)
				ngo.POST("/ngo/documents", uploadHandler.Document)
				ngo.GET("/ngo/documents", uploadHandler.Documents)
			}

			volunteer := authenticated.Group("")
			volunteer.Use(middleware.RequireRole(models.RoleVolunteer))
			{
				volunteer.GET("/deliveries/available", deliveryHandler.Available)
				volunteer.GET("/deliveries/assigned", deliveryHandler.Assigned)
				volunteer.POST("/deliveries/:id/accept", deliveryHandler.Accept)
				volunteer.POST("/deliveries/:id/complete", deliveryHandler.Complete)
				volunteer.GET("/volunteer/profile", deliveryHandler.Profile)
				volunteer.PUT("/volunteer/availability", deliveryHandler.SetAvailability)
			}
		}
	}

	go runSweeper(lifecycleService, cfg.Sweep.Interval)

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Printf("Starting EcoShare server on %s", addr)
	return router.Run(addr)
}

// runSweeper periodically flips Available donations whose expiry date
// has passed to Expired, so stale food listings drop out of the feed.
func runSweeper(lifecycleService *services.LifecycleService, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for now := range ticker.C {
		expired, err := lifecycleService.ExpireDue(now)
		if err != nil {
			log.Printf("Expiry sweep failed: %v", err)
			continue
		}
		if expired > 0 {
			log.Printf("Expiry sweep: %d donation(s) expired", expired)
		}
	}
}
