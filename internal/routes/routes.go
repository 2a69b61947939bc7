package routes

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/sqlxpertbln/fitness-challenge-90/internal/auth"
	"github.com/sqlxpertbln/fitness-challenge-90/internal/config"
	"github.com/sqlxpertbln/fitness-challenge-90/internal/database"
	"github.com/sqlxpertbln/fitness-challenge-90/internal/handlers"
	"github.com/sqlxpertbln/fitness-challenge-90/internal/middleware"
	"github.com/sqlxpertbln/fitness-challenge-90/internal/models"
	"github.com/sqlxpertbln/fitness-challenge-90/internal/repository"
	"github.com/sqlxpertbln/fitness-challenge-90/internal/services"
)

const (
	public    = middleware.TierPublic
	protected = middleware.TierProtected
	admin     = middleware.TierAdmin
)

// RegisterRoutes wires every procedure. db and rdb may be nil: without a
// database the procedures report the store as unavailable, and without redis
// inquiry submission is not rate limited.
func RegisterRoutes(app *fiber.App, cfg *config.Config, db *pgxpool.Pool, rdb *redis.Client) error {
	var dbtx repository.DBTX
	if db != nil {
		dbtx = db
	}

	userRepo := repository.NewUserRepository(dbtx)
	sleepRepo := repository.NewSleepRepository(dbtx)
	bodyRepo := repository.NewBodyRepository(dbtx)
	bloodPressureRepo := repository.NewBloodPressureRepository(dbtx)
	nutritionRepo := repository.NewNutritionRepository(dbtx)
	waterRepo := repository.NewWaterRepository(dbtx)
	trainingRepo := repository.NewTrainingRepository(dbtx)
	saunaRepo := repository.NewSaunaRepository(dbtx)
	dailySummaryRepo := repository.NewDailySummaryRepository(dbtx)
	blogRepo := repository.NewBlogRepository(dbtx)
	serviceRepo := repository.NewServiceRepository(dbtx)
	inquiryRepo := repository.NewInquiryRepository(dbtx)
	goalRepo := repository.NewGoalRepository(dbtx)

	sessions := auth.NewSessionManager(cfg.JWTSecret, cfg.SessionCookieName, cfg.SessionTTL, cfg.SecureCookies())
	authService := auth.NewService(userRepo, auth.NewAdminPolicy(cfg.AdminOpenIDs), sessions)
	oauthClient := auth.NewOAuthClient(cfg.OAuthServerURL, cfg.OAuthClientID)

	blogService := services.NewBlogService(blogRepo)
	catalogService := services.NewCatalogService(serviceRepo, inquiryRepo)
	goalService := services.NewGoalService(goalRepo)
	exportService := services.NewExportService(services.ExportStores{
		Sleep:         sleepRepo,
		Body:          bodyRepo,
		BloodPressure: bloodPressureRepo,
		Nutrition:     nutritionRepo,
		Water:         waterRepo,
		Training:      trainingRepo,
		Sauna:         saunaRepo,
	})

	var inquiryLimiter middleware.Limiter
	if rdb != nil {
		inquiryLimiter = middleware.NewRedisLimiter(rdb, "inquiries", cfg.InquiryRateLimit, cfg.InquiryRateWindow)
	}

	authHandler := handlers.NewAuthHandler(authService, oauthClient, userRepo)
	sleepHandler := handlers.NewEntryHandler[models.SleepEntry, repository.SleepEntryInput, repository.SleepEntryPatch](sleepRepo)
	bodyHandler := handlers.NewEntryHandler[models.BodyEntry, repository.BodyEntryInput, repository.BodyEntryPatch](bodyRepo)
	bloodPressureHandler := handlers.NewEntryHandler[models.BloodPressureEntry, repository.BloodPressureInput, repository.BloodPressurePatch](bloodPressureRepo)
	nutritionHandler := handlers.NewNutritionHandler(nutritionRepo)
	waterHandler := handlers.NewWaterHandler(waterRepo)
	trainingHandler := handlers.NewEntryHandler[models.TrainingEntry, repository.TrainingEntryInput, repository.TrainingEntryPatch](trainingRepo)
	saunaHandler := handlers.NewEntryHandler[models.SaunaEntry, repository.SaunaEntryInput, repository.SaunaEntryPatch](saunaRepo)
	dailySummaryHandler := handlers.NewDailySummaryHandler(dailySummaryRepo)
	blogHandler := handlers.NewBlogHandler(blogService)
	catalogHandler := handlers.NewCatalogHandler(catalogService)
	goalHandler := handlers.NewGoalHandler(goalService)
	exportHandler := handlers.NewExportHandler(exportService)

	app.Get("/health", handlers.Health(func(ctx context.Context) bool {
		return database.Ping(ctx, db)
	}))

	api := app.Group("/api")
	api.Get("/oauth/callback", authHandler.OAuthCallback)

	trpc := newProcedureRouter(api.Group("/trpc", middleware.ResolveIdentity(authService, sessions.CookieName())))

	trpc.query("auth.me", public, authHandler.Me)
	trpc.mutation("auth.logout", public, authHandler.Logout)
	trpc.mutation("auth.updateProfile", protected, authHandler.UpdateProfile)

	trpc.mutation("sleep.create", protected, sleepHandler.Create)
	trpc.query("sleep.list", protected, sleepHandler.List)
	trpc.query("sleep.getByDate", protected, handlers.GetByDate[models.SleepEntry](sleepRepo))
	trpc.mutation("sleep.update", protected, sleepHandler.Update)
	trpc.mutation("sleep.delete", protected, sleepHandler.Delete)

	trpc.mutation("body.create", protected, bodyHandler.Create)
	trpc.query("body.list", protected, bodyHandler.List)
	trpc.query("body.getByDate", protected, handlers.GetByDate[models.BodyEntry](bodyRepo))
	trpc.mutation("body.update", protected, bodyHandler.Update)
	trpc.mutation("body.delete", protected, bodyHandler.Delete)

	trpc.mutation("bloodPressure.create", protected, bloodPressureHandler.Create)
	trpc.query("bloodPressure.list", protected, bloodPressureHandler.List)
	trpc.mutation("bloodPressure.update", protected, bloodPressureHandler.Update)
	trpc.mutation("bloodPressure.delete", protected, bloodPressureHandler.Delete)

	trpc.mutation("nutrition.create", protected, nutritionHandler.Create)
	trpc.query("nutrition.list", protected, nutritionHandler.List)
	trpc.mutation("nutrition.update", protected, nutritionHandler.Update)
	trpc.mutation("nutrition.delete", protected, nutritionHandler.Delete)

	trpc.mutation("water.add", protected, waterHandler.Add)
	trpc.query("water.list", protected, waterHandler.List)
	trpc.query("water.dailyTotal", protected, waterHandler.DailyTotal)
	trpc.mutation("water.delete", protected, waterHandler.Delete)

	trpc.mutation("training.create", protected, trainingHandler.Create)
	trpc.query("training.list", protected, trainingHandler.List)
	trpc.mutation("training.update", protected, trainingHandler.Update)
	trpc.mutation("training.delete", protected, trainingHandler.Delete)

	trpc.mutation("sauna.create", protected, saunaHandler.Create)
	trpc.query("sauna.list", protected, saunaHandler.List)
	trpc.mutation("sauna.update", protected, saunaHandler.Update)
	trpc.mutation("sauna.delete", protected, saunaHandler.Delete)

	trpc.mutation("dailySummary.save", protected, dailySummaryHandler.Save)
	trpc.query("dailySummary.get", protected, dailySummaryHandler.Get)
	trpc.query("dailySummary.list", protected, dailySummaryHandler.List)

	trpc.query("blog.list", public, blogHandler.List)
	trpc.query("blog.getBySlug", public, blogHandler.GetBySlug)
	trpc.query("blog.getById", admin, blogHandler.GetByID)
	trpc.mutation("blog.create", admin, blogHandler.Create)
	trpc.mutation("blog.update", admin, blogHandler.Update)
	trpc.mutation("blog.delete", admin, blogHandler.Delete)

	trpc.query("services.list", public, catalogHandler.ListServices)
	trpc.query("services.getById", public, catalogHandler.GetService)
	trpc.mutation("services.create", admin, catalogHandler.CreateService)
	trpc.mutation("services.update", admin, catalogHandler.UpdateService)
	trpc.mutation("services.delete", admin, catalogHandler.DeleteService)

	trpc.mutation("inquiries.create", public, middleware.RateLimit(inquiryLimiter), catalogHandler.CreateInquiry)
	trpc.query("inquiries.list", admin, catalogHandler.ListInquiries)
	trpc.mutation("inquiries.updateStatus", admin, catalogHandler.UpdateInquiryStatus)

	trpc.mutation("goals.create", protected, goalHandler.Create)
	trpc.query("goals.list", protected, goalHandler.List)
	trpc.query("goals.getById", protected, goalHandler.GetByID)
	trpc.query("goals.progress", protected, goalHandler.Progress)
	trpc.mutation("goals.update", protected, goalHandler.Update)
	trpc.mutation("goals.complete", protected, goalHandler.Complete)
	trpc.mutation("goals.delete", protected, goalHandler.Delete)

	trpc.query("export.all", protected, exportHandler.All)
	trpc.query("export.csv", protected, exportHandler.CSV)

	return registerDocsRoutes(app, cfg, trpc.Procedures())
}
