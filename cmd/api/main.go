package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	httpadp "scholarhub-backend/internal/adapter/http"
	"scholarhub-backend/internal/adapter/middleware"
	"scholarhub-backend/internal/adapter/repository/mysql"
	"scholarhub-backend/internal/config"
	appDomain "scholarhub-backend/internal/domain/application"
	scholarshipDomain "scholarhub-backend/internal/domain/scholarship"
	studentDomain "scholarhub-backend/internal/domain/student"
	userDomain "scholarhub-backend/internal/domain/user"
	"scholarhub-backend/internal/infrastructure/cache"
	"scholarhub-backend/internal/infrastructure/db"
	"scholarhub-backend/internal/infrastructure/logger"
	appUsecase "scholarhub-backend/internal/usecase/application"
	draftUsecase "scholarhub-backend/internal/usecase/draft"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}
	logg := logger.New(cfg.LogLevel)

	gdb, err := db.OpenGorm(cfg.MySQLDSN())
	if err != nil {
		log.Fatal(err)
	}
	if err := gdb.AutoMigrate(
		&userDomain.User{},
		&studentDomain.Student{},
		&scholarshipDomain.Scholarship{},
		&appDomain.Application{},
	); err != nil {
		log.Fatal(err)
	}

	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		log.Fatal(err)
	}

	userRepo := mysql.NewUserRepository(gdb)
	studentRepo := mysql.NewStudentRepository(gdb)
	scholarshipRepo := mysql.NewScholarshipRepository(gdb)
	appRepo := mysql.NewApplicationRepository(gdb)
	unit := mysql.NewGormUoW(gdb)

	appUC := appUsecase.NewUsecase(userRepo, scholarshipRepo, studentRepo, appRepo, unit,
		&appUsecase.LogNotifier{Log: logg}, logg)
	draftUC := draftUsecase.NewUsecase(rdb, cfg.DraftTTL(), logg)

	h := httpadp.NewHandler()
	appHandler := httpadp.NewApplicationHandler(appUC)
	draftHandler := httpadp.NewDraftHandler(draftUC)

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(echomw.Logger(), echomw.Recover())

	auth := middleware.Auth(userRepo)
	idemp := middleware.Idempotency(rdb, cfg.IdempTTL())

	// routes
	e.GET("/health", h.Health)

	apps := e.Group("/applications", auth)
	apps.POST("", appHandler.Submit, idemp)
	apps.GET("", appHandler.List)
	apps.POST("/draft", draftHandler.Save)
	apps.GET("/draft/:scholarshipId", draftHandler.Get)
	apps.DELETE("/draft/:scholarshipId", draftHandler.Clear)
	apps.GET("/:id", appHandler.Get)

	addr := ":" + cfg.AppPort
	logg.Info("listening", map[string]interface{}{"addr": addr})
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
