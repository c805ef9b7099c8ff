package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/hagwonhq/hagwon-api/internal/config"
	"github.com/hagwonhq/hagwon-api/internal/database"
	"github.com/hagwonhq/hagwon-api/internal/handler"
	"github.com/hagwonhq/hagwon-api/internal/middleware"
	"github.com/hagwonhq/hagwon-api/internal/models"
	"github.com/hagwonhq/hagwon-api/internal/repository"
	"github.com/hagwonhq/hagwon-api/internal/router"
	"github.com/hagwonhq/hagwon-api/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	db, err := database.ConnectPostgres(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(
		&models.Student{},
		&models.Class{},
		&models.Enrollment{},
		&models.AttendanceRecord{},
		&models.Homework{},
		&models.HomeworkSubmission{},
	); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	redisClient, err := database.ConnectRedis(cfg.RedisURL)
	if err != nil {
		log.Fatalf("failed to connect to redis: %v", err)
	}
	defer redisClient.Close()

	validate := validator.New(validator.WithRequiredStructEnabled())

	studentRepo := repository.NewStudentRepository(db)
	classRepo := repository.NewClassRepository(db)
	enrollmentRepo := repository.NewEnrollmentRepository(db)
	attendanceRepo := repository.NewAttendanceRepository(db)
	homeworkRepo := repository.NewHomeworkRepository(db)

	todayService := service.NewTodayAttendanceService(enrollmentRepo, classRepo, attendanceRepo, studentRepo, redisClient, cfg.RosterCacheTTL, logger)
	statsService := service.NewAttendanceStatsService(attendanceRepo, studentRepo, cfg.StatsWindowDays, cfg.StudentRateLimit, logger)
	homeworkService := service.NewHomeworkStatsService(classRepo, enrollmentRepo, homeworkRepo, logger)

	attendanceHandler := handler.NewAttendanceHandler(todayService, statsService, validate, logger)
	homeworkHandler := handler.NewHomeworkHandler(homeworkService, logger)

	app := fiber.New(fiber.Config{
		AppName:      cfg.AppName,
		ServerHeader: cfg.AppName,
	})

	middleware.Register(app, middleware.Config{Logger: &logger})
	router.Register(app, cfg, router.Dependencies{
		AttendanceHandler: attendanceHandler,
		HomeworkHandler:   homeworkHandler,
		JWTMiddleware:     middleware.JWTProtected(cfg.JWTSecret),
	})

	go func() {
		if err := app.Listen(cfg.HTTPAddress()); err != nil {
			log.Fatalf("failed to start server: %v", err)
		}
	}()

	waitForShutdown(app)
}

func waitForShutdown(app *fiber.App) {
	shutdownCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-shutdownCtx.Done()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Printf("graceful shutdown failed: %v", err)
	}

	log.Println("server stopped")
}
