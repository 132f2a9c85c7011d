package main

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pressly/goose/v3"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/hr-payroll-api/internal/config"
	"github.com/hr-payroll-api/internal/handler"
	"github.com/hr-payroll-api/internal/repository"
	"github.com/hr-payroll-api/internal/service"
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

func main() {
	// Инициализация логгера
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Загрузка конфигурации
	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	// Подключение к БД
	db, err := connectDB(cfg.Database)
	if err != nil {
		logger.Error("failed to connect to database", slog.Any("error", err))
		os.Exit(1)
	}

	sqlDB, err := db.DB()
	if err != nil {
		logger.Error("failed to get sql.DB", slog.Any("error", err))
		os.Exit(1)
	}
	defer sqlDB.Close()

	// Запуск миграций
	if err := runMigrations(sqlDB); err != nil {
		logger.Error("failed to run migrations", slog.Any("error", err))
		os.Exit(1)
	}

	// Инициализация репозиториев
	deptRepo := repository.NewDepartmentRepository(db)
	empRepo := repository.NewEmployeeRepository(db)
	posRepo := repository.NewPositionRepository(db)
	holidayRepo := repository.NewHolidayRepository(db)
	leaveTypeRepo := repository.NewLeaveTypeRepository(db)
	leaveReqRepo := repository.NewLeaveRequestRepository(db)
	attRepo := repository.NewAttendanceRepository(db)
	compRepo := repository.NewCompensationRepository(db)
	setRepo := repository.NewPayrollSetRepository(db)

	// Инициализация сервисов
	deptService := service.NewDepartmentService(deptRepo, empRepo)
	empService := service.NewEmployeeService(empRepo, deptRepo, posRepo)
	posService := service.NewPositionService(posRepo, empRepo)
	holidayService := service.NewHolidayService(holidayRepo)
	leaveService := service.NewLeaveService(leaveTypeRepo, leaveReqRepo, empRepo)
	attService := service.NewAttendanceService(attRepo, empRepo)
	compService := service.NewCompensationService(compRepo, empRepo)
	setService := service.NewPayrollSetService(setRepo, empRepo)
	payrollService := service.NewPayrollService(
		setRepo, empRepo, deptRepo, posRepo, compRepo, attRepo, leaveReqRepo,
		cfg.Payroll.TaxRate,
	)

	// Инициализация хендлеров
	deptHandler := handler.NewDepartmentHandler(deptService, empService, logger)
	empHandler := handler.NewEmployeeHandler(empService, compService, logger)
	dirHandler := handler.NewDirectoryHandler(posService, holidayService, leaveService, logger)
	leaveHandler := handler.NewLeaveHandler(leaveService, attService, logger)
	payrollHandler := handler.NewPayrollHandler(setService, payrollService, logger)

	// Настройка роутера
	router := handler.NewRouter(deptHandler, empHandler, dirHandler, leaveHandler, payrollHandler, logger)
	httpHandler := router.Setup()

	// Настройка HTTP сервера
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      httpHandler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	done := make(chan bool)
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		logger.Info("server is shutting down...")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			logger.Error("could not gracefully shutdown the server", slog.Any("error", err))
		}
		close(done)
	}()

	logger.Info("server is starting", slog.String("port", cfg.Server.Port))
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("could not listen on port", slog.String("port", cfg.Server.Port), slog.Any("error", err))
		os.Exit(1)
	}

	<-done
	logger.Info("server stopped")
}

func connectDB(cfg config.DatabaseConfig) (*gorm.DB, error) {
	var db *gorm.DB
	var err error

	for range 30 {
		db, err = gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
			Logger: gormlogger.Default.LogMode(gormlogger.Warn),
		})
		if err == nil {
			sqlDB, dbErr := db.DB()
			if dbErr != nil {
				err = dbErr
			} else if err = sqlDB.Ping(); err == nil {
				return db, nil
			}
		}
		time.Sleep(time.Second)
	}

	return nil, fmt.Errorf("failed to connect to database after 30 attempts: %w", err)
}

func runMigrations(db *sql.DB) error {
	goose.SetBaseFS(embedMigrations)

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set dialect: %w", err)
	}

	if err := goose.Up(db, "migrations"); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}
