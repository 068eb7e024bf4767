package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/shiftline/timeclock-backend-go/internal/config"
	punchDomain "github.com/shiftline/timeclock-backend-go/internal/domain/punch"
	shiftDomain "github.com/shiftline/timeclock-backend-go/internal/domain/shift"
	workerDomain "github.com/shiftline/timeclock-backend-go/internal/domain/worker"
	appHTTP "github.com/shiftline/timeclock-backend-go/internal/handler/http"
	"github.com/shiftline/timeclock-backend-go/internal/pkg/database"
	"github.com/shiftline/timeclock-backend-go/internal/pkg/jwt"
	"github.com/shiftline/timeclock-backend-go/internal/repository/memory"
	"github.com/shiftline/timeclock-backend-go/internal/repository/postgresql"
	approvalService "github.com/shiftline/timeclock-backend-go/internal/service/approval"
	authService "github.com/shiftline/timeclock-backend-go/internal/service/auth"
	payrollService "github.com/shiftline/timeclock-backend-go/internal/service/payroll"
	punchService "github.com/shiftline/timeclock-backend-go/internal/service/punch"
	shiftService "github.com/shiftline/timeclock-backend-go/internal/service/shift"
	workerService "github.com/shiftline/timeclock-backend-go/internal/service/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	var (
		workerRepo workerDomain.WorkerRepository
		punchRepo  punchDomain.PunchRepository
		shiftRepo  shiftDomain.ShiftRepository
	)
	switch cfg.Store.Type {
	case "postgres":
		db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
		if err != nil {
			log.Fatal("Failed to connect to database: ", err)
		}
		workerRepo = postgresql.NewWorkerRepository(db)
		punchRepo = postgresql.NewPunchRepository(db)
		shiftRepo = postgresql.NewShiftRepository(db)
	case "memory":
		workerRepo = memory.NewWorkerRepository()
		punchRepo = memory.NewPunchRepository()
		shiftRepo = memory.NewShiftRepository()
	default:
		log.Fatal("Unsupported store type: ", cfg.Store.Type)
	}

	jwtSvc := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	workerSvc := workerService.NewWorkerService(workerRepo)
	authSvc := authService.NewAuthService(workerRepo, jwtSvc)
	punchSvc := punchService.NewPunchService(punchRepo, workerRepo)
	approvalSvc := approvalService.NewApprovalService(punchRepo, workerRepo)
	shiftSvc := shiftService.NewShiftService(shiftRepo, workerRepo)
	payrollSvc := payrollService.NewPayrollService(punchRepo, workerRepo, cfg.Payroll.DailyOvertimeHours)

	if err := workerSvc.Seed(context.Background()); err != nil {
		log.Fatal("Failed to seed staff register: ", err)
	}

	authHandler := appHTTP.NewAuthHandler(jwtSvc, authSvc)
	workerHandler := appHTTP.NewWorkerHandler(workerSvc)
	punchHandler := appHTTP.NewPunchHandler(punchSvc)
	approvalHandler := appHTTP.NewApprovalHandler(approvalSvc)
	shiftHandler := appHTTP.NewShiftHandler(shiftSvc)
	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc)

	router := appHTTP.NewRouter(
		cfg.App.Env,
		jwtSvc,
		authHandler,
		workerHandler,
		punchHandler,
		approvalHandler,
		shiftHandler,
		payrollHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
