package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/brewhr/brewhr-backend-go/internal/config"
	appHTTP "github.com/brewhr/brewhr-backend-go/internal/handler/http"
	"github.com/brewhr/brewhr-backend-go/internal/pkg/cron"
	"github.com/brewhr/brewhr-backend-go/internal/pkg/database"
	"github.com/brewhr/brewhr-backend-go/internal/pkg/jwt"
	"github.com/brewhr/brewhr-backend-go/internal/pkg/sse"
	"github.com/brewhr/brewhr-backend-go/internal/repository/postgresql"
	attendanceService "github.com/brewhr/brewhr-backend-go/internal/service/attendance"
	authService "github.com/brewhr/brewhr-backend-go/internal/service/auth"
	consumptionService "github.com/brewhr/brewhr-backend-go/internal/service/consumption"
	employeeService "github.com/brewhr/brewhr-backend-go/internal/service/employee"
	espressoService "github.com/brewhr/brewhr-backend-go/internal/service/espresso"
	leaveService "github.com/brewhr/brewhr-backend-go/internal/service/leave"
	payrollService "github.com/brewhr/brewhr-backend-go/internal/service/payroll"
	"github.com/brewhr/brewhr-backend-go/internal/service/shift"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	loc := cfg.Location()

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL(), cfg.Database.MaxConns, cfg.Database.MinConns)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	leaveRepo := postgresql.NewLeaveRepository(db)
	payrollRepo := postgresql.NewPayrollRepository(db)
	consumptionRepo := postgresql.NewConsumptionRepository(db)
	espressoRepo := postgresql.NewEspressoRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	hub := sse.NewHub()

	shiftPolicy, err := shift.NewPolicy(cfg.Shift)
	if err != nil {
		log.Fatal("Invalid shift policy:", err)
	}
	calculator := &payrollService.Calculator{
		Policy:      shiftPolicy,
		LatePenalty: cfg.Payroll.LatePenalty,
		Loc:         loc,
	}

	authSvc := authService.NewAuthService(cfg.Auth, jwtService)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo, loc)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, employeeRepo, loc)
	leaveSvc := leaveService.NewLeaveService(leaveRepo, employeeRepo, loc)
	payrollSvc := payrollService.NewPayrollService(payrollRepo, attendanceRepo, leaveRepo, employeeRepo, calculator, loc)
	consumptionSvc := consumptionService.NewConsumptionService(consumptionRepo, employeeRepo, cfg.Allowance, loc)
	espressoSvc := espressoService.NewEspressoService(espressoRepo, employeeRepo, hub, loc)

	scheduler := cron.NewScheduler()
	cron.NewAttendanceJobs(attendanceRepo, employeeRepo, hub, loc).RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	router := appHTTP.NewRouter(cfg, jwtService, appHTTP.Handlers{
		Auth:        appHTTP.NewAuthHandler(authSvc, jwtService),
		Employee:    appHTTP.NewEmployeeHandler(employeeSvc),
		Attendance:  appHTTP.NewAttendanceHandler(attendanceSvc),
		Leave:       appHTTP.NewLeaveHandler(leaveSvc),
		Payroll:     appHTTP.NewPayrollHandler(payrollSvc),
		Consumption: appHTTP.NewConsumptionHandler(consumptionSvc),
		Espresso:    appHTTP.NewEspressoHandler(espressoSvc),
		SSE:         appHTTP.NewSSEHandler(hub, jwtService),
	})

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
