package main

import (
	"log"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	httpadp "credit-approval-system/internal/adapter/http"
	idemp "credit-approval-system/internal/adapter/middleware"
	"credit-approval-system/internal/adapter/repository/mysql"
	"credit-approval-system/internal/config"
	"credit-approval-system/internal/infrastructure/cache"
	"credit-approval-system/internal/infrastructure/db"
	customeruc "credit-approval-system/internal/usecase/customer"
	eligibilityuc "credit-approval-system/internal/usecase/eligibility"
	ingestuc "credit-approval-system/internal/usecase/ingest"
	loanuc "credit-approval-system/internal/usecase/loan"
	paymentuc "credit-approval-system/internal/usecase/payment"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	gdb, err := db.OpenGorm(cfg.MySQLDSN())
	if err != nil {
		log.Fatalf("mysql: %v", err)
	}
	if err := db.Migrate(gdb); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	if err != nil {
		log.Fatalf("redis: %v", err)
	}

	customers := mysql.NewCustomerRepository(gdb)
	loans := mysql.NewLoanRepository(gdb)
	uow := mysql.NewGormUoW(gdb)

	customerUC := customeruc.NewUsecase(customers, loans)
	eligibilityUC := eligibilityuc.NewUsecase(customers, loans)
	loanUC := loanuc.NewUsecase(customers, loans, uow)
	paymentUC := paymentuc.NewUsecase(uow)
	ingestUC := ingestuc.NewUsecase(customers, loans)

	h := httpadp.NewHandler()
	customerH := httpadp.NewCustomerHandler(customerUC)
	eligibilityH := httpadp.NewEligibilityHandler(eligibilityUC)
	loanH := httpadp.NewLoanHandler(loanUC)
	paymentH := httpadp.NewPaymentHandler(paymentUC)
	ingestH := httpadp.NewIngestHandler(ingestUC)

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(middleware.Logger(), middleware.Recover())

	e.GET("/", h.Root)
	e.GET("/health", h.Health)

	api := e.Group("/api")
	api.GET("/get-customer/:customer_id", customerH.Get)
	api.GET("/view-loan/:loan_id", loanH.ViewLoan)
	api.GET("/view-loans/:customer_id", loanH.ViewCustomerLoans)
	api.GET("/get-stats", loanH.Stats)

	// mutating routes sit behind the idempotency guard
	mut := e.Group("/api", idemp.Idempotency(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second))
	mut.POST("/register", customerH.Register)
	mut.POST("/check-eligibility", eligibilityH.CheckEligibility)
	mut.POST("/create-loan", loanH.CreateLoan)
	mut.POST("/make-payment/:loan_id", paymentH.MakePayment)
	mut.POST("/ingest-data", ingestH.IngestData)

	addr := ":" + cfg.AppPort
	log.Printf("listening on %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
