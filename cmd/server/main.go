package main

import (
	"cinema-booking/config"
	"cinema-booking/internal/cache"
	"cinema-booking/internal/database"
	"cinema-booking/internal/gateway"
	"cinema-booking/internal/handler"
	"cinema-booking/internal/queue"
	"cinema-booking/internal/repository"
	"cinema-booking/internal/service"
	"cinema-booking/internal/worker"
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := config.LoadConfig()

	pool, err := database.InitDatabase(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer pool.Close()

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		log.Fatalf("Failed to initialize redis: %v", err)
	}
	defer rdb.Close()

	// Repositories
	showtimeRepo := repository.NewShowtimeRepository(pool)
	userRepo := repository.NewUserRepository(pool)
	ticketRepo := repository.NewTicketRepository(pool)
	paymentRepo := repository.NewPaymentRepository(pool)

	// Infra components
	seatMapCache := cache.NewSeatMapCache(rdb)
	receiptQueue, err := queue.NewRedisStreamReceiptQueue(rdb, "", nil)
	if err != nil {
		log.Fatalf("Failed to initialize receipt queue: %v", err)
	}

	// Services
	ledger := service.NewPaymentLedger(paymentRepo)
	guard := service.NewSeatInventoryGuard(ticketRepo)
	pricer := service.NewSurchargePricer(cfg.Pricing)
	bookingService := service.NewBookingService(
		pool, showtimeRepo, userRepo, ticketRepo,
		ledger, guard, pricer, receiptQueue, seatMapCache,
	)
	showtimeService := service.NewShowtimeService(showtimeRepo, ticketRepo, seatMapCache)

	// 收據 worker：消化隊列裡的收據任務，寄送失敗只會重試，不影響購票
	workerCtx, cancelWorker := context.WithCancel(context.Background())
	defer cancelWorker()

	receiptsClient := gateway.NewReceiptsClient(cfg.Receipts.BaseURL)
	receiptWorker := worker.NewReceiptWorker(receiptsClient, receiptQueue)
	if err := receiptWorker.Start(workerCtx); err != nil {
		log.Fatalf("Failed to start receipt worker: %v", err)
	}

	router := gin.Default()
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})

	handler.NewBookingHandler(bookingService).RegisterRoutes(router)
	handler.NewShowtimeHandler(showtimeService).RegisterRoutes(router)

	srv := &http.Server{
		Addr:    ":8080",
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	cancelWorker()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server shutdown error: %v", err)
	}

	log.Println("Server exited")
}
