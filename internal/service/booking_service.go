package service

import (
	"cinema-booking/internal/cache"
	"cinema-booking/internal/database"
	"cinema-booking/internal/model"
	"cinema-booking/internal/queue"
	"cinema-booking/internal/repository"
	apperrors "cinema-booking/pkg/app_errors"
	"cinema-booking/pkg/logger"
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

const scheduleLayout = "2006-01-02 15:04"

type BookingService interface {
	// Buy 購票：開 PENDING 付款 → 檢查庫存 → 整批寫入 PAID 票券 →
	// 付款轉 SUCCESS，全程同一把冪等鍵重送只會回放第一次的結果
	Buy(ctx context.Context, req model.PurchaseRequest, idempotencyKey string) (*model.PurchaseResponse, error)
	// Reserve 保留座位：只寫 RESERVED 票券，不產生付款，user 可為空（訪客保留）
	Reserve(ctx context.Context, req model.ReserveRequest) ([]model.TicketResponse, error)
	// GetPurchase 查詢付款與底下的票券
	GetPurchase(ctx context.Context, paymentID int) (*model.PurchaseResponse, error)
}

type BookingServiceImpl struct {
	db           database.TxBeginner
	showtimeRepo repository.ShowtimeRepository
	userRepo     repository.UserRepository
	ticketRepo   repository.TicketRepository
	ledger       PaymentLedger
	guard        SeatInventoryGuard
	pricer       Pricer
	receiptQueue queue.ReceiptQueue
	seatMapCache cache.SeatMapCache
}

func NewBookingService(
	db database.TxBeginner,
	showtimeRepo repository.ShowtimeRepository,
	userRepo repository.UserRepository,
	ticketRepo repository.TicketRepository,
	ledger PaymentLedger,
	guard SeatInventoryGuard,
	pricer Pricer,
	receiptQueue queue.ReceiptQueue,
	seatMapCache cache.SeatMapCache,
) BookingService {
	return &BookingServiceImpl{
		db:           db,
		showtimeRepo: showtimeRepo,
		userRepo:     userRepo,
		ticketRepo:   ticketRepo,
		ledger:       ledger,
		guard:        guard,
		pricer:       pricer,
		receiptQueue: receiptQueue,
		seatMapCache: seatMapCache,
	}
}

func (s *BookingServiceImpl) Buy(ctx context.Context, req model.PurchaseRequest, idempotencyKey string) (*model.PurchaseResponse, error) {
	if idempotencyKey == "" {
		return nil, apperrors.ErrInvalidInput
	}

	// 1. 冪等回放：這把鍵已經買過就直接回第一次的結果，不做任何寫入
	existing, err := s.ledger.FindByIdempotencyKey(ctx, idempotencyKey)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return s.buildPurchaseResponse(ctx, existing)
	}

	// 2. 解析場次並確認還沒開演
	showtime, err := s.resolveShowtime(ctx, req.BookingRequest)
	if err != nil {
		return nil, err
	}
	if !showtime.IsUpcoming(time.Now()) {
		return nil, apperrors.ErrShowtimeAlreadyStarted
	}

	// 3. 購買人必須存在（收據也要寄給他）
	user, err := s.userRepo.FindByID(ctx, req.UserID)
	if err != nil {
		return nil, err
	}

	// 4. 先開 PENDING 付款並落庫：之後任何一步掛掉，
	//    重送同一把鍵都能靠這筆記錄偵測到前一次嘗試
	payment, replayed, err := s.ledger.OpenPending(ctx, req.UserID, idempotencyKey, s.pricer.Currency())
	if err != nil {
		return nil, err
	}
	if replayed {
		return s.buildPurchaseResponse(ctx, payment)
	}

	// 5. 空的座位清單是壞請求
	if len(req.Seats) == 0 {
		s.markFailed(ctx, payment)
		return nil, apperrors.ErrEmptySeats
	}

	// 6~8. 同一個交易內：庫存預檢 → 整批寫票 → 付款轉 SUCCESS
	tx, err := s.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	if err := s.guard.CheckAvailability(ctx, tx, showtime.ID, showtime.HallCapacity, req.Seats); err != nil {
		s.markFailed(ctx, payment)
		return nil, err
	}

	tickets := s.buildTickets(showtime, req.Seats, &req.UserID, &payment.ID, model.TicketStatusPaid)

	created, err := s.ticketRepo.CreateBatch(ctx, tx, tickets)
	if err != nil {
		// 預檢之後才輸掉座位競爭也會走到這裡：唯一索引擋下整批寫入
		s.markFailed(ctx, payment)
		return nil, err
	}

	total := 0.0
	for _, ticket := range created {
		total += ticket.Price
	}

	finalized, err := s.ledger.Finalize(ctx, tx, payment, total)
	if err != nil {
		s.markFailed(ctx, payment)
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	// 9. 收據與快取都是 best-effort，失敗只記 log，購票已經完成
	s.dispatchReceipt(ctx, user, finalized, showtime, created)
	s.invalidateSeatMap(ctx, showtime.ID)

	return model.NewPurchaseResponse(finalized, ticketResponses(created, showtime)), nil
}

func (s *BookingServiceImpl) Reserve(ctx context.Context, req model.ReserveRequest) ([]model.TicketResponse, error) {
	showtime, err := s.resolveShowtime(ctx, req.BookingRequest)
	if err != nil {
		return nil, err
	}
	if !showtime.IsUpcoming(time.Now()) {
		return nil, apperrors.ErrShowtimeAlreadyStarted
	}

	if req.UserID != nil {
		if _, err := s.userRepo.FindByID(ctx, *req.UserID); err != nil {
			return nil, err
		}
	}

	if len(req.Seats) == 0 {
		return nil, apperrors.ErrEmptySeats
	}

	tx, err := s.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	if err := s.guard.CheckAvailability(ctx, tx, showtime.ID, showtime.HallCapacity, req.Seats); err != nil {
		return nil, err
	}

	tickets := s.buildTickets(showtime, req.Seats, req.UserID, nil, model.TicketStatusReserved)

	created, err := s.ticketRepo.CreateBatch(ctx, tx, tickets)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	s.invalidateSeatMap(ctx, showtime.ID)

	return ticketResponses(created, showtime), nil
}

func (s *BookingServiceImpl) GetPurchase(ctx context.Context, paymentID int) (*model.PurchaseResponse, error) {
	payment, err := s.ledger.FindByID(ctx, paymentID)
	if err != nil {
		return nil, err
	}
	return s.buildPurchaseResponse(ctx, payment)
}

// resolveShowtime 支援直接帶場次 id，或 (片名, 影廳, 影城, 日期, 開演時間) 組合
func (s *BookingServiceImpl) resolveShowtime(ctx context.Context, req model.BookingRequest) (*model.ShowtimeDetail, error) {
	if req.ShowtimeID != nil {
		return s.showtimeRepo.FindByID(ctx, *req.ShowtimeID)
	}

	if req.MovieTitle == "" || req.HallName == "" || req.CinemaName == "" || req.Date == "" || req.StartTime == "" {
		return nil, apperrors.ErrInvalidInput
	}

	startsAt, err := time.ParseInLocation(scheduleLayout, req.Date+" "+req.StartTime, time.UTC)
	if err != nil {
		return nil, apperrors.ErrInvalidInput
	}

	return s.showtimeRepo.FindBySchedule(ctx, req.MovieTitle, req.HallName, req.CinemaName, startsAt)
}

func (s *BookingServiceImpl) buildTickets(
	showtime *model.ShowtimeDetail,
	seats []model.SeatRef,
	userID *int,
	paymentID *int,
	status model.TicketStatus,
) []*model.Ticket {
	tickets := make([]*model.Ticket, 0, len(seats))
	for _, seat := range seats {
		tickets = append(tickets, &model.Ticket{
			ShowtimeID: showtime.ID,
			UserID:     userID,
			PaymentID:  paymentID,
			SeatLetter: seat.SeatLetter,
			SeatNumber: seat.SeatNumber,
			Price:      s.pricer.SeatPrice(showtime, seat),
			Status:     status,
		})
	}
	return tickets
}

// buildPurchaseResponse 冪等回放：用既有付款組出跟第一次一樣的響應
func (s *BookingServiceImpl) buildPurchaseResponse(ctx context.Context, payment *model.Payment) (*model.PurchaseResponse, error) {
	tickets, err := s.ticketRepo.FindByPaymentID(ctx, payment.ID)
	if err != nil {
		return nil, err
	}

	if len(tickets) == 0 {
		// 前一次嘗試沒寫到票（PENDING/FAILED 殘留），照實回放
		return model.NewPurchaseResponse(payment, []model.TicketResponse{}), nil
	}

	showtime, err := s.showtimeRepo.FindByID(ctx, tickets[0].ShowtimeID)
	if err != nil {
		return nil, err
	}

	return model.NewPurchaseResponse(payment, ticketResponses(tickets, showtime)), nil
}

func (s *BookingServiceImpl) markFailed(ctx context.Context, payment *model.Payment) {
	if err := s.ledger.MarkFailed(ctx, payment); err != nil {
		logger.WithComponent("booking_service").Warn("mark payment failed",
			zap.Int("payment_id", payment.ID), zap.Error(err))
	}
}

func (s *BookingServiceImpl) dispatchReceipt(
	ctx context.Context,
	user *model.User,
	payment *model.Payment,
	showtime *model.ShowtimeDetail,
	tickets []*model.Ticket,
) {
	seats := make([]model.SeatRef, 0, len(tickets))
	for _, ticket := range tickets {
		seats = append(seats, ticket.Seat())
	}

	job := &model.ReceiptJob{
		PaymentID:  payment.ID,
		Email:      user.Email,
		Amount:     payment.Amount,
		Currency:   payment.Currency,
		MovieTitle: showtime.MovieTitle,
		CinemaName: showtime.CinemaName,
		HallName:   showtime.HallName,
		StartsAt:   showtime.StartsAt.UTC().Format(time.RFC3339),
		Seats:      seats,
	}

	if err := s.receiptQueue.PublishReceipt(ctx, job); err != nil {
		logger.WithComponent("booking_service").Warn("publish receipt failed",
			zap.Int("payment_id", payment.ID), zap.Error(err))
	}
}

func (s *BookingServiceImpl) invalidateSeatMap(ctx context.Context, showtimeID int) {
	if err := s.seatMapCache.Invalidate(ctx, showtimeID); err != nil {
		logger.WithComponent("booking_service").Warn("invalidate seat map failed",
			zap.Int("showtime_id", showtimeID), zap.Error(err))
	}
}

func ticketResponses(tickets []*model.Ticket, showtime *model.ShowtimeDetail) []model.TicketResponse {
	responses := make([]model.TicketResponse, 0, len(tickets))
	for _, ticket := range tickets {
		responses = append(responses, model.NewTicketResponse(ticket, showtime))
	}
	return responses
}
