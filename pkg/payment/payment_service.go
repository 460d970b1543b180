package payment

import (
	"context"
	"fmt"
	"os"

	"reloop-backend/domain"
	"reloop-backend/entities"

	"github.com/google/uuid"
	"github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/coreapi"
	"github.com/midtrans/midtrans-go/snap"
)

type (
	PaymentService interface {
		GetCoinPackages(ctx context.Context) ([]*domain.CoinPackage, error)
		BuyCoins(ctx context.Context, req domain.BuyCoinsRequest, userID string) (*domain.BuyCoinsResponse, error)
		HandleNotification(ctx context.Context, payload map[string]interface{}) error
		GetTransactionHistory(ctx context.Context, userID string, page, limit int) ([]*domain.CoinTransaction, int64, error)
	}

	paymentService struct {
		paymentRepository PaymentRepository
		snapClient        snap.Client
		coreClient        coreapi.Client
	}
)

func NewPaymentService(paymentRepository PaymentRepository) PaymentService {
	serverKey := os.Getenv("SERVER_KEY")
	env := midtrans.Sandbox
	if os.Getenv("IS_PROD") == "true" {
		env = midtrans.Production
	}

	var snapClient snap.Client
	snapClient.New(serverKey, env)

	var coreClient coreapi.Client
	coreClient.New(serverKey, env)

	return &paymentService{
		paymentRepository: paymentRepository,
		snapClient:        snapClient,
		coreClient:        coreClient,
	}
}

func (s *paymentService) GetCoinPackages(ctx context.Context) ([]*domain.CoinPackage, error) {
	packages, err := s.paymentRepository.GetCoinPackages(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]*domain.CoinPackage, 0, len(packages))
	for _, pkg := range packages {
		out = append(out, &domain.CoinPackage{
			ID:          pkg.ID.String(),
			Name:        pkg.Name,
			Amount:      pkg.Amount,
			Price:       pkg.Price,
			Currency:    pkg.Currency,
			Description: pkg.Description,
			IsPopular:   pkg.IsPopular,
		})
	}
	return out, nil
}

func (s *paymentService) BuyCoins(ctx context.Context, req domain.BuyCoinsRequest, userID string) (*domain.BuyCoinsResponse, error) {
	pkg, err := s.paymentRepository.GetCoinPackageByID(ctx, req.PackageID)
	if err != nil {
		return nil, err
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	orderID := fmt.Sprintf("reloop-coins-%s", uuid.New().String())
	snapReq := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  orderID,
			GrossAmt: int64(pkg.Price),
		},
		CustomerDetail: &midtrans.CustomerDetails{
			Email: req.Email,
		},
		Items: &[]midtrans.ItemDetails{
			{
				ID:    pkg.ID.String(),
				Name:  pkg.Name,
				Price: int64(pkg.Price),
				Qty:   1,
			},
		},
	}

	snapResp, snapErr := s.snapClient.CreateTransaction(snapReq)
	if snapErr != nil {
		return nil, domain.ErrPaymentFailed
	}

	order := &entities.PaymentOrder{
		ID:            uuid.New(),
		UserID:        userUUID,
		CoinPackageID: pkg.ID,
		OrderID:       orderID,
		Amount:        int64(pkg.Price),
		Status:        "Pending",
		InvoiceURL:    snapResp.RedirectURL,
	}
	if err := s.paymentRepository.CreateOrder(ctx, order); err != nil {
		return nil, err
	}

	return &domain.BuyCoinsResponse{
		OrderID:    orderID,
		InvoiceURL: snapResp.RedirectURL,
	}, nil
}

// HandleNotification processes a payment status webhook. The status is
// re-fetched from the gateway rather than trusted from the payload, and
// settlement is idempotent at the repository level.
func (s *paymentService) HandleNotification(ctx context.Context, payload map[string]interface{}) error {
	orderID, ok := payload["order_id"].(string)
	if !ok || orderID == "" {
		return domain.ErrOrderNotFound
	}

	if _, err := s.paymentRepository.GetOrderByOrderID(ctx, orderID); err != nil {
		return err
	}

	status, statusErr := s.coreClient.CheckTransaction(orderID)
	if statusErr != nil {
		return domain.ErrPaymentFailed
	}

	switch status.TransactionStatus {
	case "settlement", "capture":
		return s.paymentRepository.SettleOrder(ctx, orderID)
	case "deny", "cancel", "failure":
		return s.paymentRepository.MarkOrderFailed(ctx, orderID, "Failed")
	case "expire":
		return s.paymentRepository.MarkOrderFailed(ctx, orderID, "Expired")
	}
	return nil
}

func (s *paymentService) GetTransactionHistory(ctx context.Context, userID string, page, limit int) ([]*domain.CoinTransaction, int64, error) {
	transactions, count, err := s.paymentRepository.GetTransactionHistory(ctx, userID, page, limit)
	if err != nil {
		return nil, 0, err
	}

	out := make([]*domain.CoinTransaction, 0, len(transactions))
	for _, t := range transactions {
		out = append(out, &domain.CoinTransaction{
			ID:          t.ID.String(),
			Amount:      t.Amount,
			Type:        t.Type,
			Reference:   t.Reference,
			Description: t.Description,
			Balance:     t.Balance,
			CreatedAt:   t.CreatedAt,
		})
	}
	return out, count, nil
}
