// AngelaMos | 2026
// service.go

package payment

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/carterperez-dev/farrior-homes-api/internal/config"
	"github.com/carterperez-dev/farrior-homes-api/internal/core"
	"github.com/carterperez-dev/farrior-homes-api/internal/user"
)

// UserProvider is the slice of the user store the payment flow needs:
// precondition reads plus the subscription flag write.
type UserProvider interface {
	GetByID(ctx context.Context, id primitive.ObjectID) (*user.User, error)
	SetSubscribed(ctx context.Context, id primitive.ObjectID) error
}

type Service struct {
	repo    Repository
	users   UserProvider
	gateway Gateway
	cfg     config.StripeConfig
	appCfg  config.AppConfig
}

func NewService(
	repo Repository,
	users UserProvider,
	gateway Gateway,
	cfg config.StripeConfig,
	appCfg config.AppConfig,
) *Service {
	return &Service{
		repo:    repo,
		users:   users,
		gateway: gateway,
		cfg:     cfg,
		appCfg:  appCfg,
	}
}

// CreateCheckoutSession checks every precondition before a payment document
// is written, so a rejected request leaves no PENDING orphan behind.
func (s *Service) CreateCheckoutSession(
	ctx context.Context,
	req CreateCheckoutSessionRequest,
) (*CreateCheckoutSessionResponse, error) {
	userID, err := primitive.ObjectIDFromHex(req.UserID)
	if err != nil {
		return nil, core.BadRequestError("invalid user id")
	}

	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			return nil, core.NotFoundError("user")
		}
		return nil, fmt.Errorf("get user: %w", err)
	}

	if u.IsSuspended {
		return nil, core.BadRequestError("account is suspended")
	}

	if u.IsSubscribed {
		return nil, core.BadRequestError("user is already subscribed")
	}

	successURL := req.SuccessURL
	if successURL == "" {
		successURL = s.appCfg.FrontendURL + "/payment/success"
	}
	cancelURL := req.CancelURL
	if cancelURL == "" {
		cancelURL = s.appCfg.FrontendURL + "/payment/cancel"
	}

	payment := &Payment{
		User:          userID,
		Amount:        s.cfg.Amount,
		Currency:      s.cfg.Currency,
		Status:        StatusPending,
		TransactionID: newTransactionID(),
	}

	if err := s.repo.Create(ctx, payment); err != nil {
		return nil, fmt.Errorf("create payment: %w", err)
	}

	sess, err := s.gateway.CreateCheckoutSession(ctx, CheckoutParams{
		PaymentID:  payment.ID.Hex(),
		UserID:     req.UserID,
		SuccessURL: successURL,
		CancelURL:  cancelURL,
	})
	if err != nil {
		return nil, fmt.Errorf("create checkout session: %w", err)
	}

	if err := s.repo.SetCheckoutSession(ctx, payment.ID, sess.ID); err != nil {
		return nil, fmt.Errorf("persist checkout session: %w", err)
	}

	return &CreateCheckoutSessionResponse{
		TransactionID:      payment.TransactionID,
		CheckoutSessionID:  sess.ID,
		CheckoutSessionURL: sess.URL,
		SuccessURL:         successURL,
		CancelURL:          cancelURL,
		Amount:             payment.Amount,
		Currency:           payment.Currency,
	}, nil
}

// HandleWebhook verifies and dispatches one delivery. Signature failures are
// the only error path; unknown correlation ids are logged and acknowledged so
// the provider stops retrying something we will never match.
func (s *Service) HandleWebhook(
	ctx context.Context,
	payload []byte,
	signature string,
) error {
	event, err := s.gateway.ParseWebhookEvent(payload, signature)
	if err != nil {
		return core.BadRequestError("invalid webhook signature")
	}

	switch ev := event.(type) {
	case CheckoutCompleted:
		return s.handleCheckoutCompleted(ctx, ev)
	case CheckoutExpired:
		return s.handleCheckoutExpired(ctx, ev)
	case UnhandledEvent:
		slog.Debug("ignoring webhook event", "type", ev.Type)
		return nil
	default:
		slog.Warn("unknown webhook event variant")
		return nil
	}
}

func (s *Service) handleCheckoutCompleted(
	ctx context.Context,
	ev CheckoutCompleted,
) error {
	paymentID, err := primitive.ObjectIDFromHex(ev.PaymentID)
	if err != nil {
		slog.Warn("webhook completed event with malformed reference",
			"reference", ev.PaymentID,
		)
		return nil
	}

	payment, err := s.repo.GetByID(ctx, paymentID)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			slog.Warn("webhook completed event for unknown payment",
				"paymentId", ev.PaymentID,
			)
			return nil
		}
		return fmt.Errorf("get payment: %w", err)
	}

	applied, err := s.repo.MarkCompleted(
		ctx,
		paymentID,
		ev.PaymentIntentID,
		time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("mark completed: %w", err)
	}

	// A redelivered completed event still re-runs the flag write below: it
	// is idempotent and closes the gap where a previous delivery completed
	// the payment but died before flipping the user. A completed event that
	// lost the race to an expired one must not: the payment is FAILED, and
	// no subscription may be granted off it.
	if !applied {
		if payment.Status != StatusCompleted {
			slog.Warn("webhook completed event for non-pending payment",
				"paymentId", ev.PaymentID,
				"status", payment.Status,
			)
			return nil
		}
		slog.Info("webhook completed event already applied",
			"paymentId", ev.PaymentID,
		)
	}

	if err := s.users.SetSubscribed(ctx, payment.User); err != nil &&
		!errors.Is(err, core.ErrNotFound) {
		return fmt.Errorf("set user subscribed: %w", err)
	}

	return nil
}

func (s *Service) handleCheckoutExpired(
	ctx context.Context,
	ev CheckoutExpired,
) error {
	paymentID, err := primitive.ObjectIDFromHex(ev.PaymentID)
	if err != nil {
		slog.Warn("webhook expired event with malformed reference",
			"reference", ev.PaymentID,
		)
		return nil
	}

	applied, err := s.repo.MarkFailed(ctx, paymentID)
	if err != nil {
		return fmt.Errorf("mark failed: %w", err)
	}

	if !applied {
		slog.Info("webhook expired event had no pending payment",
			"paymentId", ev.PaymentID,
		)
	}

	return nil
}

func (s *Service) List(
	ctx context.Context,
	page core.PageQuery,
) ([]Payment, core.Pagination, error) {
	payments, total, err := s.repo.List(ctx, page)
	if err != nil {
		return nil, core.Pagination{}, fmt.Errorf("list payments: %w", err)
	}

	return payments, core.NewPagination(page, total, len(payments)), nil
}

func (s *Service) Get(ctx context.Context, id string) (*Payment, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, core.BadRequestError("invalid payment id")
	}

	return s.repo.GetByID(ctx, oid)
}

func newTransactionID() string {
	return fmt.Sprintf(
		"txn_%d_%s",
		time.Now().UnixMilli(),
		uuid.New().String()[:8],
	)
}
