// AngelaMos | 2026
// service_test.go

package payment

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/carterperez-dev/farrior-homes-api/internal/config"
	"github.com/carterperez-dev/farrior-homes-api/internal/core"
	"github.com/carterperez-dev/farrior-homes-api/internal/user"
)

type fakeRepo struct {
	payments map[primitive.ObjectID]*Payment
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{payments: make(map[primitive.ObjectID]*Payment)}
}

func (r *fakeRepo) EnsureIndexes(ctx context.Context) error { return nil }

func (r *fakeRepo) Create(ctx context.Context, payment *Payment) error {
	for _, existing := range r.payments {
		if existing.TransactionID == payment.TransactionID {
			return fmt.Errorf("create payment: %w", core.ErrDuplicateKey)
		}
	}
	payment.ID = primitive.NewObjectID()
	payment.CreatedAt = time.Now().UTC()
	payment.UpdatedAt = payment.CreatedAt
	copied := *payment
	r.payments[payment.ID] = &copied
	return nil
}

func (r *fakeRepo) GetByID(
	ctx context.Context,
	id primitive.ObjectID,
) (*Payment, error) {
	p, ok := r.payments[id]
	if !ok {
		return nil, fmt.Errorf("get payment: %w", core.ErrNotFound)
	}
	copied := *p
	return &copied, nil
}

func (r *fakeRepo) List(
	ctx context.Context,
	page core.PageQuery,
) ([]Payment, int64, error) {
	out := make([]Payment, 0, len(r.payments))
	for _, p := range r.payments {
		out = append(out, *p)
	}
	return out, int64(len(out)), nil
}

func (r *fakeRepo) SetCheckoutSession(
	ctx context.Context,
	id primitive.ObjectID,
	sessionID string,
) error {
	p, ok := r.payments[id]
	if !ok {
		return fmt.Errorf("set checkout session: %w", core.ErrNotFound)
	}
	p.StripeCheckoutSessionID = sessionID
	return nil
}

func (r *fakeRepo) MarkCompleted(
	ctx context.Context,
	id primitive.ObjectID,
	paymentIntentID string,
	paidAt time.Time,
) (bool, error) {
	p, ok := r.payments[id]
	if !ok || p.Status != StatusPending {
		return false, nil
	}
	p.Status = StatusCompleted
	p.LifetimeAccessGranted = true
	p.PaidAt = &paidAt
	if paymentIntentID != "" {
		p.TransactionID = paymentIntentID
		p.StripePaymentIntentID = paymentIntentID
	}
	return true, nil
}

func (r *fakeRepo) MarkFailed(
	ctx context.Context,
	id primitive.ObjectID,
) (bool, error) {
	p, ok := r.payments[id]
	if !ok || p.Status != StatusPending {
		return false, nil
	}
	p.Status = StatusFailed
	return true, nil
}

func (r *fakeRepo) ListGrantedUserIDs(
	ctx context.Context,
) ([]primitive.ObjectID, error) {
	seen := make(map[primitive.ObjectID]struct{})
	ids := make([]primitive.ObjectID, 0)
	for _, p := range r.payments {
		if p.Status != StatusCompleted || !p.LifetimeAccessGranted {
			continue
		}
		if _, ok := seen[p.User]; ok {
			continue
		}
		seen[p.User] = struct{}{}
		ids = append(ids, p.User)
	}
	return ids, nil
}

type fakeUsers struct {
	users map[primitive.ObjectID]*user.User
}

func newFakeUsers() *fakeUsers {
	return &fakeUsers{users: make(map[primitive.ObjectID]*user.User)}
}

func (f *fakeUsers) add(u *user.User) primitive.ObjectID {
	if u.ID.IsZero() {
		u.ID = primitive.NewObjectID()
	}
	f.users[u.ID] = u
	return u.ID
}

func (f *fakeUsers) GetByID(
	ctx context.Context,
	id primitive.ObjectID,
) (*user.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, fmt.Errorf("get user: %w", core.ErrNotFound)
	}
	copied := *u
	return &copied, nil
}

func (f *fakeUsers) SetSubscribed(
	ctx context.Context,
	id primitive.ObjectID,
) error {
	u, ok := f.users[id]
	if !ok {
		return fmt.Errorf("set subscribed: %w", core.ErrNotFound)
	}
	u.IsSubscribed = true
	return nil
}

type fakeGateway struct {
	sessions  []CheckoutParams
	nextEvent WebhookEvent
	parseErr  error
}

func (g *fakeGateway) CreateCheckoutSession(
	ctx context.Context,
	params CheckoutParams,
) (*CheckoutSession, error) {
	g.sessions = append(g.sessions, params)
	return &CheckoutSession{
		ID:  "cs_test_123",
		URL: "https://checkout.stripe.com/c/pay/cs_test_123",
	}, nil
}

func (g *fakeGateway) ParseWebhookEvent(
	payload []byte,
	signature string,
) (WebhookEvent, error) {
	if g.parseErr != nil {
		return nil, g.parseErr
	}
	return g.nextEvent, nil
}

func newTestService(
	repo Repository,
	users UserProvider,
	gateway Gateway,
) *Service {
	return NewService(repo, users, gateway, config.StripeConfig{
		Amount:   99,
		Currency: "usd",
	}, config.AppConfig{
		FrontendURL: "https://example.com",
	})
}

func TestCreateCheckoutSessionCreatesPendingPayment(t *testing.T) {
	repo := newFakeRepo()
	users := newFakeUsers()
	gateway := &fakeGateway{}
	svc := newTestService(repo, users, gateway)

	userID := users.add(&user.User{Email: "buyer@example.com"})

	resp, err := svc.CreateCheckoutSession(
		context.Background(),
		CreateCheckoutSessionRequest{UserID: userID.Hex()},
	)
	require.NoError(t, err)

	assert.Equal(t, "cs_test_123", resp.CheckoutSessionID)
	assert.Equal(t, int64(99), resp.Amount)
	assert.Equal(t, "usd", resp.Currency)
	assert.Contains(t, resp.TransactionID, "txn_")
	assert.Equal(t, "https://example.com/payment/success", resp.SuccessURL)
	assert.Equal(t, "https://example.com/payment/cancel", resp.CancelURL)

	require.Len(t, repo.payments, 1)
	for _, p := range repo.payments {
		assert.Equal(t, StatusPending, p.Status)
		assert.Equal(t, userID, p.User)
		assert.Equal(t, "cs_test_123", p.StripeCheckoutSessionID)
		assert.False(t, p.LifetimeAccessGranted)
	}

	require.Len(t, gateway.sessions, 1)
	assert.Equal(t, userID.Hex(), gateway.sessions[0].UserID)
}

func TestCreateCheckoutSessionGeneratesUniqueTransactionIDs(t *testing.T) {
	repo := newFakeRepo()
	users := newFakeUsers()
	svc := newTestService(repo, users, &fakeGateway{})

	seen := make(map[string]struct{})
	for i := 0; i < 5; i++ {
		userID := users.add(&user.User{})
		resp, err := svc.CreateCheckoutSession(
			context.Background(),
			CreateCheckoutSessionRequest{UserID: userID.Hex()},
		)
		require.NoError(t, err)

		_, dup := seen[resp.TransactionID]
		assert.False(t, dup, "transaction id reused: %s", resp.TransactionID)
		seen[resp.TransactionID] = struct{}{}
	}
}

func TestCreateCheckoutSessionPreconditions(t *testing.T) {
	repo := newFakeRepo()
	users := newFakeUsers()
	svc := newTestService(repo, users, &fakeGateway{})

	suspendedID := users.add(&user.User{IsSuspended: true})
	subscribedID := users.add(&user.User{IsSubscribed: true})

	tests := []struct {
		name       string
		userID     string
		wantStatus int
	}{
		{"malformed user id", "not-an-object-id", 400},
		{"unknown user", primitive.NewObjectID().Hex(), 404},
		{"suspended user", suspendedID.Hex(), 400},
		{"already subscribed", subscribedID.Hex(), 400},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateCheckoutSession(
				context.Background(),
				CreateCheckoutSessionRequest{UserID: tt.userID},
			)
			require.Error(t, err)

			var appErr *core.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, tt.wantStatus, appErr.Status)
		})
	}

	// No payment document may exist after a rejected request.
	assert.Empty(t, repo.payments)
}

func TestHandleWebhookCompletedGrantsSubscription(t *testing.T) {
	repo := newFakeRepo()
	users := newFakeUsers()
	gateway := &fakeGateway{}
	svc := newTestService(repo, users, gateway)

	userID := users.add(&user.User{})
	payment := &Payment{
		User:          userID,
		Status:        StatusPending,
		TransactionID: "txn_1_abc",
	}
	require.NoError(t, repo.Create(context.Background(), payment))

	gateway.nextEvent = CheckoutCompleted{
		PaymentID:       payment.ID.Hex(),
		PaymentIntentID: "pi_123",
	}

	err := svc.HandleWebhook(context.Background(), []byte("{}"), "sig")
	require.NoError(t, err)

	stored := repo.payments[payment.ID]
	assert.Equal(t, StatusCompleted, stored.Status)
	assert.True(t, stored.LifetimeAccessGranted)
	assert.NotNil(t, stored.PaidAt)
	assert.Equal(t, "pi_123", stored.TransactionID)
	assert.Equal(t, "pi_123", stored.StripePaymentIntentID)
	assert.True(t, users.users[userID].IsSubscribed)
}

func TestHandleWebhookCompletedRedeliveryIsNoOp(t *testing.T) {
	repo := newFakeRepo()
	users := newFakeUsers()
	gateway := &fakeGateway{}
	svc := newTestService(repo, users, gateway)

	userID := users.add(&user.User{})
	payment := &Payment{
		User:          userID,
		Status:        StatusPending,
		TransactionID: "txn_1_abc",
	}
	require.NoError(t, repo.Create(context.Background(), payment))

	gateway.nextEvent = CheckoutCompleted{
		PaymentID:       payment.ID.Hex(),
		PaymentIntentID: "pi_123",
	}

	require.NoError(
		t,
		svc.HandleWebhook(context.Background(), []byte("{}"), "sig"),
	)
	firstPaidAt := repo.payments[payment.ID].PaidAt

	require.NoError(
		t,
		svc.HandleWebhook(context.Background(), []byte("{}"), "sig"),
	)

	stored := repo.payments[payment.ID]
	assert.Equal(t, StatusCompleted, stored.Status)
	assert.Equal(t, firstPaidAt, stored.PaidAt)
	assert.True(t, users.users[userID].IsSubscribed)
}

func TestHandleWebhookExpiredFailsPaymentWithoutUserChange(t *testing.T) {
	repo := newFakeRepo()
	users := newFakeUsers()
	gateway := &fakeGateway{}
	svc := newTestService(repo, users, gateway)

	userID := users.add(&user.User{})
	payment := &Payment{
		User:          userID,
		Status:        StatusPending,
		TransactionID: "txn_1_abc",
	}
	require.NoError(t, repo.Create(context.Background(), payment))

	gateway.nextEvent = CheckoutExpired{PaymentID: payment.ID.Hex()}

	err := svc.HandleWebhook(context.Background(), []byte("{}"), "sig")
	require.NoError(t, err)

	stored := repo.payments[payment.ID]
	assert.Equal(t, StatusFailed, stored.Status)
	assert.False(t, stored.LifetimeAccessGranted)
	assert.Nil(t, stored.PaidAt)
	assert.False(t, users.users[userID].IsSubscribed)
}

func TestHandleWebhookExpiredDoesNotOverrideCompleted(t *testing.T) {
	repo := newFakeRepo()
	users := newFakeUsers()
	gateway := &fakeGateway{}
	svc := newTestService(repo, users, gateway)

	userID := users.add(&user.User{})
	payment := &Payment{
		User:          userID,
		Status:        StatusPending,
		TransactionID: "txn_1_abc",
	}
	require.NoError(t, repo.Create(context.Background(), payment))

	gateway.nextEvent = CheckoutCompleted{PaymentID: payment.ID.Hex()}
	require.NoError(
		t,
		svc.HandleWebhook(context.Background(), []byte("{}"), "sig"),
	)

	gateway.nextEvent = CheckoutExpired{PaymentID: payment.ID.Hex()}
	require.NoError(
		t,
		svc.HandleWebhook(context.Background(), []byte("{}"), "sig"),
	)

	assert.Equal(t, StatusCompleted, repo.payments[payment.ID].Status)
}

func TestHandleWebhookCompletedAfterExpiredDoesNotGrant(t *testing.T) {
	repo := newFakeRepo()
	users := newFakeUsers()
	gateway := &fakeGateway{}
	svc := newTestService(repo, users, gateway)

	userID := users.add(&user.User{})
	payment := &Payment{
		User:          userID,
		Status:        StatusPending,
		TransactionID: "txn_1_abc",
	}
	require.NoError(t, repo.Create(context.Background(), payment))

	gateway.nextEvent = CheckoutExpired{PaymentID: payment.ID.Hex()}
	require.NoError(
		t,
		svc.HandleWebhook(context.Background(), []byte("{}"), "sig"),
	)

	// A late completed delivery for the same session must not resurrect
	// the failed payment or flip the user.
	gateway.nextEvent = CheckoutCompleted{
		PaymentID:       payment.ID.Hex(),
		PaymentIntentID: "pi_123",
	}
	require.NoError(
		t,
		svc.HandleWebhook(context.Background(), []byte("{}"), "sig"),
	)

	stored := repo.payments[payment.ID]
	assert.Equal(t, StatusFailed, stored.Status)
	assert.False(t, stored.LifetimeAccessGranted)
	assert.False(t, users.users[userID].IsSubscribed)
}

func TestHandleWebhookUnknownReferenceIsAcknowledged(t *testing.T) {
	repo := newFakeRepo()
	users := newFakeUsers()
	gateway := &fakeGateway{}
	svc := newTestService(repo, users, gateway)

	tests := []struct {
		name  string
		event WebhookEvent
	}{
		{
			"unknown payment id",
			CheckoutCompleted{PaymentID: primitive.NewObjectID().Hex()},
		},
		{
			"malformed reference",
			CheckoutCompleted{PaymentID: "garbage"},
		},
		{
			"expired for unknown payment",
			CheckoutExpired{PaymentID: primitive.NewObjectID().Hex()},
		},
		{
			"unhandled event type",
			UnhandledEvent{Type: "invoice.paid"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gateway.nextEvent = tt.event
			err := svc.HandleWebhook(
				context.Background(),
				[]byte("{}"),
				"sig",
			)
			assert.NoError(t, err)
			assert.Empty(t, repo.payments)
		})
	}
}

func TestHandleWebhookInvalidSignatureMutatesNothing(t *testing.T) {
	repo := newFakeRepo()
	users := newFakeUsers()
	gateway := &fakeGateway{
		parseErr: errors.New("verify webhook signature: bad signature"),
	}
	svc := newTestService(repo, users, gateway)

	userID := users.add(&user.User{})
	payment := &Payment{
		User:          userID,
		Status:        StatusPending,
		TransactionID: "txn_1_abc",
	}
	require.NoError(t, repo.Create(context.Background(), payment))

	err := svc.HandleWebhook(context.Background(), []byte("{}"), "bad")
	require.Error(t, err)

	var appErr *core.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 400, appErr.Status)

	assert.Equal(t, StatusPending, repo.payments[payment.ID].Status)
	assert.False(t, users.users[userID].IsSubscribed)
}

func TestReconcilerRepairsMissingSubscriptionFlag(t *testing.T) {
	repo := newFakeRepo()
	users := newFakeUsers()

	userID := users.add(&user.User{})
	paidAt := time.Now().UTC()
	payment := &Payment{
		User:                  userID,
		Status:                StatusCompleted,
		TransactionID:         "pi_123",
		LifetimeAccessGranted: true,
		PaidAt:                &paidAt,
	}
	require.NoError(t, repo.Create(context.Background(), payment))

	reconciler := NewReconciler(repo, users, time.Minute)

	require.NoError(t, reconciler.Sweep(context.Background()))
	assert.True(t, users.users[userID].IsSubscribed)

	// A second sweep finds nothing to repair.
	require.NoError(t, reconciler.Sweep(context.Background()))
	assert.True(t, users.users[userID].IsSubscribed)
}
