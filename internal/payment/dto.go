// AngelaMos | 2026
// dto.go

package payment

type CreateCheckoutSessionRequest struct {
	UserID     string `json:"userId"     validate:"required"`
	SuccessURL string `json:"successUrl" validate:"omitempty,url"`
	CancelURL  string `json:"cancelUrl"  validate:"omitempty,url"`
}

type CreateCheckoutSessionResponse struct {
	TransactionID      string `json:"transactionId"`
	CheckoutSessionID  string `json:"checkoutSessionId"`
	CheckoutSessionURL string `json:"checkoutSessionUrl"`
	SuccessURL         string `json:"successUrl"`
	CancelURL          string `json:"cancelUrl"`
	Amount             int64  `json:"amount"`
	Currency           string `json:"currency"`
}

type ListPaymentsResponse struct {
	Payments   []Payment `json:"payments"`
	Pagination any       `json:"pagination"`
}
