package payment

// Shapes mirror the payment backend's DTOs. JSON tags follow the camelCase
// convention used elsewhere in the project.

// CreateRequest is the payload POSTed to the payment-creation endpoint.
type CreateRequest struct {
	MerchantID    int     `json:"merchantId"`
	OrderID       string  `json:"orderId"`
	Amount        float64 `json:"amount"`
	Currency      string  `json:"currency"`
	PaymentMethod string  `json:"paymentMethod"`
	Description   string  `json:"description"`
	CustomerName  string  `json:"customerName"`
	CustomerEmail string  `json:"customerEmail"`
	CallbackURL   string  `json:"callbackUrl"`
}

// Response is the payment record returned by the backend. Only a subset of
// the backend's fields is needed here; unknown fields are ignored.
type Response struct {
	ID            int     `json:"id"`
	ReferenceID   string  `json:"referenceId"`
	MerchantID    int     `json:"merchantId"`
	Amount        float64 `json:"amount"`
	Currency      string  `json:"currency"`
	Status        string  `json:"status"`
	PaymentMethod string  `json:"paymentMethod"`
	Description   string  `json:"description"`
	CustomerName  string  `json:"customerName"`
	CustomerEmail string  `json:"customerEmail"`
	CreatedAt     string  `json:"createdAt"`
	CompletedAt   *string `json:"completedAt,omitempty"`
}

// Summary is the list-view shape used by the admin dashboard passthrough.
type Summary struct {
	ID            int     `json:"id"`
	ReferenceID   string  `json:"referenceId"`
	Amount        float64 `json:"amount"`
	Currency      string  `json:"currency"`
	Status        string  `json:"status"`
	PaymentMethod string  `json:"paymentMethod"`
	CustomerName  *string `json:"customerName"`
	CreatedAt     string  `json:"createdAt"`
}

// Page is the backend's pagination envelope.
type Page struct {
	Content       []Summary `json:"content"`
	Page          int       `json:"page"`
	Size          int       `json:"size"`
	TotalElements int       `json:"totalElements"`
	TotalPages    int       `json:"totalPages"`
}
