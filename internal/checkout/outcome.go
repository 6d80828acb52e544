package checkout

import "storefront-gateway/internal/money"

// State is a step of one checkout attempt.
type State string

const (
	StateIdle              State = "idle"
	StateSubmitting        State = "submitting"
	StateOrderCreated      State = "order_created"
	StatePaymentPreparing  State = "payment_preparing"
	StatePaymentRedirected State = "payment_redirected"
	StateConfirming        State = "confirming"
	StateSucceeded         State = "succeeded"
	StateFailed            State = "failed"
	StateCancelled         State = "cancelled"
)

// Outcome is where an attempt stopped. Each terminal kind is its own type so
// callers switch on the type, never on message text.
type Outcome interface {
	State() State
}

// Invalid keeps the attempt at Idle with field-level messages.
type Invalid struct {
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields"`
}

type Failed struct {
	Message     string `json:"message"`
	Code        string `json:"code,omitempty"`
	OrderNumber string `json:"order_number,omitempty"`
}

// Succeeded is a finished order: paid, or created with no payment step.
type Succeeded struct {
	OrderNumber    string `json:"order_number"`
	Location       string `json:"location"`
	PaymentSkipped bool   `json:"payment_skipped,omitempty"`
}

// Redirected hands the browser the parameters for the payment widget.
type Redirected struct {
	OrderNumber string `json:"order_number"`
	Widget      Widget `json:"widget"`
}

type Cancelled struct {
	Message     string `json:"message"`
	OrderNumber string `json:"order_number,omitempty"`
}

// Pending means the confirmation for this redirect is already running.
type Pending struct {
	OrderNumber string `json:"order_number,omitempty"`
}

func (Invalid) State() State    { return StateIdle }
func (Failed) State() State     { return StateFailed }
func (Succeeded) State() State  { return StateSucceeded }
func (Redirected) State() State { return StatePaymentRedirected }
func (Cancelled) State() State  { return StateCancelled }
func (Pending) State() State    { return StateConfirming }

// Widget is what the payment provider's widget is invoked with.
type Widget struct {
	ClientKey     string       `json:"clientKey"`
	Amount        money.Amount `json:"amount"`
	OrderID       string       `json:"orderId"`
	OrderName     string       `json:"orderName"`
	CustomerName  string       `json:"customerName"`
	CustomerEmail string       `json:"customerEmail"`
	SuccessURL    string       `json:"successUrl"`
	FailURL       string       `json:"failUrl"`
}

func OrderLocation(orderNumber string) string {
	return "/orders/" + orderNumber
}
