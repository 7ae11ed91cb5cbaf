package payments

import (
	"context"
	"errors"
	"math"
)

// ErrGateway wraps every failure coming back from the external payment
// processor, so handlers can map it to a 502 without knowing the processor.
var ErrGateway = errors.New("payment gateway error")

// Gateway creates payment intents with the external processor. The returned
// client secret is the only thing the browser needs to complete the charge;
// confirmation is client-driven, there is no webhook flow.
type Gateway interface {
	CreateIntent(ctx context.Context, amountCents int64, currency, receiptEmail string) (clientSecret string, err error)
}

// CentsFromPrice converts a price in base currency units to minor units.
func CentsFromPrice(price float64) int64 {
	return int64(math.Round(price * 100))
}
