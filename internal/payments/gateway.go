package payments

import "context"

// Gateway creates charge intents with the payment provider. Amount is in
// minor units (cents).
type Gateway interface {
	CreateIntent(ctx context.Context, amount int64, currency string) (clientSecret string, err error)
}
