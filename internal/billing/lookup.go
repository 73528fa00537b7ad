package billing

import (
	"context"
	"net/http"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
)

//go:generate mockgen -source=lookup.go -destination=mock_lookup.go -package=billing
type Lookup interface {
	Subscription(ctx context.Context, id string) (*stripe.Subscription, error)
	Customer(ctx context.Context, id string) (*stripe.Customer, error)
	CustomerByEmail(ctx context.Context, email string) (*stripe.Customer, error)
	PortalSession(ctx context.Context, customerID, returnURL string) (string, error)
}

// APILookup resolves Stripe objects through the stripe-go client.
type APILookup struct {
	api *client.API
}

var _ Lookup = (*APILookup)(nil)

func NewAPILookup(secretKey string, httpClient *http.Client) *APILookup {
	var backends *stripe.Backends
	if httpClient != nil {
		backends = stripe.NewBackends(httpClient)
	}
	return &APILookup{api: client.New(secretKey, backends)}
}

func (l *APILookup) Subscription(ctx context.Context, id string) (*stripe.Subscription, error) {
	params := &stripe.SubscriptionParams{}
	params.Context = ctx
	return l.api.Subscriptions.Get(id, params)
}

func (l *APILookup) Customer(ctx context.Context, id string) (*stripe.Customer, error) {
	params := &stripe.CustomerParams{}
	params.Context = ctx
	return l.api.Customers.Get(id, params)
}

func (l *APILookup) CustomerByEmail(ctx context.Context, email string) (*stripe.Customer, error) {
	params := &stripe.CustomerListParams{Email: stripe.String(email)}
	params.Limit = stripe.Int64(1)
	params.Context = ctx

	it := l.api.Customers.List(params)
	if it.Next() {
		return it.Customer(), nil
	}
	if err := it.Err(); err != nil {
		return nil, err
	}

	return nil, CustomerNotFound
}

func (l *APILookup) PortalSession(ctx context.Context, customerID, returnURL string) (string, error) {
	params := &stripe.BillingPortalSessionParams{
		Customer:  stripe.String(customerID),
		ReturnURL: stripe.String(returnURL),
	}
	params.Context = ctx

	s, err := l.api.BillingPortalSessions.New(params)
	if err != nil {
		return "", err
	}
	return s.URL, nil
}
