// Package stripe adapts the Stripe API to the service.PaymentProcessor port.
package stripe

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"

	"nursehub/config"
	"nursehub/internal/domain/entity"
	"nursehub/internal/domain/service"

	"github.com/pkg/errors"
	stripeapi "github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
	"github.com/stripe/stripe-go/v76/webhook"
	"go.uber.org/fx"
)

// Stripe event types the webhook handler understands.
const (
	eventCheckoutSessionCompleted   = "checkout.session.completed"
	eventCustomerSubscriptionUpdate = "customer.subscription.updated"
	eventCustomerSubscriptionDelete = "customer.subscription.deleted"
)

type processor struct {
	api           *client.API
	webhookSecret string
	logger        *slog.Logger
}

// Params holds dependencies for the Stripe processor, injected by Fx.
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// New builds the processor. Without a secret key the API client is left unset and every
// checkout attempt fails; webhook verification only needs the webhook secret.
func New(params Params) service.PaymentProcessor {
	cfg := params.Config.Billing.Stripe

	p := &processor{
		webhookSecret: cfg.WebhookSecret,
		logger:        params.Logger,
	}
	if strings.TrimSpace(cfg.SecretKey) != "" {
		p.api = newAPIClient(cfg.SecretKey, cfg.APIURL, params.Logger)
	}

	return p
}

func newAPIClient(secretKey, apiURL string, logger *slog.Logger) *client.API {
	backendConfig := &stripeapi.BackendConfig{
		LeveledLogger: &slogLeveledLogger{logger: logger},
	}
	if apiURL != "" {
		backendConfig.URL = stripeapi.String(strings.TrimRight(apiURL, "/"))
		backendConfig.MaxNetworkRetries = stripeapi.Int64(0)
	}

	return client.New(secretKey, &stripeapi.Backends{
		API:     stripeapi.GetBackendWithConfig(stripeapi.APIBackend, backendConfig),
		Connect: stripeapi.GetBackendWithConfig(stripeapi.ConnectBackend, backendConfig),
		Uploads: stripeapi.GetBackendWithConfig(stripeapi.UploadsBackend, backendConfig),
	})
}

// CreateCheckoutSession opens a one-time payment checkout for a single unit of the price.
func (p *processor) CreateCheckoutSession(ctx context.Context, req *entity.CheckoutSessionRequest) (*entity.CheckoutSession, error) {
	if p.api == nil {
		return nil, errors.New("stripe secret key is not configured")
	}

	params := &stripeapi.CheckoutSessionParams{
		Mode: stripeapi.String(string(stripeapi.CheckoutSessionModePayment)),
		LineItems: []*stripeapi.CheckoutSessionLineItemParams{{
			Price:    stripeapi.String(req.PriceRef),
			Quantity: stripeapi.Int64(1),
		}},
		SuccessURL: stripeapi.String(req.SuccessURL),
		CancelURL:  stripeapi.String(req.CancelURL),
	}
	params.Context = ctx
	if req.CustomerEmail != "" {
		params.CustomerEmail = stripeapi.String(req.CustomerEmail)
	}
	if req.Metadata.Identity != "" {
		params.ClientReferenceID = stripeapi.String(req.Metadata.Identity)
	}
	for key, value := range req.Metadata.Encode() {
		if value != "" {
			params.AddMetadata(key, value)
		}
	}

	session, err := p.api.CheckoutSessions.New(params)
	if err != nil {
		var stripeErr *stripeapi.Error
		if errors.As(err, &stripeErr) && stripeErr.Code == stripeapi.ErrorCodeResourceMissing && strings.Contains(stripeErr.Param, "price") {
			return nil, errors.Wrap(service.ErrPriceNotFound, stripeErr.Msg)
		}

		return nil, errors.Wrap(err, "failed to create stripe checkout session")
	}

	return &entity.CheckoutSession{ID: session.ID, URL: session.URL}, nil
}

// ParseEvent verifies the Stripe-Signature header over the raw payload and decodes the event.
// Every failure, including a payload that verifies but cannot be decoded, wraps ErrInvalidSignature.
func (p *processor) ParseEvent(payload []byte, signatureHeader string) (*entity.PaymentEvent, error) {
	event, err := webhook.ConstructEventWithOptions(payload, signatureHeader, p.webhookSecret, webhook.ConstructEventOptions{
		IgnoreAPIVersionMismatch: true,
	})
	if err != nil {
		return nil, errors.Wrap(service.ErrInvalidSignature, err.Error())
	}

	result := &entity.PaymentEvent{
		ID:      event.ID,
		RawType: string(event.Type),
		Type:    entity.PaymentEventOther,
	}
	if event.Data == nil {
		return result, nil
	}

	switch string(event.Type) {
	case eventCheckoutSessionCompleted:
		var session stripeapi.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &session); err != nil {
			return nil, errors.Wrapf(service.ErrInvalidSignature, "decode checkout session: %v", err)
		}
		result.Type = entity.PaymentEventCheckoutCompleted
		result.Checkout = toCompletedCheckout(&session)

	case eventCustomerSubscriptionUpdate, eventCustomerSubscriptionDelete:
		var subscription stripeapi.Subscription
		if err := json.Unmarshal(event.Data.Raw, &subscription); err != nil {
			return nil, errors.Wrapf(service.ErrInvalidSignature, "decode subscription: %v", err)
		}
		result.Type = entity.PaymentEventSubscriptionUpdated
		if string(event.Type) == eventCustomerSubscriptionDelete {
			result.Type = entity.PaymentEventSubscriptionDeleted
		}
		result.Subscription = &entity.SubscriptionChange{
			ID:     subscription.ID,
			Status: string(subscription.Status),
		}
		if subscription.Customer != nil {
			result.Subscription.CustomerRef = subscription.Customer.ID
		}
	}

	return result, nil
}

func toCompletedCheckout(session *stripeapi.CheckoutSession) *entity.CompletedCheckout {
	checkout := &entity.CompletedCheckout{
		SessionID:     session.ID,
		CustomerEmail: session.CustomerEmail,
		Metadata:      entity.DecodeCheckoutMetadata(session.Metadata),
	}
	if session.Customer != nil {
		checkout.CustomerRef = session.Customer.ID
	}
	if session.Subscription != nil {
		checkout.SubscriptionRef = session.Subscription.ID
	}
	if checkout.CustomerEmail == "" && session.CustomerDetails != nil {
		checkout.CustomerEmail = session.CustomerDetails.Email
	}

	return checkout
}
