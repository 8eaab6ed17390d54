package entity

import "strings"

// Metadata keys carried through the payment processor's session metadata.
const (
	MetadataIdentity   = "identity"
	MetadataProductKey = "product_key"
	MetadataGuestEmail = "guest_email"
)

// CheckoutMetadata is the context record that survives the asynchronous round trip
// through the payment processor. Identity is empty for guest checkout.
type CheckoutMetadata struct {
	Identity   string
	ProductKey ProductKey
	GuestEmail string
}

// Encode serializes the record into processor metadata.
func (m CheckoutMetadata) Encode() map[string]string {
	return map[string]string{
		MetadataIdentity:   m.Identity,
		MetadataProductKey: string(m.ProductKey),
		MetadataGuestEmail: m.GuestEmail,
	}
}

// DecodeCheckoutMetadata reads the record back from processor metadata.
// Unrecognized product keys are returned as-is; callers check ProductKey.Valid.
func DecodeCheckoutMetadata(raw map[string]string) CheckoutMetadata {
	if raw == nil {
		return CheckoutMetadata{}
	}

	return CheckoutMetadata{
		Identity:   strings.TrimSpace(raw[MetadataIdentity]),
		ProductKey: ProductKey(strings.ToLower(strings.TrimSpace(raw[MetadataProductKey]))),
		GuestEmail: NormalizeEmail(raw[MetadataGuestEmail]),
	}
}

// CheckoutSessionRequest is the value sent to the payment processor to open a hosted checkout.
type CheckoutSessionRequest struct {
	ProductKey    ProductKey
	PriceRef      string
	SuccessURL    string
	CancelURL     string
	CustomerEmail string
	Metadata      CheckoutMetadata
}

// CheckoutSession is the processor's answer to a session request.
type CheckoutSession struct {
	ID  string
	URL string
}
