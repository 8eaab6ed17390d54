// Package model holds the GORM table mappings of the persistence layer.
package model

// All returns every table model, in migration order.
func All() []any {
	return []any{
		&ProfileModel{},
		&EntitlementModel{},
		&PurchaseModel{},
		&WebhookEventModel{},
	}
}
