package service

// MetricsRecorder counts business outcomes of the reconciliation flow.
type MetricsRecorder interface {
	ObserveCheckout(productKey, result string)
	ObserveWebhook(eventType, outcome string)
	ObserveEntitlementChange(action string)
	ObserveClaimedPurchases(count int)
}
