// Package entity contains the core business objects of the project.
package entity

import "strings"

// ProductKey identifies a paid offering.
type ProductKey string

const (
	ProductOSCE ProductKey = "osce" // OSCE practice-exam tool
	ProductQuiz ProductKey = "quiz" // quiz bank
	ProductHub  ProductKey = "hub"  // paywalled resource hub
)

// ProductKeys lists every recognized product in display order.
func ProductKeys() []ProductKey {
	return []ProductKey{ProductOSCE, ProductQuiz, ProductHub}
}

// ParseProductKey normalizes raw input and reports whether it names a recognized product.
func ParseProductKey(raw string) (ProductKey, bool) {
	key := ProductKey(strings.ToLower(strings.TrimSpace(raw)))

	return key, key.Valid()
}

// Valid reports whether the key is one of the recognized products.
func (k ProductKey) Valid() bool {
	switch k {
	case ProductOSCE, ProductQuiz, ProductHub:
		return true
	default:
		return false
	}
}

func (k ProductKey) String() string {
	return string(k)
}
