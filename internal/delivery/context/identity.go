package context

import (
	"nursehub/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

// KeyIdentity is the key for storing the verified session identity in echo.Context.
const KeyIdentity ContextKey = "identity"

// SetIdentity stores the verified session identity in echo.Context.
func SetIdentity(c echo.Context, identity *entity.Identity) {
	c.Set(string(KeyIdentity), identity)
}

// GetIdentity returns the verified session identity, or false for an anonymous caller.
func GetIdentity(c echo.Context) (*entity.Identity, bool) {
	identity, ok := c.Get(string(KeyIdentity)).(*entity.Identity)
	if !ok || identity == nil {
		return nil, false
	}

	return identity, true
}
