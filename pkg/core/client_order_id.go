package core

import (
	"strings"

	"github.com/google/uuid"
)

// maxClientOrderIDLen is the longest newClientOrderId the exchange accepts.
const maxClientOrderIDLen = 36

// NewClientOrderID returns a random client order id, optionally prefixed.
// The result only uses characters the exchange allows and is truncated to 36 characters.
func NewClientOrderID(prefix string) string {
	id := prefix + strings.ReplaceAll(uuid.NewString(), "-", "")
	if len(id) > maxClientOrderIDLen {
		id = id[:maxClientOrderIDLen]
	}
	return id
}
