package testutil

import (
	"fmt"

	"github.com/google/uuid"
)

// RandomEmail returns a unique address so tests don't collide on the
// users_email_key constraint.
func RandomEmail() string {
	return fmt.Sprintf("user-%s@example.com", uuid.NewString()[:8])
}

// RandomName returns a unique display name with the given prefix.
func RandomName(prefix string) string {
	return fmt.Sprintf("%s-%s", prefix, uuid.NewString()[:8])
}
