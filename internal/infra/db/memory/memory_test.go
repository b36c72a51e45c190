package memory

import (
	"testing"

	"interior-billing/go_backend/internal/infra/db/storetest"
)

func TestMemoryStore(t *testing.T) {
	storetest.Run(t, New())
}
