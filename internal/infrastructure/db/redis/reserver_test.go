package redis

import (
	"testing"

	"github.com/umd-esiea/umd-api/internal/core/domain"
)

func TestReservationKey(t *testing.T) {
	got := reservationKey(domain.ResourceUser, domain.Key{Field: "email", Value: "ada@example.com"})
	if got != "reserve:user:email:ada@example.com" {
		t.Fatalf("unexpected key %q", got)
	}
}
