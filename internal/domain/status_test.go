package domain_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"laundry-service/internal/domain"
)

func advance(t *testing.T, kind domain.PickupKind, from domain.PickupStatus, steps int) []domain.PickupStatus {
	t.Helper()
	out := []domain.PickupStatus{from}
	cur := from
	for i := 0; i < steps; i++ {
		cur = domain.NextStatus(cur, kind)
		out = append(out, cur)
	}
	return out
}

func TestNextStatus_PickupReachesCompletedInFiveSteps(t *testing.T) {
	t.Parallel()

	got := advance(t, domain.KindPickup, domain.PickupPending, 5)
	require.Equal(t, []domain.PickupStatus{
		domain.PickupPending,
		domain.PickupAssigned,
		domain.PickupEnroute,
		domain.PickupArrived,
		domain.PickupPicked,
		domain.PickupCompleted,
	}, got)

	seen := make(map[domain.PickupStatus]bool, len(got))
	for _, s := range got {
		require.False(t, seen[s], "status %q revisited", s)
		seen[s] = true
	}
}

func TestNextStatus_DeliveryReachesCompletedInThreeSteps(t *testing.T) {
	t.Parallel()

	got := advance(t, domain.KindDelivery, domain.PickupPending, 3)
	require.Equal(t, []domain.PickupStatus{
		domain.PickupPending,
		domain.PickupAssigned,
		domain.PickupTransit,
		domain.PickupCompleted,
	}, got)
}

func TestNextStatus_CompletedIsNoop(t *testing.T) {
	t.Parallel()

	for _, kind := range []domain.PickupKind{domain.KindPickup, domain.KindDelivery} {
		require.Equal(t, domain.PickupCompleted, domain.NextStatus(domain.PickupCompleted, kind))
	}
}

func TestNextStatus_UnknownInputsAreNoop(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		status domain.PickupStatus
		kind   domain.PickupKind
	}{
		{"garbage status", "lost", domain.KindPickup},
		{"delivery step on pickup", domain.PickupTransit, domain.KindPickup},
		{"pickup step on delivery", domain.PickupArrived, domain.KindDelivery},
		{"unknown kind", domain.PickupPending, "drone"},
		{"empty", "", domain.KindDelivery},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.status, domain.NextStatus(tt.status, tt.kind))
		})
	}
}

func TestPickupKind_Allows(t *testing.T) {
	t.Parallel()

	require.True(t, domain.KindPickup.Allows(domain.PickupArrived))
	require.False(t, domain.KindPickup.Allows(domain.PickupTransit))
	require.True(t, domain.KindDelivery.Allows(domain.PickupTransit))
	require.False(t, domain.KindDelivery.Allows(domain.PickupPicked))
	require.False(t, domain.PickupKind("x").Allows(domain.PickupPending))
}

func TestPickupKind_SequenceReturnsCopy(t *testing.T) {
	t.Parallel()

	seq := domain.KindDelivery.Sequence()
	seq[0] = "mutated"
	require.Equal(t, domain.PickupPending, domain.KindDelivery.Sequence()[0])
	require.Nil(t, domain.PickupKind("x").Sequence())
}

func TestPickupStatus_Valid(t *testing.T) {
	t.Parallel()

	for _, s := range []domain.PickupStatus{"pending", "assigned", "enroute", "arrived", "picked", "transit", "completed"} {
		require.True(t, s.Valid(), s)
	}
	require.False(t, domain.PickupStatus("cancelled").Valid())
	require.True(t, domain.PickupCompleted.IsTerminal())
	require.False(t, domain.PickupPicked.IsTerminal())
}

func TestOrder_Open(t *testing.T) {
	t.Parallel()

	require.True(t, domain.Order{Status: domain.OrderPending}.Open())
	require.True(t, domain.Order{Status: domain.OrderReady}.Open())
	require.False(t, domain.Order{Status: domain.OrderCompleted}.Open())
	require.False(t, domain.Order{Status: domain.OrderCancelled}.Open())
}

func TestPickupDelivery_ApplyKeepsUnsetFields(t *testing.T) {
	t.Parallel()

	p := domain.PickupDelivery{Type: domain.KindPickup, Status: domain.PickupPending, CustomerName: "Ann", Address: "Main st 1"}
	addr := "Second st 2"
	got := p.Apply(domain.PartialPickupUpdate{Address: &addr})

	require.Equal(t, "Ann", got.CustomerName)
	require.Equal(t, addr, got.Address)
	require.Equal(t, "Main st 1", p.Address)
	require.True(t, domain.PartialPickupUpdate{}.Empty())
}
