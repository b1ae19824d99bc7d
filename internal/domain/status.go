package domain

// Ordered workflow per kind. A pickup has to reach the customer and collect the
// bag; a delivery only needs to be in transit.
var (
	pickupSequence = [...]PickupStatus{
		PickupPending, PickupAssigned, PickupEnroute, PickupArrived, PickupPicked, PickupCompleted,
	}
	deliverySequence = [...]PickupStatus{
		PickupPending, PickupAssigned, PickupTransit, PickupCompleted,
	}
)

var allowedKinds = [...]PickupKind{KindPickup, KindDelivery}

func (k PickupKind) sequence() []PickupStatus {
	switch k {
	case KindPickup:
		return pickupSequence[:]
	case KindDelivery:
		return deliverySequence[:]
	default:
		return nil
	}
}

// Valid checks if the PickupKind is valid
func (k PickupKind) Valid() bool {
	for _, v := range allowedKinds {
		if k == v {
			return true
		}
	}
	return false
}

// Sequence returns a copy of the kind's ordered statuses, or nil for an unknown kind.
func (k PickupKind) Sequence() []PickupStatus {
	seq := k.sequence()
	if seq == nil {
		return nil
	}
	out := make([]PickupStatus, len(seq))
	copy(out, seq)
	return out
}

// Allows reports whether status belongs to the kind's workflow.
func (k PickupKind) Allows(status PickupStatus) bool {
	for _, s := range k.sequence() {
		if s == status {
			return true
		}
	}
	return false
}

// Valid checks if the status belongs to at least one workflow.
func (s PickupStatus) Valid() bool {
	return KindPickup.Allows(s) || KindDelivery.Allows(s)
}

// IsTerminal reports whether no further step exists.
func (s PickupStatus) IsTerminal() bool {
	return s == PickupCompleted
}

// NextStatus returns the status following current in the workflow of kind.
// Terminal, unknown statuses and unknown kinds come back unchanged.
func NextStatus(current PickupStatus, kind PickupKind) PickupStatus {
	seq := kind.sequence()
	for i, s := range seq {
		if s != current {
			continue
		}
		if i+1 < len(seq) {
			return seq[i+1]
		}
		return current
	}
	return current
}
