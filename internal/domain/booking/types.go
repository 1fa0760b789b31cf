package booking

type LifecycleState string

const (
	LifecyclePending   LifecycleState = "pending"
	LifecycleConfirmed LifecycleState = "confirmed"
	LifecycleCancelled LifecycleState = "cancelled"
)

var lifecycleTransitions = map[LifecycleState][]LifecycleState{
	LifecyclePending:   {LifecycleConfirmed, LifecycleCancelled},
	LifecycleConfirmed: {LifecycleCancelled},
	LifecycleCancelled: {},
}

// Manual edits may only cancel. Confirmation happens when a payment settles.
var manualTransitions = map[LifecycleState][]LifecycleState{
	LifecyclePending:   {LifecycleCancelled},
	LifecycleConfirmed: {LifecycleCancelled},
	LifecycleCancelled: {},
}

func (s LifecycleState) String() string {
	return string(s)
}

func (s LifecycleState) IsValid() bool {
	_, ok := lifecycleTransitions[s]
	return ok
}

func (s LifecycleState) CanTransitionTo(next LifecycleState) bool {
	for _, allowed := range lifecycleTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// CanManuallyTransitionTo reports whether an administrator may set next directly.
func (s LifecycleState) CanManuallyTransitionTo(next LifecycleState) bool {
	for _, allowed := range manualTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

func ParseLifecycle(s string) (LifecycleState, error) {
	state := LifecycleState(s)
	if !state.IsValid() {
		return "", ErrInvalidLifecycle
	}
	return state, nil
}
