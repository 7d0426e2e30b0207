package model

import "fmt"

// PlanState is the lifecycle position of a reveal transaction.
type PlanState string

var (
	PlanPlanned         PlanState = "PLANNED"
	PlanAwaitingFunding PlanState = "AWAITING_FUNDING"
	PlanFunded          PlanState = "FUNDED"
	PlanFinalized       PlanState = "FINALIZED"
	PlanSigned          PlanState = "SIGNED"
	PlanBroadcast       PlanState = "BROADCAST"
	PlanAborted         PlanState = "ABORTED"
)

var nextPlanState = map[PlanState]PlanState{
	PlanPlanned:         PlanAwaitingFunding,
	PlanAwaitingFunding: PlanFunded,
	PlanFunded:          PlanFinalized,
	PlanFinalized:       PlanSigned,
	PlanSigned:          PlanBroadcast,
}

// Terminal reports whether no further transition is allowed.
func (s PlanState) Terminal() bool {
	return s == PlanBroadcast || s == PlanAborted
}

// DefaultPostage is the value of the inscribed output in sats.
const DefaultPostage uint64 = 600

// RevealRequest is the input of a reveal plan.
type RevealRequest struct {
	Content       []byte
	MediaType     string
	Meta          map[string]any
	FeeRate       uint64
	Postage       uint64
	Destination   string
	ChangeAddress string
	PublicKey     string
}

// RevealPlan describes the commit address a reveal transaction spends from and
// the funding it needs there. It lives for one operation and is never persisted.
type RevealPlan struct {
	CommitAddress   string
	CommitPkScript  []byte
	RequiredFeeSats uint64
	PostageSats     uint64
	FeeRate         uint64
	Content         []byte
	MediaType       string
	Meta            map[string]any
	Destination     string
	ChangeAddress   string

	InternalKey  []byte
	LeafScript   []byte
	ControlBlock []byte
	MerkleRoot   []byte

	State PlanState
}

// Advance moves the plan one step forward. Skipping a state or leaving a
// terminal state is an error.
func (p *RevealPlan) Advance(next PlanState) error {
	if p.State.Terminal() {
		return fmt.Errorf("%w: plan is %s", ErrInvalidTransition, p.State)
	}
	if next == PlanAborted {
		p.State = PlanAborted
		return nil
	}
	if want, ok := nextPlanState[p.State]; !ok || want != next {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, p.State, next)
	}
	p.State = next
	return nil
}

// Abort marks the plan aborted unless it already reached a terminal state.
func (p *RevealPlan) Abort() {
	if !p.State.Terminal() {
		p.State = PlanAborted
	}
}
