package transaction

// State is the co-signing phase a guarded transaction is in
type State string

const (
	// StateBuilt = all fields populated, no signature computed yet
	StateBuilt State = "built"
	// StateGuardianSigned = the guardian signature is attached, fields are frozen
	StateGuardianSigned State = "guardian-signed"
	// StateOwnerSigned = both signatures attached, ready for broadcast
	StateOwnerSigned State = "owner-signed"
	// StateSubmitted = handed to the network, the transaction hash is known
	StateSubmitted State = "submitted"
)

// String returns the string representation of the state
func (s State) String() string {
	return string(s)
}

var nextStates = map[State]State{
	StateBuilt:          StateGuardianSigned,
	StateGuardianSigned: StateOwnerSigned,
	StateOwnerSigned:    StateSubmitted,
}

// CanTransitionTo returns true if the provided state directly follows the current one
func (s State) CanTransitionTo(next State) bool {
	expected, ok := nextStates[s]
	return ok && expected == next
}
