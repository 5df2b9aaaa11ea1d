package types

// LoadingState tracks the generation phase of a submission. The analysis
// phase has its own independent in-progress flag and is not represented here.
type LoadingState string

// Generation phase states.
const (
	StateIdle    LoadingState = "IDLE"
	StateLoading LoadingState = "LOADING"
	StateSuccess LoadingState = "SUCCESS"
	StateError   LoadingState = "ERROR"
)
