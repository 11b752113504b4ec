package plogic

// Action is the outcome of the agent's decision rule.
type Action string

const (
	ActionA Action = "Take action A"
	ActionB Action = "Take action B"
)

// Decide is the agent's only rule: act A when the condition holds.
func Decide(condition bool) Action {
	if And(condition, true) {
		return ActionA
	}
	return ActionB
}

// Agent holds the single condition its decision depends on.
type Agent struct {
	Condition bool
}

// NewAgent returns an agent whose condition is true.
func NewAgent() *Agent {
	return &Agent{Condition: true}
}

// MakeDecision applies Decide to the agent's condition.
func (a *Agent) MakeDecision() string {
	return string(Decide(a.Condition))
}
