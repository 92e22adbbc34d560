package limit

import (
	"context"
	"fmt"
)

// State is the lifecycle position of an Invocation.
type State int

const (
	StateUnvalidated State = iota // Before Validate.
	StateValidated                // Params ready for submission.
	StateDispatched               // Submit in progress.
	StateSucceeded                // Provider returned a result.
	StateFailed                   // Validation or submission failed.
)

func (s State) String() string {
	switch s {
	case StateUnvalidated:
		return "unvalidated"
	case StateValidated:
		return "validated"
	case StateDispatched:
		return "dispatched"
	case StateSucceeded:
		return "succeeded"
	case StateFailed:
		return "failed"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Invocation tracks a single request from raw input to outcome. Each method
// is legal in exactly one state and there is no way back:
//
//	Unvalidated --Validate--> Validated --Submit--> Dispatched --> Succeeded
//	     |                                               |
//	     +------------------> Failed <-------------------+
//
// An Invocation is not safe for concurrent use.
type Invocation struct {
	input  Input
	state  State
	params Params
	result Result
	err    error
}

// NewInvocation returns an Invocation in StateUnvalidated.
func NewInvocation(in Input) *Invocation {
	return &Invocation{input: in}
}

// State returns the current state.
func (inv *Invocation) State() State { return inv.state }

// Params returns the validated params. It is the zero value before a
// successful Validate.
func (inv *Invocation) Params() Params { return inv.params }

// Result returns the provider's result once the invocation has succeeded.
// It is the zero value in every other state.
func (inv *Invocation) Result() Result { return inv.result }

// Err returns the error that moved the invocation to StateFailed.
func (inv *Invocation) Err() error { return inv.err }

// Validate parses and validates the input.
func (inv *Invocation) Validate() error {
	if inv.state != StateUnvalidated {
		return fmt.Errorf("validate in state %s: %w", inv.state, ErrInvalidState)
	}
	p, err := ParseInput(inv.input)
	if err != nil {
		return inv.fail(err)
	}
	inv.params = p
	inv.state = StateValidated
	return nil
}

// Submit hands the validated params to provider and records the outcome.
func (inv *Invocation) Submit(ctx context.Context, provider Provider) (Result, error) {
	if inv.state != StateValidated {
		return Result{}, fmt.Errorf("submit in state %s: %w", inv.state, ErrInvalidState)
	}
	inv.state = StateDispatched
	res, err := provider.Submit(ctx, inv.params)
	if err != nil {
		return Result{}, inv.fail(err)
	}
	inv.result = res
	inv.state = StateSucceeded
	return res, nil
}

func (inv *Invocation) fail(err error) error {
	inv.err = err
	inv.state = StateFailed
	return err
}
