// Package mock provides test doubles for limit interfaces using function fields.
package mock

import (
	"context"

	"github.com/bellande/limit"
)

// Interface compliance check.
var _ limit.Provider = (*Provider)(nil)

// Provider is a test double for limit.Provider.
// Set SubmitFn before calling Submit.
type Provider struct {
	SubmitFn func(ctx context.Context, p limit.Params) (limit.Result, error)
}

// Submit delegates to SubmitFn.
func (p *Provider) Submit(ctx context.Context, params limit.Params) (limit.Result, error) {
	return p.SubmitFn(ctx, params)
}
