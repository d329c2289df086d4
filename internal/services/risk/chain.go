// Package risk screens operations before they reach the ledger. The
// screen is an ordered chain of filters; the first blocking filter wins
// and short-circuits the rest. The chain itself never fails: every
// input maps to a verdict.
package risk

// Chain evaluates filters left to right with early exit.
type Chain struct {
	filters []Filter
}

// NewChain builds a chain over the given filters, in order.
func NewChain(filters ...Filter) *Chain {
	return &Chain{filters: filters}
}

// Evaluate runs the request through the chain. With no blocking filter
// the verdict is a pass.
func (c *Chain) Evaluate(req CheckRequest) CheckResult {
	var run func(i int, req CheckRequest) CheckResult
	run = func(i int, req CheckRequest) CheckResult {
		if i >= len(c.filters) {
			return CheckResult{}
		}
		return c.filters[i](req, func(r CheckRequest) CheckResult {
			return run(i+1, r)
		})
	}
	return run(0, req)
}

// MisrouteFilter blocks operation shapes that must never reach this
// screen: a transfer aimed at a cash leg, or a cash operation whose
// both legs are ledger accounts.
func MisrouteFilter(req CheckRequest, next func(CheckRequest) CheckResult) CheckResult {
	if req.Kind == KindTransfer && req.TargetLeg == LegCash {
		return CheckResult{Blocked: true, Reason: ReasonMisrouted}
	}
	if req.Kind == KindCash && req.SourceLeg == LegAccount && req.TargetLeg == LegAccount {
		return CheckResult{Blocked: true, Reason: ReasonMisrouted}
	}
	return next(req)
}

// WithdrawalLimitFilter blocks cash withdrawals over the per-currency
// limit.
func WithdrawalLimitFilter(limits Limits) Filter {
	return func(req CheckRequest, next func(CheckRequest) CheckResult) CheckResult {
		if req.Kind == KindCash && req.Direction == "withdraw" &&
			req.Amount > limits.withdrawalLimit(req.FromCurrency) {
			return CheckResult{Blocked: true, Reason: ReasonWithdrawalLimit}
		}
		return next(req)
	}
}

// TransferLimitFilter blocks third-party transfers over the per-currency
// limit. Transfers between the holder's own accounts are exempt.
func TransferLimitFilter(limits Limits) Filter {
	return func(req CheckRequest, next func(CheckRequest) CheckResult) CheckResult {
		if req.Kind == KindTransfer && !req.Self &&
			req.Amount > limits.transferLimit(req.FromCurrency) {
			return CheckResult{Blocked: true, Reason: ReasonTransferLimit}
		}
		return next(req)
	}
}

// Service is the screen with the standard filter ordering.
type Service struct {
	chain *Chain
}

// NewService builds the screen over the standard filters.
func NewService(limits Limits) *Service {
	return &Service{
		chain: NewChain(
			MisrouteFilter,
			WithdrawalLimitFilter(limits),
			TransferLimitFilter(limits),
		),
	}
}

// EvaluateCash screens a cash operation. A deposit moves money from the
// cash leg into an account; a withdrawal the other way around.
func (s *Service) EvaluateCash(currency string, amount float64, direction string) CheckResult {
	req := CheckRequest{
		Kind:         KindCash,
		Direction:    direction,
		FromCurrency: currency,
		Amount:       amount,
		SourceLeg:    LegCash,
		TargetLeg:    LegAccount,
	}
	if direction == "withdraw" {
		req.SourceLeg, req.TargetLeg = LegAccount, LegCash
	}
	return s.chain.Evaluate(req)
}

// EvaluateTransfer screens an account-to-account transfer.
func (s *Service) EvaluateTransfer(fromCurrency, toCurrency string, amount float64, self bool) CheckResult {
	return s.chain.Evaluate(CheckRequest{
		Kind:         KindTransfer,
		FromCurrency: fromCurrency,
		ToCurrency:   toCurrency,
		Amount:       amount,
		Self:         self,
		SourceLeg:    LegAccount,
		TargetLeg:    LegAccount,
	})
}
