// Package cash orchestrates a single cash operation: persist the
// attempt, screen it, mutate the ledger, notify the holder.
package cash

import (
	"context"
	"fmt"
	"log"

	"remit/internal/clients"
	"remit/internal/models"
	"remit/internal/services/operation"
	"remit/internal/services/risk"

	"github.com/google/uuid"
)

// Service is the cash saga.
type Service struct {
	store    operation.Store
	ledger   operation.Ledger
	risk     operation.RiskChecker
	notifier operation.Notifier
}

// NewService creates a cash saga over the given collaborators.
func NewService(store operation.Store, ledger operation.Ledger, riskChecker operation.RiskChecker, notifier operation.Notifier) *Service {
	return &Service{
		store:    store,
		ledger:   ledger,
		risk:     riskChecker,
		notifier: notifier,
	}
}

// Process runs one deposit or withdrawal for a login. Business failures
// come back inside the outcome; downstream-unavailable and unexpected
// conditions come back as errors. The record is on disk before any
// remote call and is finalized on every path.
func (s *Service) Process(ctx context.Context, login, currencyCode string, amount float64, direction string) (*operation.Outcome, error) {
	rec := &models.TransactionRecord{
		ReferenceID:  uuid.NewString(),
		Kind:         models.OperationKindCash,
		Direction:    direction,
		FromLogin:    login,
		FromCurrency: currencyCode,
		FromAmount:   amount,
	}
	if err := s.store.Create(rec); err != nil {
		return nil, fmt.Errorf("failed to persist draft record: %w", err)
	}
	ctx = clients.WithRequestID(ctx, rec.ReferenceID)

	profile, verdict, err := s.screen(ctx, rec)
	if err != nil {
		s.abort(ctx, rec, profile, err)
		return nil, err
	}

	if verdict.Blocked {
		rec.Blocked = true
		rec.Errors = models.StringArray{verdict.Reason}
		if err := s.store.Update(rec); err != nil {
			return nil, fmt.Errorf("failed to persist blocked record: %w", err)
		}
		s.notify(ctx, profile.Email, blockedMessage(rec, verdict.Reason))
		return operation.Failed(rec.ReferenceID, verdict.Reason), nil
	}

	// Screen cleared; stamp the progress before touching the ledger.
	if err := s.store.Update(rec); err != nil {
		return nil, fmt.Errorf("failed to persist screened record: %w", err)
	}

	result, err := s.ledger.ApplyCash(ctx, clients.CashMutation{
		Login:     login,
		Currency:  currencyCode,
		Amount:    amount,
		Direction: direction,
	})
	if err != nil {
		s.abort(ctx, rec, profile, err)
		return nil, err
	}

	rec.Succeeded = result.OK()
	rec.Errors = models.StringArray(result.Errors)
	updateErr := s.store.Update(rec)

	// The ledger already resolved the money movement; the holder is told
	// even when the final persist fails.
	s.notify(ctx, profile.Email, resultMessage(rec, result.Errors))

	if updateErr != nil {
		return nil, fmt.Errorf("failed to persist resolved record: %w", updateErr)
	}

	if result.OK() {
		return operation.Success(rec.ReferenceID), nil
	}
	return operation.Failed(rec.ReferenceID, result.Errors...), nil
}

// screen fetches the holder's profile and runs the risk check
// concurrently, joining both before the saga proceeds.
func (s *Service) screen(ctx context.Context, rec *models.TransactionRecord) (*models.Profile, risk.CheckResult, error) {
	type profileReply struct {
		profile *models.Profile
		err     error
	}
	type verdictReply struct {
		verdict risk.CheckResult
		err     error
	}

	profCh := make(chan profileReply, 1)
	riskCh := make(chan verdictReply, 1)
	go func() {
		p, err := s.ledger.GetProfile(ctx, rec.FromLogin)
		profCh <- profileReply{p, err}
	}()
	go func() {
		v, err := s.risk.CheckCash(ctx, rec.FromCurrency, rec.FromAmount, rec.Direction)
		riskCh <- verdictReply{v, err}
	}()

	pr := <-profCh
	vr := <-riskCh
	if pr.err != nil {
		return nil, risk.CheckResult{}, pr.err
	}
	if vr.err != nil {
		return pr.profile, risk.CheckResult{}, vr.err
	}
	return pr.profile, vr.verdict, nil
}

// abort finalizes a record that never resolved at the ledger as
// not-blocked/not-succeeded, with a best-effort notification when the
// condition was not a plain collaborator outage.
func (s *Service) abort(ctx context.Context, rec *models.TransactionRecord, profile *models.Profile, cause error) {
	rec.Errors = models.StringArray{cause.Error()}
	if err := s.store.Update(rec); err != nil {
		log.Printf("failed to finalize aborted cash record %s: %v", rec.ReferenceID, err)
	}
	if profile != nil && !clients.IsUnavailable(cause) {
		s.notify(ctx, profile.Email, abortMessage(rec))
	}
}

// notify records the intent; its failure is logged and suppressed so a
// broken outbox never fails an operation the ledger already resolved.
func (s *Service) notify(ctx context.Context, email, message string) {
	if err := s.notifier.Publish(ctx, email, message); err != nil {
		log.Printf("cash notification suppressed: %v", err)
	}
}
