// Package transfer orchestrates account-to-account transfers, both
// between a holder's own currency accounts and to third parties,
// converting the amount when the legs are in different currencies.
package transfer

import (
	"context"
	"fmt"
	"log"

	"remit/internal/clients"
	"remit/internal/currency"
	"remit/internal/models"
	"remit/internal/services/operation"
	"remit/internal/services/risk"

	"github.com/google/uuid"
)

// MsgSameAccountTransfer rejects a self-transfer whose legs are the
// same currency account. Checked locally, before any remote call.
const MsgSameAccountTransfer = "transfer only allowed between different accounts"

// Service is the transfer saga.
type Service struct {
	store     operation.Store
	ledger    operation.Ledger
	risk      operation.RiskChecker
	converter operation.Converter
	notifier  operation.Notifier
}

// NewService creates a transfer saga over the given collaborators.
func NewService(store operation.Store, ledger operation.Ledger, riskChecker operation.RiskChecker, converter operation.Converter, notifier operation.Notifier) *Service {
	return &Service{
		store:     store,
		ledger:    ledger,
		risk:      riskChecker,
		converter: converter,
		notifier:  notifier,
	}
}

// Process runs one transfer. The destination amount is resolved and
// persisted before the ledger step; the ledger applies both legs
// atomically on its side. On success a third-party transfer notifies
// both parties; on a business failure only the sender hears about it.
func (s *Service) Process(ctx context.Context, fromLogin, fromCurrency, toLogin, toCurrency string, amount float64) (*operation.Outcome, error) {
	rec := &models.TransactionRecord{
		ReferenceID:  uuid.NewString(),
		Kind:         models.OperationKindTransfer,
		FromLogin:    fromLogin,
		ToLogin:      toLogin,
		FromCurrency: fromCurrency,
		ToCurrency:   toCurrency,
		FromAmount:   amount,
	}
	if err := s.store.Create(rec); err != nil {
		return nil, fmt.Errorf("failed to persist draft record: %w", err)
	}
	ctx = clients.WithRequestID(ctx, rec.ReferenceID)

	self := rec.SelfTransfer()

	// Moving money to the very account it came from is rejected here,
	// without a risk round trip.
	if self && fromCurrency == toCurrency {
		rec.Blocked = true
		rec.Errors = models.StringArray{MsgSameAccountTransfer}
		if err := s.store.Update(rec); err != nil {
			return nil, fmt.Errorf("failed to persist blocked record: %w", err)
		}
		return operation.Failed(rec.ReferenceID, MsgSameAccountTransfer), nil
	}

	sender, recipient, verdict, err := s.screen(ctx, rec, self)
	if err != nil {
		s.abort(ctx, rec, sender, err)
		return nil, err
	}

	if verdict.Blocked {
		rec.Blocked = true
		rec.Errors = models.StringArray{verdict.Reason}
		if err := s.store.Update(rec); err != nil {
			return nil, fmt.Errorf("failed to persist blocked record: %w", err)
		}
		s.notify(ctx, sender.Email, blockedMessage(rec, verdict.Reason))
		return operation.Failed(rec.ReferenceID, verdict.Reason), nil
	}

	toAmount := amount
	if fromCurrency != toCurrency {
		converted, convErr := s.converter.Convert(ctx, fromCurrency, toCurrency, amount)
		if convErr != nil {
			s.abort(ctx, rec, sender, convErr)
			return nil, convErr
		}
		toAmount = currency.Round(toCurrency, converted)
	}

	// The record must never reach the ledger step with an unresolved
	// destination amount.
	rec.ToAmount = &toAmount
	if err := s.store.Update(rec); err != nil {
		return nil, fmt.Errorf("failed to persist converted record: %w", err)
	}

	result, err := s.ledger.ApplyTransfer(ctx, clients.TransferMutation{
		FromLogin:    fromLogin,
		FromCurrency: fromCurrency,
		ToCurrency:   toCurrency,
		FromAmount:   amount,
		ToAmount:     toAmount,
		ToLogin:      toLogin,
	})
	if err != nil {
		s.abort(ctx, rec, sender, err)
		return nil, err
	}

	rec.Succeeded = result.OK()
	rec.Errors = models.StringArray(result.Errors)
	updateErr := s.store.Update(rec)

	// The ledger already moved (or refused) the money; the parties are
	// told even when the final persist fails. The recipient is not told
	// about an inbound transfer that never arrived.
	if result.OK() {
		if self {
			s.notify(ctx, sender.Email, selfSuccessMessage(rec))
		} else {
			s.notify(ctx, sender.Email, senderSuccessMessage(rec, recipient.DisplayName))
			s.notify(ctx, recipient.Email, recipientSuccessMessage(rec, sender.DisplayName))
		}
	} else {
		s.notify(ctx, sender.Email, failureMessage(rec, result.Errors))
	}

	if updateErr != nil {
		return nil, fmt.Errorf("failed to persist resolved record: %w", updateErr)
	}
	if result.OK() {
		return operation.Success(rec.ReferenceID), nil
	}
	return operation.Failed(rec.ReferenceID, result.Errors...), nil
}

// screen fetches the involved profiles and runs the risk check, all
// concurrently, joining before the saga proceeds. For a self-transfer
// the sender profile serves both parties.
func (s *Service) screen(ctx context.Context, rec *models.TransactionRecord, self bool) (sender, recipient *models.Profile, verdict risk.CheckResult, err error) {
	type profileReply struct {
		profile *models.Profile
		err     error
	}
	type verdictReply struct {
		verdict risk.CheckResult
		err     error
	}

	senderCh := make(chan profileReply, 1)
	riskCh := make(chan verdictReply, 1)
	go func() {
		p, perr := s.ledger.GetProfile(ctx, rec.FromLogin)
		senderCh <- profileReply{p, perr}
	}()
	go func() {
		v, verr := s.risk.CheckTransfer(ctx, rec.FromCurrency, rec.ToCurrency, rec.FromAmount, self)
		riskCh <- verdictReply{v, verr}
	}()

	var recipCh chan profileReply
	if !self {
		recipCh = make(chan profileReply, 1)
		go func() {
			p, perr := s.ledger.GetProfile(ctx, rec.ToLogin)
			recipCh <- profileReply{p, perr}
		}()
	}

	sr := <-senderCh
	vr := <-riskCh
	rr := sr
	if !self {
		rr = <-recipCh
	}

	if sr.err != nil {
		return nil, nil, risk.CheckResult{}, sr.err
	}
	if rr.err != nil {
		return sr.profile, nil, risk.CheckResult{}, rr.err
	}
	if vr.err != nil {
		return sr.profile, rr.profile, risk.CheckResult{}, vr.err
	}
	return sr.profile, rr.profile, vr.verdict, nil
}

// abort finalizes a record that never resolved at the ledger as
// not-blocked/not-succeeded, with a best-effort notification to the
// initiator when the condition was not a plain collaborator outage.
func (s *Service) abort(ctx context.Context, rec *models.TransactionRecord, sender *models.Profile, cause error) {
	rec.Errors = models.StringArray{cause.Error()}
	if err := s.store.Update(rec); err != nil {
		log.Printf("failed to finalize aborted transfer record %s: %v", rec.ReferenceID, err)
	}
	if sender != nil && !clients.IsUnavailable(cause) {
		s.notify(ctx, sender.Email, abortMessage(rec))
	}
}

func (s *Service) notify(ctx context.Context, email, message string) {
	if err := s.notifier.Publish(ctx, email, message); err != nil {
		log.Printf("transfer notification suppressed: %v", err)
	}
}
