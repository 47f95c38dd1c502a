package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/sdupi-network/sdupi-token-core/internal/core"
	"github.com/sdupi-network/sdupi-token-core/internal/db/model"
	"github.com/sdupi-network/sdupi-token-core/internal/observability/metrics"
	"github.com/sdupi-network/sdupi-token-core/internal/observability/tracing"
	"github.com/sdupi-network/sdupi-token-core/internal/types"
	"github.com/sourcegraph/conc"
)

const metricsCodeOK = "OK"

// Execute applies one operation to the core under the write lock, then
// journals it and fans its events out to the configured sinks. By the time
// the journal and sinks run, the operation's effect on the ledger is
// already final, so their failures are logged and counted but never roll
// anything back.
func (s *Service) Execute(ctx context.Context, op core.Operation) (*core.Receipt, error) {
	opID := uuid.NewString()
	startTime := time.Now()

	s.mu.Lock()
	receipt, applyErr := s.core.Apply(op)
	s.mu.Unlock()

	metrics.RecordOperationDuration(time.Since(startTime), op.Kind().String(), applyErr != nil)

	code := metricsCodeOK
	if applyErr != nil {
		code = core.CodeFor(applyErr).String()
	}
	metrics.RecordOperationResult(op.Kind().String(), code)

	s.journalOperation(ctx, opID, op, receipt, applyErr, startTime)

	if applyErr != nil {
		return nil, applyErr
	}

	s.publishEvents(ctx, opID, op, receipt, startTime)

	return receipt, nil
}

// journalOperation records the operation, applied or rejected, in the
// audit journal.
func (s *Service) journalOperation(
	ctx context.Context,
	opID string,
	op core.Operation,
	receipt *core.Receipt,
	applyErr error,
	startTime time.Time,
) {
	entry := &model.OperationDocument{
		ID:        opID,
		Kind:      op.Kind().String(),
		Caller:    string(op.CallerAddress()),
		Params:    opParams(op),
		Outcome:   types.OutcomeApplied.String(),
		TraceID:   tracing.TraceID(ctx),
		Timestamp: startTime.Unix(),
	}

	if applyErr != nil {
		entry.Outcome = types.OutcomeRejected.String()
		entry.ErrorCode = core.CodeFor(applyErr).String()
	} else {
		if receipt.Principal.IsPositive() {
			entry.Principal = receipt.Principal.String()
		}
		if receipt.Reward.IsPositive() {
			entry.Reward = receipt.Reward.String()
		}
	}

	if err := s.db.AppendOperation(ctx, entry); err != nil {
		log.Ctx(ctx).Error().
			Err(err).
			Str("operation_id", opID).
			Str("kind", entry.Kind).
			Msg("Failed to journal operation")
	}
}

// publishEvents pushes the receipt's events to every configured sink. Each
// sink receives the events in application order; sinks run concurrently so
// a slow sink does not hold up the others.
func (s *Service) publishEvents(
	ctx context.Context,
	opID string,
	op core.Operation,
	receipt *core.Receipt,
	startTime time.Time,
) {
	if len(s.sinks) == 0 || len(receipt.Events) == 0 {
		return
	}

	events, err := receiptToOperationEvents(opID, op, receipt, startTime)
	if err != nil {
		log.Ctx(ctx).Error().
			Err(err).
			Str("operation_id", opID).
			Msg("Failed to encode operation events")
		return
	}

	var wg conc.WaitGroup
	for _, sink := range s.sinks {
		wg.Go(func() {
			for _, ev := range events {
				if err := sink.Push(ctx, ev); err != nil {
					metrics.RecordQueueSendError()
					log.Ctx(ctx).Error().
						Err(err).
						Str("operation_id", opID).
						Str("event_type", ev.Type).
						Msg("Failed to push operation event to sink")
				}
			}
		})
	}
	wg.Wait()
}
