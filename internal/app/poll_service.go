// internal/app/poll_service.go
package app

import (
	"context"
	"fmt"

	"homework_status_bot/internal/domain/homework"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// FailurePrefix starts every failure message sent to the chat.
const FailurePrefix = "Сбой в работе программы: "

// Fetcher retrieves homework statuses changed since a unix timestamp.
type Fetcher interface {
	Fetch(ctx context.Context, since int64) (homework.Response, error)
}

// Notifier delivers a message to the chat and reports whether it succeeded.
type Notifier interface {
	Notify(message string) bool
}

// PollState is everything the loop remembers between cycles.
type PollState struct {
	// Since is the cursor passed as from_date on the next fetch.
	Since int64
	// LastErrorMessage is the last failure message reported to the chat.
	LastErrorMessage string
}

// PollService runs single poll cycles. It is not safe for concurrent use;
// the scheduler calls RunCycle strictly sequentially.
type PollService struct {
	fetcher  Fetcher
	notifier Notifier
	logger   *logrus.Entry
	state    PollState
}

func NewPollService(f Fetcher, n Notifier, logger *logrus.Entry, since int64) *PollService {
	return &PollService{
		fetcher:  f,
		notifier: n,
		logger:   logger,
		state:    PollState{Since: since},
	}
}

// State returns a copy of the current poll state.
func (s *PollService) State() PollState {
	return s.state
}

// RunCycle fetches, validates, formats and notifies once. Errors are
// handled here (logged and, when appropriate, reported to the chat); the
// returned error is informational only.
func (s *PollService) RunCycle(ctx context.Context) error {
	cycleLogger := s.logger.WithFields(logrus.Fields{
		"cycle_id":  uuid.NewString(),
		"from_date": s.state.Since,
	})

	err := s.poll(ctx, cycleLogger)
	if err == nil {
		return nil
	}

	kind := homework.KindOf(err)
	cycleLogger = cycleLogger.WithError(err).WithField("error_kind", kind.String())

	switch kind {
	case homework.KindTransport:
		cycleLogger.Error("Homework API unreachable, will retry")
	default:
		cycleLogger.Error("Poll cycle failed")
		s.reportFailure(cycleLogger, FailurePrefix+homework.Message(err))
	}
	return err
}

func (s *PollService) poll(ctx context.Context, logger *logrus.Entry) error {
	resp, err := s.fetcher.Fetch(ctx, s.state.Since)
	if err != nil {
		return fmt.Errorf("fetch homework statuses: %w", err)
	}

	// The cursor is read before anything is sent: a status message that
	// cannot be followed by a cursor advance would be repeated every cycle.
	next, hasCursor, err := homework.CurrentDate(resp)
	if err != nil {
		return err
	}

	rec, err := homework.ValidateAndExtract(resp)
	switch {
	case homework.KindOf(err) == homework.KindEmpty:
		logger.Debug("No homework status changes")
		if !hasCursor {
			logger.Warn("No current_date in API response, keeping cursor")
			return nil
		}
	case err != nil:
		return err
	default:
		if !hasCursor {
			return &homework.Error{Kind: homework.KindMissingKey, Msg: "нет ключа \"current_date\" в ответе API"}
		}
		message, err := homework.FormatMessage(rec)
		if err != nil {
			return err
		}
		logger.WithField("homework_name", *rec.Name).Info("Homework status changed")
		if !s.notifier.Notify(message) {
			logger.Warn("Status change message was not delivered")
		}
	}

	s.state.Since = next
	return nil
}

// reportFailure sends message unless it repeats the previously reported one.
func (s *PollService) reportFailure(logger *logrus.Entry, message string) {
	if message == s.state.LastErrorMessage {
		logger.Debug("Failure already reported, not sending again")
		return
	}
	s.state.LastErrorMessage = message
	if !s.notifier.Notify(message) {
		logger.Warn("Failure message was not delivered")
	}
}
