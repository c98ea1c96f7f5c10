package predictions

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"queuesmart/internal/telemetry"
	"queuesmart/pkg/llm"
	"queuesmart/pkg/logger"
)

const (
	ValidationMessage = "Please enter both canteen name and time."
	FailureMessage    = "Failed to get prediction. Please check your API key and try again."
)

var ErrValidation = errors.New("canteen name and time are required")

type Service interface {
	Predict(ctx context.Context, req Request) (*Prediction, error)
	// Wait blocks until queued prediction events have been handed to the
	// publisher. Call it before closing the publisher.
	Wait()
}

type service struct {
	responder  llm.Responder
	publisher  telemetry.Publisher
	log        *logger.Logger
	publishing sync.WaitGroup
}

func NewService(responder llm.Responder, publisher telemetry.Publisher, log *logger.Logger) Service {
	if publisher == nil {
		publisher = telemetry.Noop{}
	}
	return &service{
		responder: responder,
		publisher: publisher,
		log:       log,
	}
}

// Predict issues a fresh request for every call. Empty input fails with
// ErrValidation before anything leaves the process.
func (s *service) Predict(ctx context.Context, req Request) (*Prediction, error) {
	if req.Canteen == "" || req.Time == "" {
		return nil, ErrValidation
	}

	start := time.Now()
	prediction, err := s.predict(ctx, req)
	duration := time.Since(start)

	s.log.LogPrediction(ctx, req.Canteen, req.Time, duration, err)
	s.publish(ctx, req, prediction, duration, err)

	return prediction, err
}

func (s *service) predict(ctx context.Context, req Request) (*Prediction, error) {
	text, err := s.responder.Generate(ctx, BuildPrompt(req.Canteen, req.Time), ResponseSchema())
	if err != nil {
		return nil, fmt.Errorf("prediction request failed: %w", err)
	}

	prediction, err := ParseReply(text)
	if err != nil {
		return nil, fmt.Errorf("prediction request failed: %w", err)
	}
	return prediction, nil
}

func (s *service) publish(ctx context.Context, req Request, prediction *Prediction, duration time.Duration, err error) {
	event := telemetry.NewPredictionEvent(req.Canteen, req.Time, duration)
	if err != nil {
		event.Outcome = telemetry.OutcomeFailed
		event.Error = err.Error()
	} else {
		event.Outcome = telemetry.OutcomeServed
		event.QueueLength = string(prediction.QueueLength)
		event.WaitTimeMinutes = prediction.WaitTimeMinutes
	}

	s.publishing.Add(1)
	go func(ctx context.Context) {
		defer s.publishing.Done()
		if err := s.publisher.PublishPrediction(ctx, event); err != nil {
			s.log.ErrorWithContext(ctx, "Failed to publish prediction event", err, map[string]interface{}{
				"canteen": req.Canteen,
			})
		}
	}(context.WithoutCancel(ctx))
}

func (s *service) Wait() {
	s.publishing.Wait()
}
