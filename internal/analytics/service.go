package analytics

import (
	"context"

	"queuesmart/internal/canteens"
	"queuesmart/pkg/llm"
	"queuesmart/pkg/logger"
)

// Service defines the analytics service interface
type Service interface {
	// Series never fails; any error degrades to FallbackSeries
	Series(ctx context.Context) *Series
}

type service struct {
	responder llm.Responder
	directory *canteens.Directory
	log       *logger.Logger
}

// NewService creates a new analytics service instance
func NewService(responder llm.Responder, directory *canteens.Directory, log *logger.Logger) Service {
	return &service{
		responder: responder,
		directory: directory,
		log:       log,
	}
}

func (s *service) Series(ctx context.Context) *Series {
	names := s.directory.Names()

	points, err := s.fetch(ctx, names)
	if err != nil {
		s.log.LogAnalyticsFallback(ctx, err)
		return &Series{Points: FallbackSeries(), Simulated: true, Fallback: true}
	}

	return &Series{Points: points, Simulated: true}
}

func (s *service) fetch(ctx context.Context, names []string) ([]SeriesPoint, error) {
	text, err := s.responder.Generate(ctx, BuildPrompt(names), ResponseSchema(names))
	if err != nil {
		return nil, err
	}
	return ParseReply(text, names)
}
