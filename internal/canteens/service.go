package canteens

import (
	"context"

	"queuesmart/pkg/logger"
)

type Service interface {
	List(ctx context.Context) []Canteen
	Nearest(ctx context.Context, lat, lon float64) (*NearestResponse, error)
}

type service struct {
	directory *Directory
	log       *logger.Logger
}

func NewService(directory *Directory, log *logger.Logger) Service {
	return &service{directory: directory, log: log}
}

func (s *service) List(ctx context.Context) []Canteen {
	return s.directory.All()
}

func (s *service) Nearest(ctx context.Context, lat, lon float64) (*NearestResponse, error) {
	canteen, err := s.directory.Nearest(lat, lon)
	if err != nil {
		return nil, err
	}

	s.log.LogNearestCanteen(ctx, lat, lon, canteen.Name)

	return &NearestResponse{
		Canteen:    canteen,
		DistanceKm: Haversine(lat, lon, canteen.Latitude, canteen.Longitude),
	}, nil
}
