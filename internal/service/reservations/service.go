package reservations

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-PrepRoomService/internal/domain"
	"github.com/m04kA/SMC-PrepRoomService/internal/service/reservations/models"
)

// Service сервис чтения бронирований
type Service struct {
	repo   ReservationRepository
	logger Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(repo ReservationRepository, logger Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// GetByID получает бронирование по ID
func (s *Service) GetByID(ctx context.Context, id string) (*models.ReservationResponse, error) {
	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("%w: reservation id is required", ErrInvalidInput)
	}

	reservation, err := s.repo.GetReservationByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrReservationNotFound) {
			s.logger.Warn("GetByID: reservation id=%s not found", id)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("GetByID: repository error for reservation id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainReservation(reservation), nil
}

// GetByCase получает все бронирования дела, включая освобождённые
func (s *Service) GetByCase(ctx context.Context, caseID string) (*models.ReservationListResponse, error) {
	if strings.TrimSpace(caseID) == "" {
		return nil, fmt.Errorf("%w: case id is required", ErrInvalidInput)
	}

	s.logger.Info("GetByCase: fetching reservations for case=%s", caseID)

	list, err := s.repo.GetReservationsByCase(ctx, caseID)
	if err != nil {
		s.logger.Error("GetByCase: repository error for case=%s: %v", caseID, err)
		return nil, fmt.Errorf("%w: GetByCase - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetByCase: found %d reservations for case=%s", len(list), caseID)
	return &models.ReservationListResponse{
		Reservations: models.FromDomainReservations(list),
	}, nil
}
