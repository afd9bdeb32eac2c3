package check_availability

import (
	"net/url"
	"strconv"
	"time"

	"github.com/m04kA/SMC-PrepRoomService/internal/domain"
	"github.com/m04kA/SMC-PrepRoomService/internal/service/reservations/models"
	checkAvailability "github.com/m04kA/SMC-PrepRoomService/internal/usecase/check_availability"
)

// AvailabilityQuery query параметры запроса
type AvailabilityQuery struct {
	From     string `json:"from" validate:"required"`
	To       string `json:"to" validate:"required"`
	Duration string `json:"duration" validate:"required,number"`
	Capacity string `json:"capacity" validate:"omitempty,number"`
	Urgent   string `json:"urgent" validate:"omitempty,boolean"`
}

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	FuneralHomeID string                `json:"funeralHomeId"`
	Slots         []models.SlotResponse `json:"slots"`
	UrgentSlots   []models.SlotResponse `json:"urgentSlots,omitempty"`
	Total         int                   `json:"total"`
}

// QueryFromValues извлекает параметры из URL
func QueryFromValues(values url.Values) AvailabilityQuery {
	return AvailabilityQuery{
		From:     values.Get("from"),
		To:       values.Get("to"),
		Duration: values.Get("duration"),
		Capacity: values.Get("capacity"),
		Urgent:   values.Get("urgent"),
	}
}

// ToUseCaseRequest создает запрос use case из провалидированных query параметров
func (q AvailabilityQuery) ToUseCaseRequest(funeralHomeID string) (*checkAvailability.Request, error) {
	from, err := time.Parse(domain.DateTimeFormat, q.From)
	if err != nil {
		return nil, err
	}

	to, err := time.Parse(domain.DateTimeFormat, q.To)
	if err != nil {
		return nil, err
	}

	duration, err := strconv.Atoi(q.Duration)
	if err != nil {
		return nil, err
	}

	req := &checkAvailability.Request{
		FuneralHomeID:   funeralHomeID,
		From:            from,
		To:              to,
		DurationMinutes: duration,
	}

	if q.Capacity != "" {
		if req.Capacity, err = strconv.Atoi(q.Capacity); err != nil {
			return nil, err
		}
	}

	if q.Urgent != "" {
		if req.IsUrgent, err = strconv.ParseBool(q.Urgent); err != nil {
			return nil, err
		}
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(funeralHomeID string, resp *checkAvailability.Response) *AvailabilityResponse {
	return &AvailabilityResponse{
		FuneralHomeID: funeralHomeID,
		Slots:         resp.Slots,
		UrgentSlots:   resp.UrgentSlots,
		Total:         resp.Total,
	}
}
