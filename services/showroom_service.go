package services

import (
	"fmt"
	"log/slog"
	"time"

	"furniture-lab/domain/furniture"
	"furniture-lab/errors"
	"furniture-lab/repositories"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

var validate = validator.New()

type DemonstrateRequest struct {
	Variant string `validate:"required"`
}

type IShowroomService interface {
	Demonstrate(request DemonstrateRequest) (furniture.Demonstration, error)
	DemonstrateAll() ([]furniture.Demonstration, error)
}

// ShowroomService runs the client routine: it only ever talks to the
// abstract factory and the abstract products, never to a concrete
// variant, so any factory can be swapped in without touching it.
type ShowroomService struct {
	log        *slog.Logger
	repository repositories.IDemonstrationRepository
}

func NewShowroomService(log *slog.Logger, repository repositories.IDemonstrationRepository) *ShowroomService {
	return &ShowroomService{
		log:        log,
		repository: repository,
	}
}

func (s ShowroomService) Demonstrate(request DemonstrateRequest) (furniture.Demonstration, error) {
	if err := validate.Struct(request); err != nil {
		return furniture.Demonstration{}, fmt.Errorf("%w: %v", errors.ErrInvalidRequest, err)
	}

	variant, err := furniture.ParseVariant(request.Variant)
	if err != nil {
		return furniture.Demonstration{}, err
	}

	factory, err := furniture.FactoryFor(variant)
	if err != nil {
		return furniture.Demonstration{}, err
	}

	chair := factory.CreateChair()
	sofa := factory.CreateSofa()

	demonstration := furniture.Demonstration{
		ID:        uuid.New(),
		Variant:   variant,
		SleepLine: sofa.CanSleep(),
		SitLine:   sofa.CanSit(chair),
		At:        time.Now().UTC(),
	}

	if err := s.repository.Store(demonstration); err != nil {
		return furniture.Demonstration{}, fmt.Errorf("storing demonstration: %w", err)
	}

	s.log.Info("Demonstration completed",
		"id", demonstration.ID,
		"variant", demonstration.Variant,
	)
	return demonstration, nil
}

// DemonstrateAll exercises every variant of the closed set, in
// presentation order.
func (s ShowroomService) DemonstrateAll() ([]furniture.Demonstration, error) {
	demonstrations := make([]furniture.Demonstration, 0, len(furniture.Variants()))
	for _, variant := range furniture.Variants() {
		demonstration, err := s.Demonstrate(DemonstrateRequest{Variant: string(variant)})
		if err != nil {
			return nil, err
		}
		demonstrations = append(demonstrations, demonstration)
	}
	return demonstrations, nil
}
