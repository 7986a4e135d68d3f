package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/magicvilla/villa-api/internal/core/domain"
	"github.com/magicvilla/villa-api/internal/core/dto"
	"github.com/magicvilla/villa-api/internal/core/patch"
	"github.com/magicvilla/villa-api/internal/core/ports"
	"github.com/magicvilla/villa-api/internal/core/query"
	"github.com/magicvilla/villa-api/internal/core/repository"
	"github.com/magicvilla/villa-api/internal/pkg/metrics"
)

const msgVillaIDInvalid = "VillaID is not valid"

// VillaNumberService implements villa number CRUD. Every write re-checks that
// the number is free and that the referenced villa exists.
type VillaNumberService struct {
	repo     ports.VillaNumberRepository
	villas   ports.VillaRepository
	validate func(any) error
	logger   zerolog.Logger
}

func NewVillaNumberService(repo ports.VillaNumberRepository, villas ports.VillaRepository, validate func(any) error, logger zerolog.Logger) *VillaNumberService {
	return &VillaNumberService{repo: repo, villas: villas, validate: validate, logger: logger}
}

func (s *VillaNumberService) List(ctx context.Context) ([]dto.VillaNumberDTO, error) {
	numbers, err := s.repo.List(ctx, query.All())
	if err != nil {
		return nil, err
	}
	return toVillaNumberDTOs(numbers), nil
}

func (s *VillaNumberService) Get(ctx context.Context, villaNo int) (*dto.VillaNumberDTO, error) {
	if err := requireID(villaNo); err != nil {
		return nil, err
	}
	n, err := s.find(ctx, villaNo, false)
	if err != nil {
		return nil, err
	}
	out := toVillaNumberDTO(n)
	return &out, nil
}

func (s *VillaNumberService) Create(ctx context.Context, in dto.VillaNumberCreateDTO) (*dto.VillaNumberDTO, error) {
	existing, err := s.repo.Get(ctx, query.Eq(repository.ColVillaNo, in.VillaNo), false)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		metrics.ConflictsTotal.WithLabelValues(metrics.ResourceVillaNumber).Inc()
		return nil, domain.Errorf(domain.ErrConflict, "Villa number must be unique")
	}
	if err := s.ensureVilla(ctx, in.VillaID); err != nil {
		return nil, err
	}

	n := villaNumberFromCreate(in)
	if err := s.repo.Create(ctx, n); err != nil {
		return nil, s.writeError(err)
	}

	metrics.MutationsTotal.WithLabelValues(metrics.ResourceVillaNumber, "create").Inc()
	s.logger.Info().Int("villa_no", n.VillaNo).Int("villa_id", n.VillaID).Msg("villa number created")

	out := toVillaNumberDTO(n)
	return &out, nil
}

func (s *VillaNumberService) Update(ctx context.Context, villaNo int, in dto.VillaNumberUpdateDTO) (*dto.VillaNumberDTO, error) {
	if err := requireID(villaNo); err != nil {
		return nil, err
	}
	if in.VillaNo != villaNo {
		return nil, domain.NewValidationError("villaNo in the path does not match the body")
	}
	if _, err := s.find(ctx, villaNo, false); err != nil {
		return nil, err
	}
	return s.replace(ctx, in, "update")
}

func (s *VillaNumberService) Patch(ctx context.Context, villaNo int, document []byte) (*dto.VillaNumberDTO, error) {
	if err := requireID(villaNo); err != nil {
		return nil, err
	}
	n, err := s.find(ctx, villaNo, false)
	if err != nil {
		return nil, err
	}

	target := toVillaNumberUpdateDTO(n)
	if err := patch.Apply(&target, document, s.validate); err != nil {
		metrics.PatchDocumentsTotal.WithLabelValues(metrics.ResourceVillaNumber, "rejected").Inc()
		return nil, err
	}
	if target.VillaNo != villaNo {
		metrics.PatchDocumentsTotal.WithLabelValues(metrics.ResourceVillaNumber, "rejected").Inc()
		return nil, domain.NewValidationError("villaNo cannot be changed")
	}
	metrics.PatchDocumentsTotal.WithLabelValues(metrics.ResourceVillaNumber, "applied").Inc()
	return s.replace(ctx, target, "patch")
}

func (s *VillaNumberService) Delete(ctx context.Context, villaNo int) error {
	if err := requireID(villaNo); err != nil {
		return err
	}
	n, err := s.find(ctx, villaNo, true)
	if err != nil {
		return err
	}
	if err := s.repo.Remove(ctx, n); err != nil {
		return s.writeError(err)
	}
	metrics.MutationsTotal.WithLabelValues(metrics.ResourceVillaNumber, "delete").Inc()
	s.logger.Info().Int("villa_no", villaNo).Msg("villa number deleted")
	return nil
}

func (s *VillaNumberService) replace(ctx context.Context, in dto.VillaNumberUpdateDTO, action string) (*dto.VillaNumberDTO, error) {
	if err := s.ensureVilla(ctx, in.VillaID); err != nil {
		return nil, err
	}
	updated, err := s.repo.Update(ctx, villaNumberFromUpdate(in))
	if err != nil {
		return nil, s.writeError(err)
	}

	metrics.MutationsTotal.WithLabelValues(metrics.ResourceVillaNumber, action).Inc()
	s.logger.Info().Int("villa_no", in.VillaNo).Str("action", action).Msg("villa number updated")

	out := toVillaNumberDTO(updated)
	return &out, nil
}

func (s *VillaNumberService) find(ctx context.Context, villaNo int, tracked bool) (*domain.VillaNumber, error) {
	n, err := s.repo.Get(ctx, query.Eq(repository.ColVillaNo, villaNo), tracked)
	if err != nil {
		return nil, err
	}
	if n == nil {
		return nil, domain.Errorf(domain.ErrNotFound, "Villa number %d not found", villaNo)
	}
	return n, nil
}

func (s *VillaNumberService) ensureVilla(ctx context.Context, villaID int) error {
	if villaID <= 0 {
		return domain.NewValidationError(msgVillaIDInvalid)
	}
	villa, err := s.villas.Get(ctx, query.Eq(repository.ColVillaID, villaID), false)
	if err != nil {
		return err
	}
	if villa == nil {
		return domain.NewValidationError(msgVillaIDInvalid)
	}
	return nil
}

func (s *VillaNumberService) writeError(err error) error {
	if errors.Is(err, domain.ErrConflict) {
		metrics.ConflictsTotal.WithLabelValues(metrics.ResourceVillaNumber).Inc()
		s.logger.Warn().Err(err).Msg("villa number write rejected by storage constraint")
		return domain.Errorf(domain.ErrConflict, "Villa number already exists or references a missing villa")
	}
	return err
}
