package service

import (
	"context"
	"errors"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/magicvilla/villa-api/internal/core/domain"
	"github.com/magicvilla/villa-api/internal/core/dto"
	"github.com/magicvilla/villa-api/internal/core/patch"
	"github.com/magicvilla/villa-api/internal/core/ports"
	"github.com/magicvilla/villa-api/internal/core/query"
	"github.com/magicvilla/villa-api/internal/core/repository"
	"github.com/magicvilla/villa-api/internal/pkg/metrics"
)

const cacheKeyVillas = "villas"

func villaCacheKey(id int) string { return "villas:" + strconv.Itoa(id) }

// VillaService implements villa CRUD on top of the villa repository. It owns
// the name uniqueness rule and the villa response cache.
type VillaService struct {
	repo     ports.VillaRepository
	cache    ports.Cache
	validate func(any) error
	logger   zerolog.Logger
}

// NewVillaService wires the villa use cases. cache may be nil to disable caching.
func NewVillaService(repo ports.VillaRepository, cache ports.Cache, validate func(any) error, logger zerolog.Logger) *VillaService {
	return &VillaService{repo: repo, cache: cache, validate: validate, logger: logger}
}

func (s *VillaService) List(ctx context.Context) ([]dto.VillaDTO, error) {
	var cached []dto.VillaDTO
	if s.cacheGet(ctx, cacheKeyVillas, &cached) {
		return cached, nil
	}

	villas, err := s.repo.List(ctx, query.All())
	if err != nil {
		return nil, err
	}
	out := toVillaDTOs(villas)
	s.cacheSet(ctx, cacheKeyVillas, out)
	return out, nil
}

func (s *VillaService) Get(ctx context.Context, id int) (*dto.VillaDTO, error) {
	if err := requireID(id); err != nil {
		return nil, err
	}

	var cached dto.VillaDTO
	if s.cacheGet(ctx, villaCacheKey(id), &cached) {
		return &cached, nil
	}

	villa, err := s.find(ctx, id, false)
	if err != nil {
		return nil, err
	}
	out := toVillaDTO(villa)
	s.cacheSet(ctx, villaCacheKey(id), out)
	return &out, nil
}

func (s *VillaService) Create(ctx context.Context, in dto.VillaCreateDTO) (*dto.VillaDTO, error) {
	if err := s.ensureUniqueName(ctx, in.Name, 0); err != nil {
		return nil, err
	}

	villa := villaFromCreate(in)
	if err := s.repo.Create(ctx, villa); err != nil {
		return nil, s.writeError(err)
	}

	metrics.MutationsTotal.WithLabelValues(metrics.ResourceVilla, "create").Inc()
	s.invalidate(ctx, villa.ID)
	s.logger.Info().Int("villa_id", villa.ID).Str("name", villa.Name).Msg("villa created")

	out := toVillaDTO(villa)
	return &out, nil
}

// Update replaces every mutable field of villa id with in.
func (s *VillaService) Update(ctx context.Context, id int, in dto.VillaUpdateDTO) (*dto.VillaDTO, error) {
	if err := requireID(id); err != nil {
		return nil, err
	}
	if in.ID != id {
		return nil, domain.NewValidationError("id in the path does not match the body")
	}
	if _, err := s.find(ctx, id, false); err != nil {
		return nil, err
	}
	return s.replace(ctx, in, "update")
}

// Patch applies a JSON Patch document to the update view of villa id.
func (s *VillaService) Patch(ctx context.Context, id int, document []byte) (*dto.VillaDTO, error) {
	if err := requireID(id); err != nil {
		return nil, err
	}
	villa, err := s.find(ctx, id, false)
	if err != nil {
		return nil, err
	}

	target := toVillaUpdateDTO(villa)
	if err := patch.Apply(&target, document, s.validate); err != nil {
		metrics.PatchDocumentsTotal.WithLabelValues(metrics.ResourceVilla, "rejected").Inc()
		return nil, err
	}
	if target.ID != id {
		metrics.PatchDocumentsTotal.WithLabelValues(metrics.ResourceVilla, "rejected").Inc()
		return nil, domain.NewValidationError("id cannot be changed")
	}
	metrics.PatchDocumentsTotal.WithLabelValues(metrics.ResourceVilla, "applied").Inc()
	return s.replace(ctx, target, "patch")
}

func (s *VillaService) Delete(ctx context.Context, id int) error {
	if err := requireID(id); err != nil {
		return err
	}
	villa, err := s.find(ctx, id, true)
	if err != nil {
		return err
	}
	if err := s.repo.Remove(ctx, villa); err != nil {
		return s.writeError(err)
	}

	metrics.MutationsTotal.WithLabelValues(metrics.ResourceVilla, "delete").Inc()
	s.invalidate(ctx, id)
	s.logger.Info().Int("villa_id", id).Msg("villa deleted")
	return nil
}

func (s *VillaService) replace(ctx context.Context, in dto.VillaUpdateDTO, action string) (*dto.VillaDTO, error) {
	if err := s.ensureUniqueName(ctx, in.Name, in.ID); err != nil {
		return nil, err
	}
	updated, err := s.repo.Update(ctx, villaFromUpdate(in))
	if err != nil {
		return nil, s.writeError(err)
	}

	metrics.MutationsTotal.WithLabelValues(metrics.ResourceVilla, action).Inc()
	s.invalidate(ctx, in.ID)
	s.logger.Info().Int("villa_id", in.ID).Str("action", action).Msg("villa updated")

	out := toVillaDTO(updated)
	return &out, nil
}

func (s *VillaService) find(ctx context.Context, id int, tracked bool) (*domain.Villa, error) {
	villa, err := s.repo.Get(ctx, query.Eq(repository.ColVillaID, id), tracked)
	if err != nil {
		return nil, err
	}
	if villa == nil {
		return nil, domain.Errorf(domain.ErrNotFound, "Villa %d not found", id)
	}
	return villa, nil
}

// ensureUniqueName fails when another villa than selfID already uses name.
func (s *VillaService) ensureUniqueName(ctx context.Context, name string, selfID int) error {
	existing, err := s.repo.Get(ctx, query.EqFold(repository.ColVillaName, name), false)
	if err != nil {
		return err
	}
	if existing != nil && existing.ID != selfID {
		metrics.ConflictsTotal.WithLabelValues(metrics.ResourceVilla).Inc()
		return domain.Errorf(domain.ErrConflict, "Villa name must be unique")
	}
	return nil
}

// writeError turns storage-level constraint violations into the client
// facing conflict message; the storage constraint is authoritative.
func (s *VillaService) writeError(err error) error {
	if errors.Is(err, domain.ErrConflict) {
		metrics.ConflictsTotal.WithLabelValues(metrics.ResourceVilla).Inc()
		s.logger.Warn().Err(err).Msg("villa write rejected by storage constraint")
		return domain.Errorf(domain.ErrConflict, "Villa name must be unique")
	}
	return err
}

func (s *VillaService) invalidate(ctx context.Context, id int) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, cacheKeyVillas, villaCacheKey(id)); err != nil {
		s.logger.Warn().Err(err).Int("villa_id", id).Msg("villa cache invalidation failed")
	}
}

func (s *VillaService) cacheGet(ctx context.Context, key string, dst any) bool {
	if s.cache == nil {
		return false
	}
	found, err := s.cache.Get(ctx, key, dst)
	switch {
	case err != nil:
		metrics.CacheLookupsTotal.WithLabelValues("error").Inc()
		s.logger.Warn().Err(err).Str("key", key).Msg("villa cache read failed")
		return false
	case found:
		metrics.CacheLookupsTotal.WithLabelValues("hit").Inc()
		return true
	default:
		metrics.CacheLookupsTotal.WithLabelValues("miss").Inc()
		return false
	}
}

func (s *VillaService) cacheSet(ctx context.Context, key string, v any) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Set(ctx, key, v); err != nil {
		s.logger.Warn().Err(err).Str("key", key).Msg("villa cache write failed")
	}
}

func requireID(id int) error {
	if id <= 0 {
		return domain.NewValidationError("id must be a positive integer")
	}
	return nil
}
