package service

import (
	"context"
	"errors"

	"github.com/BLJThompson/Comp2001BenThompson-Micro-service-API/internal/models"
	"github.com/BLJThompson/Comp2001BenThompson-Micro-service-API/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrFeatureNotFound = errors.New("feature not found")
	ErrFeatureExists   = errors.New("feature name already exists")
	ErrFeatureInUse    = errors.New("feature is linked to one or more trails")
)

// FeatureService manages the feature catalogue. Features exist
// independently of trails and may only be deleted once nothing links them.
type FeatureService interface {
	List(ctx context.Context) ([]models.Feature, error)
	Search(ctx context.Context, name string) (*models.Feature, []models.Trail, error)
	Add(ctx context.Context, name string) (*models.Feature, error)
	Rename(ctx context.Context, currentName, newName string) (*models.Feature, error)
	Delete(ctx context.Context, name string) error
}

type featureService struct {
	featureRepo repository.FeatureRepository
}

// NewFeatureService creates a new FeatureService instance.
func NewFeatureService(featureRepo repository.FeatureRepository) FeatureService {
	return &featureService{featureRepo: featureRepo}
}

func (s *featureService) List(ctx context.Context) ([]models.Feature, error) {
	return s.featureRepo.FindAll(ctx)
}

// Search returns the feature and every trail linked to it. Each trail
// carries its own full feature list, not just the searched-for feature.
func (s *featureService) Search(ctx context.Context, name string) (*models.Feature, []models.Trail, error) {
	feature, err := s.findByName(ctx, name)
	if err != nil {
		return nil, nil, err
	}
	trails, err := s.featureRepo.TrailsWithFeature(ctx, feature.FeatureID)
	if err != nil {
		return nil, nil, err
	}
	return feature, trails, nil
}

// Add creates a new feature; an existing name is a conflict.
func (s *featureService) Add(ctx context.Context, name string) (*models.Feature, error) {
	if _, err := s.findByName(ctx, name); err == nil {
		return nil, ErrFeatureExists
	} else if !errors.Is(err, ErrFeatureNotFound) {
		return nil, err
	}

	feature := models.Feature{FeatureName: name}
	if err := s.featureRepo.Create(ctx, &feature); err != nil {
		return nil, err
	}
	return &feature, nil
}

// Rename changes a feature's name. The current name must exist and the new
// name must not be taken by a different feature.
func (s *featureService) Rename(ctx context.Context, currentName, newName string) (*models.Feature, error) {
	feature, err := s.findByName(ctx, currentName)
	if err != nil {
		return nil, err
	}

	if existing, err := s.findByName(ctx, newName); err == nil {
		if existing.FeatureID != feature.FeatureID {
			return nil, ErrFeatureExists
		}
	} else if !errors.Is(err, ErrFeatureNotFound) {
		return nil, err
	}

	feature.FeatureName = newName
	if err := s.featureRepo.Update(ctx, feature); err != nil {
		return nil, err
	}
	return feature, nil
}

// Delete removes a feature, refusing while any trail link still references
// it; callers must remove all links first.
func (s *featureService) Delete(ctx context.Context, name string) error {
	feature, err := s.findByName(ctx, name)
	if err != nil {
		return err
	}

	links, err := s.featureRepo.CountLinks(ctx, feature.FeatureID)
	if err != nil {
		return err
	}
	if links > 0 {
		return ErrFeatureInUse
	}

	return s.featureRepo.Delete(ctx, feature.FeatureID)
}

func (s *featureService) findByName(ctx context.Context, name string) (*models.Feature, error) {
	feature, err := s.featureRepo.FindByName(ctx, name)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFeatureNotFound
		}
		return nil, err
	}
	return feature, nil
}
