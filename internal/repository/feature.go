package repository

import (
	"context"
	"fmt"

	"github.com/BLJThompson/Comp2001BenThompson-Micro-service-API/internal/models"
	"gorm.io/gorm"
)

// FeatureRepository defines the interface for feature data operations.
type FeatureRepository interface {
	FindAll(ctx context.Context) ([]models.Feature, error)
	FindByName(ctx context.Context, name string) (*models.Feature, error)
	Create(ctx context.Context, feature *models.Feature) error
	Update(ctx context.Context, feature *models.Feature) error
	Delete(ctx context.Context, id int64) error
	CountLinks(ctx context.Context, featureID int64) (int64, error)
	TrailsWithFeature(ctx context.Context, featureID int64) ([]models.Trail, error)
}

type featureRepository struct {
	db *gorm.DB
}

// NewFeatureRepository creates a new FeatureRepository instance.
func NewFeatureRepository(db *gorm.DB) FeatureRepository {
	return &featureRepository{db: db}
}

func (r *featureRepository) FindAll(ctx context.Context) ([]models.Feature, error) {
	var features []models.Feature
	if err := r.db.WithContext(ctx).Find(&features).Error; err != nil {
		return nil, fmt.Errorf("failed to list features: %w", err)
	}
	return features, nil
}

func (r *featureRepository) FindByName(ctx context.Context, name string) (*models.Feature, error) {
	var feature models.Feature
	err := r.db.WithContext(ctx).Where("feature_name = ?", name).First(&feature).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find feature by name %s: %w", name, err)
	}
	return &feature, nil
}

func (r *featureRepository) Create(ctx context.Context, feature *models.Feature) error {
	if err := r.db.WithContext(ctx).Create(feature).Error; err != nil {
		return fmt.Errorf("failed to create feature %s: %w", feature.FeatureName, err)
	}
	return nil
}

func (r *featureRepository) Update(ctx context.Context, feature *models.Feature) error {
	if err := r.db.WithContext(ctx).Save(feature).Error; err != nil {
		return fmt.Errorf("failed to update feature id %d: %w", feature.FeatureID, err)
	}
	return nil
}

func (r *featureRepository) Delete(ctx context.Context, id int64) error {
	if err := r.db.WithContext(ctx).Delete(&models.Feature{}, id).Error; err != nil {
		return fmt.Errorf("failed to delete feature id %d: %w", id, err)
	}
	return nil
}

// CountLinks reports how many trail links reference the feature.
func (r *featureRepository) CountLinks(ctx context.Context, featureID int64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.TrailFeature{}).
		Where("feature_id = ?", featureID).Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count links for feature %d: %w", featureID, err)
	}
	return count, nil
}

// TrailsWithFeature returns every trail linked to the feature, each with
// its own full feature list eager-loaded.
func (r *featureRepository) TrailsWithFeature(ctx context.Context, featureID int64) ([]models.Trail, error) {
	var trails []models.Trail
	err := r.db.WithContext(ctx).
		Joins("JOIN trail_features tf ON tf.trail_id = trails.trail_id").
		Where("tf.feature_id = ?", featureID).
		Preload("Features.Feature").
		Find(&trails).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list trails for feature %d: %w", featureID, err)
	}
	return trails, nil
}
