package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/BLJThompson/Comp2001BenThompson-Micro-service-API/internal/models"
	"gorm.io/gorm"
)

// ErrDuplicateLink is returned when a (trail, feature) link already exists.
var ErrDuplicateLink = errors.New("feature already linked to trail")

// TrailRepository defines the interface for trail data operations.
// Every mutation runs inside a single database transaction, including the
// multi-name link and unlink operations: a failure on any name rolls back
// the whole request and leaves no partial state visible.
type TrailRepository interface {
	FindAll(ctx context.Context) ([]models.Trail, error)
	FindByID(ctx context.Context, id int64) (*models.Trail, error)
	FindByName(ctx context.Context, name string) (*models.Trail, error)
	CreateWithFeatures(ctx context.Context, trail *models.Trail, featureNames []string) error
	UpdateWithFeatures(ctx context.Context, trail *models.Trail, addFeatures, removeFeatures []string) error
	Delete(ctx context.Context, id int64) error
	LinkFeatures(ctx context.Context, trailID int64, featureNames []string) error
	UnlinkFeatures(ctx context.Context, trailID int64, featureNames []string) error
}

type trailRepository struct {
	db *gorm.DB
}

// NewTrailRepository creates a new TrailRepository instance.
func NewTrailRepository(db *gorm.DB) TrailRepository {
	return &trailRepository{db: db}
}

func (r *trailRepository) FindAll(ctx context.Context) ([]models.Trail, error) {
	var trails []models.Trail
	err := r.db.WithContext(ctx).Preload("Features.Feature").Find(&trails).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list trails: %w", err)
	}
	return trails, nil
}

func (r *trailRepository) FindByID(ctx context.Context, id int64) (*models.Trail, error) {
	var trail models.Trail
	err := r.db.WithContext(ctx).Preload("Features.Feature").First(&trail, id).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find trail by id %d: %w", id, err)
	}
	return &trail, nil
}

func (r *trailRepository) FindByName(ctx context.Context, name string) (*models.Trail, error) {
	var trail models.Trail
	err := r.db.WithContext(ctx).Where("trail_name = ?", name).First(&trail).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find trail by name %s: %w", name, err)
	}
	return &trail, nil
}

// CreateWithFeatures creates the trail and one link per feature name,
// creating any feature that does not yet exist. The caller is responsible
// for de-duplicating featureNames.
func (r *trailRepository) CreateWithFeatures(ctx context.Context, trail *models.Trail, featureNames []string) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(trail).Error; err != nil {
			return err
		}
		for _, name := range featureNames {
			if err := linkFeature(tx, trail.TrailID, name); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to create trail %s: %w", trail.TrailName, err)
	}
	return nil
}

// UpdateWithFeatures saves the trail's fields and applies feature link
// additions and removals in the same transaction. A conflict or missing
// link on any name rolls back the field changes too.
func (r *trailRepository) UpdateWithFeatures(ctx context.Context, trail *models.Trail, addFeatures, removeFeatures []string) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Features").Save(trail).Error; err != nil {
			return err
		}
		for _, name := range addFeatures {
			if err := linkFeature(tx, trail.TrailID, name); err != nil {
				return err
			}
		}
		for _, name := range removeFeatures {
			if err := unlinkFeature(tx, trail.TrailID, name); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to update trail id %d: %w", trail.TrailID, err)
	}
	return nil
}

// Delete removes all links referencing the trail before the trail row
// itself. Linked features are never deleted.
func (r *trailRepository) Delete(ctx context.Context, id int64) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("trail_id = ?", id).Delete(&models.TrailFeature{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Trail{}, id).Error
	})
	if err != nil {
		return fmt.Errorf("failed to delete trail id %d: %w", id, err)
	}
	return nil
}

// LinkFeatures links every named feature to the trail in one transaction,
// creating features that do not yet exist. Returns ErrDuplicateLink if any
// link is already present; no link from the same request survives.
func (r *trailRepository) LinkFeatures(ctx context.Context, trailID int64, featureNames []string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, name := range featureNames {
			if err := linkFeature(tx, trailID, name); err != nil {
				return err
			}
		}
		return nil
	})
}

// UnlinkFeatures removes the link to every named feature in one
// transaction. Returns gorm.ErrRecordNotFound (wrapped) if any feature or
// link is absent; no removal from the same request survives.
func (r *trailRepository) UnlinkFeatures(ctx context.Context, trailID int64, featureNames []string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, name := range featureNames {
			if err := unlinkFeature(tx, trailID, name); err != nil {
				return err
			}
		}
		return nil
	})
}

func linkFeature(tx *gorm.DB, trailID int64, featureName string) error {
	feature, err := findOrCreateFeature(tx, featureName)
	if err != nil {
		return fmt.Errorf("failed to resolve feature %s: %w", featureName, err)
	}

	var existing models.TrailFeature
	err = tx.Where("trail_id = ? AND feature_id = ?", trailID, feature.FeatureID).First(&existing).Error
	if err == nil {
		return ErrDuplicateLink
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check link: %w", err)
	}

	link := models.TrailFeature{TrailID: trailID, FeatureID: feature.FeatureID}
	if err := tx.Create(&link).Error; err != nil {
		return fmt.Errorf("failed to link feature %s to trail %d: %w", featureName, trailID, err)
	}
	return nil
}

func unlinkFeature(tx *gorm.DB, trailID int64, featureName string) error {
	var feature models.Feature
	if err := tx.Where("feature_name = ?", featureName).First(&feature).Error; err != nil {
		return fmt.Errorf("failed to find feature %s: %w", featureName, err)
	}

	var link models.TrailFeature
	err := tx.Where("trail_id = ? AND feature_id = ?", trailID, feature.FeatureID).First(&link).Error
	if err != nil {
		return fmt.Errorf("failed to find link for feature %s on trail %d: %w", featureName, trailID, err)
	}

	return tx.Where("trail_id = ? AND feature_id = ?", trailID, feature.FeatureID).
		Delete(&models.TrailFeature{}).Error
}

func findOrCreateFeature(tx *gorm.DB, name string) (*models.Feature, error) {
	var feature models.Feature
	err := tx.Where("feature_name = ?", name).First(&feature).Error
	if err == nil {
		return &feature, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	feature = models.Feature{FeatureName: name}
	if err := tx.Create(&feature).Error; err != nil {
		return nil, err
	}
	return &feature, nil
}
