package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/BLJThompson/Comp2001BenThompson-Micro-service-API/internal/models"
	"github.com/BLJThompson/Comp2001BenThompson-Micro-service-API/internal/repository"
	"gorm.io/gorm"
)

// =============================================================================
// Mock TrailRepository
// =============================================================================

type mockTrailRepository struct {
	findAllFunc            func(ctx context.Context) ([]models.Trail, error)
	findByIDFunc           func(ctx context.Context, id int64) (*models.Trail, error)
	findByNameFunc         func(ctx context.Context, name string) (*models.Trail, error)
	createWithFeaturesFunc func(ctx context.Context, trail *models.Trail, featureNames []string) error
	updateWithFeaturesFunc func(ctx context.Context, trail *models.Trail, addFeatures, removeFeatures []string) error
	deleteFunc             func(ctx context.Context, id int64) error
	linkFeaturesFunc       func(ctx context.Context, trailID int64, featureNames []string) error
	unlinkFeaturesFunc     func(ctx context.Context, trailID int64, featureNames []string) error
}

func (m *mockTrailRepository) FindAll(ctx context.Context) ([]models.Trail, error) {
	if m.findAllFunc != nil {
		return m.findAllFunc(ctx)
	}
	return nil, errors.New("not implemented")
}

func (m *mockTrailRepository) FindByID(ctx context.Context, id int64) (*models.Trail, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, id)
	}
	return nil, errors.New("not implemented")
}

func (m *mockTrailRepository) FindByName(ctx context.Context, name string) (*models.Trail, error) {
	if m.findByNameFunc != nil {
		return m.findByNameFunc(ctx, name)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockTrailRepository) CreateWithFeatures(ctx context.Context, trail *models.Trail, featureNames []string) error {
	if m.createWithFeaturesFunc != nil {
		return m.createWithFeaturesFunc(ctx, trail, featureNames)
	}
	return errors.New("not implemented")
}

func (m *mockTrailRepository) UpdateWithFeatures(ctx context.Context, trail *models.Trail, addFeatures, removeFeatures []string) error {
	if m.updateWithFeaturesFunc != nil {
		return m.updateWithFeaturesFunc(ctx, trail, addFeatures, removeFeatures)
	}
	return errors.New("not implemented")
}

func (m *mockTrailRepository) Delete(ctx context.Context, id int64) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return errors.New("not implemented")
}

func (m *mockTrailRepository) LinkFeatures(ctx context.Context, trailID int64, featureNames []string) error {
	if m.linkFeaturesFunc != nil {
		return m.linkFeaturesFunc(ctx, trailID, featureNames)
	}
	return errors.New("not implemented")
}

func (m *mockTrailRepository) UnlinkFeatures(ctx context.Context, trailID int64, featureNames []string) error {
	if m.unlinkFeaturesFunc != nil {
		return m.unlinkFeaturesFunc(ctx, trailID, featureNames)
	}
	return errors.New("not implemented")
}

// =============================================================================
// Test Helpers
// =============================================================================

func setupTestTrailService(t *testing.T) (*trailService, *mockTrailRepository, *mockUserRepository) {
	t.Helper()
	trailRepo := &mockTrailRepository{}
	userRepo := &mockUserRepository{}
	svc := NewTrailService(trailRepo, userRepo).(*trailService)
	return svc, trailRepo, userRepo
}

func sampleTrail(id int64, name string) *models.Trail {
	return &models.Trail{
		TrailID:    id,
		TrailName:  name,
		Difficulty: "Easy",
		UserID:     1,
	}
}

// =============================================================================
// Create Tests
// =============================================================================

func TestCreateTrail_OwnershipFromSessionUser(t *testing.T) {
	svc, trailRepo, userRepo := setupTestTrailService(t)
	userRepo.findByEmailFunc = localUser("ada@plymouth.ac.uk", "user")

	var created *models.Trail
	trailRepo.createWithFeaturesFunc = func(ctx context.Context, trail *models.Trail, names []string) error {
		trail.TrailID = 7
		created = trail
		return nil
	}
	trailRepo.findByIDFunc = func(ctx context.Context, id int64) (*models.Trail, error) {
		return created, nil
	}

	trail, err := svc.Create(context.Background(), "ada@plymouth.ac.uk", CreateTrailRequest{
		TrailName: "Ocean View Trail",
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if trail.UserID != 1 {
		t.Errorf("Create() owner = %d, want the session user's id 1", trail.UserID)
	}
}

func TestCreateTrail_AppliesDefaults(t *testing.T) {
	svc, trailRepo, userRepo := setupTestTrailService(t)
	userRepo.findByEmailFunc = localUser("ada@plymouth.ac.uk", "user")

	var created *models.Trail
	trailRepo.createWithFeaturesFunc = func(ctx context.Context, trail *models.Trail, names []string) error {
		created = trail
		return nil
	}
	trailRepo.findByIDFunc = func(ctx context.Context, id int64) (*models.Trail, error) {
		return created, nil
	}

	_, err := svc.Create(context.Background(), "ada@plymouth.ac.uk", CreateTrailRequest{
		TrailName: "Bare Trail",
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if created.TrailSummary != "No summary provided." {
		t.Errorf("summary = %q, want default", created.TrailSummary)
	}
	if created.Difficulty != "Unknown" || created.Location != "Unknown" || created.RouteType != "Unknown" {
		t.Error("difficulty, location and route type should default to Unknown")
	}
}

func TestCreateTrail_DeduplicatesFeatureNames(t *testing.T) {
	svc, trailRepo, userRepo := setupTestTrailService(t)
	userRepo.findByEmailFunc = localUser("ada@plymouth.ac.uk", "user")

	var linked []string
	trailRepo.createWithFeaturesFunc = func(ctx context.Context, trail *models.Trail, names []string) error {
		linked = names
		return nil
	}
	trailRepo.findByIDFunc = func(ctx context.Context, id int64) (*models.Trail, error) {
		return sampleTrail(1, "Ocean View Trail"), nil
	}

	_, err := svc.Create(context.Background(), "ada@plymouth.ac.uk", CreateTrailRequest{
		TrailName: "Ocean View Trail",
		Features:  []string{"A", "A", "B"},
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if len(linked) != 2 || linked[0] != "A" || linked[1] != "B" {
		t.Errorf("linked features = %v, want [A B]", linked)
	}
}

func TestCreateTrail_NoLocalUser(t *testing.T) {
	svc, _, userRepo := setupTestTrailService(t)
	userRepo.findByEmailFunc = func(ctx context.Context, email string) (*models.User, error) {
		return nil, gorm.ErrRecordNotFound
	}

	_, err := svc.Create(context.Background(), "ghost@plymouth.ac.uk", CreateTrailRequest{TrailName: "X"})
	if !errors.Is(err, ErrUserNotFound) {
		t.Errorf("Create() error = %v, want ErrUserNotFound", err)
	}
}

func TestCreateTrail_DuplicateName(t *testing.T) {
	svc, trailRepo, userRepo := setupTestTrailService(t)
	userRepo.findByEmailFunc = localUser("ada@plymouth.ac.uk", "user")
	trailRepo.findByNameFunc = func(ctx context.Context, name string) (*models.Trail, error) {
		return sampleTrail(2, name), nil
	}

	_, err := svc.Create(context.Background(), "ada@plymouth.ac.uk", CreateTrailRequest{TrailName: "Taken"})
	if !errors.Is(err, ErrTrailNameTaken) {
		t.Errorf("Create() error = %v, want ErrTrailNameTaken", err)
	}
}

// =============================================================================
// Update Tests
// =============================================================================

func TestUpdateTrail_RenameConflict(t *testing.T) {
	svc, trailRepo, _ := setupTestTrailService(t)
	trailRepo.findByIDFunc = func(ctx context.Context, id int64) (*models.Trail, error) {
		return sampleTrail(1, "Old Name"), nil
	}
	trailRepo.findByNameFunc = func(ctx context.Context, name string) (*models.Trail, error) {
		return sampleTrail(2, name), nil
	}

	newName := "Taken Name"
	_, err := svc.Update(context.Background(), 1, UpdateTrailRequest{TrailName: &newName})
	if !errors.Is(err, ErrTrailNameTaken) {
		t.Errorf("Update() error = %v, want ErrTrailNameTaken", err)
	}
}

func TestUpdateTrail_PartialFieldsOnly(t *testing.T) {
	svc, trailRepo, _ := setupTestTrailService(t)
	lat, long, desc := 50.1, -5.6, "start"
	existing := sampleTrail(1, "Ocean View Trail")
	existing.TrailSummary = "Original summary"
	existing.Pt1Lat, existing.Pt1Long, existing.Pt1Desc = &lat, &long, &desc

	trailRepo.findByIDFunc = func(ctx context.Context, id int64) (*models.Trail, error) {
		return existing, nil
	}
	var saved *models.Trail
	trailRepo.updateWithFeaturesFunc = func(ctx context.Context, trail *models.Trail, add, remove []string) error {
		saved = trail
		return nil
	}

	newLat := 51.0
	_, err := svc.Update(context.Background(), 1, UpdateTrailRequest{
		Waypoints: &Waypoints{Pt1: &Waypoint{Lat: &newLat}},
	})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	if saved.TrailSummary != "Original summary" {
		t.Error("unsupplied fields should retain previous values")
	}
	if *saved.Pt1Lat != 51.0 {
		t.Errorf("pt1 lat = %v, want 51.0", *saved.Pt1Lat)
	}
	if saved.Pt1Long == nil || *saved.Pt1Long != -5.6 {
		t.Error("unsupplied waypoint slots should retain previous values")
	}
	if saved.Pt1Desc == nil || *saved.Pt1Desc != "start" {
		t.Error("unsupplied waypoint description should retain previous value")
	}
}

func TestUpdateTrail_NotFound(t *testing.T) {
	svc, trailRepo, _ := setupTestTrailService(t)
	trailRepo.findByIDFunc = func(ctx context.Context, id int64) (*models.Trail, error) {
		return nil, gorm.ErrRecordNotFound
	}

	_, err := svc.Update(context.Background(), 99, UpdateTrailRequest{})
	if !errors.Is(err, ErrTrailNotFound) {
		t.Errorf("Update() error = %v, want ErrTrailNotFound", err)
	}
}

// =============================================================================
// Delete Tests
// =============================================================================

func TestDeleteTrail(t *testing.T) {
	svc, trailRepo, _ := setupTestTrailService(t)
	trailRepo.findByIDFunc = func(ctx context.Context, id int64) (*models.Trail, error) {
		return sampleTrail(1, "Ocean View Trail"), nil
	}

	deleted := false
	trailRepo.deleteFunc = func(ctx context.Context, id int64) error {
		deleted = true
		return nil
	}

	if err := svc.Delete(context.Background(), 1); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if !deleted {
		t.Error("Delete() should delegate to the repository cascade delete")
	}
}

func TestDeleteTrail_NotFound(t *testing.T) {
	svc, trailRepo, _ := setupTestTrailService(t)
	trailRepo.findByIDFunc = func(ctx context.Context, id int64) (*models.Trail, error) {
		return nil, gorm.ErrRecordNotFound
	}

	if err := svc.Delete(context.Background(), 99); !errors.Is(err, ErrTrailNotFound) {
		t.Errorf("Delete() error = %v, want ErrTrailNotFound", err)
	}
}

// =============================================================================
// Add/Remove Feature Tests
// =============================================================================

func TestAddFeatures_DuplicateLinkIsConflict(t *testing.T) {
	svc, trailRepo, _ := setupTestTrailService(t)
	trailRepo.findByIDFunc = func(ctx context.Context, id int64) (*models.Trail, error) {
		return sampleTrail(1, "Ocean View Trail"), nil
	}
	trailRepo.linkFeaturesFunc = func(ctx context.Context, trailID int64, names []string) error {
		return repository.ErrDuplicateLink
	}

	err := svc.AddFeatures(context.Background(), 1, []string{"Waterfall"})
	if !errors.Is(err, ErrFeatureLinked) {
		t.Errorf("AddFeatures() error = %v, want ErrFeatureLinked", err)
	}
}

// A multi-name request is handed to the repository as one batch, so a
// conflict on any name aborts the whole request in a single transaction
// instead of leaving earlier links committed.
func TestAddFeatures_WholeBatchInOneCall(t *testing.T) {
	svc, trailRepo, _ := setupTestTrailService(t)
	trailRepo.findByIDFunc = func(ctx context.Context, id int64) (*models.Trail, error) {
		return sampleTrail(1, "Ocean View Trail"), nil
	}

	calls := 0
	var gotNames []string
	trailRepo.linkFeaturesFunc = func(ctx context.Context, trailID int64, names []string) error {
		calls++
		gotNames = names
		return repository.ErrDuplicateLink
	}

	err := svc.AddFeatures(context.Background(), 1, []string{"A", "B"})
	if !errors.Is(err, ErrFeatureLinked) {
		t.Fatalf("AddFeatures() error = %v, want ErrFeatureLinked", err)
	}
	if calls != 1 {
		t.Errorf("LinkFeatures called %d times, want one transactional call", calls)
	}
	if len(gotNames) != 2 || gotNames[0] != "A" || gotNames[1] != "B" {
		t.Errorf("LinkFeatures names = %v, want the whole batch [A B]", gotNames)
	}
}

// Feature changes on update ride the same transaction as the field save:
// a conflict surfaces as an error with nothing committed.
func TestUpdateTrail_FeatureConflictAbortsFieldChanges(t *testing.T) {
	svc, trailRepo, _ := setupTestTrailService(t)
	trailRepo.findByIDFunc = func(ctx context.Context, id int64) (*models.Trail, error) {
		return sampleTrail(1, "Ocean View Trail"), nil
	}

	var gotAdd, gotRemove []string
	trailRepo.updateWithFeaturesFunc = func(ctx context.Context, trail *models.Trail, add, remove []string) error {
		gotAdd, gotRemove = add, remove
		return repository.ErrDuplicateLink
	}

	summary := "New summary"
	_, err := svc.Update(context.Background(), 1, UpdateTrailRequest{
		TrailSummary: &summary,
		Features: &FeatureChanges{
			Add:    FeatureNames{"Waterfall"},
			Remove: FeatureNames{"Viewpoint"},
		},
	})
	if !errors.Is(err, ErrFeatureLinked) {
		t.Fatalf("Update() error = %v, want ErrFeatureLinked", err)
	}
	if len(gotAdd) != 1 || gotAdd[0] != "Waterfall" {
		t.Errorf("add names = %v, want [Waterfall]", gotAdd)
	}
	if len(gotRemove) != 1 || gotRemove[0] != "Viewpoint" {
		t.Errorf("remove names = %v, want [Viewpoint]", gotRemove)
	}
}

func TestFeatureNames_StringOrList(t *testing.T) {
	var single FeatureNames
	if err := json.Unmarshal([]byte(`"Waterfall"`), &single); err != nil {
		t.Fatalf("unmarshal string: %v", err)
	}
	if len(single) != 1 || single[0] != "Waterfall" {
		t.Errorf("single = %v, want [Waterfall]", single)
	}

	var list FeatureNames
	if err := json.Unmarshal([]byte(`["Waterfall","Viewpoint"]`), &list); err != nil {
		t.Fatalf("unmarshal list: %v", err)
	}
	if len(list) != 2 {
		t.Errorf("list = %v, want two names", list)
	}

	var bad FeatureNames
	if err := json.Unmarshal([]byte(`42`), &bad); err == nil {
		t.Error("unmarshal number should fail")
	}
}

func TestRemoveFeatures_MissingLinkIsNotFound(t *testing.T) {
	svc, trailRepo, _ := setupTestTrailService(t)
	trailRepo.findByIDFunc = func(ctx context.Context, id int64) (*models.Trail, error) {
		return sampleTrail(1, "Ocean View Trail"), nil
	}
	trailRepo.unlinkFeaturesFunc = func(ctx context.Context, trailID int64, names []string) error {
		return gorm.ErrRecordNotFound
	}

	err := svc.RemoveFeatures(context.Background(), 1, []string{"Waterfall"})
	if !errors.Is(err, ErrLinkNotFound) {
		t.Errorf("RemoveFeatures() error = %v, want ErrLinkNotFound", err)
	}
}
