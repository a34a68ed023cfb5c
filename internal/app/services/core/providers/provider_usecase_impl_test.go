package providers

import (
	"context"
	"fmt"
	"helpora-service/internal/app/config"
	"helpora-service/internal/app/contracts"
	"helpora-service/internal/app/models"
	"helpora-service/internal/pkg/dto/requests"
	"helpora-service/internal/pkg/exceptions"
	"helpora-service/internal/pkg/profile"
	"helpora-service/internal/pkg/utils"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeSessionService struct{}

func (f *fakeSessionService) ParseSessionData(ctx context.Context, sessionData string) (*models.Session, error) {
	session := new(models.Session)
	if err := json.Unmarshal([]byte(sessionData), session); err != nil {
		return nil, exceptions.ErrCannotParseJSON(err)
	}
	return session, nil
}

func (f *fakeSessionService) GetSessionData(ctx context.Context, sessionID string) (string, error) {
	return "", nil
}

type fakeProviderRepo struct {
	profiles map[string]*models.ProviderProfile
	seq      int
}

func newFakeProviderRepo() *fakeProviderRepo {
	return &fakeProviderRepo{profiles: make(map[string]*models.ProviderProfile)}
}

func (r *fakeProviderRepo) CreateProviderProfile(ctx context.Context, entity *models.ProviderProfile) (*models.ProviderProfile, error) {
	for _, existing := range r.profiles {
		if existing.NIC == entity.NIC {
			return nil, exceptions.ErrProviderProfileDuplicateNIC(fmt.Errorf("E11000 duplicate key"))
		}
	}
	r.seq++
	stored := *entity
	stored.ID = fmt.Sprintf("64b5f0a0000000000000%04d", r.seq)
	now := time.Now().UTC()
	stored.CreatedAt = now
	stored.UpdatedAt = now
	r.profiles[stored.ID] = &stored
	out := stored
	return &out, nil
}

func (r *fakeProviderRepo) UpdateProviderProfile(ctx context.Context, profileID string, entity *models.ProviderProfile) (*models.ProviderProfile, error) {
	existing, ok := r.profiles[profileID]
	if !ok {
		return nil, nil
	}
	updated := *entity
	updated.ID = profileID
	updated.AccountID = existing.AccountID
	updated.CreatedAt = existing.CreatedAt
	updated.UpdatedAt = time.Now().UTC()
	r.profiles[profileID] = &updated
	out := updated
	return &out, nil
}

func (r *fakeProviderRepo) FindProviderProfileByID(ctx context.Context, profileID string) (*models.ProviderProfile, error) {
	existing, ok := r.profiles[profileID]
	if !ok {
		return nil, nil
	}
	out := *existing
	return &out, nil
}

func (r *fakeProviderRepo) FindProviderProfileByAccountID(ctx context.Context, accountID string) (*models.ProviderProfile, error) {
	for _, existing := range r.profiles {
		if existing.AccountID == accountID {
			out := *existing
			return &out, nil
		}
	}
	return nil, nil
}

func (r *fakeProviderRepo) DeleteProviderProfile(ctx context.Context, profileID string) (bool, error) {
	if _, ok := r.profiles[profileID]; !ok {
		return false, nil
	}
	delete(r.profiles, profileID)
	return true, nil
}

type fakeProviderCache struct {
	entries map[string]*models.ProviderProfile
}

func newFakeProviderCache() *fakeProviderCache {
	return &fakeProviderCache{entries: make(map[string]*models.ProviderProfile)}
}

func (c *fakeProviderCache) Get(ctx context.Context, accountID string) (*models.ProviderProfile, error) {
	entry, ok := c.entries[accountID]
	if !ok {
		return nil, nil
	}
	out := *entry
	return &out, nil
}

func (c *fakeProviderCache) Set(ctx context.Context, accountID string, entity *models.ProviderProfile) error {
	stored := *entity
	c.entries[accountID] = &stored
	return nil
}

func (c *fakeProviderCache) Clear(ctx context.Context, accountID string) error {
	delete(c.entries, accountID)
	return nil
}

type fakeAccountRepo struct {
	accounts map[string]*models.Account
}

func (r *fakeAccountRepo) FindAccountByID(ctx context.Context, accountID string) (*models.Account, error) {
	account, ok := r.accounts[accountID]
	if !ok {
		return nil, nil
	}
	return account, nil
}

type fakeLocker struct {
	held map[string]bool
}

func newFakeLocker() *fakeLocker {
	return &fakeLocker{held: make(map[string]bool)}
}

func (l *fakeLocker) TryLock(ctx context.Context, key string, expiration time.Duration) (bool, string, error) {
	if l.held[key] {
		return false, "", nil
	}
	l.held[key] = true
	return true, "lock-value", nil
}

func (l *fakeLocker) Unlock(ctx context.Context, key, lockValue string) error {
	delete(l.held, key)
	return nil
}

type usecaseFixture struct {
	usecase contracts.ProviderProfileUsecase
	repo    *fakeProviderRepo
	cache   *fakeProviderCache
	locker  *fakeLocker
}

const testAccountID = "acc-1001"

func newUsecaseFixture(t *testing.T, password string) *usecaseFixture {
	t.Helper()

	hash, err := utils.HashPassword(password)
	require.NoError(t, err)

	repo := newFakeProviderRepo()
	cache := newFakeProviderCache()
	locker := newFakeLocker()
	accountRepo := &fakeAccountRepo{accounts: map[string]*models.Account{
		testAccountID: {ID: testAccountID, Email: "nimali@example.lk", Password: hash, Role: "Provider"},
	}}

	internalConfig := &config.InternalConfig{}
	internalConfig.App.SaveLockExpiryInSeconds = 30

	return &usecaseFixture{
		usecase: NewProviderProfileUsecase(
			zap.NewNop(),
			&fakeSessionService{},
			repo,
			cache,
			accountRepo,
			locker,
			internalConfig,
		),
		repo:   repo,
		cache:  cache,
		locker: locker,
	}
}

func providerSessionData(accountID string) string {
	data, _ := json.Marshal(models.Session{
		SessionID: "sess-1",
		AccountID: accountID,
		Role:      "Provider",
	})
	return string(data)
}

func saveRequest() *requests.SaveProviderProfile {
	return &requests.SaveProviderProfile{
		Name:                "Nimali Perera",
		Category:            profile.CategoryHouseCleaning,
		District:            "Colombo",
		PayRate:             []float64{800, 1500},
		Languages:           []string{"Sinhala", "English"},
		Biography:           "Experienced and reliable.",
		NIC:                 "915672348V",
		PoliceClearanceRef:  "/uploads/clearance.pdf",
		BirthCertificateRef: "/uploads/birth.pdf",
		Gender:              "female",
		Availability:        "yes",
		Services:            []string{"Deep Cleaning"},
	}
}

func TestSaveProfileBySession_CreateThenGet(t *testing.T) {
	fx := newUsecaseFixture(t, "s3cret-pass")
	sessionData := providerSessionData(testAccountID)

	created, wasCreated, err := fx.usecase.SaveProfileBySession(context.Background(), sessionData, saveRequest())
	require.NoError(t, err)
	assert.True(t, wasCreated)
	require.NotEmpty(t, created.ID)
	assert.Equal(t, profile.PlaceholderPhotoRef, created.PhotoRef)

	loaded, err := fx.usecase.GetProfileBySession(context.Background(), sessionData, false)
	require.NoError(t, err)
	assert.Equal(t, created.ID, loaded.ID)
	assert.Equal(t, created.Name, loaded.Name)
	assert.Equal(t, created.District, loaded.District)
	assert.Equal(t, created.PayRate, loaded.PayRate)
	assert.Equal(t, created.Services, loaded.Services)
}

func TestSaveProfileBySession_UpdateExisting(t *testing.T) {
	fx := newUsecaseFixture(t, "s3cret-pass")
	sessionData := providerSessionData(testAccountID)

	created, _, err := fx.usecase.SaveProfileBySession(context.Background(), sessionData, saveRequest())
	require.NoError(t, err)

	update := saveRequest()
	update.ID = created.ID
	update.District = "Kandy"
	update.Biography = "Now serving Kandy as well."

	updated, wasCreated, err := fx.usecase.SaveProfileBySession(context.Background(), sessionData, update)
	require.NoError(t, err)
	assert.False(t, wasCreated)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Kandy", updated.District)

	stored, err := fx.repo.FindProviderProfileByID(context.Background(), created.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, "Kandy", stored.District)
	assert.Equal(t, testAccountID, stored.AccountID)
}

func TestSaveProfileBySession_UpdateWithoutVerificationFieldsRetainsThem(t *testing.T) {
	fx := newUsecaseFixture(t, "s3cret-pass")
	sessionData := providerSessionData(testAccountID)

	created, _, err := fx.usecase.SaveProfileBySession(context.Background(), sessionData, saveRequest())
	require.NoError(t, err)

	// The edit form posts only what the provider touched.
	update := &requests.SaveProviderProfile{
		ID:        created.ID,
		Name:      "Nimali Perera",
		Category:  profile.CategoryHouseCleaning,
		District:  "Galle",
		PayRate:   []float64{900, 1600},
		Languages: []string{"Sinhala"},
		Biography: "Moved to Galle.",
		Services:  []string{"Deep Cleaning"},
	}

	updated, wasCreated, err := fx.usecase.SaveProfileBySession(context.Background(), sessionData, update)
	require.NoError(t, err)
	assert.False(t, wasCreated)
	assert.Equal(t, "Galle", updated.District)
	assert.Equal(t, "915672348V", updated.NIC)
	assert.Equal(t, "/uploads/clearance.pdf", updated.PoliceClearanceRef)
	assert.Equal(t, "/uploads/birth.pdf", updated.BirthCertificateRef)
	assert.Equal(t, "female", updated.Gender)
	assert.Equal(t, "yes", updated.Availability)

	stored, err := fx.repo.FindProviderProfileByID(context.Background(), created.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, "915672348V", stored.NIC)
	assert.Equal(t, "yes", stored.Availability)
}

func TestSaveProfileBySession_UpdateMissingProfile(t *testing.T) {
	fx := newUsecaseFixture(t, "s3cret-pass")

	update := saveRequest()
	update.ID = "64b5f0a00000000000009999"

	_, _, err := fx.usecase.SaveProfileBySession(context.Background(), providerSessionData(testAccountID), update)
	require.Error(t, err)
	customErr, ok := err.(*exceptions.CustomError)
	require.True(t, ok)
	assert.Equal(t, 404, customErr.StatusCode)
}

func TestSaveProfileBySession_ValidationErrorCarriesFieldMap(t *testing.T) {
	fx := newUsecaseFixture(t, "s3cret-pass")

	request := saveRequest()
	request.District = "Atlantis"
	request.PayRate = []float64{1500, 800}

	_, _, err := fx.usecase.SaveProfileBySession(context.Background(), providerSessionData(testAccountID), request)
	require.Error(t, err)
	customErr, ok := err.(*exceptions.CustomError)
	require.True(t, ok)
	assert.Equal(t, 400, customErr.StatusCode)
	assert.Contains(t, customErr.Fields, "district")
	assert.Contains(t, customErr.Fields, "payRate")
}

func TestSaveProfileBySession_DuplicateNIC(t *testing.T) {
	fx := newUsecaseFixture(t, "s3cret-pass")

	_, _, err := fx.usecase.SaveProfileBySession(context.Background(), providerSessionData(testAccountID), saveRequest())
	require.NoError(t, err)

	second := saveRequest()
	second.Name = "Another Person"
	_, _, err = fx.usecase.SaveProfileBySession(context.Background(), providerSessionData("acc-2002"), second)
	require.Error(t, err)
	customErr, ok := err.(*exceptions.CustomError)
	require.True(t, ok)
	assert.Equal(t, 409, customErr.StatusCode)
	assert.Contains(t, customErr.Fields, "nic")
}

func TestSaveProfileBySession_SaveLockHeld(t *testing.T) {
	fx := newUsecaseFixture(t, "s3cret-pass")
	fx.locker.held["provider:save:"+testAccountID] = true

	_, _, err := fx.usecase.SaveProfileBySession(context.Background(), providerSessionData(testAccountID), saveRequest())
	require.Error(t, err)
	customErr, ok := err.(*exceptions.CustomError)
	require.True(t, ok)
	assert.Equal(t, 409, customErr.StatusCode)
}

func TestSaveProfileBySession_RejectsNonProviderRole(t *testing.T) {
	fx := newUsecaseFixture(t, "s3cret-pass")

	data, _ := json.Marshal(models.Session{SessionID: "sess-2", AccountID: testAccountID, Role: "Client"})
	_, _, err := fx.usecase.SaveProfileBySession(context.Background(), string(data), saveRequest())
	require.Error(t, err)
	customErr, ok := err.(*exceptions.CustomError)
	require.True(t, ok)
	assert.Equal(t, 403, customErr.StatusCode)
}

func TestSaveProfileBySession_RejectsForeignProfileID(t *testing.T) {
	fx := newUsecaseFixture(t, "s3cret-pass")

	created, _, err := fx.usecase.SaveProfileBySession(context.Background(), providerSessionData(testAccountID), saveRequest())
	require.NoError(t, err)

	hijack := saveRequest()
	hijack.ID = created.ID
	hijack.NIC = "887766554V"
	_, _, err = fx.usecase.SaveProfileBySession(context.Background(), providerSessionData("acc-2002"), hijack)
	require.Error(t, err)
	customErr, ok := err.(*exceptions.CustomError)
	require.True(t, ok)
	assert.Equal(t, 403, customErr.StatusCode)
}

func TestGetProfileBySession_RemoteFallback(t *testing.T) {
	fx := newUsecaseFixture(t, "s3cret-pass")
	sessionData := providerSessionData(testAccountID)

	created, _, err := fx.usecase.SaveProfileBySession(context.Background(), sessionData, saveRequest())
	require.NoError(t, err)

	// Simulate mirror expiry; default read must miss, fallback must rebuild it.
	require.NoError(t, fx.cache.Clear(context.Background(), testAccountID))

	_, err = fx.usecase.GetProfileBySession(context.Background(), sessionData, false)
	require.Error(t, err)

	loaded, err := fx.usecase.GetProfileBySession(context.Background(), sessionData, true)
	require.NoError(t, err)
	assert.Equal(t, created.ID, loaded.ID)

	mirrored, err := fx.cache.Get(context.Background(), testAccountID)
	require.NoError(t, err)
	require.NotNil(t, mirrored)
	assert.Equal(t, created.ID, mirrored.ID)
}

func TestDeleteProfileBySession_IsTerminal(t *testing.T) {
	fx := newUsecaseFixture(t, "s3cret-pass")
	sessionData := providerSessionData(testAccountID)

	created, _, err := fx.usecase.SaveProfileBySession(context.Background(), sessionData, saveRequest())
	require.NoError(t, err)

	err = fx.usecase.DeleteProfileBySession(context.Background(), sessionData, &requests.DeleteProviderProfile{Password: "s3cret-pass"})
	require.NoError(t, err)

	_, err = fx.usecase.GetProfileBySession(context.Background(), sessionData, true)
	require.Error(t, err)
	customErr, ok := err.(*exceptions.CustomError)
	require.True(t, ok)
	assert.Equal(t, 404, customErr.StatusCode)

	update := saveRequest()
	update.ID = created.ID
	_, _, err = fx.usecase.SaveProfileBySession(context.Background(), sessionData, update)
	require.Error(t, err)
	customErr, ok = err.(*exceptions.CustomError)
	require.True(t, ok)
	assert.Equal(t, 404, customErr.StatusCode)
}

func TestDeleteProfileBySession_WrongPassword(t *testing.T) {
	fx := newUsecaseFixture(t, "s3cret-pass")
	sessionData := providerSessionData(testAccountID)

	_, _, err := fx.usecase.SaveProfileBySession(context.Background(), sessionData, saveRequest())
	require.NoError(t, err)

	err = fx.usecase.DeleteProfileBySession(context.Background(), sessionData, &requests.DeleteProviderProfile{Password: "wrong"})
	require.Error(t, err)
	customErr, ok := err.(*exceptions.CustomError)
	require.True(t, ok)
	assert.Equal(t, 403, customErr.StatusCode)

	loaded, err := fx.usecase.GetProfileBySession(context.Background(), sessionData, true)
	require.NoError(t, err)
	assert.NotNil(t, loaded)
}
