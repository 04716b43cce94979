package mocks

import (
	"github.com/ClaudiuJitea/nutritionai/internal/models"

	"github.com/stretchr/testify/mock"
)

// Shared MockFoodEntryRepository
type MockFoodEntryRepository struct {
	mock.Mock
}

func (m *MockFoodEntryRepository) Create(entry *models.FoodEntry) error {
	args := m.Called(entry)
	return args.Error(0)
}

func (m *MockFoodEntryRepository) FindByID(id uint) (*models.FoodEntry, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.FoodEntry), args.Error(1)
}

func (m *MockFoodEntryRepository) FindByUserAndDate(userID uint, date string) ([]models.FoodEntry, error) {
	args := m.Called(userID, date)
	return args.Get(0).([]models.FoodEntry), args.Error(1)
}

func (m *MockFoodEntryRepository) Patch(id uint, patch models.FoodEntryPatch) error {
	args := m.Called(id, patch)
	return args.Error(0)
}

func (m *MockFoodEntryRepository) Delete(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockFoodEntryRepository) DailyTotals(userID uint, date string) (*models.DailyMacros, error) {
	args := m.Called(userID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.DailyMacros), args.Error(1)
}

func (m *MockFoodEntryRepository) RangeStats(userID uint, startDate, endDate string) ([]models.DailyMacros, error) {
	args := m.Called(userID, startDate, endDate)
	return args.Get(0).([]models.DailyMacros), args.Error(1)
}

func (m *MockFoodEntryRepository) ConsistencyDays(userID uint, startDate, endDate string) (int64, error) {
	args := m.Called(userID, startDate, endDate)
	return args.Get(0).(int64), args.Error(1)
}

// Shared MockWaterIntakeRepository
type MockWaterIntakeRepository struct {
	mock.Mock
}

func (m *MockWaterIntakeRepository) Create(intake *models.WaterIntake) error {
	args := m.Called(intake)
	return args.Error(0)
}

func (m *MockWaterIntakeRepository) TotalByDate(userID uint, date string) (int, error) {
	args := m.Called(userID, date)
	return args.Get(0).(int), args.Error(1)
}

// Shared MockUserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindByID(id uint) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) UpdateGoals(userID uint, calorieGoal, waterGoal int) error {
	args := m.Called(userID, calorieGoal, waterGoal)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateName(userID uint, name string) error {
	args := m.Called(userID, name)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateProfile(userID uint, profile models.UserProfile) (*models.User, error) {
	args := m.Called(userID, profile)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

// Shared MockSettingRepository
type MockSettingRepository struct {
	mock.Mock
}

func (m *MockSettingRepository) Get(userID uint, key string) (*models.Setting, error) {
	args := m.Called(userID, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Setting), args.Error(1)
}

func (m *MockSettingRepository) Set(userID uint, key, value string) error {
	args := m.Called(userID, key, value)
	return args.Error(0)
}

// MockSecretStore implements secrets.Store
type MockSecretStore struct {
	mock.Mock
}

func (m *MockSecretStore) APIKey() (string, error) {
	args := m.Called()
	return args.String(0), args.Error(1)
}

func (m *MockSecretStore) SetAPIKey(key string) error {
	args := m.Called(key)
	return args.Error(0)
}

func (m *MockSecretStore) ClearAPIKey() error {
	args := m.Called()
	return args.Error(0)
}
