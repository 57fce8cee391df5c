package sensor

import (
	"Fridgemate-Backend/domain"
	"Fridgemate-Backend/entities"
	"Fridgemate-Backend/pkg/fridge"
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&entities.UserFridgeMap{},
		&entities.EnvironmentReading{},
		&entities.DoorState{},
	))
	return db
}

func newTestService(t *testing.T) (SensorService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	return NewSensorService(NewSensorRepository(db), fridge.NewFridgeRepository(db)), db
}

func f64ptr(v float64) *float64 { return &v }
func boolptr(v bool) *bool      { return &v }

func TestSensorService_EnvironmentUpsertKeepsLatest(t *testing.T) {
	ctx := context.Background()
	svc, db := newTestService(t)
	require.NoError(t, db.Create(&entities.UserFridgeMap{UserID: "u1", FridgeID: "f1"}).Error)

	err := svc.RecordEnvironment(ctx, domain.RecordEnvironmentRequest{
		FridgeID: "f1", Temperature: f64ptr(4.5), Humidity: f64ptr(38),
	})
	require.NoError(t, err)

	err = svc.RecordEnvironment(ctx, domain.RecordEnvironmentRequest{
		FridgeID: "f1", Temperature: f64ptr(6.1), Humidity: f64ptr(41),
	})
	require.NoError(t, err)

	res, err := svc.GetEnvironment(ctx, domain.GetSensorDataRequest{UserID: "u1"})
	require.NoError(t, err)
	assert.Equal(t, 6.1, res.Temperature)
	assert.Equal(t, float64(41), res.Humidity)

	// one row per fridge, never a history
	var count int64
	require.NoError(t, db.Model(&entities.EnvironmentReading{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestSensorService_DoorStateUpsertKeepsLatest(t *testing.T) {
	ctx := context.Background()
	svc, db := newTestService(t)
	require.NoError(t, db.Create(&entities.UserFridgeMap{UserID: "u1", FridgeID: "f1"}).Error)

	require.NoError(t, svc.RecordDoorState(ctx, domain.RecordDoorStateRequest{FridgeID: "f1", Open: boolptr(true)}))
	require.NoError(t, svc.RecordDoorState(ctx, domain.RecordDoorStateRequest{FridgeID: "f1", Open: boolptr(false)}))

	res, err := svc.GetDoorState(ctx, domain.GetSensorDataRequest{UserID: "u1"})
	require.NoError(t, err)
	assert.False(t, res.Open)

	var count int64
	require.NoError(t, db.Model(&entities.DoorState{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestSensorService_ReadingsAreScopedPerFridge(t *testing.T) {
	ctx := context.Background()
	svc, db := newTestService(t)
	require.NoError(t, db.Create(&entities.UserFridgeMap{UserID: "u1", FridgeID: "f1"}).Error)
	require.NoError(t, db.Create(&entities.UserFridgeMap{UserID: "u2", FridgeID: "f2"}).Error)

	require.NoError(t, svc.RecordEnvironment(ctx, domain.RecordEnvironmentRequest{
		FridgeID: "f1", Temperature: f64ptr(3), Humidity: f64ptr(30),
	}))
	require.NoError(t, svc.RecordEnvironment(ctx, domain.RecordEnvironmentRequest{
		FridgeID: "f2", Temperature: f64ptr(8), Humidity: f64ptr(55),
	}))

	res, err := svc.GetEnvironment(ctx, domain.GetSensorDataRequest{UserID: "u2"})
	require.NoError(t, err)
	assert.Equal(t, float64(8), res.Temperature)
}

func TestSensorService_GetWithoutData(t *testing.T) {
	ctx := context.Background()
	svc, db := newTestService(t)
	require.NoError(t, db.Create(&entities.UserFridgeMap{UserID: "u1", FridgeID: "f1"}).Error)

	_, err := svc.GetEnvironment(ctx, domain.GetSensorDataRequest{UserID: "u1"})
	assert.ErrorIs(t, err, domain.ErrNoEnvironmentData)

	_, err = svc.GetDoorState(ctx, domain.GetSensorDataRequest{UserID: "u1"})
	assert.ErrorIs(t, err, domain.ErrNoDoorState)
}

func TestSensorService_GetWithoutFridge(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	_, err := svc.GetEnvironment(ctx, domain.GetSensorDataRequest{UserID: "ghost"})
	assert.ErrorIs(t, err, domain.ErrFridgeNotAssociated)
}
