package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"medihome/backend/models"
)

func newStoreDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&models.Routine{}))
	return db
}

func TestStaticResolve(t *testing.T) {
	static := NewStatic()

	routine, err := static.Resolve("rtn-rodilla-control")
	require.NoError(t, err)
	assert.Equal(t, "Rodilla — Control y fortalecimiento leve", routine.Name)
	assert.Equal(t, 3, routine.DayCount())
	assert.Nil(t, routine.OwnerID)

	_, err = static.Resolve("rtn-nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStaticList(t *testing.T) {
	routines, err := NewStatic().List()
	require.NoError(t, err)
	assert.Len(t, routines, 4)
}

func TestChainResolvesAcrossRepositories(t *testing.T) {
	db := newStoreDB(t)
	owner := uint(7)
	custom := models.Routine{
		ID:      "rtn-custom-1",
		Name:    "Tobillo — Propiocepción",
		Days:    []models.DayPlan{{Name: "Equilibrio unipodal"}},
		OwnerID: &owner,
	}
	require.NoError(t, db.Create(&custom).Error)

	repo := Chain{NewStatic(), NewStore(db)}

	base, err := repo.Resolve("rtn-cuello-descarga")
	require.NoError(t, err)
	assert.Nil(t, base.OwnerID)

	persisted, err := repo.Resolve("rtn-custom-1")
	require.NoError(t, err)
	require.NotNil(t, persisted.OwnerID)
	assert.Equal(t, owner, *persisted.OwnerID)

	_, err = repo.Resolve("rtn-missing")
	assert.ErrorIs(t, err, ErrNotFound)

	all, err := repo.List()
	require.NoError(t, err)
	assert.Len(t, all, 5)
}
