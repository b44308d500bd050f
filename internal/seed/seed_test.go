package seed_test

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/smallbiznis/fleetrate/internal/migration"
	"github.com/smallbiznis/fleetrate/internal/seed"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestEnsureFleet(t *testing.T) {
	db, err := gorm.Open(sqlite.Open("file:seed_fleet?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, migration.RunDDL(db))

	require.NoError(t, seed.EnsureFleet(db))

	var count int64
	require.NoError(t, db.Raw(`SELECT COUNT(*) FROM machines`).Scan(&count).Error)
	assert.Equal(t, int64(4), count)

	t.Run("ReseedingIsANoOp", func(t *testing.T) {
		require.NoError(t, seed.EnsureFleet(db))

		var again int64
		require.NoError(t, db.Raw(`SELECT COUNT(*) FROM machines`).Scan(&again).Error)
		assert.Equal(t, int64(4), again)
	})

	t.Run("KeepsExistingAssignments", func(t *testing.T) {
		require.NoError(t, db.Exec(
			`UPDATE machines SET pricing_id = ? WHERE id = ?`,
			"6f2e9d8c-4f11-4f6a-8f2e-1c9a27b3d001", seed.Fleet[0].ID,
		).Error)

		require.NoError(t, seed.EnsureFleet(db))

		var pricingID *string
		require.NoError(t, db.Raw(`SELECT pricing_id FROM machines WHERE id = ?`, seed.Fleet[0].ID).Scan(&pricingID).Error)
		require.NotNil(t, pricingID)
		assert.Equal(t, "6f2e9d8c-4f11-4f6a-8f2e-1c9a27b3d001", *pricingID)
	})
}
