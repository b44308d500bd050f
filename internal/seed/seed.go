package seed

import (
	"context"
	"errors"

	machinedomain "github.com/smallbiznis/fleetrate/internal/machine/domain"
	"gorm.io/gorm"
)

// The fleet is registered at install time; machines are not created through
// any public operation.
var fleet = []machinedomain.Machine{
	{ID: "99ade105-dee1-49eb-8ac4-e4d272f89fba", Name: "Machine 1"},
	{ID: "4111947a-6c58-4977-90fa-2caaaef88648", Name: "Machine 2"},
	{ID: "57342663-909c-4adf-9829-6dd1a3aa9143", Name: "Machine 3"},
	{ID: "5632e1ec-46cb-4895-bc8b-a91644568cd5", Name: "Machine 4"},
}

// EnsureFleet seeds the fixed machine fleet. Machines that already exist are
// left untouched, so re-running is a no-op.
func EnsureFleet(db *gorm.DB) error {
	if db == nil {
		return errors.New("seed database handle is required")
	}

	ctx := context.Background()
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, m := range fleet {
			var existing machinedomain.Machine
			if err := tx.Raw(`SELECT id, name, pricing_id FROM machines WHERE id = ?`, m.ID).Scan(&existing).Error; err != nil {
				return err
			}
			if existing.ID != "" {
				continue
			}
			if err := tx.Exec(`INSERT INTO machines (id, name) VALUES (?, ?)`, m.ID, m.Name).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
