package postgres

import (
	"gorm.io/gorm"

	"ihm/internal/adapters/out/postgres/accountrepo"
	"ihm/internal/adapters/out/postgres/declarationrepo"
	"ihm/internal/adapters/out/postgres/fleetrepo"
	"ihm/internal/adapters/out/postgres/procurementrepo"
)

// MigrateSchema creates or updates every table the repositories use.
// Tables are migrated parents first so foreign keys resolve.
func MigrateSchema(db *gorm.DB) error {
	return db.AutoMigrate(
		&accountrepo.UserDTO{},
		&accountrepo.CustomerDTO{},
		&accountrepo.SupplierDTO{},
		&fleetrepo.ShipDTO{},
		&procurementrepo.PurchaseOrderDTO{},
		&declarationrepo.RequestDTO{},
		&declarationrepo.DeclarationDTO{},
		&declarationrepo.HazardousMaterialDTO{},
	)
}
