package queries

import (
	"context"

	"ihm/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetHazardousMaterialsQueryHandler searches hazardous material rows in
// the database, restricted to declarations the actor may see.
type GetHazardousMaterialsQueryHandler struct {
	db *gorm.DB
}

// NewGetHazardousMaterialsQueryHandler creates a handler for material
// search queries.
func NewGetHazardousMaterialsQueryHandler(db *gorm.DB) GetHazardousMaterialsQueryHandler {
	return GetHazardousMaterialsQueryHandler{db: db}
}

// Handle executes the search. Rows keep their submission order within a
// declaration.
func (h GetHazardousMaterialsQueryHandler) Handle(
	ctx context.Context,
	query GetHazardousMaterialsQuery,
) ([]GetHazardousMaterialsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT
			hazardous_materials.id,
			hazardous_materials.declaration_id,
			declarations.declaration_number,
			hazardous_materials.material_name,
			hazardous_materials.cas_number,
			hazardous_materials.content_percentage,
			hazardous_materials.location_in_product,
			hazardous_materials.remarks
		FROM hazardous_materials
		JOIN declarations ON declarations.id = hazardous_materials.declaration_id
		JOIN ships ON ships.id = declarations.ship_id
		WHERE 1 = 1`
	args := make([]any, 0, 3)

	if predicate, predicateArgs := scopePredicate(
		query.Actor(), shipCustomerScopeSQL, declarationSupplierScopeSQL,
	); predicate != "" {
		sql += "\n\t\tAND " + predicate
		args = append(args, predicateArgs...)
	}
	if query.DeclarationID() != nil {
		sql += "\n\t\tAND hazardous_materials.declaration_id = ?"
		args = append(args, query.DeclarationID().String())
	}
	if query.MaterialName() != "" {
		sql += "\n\t\tAND hazardous_materials.material_name ILIKE ?"
		args = append(args, "%"+query.MaterialName()+"%")
	}
	sql += "\n\t\tORDER BY hazardous_materials.declaration_id, hazardous_materials.seq"

	materials := make([]GetHazardousMaterialsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetHazardousMaterialsQueryResponse
		var id, declarationID uuid.UUID

		err = rows.Scan(
			&id,
			&declarationID,
			&resp.DeclarationNumber,
			&resp.MaterialName,
			&resp.CASNumber,
			&resp.ContentPercentage,
			&resp.LocationInProduct,
			&resp.Remarks,
		)
		if err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if resp.DeclarationID, err = kernel.UUIDFromBytes(declarationID[:]); err != nil {
			return nil, err
		}

		materials = append(materials, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return materials, nil
}
