package declarationrepo

import (
	"context"
	"errors"
	"time"

	"ihm/internal/core/domain/model/declaration"
	"ihm/internal/core/domain/model/kernel"
	"ihm/internal/pkg/errs"

	"gorm.io/gorm"
)

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// GormDeclarationRequestRepository implements DeclarationRequestRepository
// using GORM.
type GormDeclarationRequestRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// NewGormDeclarationRequestRepository creates a new GORM declaration
// request repository.
func NewGormDeclarationRequestRepository(db *gorm.DB, tracker aggregateTracker) *GormDeclarationRequestRepository {
	return &GormDeclarationRequestRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new declaration request to the database. A second request
// for the same purchase order maps to a conflict.
func (r *GormDeclarationRequestRepository) Add(ctx context.Context, aggregate *declaration.Request) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := requestFromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewConflictErrorWithCause(
				"a declaration request already exists for this purchase order", err,
			)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing declaration request to the database.
func (r *GormDeclarationRequestRepository) Update(ctx context.Context, aggregate *declaration.Request) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := requestFromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&RequestDTO{}).
		Where("id = ?", dto.ID).
		Select("*").Omit("id", "created_at", "created_by").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("declaration request", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a declaration request by ID.
func (r *GormDeclarationRequestRepository) Get(ctx context.Context, id kernel.UUID) (*declaration.Request, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto RequestDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("declaration request", id.String())
		}
		return nil, err
	}

	return requestToDomain(dto)
}

// GetByPurchaseOrderID retrieves the request attached to the given
// purchase order.
func (r *GormDeclarationRequestRepository) GetByPurchaseOrderID(
	ctx context.Context, purchaseOrderID kernel.UUID,
) (*declaration.Request, error) {
	if err := purchaseOrderID.Validate(); err != nil {
		return nil, err
	}

	var dto RequestDTO
	if err := r.db.WithContext(ctx).
		First(&dto, "purchase_order_id = ?", purchaseOrderID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("declaration request", purchaseOrderID.String())
		}
		return nil, err
	}

	return requestToDomain(dto)
}

// GetAllOverdue retrieves pending requests whose due date lies before the
// given instant.
func (r *GormDeclarationRequestRepository) GetAllOverdue(
	ctx context.Context, now time.Time,
) ([]*declaration.Request, error) {
	var dtos []RequestDTO
	if err := r.db.WithContext(ctx).
		Where("status = ?", declaration.RequestStatusPending.String()).
		Where("due_date IS NOT NULL AND due_date < ?", now).
		Order("due_date").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	requests := make([]*declaration.Request, 0, len(dtos))
	for _, dto := range dtos {
		request, err := requestToDomain(dto)
		if err != nil {
			return nil, err
		}
		requests = append(requests, request)
	}

	return requests, nil
}

// GormDeclarationRepository implements DeclarationRepository using GORM.
// Declarations and their material rows are persisted together; callers
// run Add and Update inside a unit of work so the pair commits atomically.
type GormDeclarationRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// NewGormDeclarationRepository creates a new GORM declaration repository.
func NewGormDeclarationRepository(db *gorm.DB, tracker aggregateTracker) *GormDeclarationRepository {
	return &GormDeclarationRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new declaration and its material rows to the database.
// A duplicate declaration number or a second declaration for the same
// request maps to a conflict.
func (r *GormDeclarationRepository) Add(ctx context.Context, aggregate *declaration.Declaration) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := declarationFromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewConflictErrorWithCause(
				"a declaration with this number or for this request already exists", err,
			)
		}
		return err
	}

	if err := r.insertMaterials(ctx, aggregate); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing declaration, replacing its material rows with
// the aggregate's current set.
func (r *GormDeclarationRepository) Update(ctx context.Context, aggregate *declaration.Declaration) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := declarationFromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&DeclarationDTO{}).
		Where("id = ?", dto.ID).
		Select("*").Omit("id", "created_at").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("declaration", aggregate.ID().String())
	}

	if err := r.db.WithContext(ctx).
		Delete(&HazardousMaterialDTO{}, "declaration_id = ?", dto.ID).Error; err != nil {
		return err
	}

	if err := r.insertMaterials(ctx, aggregate); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a declaration, with materials in submission order, by ID.
func (r *GormDeclarationRepository) Get(ctx context.Context, id kernel.UUID) (*declaration.Declaration, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto DeclarationDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("declaration", id.String())
		}
		return nil, err
	}

	return r.load(ctx, dto)
}

// GetByRequestID retrieves the declaration attached to the given request.
func (r *GormDeclarationRepository) GetByRequestID(
	ctx context.Context, requestID kernel.UUID,
) (*declaration.Declaration, error) {
	if err := requestID.Validate(); err != nil {
		return nil, err
	}

	var dto DeclarationDTO
	if err := r.db.WithContext(ctx).
		First(&dto, "request_id = ?", requestID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("declaration", requestID.String())
		}
		return nil, err
	}

	return r.load(ctx, dto)
}

func (r *GormDeclarationRepository) load(ctx context.Context, dto DeclarationDTO) (*declaration.Declaration, error) {
	var materialDTOs []HazardousMaterialDTO
	if err := r.db.WithContext(ctx).
		Order("seq").
		Find(&materialDTOs, "declaration_id = ?", dto.ID).Error; err != nil {
		return nil, err
	}

	return declarationToDomain(dto, materialDTOs)
}

func (r *GormDeclarationRepository) insertMaterials(ctx context.Context, aggregate *declaration.Declaration) error {
	materialDTOs := materialsFromDomain(aggregate)
	if len(materialDTOs) == 0 {
		return nil
	}

	return r.db.WithContext(ctx).Create(&materialDTOs).Error
}
