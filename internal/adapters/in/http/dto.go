package http

import (
	"time"

	"ihm/internal/core/application/usecases/queries"
)

// Request bodies. Validation here covers shape only (required fields,
// formats); business rules are enforced by the command constructors.

type registerRequest struct {
	Username        string `json:"username" validate:"required"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=8"`
	PasswordConfirm string `json:"passwordConfirm" validate:"required"`
	Role            string `json:"role" validate:"required"`
	CompanyName     string `json:"companyName"`
	BusinessNumber  string `json:"businessNumber"`
	Address         string `json:"address"`
	ContactPhone    string `json:"contactPhone"`
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type createShipRequest struct {
	CustomerID   *string `json:"customerId"`
	Name         string  `json:"name" validate:"required"`
	IMONumber    string  `json:"imoNumber" validate:"required"`
	ShipType     string  `json:"shipType"`
	GrossTonnage float64 `json:"grossTonnage"`
	YearBuilt    int     `json:"yearBuilt"`
}

type updateShipRequest struct {
	Name         string  `json:"name" validate:"required"`
	ShipType     string  `json:"shipType"`
	GrossTonnage float64 `json:"grossTonnage"`
	YearBuilt    int     `json:"yearBuilt"`
	IsActive     bool    `json:"isActive"`
}

type createPurchaseOrderRequest struct {
	ShipID          string     `json:"shipId" validate:"required"`
	OrderNumber     string     `json:"orderNumber" validate:"required"`
	Title           string     `json:"title" validate:"required"`
	Description     string     `json:"description"`
	ItemName        string     `json:"itemName"`
	ItemDescription string     `json:"itemDescription"`
	Quantity        float64    `json:"quantity"`
	Unit            string     `json:"unit"`
	OrderDate       time.Time  `json:"orderDate" validate:"required"`
	DeliveryDate    *time.Time `json:"deliveryDate"`
}

type requestDeclarationRequest struct {
	SupplierID string     `json:"supplierId" validate:"required"`
	DueDate    *time.Time `json:"dueDate"`
}

type rejectionRequest struct {
	Reason string `json:"reason" validate:"required"`
}

type materialInput struct {
	MaterialName      string   `json:"materialName" validate:"required"`
	CASNumber         string   `json:"casNumber"`
	ContentPercentage *float64 `json:"contentPercentage"`
	LocationInProduct string   `json:"locationInProduct"`
	Remarks           string   `json:"remarks"`
}

type submitDeclarationRequest struct {
	PurchaseOrderID     string          `json:"purchaseOrderId" validate:"required"`
	DeclarationNumber   string          `json:"declarationNumber" validate:"required"`
	Title               string          `json:"title" validate:"required"`
	DeclarationType     string          `json:"declarationType" validate:"required"`
	ItemName            string          `json:"itemName"`
	Manufacturer        string          `json:"manufacturer"`
	ModelNumber         string          `json:"modelNumber"`
	ComplianceStatus    string          `json:"complianceStatus" validate:"required"`
	CertificationNumber string          `json:"certificationNumber"`
	SupplierSignature   string          `json:"supplierSignature"`
	SupplierName        string          `json:"supplierName"`
	SignatureDate       *time.Time      `json:"signatureDate"`
	Materials           []materialInput `json:"materials"`
}

// Response bodies.

type idResponse struct {
	ID string `json:"id"`
}

type tokenResponse struct {
	Token  string `json:"token"`
	UserID string `json:"userId"`
	Role   string `json:"role"`
}

type accountResponse struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	Role         string    `json:"role"`
	CompanyName  string    `json:"companyName"`
	ContactPhone string    `json:"contactPhone"`
	IsActive     bool      `json:"isActive"`
	CreatedAt    time.Time `json:"createdAt"`
}

type companyProfileResponse struct {
	ID             string    `json:"id"`
	ProfileRole    string    `json:"profileRole"`
	CompanyName    string    `json:"companyName"`
	BusinessNumber string    `json:"businessNumber"`
	Address        string    `json:"address"`
	ContactPerson  string    `json:"contactPerson"`
	ContactPhone   string    `json:"contactPhone"`
	ContactEmail   string    `json:"contactEmail"`
	CreatedAt      time.Time `json:"createdAt"`
}

type companyResponse struct {
	ID             string    `json:"id"`
	CompanyName    string    `json:"companyName"`
	BusinessNumber string    `json:"businessNumber"`
	Address        string    `json:"address"`
	ContactPerson  string    `json:"contactPerson"`
	ContactPhone   string    `json:"contactPhone"`
	ContactEmail   string    `json:"contactEmail"`
	CreatedAt      time.Time `json:"createdAt"`
}

type shipResponse struct {
	ID              string    `json:"id"`
	CustomerID      string    `json:"customerId"`
	CustomerCompany string    `json:"customerCompany"`
	Name            string    `json:"name"`
	IMONumber       string    `json:"imoNumber"`
	ShipType        string    `json:"shipType"`
	GrossTonnage    float64   `json:"grossTonnage"`
	YearBuilt       int       `json:"yearBuilt"`
	IsActive        bool      `json:"isActive"`
	CreatedAt       time.Time `json:"createdAt"`
}

type purchaseOrderResponse struct {
	ID           string     `json:"id"`
	ShipID       string     `json:"shipId"`
	ShipName     string     `json:"shipName"`
	OrderNumber  string     `json:"orderNumber"`
	Title        string     `json:"title"`
	ItemName     string     `json:"itemName"`
	Quantity     float64    `json:"quantity"`
	Unit         string     `json:"unit"`
	OrderDate    time.Time  `json:"orderDate"`
	DeliveryDate *time.Time `json:"deliveryDate"`
	Status       string     `json:"status"`
}

type purchaseOrderDetailResponse struct {
	ID              string     `json:"id"`
	ShipID          string     `json:"shipId"`
	ShipName        string     `json:"shipName"`
	OrderNumber     string     `json:"orderNumber"`
	Title           string     `json:"title"`
	Description     string     `json:"description"`
	ItemName        string     `json:"itemName"`
	ItemDescription string     `json:"itemDescription"`
	Quantity        float64    `json:"quantity"`
	Unit            string     `json:"unit"`
	OrderDate       time.Time  `json:"orderDate"`
	DeliveryDate    *time.Time `json:"deliveryDate"`
	Status          string     `json:"status"`
	CreatedAt       time.Time  `json:"createdAt"`
}

type declarationRequestResponse struct {
	ID              string     `json:"id"`
	PurchaseOrderID string     `json:"purchaseOrderId"`
	OrderNumber     string     `json:"orderNumber"`
	OrderTitle      string     `json:"orderTitle"`
	ShipName        string     `json:"shipName"`
	SupplierID      string     `json:"supplierId"`
	SupplierCompany string     `json:"supplierCompany"`
	RequestDate     time.Time  `json:"requestDate"`
	DueDate         *time.Time `json:"dueDate"`
	Status          string     `json:"status"`
	RejectionReason string     `json:"rejectionReason,omitempty"`
}

type declarationResponse struct {
	ID                string     `json:"id"`
	RequestID         string     `json:"requestId"`
	ShipID            string     `json:"shipId"`
	ShipName          string     `json:"shipName"`
	OrderNumber       string     `json:"orderNumber"`
	SupplierCompany   string     `json:"supplierCompany"`
	DeclarationNumber string     `json:"declarationNumber"`
	Title             string     `json:"title"`
	DeclarationType   string     `json:"declarationType"`
	ComplianceStatus  string     `json:"complianceStatus"`
	Status            string     `json:"status"`
	SubmittedDate     *time.Time `json:"submittedDate"`
	ApprovedDate      *time.Time `json:"approvedDate"`
}

type declarationMaterialResponse struct {
	ID                string   `json:"id"`
	MaterialName      string   `json:"materialName"`
	CASNumber         string   `json:"casNumber"`
	ContentPercentage *float64 `json:"contentPercentage"`
	LocationInProduct string   `json:"locationInProduct"`
	Remarks           string   `json:"remarks"`
}

type declarationDetailResponse struct {
	ID                  string                        `json:"id"`
	RequestID           string                        `json:"requestId"`
	PurchaseOrderID     string                        `json:"purchaseOrderId"`
	OrderNumber         string                        `json:"orderNumber"`
	ShipID              string                        `json:"shipId"`
	ShipName            string                        `json:"shipName"`
	SupplierID          string                        `json:"supplierId"`
	SupplierCompany     string                        `json:"supplierCompany"`
	DeclarationNumber   string                        `json:"declarationNumber"`
	Title               string                        `json:"title"`
	DeclarationType     string                        `json:"declarationType"`
	ItemName            string                        `json:"itemName"`
	Manufacturer        string                        `json:"manufacturer"`
	ModelNumber         string                        `json:"modelNumber"`
	ComplianceStatus    string                        `json:"complianceStatus"`
	CertificationNumber string                        `json:"certificationNumber"`
	SupplierSignature   string                        `json:"supplierSignature"`
	SupplierName        string                        `json:"supplierName"`
	SignatureDate       *time.Time                    `json:"signatureDate"`
	SubmittedDate       *time.Time                    `json:"submittedDate"`
	ApprovedDate        *time.Time                    `json:"approvedDate"`
	Status              string                        `json:"status"`
	RejectionReason     string                        `json:"rejectionReason,omitempty"`
	Materials           []declarationMaterialResponse `json:"materials"`
}

type hazardousMaterialResponse struct {
	ID                string   `json:"id"`
	DeclarationID     string   `json:"declarationId"`
	DeclarationNumber string   `json:"declarationNumber"`
	MaterialName      string   `json:"materialName"`
	CASNumber         string   `json:"casNumber"`
	ContentPercentage *float64 `json:"contentPercentage"`
	LocationInProduct string   `json:"locationInProduct"`
	Remarks           string   `json:"remarks"`
}

func customerCompanyResponseFrom(r queries.GetCustomersQueryResponse) companyResponse {
	return companyResponse{
		ID:             r.ID.String(),
		CompanyName:    r.CompanyName,
		BusinessNumber: r.BusinessNumber,
		Address:        r.Address,
		ContactPerson:  r.ContactPerson,
		ContactPhone:   r.ContactPhone,
		ContactEmail:   r.ContactEmail,
		CreatedAt:      r.CreatedAt,
	}
}

func supplierCompanyResponseFrom(r queries.GetSuppliersQueryResponse) companyResponse {
	return companyResponse{
		ID:             r.ID.String(),
		CompanyName:    r.CompanyName,
		BusinessNumber: r.BusinessNumber,
		Address:        r.Address,
		ContactPerson:  r.ContactPerson,
		ContactPhone:   r.ContactPhone,
		ContactEmail:   r.ContactEmail,
		CreatedAt:      r.CreatedAt,
	}
}

func shipResponseFrom(r queries.GetShipsQueryResponse) shipResponse {
	return shipResponse{
		ID:              r.ID.String(),
		CustomerID:      r.CustomerID.String(),
		CustomerCompany: r.CustomerCompany,
		Name:            r.Name,
		IMONumber:       r.IMONumber,
		ShipType:        r.ShipType,
		GrossTonnage:    r.GrossTonnage,
		YearBuilt:       r.YearBuilt,
		IsActive:        r.IsActive,
		CreatedAt:       r.CreatedAt,
	}
}

func purchaseOrderResponseFrom(r queries.GetPurchaseOrdersQueryResponse) purchaseOrderResponse {
	return purchaseOrderResponse{
		ID:           r.ID.String(),
		ShipID:       r.ShipID.String(),
		ShipName:     r.ShipName,
		OrderNumber:  r.OrderNumber,
		Title:        r.Title,
		ItemName:     r.ItemName,
		Quantity:     r.Quantity,
		Unit:         r.Unit,
		OrderDate:    r.OrderDate,
		DeliveryDate: r.DeliveryDate,
		Status:       r.Status,
	}
}

func purchaseOrderDetailResponseFrom(r queries.GetPurchaseOrderQueryResponse) purchaseOrderDetailResponse {
	return purchaseOrderDetailResponse{
		ID:              r.ID.String(),
		ShipID:          r.ShipID.String(),
		ShipName:        r.ShipName,
		OrderNumber:     r.OrderNumber,
		Title:           r.Title,
		Description:     r.Description,
		ItemName:        r.ItemName,
		ItemDescription: r.ItemDescription,
		Quantity:        r.Quantity,
		Unit:            r.Unit,
		OrderDate:       r.OrderDate,
		DeliveryDate:    r.DeliveryDate,
		Status:          r.Status,
		CreatedAt:       r.CreatedAt,
	}
}

func declarationRequestResponseFrom(r queries.GetDeclarationRequestsQueryResponse) declarationRequestResponse {
	return declarationRequestResponse{
		ID:              r.ID.String(),
		PurchaseOrderID: r.PurchaseOrderID.String(),
		OrderNumber:     r.OrderNumber,
		OrderTitle:      r.OrderTitle,
		ShipName:        r.ShipName,
		SupplierID:      r.SupplierID.String(),
		SupplierCompany: r.SupplierCompany,
		RequestDate:     r.RequestDate,
		DueDate:         r.DueDate,
		Status:          r.Status,
		RejectionReason: r.RejectionReason,
	}
}

func declarationResponseFrom(r queries.GetDeclarationsQueryResponse) declarationResponse {
	return declarationResponse{
		ID:                r.ID.String(),
		RequestID:         r.RequestID.String(),
		ShipID:            r.ShipID.String(),
		ShipName:          r.ShipName,
		OrderNumber:       r.OrderNumber,
		SupplierCompany:   r.SupplierCompany,
		DeclarationNumber: r.DeclarationNumber,
		Title:             r.Title,
		DeclarationType:   r.DeclarationType,
		ComplianceStatus:  r.ComplianceStatus,
		Status:            r.Status,
		SubmittedDate:     r.SubmittedDate,
		ApprovedDate:      r.ApprovedDate,
	}
}

func declarationDetailResponseFrom(r queries.GetDeclarationDetailQueryResponse) declarationDetailResponse {
	materials := make([]declarationMaterialResponse, len(r.Materials))
	for i, m := range r.Materials {
		materials[i] = declarationMaterialResponse{
			ID:                m.ID.String(),
			MaterialName:      m.MaterialName,
			CASNumber:         m.CASNumber,
			ContentPercentage: m.ContentPercentage,
			LocationInProduct: m.LocationInProduct,
			Remarks:           m.Remarks,
		}
	}

	return declarationDetailResponse{
		ID:                  r.ID.String(),
		RequestID:           r.RequestID.String(),
		PurchaseOrderID:     r.PurchaseOrderID.String(),
		OrderNumber:         r.OrderNumber,
		ShipID:              r.ShipID.String(),
		ShipName:            r.ShipName,
		SupplierID:          r.SupplierID.String(),
		SupplierCompany:     r.SupplierCompany,
		DeclarationNumber:   r.DeclarationNumber,
		Title:               r.Title,
		DeclarationType:     r.DeclarationType,
		ItemName:            r.ItemName,
		Manufacturer:        r.Manufacturer,
		ModelNumber:         r.ModelNumber,
		ComplianceStatus:    r.ComplianceStatus,
		CertificationNumber: r.CertificationNumber,
		SupplierSignature:   r.SupplierSignature,
		SupplierName:        r.SupplierName,
		SignatureDate:       r.SignatureDate,
		SubmittedDate:       r.SubmittedDate,
		ApprovedDate:        r.ApprovedDate,
		Status:              r.Status,
		RejectionReason:     r.RejectionReason,
		Materials:           materials,
	}
}

func hazardousMaterialResponseFrom(r queries.GetHazardousMaterialsQueryResponse) hazardousMaterialResponse {
	return hazardousMaterialResponse{
		ID:                r.ID.String(),
		DeclarationID:     r.DeclarationID.String(),
		DeclarationNumber: r.DeclarationNumber,
		MaterialName:      r.MaterialName,
		CASNumber:         r.CASNumber,
		ContentPercentage: r.ContentPercentage,
		LocationInProduct: r.LocationInProduct,
		Remarks:           r.Remarks,
	}
}
