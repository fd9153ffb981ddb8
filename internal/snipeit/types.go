package snipeit

// NamedRef is the {id, name} shape Snipe-IT uses for related records.
type NamedRef struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// DateValue is the {date, formatted} shape Snipe-IT uses for dates.
type DateValue struct {
	Date      string `json:"date"`
	Formatted string `json:"formatted"`
}

// Asset is a trackable inventory item.
type Asset struct {
	ID           int            `json:"id"`
	AssetTag     string         `json:"asset_tag"`
	Name         string         `json:"name"`
	Serial       string         `json:"serial"`
	Model        *NamedRef      `json:"model"`
	StatusLabel  *NamedRef      `json:"status_label"`
	Category     *NamedRef      `json:"category"`
	Manufacturer *NamedRef      `json:"manufacturer"`
	Supplier     *NamedRef      `json:"supplier"`
	Location     *NamedRef      `json:"location"`
	RTDLocation  *NamedRef      `json:"rtd_location"`
	AssignedTo   map[string]any `json:"assigned_to"`
	Notes        string         `json:"notes"`
	PurchaseDate *DateValue     `json:"purchase_date"`
	// PurchaseCost arrives as a number or a formatted string depending on
	// instance settings; kept untyped and passed through.
	PurchaseCost any `json:"purchase_cost"`
}

// AssetList is the paged shape returned by GET /hardware.
type AssetList struct {
	Total int     `json:"total"`
	Rows  []Asset `json:"rows"`
}

// AssetParams carries the writable asset fields for create and update.
// Nil fields are omitted from the request payload.
type AssetParams struct {
	StatusID       *int     `json:"status_id,omitempty"`
	ModelID        *int     `json:"model_id,omitempty"`
	AssetTag       *string  `json:"asset_tag,omitempty"`
	Name           *string  `json:"name,omitempty"`
	Serial         *string  `json:"serial,omitempty"`
	PurchaseDate   *string  `json:"purchase_date,omitempty"`
	PurchaseCost   *float64 `json:"purchase_cost,omitempty"`
	OrderNumber    *string  `json:"order_number,omitempty"`
	Notes          *string  `json:"notes,omitempty"`
	WarrantyMonths *int     `json:"warranty_months,omitempty"`
	LocationID     *int     `json:"location_id,omitempty"`
	RTDLocationID  *int     `json:"rtd_location_id,omitempty"`
	SupplierID     *int     `json:"supplier_id,omitempty"`
	CompanyID      *int     `json:"company_id,omitempty"`
	Requestable    *bool    `json:"requestable,omitempty"`
}

// Checkout target types accepted by the API.
const (
	CheckoutToUser     = "user"
	CheckoutToAsset    = "asset"
	CheckoutToLocation = "location"
)

// CheckoutParams describes an asset checkout. The API keys the assignee
// ID by target type; the client performs that mapping.
type CheckoutParams struct {
	CheckoutToType  string `json:"checkout_to_type"`
	AssignedToID    int    `json:"assigned_to_id"`
	ExpectedCheckin string `json:"expected_checkin,omitempty"`
	CheckoutAt      string `json:"checkout_at,omitempty"`
	Note            string `json:"note,omitempty"`
	Name            string `json:"name,omitempty"`
}

// CheckinParams describes an asset checkin.
type CheckinParams struct {
	Note       string `json:"note,omitempty"`
	LocationID int    `json:"location_id,omitempty"`
}

// AuditParams describes an asset audit.
type AuditParams struct {
	LocationID    int    `json:"location_id,omitempty"`
	Note          string `json:"note,omitempty"`
	NextAuditDate string `json:"next_audit_date,omitempty"`
}

// MaintenanceParams describes a new maintenance record.
type MaintenanceParams struct {
	AssetImprovement string   `json:"asset_improvement"`
	SupplierID       int      `json:"supplier_id"`
	Title            string   `json:"title"`
	Cost             *float64 `json:"cost,omitempty"`
	StartDate        string   `json:"start_date,omitempty"`
	CompletionDate   string   `json:"completion_date,omitempty"`
	Notes            string   `json:"notes,omitempty"`
}

// License is a software license checked out to an asset.
type License struct {
	ID             int    `json:"id"`
	Name           string `json:"name"`
	ProductKey     string `json:"product_key"`
	Seats          int    `json:"seats"`
	ExpirationDate any    `json:"expiration_date"`
}

// LicenseList is the paged shape returned by GET /hardware/{id}/licenses.
type LicenseList struct {
	Total int       `json:"total"`
	Rows  []License `json:"rows"`
}

// FileInfo describes a file attached to an asset.
type FileInfo struct {
	ID        int        `json:"id"`
	Filename  string     `json:"filename"`
	Filesize  int64      `json:"filesize"`
	Note      string     `json:"note"`
	CreatedAt *DateValue `json:"created_at"`
}

// FileList is the paged shape returned by GET /hardware/{id}/files.
type FileList struct {
	Total int        `json:"total"`
	Rows  []FileInfo `json:"rows"`
}

// Consumable is a depletable inventory item.
type Consumable struct {
	ID           int        `json:"id"`
	Name         string     `json:"name"`
	Qty          int        `json:"qty"`
	Category     *NamedRef  `json:"category"`
	Company      *NamedRef  `json:"company"`
	Location     *NamedRef  `json:"location"`
	Manufacturer *NamedRef  `json:"manufacturer"`
	ModelNumber  string     `json:"model_number"`
	ItemNo       string     `json:"item_no"`
	OrderNumber  string     `json:"order_number"`
	PurchaseDate *DateValue `json:"purchase_date"`
	PurchaseCost any        `json:"purchase_cost"`
	MinAmt       int        `json:"min_amt"`
	Remaining    int        `json:"remaining"`
}

// ConsumableList is the paged shape returned by GET /consumables.
type ConsumableList struct {
	Total int          `json:"total"`
	Rows  []Consumable `json:"rows"`
}

// ConsumableParams carries the writable consumable fields for create and
// update. Nil fields are omitted from the request payload.
type ConsumableParams struct {
	Name           *string  `json:"name,omitempty"`
	Qty            *int     `json:"qty,omitempty"`
	CategoryID     *int     `json:"category_id,omitempty"`
	CompanyID      *int     `json:"company_id,omitempty"`
	LocationID     *int     `json:"location_id,omitempty"`
	ManufacturerID *int     `json:"manufacturer_id,omitempty"`
	ModelNumber    *string  `json:"model_number,omitempty"`
	ItemNo         *string  `json:"item_no,omitempty"`
	OrderNumber    *string  `json:"order_number,omitempty"`
	PurchaseDate   *string  `json:"purchase_date,omitempty"`
	PurchaseCost   *float64 `json:"purchase_cost,omitempty"`
	MinAmt         *int     `json:"min_amt,omitempty"`
	Notes          *string  `json:"notes,omitempty"`
}

// ListOptions carries paging and filtering for list endpoints.
type ListOptions struct {
	Limit  int
	Offset int
	Search string
	Sort   string
	Order  string
}
