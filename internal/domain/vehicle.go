package domain

type VehicleCategory string

const (
	VehicleCategoryEconomy VehicleCategory = "ECONOMY"
	VehicleCategoryCompact VehicleCategory = "COMPACT"
	VehicleCategorySUV     VehicleCategory = "SUV"
	VehicleCategoryVan     VehicleCategory = "VAN"
	VehicleCategoryLuxury  VehicleCategory = "LUXURY"
)

type Vehicle struct {
	ID          int32           `json:"id"`
	Slug        string          `json:"slug"`
	Name        string          `json:"name"`
	Category    VehicleCategory `json:"category"`
	Seats       int32           `json:"seats"`
	Transmission string         `json:"transmission"`
	// Whole currency units per rental day. All money in this codebase is
	// integer arithmetic; see utils.Valuate.
	PricePerDay int64   `json:"price_per_day"`
	Available   bool    `json:"available"`
	ImageURL    string  `json:"image_url"`
	CreatedOn   string  `json:"created_on"`
	UpdatedOn   string  `json:"updated_on"`
	DeletedOn   *string `json:"deleted_on,omitempty"`
}
