package entities

// Read models for external catalog entities referenced by id. These records
// are owned by other services; this one only reads them.

// Asset is the serviced equipment (elevator, escalator, HVAC unit).
type Asset struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Location   string `json:"location,omitempty"`
	ContractID string `json:"contract_id,omitempty"`
}

// Product is a catalog part with price and current stock level. Stock is
// read-only here; reservation/decrement belongs to the purchasing subsystem.
type Product struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	Stock int     `json:"stock"`
}

// Technician is a user who executes work orders. CostPerHour is optional;
// orders whose technician has no rate contribute zero labor cost.
type Technician struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	CostPerHour *float64 `json:"cost_per_hour,omitempty"`
}
