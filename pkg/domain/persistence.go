package domain

import "context"

// Store is the minimal contract a persistence backend must satisfy: an
// asynchronous key-value namespace where each key holds one JSON-encoded
// collection snapshot. Writes replace the prior value wholesale; there is no
// cross-key atomicity.
type Store interface {
	// Load returns the raw payload stored under key. The second return is
	// false when the key has never been written.
	Load(ctx context.Context, key CollectionKey) ([]byte, bool, error)
	// Save replaces the payload stored under key.
	Save(ctx context.Context, key CollectionKey, payload []byte) error
	// Close releases backend resources. Safe to call once.
	Close() error
}

// Snapshot is a point-in-time copy of every collection, used for full
// backups, import, and hydrating persistence backends. JSON field names
// mirror the backup documents produced by prior deployments.
type Snapshot struct {
	Products        []Product         `json:"products"`
	Team            []Employee        `json:"team"`
	Documents       []DocumentFile    `json:"documents"`
	KPIData         []KPIRecord       `json:"kpiData"`
	CompanySettings CompanySettings   `json:"companySettings"`
	ReservedItems   []ReservedItem    `json:"reservedItems"`
	LabEquipment    []LabDevice       `json:"labEquipment"`
	Checklist       []ChecklistEntry  `json:"checklistEntries"`
	Machines        []string          `json:"checklistMachines"`
	Supervisors     ShiftSupervisors  `json:"checklistShiftNames"`
	TopLoad         []TopLoadEntry    `json:"topLoadEntries"`
	Standards       []TopLoadStandard `json:"topLoadStandards"`
	MachineProducts MachineProducts   `json:"topLoadMachineProducts"`
	WeightEntries   []WeightEntry     `json:"weightEntries"`
	DefectCodes     []DefectCode      `json:"defectCodes"`
}
