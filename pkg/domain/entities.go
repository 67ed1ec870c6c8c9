// Package domain defines the persistent record types, collection keys, and
// seed data used by tqmcore.
package domain

// Shift identifies one of the three 8-hour production periods per calendar date.
type Shift string

// Production shifts in chronological order.
const (
	ShiftA Shift = "A"
	ShiftB Shift = "B"
	ShiftC Shift = "C"
)

// Shifts lists all shifts in display order.
func Shifts() []Shift { return []Shift{ShiftA, ShiftB, ShiftC} }

// Role identifies the capability level of an authenticated session.
type Role string

// Session roles. Demo is admin-equivalent but time-boxed.
const (
	RoleViewer Role = "user"
	RoleAdmin  Role = "admin"
	RoleDemo   Role = "demo"
)

// ReservedStatus tracks the disposition of a quarantined item.
type ReservedStatus string

// Quarantine dispositions.
const (
	ReservedPending  ReservedStatus = "pending"
	ReservedResolved ReservedStatus = "resolved"
	ReservedScrapped ReservedStatus = "scrapped"
)

// DocumentType classifies an archived document file.
type DocumentType string

// Supported document classifications.
const (
	DocumentPDF   DocumentType = "pdf"
	DocumentExcel DocumentType = "excel"
	DocumentWord  DocumentType = "word"
)

// Department groups employees by organizational unit.
type Department string

// Departments recognised by the team catalog.
const (
	DepartmentManagement Department = "management"
	DepartmentQC         Department = "qc"
	DepartmentQA         Department = "qa"
)

// Product is a catalog entry for a manufactured item.
type Product struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Specs        string `json:"specs"`
	Defects      string `json:"defects"`
	Image        string `json:"image"`
	Manufacturer string `json:"manufacturer,omitempty"`
}

// Employee is a team catalog entry.
type Employee struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	EmployeeCode string     `json:"employeeCode,omitempty"`
	Role         string     `json:"role"`
	Department   Department `json:"department"`
	JoinedDate   string     `json:"joinedDate"`
	Email        string     `json:"email"`
	Phone        string     `json:"phone"`
	Image        string     `json:"image,omitempty"`
	StampData    string     `json:"stampData,omitempty"`
}

// DocumentFile is a record of an archived document.
type DocumentFile struct {
	ID   string       `json:"id"`
	Name string       `json:"name"`
	Type DocumentType `json:"type"`
	Size string       `json:"size"`
	Date string       `json:"date"`
	URL  string       `json:"url"`
}

// LabDevice describes a laboratory instrument and its SOP.
type LabDevice struct {
	ID                  string `json:"id"`
	Name                string `json:"name"`
	Image               string `json:"image"`
	SOP                 string `json:"sop"`
	LastCalibrationDate string `json:"lastCalibrationDate,omitempty"`
	NextCalibrationDate string `json:"nextCalibrationDate,omitempty"`
}

// ReservedItem records defective product pulled from the line pending disposition.
type ReservedItem struct {
	ID            string         `json:"id"`
	ProductName   string         `json:"productName"`
	Quantity      float64        `json:"quantity"`
	Defects       string         `json:"defects"`
	ActionTaken   string         `json:"actionTaken"`
	Date          string         `json:"date"`
	Status        ReservedStatus `json:"status"`
	Shift         Shift          `json:"shift"`
	InspectorName string         `json:"inspectorName"`
}

// KPIRecord holds one month of quality and production metrics.
type KPIRecord struct {
	Month                   string  `json:"month"`
	Year                    string  `json:"year"`
	QualityRate             float64 `json:"qualityRate"`
	Defects                 float64 `json:"defects"`
	ReservedBlowPieces      float64 `json:"reservedBlowPieces"`
	ReservedBlowWeight      float64 `json:"reservedBlowWeight"`
	ReservedInjectionPieces float64 `json:"reservedInjectionPieces"`
	ReservedInjectionWeight float64 `json:"reservedInjectionWeight"`
	ScrappedPieces          float64 `json:"scrappedPieces"`
	ScrappedWeight          float64 `json:"scrappedWeight"`
	ScrappedBlow            float64 `json:"scrappedBlow"`
	ScrappedInjection       float64 `json:"scrappedInjection"`
	InternalScrapPpm        float64 `json:"internalScrapPpm"`
	ExternalScrapPpm        float64 `json:"externalScrapPpm"`
	NCRShift1               float64 `json:"ncrShift1"`
	NCRShift2               float64 `json:"ncrShift2"`
	NCRShift3               float64 `json:"ncrShift3"`
	TotalSupplied           float64 `json:"totalSupplied"`
	TotalReturned           float64 `json:"totalReturned"`
	TotalComplaints         float64 `json:"totalComplaints"`
	TotalProduction         float64 `json:"totalProduction"`
	TotalInternalReserved   float64 `json:"totalInternalReserved"`
}

// CompanySettings holds the single facility profile record.
type CompanySettings struct {
	Name               string `json:"name"`
	Slogan             string `json:"slogan"`
	Address            string `json:"address"`
	Logo               string `json:"logo"`
	Email              string `json:"email"`
	Phone              string `json:"phone"`
	Website            string `json:"website"`
	RegistrationNumber string `json:"registrationNumber"`
	Certificates       string `json:"certificates,omitempty"`
}

// DefectCode maps a 1-2 letter code to a defect description. The code is
// immutable once created; label and color may be edited.
type DefectCode struct {
	Code  string `json:"code"`
	Label string `json:"label"`
	Color string `json:"color"`
}

// TopLoadStandard is a named reference strength value. Standards double as the
// autocomplete source for product-name fields on the inspection grids.
type TopLoadStandard struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Value float64 `json:"val"`
	Color string  `json:"color"`
}

// ChecklistEntry is one machine-status observation. Status is free text
// normalized to upper case: OK, STOP, a defect code, or anything else.
type ChecklistEntry struct {
	ID       string `json:"id"`
	Date     string `json:"date"`
	Shift    Shift  `json:"shift"`
	Machine  string `json:"machineId"`
	TimeSlot string `json:"timeSlot"`
	Status   string `json:"status"`
	Notes    string `json:"notes,omitempty"`
}

// TopLoadEntry is one package-strength reading, stored as entered.
type TopLoadEntry struct {
	ID       string `json:"id"`
	Date     string `json:"date"`
	Shift    Shift  `json:"shift"`
	Machine  string `json:"machineId"`
	TimeSlot string `json:"timeSlot"`
	Value    string `json:"value"`
}

// WeightEntry is one product-weight reading, stored as entered.
type WeightEntry struct {
	ID       string `json:"id"`
	Date     string `json:"date"`
	Shift    Shift  `json:"shift"`
	Machine  string `json:"machineId"`
	TimeSlot string `json:"timeSlot"`
	Value    string `json:"value"`
}

// SupervisorNames holds the supervisor assigned to each shift of one date.
// Absent shifts are empty strings.
type SupervisorNames struct {
	A string `json:"A"`
	B string `json:"B"`
	C string `json:"C"`
}

// Get returns the name for the given shift.
func (n SupervisorNames) Get(shift Shift) string {
	switch shift {
	case ShiftA:
		return n.A
	case ShiftB:
		return n.B
	case ShiftC:
		return n.C
	}
	return ""
}

// Set stores the name for the given shift. Unknown shifts are ignored.
func (n *SupervisorNames) Set(shift Shift, name string) {
	switch shift {
	case ShiftA:
		n.A = name
	case ShiftB:
		n.B = name
	case ShiftC:
		n.C = name
	}
}

// ShiftSupervisors maps date -> per-shift supervisor names. Sparse: absent
// dates mean no supervisor recorded.
type ShiftSupervisors map[string]SupervisorNames

// MachineProducts maps date -> shift -> machine -> assigned product name.
// Sparse at every level; missing levels read as empty strings.
type MachineProducts map[string]map[Shift]map[string]string
