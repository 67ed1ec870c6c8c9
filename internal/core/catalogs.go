package core

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"tqmcore/pkg/domain"
)

// ErrNotFound reports a catalog operation addressed at a record that does not
// exist.
var ErrNotFound = errors.New("record not found")

// ErrDuplicate reports an insert that collides with an existing record's
// natural key.
var ErrDuplicate = errors.New("record already exists")

// Machines returns the checklist machine roster in display order.
func (s *StateContainer) Machines() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneSlice(s.machines)
}

// AddMachine appends a machine to the roster. Blank names and duplicates are
// ignored; the returned bool reports whether the roster changed.
func (s *StateContainer) AddMachine(ctx context.Context, name string) (bool, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return false, nil
	}
	s.mu.Lock()
	for _, m := range s.machines {
		if m == name {
			s.mu.Unlock()
			return false, nil
		}
	}
	s.machines = append(s.machines, name)
	s.mu.Unlock()
	return true, s.persist(ctx, domain.KeyMachines)
}

// DeleteMachine removes a machine from the roster. Observations already
// recorded against it are kept untouched.
func (s *StateContainer) DeleteMachine(ctx context.Context, name string) error {
	s.mu.Lock()
	kept := s.machines[:0]
	for _, m := range s.machines {
		if m != name {
			kept = append(kept, m)
		}
	}
	s.machines = kept
	s.mu.Unlock()
	return s.persist(ctx, domain.KeyMachines)
}

// DefectCodes returns the defect code table.
func (s *StateContainer) DefectCodes() []DefectCode {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneSlice(s.defectCodes)
}

// AddDefectCode registers a new code. Codes are uppercased and must be
// unique; the code itself is immutable after creation.
func (s *StateContainer) AddDefectCode(ctx context.Context, code, label, color string) error {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return fmt.Errorf("defect code: empty code")
	}
	s.mu.Lock()
	for _, dc := range s.defectCodes {
		if dc.Code == code {
			s.mu.Unlock()
			return fmt.Errorf("defect code %s: %w", code, ErrDuplicate)
		}
	}
	s.defectCodes = append(s.defectCodes, DefectCode{Code: code, Label: label, Color: color})
	s.mu.Unlock()
	return s.persist(ctx, domain.KeyDefectCodes)
}

// UpdateDefectCode edits the label and color of an existing code.
func (s *StateContainer) UpdateDefectCode(ctx context.Context, code, label, color string) error {
	code = strings.ToUpper(strings.TrimSpace(code))
	s.mu.Lock()
	found := false
	for i, dc := range s.defectCodes {
		if dc.Code == code {
			s.defectCodes[i].Label = label
			s.defectCodes[i].Color = color
			found = true
			break
		}
	}
	s.mu.Unlock()
	if !found {
		return fmt.Errorf("defect code %s: %w", code, ErrNotFound)
	}
	return s.persist(ctx, domain.KeyDefectCodes)
}

// DeleteDefectCode removes a code. Checklist cells already recorded with it
// keep their value.
func (s *StateContainer) DeleteDefectCode(ctx context.Context, code string) error {
	code = strings.ToUpper(strings.TrimSpace(code))
	s.mu.Lock()
	kept := s.defectCodes[:0]
	for _, dc := range s.defectCodes {
		if dc.Code != code {
			kept = append(kept, dc)
		}
	}
	s.defectCodes = kept
	s.mu.Unlock()
	return s.persist(ctx, domain.KeyDefectCodes)
}

// Standards returns the top-load standards table.
func (s *StateContainer) Standards() []TopLoadStandard {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneSlice(s.standards)
}

// StandardNames returns standard names in table order, the autocomplete
// source for product-name fields.
func (s *StateContainer) StandardNames() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	names := make([]string, len(s.standards))
	for i, st := range s.standards {
		names[i] = st.Name
	}
	return names
}

// AddStandard registers a named reference value and returns it with its
// assigned ID.
func (s *StateContainer) AddStandard(ctx context.Context, name string, value float64, color string) (TopLoadStandard, error) {
	st := TopLoadStandard{ID: s.newID(), Name: name, Value: value, Color: color}
	s.mu.Lock()
	s.standards = append(s.standards, st)
	s.mu.Unlock()
	return st, s.persist(ctx, domain.KeyStandards)
}

// UpdateStandard edits an existing standard in place.
func (s *StateContainer) UpdateStandard(ctx context.Context, st TopLoadStandard) error {
	s.mu.Lock()
	found := false
	for i := range s.standards {
		if s.standards[i].ID == st.ID {
			s.standards[i] = st
			found = true
			break
		}
	}
	s.mu.Unlock()
	if !found {
		return fmt.Errorf("standard %s: %w", st.ID, ErrNotFound)
	}
	return s.persist(ctx, domain.KeyStandards)
}

// DeleteStandard removes a standard by ID.
func (s *StateContainer) DeleteStandard(ctx context.Context, id string) error {
	s.mu.Lock()
	kept := s.standards[:0]
	for _, st := range s.standards {
		if st.ID != id {
			kept = append(kept, st)
		}
	}
	s.standards = kept
	s.mu.Unlock()
	return s.persist(ctx, domain.KeyStandards)
}

// Products returns the product catalog.
func (s *StateContainer) Products() []Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneSlice(s.products)
}

// AddProduct appends a catalog entry, assigning an ID when none is set.
func (s *StateContainer) AddProduct(ctx context.Context, p Product) (Product, error) {
	if p.ID == "" {
		p.ID = s.newID()
	}
	s.mu.Lock()
	s.products = append(s.products, p)
	s.mu.Unlock()
	return p, s.persist(ctx, domain.KeyProducts)
}

// UpdateProduct replaces the catalog entry with the same ID.
func (s *StateContainer) UpdateProduct(ctx context.Context, p Product) error {
	s.mu.Lock()
	found := replaceByID(s.products, p, func(v Product) string { return v.ID })
	s.mu.Unlock()
	if !found {
		return fmt.Errorf("product %s: %w", p.ID, ErrNotFound)
	}
	return s.persist(ctx, domain.KeyProducts)
}

// DeleteProduct removes a catalog entry by ID.
func (s *StateContainer) DeleteProduct(ctx context.Context, id string) error {
	s.mu.Lock()
	s.products = deleteByID(s.products, id, func(v Product) string { return v.ID })
	s.mu.Unlock()
	return s.persist(ctx, domain.KeyProducts)
}

// Team returns the employee catalog.
func (s *StateContainer) Team() []Employee {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneSlice(s.team)
}

// AddEmployee appends a team entry, assigning an ID when none is set.
func (s *StateContainer) AddEmployee(ctx context.Context, e Employee) (Employee, error) {
	if e.ID == "" {
		e.ID = s.newID()
	}
	s.mu.Lock()
	s.team = append(s.team, e)
	s.mu.Unlock()
	return e, s.persist(ctx, domain.KeyTeam)
}

// UpdateEmployee replaces the team entry with the same ID.
func (s *StateContainer) UpdateEmployee(ctx context.Context, e Employee) error {
	s.mu.Lock()
	found := replaceByID(s.team, e, func(v Employee) string { return v.ID })
	s.mu.Unlock()
	if !found {
		return fmt.Errorf("employee %s: %w", e.ID, ErrNotFound)
	}
	return s.persist(ctx, domain.KeyTeam)
}

// DeleteEmployee removes a team entry by ID.
func (s *StateContainer) DeleteEmployee(ctx context.Context, id string) error {
	s.mu.Lock()
	s.team = deleteByID(s.team, id, func(v Employee) string { return v.ID })
	s.mu.Unlock()
	return s.persist(ctx, domain.KeyTeam)
}

// Documents returns the archived document records.
func (s *StateContainer) Documents() []DocumentFile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneSlice(s.documents)
}

// AddDocument records an archived document, assigning an ID when none is set.
func (s *StateContainer) AddDocument(ctx context.Context, d DocumentFile) (DocumentFile, error) {
	if d.ID == "" {
		d.ID = s.newID()
	}
	s.mu.Lock()
	s.documents = append(s.documents, d)
	s.mu.Unlock()
	return d, s.persist(ctx, domain.KeyDocuments)
}

// DeleteDocument removes a document record by ID.
func (s *StateContainer) DeleteDocument(ctx context.Context, id string) error {
	s.mu.Lock()
	s.documents = deleteByID(s.documents, id, func(v DocumentFile) string { return v.ID })
	s.mu.Unlock()
	return s.persist(ctx, domain.KeyDocuments)
}

// LabEquipment returns the laboratory device catalog.
func (s *StateContainer) LabEquipment() []LabDevice {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneSlice(s.labEquipment)
}

// AddLabDevice appends a device, assigning an ID when none is set.
func (s *StateContainer) AddLabDevice(ctx context.Context, d LabDevice) (LabDevice, error) {
	if d.ID == "" {
		d.ID = s.newID()
	}
	s.mu.Lock()
	s.labEquipment = append(s.labEquipment, d)
	s.mu.Unlock()
	return d, s.persist(ctx, domain.KeyLabEquipment)
}

// UpdateLabDevice replaces the device with the same ID.
func (s *StateContainer) UpdateLabDevice(ctx context.Context, d LabDevice) error {
	s.mu.Lock()
	found := replaceByID(s.labEquipment, d, func(v LabDevice) string { return v.ID })
	s.mu.Unlock()
	if !found {
		return fmt.Errorf("lab device %s: %w", d.ID, ErrNotFound)
	}
	return s.persist(ctx, domain.KeyLabEquipment)
}

// DeleteLabDevice removes a device by ID.
func (s *StateContainer) DeleteLabDevice(ctx context.Context, id string) error {
	s.mu.Lock()
	s.labEquipment = deleteByID(s.labEquipment, id, func(v LabDevice) string { return v.ID })
	s.mu.Unlock()
	return s.persist(ctx, domain.KeyLabEquipment)
}

// ReservedItems returns the quarantine log.
func (s *StateContainer) ReservedItems() []ReservedItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneSlice(s.reserved)
}

// AddReservedItem logs a quarantined item, assigning an ID when none is set.
func (s *StateContainer) AddReservedItem(ctx context.Context, r ReservedItem) (ReservedItem, error) {
	if r.ID == "" {
		r.ID = s.newID()
	}
	if r.Status == "" {
		r.Status = domain.ReservedPending
	}
	s.mu.Lock()
	s.reserved = append(s.reserved, r)
	s.mu.Unlock()
	return r, s.persist(ctx, domain.KeyReserved)
}

// UpdateReservedItem replaces the quarantine record with the same ID.
func (s *StateContainer) UpdateReservedItem(ctx context.Context, r ReservedItem) error {
	s.mu.Lock()
	found := replaceByID(s.reserved, r, func(v ReservedItem) string { return v.ID })
	s.mu.Unlock()
	if !found {
		return fmt.Errorf("reserved item %s: %w", r.ID, ErrNotFound)
	}
	return s.persist(ctx, domain.KeyReserved)
}

// DeleteReservedItem removes a quarantine record by ID.
func (s *StateContainer) DeleteReservedItem(ctx context.Context, id string) error {
	s.mu.Lock()
	s.reserved = deleteByID(s.reserved, id, func(v ReservedItem) string { return v.ID })
	s.mu.Unlock()
	return s.persist(ctx, domain.KeyReserved)
}

// KPIRecords returns the monthly metrics log.
func (s *StateContainer) KPIRecords() []KPIRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneSlice(s.kpiData)
}

// UpsertKPIRecord replaces the record with the same month and year, or
// appends when none exists.
func (s *StateContainer) UpsertKPIRecord(ctx context.Context, rec KPIRecord) error {
	s.mu.Lock()
	found := false
	for i, existing := range s.kpiData {
		if existing.Month == rec.Month && existing.Year == rec.Year {
			s.kpiData[i] = rec
			found = true
			break
		}
	}
	if !found {
		s.kpiData = append(s.kpiData, rec)
	}
	s.mu.Unlock()
	return s.persist(ctx, domain.KeyKPIData)
}

// DeleteKPIRecord removes the record for one month.
func (s *StateContainer) DeleteKPIRecord(ctx context.Context, month, year string) error {
	s.mu.Lock()
	kept := s.kpiData[:0]
	for _, rec := range s.kpiData {
		if rec.Month != month || rec.Year != year {
			kept = append(kept, rec)
		}
	}
	s.kpiData = kept
	s.mu.Unlock()
	return s.persist(ctx, domain.KeyKPIData)
}

// CompanySettings returns the facility profile.
func (s *StateContainer) CompanySettings() CompanySettings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.company
}

// UpdateCompanySettings replaces the facility profile wholesale.
func (s *StateContainer) UpdateCompanySettings(ctx context.Context, cs CompanySettings) error {
	s.mu.Lock()
	s.company = cs
	s.mu.Unlock()
	return s.persist(ctx, domain.KeyCompany)
}

func replaceByID[T any](items []T, replacement T, id func(T) string) bool {
	target := id(replacement)
	for i := range items {
		if id(items[i]) == target {
			items[i] = replacement
			return true
		}
	}
	return false
}

func deleteByID[T any](items []T, target string, id func(T) string) []T {
	kept := items[:0]
	for _, item := range items {
		if id(item) != target {
			kept = append(kept, item)
		}
	}
	return kept
}
