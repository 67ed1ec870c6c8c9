package core

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"tqmcore/pkg/domain"
)

// ErrInvalidBackup reports an import document missing both anchor
// collections, a sign the file is not a backup produced by this system.
var ErrInvalidBackup = errors.New("not a recognizable backup document")

// backupFields maps the JSON field names of a backup document to the
// collection each one replaces.
var backupFields = map[string]CollectionKey{
	"products":               domain.KeyProducts,
	"team":                   domain.KeyTeam,
	"documents":              domain.KeyDocuments,
	"kpiData":                domain.KeyKPIData,
	"companySettings":        domain.KeyCompany,
	"reservedItems":          domain.KeyReserved,
	"labEquipment":           domain.KeyLabEquipment,
	"checklistEntries":       domain.KeyChecklist,
	"checklistMachines":      domain.KeyMachines,
	"checklistShiftNames":    domain.KeySupervisors,
	"topLoadEntries":         domain.KeyTopLoad,
	"topLoadStandards":       domain.KeyStandards,
	"topLoadMachineProducts": domain.KeyMachineProducts,
	"weightEntries":          domain.KeyWeightEntries,
	"defectCodes":            domain.KeyDefectCodes,
}

// Snapshot returns a point-in-time copy of every collection with
// observations in deterministic order.
func (s *StateContainer) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	supervisors := s.supervisors
	if supervisors == nil {
		supervisors = domain.ShiftSupervisors{}
	}
	machineProducts := s.machineProducts
	if machineProducts == nil {
		machineProducts = domain.MachineProducts{}
	}
	return Snapshot{
		Products:        emptyAsList(cloneSlice(s.products)),
		Team:            emptyAsList(cloneSlice(s.team)),
		Documents:       emptyAsList(cloneSlice(s.documents)),
		KPIData:         emptyAsList(cloneSlice(s.kpiData)),
		CompanySettings: s.company,
		ReservedItems:   emptyAsList(cloneSlice(s.reserved)),
		LabEquipment:    emptyAsList(cloneSlice(s.labEquipment)),
		Checklist:       sortedChecklist(s.checklist),
		Machines:        emptyAsList(cloneSlice(s.machines)),
		Supervisors:     supervisors,
		TopLoad:         sortedTopLoad(s.topLoad),
		Standards:       emptyAsList(cloneSlice(s.standards)),
		MachineProducts: machineProducts,
		WeightEntries:   sortedWeights(s.weights),
		DefectCodes:     emptyAsList(cloneSlice(s.defectCodes)),
	}
}

// ExportJSON renders the full backup document.
func (s *StateContainer) ExportJSON() ([]byte, error) {
	payload, err := json.MarshalIndent(s.Snapshot(), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("export: %w", err)
	}
	return payload, nil
}

// ExportFilename names a backup file for the given day.
func ExportFilename(now time.Time) string {
	return fmt.Sprintf("tqm_full_backup_%s.json", now.Format("2006-01-02"))
}

// ImportJSON replaces collections from a backup document. The document must
// carry at least one of the anchor collections (products or team); other
// collections it omits keep their current values. Every touched collection
// is written back to the store.
func (s *StateContainer) ImportJSON(ctx context.Context, data []byte) error {
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("import: %w", err)
	}
	if !fieldPresent(doc, "products") && !fieldPresent(doc, "team") {
		return ErrInvalidBackup
	}

	// Decode every recognized field into a staging container first so a
	// malformed field leaves the live state untouched.
	var staged StateContainer
	touched := make([]CollectionKey, 0, len(backupFields))
	for field, key := range backupFields {
		raw, ok := doc[field]
		if !ok || string(raw) == "null" {
			continue
		}
		if err := staged.applyPayloadLocked(key, raw); err != nil {
			return fmt.Errorf("import %s: %w", field, err)
		}
		touched = append(touched, key)
	}

	s.mu.Lock()
	for _, key := range touched {
		s.adoptLocked(&staged, key)
	}
	s.mu.Unlock()

	for _, key := range touched {
		if err := s.persist(ctx, key); err != nil {
			return err
		}
	}
	s.logger.Info("backup imported", zap.Int("collections", len(touched)))
	return nil
}

// fieldPresent reports whether a backup field carries a value; an explicit
// JSON null counts as absent.
func fieldPresent(doc map[string]json.RawMessage, field string) bool {
	raw, ok := doc[field]
	return ok && string(raw) != "null"
}

// adoptLocked moves one decoded collection from a staging container into s.
func (s *StateContainer) adoptLocked(from *StateContainer, key CollectionKey) {
	switch key {
	case domain.KeyProducts:
		s.products = from.products
	case domain.KeyTeam:
		s.team = from.team
	case domain.KeyDocuments:
		s.documents = from.documents
	case domain.KeyKPIData:
		s.kpiData = from.kpiData
	case domain.KeyCompany:
		s.company = from.company
	case domain.KeyReserved:
		s.reserved = from.reserved
	case domain.KeyLabEquipment:
		s.labEquipment = from.labEquipment
	case domain.KeyMachines:
		s.machines = from.machines
	case domain.KeyStandards:
		s.standards = from.standards
	case domain.KeyDefectCodes:
		s.defectCodes = from.defectCodes
	case domain.KeySupervisors:
		s.supervisors = from.supervisors
	case domain.KeyMachineProducts:
		s.machineProducts = from.machineProducts
	case domain.KeyChecklist:
		s.checklist = from.checklist
	case domain.KeyTopLoad:
		s.topLoad = from.topLoad
	case domain.KeyWeightEntries:
		s.weights = from.weights
	}
}
