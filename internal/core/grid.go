package core

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"tqmcore/pkg/domain"
)

// cellID is the canonical identity of one observation cell. Entries keep it
// as their stored ID so re-imports land on the same cell.
func cellID(date string, shift Shift, machine, slot string) string {
	return fmt.Sprintf("%s-%s-%s-%s", date, shift, machine, slot)
}

func indexChecklist(entries []ChecklistEntry) map[string]ChecklistEntry {
	out := make(map[string]ChecklistEntry, len(entries))
	for _, e := range entries {
		out[cellID(e.Date, e.Shift, e.Machine, e.TimeSlot)] = e
	}
	return out
}

func indexTopLoad(entries []TopLoadEntry) map[string]TopLoadEntry {
	out := make(map[string]TopLoadEntry, len(entries))
	for _, e := range entries {
		out[cellID(e.Date, e.Shift, e.Machine, e.TimeSlot)] = e
	}
	return out
}

func indexWeights(entries []WeightEntry) map[string]WeightEntry {
	out := make(map[string]WeightEntry, len(entries))
	for _, e := range entries {
		out[cellID(e.Date, e.Shift, e.Machine, e.TimeSlot)] = e
	}
	return out
}

func slotRank(slots []string, slot string) int {
	for i, s := range slots {
		if s == slot {
			return i
		}
	}
	return len(slots)
}

type cellFields struct {
	date    string
	shift   Shift
	machine string
	slot    string
}

func sortedCells[T any](m map[string]T, slots []string, fields func(T) cellFields) []T {
	out := make([]T, 0, len(m))
	for _, e := range m {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := fields(out[i]), fields(out[j])
		if a.date != b.date {
			return a.date < b.date
		}
		if a.shift != b.shift {
			return a.shift < b.shift
		}
		if a.machine != b.machine {
			return a.machine < b.machine
		}
		ra, rb := slotRank(slots, a.slot), slotRank(slots, b.slot)
		if ra != rb {
			return ra < rb
		}
		return a.slot < b.slot
	})
	return out
}

func sortedChecklist(m map[string]ChecklistEntry) []ChecklistEntry {
	return sortedCells(m, domain.ChecklistTimeSlots, func(e ChecklistEntry) cellFields {
		return cellFields{e.Date, e.Shift, e.Machine, e.TimeSlot}
	})
}

func sortedTopLoad(m map[string]TopLoadEntry) []TopLoadEntry {
	return sortedCells(m, domain.TopLoadTimeSlots, func(e TopLoadEntry) cellFields {
		return cellFields{e.Date, e.Shift, e.Machine, e.TimeSlot}
	})
}

func sortedWeights(m map[string]WeightEntry) []WeightEntry {
	return sortedCells(m, domain.WeightTimeSlots, func(e WeightEntry) cellFields {
		return cellFields{e.Date, e.Shift, e.Machine, e.TimeSlot}
	})
}

// ChecklistStatus returns the recorded status for one checklist cell, empty
// string when the cell is blank.
func (s *StateContainer) ChecklistStatus(date string, shift Shift, machine, slot string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.checklist[cellID(date, shift, machine, slot)].Status
}

// SetChecklistStatus records a checklist cell. Statuses are uppercased so
// defect codes compare canonically; a blank status clears the cell along
// with any note attached to it.
func (s *StateContainer) SetChecklistStatus(ctx context.Context, date string, shift Shift, machine, slot, status string) error {
	status = strings.ToUpper(status)
	id := cellID(date, shift, machine, slot)
	s.mu.Lock()
	if strings.TrimSpace(status) == "" {
		delete(s.checklist, id)
	} else {
		entry := s.checklist[id]
		entry.ID, entry.Date, entry.Shift, entry.Machine, entry.TimeSlot = id, date, shift, machine, slot
		entry.Status = status
		s.checklist[id] = entry
	}
	s.mu.Unlock()
	return s.persist(ctx, domain.KeyChecklist)
}

// SetChecklistNote attaches free-text notes to an already recorded cell.
// Notes on a blank cell are dropped.
func (s *StateContainer) SetChecklistNote(ctx context.Context, date string, shift Shift, machine, slot, notes string) error {
	id := cellID(date, shift, machine, slot)
	s.mu.Lock()
	entry, ok := s.checklist[id]
	if ok {
		entry.Notes = notes
		s.checklist[id] = entry
	}
	s.mu.Unlock()
	if !ok {
		return nil
	}
	return s.persist(ctx, domain.KeyChecklist)
}

// TopLoadValue returns the recorded value for one top-load cell.
func (s *StateContainer) TopLoadValue(date string, shift Shift, machine, slot string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.topLoad[cellID(date, shift, machine, slot)].Value
}

// SetTopLoadValue records a top-load cell; a blank value clears the cell.
// Values stay free text, including out-of-range readings.
func (s *StateContainer) SetTopLoadValue(ctx context.Context, date string, shift Shift, machine, slot, value string) error {
	id := cellID(date, shift, machine, slot)
	s.mu.Lock()
	if strings.TrimSpace(value) == "" {
		delete(s.topLoad, id)
	} else {
		s.topLoad[id] = TopLoadEntry{
			ID: id, Date: date, Shift: shift, Machine: machine, TimeSlot: slot, Value: value,
		}
	}
	s.mu.Unlock()
	return s.persist(ctx, domain.KeyTopLoad)
}

// WeightValue returns the recorded value for one weight cell.
func (s *StateContainer) WeightValue(date string, shift Shift, machine, slot string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.weights[cellID(date, shift, machine, slot)].Value
}

// SetWeightValue records a weight cell; a blank value clears the cell.
func (s *StateContainer) SetWeightValue(ctx context.Context, date string, shift Shift, machine, slot, value string) error {
	id := cellID(date, shift, machine, slot)
	s.mu.Lock()
	if strings.TrimSpace(value) == "" {
		delete(s.weights, id)
	} else {
		s.weights[id] = WeightEntry{
			ID: id, Date: date, Shift: shift, Machine: machine, TimeSlot: slot, Value: value,
		}
	}
	s.mu.Unlock()
	return s.persist(ctx, domain.KeyWeightEntries)
}

// ChecklistEntries returns every checklist observation in deterministic order.
func (s *StateContainer) ChecklistEntries() []ChecklistEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return sortedChecklist(s.checklist)
}

// TopLoadEntries returns every top-load observation in deterministic order.
func (s *StateContainer) TopLoadEntries() []TopLoadEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return sortedTopLoad(s.topLoad)
}

// WeightEntries returns every weight observation in deterministic order.
func (s *StateContainer) WeightEntries() []WeightEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return sortedWeights(s.weights)
}

// ProductAssignment returns the product name recorded for a machine on a
// given date and shift, empty when none is assigned.
func (s *StateContainer) ProductAssignment(date string, shift Shift, machine string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.machineProducts[date][shift][machine]
}

// SetProductAssignment records which product ran on a machine during a shift.
// An empty product clears the assignment.
func (s *StateContainer) SetProductAssignment(ctx context.Context, date string, shift Shift, machine, product string) error {
	s.mu.Lock()
	if product == "" {
		if byShift, ok := s.machineProducts[date]; ok {
			delete(byShift[shift], machine)
			if len(byShift[shift]) == 0 {
				delete(byShift, shift)
			}
			if len(byShift) == 0 {
				delete(s.machineProducts, date)
			}
		}
	} else {
		if s.machineProducts == nil {
			s.machineProducts = domain.MachineProducts{}
		}
		if s.machineProducts[date] == nil {
			s.machineProducts[date] = map[Shift]map[string]string{}
		}
		if s.machineProducts[date][shift] == nil {
			s.machineProducts[date][shift] = map[string]string{}
		}
		s.machineProducts[date][shift][machine] = product
	}
	s.mu.Unlock()
	return s.persist(ctx, domain.KeyMachineProducts)
}

// Supervisor returns the supervisor name recorded for a date and shift.
func (s *StateContainer) Supervisor(date string, shift Shift) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.supervisors[date].Get(shift)
}

// SetSupervisor records the supervisor on duty for a date and shift.
func (s *StateContainer) SetSupervisor(ctx context.Context, date string, shift Shift, name string) error {
	s.mu.Lock()
	if s.supervisors == nil {
		s.supervisors = domain.ShiftSupervisors{}
	}
	names := s.supervisors[date]
	names.Set(shift, name)
	s.supervisors[date] = names
	s.mu.Unlock()
	return s.persist(ctx, domain.KeySupervisors)
}
