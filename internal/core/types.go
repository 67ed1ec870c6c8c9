package core

import "tqmcore/pkg/domain"

type (
	Shift           = domain.Shift
	Role            = domain.Role
	CollectionKey   = domain.CollectionKey
	Product         = domain.Product
	Employee        = domain.Employee
	DocumentFile    = domain.DocumentFile
	LabDevice       = domain.LabDevice
	ReservedItem    = domain.ReservedItem
	KPIRecord       = domain.KPIRecord
	CompanySettings = domain.CompanySettings
	DefectCode      = domain.DefectCode
	TopLoadStandard = domain.TopLoadStandard
	ChecklistEntry  = domain.ChecklistEntry
	TopLoadEntry    = domain.TopLoadEntry
	WeightEntry     = domain.WeightEntry
	Snapshot        = domain.Snapshot
)

const (
	ShiftA = domain.ShiftA
	ShiftB = domain.ShiftB
	ShiftC = domain.ShiftC
)

const (
	RoleViewer = domain.RoleViewer
	RoleAdmin  = domain.RoleAdmin
	RoleDemo   = domain.RoleDemo
)
