package domain

// CollectionKey names one persisted slice of application state. Every value
// stored under a key is the entire current collection, replacing the prior
// value on each write. The literals match the storage keys used by prior
// deployments so existing databases remain readable.
type CollectionKey string

// Persistence keys, one per named collection.
const (
	KeyProducts        CollectionKey = "tqm_products"
	KeyTeam            CollectionKey = "tqm_team"
	KeyDocuments       CollectionKey = "tqm_documents"
	KeyKPIData         CollectionKey = "tqm_kpiData"
	KeyCompany         CollectionKey = "tqm_company"
	KeyReserved        CollectionKey = "tqm_reserved"
	KeyLabEquipment    CollectionKey = "tqm_lab_equipment"
	KeyChecklist       CollectionKey = "tqm_checklist"
	KeyMachines        CollectionKey = "tqm_checklist_machines"
	KeySupervisors     CollectionKey = "tqm_checklist_shift_names"
	KeyTopLoad         CollectionKey = "tqm_top_load"
	KeyStandards       CollectionKey = "tqm_top_load_standards"
	KeyMachineProducts CollectionKey = "tqm_top_load_machine_products"
	KeyWeightEntries   CollectionKey = "tqm_weight_entries"
	KeyDefectCodes     CollectionKey = "tqm_defect_codes"
	KeyDemoStart       CollectionKey = "tqm_demo_start_date"
)

// CollectionKeys lists every key holding collection state. KeyDemoStart is
// deliberately excluded: it is session metadata, not application data, and is
// not part of backups or resets.
func CollectionKeys() []CollectionKey {
	return []CollectionKey{
		KeyProducts,
		KeyTeam,
		KeyDocuments,
		KeyKPIData,
		KeyCompany,
		KeyReserved,
		KeyLabEquipment,
		KeyChecklist,
		KeyMachines,
		KeySupervisors,
		KeyTopLoad,
		KeyStandards,
		KeyMachineProducts,
		KeyWeightEntries,
		KeyDefectCodes,
	}
}
