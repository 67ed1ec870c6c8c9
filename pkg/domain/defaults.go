package domain

// ChecklistTimeSlots is the fixed chronological sequence of checklist and
// weight-check inspection slots: every two hours across the three shifts,
// starting at 8 AM. Labels carry Arabic ص/م (AM/PM) markers as printed on the
// paper forms this system replaced.
var ChecklistTimeSlots = []string{
	"08:00 ص", "10:00 ص", "12:00 م", "02:00 م", "04:00 م", "06:00 م",
	"08:00 م", "10:00 م", "12:00 ص", "02:00 ص", "04:00 ص", "06:00 ص",
}

// TopLoadTimeSlots is the three-per-day top-load sampling sequence, one slot
// per shift.
var TopLoadTimeSlots = []string{"10:00 ص", "06:00 م", "02:00 ص"}

// WeightTimeSlots matches the checklist cadence.
var WeightTimeSlots = ChecklistTimeSlots

// DefaultMachines is the factory's production machine list used to seed a new
// database and restored verbatim by a reset.
func DefaultMachines() []string {
	return []string{
		"P0", "P1", "P2", "P3", "P4", "P5", "P6", "P7", "P8", "P9",
		"P10", "P11", "P13", "FKI 5", "FKI 6", "FKI 7", "FKI 8",
		"PB1", "PB2", "H2", "H4", "H5", "H6", "H7", "H8", "ENGEL",
	}
}

// DefaultTopLoadStandards seeds the reference strength table with the
// formulations run on the line.
func DefaultTopLoadStandards() []TopLoadStandard {
	return []TopLoadStandard{
		{ID: "1", Name: "كمف 2", Value: 51, Color: "bg-emerald-100 border-emerald-200"},
		{ID: "2", Name: "وفير 4", Value: 70, Color: "bg-emerald-100 border-emerald-200"},
		{ID: "3", Name: "كمف 1", Value: 44, Color: "bg-emerald-100 border-emerald-200"},
		{ID: "4", Name: "اليدا 400", Value: 18, Color: "bg-emerald-100 border-emerald-200"},
		{ID: "5", Name: "هافولين 1", Value: 25, Color: "bg-emerald-100 border-emerald-200"},
		{ID: "6", Name: "موبيل 4", Value: 29.16, Color: "bg-yellow-100 border-yellow-200"},
		{ID: "7", Name: "موبيل 5", Value: 29.16, Color: "bg-yellow-100 border-yellow-200"},
		{ID: "8", Name: "موبيل 20", Value: 29.16, Color: "bg-yellow-100 border-yellow-200"},
		{ID: "9", Name: "شل 1", Value: 20, Color: "bg-yellow-100 border-yellow-200"},
		{ID: "10", Name: "شل 4", Value: 40, Color: "bg-yellow-100 border-yellow-200"},
		{ID: "11", Name: "شل 5", Value: 45, Color: "bg-yellow-100 border-yellow-200"},
		{ID: "12", Name: "شل 20", Value: 200, Color: "bg-yellow-100 border-yellow-200"},
		{ID: "13", Name: "شل 22", Value: 250, Color: "bg-yellow-100 border-yellow-200"},
		{ID: "14", Name: "اوكسي 900", Value: 40, Color: "bg-blue-100 border-blue-200"},
		{ID: "15", Name: "جينرال 3.1", Value: 24, Color: "bg-blue-100 border-blue-200"},
		{ID: "16", Name: "برسيل 3", Value: 27, Color: "bg-blue-100 border-blue-200"},
		{ID: "17", Name: "برسيل 2.5", Value: 24, Color: "bg-blue-100 border-blue-200"},
		{ID: "18", Name: "برسيل 1", Value: 16.5, Color: "bg-blue-100 border-blue-200"},
		{ID: "19", Name: "كوزمو 700", Value: 21, Color: "bg-purple-100 border-purple-200"},
		{ID: "20", Name: "كوزمو 400", Value: 21, Color: "bg-purple-100 border-purple-200"},
		{ID: "21", Name: "كوزمو 190", Value: 18.5, Color: "bg-purple-100 border-purple-200"},
		{ID: "22", Name: "كوزمو 100", Value: 17, Color: "bg-purple-100 border-purple-200"},
		{ID: "23", Name: "كامي 1", Value: 28, Color: "bg-orange-100 border-orange-200"},
		{ID: "24", Name: "كمف 3", Value: 45, Color: "bg-orange-100 border-orange-200"},
	}
}

// DefaultDefectCodes seeds the defect-code legend.
func DefaultDefectCodes() []DefectCode {
	return []DefectCode{
		{Code: "A", Label: "اتساخ", Color: "bg-yellow-100 text-yellow-800"},
		{Code: "P", Label: "تطبق", Color: "bg-yellow-100 text-yellow-800"},
		{Code: "B", Label: "تنويرة", Color: "bg-orange-100 text-orange-800"},
		{Code: "Q", Label: "بيضاوي", Color: "bg-orange-100 text-orange-800"},
		{Code: "C", Label: "كسر", Color: "bg-red-100 text-red-800"},
		{Code: "R", Label: "عصب", Color: "bg-red-100 text-red-800"},
		{Code: "D", Label: "قوة تحمل", Color: "bg-purple-100 text-purple-800"},
		{Code: "S", Label: "رايش", Color: "bg-purple-100 text-purple-800"},
		{Code: "E", Label: "تفویت", Color: "bg-blue-100 text-blue-800"},
		{Code: "T", Label: "أوزان", Color: "bg-blue-100 text-blue-800"},
		{Code: "F", Label: "نقص", Color: "bg-indigo-100 text-indigo-800"},
		{Code: "U", Label: "ميل", Color: "bg-indigo-100 text-indigo-800"},
		{Code: "G", Label: "تصفط", Color: "bg-pink-100 text-pink-800"},
		{Code: "V", Label: "خط بيان", Color: "bg-pink-100 text-pink-800"},
		{Code: "H", Label: "مقاسات", Color: "bg-cyan-100 text-cyan-800"},
		{Code: "W", Label: "تعريقه", Color: "bg-cyan-100 text-cyan-800"},
		{Code: "I", Label: "ضعف", Color: "bg-teal-100 text-teal-800"},
		{Code: "X", Label: "خط لون", Color: "bg-teal-100 text-teal-800"},
		{Code: "J", Label: "خط قاطع", Color: "bg-lime-100 text-lime-800"},
		{Code: "Y", Label: "فتح بالقالب", Color: "bg-lime-100 text-lime-800"},
		{Code: "K", Label: "حرارات", Color: "bg-rose-100 text-rose-800"},
		{Code: "Z", Label: "اهتزاز", Color: "bg-rose-100 text-rose-800"},
		{Code: "L", Label: "جهاز اختبار", Color: "bg-emerald-100 text-emerald-800"},
		{Code: "AA", Label: "تقل بالغطاء", Color: "bg-emerald-100 text-emerald-800"},
		{Code: "M", Label: "ريحه", Color: "bg-gray-100 text-gray-800"},
		{Code: "AB", Label: "قلبه بالغطاء", Color: "bg-gray-100 text-gray-800"},
		{Code: "N", Label: "نمش", Color: "bg-amber-100 text-amber-800"},
		{Code: "AC", Label: "لحميه", Color: "bg-amber-100 text-amber-800"},
		{Code: "O", Label: "ثقوب", Color: "bg-red-50 text-red-900"},
	}
}

// InitialCompanySettings is the empty facility profile.
func InitialCompanySettings() CompanySettings { return CompanySettings{} }
