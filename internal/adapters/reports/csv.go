// Package reports renders the dashboard's downloadable artifacts: per-shift
// grid reports, catalog exports, and the full backup document. Output matches
// the files produced by prior deployments byte for byte, including the UTF-8
// BOM that keeps spreadsheet tools rendering Arabic headers correctly.
package reports

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"tqmcore/internal/core"
	"tqmcore/pkg/domain"
)

// bom prefixes every CSV so Excel detects UTF-8.
const bom = "\uFEFF"

// blankCell fills grid positions with no recorded value.
const blankCell = "-"

// StateReader is the read surface reports need from the state container.
type StateReader interface {
	Machines() []string
	Supervisor(date string, shift core.Shift) string
	ProductAssignment(date string, shift core.Shift, machine string) string
	ChecklistStatus(date string, shift core.Shift, machine, slot string) string
	TopLoadValue(date string, shift core.Shift, machine, slot string) string
	WeightValue(date string, shift core.Shift, machine, slot string) string
	Products() []core.Product
	KPIRecords() []core.KPIRecord
	ExportJSON() ([]byte, error)
}

var _ StateReader = (*core.StateContainer)(nil)

func shiftLabel(shift core.Shift) string {
	switch shift {
	case core.ShiftA:
		return "الوردية الأولى"
	case core.ShiftB:
		return "الوردية الثانية"
	default:
		return "الوردية الثالثة"
	}
}

func supervisorOrUnset(state StateReader, date string, shift core.Shift) string {
	if name := state.Supervisor(date, shift); name != "" {
		return name
	}
	return "غير محدد"
}

func gridRows(state StateReader, date string, shift core.Shift, slots []string,
	cell func(machine, slot string) string) []string {
	rows := make([]string, 0, len(state.Machines()))
	for _, machine := range state.Machines() {
		fields := []string{machine, state.ProductAssignment(date, shift, machine)}
		for _, slot := range slots {
			value := cell(machine, slot)
			if value == "" {
				value = blankCell
			}
			fields = append(fields, value)
		}
		rows = append(rows, strings.Join(fields, ","))
	}
	return rows
}

func gridHeader(slots []string) string {
	return strings.Join(append([]string{"الماكينة", "اسم المنتج"}, slots...), ",")
}

// ChecklistCSV renders the daily machine checklist for one date and shift.
func ChecklistCSV(state StateReader, date string, shift core.Shift) ([]byte, string) {
	rows := gridRows(state, date, shift, domain.ChecklistTimeSlots, func(machine, slot string) string {
		return state.ChecklistStatus(date, shift, machine, slot)
	})
	lines := append([]string{
		fmt.Sprintf("تقرير فحص الوردية: %s,المسؤول: %s,التاريخ: %s",
			shiftLabel(shift), supervisorOrUnset(state, date, shift), date),
		"",
		gridHeader(domain.ChecklistTimeSlots),
	}, rows...)
	filename := fmt.Sprintf("checklist_%s_shift_%s.csv", date, shift)
	return []byte(bom + strings.Join(lines, "\n")), filename
}

// TopLoadCSV renders the package-strength report for one date and shift.
func TopLoadCSV(state StateReader, date string, shift core.Shift) ([]byte, string) {
	rows := gridRows(state, date, shift, domain.TopLoadTimeSlots, func(machine, slot string) string {
		return state.TopLoadValue(date, shift, machine, slot)
	})
	lines := append([]string{
		fmt.Sprintf("تقرير فحص التوب لود (Top Load Check): %s,المسؤول: %s,التاريخ: %s",
			shiftLabel(shift), supervisorOrUnset(state, date, shift), date),
		"",
		gridHeader(domain.TopLoadTimeSlots),
	}, rows...)
	filename := fmt.Sprintf("topload_%s_shift_%s.csv", date, shift)
	return []byte(bom + strings.Join(lines, "\n")), filename
}

// WeightCSV renders the product-weight report for one date and shift.
func WeightCSV(state StateReader, date string, shift core.Shift) ([]byte, string) {
	rows := gridRows(state, date, shift, domain.WeightTimeSlots, func(machine, slot string) string {
		return state.WeightValue(date, shift, machine, slot)
	})
	lines := append([]string{
		fmt.Sprintf("تقرير فحص الأوزان (Weight Check),التاريخ: %s,الوردية: %s", date, shift),
		"",
		gridHeader(domain.WeightTimeSlots),
	}, rows...)
	filename := fmt.Sprintf("weight_check_%s_shift_%s.csv", date, shift)
	return []byte(bom + strings.Join(lines, "\n")), filename
}

func quote(field string) string {
	return `"` + strings.ReplaceAll(field, `"`, `""`) + `"`
}

// ProductsCSV renders the product catalog export.
func ProductsCSV(state StateReader, now time.Time) ([]byte, string) {
	lines := []string{"ID,اسم المنتج,الشركة المصنعة,المواصفات,العيوب"}
	for _, p := range state.Products() {
		lines = append(lines, strings.Join([]string{
			p.ID, quote(p.Name), quote(p.Manufacturer), quote(p.Specs), quote(p.Defects),
		}, ","))
	}
	filename := fmt.Sprintf("tqm_products_%s.csv", now.Format("2006-01-02"))
	return []byte(bom + strings.Join(lines, "\n")), filename
}

var kpiHeaders = []string{
	"الشهر", "السنة", "معدل الجودة (%)", "عدد العيوب",
	"إجمالي الإنتاج", "المحجوز الداخلي",
	"عدد نفخ محجوز", "وزن نفخ محجوز", "عدد حقن محجوز", "وزن حقن محجوز",
	"هالك نفخ (قطعة)", "هالك نفخ (وزن)", "هالك حقن (قطعة)", "هالك حقن (وزن)",
	"PPM داخلي", "PPM خارجي",
	"NCR وردية أ", "NCR وردية ب", "NCR وردية ج",
	"إجمالي التوريدات", "إجمالي المرتجعات", "عدد الشكاوى",
}

func num(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }

// KPICSV renders the full monthly metrics log.
func KPICSV(state StateReader, now time.Time) ([]byte, string) {
	lines := []string{strings.Join(kpiHeaders, ",")}
	for _, r := range state.KPIRecords() {
		lines = append(lines, strings.Join([]string{
			r.Month, r.Year, num(r.QualityRate), num(r.Defects),
			num(r.TotalProduction), num(r.TotalInternalReserved),
			num(r.ReservedBlowPieces), num(r.ReservedBlowWeight),
			num(r.ReservedInjectionPieces), num(r.ReservedInjectionWeight),
			num(r.ScrappedBlow), num(r.ScrappedWeight),
			num(r.ScrappedInjection), num(r.ScrappedPieces),
			num(r.InternalScrapPpm), num(r.ExternalScrapPpm),
			num(r.NCRShift1), num(r.NCRShift2), num(r.NCRShift3),
			num(r.TotalSupplied), num(r.TotalReturned), num(r.TotalComplaints),
		}, ","))
	}
	filename := fmt.Sprintf("kpi_report_%s.csv", now.Format("2006-01-02"))
	return []byte(bom + strings.Join(lines, "\n")), filename
}
