package reports

import (
	"context"
	"strings"
	"testing"
	"time"

	"tqmcore/internal/core"
	"tqmcore/internal/infra/persistence/memory"
	"tqmcore/pkg/domain"
)

const testDate = "2024-03-15"

// fixtureState builds a container with a two-machine roster so expected CSV
// output stays readable.
func fixtureState(t *testing.T) *core.StateContainer {
	t.Helper()
	ctx := context.Background()
	s := core.NewStateContainer(memory.NewStore())
	if err := s.Load(ctx); err != nil {
		t.Fatalf("Load: %v", err)
	}
	doc := `{"products":[],"checklistMachines":["M1","M2"]}`
	if err := s.ImportJSON(ctx, []byte(doc)); err != nil {
		t.Fatalf("ImportJSON: %v", err)
	}
	return s
}

func header(slots []string) string {
	return strings.Join(append([]string{"الماكينة", "اسم المنتج"}, slots...), ",")
}

func TestChecklistCSV(t *testing.T) {
	ctx := context.Background()
	s := fixtureState(t)
	if err := s.SetSupervisor(ctx, testDate, core.ShiftA, "ahmed"); err != nil {
		t.Fatalf("SetSupervisor: %v", err)
	}
	if err := s.SetProductAssignment(ctx, testDate, core.ShiftA, "M1", "jar"); err != nil {
		t.Fatalf("SetProductAssignment: %v", err)
	}
	if err := s.SetChecklistStatus(ctx, testDate, core.ShiftA, "M1", domain.ChecklistTimeSlots[0], "ok"); err != nil {
		t.Fatalf("SetChecklistStatus: %v", err)
	}

	data, filename := ChecklistCSV(s, testDate, core.ShiftA)
	if filename != "checklist_2024-03-15_shift_A.csv" {
		t.Fatalf("filename = %q", filename)
	}
	content := string(data)
	if !strings.HasPrefix(content, "\uFEFF") {
		t.Fatal("missing UTF-8 BOM")
	}
	lines := strings.Split(strings.TrimPrefix(content, "\uFEFF"), "\n")
	if len(lines) != 5 {
		t.Fatalf("lines = %d, want preamble, blank, header, two rows", len(lines))
	}
	if lines[0] != "تقرير فحص الوردية: الوردية الأولى,المسؤول: ahmed,التاريخ: 2024-03-15" {
		t.Fatalf("preamble = %q", lines[0])
	}
	if lines[1] != "" {
		t.Fatalf("separator = %q, want blank", lines[1])
	}
	if lines[2] != header(domain.ChecklistTimeSlots) {
		t.Fatalf("header = %q", lines[2])
	}
	wantRow := "M1,jar,OK" + strings.Repeat(",-", len(domain.ChecklistTimeSlots)-1)
	if lines[3] != wantRow {
		t.Fatalf("row M1 = %q, want %q", lines[3], wantRow)
	}
	wantBlank := "M2," + strings.Repeat(",-", len(domain.ChecklistTimeSlots))
	if lines[4] != wantBlank {
		t.Fatalf("row M2 = %q, want %q", lines[4], wantBlank)
	}
}

func TestChecklistCSVUnsetSupervisor(t *testing.T) {
	s := fixtureState(t)
	data, _ := ChecklistCSV(s, testDate, core.ShiftB)
	first := strings.Split(strings.TrimPrefix(string(data), "\uFEFF"), "\n")[0]
	if first != "تقرير فحص الوردية: الوردية الثانية,المسؤول: غير محدد,التاريخ: 2024-03-15" {
		t.Fatalf("preamble = %q", first)
	}
}

func TestTopLoadCSV(t *testing.T) {
	ctx := context.Background()
	s := fixtureState(t)
	if err := s.SetTopLoadValue(ctx, testDate, core.ShiftC, "M2", domain.TopLoadTimeSlots[1], "31.2"); err != nil {
		t.Fatalf("SetTopLoadValue: %v", err)
	}

	data, filename := TopLoadCSV(s, testDate, core.ShiftC)
	if filename != "topload_2024-03-15_shift_C.csv" {
		t.Fatalf("filename = %q", filename)
	}
	lines := strings.Split(strings.TrimPrefix(string(data), "\uFEFF"), "\n")
	if !strings.HasPrefix(lines[0], "تقرير فحص التوب لود (Top Load Check): الوردية الثالثة,") {
		t.Fatalf("preamble = %q", lines[0])
	}
	if lines[4] != "M2,,-,31.2,-" {
		t.Fatalf("row M2 = %q", lines[4])
	}
}

func TestWeightCSV(t *testing.T) {
	s := fixtureState(t)
	data, filename := WeightCSV(s, testDate, core.ShiftA)
	if filename != "weight_check_2024-03-15_shift_A.csv" {
		t.Fatalf("filename = %q", filename)
	}
	lines := strings.Split(strings.TrimPrefix(string(data), "\uFEFF"), "\n")
	if lines[0] != "تقرير فحص الأوزان (Weight Check),التاريخ: 2024-03-15,الوردية: A" {
		t.Fatalf("preamble = %q", lines[0])
	}
	if lines[2] != header(domain.WeightTimeSlots) {
		t.Fatalf("header = %q", lines[2])
	}
}

func TestProductsCSVQuotesFields(t *testing.T) {
	ctx := context.Background()
	s := fixtureState(t)
	if _, err := s.AddProduct(ctx, core.Product{
		ID: "p1", Name: `jar "small"`, Manufacturer: "acme", Specs: "PET, 30ml", Defects: "",
	}); err != nil {
		t.Fatalf("AddProduct: %v", err)
	}

	now := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)
	data, filename := ProductsCSV(s, now)
	if filename != "tqm_products_2024-03-15.csv" {
		t.Fatalf("filename = %q", filename)
	}
	lines := strings.Split(strings.TrimPrefix(string(data), "\uFEFF"), "\n")
	if lines[0] != "ID,اسم المنتج,الشركة المصنعة,المواصفات,العيوب" {
		t.Fatalf("header = %q", lines[0])
	}
	want := `p1,"jar ""small""","acme","PET, 30ml",""`
	if lines[1] != want {
		t.Fatalf("row = %q, want %q", lines[1], want)
	}
}

func TestKPICSV(t *testing.T) {
	ctx := context.Background()
	s := fixtureState(t)
	if err := s.UpsertKPIRecord(ctx, core.KPIRecord{
		Month: "يناير", Year: "2024", QualityRate: 98.5, Defects: 12, TotalProduction: 100000,
	}); err != nil {
		t.Fatalf("UpsertKPIRecord: %v", err)
	}

	now := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)
	data, filename := KPICSV(s, now)
	if filename != "kpi_report_2024-03-15.csv" {
		t.Fatalf("filename = %q", filename)
	}
	lines := strings.Split(strings.TrimPrefix(string(data), "\uFEFF"), "\n")
	if got := len(strings.Split(lines[0], ",")); got != 22 {
		t.Fatalf("header columns = %d, want 22", got)
	}
	if !strings.HasPrefix(lines[1], "يناير,2024,98.5,12,100000,0,") {
		t.Fatalf("row = %q", lines[1])
	}
	if got := len(strings.Split(lines[1], ",")); got != 22 {
		t.Fatalf("row columns = %d, want 22", got)
	}
}
