package form

import (
	"github.com/abhisek/modulajar/internal/lessonplan"
	"github.com/abhisek/modulajar/internal/ui/components"
)

type rowKind int

const (
	rowText rowKind = iota
	rowSelect
	rowChecklist
	rowToggle
	rowSubmit
)

// row is one focusable line of the form.
type row struct {
	kind    rowKind
	label   string
	section string // heading rendered above the row
	hint    string

	field lessonplan.Field    // text, select and toggle rows
	set   lessonplan.SetField // checklist rows

	// dependsOn is the index of the toggle that hides this row when on,
	// or -1.
	dependsOn int
	// linked is the text row a toggle restores when switched off, or -1.
	linked int

	input components.TextInput
	sel   components.Select
	list  components.Checklist
	on    bool
}

type rowSpec struct {
	kind        rowKind
	section     string
	label       string
	field       lessonplan.Field
	set         lessonplan.SetField
	placeholder string
	hint        string
	options     []string
	blank       string
	numeric     bool
}

// formLayout mirrors the order of the paper form teachers fill in.
var formLayout = []rowSpec{
	{kind: rowText, section: "Identitas Sekolah & Guru", label: "Nama Sekolah", field: lessonplan.FieldSchoolName, placeholder: "Contoh: MTs NU TBS"},
	{kind: rowText, label: "Nama Guru Penyusun", field: lessonplan.FieldTeacherName, placeholder: "Contoh: Faisal Rohman, S.Pd."},
	{kind: rowSelect, label: "Jenis ID Guru", field: lessonplan.FieldTeacherIDType, options: lessonplan.IDTypeOptions, blank: "(tanpa ID)"},
	{kind: rowText, label: "Nomor Identitas", field: lessonplan.FieldTeacherIDNumber, placeholder: "Contoh: 19800101 200501 1 001"},

	{kind: rowText, section: "Detail Pembelajaran", label: "Mata Pelajaran", field: lessonplan.FieldSubject, placeholder: "Contoh: IPAS"},
	{kind: rowSelect, label: "Fase / Kelas", field: lessonplan.FieldGradeLevel, options: append([]string{""}, lessonplan.GradeLevelOptions...), blank: "(pilih fase)"},
	{kind: rowText, label: "Alokasi Waktu", field: lessonplan.FieldDuration, placeholder: "Contoh: 2 x 35 Menit"},
	{kind: rowText, label: "Jumlah Pertemuan", field: lessonplan.FieldMeetingCount, placeholder: "Contoh: 1", numeric: true},
	{kind: rowSelect, label: "Semester", field: lessonplan.FieldSemester, options: lessonplan.SemesterOptions},
	{kind: rowSelect, label: "Model Pembelajaran", field: lessonplan.FieldMethod, options: lessonplan.MethodOptions},

	{kind: rowChecklist, section: "Karakter & Nilai (KBC & SES)", label: "Dimensi Profil Lulusan (DPL)", set: lessonplan.SetDPL},
	{kind: rowChecklist, label: "Tema KBC (Panca Cinta)", set: lessonplan.SetKBCTheme},
	{kind: rowChecklist, label: "SES Prioritas", set: lessonplan.SetSESPriority},
	{kind: rowToggle, label: "Buat narasi insersi otomatis", field: lessonplan.FieldAutoGenerateInsertion},
	{kind: rowText, label: "Materi Insersi / Narasi Nilai", field: lessonplan.FieldInsertionMaterial, placeholder: "Contoh: Belajar sel = mengagumi kerumitan ciptaan Allah.", hint: "Kalimat penghubung konsep akademis dengan nilai KBC."},

	{kind: rowText, section: "Materi & Topik", label: "Topik Utama", field: lessonplan.FieldTopic, placeholder: "Contoh: Bagian Tubuh Tumbuhan"},
	{kind: rowToggle, label: "Susun rincian materi otomatis", field: lessonplan.FieldAutoGenerateMaterial},
	{kind: rowText, label: "Detail Materi", field: lessonplan.FieldMaterialDetails, placeholder: "Poin-poin materi, tujuan khusus, atau karakteristik siswa"},

	{kind: rowText, section: "Pengesahan", label: "Kota Pengesahan", field: lessonplan.FieldCity, placeholder: "Contoh: Kudus"},
	{kind: rowText, label: "Tanggal", field: lessonplan.FieldDate, placeholder: "YYYY-MM-DD"},
	{kind: rowText, label: "Nama Kepala Sekolah", field: lessonplan.FieldPrincipalName, placeholder: "Contoh: Faisal, S.Pd.I"},
	{kind: rowSelect, label: "Jenis ID Kepsek", field: lessonplan.FieldPrincipalIDType, options: lessonplan.IDTypeOptions, blank: "(tanpa ID)"},
	{kind: rowText, label: "Nomor Identitas", field: lessonplan.FieldPrincipalIDNumber, placeholder: "Contoh: 19800101 200501 1 002"},

	{kind: rowSubmit, label: "Buat Modul Ajar"},
}

// toggleTargets pairs each auto toggle with the text field it replaces.
var toggleTargets = map[lessonplan.Field]lessonplan.Field{
	lessonplan.FieldAutoGenerateInsertion: lessonplan.FieldInsertionMaterial,
	lessonplan.FieldAutoGenerateMaterial:  lessonplan.FieldMaterialDetails,
}

// buildRows creates the form rows pre-filled from req.
func buildRows(req lessonplan.LessonRequest) []row {
	rows := make([]row, len(formLayout))
	index := make(map[lessonplan.Field]int)

	for i, spec := range formLayout {
		r := row{
			kind:      spec.kind,
			label:     spec.label,
			section:   spec.section,
			hint:      spec.hint,
			field:     spec.field,
			set:       spec.set,
			dependsOn: -1,
			linked:    -1,
		}
		switch spec.kind {
		case rowText:
			r.input = components.NewTextInput(spec.placeholder, spec.numeric, 0)
			r.input.SetValue(req.Value(spec.field))
			r.input.Blur()
		case rowSelect:
			r.sel = components.NewSelect(spec.options, req.Value(spec.field))
			r.sel.Blank = spec.blank
		case rowChecklist:
			r.list = components.NewChecklist(lessonplan.OptionsFor(spec.set), req.Set(spec.set).Labels())
		case rowToggle:
			r.on = req.Value(spec.field) == "true"
		}
		if spec.field != "" {
			index[spec.field] = i
		}
		rows[i] = r
	}

	for toggle, text := range toggleTargets {
		ti, ok1 := index[toggle]
		xi, ok2 := index[text]
		if ok1 && ok2 {
			rows[ti].linked = xi
			rows[xi].dependsOn = ti
		}
	}
	return rows
}

// name returns the identifier a ValidationError uses for this row.
func (r row) name() string {
	if r.kind == rowChecklist {
		return string(r.set)
	}
	return string(r.field)
}
