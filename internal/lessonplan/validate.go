package lessonplan

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ValidationError reports the first field that blocks submission.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

var setMessages = map[SetField]string{
	SetDPL:         "Mohon pilih minimal 1 Dimensi Profil Lulusan (DPL).",
	SetKBCTheme:    "Mohon pilih minimal 1 Tema KBC.",
	SetSESPriority: "Mohon pilih minimal 1 SES Prioritas.",
}

var requiredFields = []struct {
	field Field
	label string
}{
	{FieldSchoolName, "Nama Sekolah"},
	{FieldTeacherName, "Nama Guru"},
	{FieldSubject, "Mata Pelajaran"},
	{FieldGradeLevel, "Fase / Kelas"},
	{FieldTopic, "Topik / Materi Pokok"},
	{FieldDuration, "Alokasi Waktu"},
	{FieldCity, "Kota"},
	{FieldPrincipalName, "Nama Kepala Sekolah"},
}

// Validate checks r and returns a *ValidationError for the first failing
// rule, or nil when the request may be submitted.
func (r LessonRequest) Validate() error {
	if errs := r.failures(); len(errs) > 0 {
		return errs[0]
	}
	return nil
}

// ruleCount is the number of checks failures runs.
var ruleCount = len(SetFields) + len(requiredFields) + 4

// Completeness is the share of validation rules r already passes, from 0
// to 1. The form shows it while the teacher fills it in.
func (r LessonRequest) Completeness() float64 {
	return 1 - float64(len(r.failures()))/float64(ruleCount)
}

// failures lists every failing rule in the order Validate reports them.
func (r LessonRequest) failures() []*ValidationError {
	var errs []*ValidationError
	for _, f := range SetFields {
		if r.Set(f).IsEmpty() {
			errs = append(errs, &ValidationError{Field: string(f), Message: setMessages[f]})
		}
	}

	for _, rf := range requiredFields {
		if strings.TrimSpace(r.Value(rf.field)) == "" {
			errs = append(errs, &ValidationError{
				Field:   string(rf.field),
				Message: fmt.Sprintf("Mohon isi %s.", rf.label),
			})
		}
	}

	if n, err := strconv.Atoi(strings.TrimSpace(r.MeetingCount)); err != nil || n < 1 {
		errs = append(errs, &ValidationError{
			Field:   string(FieldMeetingCount),
			Message: "Jumlah pertemuan harus berupa angka minimal 1.",
		})
	}

	if _, err := time.Parse(DateLayout, r.Date); err != nil {
		errs = append(errs, &ValidationError{
			Field:   string(FieldDate),
			Message: "Tanggal harus berformat YYYY-MM-DD.",
		})
	}

	if !r.Material.IsAuto() && strings.TrimSpace(r.Material.Text()) == "" {
		errs = append(errs, &ValidationError{
			Field:   string(FieldMaterialDetails),
			Message: "Mohon isi rincian materi atau aktifkan pembuatan otomatis.",
		})
	}
	if !r.Insertion.IsAuto() && strings.TrimSpace(r.Insertion.Text()) == "" {
		errs = append(errs, &ValidationError{
			Field:   string(FieldInsertionMaterial),
			Message: "Mohon isi materi insersi atau aktifkan pembuatan otomatis.",
		})
	}
	return errs
}
