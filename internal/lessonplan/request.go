package lessonplan

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DateLayout is the wire format of LessonRequest.Date.
const DateLayout = "2006-01-02"

// Field names a scalar form field. Values match the original form keys so
// request files and the terminal form share one vocabulary.
type Field string

const (
	FieldSchoolName            Field = "schoolName"
	FieldTeacherName           Field = "teacherName"
	FieldTeacherIDType         Field = "teacherIdType"
	FieldTeacherIDNumber       Field = "teacherIdNumber"
	FieldSubject               Field = "subject"
	FieldGradeLevel            Field = "gradeLevel"
	FieldSemester              Field = "semester"
	FieldTopic                 Field = "topic"
	FieldDuration              Field = "duration"
	FieldMeetingCount          Field = "meetingCount"
	FieldMethod                Field = "method"
	FieldMaterialDetails       Field = "materialDetails"
	FieldAutoGenerateMaterial  Field = "autoGenerateMaterial"
	FieldInsertionMaterial     Field = "insertionMaterial"
	FieldAutoGenerateInsertion Field = "autoGenerateInsertion"
	FieldCity                  Field = "city"
	FieldDate                  Field = "date"
	FieldPrincipalName         Field = "principalName"
	FieldPrincipalIDType       Field = "principalIdType"
	FieldPrincipalIDNumber     Field = "principalIdNumber"
)

// SetField names one of the set-valued (checkbox group) fields.
type SetField string

const (
	SetDPL         SetField = "dpl"
	SetKBCTheme    SetField = "kbcTheme"
	SetSESPriority SetField = "sesPriority"
)

// SetFields lists the set-valued fields in form order.
var SetFields = []SetField{SetDPL, SetKBCTheme, SetSESPriority}

// LessonRequest is the full set of lesson parameters collected from a teacher.
// It is a value type: every With* method returns a modified copy and leaves
// the receiver untouched.
type LessonRequest struct {
	SchoolName      string
	TeacherName     string
	TeacherIDType   string
	TeacherIDNumber string

	Subject      string
	GradeLevel   string
	Semester     string
	Topic        string
	Duration     string
	MeetingCount string
	Method       string
	Material     Content

	DPL         LabelSet
	KBCTheme    LabelSet
	SESPriority LabelSet
	Insertion   Content

	City              string
	Date              string
	PrincipalName     string
	PrincipalIDType   string
	PrincipalIDNumber string
}

// NewRequest returns a request holding the form defaults.
func NewRequest(today time.Time) LessonRequest {
	return LessonRequest{
		TeacherIDType:   "NIP",
		Semester:        SemesterOptions[0],
		Method:          MethodOptions[0],
		Date:            today.Format(DateLayout),
		PrincipalIDType: "NIP",
	}
}

// WithField returns a copy of r with the named field set to value.
func (r LessonRequest) WithField(name Field, value string) (LessonRequest, error) {
	switch name {
	case FieldSchoolName:
		r.SchoolName = value
	case FieldTeacherName:
		r.TeacherName = value
	case FieldTeacherIDType:
		r.TeacherIDType = value
	case FieldTeacherIDNumber:
		r.TeacherIDNumber = value
	case FieldSubject:
		r.Subject = value
	case FieldGradeLevel:
		r.GradeLevel = value
	case FieldSemester:
		r.Semester = value
	case FieldTopic:
		r.Topic = value
	case FieldDuration:
		r.Duration = value
	case FieldMeetingCount:
		r.MeetingCount = value
	case FieldMethod:
		r.Method = value
	case FieldMaterialDetails:
		r.Material = Provided(value)
	case FieldInsertionMaterial:
		r.Insertion = Provided(value)
	case FieldAutoGenerateMaterial, FieldAutoGenerateInsertion:
		auto, err := strconv.ParseBool(value)
		if err != nil {
			return r, fmt.Errorf("field %s: %q is not a boolean", name, value)
		}
		c := Provided("")
		if auto {
			c = AutoGenerate()
		}
		if name == FieldAutoGenerateMaterial {
			r.Material = c
		} else {
			r.Insertion = c
		}
	case FieldCity:
		r.City = value
	case FieldDate:
		r.Date = value
	case FieldPrincipalName:
		r.PrincipalName = value
	case FieldPrincipalIDType:
		r.PrincipalIDType = value
	case FieldPrincipalIDNumber:
		r.PrincipalIDNumber = value
	default:
		return r, fmt.Errorf("unknown field %q", name)
	}
	return r, nil
}

// Value returns the current string value of a scalar field.
func (r LessonRequest) Value(name Field) string {
	switch name {
	case FieldSchoolName:
		return r.SchoolName
	case FieldTeacherName:
		return r.TeacherName
	case FieldTeacherIDType:
		return r.TeacherIDType
	case FieldTeacherIDNumber:
		return r.TeacherIDNumber
	case FieldSubject:
		return r.Subject
	case FieldGradeLevel:
		return r.GradeLevel
	case FieldSemester:
		return r.Semester
	case FieldTopic:
		return r.Topic
	case FieldDuration:
		return r.Duration
	case FieldMeetingCount:
		return r.MeetingCount
	case FieldMethod:
		return r.Method
	case FieldMaterialDetails:
		return r.Material.Text()
	case FieldInsertionMaterial:
		return r.Insertion.Text()
	case FieldAutoGenerateMaterial:
		return strconv.FormatBool(r.Material.IsAuto())
	case FieldAutoGenerateInsertion:
		return strconv.FormatBool(r.Insertion.IsAuto())
	case FieldCity:
		return r.City
	case FieldDate:
		return r.Date
	case FieldPrincipalName:
		return r.PrincipalName
	case FieldPrincipalIDType:
		return r.PrincipalIDType
	case FieldPrincipalIDNumber:
		return r.PrincipalIDNumber
	}
	return ""
}

// WithMaterial returns a copy of r with the material content replaced.
func (r LessonRequest) WithMaterial(c Content) LessonRequest {
	r.Material = c
	return r
}

// WithInsertion returns a copy of r with the insertion content replaced.
func (r LessonRequest) WithInsertion(c Content) LessonRequest {
	r.Insertion = c
	return r
}

// Set returns the members of a set-valued field.
func (r LessonRequest) Set(f SetField) LabelSet {
	switch f {
	case SetDPL:
		return r.DPL
	case SetKBCTheme:
		return r.KBCTheme
	case SetSESPriority:
		return r.SESPriority
	}
	return LabelSet{}
}

func (r LessonRequest) withSet(f SetField, s LabelSet) (LessonRequest, error) {
	switch f {
	case SetDPL:
		r.DPL = s
	case SetKBCTheme:
		r.KBCTheme = s
	case SetSESPriority:
		r.SESPriority = s
	default:
		return r, fmt.Errorf("unknown set field %q", f)
	}
	return r, nil
}

// WithSetMember returns a copy of r where the set field contains label.
func (r LessonRequest) WithSetMember(f SetField, label string) (LessonRequest, error) {
	return r.withSet(f, r.Set(f).With(label))
}

// WithoutSetMember returns a copy of r where the set field lacks label.
func (r LessonRequest) WithoutSetMember(f SetField, label string) (LessonRequest, error) {
	return r.withSet(f, r.Set(f).Without(label))
}

// ToggleSetMember adds label when present is true and removes it otherwise.
func (r LessonRequest) ToggleSetMember(f SetField, label string, present bool) (LessonRequest, error) {
	if present {
		return r.WithSetMember(f, label)
	}
	return r.WithoutSetMember(f, label)
}

// MeetingCountInt returns the number of sessions. Values that do not parse as
// a positive integer count as a single session.
func (r LessonRequest) MeetingCountInt() int {
	n, err := strconv.Atoi(strings.TrimSpace(r.MeetingCount))
	if err != nil || n < 1 {
		return 1
	}
	return n
}
