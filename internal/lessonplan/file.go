package lessonplan

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"gopkg.in/yaml.v3"
)

//go:embed request.schema.json
var requestSchemaJSON []byte

const requestSchemaURL = "schema://modulajar/request.json"

var (
	requestSchemaOnce sync.Once
	requestSchema     *jsonschema.Schema
	requestSchemaErr  error
)

func compiledRequestSchema() (*jsonschema.Schema, error) {
	requestSchemaOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(requestSchemaJSON))
		if err != nil {
			requestSchemaErr = fmt.Errorf("parse request schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource(requestSchemaURL, doc); err != nil {
			requestSchemaErr = fmt.Errorf("add request schema: %w", err)
			return
		}
		requestSchema, requestSchemaErr = c.Compile(requestSchemaURL)
	})
	return requestSchema, requestSchemaErr
}

// fileDoc mirrors the request file layout. Scalars that people commonly
// write unquoted (ids, counts) are kept as any and stringified.
type fileDoc struct {
	SchoolName            string   `json:"schoolName"`
	TeacherName           string   `json:"teacherName"`
	TeacherIDType         *string  `json:"teacherIdType"`
	TeacherIDNumber       any      `json:"teacherIdNumber"`
	Subject               string   `json:"subject"`
	GradeLevel            string   `json:"gradeLevel"`
	Semester              string   `json:"semester"`
	Topic                 string   `json:"topic"`
	Duration              string   `json:"duration"`
	MeetingCount          any      `json:"meetingCount"`
	Method                string   `json:"method"`
	MaterialDetails       string   `json:"materialDetails"`
	AutoGenerateMaterial  bool     `json:"autoGenerateMaterial"`
	DPL                   []string `json:"dpl"`
	KBCTheme              []string `json:"kbcTheme"`
	SESPriority           []string `json:"sesPriority"`
	InsertionMaterial     string   `json:"insertionMaterial"`
	AutoGenerateInsertion bool     `json:"autoGenerateInsertion"`
	City                  string   `json:"city"`
	Date                  string   `json:"date"`
	PrincipalName         string   `json:"principalName"`
	PrincipalIDType       *string  `json:"principalIdType"`
	PrincipalIDNumber     any      `json:"principalIdNumber"`
}

// LoadFile reads a YAML request file. See Decode.
func LoadFile(path string, today time.Time) (LessonRequest, error) {
	f, err := os.Open(path)
	if err != nil {
		return LessonRequest{}, fmt.Errorf("open request file: %w", err)
	}
	defer f.Close()
	return Decode(f, today)
}

// Decode reads a YAML request document, checks it against the embedded
// schema and converts it to a LessonRequest. Keys left out of the document
// keep the NewRequest defaults. A set auto flag discards the matching
// manual text.
func Decode(r io.Reader, today time.Time) (LessonRequest, error) {
	var raw map[string]any
	if err := yaml.NewDecoder(r).Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return LessonRequest{}, fmt.Errorf("request file is empty")
		}
		return LessonRequest{}, fmt.Errorf("parse request yaml: %w", err)
	}
	normalizeYAML(raw)

	buf, err := json.Marshal(raw)
	if err != nil {
		return LessonRequest{}, fmt.Errorf("encode request: %w", err)
	}

	sch, err := compiledRequestSchema()
	if err != nil {
		return LessonRequest{}, err
	}
	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(buf))
	if err != nil {
		return LessonRequest{}, fmt.Errorf("decode request: %w", err)
	}
	if err := sch.Validate(inst); err != nil {
		return LessonRequest{}, fmt.Errorf("invalid request file: %w", err)
	}

	var doc fileDoc
	dec := json.NewDecoder(bytes.NewReader(buf))
	dec.UseNumber()
	if err := dec.Decode(&doc); err != nil {
		return LessonRequest{}, fmt.Errorf("decode request: %w", err)
	}
	return doc.toRequest(today), nil
}

// normalizeYAML turns unquoted YAML timestamps back into plain dates.
func normalizeYAML(m map[string]any) {
	for k, v := range m {
		if t, ok := v.(time.Time); ok {
			m[k] = t.Format(DateLayout)
		}
	}
}

func (d fileDoc) toRequest(today time.Time) LessonRequest {
	r := NewRequest(today)
	r.SchoolName = d.SchoolName
	r.TeacherName = d.TeacherName
	if d.TeacherIDType != nil {
		r.TeacherIDType = *d.TeacherIDType
	}
	r.TeacherIDNumber = scalarString(d.TeacherIDNumber)
	r.Subject = d.Subject
	r.GradeLevel = d.GradeLevel
	if d.Semester != "" {
		r.Semester = d.Semester
	}
	r.Topic = d.Topic
	r.Duration = d.Duration
	r.MeetingCount = scalarString(d.MeetingCount)
	if d.Method != "" {
		r.Method = d.Method
	}
	if d.AutoGenerateMaterial {
		r.Material = AutoGenerate()
	} else {
		r.Material = Provided(d.MaterialDetails)
	}
	r.DPL = NewLabelSet(d.DPL...)
	r.KBCTheme = NewLabelSet(d.KBCTheme...)
	r.SESPriority = NewLabelSet(d.SESPriority...)
	if d.AutoGenerateInsertion {
		r.Insertion = AutoGenerate()
	} else {
		r.Insertion = Provided(d.InsertionMaterial)
	}
	r.City = d.City
	if d.Date != "" {
		r.Date = d.Date
	}
	r.PrincipalName = d.PrincipalName
	if d.PrincipalIDType != nil {
		r.PrincipalIDType = *d.PrincipalIDType
	}
	r.PrincipalIDNumber = scalarString(d.PrincipalIDNumber)
	return r
}

func scalarString(v any) string {
	if v == nil {
		return ""
	}
	return fmt.Sprint(v)
}

// Encode writes r as a YAML request document that Decode accepts.
func Encode(w io.Writer, r LessonRequest) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r.document()); err != nil {
		return fmt.Errorf("encode request yaml: %w", err)
	}
	return enc.Close()
}

// document builds the request as an ordered YAML mapping so encoded files
// follow form order.
func (r LessonRequest) document() *yaml.Node {
	doc := &yaml.Node{Kind: yaml.MappingNode}
	add := func(key string, value *yaml.Node) {
		doc.Content = append(doc.Content, &yaml.Node{Kind: yaml.ScalarNode, Value: key}, value)
	}
	str := func(s string) *yaml.Node {
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s}
	}
	boolean := func(b bool) *yaml.Node {
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: fmt.Sprint(b)}
	}
	list := func(s LabelSet) *yaml.Node {
		n := &yaml.Node{Kind: yaml.SequenceNode}
		for _, l := range s.Labels() {
			n.Content = append(n.Content, str(l))
		}
		return n
	}

	add("schoolName", str(r.SchoolName))
	add("teacherName", str(r.TeacherName))
	add("teacherIdType", str(r.TeacherIDType))
	add("teacherIdNumber", str(r.TeacherIDNumber))
	add("subject", str(r.Subject))
	add("gradeLevel", str(r.GradeLevel))
	add("semester", str(r.Semester))
	add("topic", str(r.Topic))
	add("duration", str(r.Duration))
	if r.MeetingCount != "" {
		add("meetingCount", str(r.MeetingCount))
	}
	add("method", str(r.Method))
	if r.Material.IsAuto() {
		add("autoGenerateMaterial", boolean(true))
	} else {
		add("materialDetails", str(r.Material.Text()))
	}
	add("dpl", list(r.DPL))
	add("kbcTheme", list(r.KBCTheme))
	add("sesPriority", list(r.SESPriority))
	if r.Insertion.IsAuto() {
		add("autoGenerateInsertion", boolean(true))
	} else {
		add("insertionMaterial", str(r.Insertion.Text()))
	}
	add("city", str(r.City))
	if r.Date != "" {
		add("date", str(r.Date))
	}
	add("principalName", str(r.PrincipalName))
	add("principalIdType", str(r.PrincipalIDType))
	add("principalIdNumber", str(r.PrincipalIDNumber))
	return doc
}

// MarshalJSON encodes r with the request file keys.
func (r LessonRequest) MarshalJSON() ([]byte, error) {
	d := fileDoc{
		SchoolName:            r.SchoolName,
		TeacherName:           r.TeacherName,
		TeacherIDType:         &r.TeacherIDType,
		TeacherIDNumber:       r.TeacherIDNumber,
		Subject:               r.Subject,
		GradeLevel:            r.GradeLevel,
		Semester:              r.Semester,
		Topic:                 r.Topic,
		Duration:              r.Duration,
		MeetingCount:          r.MeetingCount,
		Method:                r.Method,
		MaterialDetails:       r.Material.Text(),
		AutoGenerateMaterial:  r.Material.IsAuto(),
		DPL:                   r.DPL.Labels(),
		KBCTheme:              r.KBCTheme.Labels(),
		SESPriority:           r.SESPriority.Labels(),
		InsertionMaterial:     r.Insertion.Text(),
		AutoGenerateInsertion: r.Insertion.IsAuto(),
		City:                  r.City,
		Date:                  r.Date,
		PrincipalName:         r.PrincipalName,
		PrincipalIDType:       &r.PrincipalIDType,
		PrincipalIDNumber:     r.PrincipalIDNumber,
	}
	return json.Marshal(d)
}
