package generation

import (
	"context"
	"time"

	"github.com/abhisek/modulajar/internal/credential"
	"github.com/abhisek/modulajar/internal/lessonplan"
	"github.com/abhisek/modulajar/internal/llm"
)

var testNow = time.Date(2025, time.March, 5, 9, 0, 0, 0, time.UTC)

func sampleRequest() lessonplan.LessonRequest {
	r := lessonplan.NewRequest(testNow)
	r.SchoolName = "SD Negeri 1 Sukamaju"
	r.TeacherName = "Siti Aminah"
	r.TeacherIDNumber = "198501012010012001"
	r.Subject = "IPA"
	r.GradeLevel = "Fase C (Kelas 5 SD)"
	r.Topic = "Siklus Air"
	r.Duration = "2 x 35 menit"
	r.MeetingCount = "1"
	r.Material = lessonplan.Provided("Evaporasi, kondensasi, presipitasi.")
	r.Insertion = lessonplan.Provided("Air adalah titipan yang harus dijaga.")
	r.DPL = lessonplan.NewLabelSet("Bernalar Kritis", "Mandiri")
	r.KBCTheme = lessonplan.NewLabelSet("Cinta Alam")
	r.SESPriority = lessonplan.NewLabelSet("Empati", "Tanggung Jawab")
	r.City = "Bandung"
	r.PrincipalName = "Drs. Budi Santoso"
	r.PrincipalIDNumber = "197001011995031001"
	return r
}

// testClient returns a client backed by mock, plus a pointer to the number
// of times the factory ran.
func testClient(mock *llm.MockProvider, key string) (*Client, *int) {
	built := 0
	factory := func(_ context.Context, apiKey string) (llm.Provider, error) {
		built++
		return mock, nil
	}
	cfg := DefaultConfig()
	cfg.Now = func() time.Time { return testNow }
	return NewClient(credential.Static(key), factory, cfg, nil), &built
}
