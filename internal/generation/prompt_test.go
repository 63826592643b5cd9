package generation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/abhisek/modulajar/internal/lessonplan"
)

func TestBuildModulePrompt_Inputs(t *testing.T) {
	p := BuildModulePrompt(sampleRequest(), testNow)

	assert.Contains(t, p, "- Sekolah: SD Negeri 1 Sukamaju")
	assert.Contains(t, p, "- Mapel/Fase: IPA / Fase C (Kelas 5 SD)")
	assert.Contains(t, p, "- Alokasi: 2 x 35 menit (1 Pertemuan)")
	assert.Contains(t, p, "- Dimensi Profil Lulusan (DPL): Bernalar Kritis, Mandiri")
	assert.Contains(t, p, "- SES Prioritas: Empati, Tanggung Jawab")
	assert.Contains(t, p, "# MODUL AJAR: SIKLUS AIR")
	assert.Contains(t, p, "| **Tahun Penyusunan** | 2025 |")
}

func TestBuildModulePrompt_Skeleton(t *testing.T) {
	p := BuildModulePrompt(sampleRequest(), testNow)

	a := strings.Index(p, "## A. INFORMASI UMUM")
	b := strings.Index(p, "## B. KOMPONEN INTI")
	c := strings.Index(p, "## C. LAMPIRAN")
	assert.True(t, a > 0 && a < b && b < c, "sections out of order: %d %d %d", a, b, c)

	for _, want := range []string{
		"**I. Pilihan Ganda (10 Soal)**",
		"**IV. Uraian HOTS (3 Soal)**",
		"Kunci Jawaban & Pedoman Penskoran",
		"JANGAN LaTeX",
		"JANGAN berikan kata pengantar",
	} {
		assert.Contains(t, p, want)
	}
}

func TestBuildModulePrompt_ManualContent(t *testing.T) {
	p := BuildModulePrompt(sampleRequest(), testNow)

	assert.Contains(t, p, "Materi/Konteks: Evaporasi, kondensasi, presipitasi.")
	assert.Contains(t, p, "Materi Insersi (Nilai Spiritual/Moral): Air adalah titipan yang harus dijaga.")
	assert.Contains(t, p, "| **Materi Insersi** | Air adalah titipan yang harus dijaga. |")
	assert.NotContains(t, p, "INSTRUKSI KHUSUS")
}

func TestBuildModulePrompt_AutoContentExcludesManualText(t *testing.T) {
	req := sampleRequest()
	// Auto mode wins even if stale text was typed before switching.
	req, _ = req.WithField(lessonplan.FieldMaterialDetails, "teks lama materi")
	req, _ = req.WithField(lessonplan.FieldAutoGenerateMaterial, "true")
	req, _ = req.WithField(lessonplan.FieldInsertionMaterial, "teks lama insersi")
	req, _ = req.WithField(lessonplan.FieldAutoGenerateInsertion, "true")

	p := BuildModulePrompt(req, testNow)

	assert.NotContains(t, p, "teks lama materi")
	assert.NotContains(t, p, "teks lama insersi")
	assert.Contains(t, p, `menyusun Detail Materi secara lengkap, mendalam, dan sesuai fase kurikulum untuk topik "Siklus Air".`)
	assert.Contains(t, p, `menghubungkan topik "Siklus Air" dengan nilai "Cinta Alam" dan "Empati, Tanggung Jawab".`)
	assert.Contains(t, p, "| **Materi Insersi** | (Disusun oleh AI) |")
}

func TestBuildModulePrompt_SingleMeeting(t *testing.T) {
	p := BuildModulePrompt(sampleRequest(), testNow)

	assert.Contains(t, p, "Buat satu rangkaian kegiatan pembelajaran yang padat dan bermakna")
	assert.Contains(t, p, "#### Pertemuan 1")
	assert.NotContains(t, p, "#### Pertemuan 2")
	assert.NotContains(t, p, "PERTEMUAN > 1")
}

func TestBuildModulePrompt_MultipleMeetings(t *testing.T) {
	req := sampleRequest()
	req.MeetingCount = "3"

	p := BuildModulePrompt(req, testNow)

	assert.Contains(t, p, "**INSTRUKSI KRUSIAL (PERTEMUAN > 1):** Karena jumlah pertemuan adalah **3**")
	assert.Contains(t, p, "(Pertemuan 1 s.d. Pertemuan 3)")
	assert.Contains(t, p, `DILARANG KERAS menyingkat pertemuan 2 dst`)
	assert.Contains(t, p, "#### Pertemuan 2")
	assert.Contains(t, p, "hingga Pertemuan ke-3.")
	assert.Contains(t, p, "(3 Pertemuan)")
}

func TestBuildModulePrompt_UnparsableMeetingsFallsBackToOne(t *testing.T) {
	req := sampleRequest()
	req.MeetingCount = "dua"

	p := BuildModulePrompt(req, testNow)

	assert.Contains(t, p, "(1 Pertemuan)")
	assert.NotContains(t, p, "#### Pertemuan 2")
}

func TestBuildModulePrompt_Signature(t *testing.T) {
	req := sampleRequest()
	req.PrincipalIDType = ""
	req.PrincipalIDNumber = ""

	p := BuildModulePrompt(req, testNow)

	assert.Contains(t, p, AlignRightMarker+"**Bandung, 5 Maret 2025**")
	assert.Contains(t, p, "| **Drs. Budi Santoso** | **Siti Aminah** |")
	assert.Contains(t, p, "| - | NIP. 198501012010012001 |")
}

func TestBuildModulePrompt_Deterministic(t *testing.T) {
	assert.Equal(t,
		BuildModulePrompt(sampleRequest(), testNow),
		BuildModulePrompt(sampleRequest(), testNow))
}

func TestBuildRevisionPrompt(t *testing.T) {
	p := BuildRevisionPrompt("# MODUL AJAR\nisi", "Perbanyak contoh")

	assert.True(t, strings.HasPrefix(p, "Saya memiliki Modul Ajar berikut dalam format Markdown:"))
	assert.Contains(t, p, "# MODUL AJAR\nisi")
	assert.Contains(t, p, `perubahan berikut: "Perbanyak contoh".`)
	assert.Contains(t, p, "A. Informasi Umum, B. Komponen Inti, C. Lampiran")
	assert.Contains(t, p, "Outputkan kembali SELURUH modul")
	assert.Contains(t, p, "JANGAN GUNAKAN FORMAT LATEX")
	assert.Contains(t, p, "prinsip KBC dan SES")
}
