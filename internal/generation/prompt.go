package generation

import (
	"fmt"
	"strings"
	"time"

	"github.com/abhisek/modulajar/internal/lessonplan"
)

const preamble = `Bertindaklah sebagai Konsultan Pendidikan Ahli Kurikulum Merdeka Indonesia yang menguasai pendekatan **Kurikulum Berbasis Cinta (KBC)** dan **Social Emotional Skills (SES)**.
Tugas Anda adalah membuat "Modul Ajar" yang SANGAT LENGKAP, PROFESIONAL, PANJANG, dan SIAP CETAK.
`

const mainRules = `INSTRUKSI UTAMA:
1. **Format Markdown**: Gunakan Heading (#) dengan benar. JANGAN berikan kata pengantar.
2. **Bahasa**: Indonesia baku, pedagogis, menyentuh hati (karena berbasis cinta).
3. **Simbol**: Gunakan Unicode (misal: 90°), JANGAN LaTeX.
4. **Integrasi Mutlak**: Nilai DPL, KBC, dan SES harus TERLIHAT NYATA dalam Tujuan Pembelajaran, Kegiatan Pembelajaran, dan Asesmen.
`

const attachmentsSection = `## C. LAMPIRAN
### 1. Lembar Kerja Peserta Didik (LKPD)
(Buatkan LKPD lengkap dengan judul, instruksi, dan soal)

### 2. Bahan Bacaan (Materi Ajar)
(Ringkasan materi esensial 3-5 paragraf yang memuat nilai Insersi)

### 3. Instrumen Asesmen dan Rubrik

**a. Asesmen Sikap (SES)**
*(Buatkan rubrik observasi dengan 4 indikator perilaku spesifik untuk: %[1]s)*
| Indikator | Belum Terlihat | Mulai Terlihat | Membudaya |
| :--- | :--- | :--- | :--- |
| ... | ... | ... | ... |

**b. Asesmen Keterampilan (Psikomotorik)**
*(Buatkan rubrik penilaian kinerja/produk)*
| Kriteria | Skor 4 (Sangat Baik) | Skor 3 (Baik) | Skor 2 (Cukup) | Skor 1 (Perlu Bimbingan) |
| :--- | :--- | :--- | :--- | :--- |
| ... | ... | ... | ... | ... |

**c. Asesmen Sumatif (Tes Tertulis)**
**INSTRUKSI SOAL:** Buat soal yang relevan dengan topik "%[2]s" dan IKTP.

**I. Pilihan Ganda (10 Soal)**
1. ...
2. ...
(Lanjutkan sampai nomor 10)

**II. Pilihan Ganda Kompleks (5 Soal)**
*(Siswa memilih lebih dari satu jawaban benar atau pernyataan Benar/Salah)*
11. ...
12. ...
(Lanjutkan sampai nomor 15)

**III. Benar / Salah (5 Soal)**
16. ...
17. ...
(Lanjutkan sampai nomor 20)

**IV. Uraian HOTS (3 Soal)**
21. ...
22. ...
23. ...

> **Kunci Jawaban & Pedoman Penskoran:**
> **I. Pilihan Ganda:**
> 1-10...
>
> **II. PG Kompleks:**
> 11-15...
>
> **III. Benar/Salah:**
> 16-20...
>
> **IV. Uraian:**
> 21-23...
`

// promptData is the request flattened into the strings the prompt uses.
type promptData struct {
	req       lessonplan.LessonRequest
	meetings  int
	dpl       string
	kbc       string
	ses       string
	date      string
	year      int
	topic     string
	method    string
	insertion string
}

func newPromptData(req lessonplan.LessonRequest, now time.Time) promptData {
	d := promptData{
		req:       req,
		meetings:  req.MeetingCountInt(),
		dpl:       req.DPL.Join(", "),
		kbc:       req.KBCTheme.Join(", "),
		ses:       req.SESPriority.Join(", "),
		date:      FormatDate(req.Date),
		year:      now.Year(),
		topic:     req.Topic,
		method:    req.Method,
		insertion: req.Insertion.Text(),
	}
	if req.Insertion.IsAuto() {
		d.insertion = "(Disusun oleh AI)"
	}
	return d
}

// BuildModulePrompt renders the full lesson-plan prompt for req. now
// supplies the year printed in the identity table.
func BuildModulePrompt(req lessonplan.LessonRequest, now time.Time) string {
	d := newPromptData(req, now)

	var b strings.Builder
	b.WriteString(preamble)
	b.WriteString("\n")
	writeInputs(&b, d)
	b.WriteString("\n")
	b.WriteString(mainRules)
	fmt.Fprintf(&b, "5. %s\n", meetingInstruction(d.meetings))
	b.WriteString("\n---\n\n")

	fmt.Fprintf(&b, "# MODUL AJAR: %s\n\n", strings.ToUpper(d.topic))
	writeGeneralInfo(&b, d)
	b.WriteString("\n")
	writeCoreComponents(&b, d)
	b.WriteString("\n")
	fmt.Fprintf(&b, attachmentsSection, d.ses, d.topic)
	b.WriteString("\n---\n\n")
	writeSignature(&b, d)

	return b.String()
}

func writeInputs(b *strings.Builder, d promptData) {
	r := d.req
	b.WriteString("Data Input:\n")
	fmt.Fprintf(b, "- Sekolah: %s\n", r.SchoolName)
	fmt.Fprintf(b, "- Penyusun: %s\n", r.TeacherName)
	fmt.Fprintf(b, "- Mapel/Fase: %s / %s\n", r.Subject, r.GradeLevel)
	fmt.Fprintf(b, "- Topik: %s\n", r.Topic)
	fmt.Fprintf(b, "- Model: %s\n", r.Method)
	fmt.Fprintf(b, "- Alokasi: %s (%d Pertemuan)\n", r.Duration, d.meetings)
	fmt.Fprintf(b, "- %s\n", materialContext(r))
	b.WriteString("\n**DATA PENTING (KBC & SES):**\n")
	fmt.Fprintf(b, "- Dimensi Profil Lulusan (DPL): %s\n", d.dpl)
	fmt.Fprintf(b, "- Tema KBC: %s\n", d.kbc)
	fmt.Fprintf(b, "- SES Prioritas: %s\n", d.ses)
	fmt.Fprintf(b, "- %s\n", insertionContext(r, d.kbc, d.ses))
}

// materialContext either hands the material over or asks the model to
// write it. Manual text never reaches the prompt in auto mode.
func materialContext(r lessonplan.LessonRequest) string {
	if r.Material.IsAuto() {
		return fmt.Sprintf("**INSTRUKSI KHUSUS:** Anda WAJIB menyusun Detail Materi secara lengkap, mendalam, dan sesuai fase kurikulum untuk topik \"%s\".", r.Topic)
	}
	return "Materi/Konteks: " + r.Material.Text()
}

func insertionContext(r lessonplan.LessonRequest, kbc, ses string) string {
	if r.Insertion.IsAuto() {
		return fmt.Sprintf("**INSTRUKSI KHUSUS:** Anda WAJIB menciptakan Narasi Materi Insersi yang menyentuh hati, menghubungkan topik \"%s\" dengan nilai \"%s\" dan \"%s\".", r.Topic, kbc, ses)
	}
	return "Materi Insersi (Nilai Spiritual/Moral): " + r.Insertion.Text()
}

func meetingInstruction(meetings int) string {
	if meetings > 1 {
		return fmt.Sprintf("**INSTRUKSI KRUSIAL (PERTEMUAN > 1):** Karena jumlah pertemuan adalah **%[1]d**, Anda **WAJIB MENULISKAN TABEL KEGIATAN PEMBELAJARAN (Pendahuluan, Inti, Penutup) UNTUK SETIAP PERTEMUAN (Pertemuan 1 s.d. Pertemuan %[1]d) SECARA LENGKAP DAN TERPISAH**.\n"+
			"   DILARANG KERAS menyingkat pertemuan 2 dst dengan kalimat seperti \"Kegiatan sama dengan pertemuan 1\". Anda harus menguraikan aktivitas spesifik yang merupakan kelanjutan materi/proyek di setiap pertemuannya.", meetings)
	}
	return "Buat satu rangkaian kegiatan pembelajaran yang padat dan bermakna sesuai struktur yang diminta."
}

func writeGeneralInfo(b *strings.Builder, d promptData) {
	r := d.req
	b.WriteString("## A. INFORMASI UMUM\n")
	b.WriteString("### 1. Identitas Modul\n")
	b.WriteString("| Komponen | Keterangan |\n| :--- | :--- |\n")
	rows := [][2]string{
		{"Nama Penyusun", r.TeacherName},
		{"Nama Sekolah/Madrasah", r.SchoolName},
		{"Tahun Penyusunan", fmt.Sprint(d.year)},
		{"Jenjang / Kelas", r.GradeLevel},
		{"Mata Pelajaran", r.Subject},
		{"Model Pembelajaran", r.Method},
		{"Dimensi Profil Lulusan", d.dpl},
		{"Tema KBC", d.kbc},
		{"SES Prioritas", d.ses},
		{"Materi Insersi", d.insertion},
		{"Alokasi Waktu", fmt.Sprintf("%s (%d Pertemuan)", r.Duration, d.meetings)},
	}
	for _, row := range rows {
		fmt.Fprintf(b, "| **%s** | %s |\n", row[0], row[1])
	}

	b.WriteString("\n### 2. Kompetensi Awal\n(Tuliskan pengetahuan prasyarat siswa)\n\n")
	b.WriteString("### 3. Dimensi Profil Lulusan\n*(Jelaskan implementasi dimensi berikut terkait materi)*\n")
	fmt.Fprintf(b, "- **%s**\n\n", d.dpl)
	b.WriteString("### 4. Sarana dan Prasarana\n(Alat, bahan, media, dan sumber belajar)\n\n")
	b.WriteString("### 5. Target Peserta Didik\n- Peserta didik reguler/tipikal.\n- Peserta didik dengan pencapaian tinggi.\n")
}

func writeCoreComponents(b *strings.Builder, d promptData) {
	b.WriteString("## B. KOMPONEN INTI\n")
	b.WriteString("### 1. Tujuan Pembelajaran\n")
	fmt.Fprintf(b, "(Rumuskan tujuan yang menggabungkan kompetensi akademis dengan nilai %s dan %s.)\n1. ...\n2. ...\n\n", d.kbc, d.ses)

	b.WriteString("### 2. Indikator Ketercapaian Tujuan Pembelajaran (IKTP)\n")
	b.WriteString("| Ranah | Indikator (KKO Spesifik) |\n| :--- | :--- |\n")
	b.WriteString("| **Pengetahuan (Kognitif)** | (Gunakan KKO C3-C6: Menganalisis, Membuktikan, Memecahkan, Menyimpulkan, dll) |\n")
	b.WriteString("| **Keterampilan (Psikomotor)** | (Gunakan KKO: Mendemonstrasikan, Membuat, Mempraktikkan, Menyajikan, dll) |\n")
	fmt.Fprintf(b, "| **Sikap (Afektif/KBC/SES)** | (Gunakan KKO: Menunjukkan empati, Mengapresiasi, Menjaga, Membiasakan, Menunjukkan %s, dll) |\n\n", d.ses)

	b.WriteString("### 3. Pemahaman Bermakna\n(Manfaat kontekstual + Nilai Insersi)\n\n")
	b.WriteString("### 4. Pertanyaan Pemantik\n(3 pertanyaan memicu rasa ingin tahu)\n\n")

	b.WriteString("### 5. Kegiatan Pembelajaran\n")
	b.WriteString("(Rincikan langkah pembelajaran. **WAJIB:** Masukkan \"Materi Insersi\" di bagian Inti atau Penutup).\n\n")
	writeFirstMeeting(b, d)
	if d.meetings > 1 {
		b.WriteString("\n")
		writeFollowUpMeeting(b, d)
	}

	b.WriteString("\n### 6. Asesmen\n")
	b.WriteString("- **Diagnostik**: (Kesiapan Kognitif & Emosi)\n")
	fmt.Fprintf(b, "- **Formatif**: (Observasi Sikap %s & %s, LKPD)\n", d.dpl, d.ses)
	b.WriteString("- **Sumatif**: (Tes Tertulis/Proyek)\n\n")
	b.WriteString("### 7. Refleksi\n- **Refleksi Guru**: ...\n- **Refleksi Siswa**: ...\n")
}

func writeFirstMeeting(b *strings.Builder, d promptData) {
	b.WriteString("#### Pertemuan 1\n")
	b.WriteString("| Tahapan | Deskripsi Kegiatan (Integrasi KBC & SES) | Alokasi Waktu |\n| :--- | :--- | :--- |\n")
	fmt.Fprintf(b, "| **Pendahuluan** | 1. **Orientasi**: Guru membuka pembelajaran dengan salam, berdoa bersama, dan mengecek kehadiran peserta didik.<br/>"+
		"2. **Apersepsi**: Guru mengaitkan materi pembelajaran yang akan dilakukan dengan pengalaman peserta didik atau materi sebelumnya (Uraikan pertanyaan pemantik yang diajukan).<br/>"+
		"3. **Motivasi**: Memberikan gambaran tentang manfaat mempelajari pelajaran yang akan dipelajari dalam kehidupan sehari-hari.<br/>"+
		"4. **Pemberian Acuan**: Menyampaikan tujuan pembelajaran dan mekanisme pelaksanaan pembelajaran sesuai model %s. | 15 Menit |\n", d.method)
	fmt.Fprintf(b, "| **Inti** | (Uraikan sintaks model %s secara lengkap di sini. Jelaskan bagaimana siswa mengamati, menanya, mengumpulkan informasi, mengasosiasi, dan mengkomunikasikan. "+
		"Tuliskan secara rinci bagaimana guru memfasilitasi diskusi atau proyek. **Minimal 400 kata** untuk bagian ini. **WAJIB Integrasikan:** Nilai %s dan %s dalam proses ini). | ... Menit |\n", d.method, d.kbc, d.ses)
	b.WriteString("| **Penutup** | 1. **Kesimpulan**: Peserta didik bersama guru menyimpulkan poin-poin penting materi.<br/>" +
		"2. **Refleksi**: Guru menanyakan perasaan siswa dan pemahaman mereka terhadap materi.<br/>" +
		"3. **Umpan Balik**: Guru memberikan apresiasi terhadap kinerja siswa.<br/>" +
		"4. **Tindak Lanjut**: Memberikan tugas rumah atau informasi materi pertemuan berikutnya.<br/>" +
		"5. **Penutup**: Doa dan salam penutup. | 15 Menit |\n")
}

// writeFollowUpMeeting shows the shape of meeting 2 and asks for the rest
// to be spelled out the same way.
func writeFollowUpMeeting(b *strings.Builder, d promptData) {
	b.WriteString("#### Pertemuan 2\n")
	b.WriteString("| Tahapan | Deskripsi Kegiatan (Lanjutan / Pendalaman) | Alokasi Waktu |\n| :--- | :--- | :--- |\n")
	b.WriteString("| **Pendahuluan** | 1. **Orientasi**: Guru membuka pembelajaran dengan salam, berdoa, cek kehadiran.<br/>" +
		"2. **Apersepsi**: Mengaitkan dengan materi pertemuan 1.<br/>" +
		"3. **Motivasi**: Menjelaskan tujuan pertemuan ini.<br/>" +
		"4. **Pemberian Acuan**: Mekanisme kegiatan lanjutan. | ... Menit |\n")
	b.WriteString("| **Inti** | (Uraikan kegiatan inti pertemuan 2 secara detil (min 300 kata). Lanjutkan bahasan materi atau presentasi proyek. Jelaskan aktivitas siswa dan guru. Integrasikan KBC/SES) | ... Menit |\n")
	b.WriteString("| **Penutup** | 1. **Kesimpulan**: Menyimpulkan hasil pertemuan ini.<br/>2. **Refleksi**: ...<br/>3. **Umpan Balik**: ...<br/>4. **Tindak Lanjut**: ...<br/>5. **Penutup**: Doa dan salam. | ... Menit |\n\n")
	fmt.Fprintf(b, "*(Lanjutkan tabel yang sama persis untuk Pertemuan 3, dst hingga Pertemuan ke-%d. Pastikan SEMUA pertemuan ditulis LENGKAP)*\n", d.meetings)
}

func writeSignature(b *strings.Builder, d promptData) {
	r := d.req
	b.WriteString("<br/><br/>\n\n")
	fmt.Fprintf(b, "%s**%s, %s**\n\n", AlignRightMarker, r.City, d.date)
	b.WriteString("Mengetahui,\n\n")
	b.WriteString("| Kepala Sekolah/Madrasah | Guru Mata Pelajaran |\n| :---: | :---: |\n")
	b.WriteString("| <br/><br/><br/><br/> | <br/><br/><br/><br/> |\n")
	fmt.Fprintf(b, "| **%s** | **%s** |\n", r.PrincipalName, r.TeacherName)
	fmt.Fprintf(b, "| %s | %s |\n",
		IdentityString(r.PrincipalIDType, r.PrincipalIDNumber),
		IdentityString(r.TeacherIDType, r.TeacherIDNumber))
}

// AlignRightMarker precedes a paragraph that renderers should right-align.
const AlignRightMarker = "<!--ALIGN_RIGHT-->"

// BuildRevisionPrompt asks for current to be rewritten per instruction
// while keeping the document's structure.
func BuildRevisionPrompt(current, instruction string) string {
	var b strings.Builder
	b.WriteString("Saya memiliki Modul Ajar berikut dalam format Markdown:\n\n")
	b.WriteString(current)
	b.WriteString("\n\n---\nINSTRUKSI REVISI:\n")
	fmt.Fprintf(&b, "Tolong tulis ulang bagian tertentu dari modul di atas dengan menerapkan perubahan berikut: \"%s\".\n\n", instruction)
	b.WriteString(`KETENTUAN:
1. Pertahankan struktur utama (A. Informasi Umum, B. Komponen Inti, C. Lampiran) JANGAN MERUBAH FORMAT UTAMA.
2. Outputkan kembali SELURUH modul dalam format Markdown yang rapi.
3. JANGAN GUNAKAN FORMAT LATEX ($...$). Gunakan simbol biasa.
4. Pastikan revisi tetap memperhatikan prinsip KBC dan SES.
`)
	return b.String()
}
