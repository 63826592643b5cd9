package lessonplan

// Dimensi Profil Lulusan (graduate profile dimensions).
var DPLOptions = []string{
	"Beriman & Bertakwa",
	"Berakhlak Mulia",
	"Bernalar Kritis",
	"Kreatif",
	"Mandiri",
	"Bergotong Royong",
	"Berkebinekaan Global",
	"Berkeadaban (Ta'addub)",
}

// Kurikulum Berbasis Cinta themes.
var KBCOptions = []string{
	"Cinta Allah",
	"Cinta Ilmu",
	"Cinta Sesama",
	"Cinta Alam",
	"Cinta Bangsa",
}

// Social-emotional skill priorities.
var SESOptions = []string{
	"Kontrol Diri",
	"Tanggung Jawab",
	"Gigih",
	"Optimisme",
	"Empati",
	"Toleransi",
	"Mudah Bergaul",
}

// MethodOptions lists the supported pedagogical models.
var MethodOptions = []string{
	"Problem Based Learning (PBL)",
	"Project Based Learning (PjBL)",
	"Discovery Learning",
	"Inquiry Learning",
	"Pembelajaran Berdiferensiasi",
	"Flipped Classroom",
	"Gamifikasi (Game Based Learning)",
	"Blended Learning",
}

// GradeLevelOptions lists curriculum phases with their grades.
var GradeLevelOptions = []string{
	"Fase A (Kelas 1 SD)",
	"Fase A (Kelas 2 SD)",
	"Fase B (Kelas 3 SD)",
	"Fase B (Kelas 4 SD)",
	"Fase C (Kelas 5 SD)",
	"Fase C (Kelas 6 SD)",
	"Fase D (Kelas 7 SMP)",
	"Fase D (Kelas 8 SMP)",
	"Fase D (Kelas 9 SMP)",
	"Fase E (Kelas 10 SMA)",
	"Fase F (Kelas 11 SMA)",
	"Fase F (Kelas 12 SMA)",
}

var SemesterOptions = []string{
	"1 (Ganjil)",
	"2 (Genap)",
}

// IDTypeOptions lists the staff identity number kinds. The empty string
// means the person has no typed identity number.
var IDTypeOptions = []string{"NIP", "NIPPPK", "NIY", "NUPTK", ""}

// OptionsFor returns the label catalog backing a set-valued field.
func OptionsFor(f SetField) []string {
	switch f {
	case SetDPL:
		return DPLOptions
	case SetKBCTheme:
		return KBCOptions
	case SetSESPriority:
		return SESOptions
	}
	return nil
}
