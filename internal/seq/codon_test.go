package seq

import "testing"

func TestTranslateCodon(t *testing.T) {
	tests := []struct {
		name  string
		codon string
		want  byte
		ok    bool
	}{
		{"AUG -> Met (start)", "AUG", 'M', true},
		{"GCU -> Ala", "GCU", 'A', true},
		{"CUU -> Leu", "CUU", 'L', true},
		{"AUU -> Ile", "AUU", 'I', true},

		{"UAA -> stop", "UAA", '*', true},
		{"UAG -> stop", "UAG", '*', true},
		{"UGA -> stop", "UGA", '*', true},

		{"DNA codon not in RNA table", "ATG", 0, false},
		{"too short", "AU", 0, false},
		{"empty", "", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := TranslateCodon(tt.codon)
			if ok != tt.ok || (ok && got != tt.want) {
				t.Errorf("TranslateCodon(%q) = %c, %v; want %c, %v", tt.codon, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestCodonPredicates(t *testing.T) {
	if !IsStartCodon("AUG") {
		t.Error("IsStartCodon(AUG) = false")
	}
	if IsStartCodon("GUG") {
		t.Error("IsStartCodon(GUG) = true")
	}
	for _, stop := range []string{"UAA", "UAG", "UGA"} {
		if !IsStopCodon(stop) {
			t.Errorf("IsStopCodon(%s) = false", stop)
		}
	}
	if IsStopCodon("UGG") {
		t.Error("IsStopCodon(UGG) = true")
	}
}

func TestTranslateORF(t *testing.T) {
	tests := []struct {
		name string
		orf  string
		want string
	}{
		{"stops before stop codon", "AUGGCUUAA", "MA"},
		{"no stop", "AUGGCU", "MA"},
		{"trailing partial codon skipped", "AUGGCUUA", "MA"},
		{"stop mid-sequence halts", "AUGUAAGCU", "M"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TranslateORF(tt.orf); got != tt.want {
				t.Errorf("TranslateORF(%q) = %q, want %q", tt.orf, got, tt.want)
			}
		})
	}
}
