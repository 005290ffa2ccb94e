package helper

import "testing"

func TestIsAllowedDocumentExt(t *testing.T) {
	cases := []struct {
		filename string
		want     bool
	}{
		{"comprovante.pdf", true},
		{"recibo.PDF", true},
		{"foto.jpg", true},
		{"foto.jpeg", true},
		{"logo.png", true},
		{"anim.gif", true},
		{"planilha.xls", true},
		{"planilha.xlsx", true},
		{"script.sh", false},
		{"malware.exe", false},
		{"sem_extensao", false},
		{"", false},
	}
	for _, tc := range cases {
		if got := IsAllowedDocumentExt(tc.filename); got != tc.want {
			t.Errorf("IsAllowedDocumentExt(%q) = %v, esperado %v", tc.filename, got, tc.want)
		}
	}
}
