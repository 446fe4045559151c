package service

import "testing"

func TestClassifyFileTypeAllowList(t *testing.T) {
	cases := map[string]string{
		".png":  "image/png",
		".jpg":  "image/jpeg",
		".jpeg": "image/jpeg",
		".pdf":  "application/pdf",
	}
	for ext, want := range cases {
		if got := ClassifyFileType(ext); got != want {
			t.Fatalf("ClassifyFileType(%q) = %q, want %q", ext, got, want)
		}
	}
}

func TestClassifyFileTypeCaseInsensitive(t *testing.T) {
	if got := ClassifyFileType(".PDF"); got != "application/pdf" {
		t.Fatalf("ClassifyFileType(.PDF) = %q", got)
	}
	if got := ClassifyFileType(".Jpeg"); got != "image/jpeg" {
		t.Fatalf("ClassifyFileType(.Jpeg) = %q", got)
	}
}

func TestClassifyFileTypeRejectsEverythingElse(t *testing.T) {
	for _, ext := range []string{".gif", ".docx", ".svg", ".pdf.exe", "", "pdf"} {
		if got := ClassifyFileType(ext); got != "" {
			t.Fatalf("ClassifyFileType(%q) = %q, want rejection", ext, got)
		}
	}
}
