package relay

import (
	"bytes"
	"context"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"wholesale_portal_backend/internal/commerce"
)

func TestTransferPreservesParameterOrderWithFileLast(t *testing.T) {
	var partNames []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, params, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
		if err != nil {
			t.Errorf("bad content type: %v", err)
			return
		}
		reader := multipart.NewReader(r.Body, params["boundary"])
		for {
			part, err := reader.NextPart()
			if err == io.EOF {
				break
			}
			if err != nil {
				t.Errorf("read part: %v", err)
				return
			}
			partNames = append(partNames, part.FormName())
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	target := &commerce.StagedUploadTarget{
		URL: server.URL,
		Parameters: []commerce.StagedUploadParameter{
			{Name: "key", Value: "tmp/1"},
			{Name: "x-goog-credential", Value: "cred"},
			{Name: "policy", Value: "abc"},
			{Name: "signature", Value: "xyz"},
		},
	}

	r := New()
	err := r.Transfer(context.Background(), target, "Acme Tax Exempt Form.pdf", "application/pdf", []byte("%PDF-1.4"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"key", "x-goog-credential", "policy", "signature", "file"}
	if len(partNames) != len(want) {
		t.Fatalf("expected %d parts, got %v", len(want), partNames)
	}
	for i, name := range want {
		if partNames[i] != name {
			t.Fatalf("part %d: expected %q, got %q (signature covers field order)", i, name, partNames[i])
		}
	}
}

func TestTransferFileBytesArriveIntact(t *testing.T) {
	var got []byte
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Errorf("parse form: %v", err)
			return
		}
		file, _, err := r.FormFile("file")
		if err != nil {
			t.Errorf("form file: %v", err)
			return
		}
		defer file.Close()
		got, _ = io.ReadAll(file)
		w.WriteHeader(http.StatusCreated)
	}))
	defer server.Close()

	target := &commerce.StagedUploadTarget{URL: server.URL}
	content := []byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a}

	r := New()
	if err := r.Transfer(context.Background(), target, "form.png", "image/png", content); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.Equal(got, content) {
		t.Fatalf("file bytes corrupted in transit: %v != %v", got, content)
	}
}

func TestTransferNon2xxFails(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte("SignatureDoesNotMatch"))
	}))
	defer server.Close()

	target := &commerce.StagedUploadTarget{URL: server.URL}
	r := New()
	if err := r.Transfer(context.Background(), target, "form.pdf", "application/pdf", []byte("x")); err == nil {
		t.Fatal("expected error on non-2xx target response")
	}
}
