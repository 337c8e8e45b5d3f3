package sigv4

import (
	"net/http"
	"strings"
	"testing"
	"time"
)

// Well-known SHA-256 of the empty string.
const emptyHash = "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"

func TestHashHexEmpty(t *testing.T) {
	if got := hashHex(nil); got != emptyHash {
		t.Errorf("expected %s, got %s", emptyHash, got)
	}
}

func newTestRequest(t *testing.T) *http.Request {
	t.Helper()
	req, err := http.NewRequest(http.MethodPost, "https://iam.amazonaws.com/", strings.NewReader("Action=ListUsers"))
	if err != nil {
		t.Fatalf("failed to build request: %v", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded; charset=utf-8")
	return req
}

func TestSignSetsHeaders(t *testing.T) {
	signer := NewSigner(Credentials{AccessKeyID: "AKID", SecretAccessKey: "secret"}, "us-east-1", "iam")
	req := newTestRequest(t)
	now := time.Date(2015, 8, 30, 12, 36, 0, 0, time.UTC)

	if err := signer.Sign(req, []byte("Action=ListUsers"), now); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := req.Header.Get("X-Amz-Date"); got != "20150830T123600Z" {
		t.Errorf("unexpected X-Amz-Date: %q", got)
	}

	auth := req.Header.Get("Authorization")
	if !strings.HasPrefix(auth, "AWS4-HMAC-SHA256 Credential=AKID/20150830/us-east-1/iam/aws4_request, ") {
		t.Errorf("unexpected Authorization prefix: %q", auth)
	}
	if !strings.Contains(auth, "SignedHeaders=content-type;host;x-amz-date, ") {
		t.Errorf("unexpected signed headers: %q", auth)
	}
	if !strings.Contains(auth, "Signature=") {
		t.Errorf("missing signature: %q", auth)
	}
}

func TestSignIsDeterministic(t *testing.T) {
	signer := NewSigner(Credentials{AccessKeyID: "AKID", SecretAccessKey: "secret"}, "us-east-1", "iam")
	now := time.Date(2015, 8, 30, 12, 36, 0, 0, time.UTC)

	first := newTestRequest(t)
	second := newTestRequest(t)
	if err := signer.Sign(first, []byte("Action=ListUsers"), now); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := signer.Sign(second, []byte("Action=ListUsers"), now); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first.Header.Get("Authorization") != second.Header.Get("Authorization") {
		t.Error("same input should produce the same signature")
	}

	third := newTestRequest(t)
	if err := signer.Sign(third, []byte("Action=ListGroups"), now); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first.Header.Get("Authorization") == third.Header.Get("Authorization") {
		t.Error("different bodies should produce different signatures")
	}
}

func TestCanonicalRequestShape(t *testing.T) {
	req, err := http.NewRequest(http.MethodPost, "https://iam.amazonaws.com/", nil)
	if err != nil {
		t.Fatalf("failed to build request: %v", err)
	}
	req.Header.Set("X-Amz-Date", "20150830T123600Z")

	canonical, signedHeaders := canonicalRequest(req, nil)
	want := "POST\n/\n\nhost:iam.amazonaws.com\nx-amz-date:20150830T123600Z\n\nhost;x-amz-date\n" + emptyHash
	if canonical != want {
		t.Errorf("canonical request mismatch:\nwant %q\ngot  %q", want, canonical)
	}
	if signedHeaders != "host;x-amz-date" {
		t.Errorf("unexpected signed headers %q", signedHeaders)
	}
}

func TestCanonicalQuerySortsAndEscapes(t *testing.T) {
	req, err := http.NewRequest(http.MethodGet, "https://iam.amazonaws.com/?b=2&a=1&a=0&sp=a%20b", nil)
	if err != nil {
		t.Fatalf("failed to build request: %v", err)
	}
	got := canonicalQuery(req.URL.Query())
	want := "a=0&a=1&b=2&sp=a%20b"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestSignRejectsHostlessRequest(t *testing.T) {
	signer := NewSigner(Credentials{}, "us-east-1", "iam")
	req := &http.Request{Header: http.Header{}}
	if err := signer.Sign(req, nil, time.Now()); err == nil {
		t.Error("expected error for request without host")
	}
}
