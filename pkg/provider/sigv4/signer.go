package sigv4

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"
)

const (
	algorithm  = "AWS4-HMAC-SHA256"
	timeFormat = "20060102T150405Z"
	dateFormat = "20060102"
)

// Credentials is the signing key pair for provider requests.
type Credentials struct {
	AccessKeyID     string
	SecretAccessKey string
}

// Signer signs HTTP requests with the provider's Signature Version 4
// scheme.
type Signer struct {
	credentials Credentials
	region      string
	service     string
}

// NewSigner creates a signer for one region/service pair.
func NewSigner(credentials Credentials, region, service string) *Signer {
	return &Signer{
		credentials: credentials,
		region:      region,
		service:     service,
	}
}

// Sign computes the request signature over the given body and sets the
// X-Amz-Date and Authorization headers. The request's Host and Content-Type
// must be final before signing; changing either afterwards invalidates the
// signature.
func (s *Signer) Sign(req *http.Request, body []byte, now time.Time) error {
	if req.URL == nil || req.URL.Host == "" {
		return fmt.Errorf("request has no host to sign")
	}

	now = now.UTC()
	amzDate := now.Format(timeFormat)
	shortDate := now.Format(dateFormat)

	req.Header.Set("X-Amz-Date", amzDate)

	canonicalReq, signedHeaders := canonicalRequest(req, body)
	scope := strings.Join([]string{shortDate, s.region, s.service, "aws4_request"}, "/")
	stringToSign := strings.Join([]string{
		algorithm,
		amzDate,
		scope,
		hashHex([]byte(canonicalReq)),
	}, "\n")

	signature := hex.EncodeToString(hmacSHA256(s.signingKey(shortDate), []byte(stringToSign)))

	req.Header.Set("Authorization", fmt.Sprintf(
		"%s Credential=%s/%s, SignedHeaders=%s, Signature=%s",
		algorithm, s.credentials.AccessKeyID, scope, signedHeaders, signature,
	))
	return nil
}

// signingKey derives the date-scoped signing key from the secret key.
func (s *Signer) signingKey(shortDate string) []byte {
	key := hmacSHA256([]byte("AWS4"+s.credentials.SecretAccessKey), []byte(shortDate))
	key = hmacSHA256(key, []byte(s.region))
	key = hmacSHA256(key, []byte(s.service))
	return hmacSHA256(key, []byte("aws4_request"))
}

// canonicalRequest builds the canonical request string and the
// semicolon-joined signed-header list.
func canonicalRequest(req *http.Request, body []byte) (string, string) {
	headers := map[string]string{
		"host": req.URL.Host,
	}
	if ct := req.Header.Get("Content-Type"); ct != "" {
		headers["content-type"] = ct
	}
	if date := req.Header.Get("X-Amz-Date"); date != "" {
		headers["x-amz-date"] = date
	}

	names := make([]string, 0, len(headers))
	for name := range headers {
		names = append(names, name)
	}
	sort.Strings(names)

	var headerLines strings.Builder
	for _, name := range names {
		headerLines.WriteString(name)
		headerLines.WriteString(":")
		headerLines.WriteString(strings.TrimSpace(headers[name]))
		headerLines.WriteString("\n")
	}
	signedHeaders := strings.Join(names, ";")

	path := req.URL.EscapedPath()
	if path == "" {
		path = "/"
	}

	canonical := strings.Join([]string{
		req.Method,
		path,
		canonicalQuery(req.URL.Query()),
		headerLines.String(),
		signedHeaders,
		hashHex(body),
	}, "\n")
	return canonical, signedHeaders
}

// canonicalQuery sorts and re-encodes the query string the way the
// provider's signature scheme expects (space as %20, keys sorted).
func canonicalQuery(values url.Values) string {
	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var parts []string
	for _, key := range keys {
		sorted := append([]string(nil), values[key]...)
		sort.Strings(sorted)
		for _, value := range sorted {
			parts = append(parts, escape(key)+"="+escape(value))
		}
	}
	return strings.Join(parts, "&")
}

func escape(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

func hashHex(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

func hmacSHA256(key, data []byte) []byte {
	mac := hmac.New(sha256.New, key)
	mac.Write(data)
	return mac.Sum(nil)
}
