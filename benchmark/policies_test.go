package benchmark

import (
	"fmt"
	"net/http"
	"os"
	"testing"
)

// Benchmarks against a running server:
//
//	cloudiamctl server &
//	CLOUDIAM_BENCH_TOKEN=$(sign-a-token) go test -bench . ./benchmark/...

func benchToken(b *testing.B) string {
	token := os.Getenv("CLOUDIAM_BENCH_TOKEN")
	if token == "" {
		b.Skip("CLOUDIAM_BENCH_TOKEN is required")
	}
	return token
}

func BenchmarkListPoliciesHandler(b *testing.B) {
	token := benchToken(b)

	b.Run("GET /policies", func(b *testing.B) {
		b.ReportAllocs()
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			r, _ := http.NewRequest("GET", "http://localhost:8090/policies", nil)
			r.Header.Add("Authorization", fmt.Sprintf("Bearer %s", token))
			_, _ = http.DefaultClient.Do(r)
		}
	})

	b.Run("GET /policies?scope=account", func(b *testing.B) {
		b.ReportAllocs()
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			r, _ := http.NewRequest("GET", "http://localhost:8090/policies?scope=account", nil)
			r.Header.Add("Authorization", fmt.Sprintf("Bearer %s", token))
			_, _ = http.DefaultClient.Do(r)
		}
	})
}

func BenchmarkListUsersHandler(b *testing.B) {
	token := benchToken(b)

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		r, _ := http.NewRequest("GET", "http://localhost:8090/users", nil)
		r.Header.Add("Authorization", fmt.Sprintf("Bearer %s", token))
		_, _ = http.DefaultClient.Do(r)
	}
}
