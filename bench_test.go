package regix_test

import (
	"testing"

	"github.com/coregx/regix"
)

// BenchmarkMatchLiteral measures the comparison fast path on a fully
// literal pattern.
func BenchmarkMatchLiteral(b *testing.B) {
	p := regix.MustCompile("uwu")
	input := []byte("uwu")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if !p.MatchesFully(input) {
			b.Fatal("unexpected mismatch")
		}
	}
}

// BenchmarkMatchBacktracker measures the evaluator with the prefilter
// disabled, so every call walks the tree.
func BenchmarkMatchBacktracker(b *testing.B) {
	config := regix.DefaultConfig()
	config.EnablePrefilter = false
	p, err := regix.CompileWithConfig("(colou?r)+", config)
	if err != nil {
		b.Fatal(err)
	}
	input := []byte("colorcolourcolor")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if !p.MatchesFully(input) {
			b.Fatal("unexpected mismatch")
		}
	}
}

// BenchmarkPrefilterReject measures the Aho-Corasick reject path on
// input containing no candidate literal.
func BenchmarkPrefilterReject(b *testing.B) {
	p := regix.MustCompile("colou?r")
	input := []byte("zzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzz")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if p.MatchesFully(input) {
			b.Fatal("unexpected match")
		}
	}
}

// BenchmarkMatchCaptures measures a capturing match with a repeated
// group.
func BenchmarkMatchCaptures(b *testing.B) {
	p := regix.MustCompile(`(\d)+`)
	input := []byte("123456789")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if m := p.Match(input); m == nil {
			b.Fatal("unexpected mismatch")
		}
	}
}

// BenchmarkCompile measures end-to-end compilation.
func BenchmarkCompile(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := regix.Compile(`(a|b)+c?(\d\d)`); err != nil {
			b.Fatal(err)
		}
	}
}
