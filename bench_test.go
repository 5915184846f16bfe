package lzvar

import (
	"bytes"
	"compress/flate"
	"io"
	"math/rand"
	"strings"
	"testing"

	"github.com/klauspost/compress/zstd"
)

const benchAlphabet = "abcdefghijklmnopqrstuvwxyz "

// benchText builds word-shaped input: skewed phrase frequencies with a
// drifting distribution, the workload the adaptive policies exist for.
func benchText(n int) []byte {
	words := []string{"the", "quick", "brown", "fox", "jumps", "over", "lazy", "dog",
		"compression", "dictionary", "phrase", "codeword", "adaptive", "stream"}
	rng := rand.New(rand.NewSource(42))
	var sb strings.Builder
	for sb.Len() < n {
		// Zipf-ish: low indexes dominate, and the window drifts.
		base := (sb.Len() / (n / 4)) * 3 % len(words)
		w := words[(base+rng.Intn(rng.Intn(len(words)-1)+1))%len(words)]
		sb.WriteString(w)
		sb.WriteByte(' ')
	}
	return []byte(sb.String()[:n])
}

func benchEncoder(b *testing.B, policy Policy) *Encoder {
	b.Helper()
	a, err := NewAlphabet([]byte(benchAlphabet))
	if err != nil {
		b.Fatal(err)
	}
	enc, err := NewEncoder(a, WithWidthRange(5, 12), WithPolicy(policy))
	if err != nil {
		b.Fatal(err)
	}
	return enc
}

func BenchmarkCompress(b *testing.B) {
	data := benchText(1 << 20)
	for _, policy := range allPolicies {
		b.Run(policy.String(), func(b *testing.B) {
			enc := benchEncoder(b, policy)
			b.SetBytes(int64(len(data)))
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if err := enc.Compress(io.Discard, bytes.NewReader(data)); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkExpand(b *testing.B) {
	data := benchText(1 << 20)
	for _, policy := range allPolicies {
		b.Run(policy.String(), func(b *testing.B) {
			enc := benchEncoder(b, policy)
			var stream bytes.Buffer
			if err := enc.Compress(&stream, bytes.NewReader(data)); err != nil {
				b.Fatal(err)
			}
			b.SetBytes(int64(len(data)))
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if err := Expand(io.Discard, bytes.NewReader(stream.Bytes())); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

// Baselines on the same input, for orientation rather than competition.

func BenchmarkCompressFlate(b *testing.B) {
	data := benchText(1 << 20)
	w, err := flate.NewWriter(io.Discard, flate.DefaultCompression)
	if err != nil {
		b.Fatal(err)
	}
	b.SetBytes(int64(len(data)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		w.Reset(io.Discard)
		if _, err := w.Write(data); err != nil {
			b.Fatal(err)
		}
		if err := w.Close(); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkCompressZstd(b *testing.B) {
	data := benchText(1 << 20)
	enc, err := zstd.NewWriter(nil)
	if err != nil {
		b.Fatal(err)
	}
	defer enc.Close()
	var out []byte
	b.SetBytes(int64(len(data)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		out = enc.EncodeAll(data, out[:0])
	}
	_ = out
}
