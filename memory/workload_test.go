package memory

import (
	"bytes"
	"path/filepath"
	"slices"
	"strings"
	"testing"
)

func TestWorkloadRoundTrip(t *testing.T) {
	pages := GenerateWorkload(500, 16, 0.6, 42)

	algorithms := []struct {
		name string
		typ  Compression
	}{
		{"None", CompressionNone},
		{"Snappy", CompressionSnappy},
		{"LZ4", CompressionLZ4},
	}

	for _, alg := range algorithms {
		t.Run(alg.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := WriteWorkload(&buf, pages, alg.typ); err != nil {
				t.Fatalf("Write failed: %v", err)
			}

			if got := detectCompressionOf(buf.Bytes()); got != alg.typ {
				t.Errorf("Expected stream detected as %s, got %s", alg.typ, got)
			}

			loaded, err := ReadWorkload(&buf)
			if err != nil {
				t.Fatalf("Read failed: %v", err)
			}
			if !slices.Equal(loaded, pages) {
				t.Error("Workload mismatch after round trip")
			}
		})
	}
}

func detectCompressionOf(data []byte) Compression {
	switch {
	case bytes.HasPrefix(data, snappyMagic):
		return CompressionSnappy
	case bytes.HasPrefix(data, lz4Magic):
		return CompressionLZ4
	default:
		return CompressionNone
	}
}

func TestReadWorkloadPlainText(t *testing.T) {
	input := "7, 0, 1\n2 0 3\n\n0,4"
	pages, err := ReadWorkload(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}

	expected := []int{7, 0, 1, 2, 0, 3, 0, 4}
	if !slices.Equal(pages, expected) {
		t.Errorf("Expected %v, got %v", expected, pages)
	}
}

func TestReadWorkloadEmpty(t *testing.T) {
	pages, err := ReadWorkload(strings.NewReader(""))
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if len(pages) != 0 {
		t.Errorf("Expected empty stream, got %v", pages)
	}
}

func TestReadWorkloadBadToken(t *testing.T) {
	_, err := ReadWorkload(strings.NewReader("1,2,x"))
	if !IsErrorCode(err, ErrCodeInvalidInput) {
		t.Errorf("Expected invalid input error, got %v", err)
	}
}

func TestReadWorkloadCorrupted(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteWorkload(&buf, []int{1, 2, 3, 4, 5}, CompressionSnappy); err != nil {
		t.Fatal(err)
	}

	// Keep the stream identifier, damage the data chunk
	data := buf.Bytes()
	for i := len(snappyMagic) + 4; i < len(data); i++ {
		data[i] ^= 0xff
	}

	_, err := ReadWorkload(bytes.NewReader(data))
	if !IsErrorCode(err, ErrCodeWorkloadCorrupted) {
		t.Errorf("Expected corrupted workload error, got %v", err)
	}
}

func TestSaveLoadWorkload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "refs.lz4")
	pages := []int{1, 2, 3, 4, 1, 2, 5, 1, 2, 3, 4, 5}

	if err := SaveWorkload(path, pages, CompressionLZ4); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := LoadWorkload(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !slices.Equal(loaded, pages) {
		t.Errorf("Expected %v, got %v", pages, loaded)
	}

	if _, err := LoadWorkload(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Error("Expected error for missing workload file")
	}
}

func TestWriteWorkloadUnsupported(t *testing.T) {
	var buf bytes.Buffer
	err := WriteWorkload(&buf, []int{1}, Compression(9))
	if !IsErrorCode(err, ErrCodeUnsupportedCompression) {
		t.Errorf("Expected unsupported compression error, got %v", err)
	}
}

func TestParseCompression(t *testing.T) {
	for _, c := range []Compression{CompressionNone, CompressionSnappy, CompressionLZ4} {
		got, err := ParseCompression(c.String())
		if err != nil || got != c {
			t.Errorf("ParseCompression(%q) = %v, %v", c.String(), got, err)
		}
	}
	if _, err := ParseCompression("zstd"); !IsErrorCode(err, ErrCodeUnsupportedCompression) {
		t.Errorf("Expected unsupported compression error, got %v", err)
	}
}

func TestGenerateWorkload(t *testing.T) {
	a := GenerateWorkload(200, 10, 0.5, 3)
	b := GenerateWorkload(200, 10, 0.5, 3)

	if !slices.Equal(a, b) {
		t.Error("Same seed should generate the same stream")
	}
	if len(a) != 200 {
		t.Errorf("Expected 200 references, got %d", len(a))
	}
	for _, p := range a {
		if p < 0 || p >= 10 {
			t.Fatalf("Page %d outside 0..9", p)
		}
	}

	if got := GenerateWorkload(0, 10, 0.5, 3); len(got) != 0 {
		t.Errorf("Expected empty stream, got %v", got)
	}

	// Full locality only ever repeats the first page
	for _, p := range GenerateWorkload(50, 10, 1.0, 9)[1:] {
		if p != GenerateWorkload(1, 10, 1.0, 9)[0] {
			t.Fatal("Expected every reference to repeat the first page")
		}
	}
}
