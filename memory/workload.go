package memory

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"math"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"unicode"

	"github.com/golang/snappy"
	"github.com/pierrec/lz4/v4"
)

// Compression represents the algorithm a workload file is stored with
type Compression uint8

const (
	CompressionNone   Compression = 0
	CompressionSnappy Compression = 1
	CompressionLZ4    Compression = 2
)

// Workload stream signatures:
// snappy framed streams open with the stream identifier chunk
// (ff 06 00 00 "sNaPpY"), LZ4 frames with magic 0x184D2204 (little endian).
var (
	snappyMagic = []byte("\xff\x06\x00\x00sNaPpY")
	lz4Magic    = []byte{0x04, 0x22, 0x4d, 0x18}
)

func (c Compression) String() string {
	switch c {
	case CompressionNone:
		return "none"
	case CompressionSnappy:
		return "snappy"
	case CompressionLZ4:
		return "lz4"
	default:
		return fmt.Sprintf("compression(%d)", uint8(c))
	}
}

// ParseCompression maps "none", "snappy" or "lz4" to a Compression
func ParseCompression(name string) (Compression, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "none":
		return CompressionNone, nil
	case "snappy":
		return CompressionSnappy, nil
	case "lz4":
		return CompressionLZ4, nil
	default:
		return CompressionNone, NewSimError(
			ErrCodeUnsupportedCompression,
			"ParseCompression",
			fmt.Sprintf("unsupported compression %q", name),
			nil,
		)
	}
}

// WriteWorkload writes a page reference stream as comma-separated text,
// optionally compressed
func WriteWorkload(w io.Writer, pages []int, c Compression) error {
	payload := []byte(FormatIntList(pages) + "\n")

	switch c {
	case CompressionNone:
		_, err := w.Write(payload)
		return err

	case CompressionSnappy:
		sw := snappy.NewBufferedWriter(w)
		if _, err := sw.Write(payload); err != nil {
			sw.Close()
			return fmt.Errorf("snappy compression failed: %w", err)
		}
		if err := sw.Close(); err != nil {
			return fmt.Errorf("snappy compression failed: %w", err)
		}
		return nil

	case CompressionLZ4:
		zw := lz4.NewWriter(w)
		if _, err := zw.Write(payload); err != nil {
			zw.Close()
			return fmt.Errorf("LZ4 compression failed: %w", err)
		}
		if err := zw.Close(); err != nil {
			return fmt.Errorf("LZ4 compression failed: %w", err)
		}
		return nil

	default:
		return NewSimError(
			ErrCodeUnsupportedCompression,
			"WriteWorkload",
			fmt.Sprintf("unsupported compression type: %d", c),
			nil,
		)
	}
}

// ReadWorkload reads a page reference stream written by WriteWorkload.
// The compression is detected from the stream signature. Plain streams may
// separate pages with commas, spaces or newlines.
func ReadWorkload(r io.Reader) ([]int, error) {
	br := bufio.NewReader(r)
	c := detectCompression(br)

	var src io.Reader
	switch c {
	case CompressionSnappy:
		src = snappy.NewReader(br)
	case CompressionLZ4:
		src = lz4.NewReader(br)
	default:
		src = br
	}

	data, err := io.ReadAll(src)
	if err != nil {
		return nil, ErrWorkloadCorrupted("ReadWorkload", fmt.Errorf("%s stream: %w", c, err))
	}

	return parseWorkload(data)
}

// detectCompression peeks at the head of the stream without consuming it
func detectCompression(br *bufio.Reader) Compression {
	if head, _ := br.Peek(len(snappyMagic)); bytes.Equal(head, snappyMagic) {
		return CompressionSnappy
	}
	if head, _ := br.Peek(len(lz4Magic)); bytes.Equal(head, lz4Magic) {
		return CompressionLZ4
	}
	return CompressionNone
}

func parseWorkload(data []byte) ([]int, error) {
	fields := strings.FieldsFunc(string(data), func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})

	pages := make([]int, 0, len(fields))
	for i, field := range fields {
		page, err := strconv.Atoi(field)
		if err != nil {
			return nil, ErrInvalidInput("ReadWorkload", fmt.Sprintf("reference %d (%q) is not an integer", i+1, field), err)
		}
		pages = append(pages, page)
	}
	return pages, nil
}

// LoadWorkload reads a reference stream from a file
func LoadWorkload(path string) ([]int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workload file: %w", err)
	}
	defer f.Close()

	return ReadWorkload(f)
}

// SaveWorkload writes a reference stream to a file
func SaveWorkload(path string, pages []int, c Compression) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create workload file: %w", err)
	}

	if err := WriteWorkload(f, pages, c); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}

// recentWindow is how far back GenerateWorkload looks for re-references
const recentWindow = 4

// GenerateWorkload builds a deterministic synthetic reference stream over
// pages 0..distinct-1. With probability locality each reference repeats one
// of the last few pages, otherwise it draws a page uniformly.
func GenerateWorkload(length, distinct int, locality float64, seed int64) []int {
	if length <= 0 {
		return []int{}
	}
	if distinct < 1 {
		distinct = 1
	}
	locality = math.Max(0, math.Min(1, locality))

	rng := rand.New(rand.NewSource(seed))
	pages := make([]int, 0, length)
	for i := 0; i < length; i++ {
		if i > 0 && rng.Float64() < locality {
			window := min(i, recentWindow)
			pages = append(pages, pages[i-1-rng.Intn(window)])
			continue
		}
		pages = append(pages, rng.Intn(distinct))
	}
	return pages
}
