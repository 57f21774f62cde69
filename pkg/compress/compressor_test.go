package compress_test

import (
	"bytes"
	"errors"
	"io"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Gunvolt24/sqs_consumer/pkg/compress"
)

// Круговой проход для разных размеров, включая пустой вход и размеры около BufferSize.
func TestCompressUncompress_RoundTrip(t *testing.T) {
	t.Parallel()

	rnd := rand.New(rand.NewSource(42))
	sizes := []int{0, 1, 17, compress.BufferSize - 1, compress.BufferSize, compress.BufferSize + 1, 5*compress.BufferSize + 123}

	for _, n := range sizes {
		data := make([]byte, n)
		_, _ = rnd.Read(data)

		compressed, err := compress.Compress(data)
		require.NoError(t, err, "size=%d", n)

		got, err := compress.Uncompress(compressed)
		require.NoError(t, err, "size=%d", n)

		if !bytes.Equal(got, data) {
			t.Fatalf("round trip mismatch for size=%d", n)
		}
	}
}

func TestUncompress_EmptyPayload_NonNil(t *testing.T) {
	t.Parallel()

	compressed, err := compress.Compress(nil)
	require.NoError(t, err)

	got, err := compress.Uncompress(compressed)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, []byte{}, got)
}

func TestCompress_DoesNotMutateInput(t *testing.T) {
	t.Parallel()

	data := []byte(strings.Repeat("abc", 1000))
	orig := append([]byte(nil), data...)

	_, err := compress.Compress(data)
	require.NoError(t, err)
	require.Equal(t, orig, data)
}

func TestUncompress_Malformed_ReturnsCodecError(t *testing.T) {
	t.Parallel()

	valid, err := compress.Compress([]byte(strings.Repeat("payload ", 200)))
	require.NoError(t, err)

	tests := []struct {
		name  string
		input []byte
	}{
		{"empty", nil},
		{"short garbage", []byte("nope")},
		{"plain text", []byte("this is definitely not a gzip stream")},
		{"truncated", valid[:len(valid)-6]},
		{"header only", valid[:10]},
		{"trailing garbage", append(append([]byte(nil), valid...), []byte("garbage!!!")...)},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := compress.Uncompress(tt.input)
			if err == nil {
				t.Fatalf("expected error, got %d bytes", len(got))
			}
			var codecErr *compress.CodecError
			if !errors.As(err, &codecErr) {
				t.Fatalf("want *CodecError, got %T: %v", err, err)
			}
			if got != nil {
				t.Fatalf("partial output must not be returned, got %d bytes", len(got))
			}
		})
	}
}

type failingReader struct{ err error }

func (r failingReader) Read([]byte) (int, error) { return 0, r.err }

func TestCompressReader_UnreadableSource(t *testing.T) {
	t.Parallel()

	boom := errors.New("disk gone")
	_, err := compress.CompressReader(failingReader{err: boom})

	var codecErr *compress.CodecError
	require.ErrorAs(t, err, &codecErr)
	require.ErrorIs(t, err, boom)
	require.Equal(t, "compress", codecErr.Op)
}

// chunkRecorder запоминает размеры записей.
type chunkRecorder struct {
	bytes.Buffer
	chunks []int
}

func (w *chunkRecorder) Write(p []byte) (int, error) {
	w.chunks = append(w.chunks, len(p))
	return w.Buffer.Write(p)
}

func TestCopy_FixedChunks_NoClose(t *testing.T) {
	t.Parallel()

	data := bytes.Repeat([]byte{'x'}, 2*compress.BufferSize+10)
	// iotest-подобный ридер: отдаёт данные целиком, но Copy обязан резать порциями.
	src := bytes.NewReader(data)
	dst := &chunkRecorder{}

	n, err := compress.Copy(dst, src)
	require.NoError(t, err)
	require.EqualValues(t, len(data), n)
	require.Equal(t, data, dst.Bytes())

	for _, c := range dst.chunks {
		if c > compress.BufferSize {
			t.Fatalf("chunk %d exceeds BufferSize", c)
		}
	}

	// Источник не закрыт и остаётся читаемым (на EOF).
	if _, err := src.Read(make([]byte, 1)); err != io.EOF {
		t.Fatalf("want EOF from drained source, got %v", err)
	}
}

type shortWriter struct{}

func (shortWriter) Write(p []byte) (int, error) { return len(p) / 2, nil }

func TestCopy_ShortWrite(t *testing.T) {
	t.Parallel()

	_, err := compress.Copy(shortWriter{}, strings.NewReader("0123456789"))
	require.ErrorIs(t, err, io.ErrShortWrite)
}
