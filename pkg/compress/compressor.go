// Пакет compress — симметричный gzip-кодек для тел сообщений очереди.
// Нужен, когда тело перестаёт помещаться в лимит очереди: продюсер сжимает
// перед отправкой, потребитель разжимает после получения.
// Кодек не хранит состояние и не закрывает переданные ему источники/приёмники.
package compress

import (
	"bytes"
	"compress/gzip"
	"errors"
	"fmt"
	"io"
)

// BufferSize — размер порции при копировании потоков.
const BufferSize = 4 * 1024

// CodecError — ошибка кодека: нечитаемый источник, битый/обрезанный gzip,
// неизвестная кодировка. Частичный результат вместе с ней не возвращается.
type CodecError struct {
	Op  string
	Err error
}

func (e *CodecError) Error() string {
	return fmt.Sprintf("compress: %s: %v", e.Op, e.Err)
}

func (e *CodecError) Unwrap() error { return e.Err }

// Compress сжимает data. Входной срез не изменяется.
func Compress(data []byte) ([]byte, error) {
	return CompressReader(bytes.NewReader(data))
}

// CompressReader сжимает всё содержимое r. r не закрывается.
func CompressReader(r io.Reader) ([]byte, error) {
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)

	if _, err := Copy(zw, r); err != nil {
		_ = zw.Close()
		return nil, &CodecError{Op: "compress", Err: err}
	}

	// Flush + Close до чтения буфера, иначе получим обрезанный кадр без трейлера.
	if err := zw.Flush(); err != nil {
		_ = zw.Close()
		return nil, &CodecError{Op: "compress", Err: err}
	}
	if err := zw.Close(); err != nil {
		return nil, &CodecError{Op: "compress", Err: err}
	}
	return buf.Bytes(), nil
}

// Uncompress разжимает gzip-данные.
func Uncompress(data []byte) ([]byte, error) {
	return UncompressReader(bytes.NewReader(data))
}

// UncompressReader разжимает поток из r. r не закрывается.
func UncompressReader(r io.Reader) ([]byte, error) {
	zr, err := gzip.NewReader(r)
	if err != nil {
		// Пустой вход — тоже не gzip.
		if errors.Is(err, io.EOF) {
			err = io.ErrUnexpectedEOF
		}
		return nil, &CodecError{Op: "uncompress", Err: err}
	}

	var buf bytes.Buffer
	_, copyErr := Copy(&buf, zr)
	closeErr := zr.Close()

	if copyErr != nil {
		return nil, &CodecError{Op: "uncompress", Err: copyErr}
	}
	if closeErr != nil {
		return nil, &CodecError{Op: "uncompress", Err: closeErr}
	}
	// пустой поток — пустой срез, не nil
	out := buf.Bytes()
	if out == nil {
		out = []byte{}
	}
	return out, nil
}

// Copy переносит данные из src в dst порциями по BufferSize.
// Ни src, ни dst не закрываются — жизненным циклом управляет вызывающий.
func Copy(dst io.Writer, src io.Reader) (int64, error) {
	buf := make([]byte, BufferSize)
	var written int64

	for {
		n, readErr := src.Read(buf)
		if n > 0 {
			w, writeErr := dst.Write(buf[:n])
			written += int64(w)
			if writeErr != nil {
				return written, writeErr
			}
			if w != n {
				return written, io.ErrShortWrite
			}
		}
		if readErr == io.EOF {
			return written, nil
		}
		if readErr != nil {
			return written, readErr
		}
	}
}
