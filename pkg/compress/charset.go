package compress

import (
	"encoding/base64"
	"fmt"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
)

// DefaultCharset — кодировка текстовых вариантов по умолчанию.
const DefaultCharset = "utf-8"

// CompressString кодирует s в charset и сжимает результат.
func CompressString(s, charset string) ([]byte, error) {
	raw, err := encodeCharset(s, charset)
	if err != nil {
		return nil, err
	}
	return Compress(raw)
}

// UncompressString — обратная операция к CompressString.
func UncompressString(data []byte, charset string) (string, error) {
	raw, err := Uncompress(data)
	if err != nil {
		return "", err
	}
	return decodeCharset(raw, charset)
}

// EncodeText сжимает s и упаковывает в base64: тело сообщения очереди — всегда текст.
func EncodeText(s, charset string) (string, error) {
	compressed, err := CompressString(s, charset)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(compressed), nil
}

// DecodeText — обратная операция к EncodeText.
func DecodeText(body, charset string) (string, error) {
	compressed, err := base64.StdEncoding.DecodeString(strings.TrimSpace(body))
	if err != nil {
		return "", &CodecError{Op: "decode base64", Err: err}
	}
	return UncompressString(compressed, charset)
}

// lookupCharset возвращает nil для utf-8: строки Go уже в utf-8.
func lookupCharset(charset string) (encoding.Encoding, error) {
	name := strings.ToLower(strings.TrimSpace(charset))
	if name == "" || name == DefaultCharset || name == "utf8" {
		return nil, nil
	}
	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil {
		return nil, &CodecError{Op: "charset", Err: err}
	}
	if enc == nil {
		return nil, &CodecError{Op: "charset", Err: fmt.Errorf("unsupported charset %q", charset)}
	}
	return enc, nil
}

func encodeCharset(s, charset string) ([]byte, error) {
	enc, err := lookupCharset(charset)
	if err != nil {
		return nil, err
	}
	if enc == nil {
		return []byte(s), nil
	}
	out, err := enc.NewEncoder().String(s)
	if err != nil {
		return nil, &CodecError{Op: "encode " + charset, Err: err}
	}
	return []byte(out), nil
}

func decodeCharset(raw []byte, charset string) (string, error) {
	enc, err := lookupCharset(charset)
	if err != nil {
		return "", err
	}
	if enc == nil {
		return string(raw), nil
	}
	out, err := enc.NewDecoder().Bytes(raw)
	if err != nil {
		return "", &CodecError{Op: "decode " + charset, Err: err}
	}
	return string(out), nil
}
