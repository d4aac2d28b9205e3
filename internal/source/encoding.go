// Package source приводит входные документы (текст в разных кодировках,
// HTML-страницы, таблицы Excel) к строкам UTF-8 для экстрактора и
// выгружает результаты в Excel.
package source

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// Поддерживаемые кодировки
const (
	EncodingAuto        = "auto"
	EncodingUTF8        = "utf-8"
	EncodingWindows1251 = "windows-1251"
	EncodingKOI8R       = "koi8-r"
	EncodingISO88595    = "iso-8859-5"
)

var (
	// ErrUnknownEncoding кодировка не поддерживается
	ErrUnknownEncoding = errors.New("unknown encoding")
	// ErrInvalidUTF8 данные объявлены как UTF-8, но содержат недопустимые последовательности
	ErrInvalidUTF8 = errors.New("invalid utf-8 data")
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// однобайтовые кириллические кодировки в порядке приоритета при автоопределении;
// Windows-1251 первой, как самая частая для русских документов
var cyrillicEncodings = []struct {
	name string
	enc  encoding.Encoding
}{
	{EncodingWindows1251, charmap.Windows1251},
	{EncodingKOI8R, charmap.KOI8R},
	{EncodingISO88595, charmap.ISO8859_5},
}

// NormalizeEncodingName приводит название кодировки к каноническому виду
func NormalizeEncodingName(name string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", EncodingAuto:
		return EncodingAuto, nil
	case EncodingUTF8, "utf8":
		return EncodingUTF8, nil
	case EncodingWindows1251, "cp1251", "windows1251":
		return EncodingWindows1251, nil
	case EncodingKOI8R, "koi8r":
		return EncodingKOI8R, nil
	case EncodingISO88595, "iso8859-5":
		return EncodingISO88595, nil
	}
	return "", fmt.Errorf("%w: %s", ErrUnknownEncoding, name)
}

// Decode переводит данные в UTF-8. В режиме auto корректный UTF-8 возвращается
// как есть, иначе выбирается однобайтовая кодировка, дающая больше всего
// строчных кириллических букв.
func Decode(data []byte, name string) (string, error) {
	enc, err := NormalizeEncodingName(name)
	if err != nil {
		return "", err
	}

	switch enc {
	case EncodingUTF8:
		data = bytes.TrimPrefix(data, utf8BOM)
		if !utf8.Valid(data) {
			return "", ErrInvalidUTF8
		}
		return string(data), nil
	case EncodingAuto:
		if utf8.Valid(data) {
			return string(bytes.TrimPrefix(data, utf8BOM)), nil
		}
		return detectAndDecode(data)
	}

	for _, ce := range cyrillicEncodings {
		if ce.name == enc {
			return decodeWith(data, ce.enc)
		}
	}
	return "", fmt.Errorf("%w: %s", ErrUnknownEncoding, name)
}

func decodeWith(data []byte, enc encoding.Encoding) (string, error) {
	decoded, _, err := transform.Bytes(enc.NewDecoder(), data)
	if err != nil {
		return "", fmt.Errorf("failed to decode data: %w", err)
	}
	return string(decoded), nil
}

func detectAndDecode(data []byte) (string, error) {
	best, bestScore := "", -1
	for _, ce := range cyrillicEncodings {
		decoded, err := decodeWith(data, ce.enc)
		if err != nil {
			continue
		}
		if score := cyrillicScore(decoded); score > bestScore {
			best, bestScore = decoded, score
		}
	}
	if bestScore < 0 {
		return "", errors.New("failed to detect encoding")
	}
	return best, nil
}

// cyrillicScore число строчных букв русского и украинского алфавитов. Текст,
// прочитанный в чужой однобайтовой кодировке, превращается в прописные буквы,
// псевдографику или буквы других кириллических алфавитов, поэтому правильный
// вариант набирает больше.
func cyrillicScore(s string) int {
	score := 0
	for _, r := range s {
		if (r >= 'а' && r <= 'я') || strings.ContainsRune("ёєіїґ", r) {
			score++
		}
	}
	return score
}
