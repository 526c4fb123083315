// Package textio reads and writes text files in the character sets
// Chinese text commonly travels in. Besides UTF-8 it understands the
// legacy mainland encodings GBK and GB18030 and the Big5 encoding used
// in Taiwan and Hong Kong; everything is normalized to UTF-8 in memory.
package textio

import (
	"bytes"
	"fmt"
	"io/ioutil"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/traditionalchinese"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

var utf8bom = []byte{0xef, 0xbb, 0xbf}

// Lookup resolves a charset name to its encoding. Names are matched
// case-insensitively; dashes and underscores are ignored, so "UTF-8",
// "utf8" and "utf_8" all resolve.
func Lookup(name string) (encoding.Encoding, error) {
	key := strings.ToLower(name)
	key = strings.ReplaceAll(key, "-", "")
	key = strings.ReplaceAll(key, "_", "")
	switch key {
	case "", "utf8":
		return unicode.UTF8, nil
	case "gbk":
		return simplifiedchinese.GBK, nil
	case "gb18030":
		return simplifiedchinese.GB18030, nil
	case "big5":
		return traditionalchinese.Big5, nil
	}
	return nil, fmt.Errorf("unsupported charset %q", name)
}

// Decode converts raw bytes in the named charset to a UTF-8 string. A
// leading byte-order mark is dropped.
func Decode(raw []byte, charset string) (string, error) {
	enc, err := Lookup(charset)
	if err != nil {
		return "", err
	}
	if enc != unicode.UTF8 {
		raw, err = ioutil.ReadAll(transform.NewReader(bytes.NewReader(raw), enc.NewDecoder()))
		if err != nil {
			return "", fmt.Errorf("decode %s: %w", charset, err)
		}
	}
	raw = bytes.TrimPrefix(raw, utf8bom)
	return string(raw), nil
}

// Encode converts a UTF-8 string to raw bytes in the named charset.
func Encode(text string, charset string) ([]byte, error) {
	enc, err := Lookup(charset)
	if err != nil {
		return nil, err
	}
	if enc == unicode.UTF8 {
		return []byte(text), nil
	}
	out, err := ioutil.ReadAll(transform.NewReader(strings.NewReader(text), enc.NewEncoder()))
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", charset, err)
	}
	return out, nil
}

// ReadFile reads path and decodes it from the named charset.
func ReadFile(path string, charset string) (string, error) {
	raw, err := ioutil.ReadFile(path)
	if err != nil {
		return "", err
	}
	return Decode(raw, charset)
}

// WriteFile encodes text to the named charset and writes it to path.
func WriteFile(path string, text string, charset string) error {
	raw, err := Encode(text, charset)
	if err != nil {
		return err
	}
	return ioutil.WriteFile(path, raw, 0644)
}
