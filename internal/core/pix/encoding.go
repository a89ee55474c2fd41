package pix

import (
	"bytes"
	"strings"

	"github.com/saintfish/chardet"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/unicode"
)

// Nomes de encoding devolvidos por DetectEncoding além dos nomes do detector.
const (
	EncodingUTF8BOM = "utf-8-sig"
	EncodingUTF8    = "utf-8"
	EncodingLatin1  = "latin1"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// DetectEncoding decide o encoding de um arquivo. O BOM UTF-8 tem prioridade
// sobre a detecção estatística; sem palpite do detector, assume UTF-8.
func DetectEncoding(b []byte) string {
	if bytes.HasPrefix(b, utf8BOM) {
		return EncodingUTF8BOM
	}
	if len(b) == 0 {
		return EncodingUTF8
	}

	guess, err := chardet.NewTextDetector().DetectBest(b)
	if err != nil || guess == nil || guess.Charset == "" {
		return EncodingUTF8
	}

	enc := strings.ToLower(guess.Charset)
	switch enc {
	case "iso-8859-1", "iso8859-1", "iso_8859-1", "latin-1", "latin1":
		return EncodingLatin1
	}
	return enc
}

// resolveEncoding converte o nome detectado em um encoding do x/text.
// Nomes desconhecidos caem para UTF-8.
func resolveEncoding(name string) encoding.Encoding {
	switch name {
	case EncodingUTF8BOM:
		return unicode.UTF8BOM
	case EncodingLatin1:
		return charmap.ISO8859_1
	case EncodingUTF8, "":
		return unicode.UTF8
	}
	if enc, err := htmlindex.Get(name); err == nil && enc != nil {
		return enc
	}
	if enc, err := ianaindex.IANA.Encoding(name); err == nil && enc != nil {
		return enc
	}
	return unicode.UTF8
}

// DecodeText decodifica o conteúdo com o encoding detectado, trocando
// sequências inválidas por U+FFFD. Nunca falha; devolve o texto e o
// nome do encoding usado.
func DecodeText(b []byte) (string, string) {
	name := DetectEncoding(b)
	out, err := resolveEncoding(name).NewDecoder().Bytes(b)
	if err != nil {
		out, _ = unicode.UTF8.NewDecoder().Bytes(b)
		name = EncodingUTF8
	}
	return string(out), name
}
