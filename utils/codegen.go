package utils

import (
	"crypto/rand"
	"math/big"
)

// Charset for generated qrcode ids. 0, 1, I, l and O are excluded so the
// code printed on a label cannot be misread.
const codeCharset = "23456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"

const CodeLength = 8

// GenerateCode returns one random qrcode id. crypto/rand, because the code
// doubles as the public warranty token and must not be guessable.
func GenerateCode() (string, error) {
	return GenerateCodeN(CodeLength)
}

func GenerateCodeN(length int) (string, error) {
	max := big.NewInt(int64(len(codeCharset)))
	buf := make([]byte, length)
	for i := range buf {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		buf[i] = codeCharset[n.Int64()]
	}
	return string(buf), nil
}

// GenerateCodes returns count distinct codes.
func GenerateCodes(count int) ([]string, error) {
	codes := make([]string, 0, count)
	seen := map[string]bool{}
	for len(codes) < count {
		code, err := GenerateCode()
		if err != nil {
			return nil, err
		}
		if seen[code] {
			continue
		}
		seen[code] = true
		codes = append(codes, code)
	}
	return codes, nil
}
