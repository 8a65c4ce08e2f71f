package flatten

import (
	"bytes"
	"os"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"
)

// binarySniffLen bounds the prefix searched for a zero byte when classifying
// a file as binary.
const binarySniffLen = 8192

// readFileContent loads a file and decodes it to text. It returns ok=false
// for binary or unreadable files; both are skipped, never fatal. Invalid
// UTF-8 sequences are replaced with U+FFFD so decoding always succeeds.
func readFileContent(path, relPath string, logger *zap.Logger) (string, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		logger.Debug("cannot read file", zap.String("path", relPath), zap.Error(err))
		return "", false
	}

	sniff := data
	if len(sniff) > binarySniffLen {
		sniff = sniff[:binarySniffLen]
	}
	if bytes.IndexByte(sniff, 0) >= 0 {
		logger.Debug("skipping binary file", zap.String("path", relPath))
		return "", false
	}

	if !utf8.Valid(data) {
		return strings.ToValidUTF8(string(data), string(utf8.RuneError)), true
	}
	return string(data), true
}
