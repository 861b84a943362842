package utils

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

// UploadFileName builds a stable, collision-resistant name for an uploaded
// file: original base name, millisecond timestamp and a random hex suffix,
// keeping the original extension.
func UploadFileName(originalName string) (string, error) {
	suffix, err := GenerateSecureRandomString(4)
	if err != nil {
		return "", err
	}
	ext := filepath.Ext(originalName)
	base := strings.TrimSuffix(filepath.Base(originalName), ext)
	if base == "" || base == "." {
		base = "upload"
	}
	return fmt.Sprintf("%s-%d-%s%s", base, time.Now().UnixMilli(), suffix, ext), nil
}
