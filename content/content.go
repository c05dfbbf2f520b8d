// Package content provides content hashing and content-addressed naming for
// extracted media files.
package content

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/taigrr/colorhash"
)

// Sentinel errors for package content.
// These errors can be checked with errors.Is() for specific error handling.
var (
	ErrExpectedFile      = errors.New("expected file, got directory")
	ErrInvalidBucketPath = errors.New("invalid bucket path format")
)

// FileHash hashes a file and returns the hash as a hex string suitable for
// use in a filepath.
func FileHash(path string) (hash string, err error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", err
	}
	if info.IsDir() {
		return "", ErrExpectedFile
	}
	file, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer file.Close()
	return Hash(file)
}

// Hash calculates the SHA-256 hash of data from an io.Reader.
// It returns the hash as a hexadecimal string.
func Hash(r io.Reader) (string, error) {
	h := sha256.New()
	if _, err := io.Copy(h, r); err != nil {
		return "", err
	}
	return fmt.Sprintf("%x", h.Sum(nil)), nil
}

// BucketPath generates a content-addressed identifier from a hash.
// The result is in the format "bucket-subbucket-hash" (e.g., "742-00000-abc123...")
// and is used as the base name for media files written in the content-addressed
// output layout. The bucket (first component) is derived from a color hash mod
// 1000. The subbucket (second component) further distributes entries within a
// bucket.
func BucketPath(hash string) string {
	return BucketPathWithSubbucket(hash, SubbucketFromHash(hash))
}

// BucketPathWithSubbucket generates a bucket path with a specific subbucket.
func BucketPathWithSubbucket(hash string, subbucket int) string {
	hInt := colorhash.HashString(hash)
	bucket := hInt % 1000
	return fmt.Sprintf("%d-%05d-%s", bucket, subbucket, hash)
}

// SubbucketFromHash returns a secondary subbucket index based on the hash.
// Returns a value from 0-99999.
func SubbucketFromHash(hash string) int {
	// Use the last 5 characters of the hash as the secondary bucket
	if len(hash) < 5 {
		return 0
	}
	var subbucket int
	for i := len(hash) - 5; i < len(hash); i++ {
		subbucket = subbucket*16 + hexCharToInt(hash[i])
	}
	return subbucket % 100000
}

// hexCharToInt converts a hex character to its integer value.
func hexCharToInt(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'a' && c <= 'f':
		return int(c - 'a' + 10)
	case c >= 'A' && c <= 'F':
		return int(c - 'A' + 10)
	default:
		return 0
	}
}

// HashFromBucketPath extracts the original hash from a bucket path.
// It expects a base name in the format "bucket-subbucket-hash" and returns the
// hash portion, ignoring any file extension.
func HashFromBucketPath(path string) (string, error) {
	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	parts := strings.Split(base, "-")
	if len(parts) != 3 {
		return "", ErrInvalidBucketPath
	}
	return parts[2], nil
}

// DirPrefixFromBucketPath extracts the directory prefix from a bucket path.
// It returns the first two components of the bucket path as a directory path,
// so files land in <bucket>/<subbucket>/ subdirectories.
func DirPrefixFromBucketPath(path string) (string, error) {
	parts := strings.Split(path, "-")
	if len(parts) < 3 {
		return "", ErrInvalidBucketPath
	}
	return filepath.Join(parts[0], parts[1]), nil
}
