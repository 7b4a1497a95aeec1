package imagestore

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"
)

// MaxFileSize is the upload size ceiling (5 MiB).
const MaxFileSize = 5 << 20

// Partition names, one directory per image-bearing resource type.
const (
	PartitionBanners     = "banners"
	PartitionKeySector   = "keysector"
	PartitionNews        = "news"
	PartitionTestimonial = "testimonial"
)

var (
	// ErrUnsupportedType rejects anything that is not a JPG, PNG or WEBP image.
	ErrUnsupportedType = errors.New("Invalid file type. Only JPG, PNG, and WEBP images are allowed.")
	// ErrTooLarge rejects uploads over MaxFileSize.
	ErrTooLarge = errors.New("File too large. Maximum allowed size is 5 MB.")
)

var allowedMimeTypes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
	"image/webp": true,
}

// Store is filesystem-backed blob storage for uploaded images, partitioned by
// resource type. The database row referencing a file is the sole authority on
// which file is live; Remove is therefore always best-effort.
type Store struct {
	root string
	log  *zap.Logger
}

func New(root string, log *zap.Logger) *Store {
	if log == nil {
		log = zap.NewNop()
	}
	return &Store{root: root, log: log}
}

// Root returns the directory all partitions live under.
func (s *Store) Root() string { return s.root }

// Put validates and writes one uploaded file, returning the generated
// filename. The file is written to a temp path and renamed, so a failed Put
// leaves no partial artifact behind.
func (s *Store) Put(partition string, fh *multipart.FileHeader) (string, error) {
	if !allowedMimeTypes[strings.ToLower(fh.Header.Get("Content-Type"))] {
		return "", ErrUnsupportedType
	}
	if fh.Size > MaxFileSize {
		return "", ErrTooLarge
	}

	dir := filepath.Join(s.root, partition)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create partition dir: %w", err)
	}

	name := buildFileName(partition, fh.Filename)

	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	tmp, err := os.CreateTemp(dir, ".upload-*")
	if err != nil {
		return "", fmt.Errorf("stage upload: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := io.Copy(tmp, io.LimitReader(src, MaxFileSize+1)); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return "", fmt.Errorf("write upload: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return "", fmt.Errorf("flush upload: %w", err)
	}
	if err := os.Rename(tmpPath, filepath.Join(dir, name)); err != nil {
		os.Remove(tmpPath)
		return "", fmt.Errorf("commit upload: %w", err)
	}
	return name, nil
}

// Remove deletes a stored file, best-effort. A missing file is not an error to
// the caller: the record referencing it may already be gone, or the path may be
// stale from an older schema. Failures are logged and swallowed.
func (s *Store) Remove(partition, name string) {
	name = safeName(name)
	if name == "" {
		return
	}
	path := filepath.Join(s.root, partition, name)
	if err := os.Remove(path); err != nil {
		s.log.Warn("image remove failed",
			zap.String("partition", partition),
			zap.String("name", name),
			zap.Error(err),
		)
	}
}

// Exists reports whether a stored file is present.
func (s *Store) Exists(partition, name string) bool {
	name = safeName(name)
	if name == "" {
		return false
	}
	_, err := os.Stat(filepath.Join(s.root, partition, name))
	return err == nil
}

// PublicPath is the URL path a stored file is served from.
func PublicPath(partition, name string) string {
	return "/images/" + partition + "/" + name
}

// buildFileName generates a collision-resistant name: partition prefix, a
// millisecond timestamp and a random suffix, keeping the original extension.
func buildFileName(partition, original string) string {
	ext := strings.ToLower(filepath.Ext(strings.TrimSpace(original)))
	if ext == "" || len(ext) > 10 || !isSafeSegment(ext[1:]) {
		ext = ".dat"
	}
	return fmt.Sprintf("%s-%d-%09d%s", partition, time.Now().UnixMilli(), rand.Intn(1_000_000_000), ext)
}

func safeName(raw string) string {
	name := filepath.Base(strings.TrimSpace(raw))
	if name == "" || name == "." || name == string(filepath.Separator) {
		return ""
	}
	if !isSafeSegment(name) {
		return ""
	}
	return name
}

func isSafeSegment(s string) bool {
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') ||
			(r >= '0' && r <= '9') || r == '-' || r == '_' || r == '.' {
			continue
		}
		return false
	}
	return true
}
