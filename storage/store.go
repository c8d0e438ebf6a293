package storage

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math/rand"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
)

// MaxFileSize caps each uploaded attachment at 10 MiB.
const MaxFileSize = 10 << 20

var (
	ErrUnsupportedFileType = errors.New("only PDF, JPEG, PNG, DOC, DOCX files are allowed")
	ErrFileTooLarge        = fmt.Errorf("file exceeds the %d MB upload limit", MaxFileSize>>20)
)

var allowedExtensions = map[string]bool{
	".pdf":  true,
	".jpeg": true,
	".jpg":  true,
	".png":  true,
	".doc":  true,
	".docx": true,
}

var allowedMIMEs = []string{
	"application/pdf",
	"image/jpeg",
	"image/png",
	"application/msword",
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
}

// StoredFile is the generated unique name and path recorded against an
// uploaded attachment.
type StoredFile struct {
	Name string `json:"name"`
	Path string `json:"path"`
}

// Store writes uploaded attachments to a single durable directory. The
// directory is created lazily on first save.
type Store struct {
	dir string
}

func New(dir string) *Store {
	return &Store{dir: dir}
}

func (s *Store) Dir() string { return s.dir }

// Save validates the upload and writes it under a name guaranteed unique via
// <unixMillis>-<randomInt>-<originalFilename>. The original name is reduced to
// its base so client-supplied paths cannot escape the upload directory.
func (s *Store) Save(fh *multipart.FileHeader) (StoredFile, error) {
	if fh.Size > MaxFileSize {
		return StoredFile{}, ErrFileTooLarge
	}

	original := sanitizeFilename(fh.Filename)
	if !allowedExtensions[strings.ToLower(filepath.Ext(original))] {
		return StoredFile{}, ErrUnsupportedFileType
	}

	src, err := fh.Open()
	if err != nil {
		return StoredFile{}, err
	}
	defer src.Close()

	head := make([]byte, 3072)
	n, err := io.ReadFull(src, head)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return StoredFile{}, err
	}
	head = head[:n]

	if !contentAllowed(head, fh.Header.Get("Content-Type")) {
		return StoredFile{}, ErrUnsupportedFileType
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return StoredFile{}, err
	}

	// O_EXCL plus a fresh random suffix per attempt rules out collisions even
	// for identical originals stored within the same millisecond.
	for attempt := 0; attempt < 10; attempt++ {
		name := fmt.Sprintf("%d-%d-%s", time.Now().UnixMilli(), rand.Int63n(1_000_000_000), original)
		path := filepath.Join(s.dir, name)

		dst, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
		if errors.Is(err, fs.ErrExist) {
			continue
		}
		if err != nil {
			return StoredFile{}, err
		}

		if err := writeAll(dst, head, src); err != nil {
			dst.Close()
			_ = os.Remove(path)
			return StoredFile{}, err
		}
		if err := dst.Close(); err != nil {
			_ = os.Remove(path)
			return StoredFile{}, err
		}
		return StoredFile{Name: name, Path: path}, nil
	}

	return StoredFile{}, errors.New("could not allocate a unique filename")
}

func writeAll(dst *os.File, head []byte, rest io.Reader) error {
	if _, err := dst.Write(head); err != nil {
		return err
	}
	_, err := io.Copy(dst, rest)
	return err
}

// contentAllowed accepts an upload when either the sniffed content or the
// client-declared Content-Type is in the allowlist. Sniffing alone would
// reject legitimate files with exotic encodings; the declared type alone is
// client-controlled.
func contentAllowed(head []byte, declared string) bool {
	mt := mimetype.Detect(head)
	for _, want := range allowedMIMEs {
		if mt.Is(want) {
			return true
		}
	}
	declared = strings.TrimSpace(strings.Split(declared, ";")[0])
	for _, want := range allowedMIMEs {
		if declared == want {
			return true
		}
	}
	return false
}

func sanitizeFilename(name string) string {
	name = filepath.Base(filepath.ToSlash(name))
	if name == "." || name == string(filepath.Separator) {
		return ""
	}
	return name
}
