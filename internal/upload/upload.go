// Package upload stores admin image uploads on local disk and hands back their public URLs.
package upload

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"slices"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/maxviazov/talent-agency-service/internal/config"
	"github.com/maxviazov/talent-agency-service/internal/metrics"
)

// ErrRejected marks a batch refused before anything was written (maps to HTTP 400).
var ErrRejected = errors.New("upload rejected")

// RejectError carries the client-facing reason a batch was refused.
type RejectError struct {
	Message string
}

func (e *RejectError) Error() string { return e.Message }
func (e *RejectError) Unwrap() error { return ErrRejected }

func reject(format string, args ...any) error {
	return &RejectError{Message: fmt.Sprintf(format, args...)}
}

var safeExt = regexp.MustCompile(`^\.[a-z0-9]{1,8}$`)

// Store writes validated batches into Dir and serves them under PublicPrefix.
type Store struct {
	cfg config.UploadConfig
	log zerolog.Logger
	now func() time.Time
}

func New(cfg config.UploadConfig, logger zerolog.Logger) *Store {
	l := logger.With().Str("module", "upload").Logger()
	return &Store{cfg: cfg, log: l, now: time.Now}
}

// Dir is where stored files live on disk.
func (s *Store) Dir() string { return s.cfg.Dir }

// PublicPrefix is the URL path the stored files are served from.
func (s *Store) PublicPrefix() string { return s.cfg.PublicPrefix }

// MaxRequestBytes bounds a whole multipart body: every file at full size plus form overhead.
func (s *Store) MaxRequestBytes() int64 {
	return s.cfg.MaxFileSize*int64(s.cfg.MaxFiles) + 1<<20
}

type checked struct {
	header *multipart.FileHeader
	mime   *mimetype.MIME
}

// Save validates the whole batch first and only then writes it. A failed write
// removes the files already written for this batch, so callers see all or nothing.
func (s *Store) Save(ctx context.Context, files []*multipart.FileHeader) ([]string, error) {
	batch, err := s.validate(files)
	if err != nil {
		metrics.UploadedFiles.WithLabelValues("rejected").Add(float64(len(files)))
		return nil, err
	}
	if err := os.MkdirAll(s.cfg.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}

	written := make([]string, 0, len(batch))
	urls := make([]string, 0, len(batch))
	for _, f := range batch {
		if err := ctx.Err(); err != nil {
			s.rollback(written)
			return nil, err
		}
		name := s.fileName(f)
		dst := filepath.Join(s.cfg.Dir, name)
		if err := writeFile(dst, f.header); err != nil {
			s.rollback(written)
			s.log.Error().Err(err).Str("file", f.header.Filename).Msg("write upload failed")
			metrics.UploadedFiles.WithLabelValues("failed").Add(float64(len(batch)))
			return nil, fmt.Errorf("store %s: %w", f.header.Filename, err)
		}
		written = append(written, dst)
		urls = append(urls, path.Join(s.cfg.PublicPrefix, name))
	}
	metrics.UploadedFiles.WithLabelValues("stored").Add(float64(len(urls)))
	s.log.Info().Int("files", len(urls)).Msg("upload batch stored")
	return urls, nil
}

func (s *Store) validate(files []*multipart.FileHeader) ([]checked, error) {
	if len(files) == 0 {
		return nil, reject("No files uploaded")
	}
	if len(files) > s.cfg.MaxFiles {
		return nil, reject("Too many files: %d. Max files: %d", len(files), s.cfg.MaxFiles)
	}
	out := make([]checked, 0, len(files))
	for _, fh := range files {
		declared := declaredType(fh)
		if !slices.Contains(s.cfg.AllowedTypes, declared) {
			return nil, reject("Invalid file type: %s. Allowed types: %s", declared, strings.Join(s.cfg.AllowedTypes, ", "))
		}
		if fh.Size > s.cfg.MaxFileSize {
			return nil, reject("File too large: %s. Max size: %dMB", fh.Filename, s.cfg.MaxFileSize>>20)
		}
		sniffed, err := sniff(fh)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", fh.Filename, err)
		}
		if !s.allowed(sniffed) {
			return nil, reject("File content does not match an allowed type: %s", fh.Filename)
		}
		out = append(out, checked{header: fh, mime: sniffed})
	}
	return out, nil
}

func (s *Store) allowed(m *mimetype.MIME) bool {
	for _, t := range s.cfg.AllowedTypes {
		if m.Is(t) {
			return true
		}
	}
	return false
}

// fileName is <unix-millis>-<uuid><ext>. The extension comes from the client name
// when it looks sane, otherwise from the sniffed type.
func (s *Store) fileName(f checked) string {
	ext := strings.ToLower(filepath.Ext(filepath.Base(f.header.Filename)))
	if !safeExt.MatchString(ext) {
		ext = f.mime.Extension()
	}
	return fmt.Sprintf("%d-%s%s", s.now().UnixMilli(), uuid.NewString(), ext)
}

func (s *Store) rollback(paths []string) {
	for _, p := range paths {
		if err := os.Remove(p); err != nil && !errors.Is(err, os.ErrNotExist) {
			s.log.Warn().Err(err).Str("path", p).Msg("rollback of partial upload failed")
		}
	}
}

func declaredType(fh *multipart.FileHeader) string {
	mt, _, err := mime.ParseMediaType(fh.Header.Get("Content-Type"))
	if err != nil {
		return strings.TrimSpace(fh.Header.Get("Content-Type"))
	}
	return mt
}

func sniff(fh *multipart.FileHeader) (*mimetype.MIME, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return mimetype.DetectReader(f)
}

func writeFile(dst string, fh *multipart.FileHeader) (err error) {
	src, err := fh.Open()
	if err != nil {
		return err
	}
	defer src.Close()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = cerr
		}
		if err != nil {
			_ = os.Remove(dst)
		}
	}()
	_, err = io.Copy(out, src)
	return err
}
