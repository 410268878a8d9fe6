// Package export writes every stored user to object storage as JSON lines.
package export

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"mylibrary-user/internal/domain"
	"mylibrary-user/internal/mapper"
	"mylibrary-user/internal/service"
	"mylibrary-user/internal/storage"
)

const (
	DefaultPageSize = 500
	contentType     = "application/x-ndjson"
)

// Config controls where an export lands.
type Config struct {
	Bucket    string
	KeyPrefix string
	PageSize  int
	// Progress receives uploaded byte counts, if set.
	Progress  func(done, total int64)
}

// Result describes a finished export.
type Result struct {
	Count    int64
	Key      string
	Location string
}

type Exporter struct {
	users  service.UserService
	store  storage.Service
	logger *logrus.Logger
	cfg    Config
	now    func() time.Time
	newID  func() string
}

func New(users service.UserService, store storage.Service, logger *logrus.Logger, cfg Config) (*Exporter, error) {
	if strings.TrimSpace(cfg.Bucket) == "" {
		return nil, fmt.Errorf("export bucket is required")
	}
	if cfg.PageSize <= 0 {
		cfg.PageSize = DefaultPageSize
	}
	if logger == nil {
		logger = logrus.New()
	}
	return &Exporter{
		users:  users,
		store:  store,
		logger: logger,
		cfg:    cfg,
		now:    time.Now,
		newID:  uuid.NewString,
	}, nil
}

// Run pages through all users by ascending id and uploads them as one object.
func (e *Exporter) Run(ctx context.Context) (Result, error) {
	f, err := os.CreateTemp("", "users-*.jsonl")
	if err != nil {
		return Result{}, fmt.Errorf("create export file: %w", err)
	}
	defer os.Remove(f.Name())
	defer f.Close()

	count, err := e.write(ctx, f)
	if err != nil {
		return Result{}, err
	}
	if err := f.Close(); err != nil {
		return Result{}, fmt.Errorf("close export file: %w", err)
	}

	key := ObjectKey(e.cfg.KeyPrefix, e.now(), e.newID())
	location, err := e.store.UploadFile(ctx, f.Name(), storage.UploadOptions{
		Bucket:           e.cfg.Bucket,
		Key:              key,
		ContentType:      contentType,
		ProgressCallback: e.cfg.Progress,
	})
	if err != nil {
		return Result{}, fmt.Errorf("upload export: %w", err)
	}

	e.logger.WithFields(logrus.Fields{
		"count":    count,
		"location": location,
	}).Info("user export finished")
	return Result{Count: count, Key: key, Location: location}, nil
}

func (e *Exporter) write(ctx context.Context, f *os.File) (int64, error) {
	w := bufio.NewWriter(f)
	enc := json.NewEncoder(w)

	req := domain.PageRequest{
		Size: e.cfg.PageSize,
		Sort: []domain.Order{{Property: "userId", Direction: domain.Asc}},
	}
	var count int64
	for {
		page, err := e.users.GetUsers(ctx, req)
		if err != nil {
			return count, fmt.Errorf("read users page %d: %w", req.Page, err)
		}
		for _, user := range page.Content {
			if err := enc.Encode(mapper.ToUserResource(user)); err != nil {
				return count, fmt.Errorf("encode user %d: %w", user.ID, err)
			}
			count++
		}
		e.logger.Debugf("exported page %d (%d users)", req.Page, len(page.Content))
		if !page.HasNext() {
			break
		}
		req.Page++
	}

	if err := w.Flush(); err != nil {
		return count, fmt.Errorf("flush export file: %w", err)
	}
	return count, nil
}

// List returns the exports already stored under the key prefix.
func (e *Exporter) List(ctx context.Context) ([]storage.ObjectInfo, error) {
	prefix := strings.Trim(e.cfg.KeyPrefix, "/")
	if prefix != "" {
		prefix += "/"
	}
	objects, err := e.store.ListObjects(ctx, e.cfg.Bucket, prefix+"users-")
	if err != nil {
		return nil, fmt.Errorf("list exports: %w", err)
	}
	return objects, nil
}

// ObjectKey names an export object: <prefix>/users-<UTC timestamp>-<id>.jsonl.
func ObjectKey(prefix string, at time.Time, id string) string {
	name := "users-" + at.UTC().Format("20060102T150405Z") + "-" + id + ".jsonl"
	if prefix = strings.Trim(prefix, "/"); prefix != "" {
		return prefix + "/" + name
	}
	return name
}
