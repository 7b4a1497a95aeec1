// Package upload adapts one inbound multipart field into a staged image store
// write before the request reaches business logic. Intake never auto-cleans a
// successfully staged file: only the continuation knows whether the file became
// owned by a record, so rollback is the continuation's responsibility.
package upload

import (
	"errors"
	"net/http"
	"strings"

	"github.com/brightpage/admin-core/internal/pkg/imagestore"
	"github.com/brightpage/admin-core/internal/pkg/response"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Staged is a file written to the image store whose ownership (kept vs rolled
// back) is not yet finalized.
type Staged struct {
	Partition string
	Name      string
	Size      int64

	store *imagestore.Store
}

// Stage pulls one optional file from the request's multipart form and writes
// it to the store. Returns (nil, nil) when no file was supplied — omission on
// update means "keep the existing image". Validation failures surface before
// any business logic runs.
func Stage(c *gin.Context, store *imagestore.Store, partition, field string) (*Staged, error) {
	if !strings.HasPrefix(c.ContentType(), "multipart/form-data") {
		return nil, nil
	}

	fh, err := c.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, nil
		}
		return nil, err
	}

	name, err := store.Put(partition, fh)
	if err != nil {
		return nil, err
	}
	return &Staged{Partition: partition, Name: name, Size: fh.Size, store: store}, nil
}

// Discard rolls back a staged file. Safe to call on nil (no file staged); the
// underlying delete is best-effort.
func (s *Staged) Discard() {
	if s == nil {
		return
	}
	s.store.Remove(s.Partition, s.Name)
}

// IsValidationError reports whether err is a client-side upload rejection.
func IsValidationError(err error) bool {
	return errors.Is(err, imagestore.ErrUnsupportedType) || errors.Is(err, imagestore.ErrTooLarge)
}

// Reject turns a Stage failure into the right HTTP response: validation
// failures are client errors, anything else is a logged 500.
func Reject(c *gin.Context, log *zap.Logger, err error) {
	if IsValidationError(err) {
		response.BadRequest(c, err.Error())
		return
	}
	if log != nil {
		log.Error("upload staging failed", zap.Error(err))
	}
	response.InternalError(c)
}
