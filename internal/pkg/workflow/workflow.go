// Package workflow implements the ordered mutation sequence shared by every
// image-bearing resource: stage upload → record write → stale-file cleanup,
// with rollback of the staged file on any failure. Old-file cleanup happens
// strictly after the record write is durable; rollback happens strictly before
// the error is returned. The database row is the sole owner of its image file,
// so a failed write must never leave an orphaned upload behind.
package workflow

import (
	"errors"

	"github.com/brightpage/admin-core/internal/pkg/imagestore"
	"github.com/brightpage/admin-core/internal/pkg/response"
	"github.com/brightpage/admin-core/internal/pkg/upload"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ErrNotFound marks a lookup/update/delete against a missing record.
var ErrNotFound = errors.New("record not found")

// ConflictError marks a unique-constraint violation, naming the conflict for
// the client.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string { return e.Message }

// Translate maps store failures onto the uniform error taxonomy. conflictMsg
// is the client-facing message when a uniqueness constraint fired.
func Translate(err error, conflictMsg string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return &ConflictError{Message: conflictMsg}
	default:
		return err
	}
}

// Create inserts rec referencing the staged filename. If the insert fails the
// staged file is rolled back before the translated error is returned.
func Create(db *gorm.DB, rec any, staged *upload.Staged, conflictMsg string) error {
	if err := db.Create(rec).Error; err != nil {
		staged.Discard()
		return Translate(err, conflictMsg)
	}
	return nil
}

// Update persists rec as a full-field replace. oldImage is the filename the
// record referenced before the update. If the write fails the staged file is
// rolled back; if it succeeds and a new file replaced an old one, the old file
// is removed only now, after the new state is durable.
func Update(db *gorm.DB, store *imagestore.Store, partition string, rec any, staged *upload.Staged, oldImage, conflictMsg string) error {
	if err := db.Save(rec).Error; err != nil {
		staged.Discard()
		return Translate(err, conflictMsg)
	}
	if staged != nil && oldImage != "" && oldImage != staged.Name {
		store.Remove(partition, oldImage)
	}
	return nil
}

// Delete removes rec and then, best-effort, its associated image file. The
// file delete runs only after the record delete succeeded.
func Delete(db *gorm.DB, store *imagestore.Store, partition string, rec any, image string) error {
	result := db.Delete(rec)
	if result.Error != nil {
		return Translate(result.Error, "")
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	if store != nil && image != "" {
		store.Remove(partition, image)
	}
	return nil
}

// Respond is the single boundary turning a translated store error into an
// HTTP response: 404 with notFoundMsg, 409 with the conflict message, or a
// logged 500 with a generic client message.
func Respond(c *gin.Context, log *zap.Logger, err error, notFoundMsg string) {
	var conflict *ConflictError
	switch {
	case errors.Is(err, ErrNotFound):
		response.NotFound(c, notFoundMsg)
	case errors.As(err, &conflict):
		response.Conflict(c, conflict.Message)
	default:
		if log != nil {
			log.Error("store operation failed",
				zap.String("path", c.FullPath()),
				zap.Error(err),
			)
		}
		response.InternalError(c)
	}
}
