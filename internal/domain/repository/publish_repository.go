package repository

import (
	"context"

	"github.com/diillson/usage-statement-go/internal/domain/entity"
)

// PublishRepository defines the interface for uploading generated statements.
type PublishRepository interface {
	GetAccountID(ctx context.Context, target entity.PublishTarget) (string, error)
	Publish(ctx context.Context, target entity.PublishTarget, localPath string) (string, error)
}
