// internal/util/ids.go
// Generator ID untuk request/audit

package util

import (
	"github.com/google/uuid"
)

func NewID() string {
	return uuid.New().String()
}
