package sqlite

import (
	"fmt"
	"strings"

	"github.com/rpggio/proyek-akademik/internal/repository"
)

var errEmptyKey = fmt.Errorf("%w: slot key is required", repository.ErrInvalidInput)

func isBusy(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(err.Error(), "SQLITE_BUSY") || strings.Contains(err.Error(), "database is locked")
}
