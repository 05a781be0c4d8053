package resume

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// NewID returns a process-local identifier made of the current Unix time in
// milliseconds and a short random suffix. Uniqueness is best effort.
func NewID() string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	return strconv.FormatInt(time.Now().UnixMilli(), 10) + "-" + suffix
}
