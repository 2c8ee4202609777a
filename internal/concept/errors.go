package concept

import (
	"fmt"
	"strings"
)

// ConfigError reports a structurally invalid concept table. It is fatal:
// a process holding a bad table must refuse to serve until it is corrected.
type ConfigError struct {
	Problems []string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("concept table validation failed:\n  %s", strings.Join(e.Problems, "\n  "))
}
