package pipeline

import (
	"fmt"

	"github.com/boardlane/pimops/pkg/models"
)

// Collector accumulates diagnostics for one conversion run. Data problems are
// reported here and processing continues; nothing in the pipeline aborts on a
// bad cell.
type Collector struct {
	diags []models.Diagnostic
}

// Warnf records a warning diagnostic.
func (c *Collector) Warnf(format string, args ...any) {
	c.diags = append(c.diags, models.Diagnostic{
		Severity: models.SeverityWarning,
		Message:  fmt.Sprintf(format, args...),
	})
}

// Infof records an informational diagnostic.
func (c *Collector) Infof(format string, args ...any) {
	c.diags = append(c.diags, models.Diagnostic{
		Severity: models.SeverityInfo,
		Message:  fmt.Sprintf(format, args...),
	})
}

// Diagnostics returns the collected diagnostics in emission order.
func (c *Collector) Diagnostics() []models.Diagnostic {
	return c.diags
}

// Warnings returns the number of warning-severity diagnostics.
func (c *Collector) Warnings() int {
	n := 0
	for _, d := range c.diags {
		if d.Severity == models.SeverityWarning {
			n++
		}
	}
	return n
}
