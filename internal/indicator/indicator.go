// Package indicator shows the workbell status to the user.
package indicator

import (
	"errors"
	"github.com/clambin/workbell/internal/status"
	"io"
)

var _ status.Indicator = Indicators{}

// Indicators shows the mode on each of its indicators.
type Indicators []status.Indicator

func (i Indicators) Show(mode status.Mode) {
	for _, indicator := range i {
		indicator.Show(mode)
	}
}

// Close releases all indicators that hold a resource.
func (i Indicators) Close() error {
	var errs []error
	for _, indicator := range i {
		if c, ok := indicator.(io.Closer); ok {
			errs = append(errs, c.Close())
		}
	}
	return errors.Join(errs...)
}
