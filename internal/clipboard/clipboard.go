// Package clipboard copies values to the system clipboard. Kept behind its
// own package so the app model never imports the platform binding directly.
package clipboard

import (
	"fmt"

	"github.com/atotto/clipboard"
)

// CopyTimestamp places a seconds value on the clipboard, formatted with
// millisecond precision the way timestamps appear in the UI.
func CopyTimestamp(seconds float64) error {
	if err := clipboard.WriteAll(fmt.Sprintf("%.3f", seconds)); err != nil {
		return fmt.Errorf("copy to clipboard: %w", err)
	}
	return nil
}
