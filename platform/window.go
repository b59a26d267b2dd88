// SPDX-License-Identifier: Unlicense OR MIT

package platform

import "fmt"

func unsupported(s WindowingSystem) error {
	return fmt.Errorf("%w %v", ErrUnsupportedWindowing, s)
}
