package dialog

import (
	"errors"
	"fmt"
)

// ErrOutsideDialog is returned when a part that needs the dialog state is
// rendered without an enclosing Dialog.
var ErrOutsideDialog = errors.New("must be used within Dialog")

func outsideDialog(component string) error {
	return fmt.Errorf("%s %w", component, ErrOutsideDialog)
}
