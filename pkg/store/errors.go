package store

import (
	"errors"
	"fmt"
)

// ErrStorageUnavailable marks failures to open, read, or write the on-device
// storage area. The triggering action is failed, prior state is untouched,
// and the user decides whether to retry; nothing retries automatically.
var ErrStorageUnavailable = errors.New("storage unavailable")

func unavailable(op string, err error) error {
	return fmt.Errorf("%w: %s: %v", ErrStorageUnavailable, op, err)
}
