package datamap

import "errors"

// ErrNoContainer is returned when a holder constructor yields no holder or an instance holds no container
var ErrNoContainer = errors.New("the storage holder does not provide a container")
