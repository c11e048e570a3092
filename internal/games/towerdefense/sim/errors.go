package sim

import (
	"errors"
	"fmt"
)

// ErrInsufficientResources is matched by errors.Is when a placement is
// rejected for lack of resources.
var ErrInsufficientResources = errors.New("insufficient resources")

// ConfigurationError reports an unusable catalog at startup.
type ConfigurationError struct {
	Code    string
	Message string
}

func (e ConfigurationError) Error() string {
	return fmt.Sprintf("configuration: [%s] %s", e.Code, e.Message)
}

// InsufficientResourcesError carries the amounts involved in a rejected placement.
type InsufficientResourcesError struct {
	Tower string
	Have  int
	Cost  int
}

func (e *InsufficientResourcesError) Error() string {
	return fmt.Sprintf("cannot place %s: have %d, need %d", e.Tower, e.Have, e.Cost)
}

// Is makes errors.Is(err, ErrInsufficientResources) succeed.
func (e *InsufficientResourcesError) Is(target error) bool {
	return target == ErrInsufficientResources
}
