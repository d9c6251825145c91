package guard

import (
	"os"
	"sync"
)

var once sync.Once

func init() {
	once.Do(func() {
		if os.Getenv("FLEETWORKS_TEST_MODE") == "" {
			_ = os.Setenv("FLEETWORKS_TEST_MODE", "1")
		}
	})
}
