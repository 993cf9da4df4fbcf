//go:build !darwin && !linux && !windows

package steam

import (
	"fmt"
	"runtime"
)

const defaultLibrary = "libsteam_api.so"

func openAPI(string) (*api, error) {
	return nil, fmt.Errorf("steamworks is not available on %s", runtime.GOOS)
}
