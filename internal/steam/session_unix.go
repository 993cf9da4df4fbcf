//go:build darwin || linux

package steam

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/ebitengine/purego"
)

var defaultLibrary = func() string {
	if runtime.GOOS == "darwin" {
		return "libsteam_api.dylib"
	}
	return "libsteam_api.so"
}()

func openAPI(path string) (*api, error) {
	handle, err := purego.Dlopen(path, purego.RTLD_NOW|purego.RTLD_GLOBAL)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}

	var shutdown func()
	sym, err := purego.Dlsym(handle, "SteamAPI_Shutdown")
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	purego.RegisterFunc(&shutdown, sym)

	// SteamAPI_InitFlat replaced SteamAPI_InitSafe in SDK 1.58.
	if sym, err := purego.Dlsym(handle, "SteamAPI_InitFlat"); err == nil {
		var initFlat func(msg *byte) int32
		purego.RegisterFunc(&initFlat, sym)
		return &api{
			init: func() error {
				var msg [errMsgSize]byte
				if code := initFlat(&msg[0]); code != 0 {
					return initResultError(code, msg[:])
				}
				return nil
			},
			shutdown: shutdown,
		}, nil
	}

	sym, err = purego.Dlsym(handle, "SteamAPI_InitSafe")
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	var initSafe func() bool
	purego.RegisterFunc(&initSafe, sym)
	return &api{
		init: func() error {
			if !initSafe() {
				return errors.New("SteamAPI_InitSafe returned false")
			}
			return nil
		},
		shutdown: shutdown,
	}, nil
}
