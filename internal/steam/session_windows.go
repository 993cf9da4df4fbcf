//go:build windows

package steam

import (
	"errors"
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"
)

const defaultLibrary = "steam_api64.dll"

func openAPI(path string) (*api, error) {
	dll := windows.NewLazyDLL(path)
	if err := dll.Load(); err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}

	shutdown := dll.NewProc("SteamAPI_Shutdown")
	if err := shutdown.Find(); err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	a := &api{
		shutdown: func() { _, _, _ = shutdown.Call() },
	}

	// SteamAPI_InitFlat replaced SteamAPI_InitSafe in SDK 1.58.
	if initFlat := dll.NewProc("SteamAPI_InitFlat"); initFlat.Find() == nil {
		a.init = func() error {
			var msg [errMsgSize]byte
			r1, _, _ := initFlat.Call(uintptr(unsafe.Pointer(&msg[0])))
			if code := int32(r1); code != 0 {
				return initResultError(code, msg[:])
			}
			return nil
		}
		return a, nil
	}

	initSafe := dll.NewProc("SteamAPI_InitSafe")
	if err := initSafe.Find(); err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	a.init = func() error {
		r1, _, _ := initSafe.Call()
		if byte(r1) == 0 {
			return errors.New("SteamAPI_InitSafe returned false")
		}
		return nil
	}
	return a, nil
}
