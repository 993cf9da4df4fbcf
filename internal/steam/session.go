package steam

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"sync"

	"github.com/rs/zerolog/log"
)

// ErrInitFailed is returned when the Steamworks API refuses to start,
// usually because the Steam client is not running.
var ErrInitFailed = errors.New("failed to initialise Steamworks")

// errMsgSize matches SteamErrMsg in the Steamworks headers.
const errMsgSize = 1024

// Session keeps an app marked as running until it is closed.
type Session interface {
	Close() error
}

// Initializer starts a Steam session for an app.
type Initializer interface {
	Init(appID uint32) (Session, error)
}

// api is the subset of the Steamworks flat API the idler needs.
type api struct {
	init     func() error
	shutdown func()
}

// Client implements Initializer on top of the Steamworks shared library.
type Client struct {
	libraryPath string
	open        func(path string) (*api, error)
}

// NewClient creates a client that loads the Steamworks library from libraryPath,
// or from the platform default name when it is empty.
func NewClient(libraryPath string) *Client {
	return &Client{
		libraryPath: libraryPath,
		open:        openAPI,
	}
}

// Compile-time interface implementation check.
var _ Initializer = (*Client)(nil)

// Init tells Steam that appID is running. The environment variables are
// read by SteamAPI_Init in place of a steam_appid.txt file.
func (c *Client) Init(appID uint32) (Session, error) {
	id := strconv.FormatUint(uint64(appID), 10)
	if err := os.Setenv("SteamAppId", id); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInitFailed, err)
	}
	if err := os.Setenv("SteamGameId", id); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInitFailed, err)
	}

	path := c.libraryPath
	if path == "" {
		path = defaultLibrary
	}
	a, err := c.open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInitFailed, err)
	}
	if err := a.init(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInitFailed, err)
	}

	log.Info().Uint32("appID", appID).Str("library", path).Msg("steamworks session started")
	return &session{api: a, appID: appID}, nil
}

type session struct {
	api   *api
	appID uint32
	once  sync.Once
}

func (s *session) Close() error {
	s.once.Do(func() {
		s.api.shutdown()
		log.Info().Uint32("appID", s.appID).Msg("steamworks session closed")
	})
	return nil
}

// cString trims a NUL-terminated buffer.
func cString(b []byte) string {
	for i, c := range b {
		if c == 0 {
			return string(b[:i])
		}
	}
	return string(b)
}

func initResultError(code int32, msg []byte) error {
	text := cString(msg)
	if text == "" {
		text = "unknown error"
	}
	return fmt.Errorf("SteamAPI_InitFlat: %s (code %d)", text, code)
}
