package steam

import (
	"fmt"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	"github.com/andygrunwald/vdf"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

// FlatpakSteamID is the Flatpak app ID for Steam.
const FlatpakSteamID = "com.valvesoftware.Steam"

// DefaultSteamDirs lists where Steam is usually installed on this OS.
func DefaultSteamDirs(home string) []string {
	switch runtime.GOOS {
	case "windows":
		return []string{
			`C:\Program Files (x86)\Steam`,
			`C:\Program Files\Steam`,
		}
	case "darwin":
		return []string{
			filepath.Join(home, "Library", "Application Support", "Steam"),
		}
	default:
		return []string{
			filepath.Join(home, ".steam", "steam"),
			filepath.Join(home, ".local", "share", "Steam"),
			filepath.Join(home, ".var", "app", FlatpakSteamID, ".steam", "steam"),
			filepath.Join(home, "snap", "steam", "common", ".steam", "steam"),
		}
	}
}

// FindSteamDir returns the first existing directory from extra followed by
// the OS defaults, or "" when Steam cannot be found.
func FindSteamDir(fs afero.Fs, home string, extra ...string) string {
	candidates := append(append([]string{}, extra...), DefaultSteamDirs(home)...)
	for _, path := range candidates {
		if path == "" {
			continue
		}
		if ok, err := afero.DirExists(fs, path); err == nil && ok {
			log.Debug().Str("path", path).Msg("found Steam installation")
			return path
		}
	}
	log.Debug().Msg("Steam installation not found")
	return ""
}

// FindSteamAppsDir finds the steamapps directory inside a Steam root.
func FindSteamAppsDir(fs afero.Fs, steamDir string) string {
	for _, candidate := range []string{"steamapps", "SteamApps", filepath.Join("steam", "steamapps")} {
		path := filepath.Join(steamDir, candidate)
		if ok, err := afero.DirExists(fs, path); err == nil && ok {
			return path
		}
	}
	return filepath.Join(steamDir, "steamapps")
}

// readVDF parses a VDF/ACF file into nested maps.
func readVDF(fs afero.Fs, path string) (map[string]any, error) {
	f, err := fs.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			log.Warn().Err(closeErr).Str("path", path).Msg("error closing vdf file")
		}
	}()

	m, err := vdf.NewParser(f).Parse()
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return m, nil
}

// vdfValue looks key up in m ignoring case, since Valve writes keys with
// inconsistent capitalisation ("AppState", "appstate", "Name").
func vdfValue(m map[string]any, key string) (any, bool) {
	if v, ok := m[key]; ok {
		return v, true
	}
	for k, v := range m {
		if strings.EqualFold(k, key) {
			return v, true
		}
	}
	return nil, false
}

func vdfSection(m map[string]any, key string) (map[string]any, bool) {
	v, _ := vdfValue(m, key)
	section, ok := v.(map[string]any)
	return section, ok
}

func vdfString(m map[string]any, key string) (string, bool) {
	v, _ := vdfValue(m, key)
	str, ok := v.(string)
	return str, ok
}

// ReadAppName reads the app name from appmanifest_<id>.acf in steamAppsDir.
func ReadAppName(fs afero.Fs, steamAppsDir string, appID uint32) (string, bool) {
	path := filepath.Join(steamAppsDir, fmt.Sprintf("appmanifest_%d.acf", appID))
	m, err := readVDF(fs, path)
	if err != nil {
		log.Debug().Err(err).Uint32("appID", appID).Msg("failed to read app manifest")
		return "", false
	}

	appState, ok := vdfSection(m, "AppState")
	if !ok {
		return "", false
	}
	name, ok := vdfString(appState, "name")
	if !ok || name == "" {
		return "", false
	}
	return name, true
}

// libraryDirs returns the steamapps directories of every library listed in
// libraryfolders.vdf that claims to hold appID.
func libraryDirs(fs afero.Fs, steamAppsDir string, appID uint32) []string {
	m, err := readVDF(fs, filepath.Join(steamAppsDir, "libraryfolders.vdf"))
	if err != nil {
		log.Debug().Err(err).Msg("failed to read libraryfolders.vdf")
		return nil
	}
	folders, ok := vdfSection(m, "libraryfolders")
	if !ok {
		return nil
	}

	id := strconv.FormatUint(uint64(appID), 10)
	var dirs []string
	for _, v := range folders {
		folder, ok := v.(map[string]any)
		if !ok {
			continue
		}
		if apps, ok := vdfSection(folder, "apps"); ok {
			if _, has := apps[id]; !has {
				continue
			}
		}
		path, ok := vdfString(folder, "path")
		if !ok {
			continue
		}
		dirs = append(dirs, filepath.Join(path, "steamapps"))
	}
	return dirs
}

// LookupAppName finds the name of an installed app, checking the main
// library first and then every extra library folder.
func LookupAppName(fs afero.Fs, steamAppsDir string, appID uint32) (string, bool) {
	if name, ok := ReadAppName(fs, steamAppsDir, appID); ok {
		return name, true
	}
	for _, dir := range libraryDirs(fs, steamAppsDir, appID) {
		if dir == steamAppsDir {
			continue
		}
		if name, ok := ReadAppName(fs, dir, appID); ok {
			return name, true
		}
	}
	return "", false
}
