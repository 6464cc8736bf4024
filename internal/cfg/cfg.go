// Package cfg allows for reading the user's configuration.
package cfg

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/tesselslate/xwin/internal/log"
	"github.com/tesselslate/xwin/internal/res"
	"gopkg.in/yaml.v2"
)

// Fallback values for settings left out of a profile.
const (
	DefaultWidth  = 640
	DefaultHeight = 480
	DefaultTitle  = "xwin"
)

// Profile extensions, in lookup order.
var extensions = []string{".toml", ".yml", ".yaml"}

// Window contains the settings of the window opened by xwin.
type Window struct {
	Width  uint16 `toml:"width" yaml:"width"`
	Height uint16 `toml:"height" yaml:"height"`
	Title  string `toml:"title" yaml:"title"`
}

// Profile contains an entire configuration profile.
type Profile struct {
	Window Window      `toml:"window" yaml:"window"`
	Log    log.LogConf `toml:"log" yaml:"log"`
	Binds  Binds       `toml:"binds" yaml:"binds"`

	// Path of the file the profile was read from.
	path string
}

// Path returns the path of the file the profile was read from.
func (p *Profile) Path() string {
	return p.path
}

// GetDirectory returns the path to the user's configuration directory.
func GetDirectory() (string, error) {
	// UserConfigDir automatically checks for $XDG_CONFIG_HOME and falls back
	// to $HOME/.config, so we don't need to do any special checks ourselves.
	xdgDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(xdgDir, "xwin"), nil
}

// FindProfile returns the path of the profile with the given name. TOML
// profiles take precedence over YAML ones.
func FindProfile(name string) (string, error) {
	dir, err := GetDirectory()
	if err != nil {
		return "", fmt.Errorf("get config directory: %w", err)
	}
	for _, ext := range extensions {
		path := filepath.Join(dir, name+ext)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}
	return "", fmt.Errorf("no profile named %q in %s", name, dir)
}

// ListProfiles returns the names of every profile in the configuration
// directory.
func ListProfiles() ([]string, error) {
	dir, err := GetDirectory()
	if err != nil {
		return nil, fmt.Errorf("get config directory: %w", err)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read config directory: %w", err)
	}
	var names []string
	seen := make(map[string]bool)
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || strings.HasPrefix(name, ".") {
			continue
		}
		ext := filepath.Ext(name)
		if !isProfileExt(ext) {
			continue
		}
		name = strings.TrimSuffix(name, ext)
		if !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}
	return names, nil
}

// GetProfile returns a parsed configuration profile.
func GetProfile(name string) (Profile, error) {
	path, err := FindProfile(name)
	if err != nil {
		return Profile{}, err
	}
	return LoadProfile(path)
}

// LoadProfile reads and validates the profile at the given path. The format
// is chosen by the file extension.
func LoadProfile(path string) (Profile, error) {
	file, err := os.ReadFile(path)
	if err != nil {
		return Profile{}, fmt.Errorf("read config file: %w", err)
	}
	profile, err := ParseProfile(file, filepath.Ext(path))
	if err != nil {
		return Profile{}, err
	}
	profile.path = path
	return profile, nil
}

// ParseProfile parses and validates a profile in the format named by ext.
func ParseProfile(data []byte, ext string) (Profile, error) {
	profile := Profile{}
	switch ext {
	case ".toml":
		if err := toml.Unmarshal(data, &profile); err != nil {
			return Profile{}, fmt.Errorf("parse config file: %w", err)
		}
	case ".yml", ".yaml":
		if err := yaml.UnmarshalStrict(data, &profile); err != nil {
			return Profile{}, fmt.Errorf("parse config file: %w", err)
		}
	default:
		return Profile{}, fmt.Errorf("unknown profile format %q", ext)
	}
	if err := validateProfile(&profile); err != nil {
		return Profile{}, fmt.Errorf("validate config: %w", err)
	}
	return profile, nil
}

// MakeProfile makes a new configuration profile with the given name and the
// default settings. The format is either "toml" or "yml".
func MakeProfile(name, format string) (string, error) {
	contents, err := res.DefaultProfile(format)
	if err != nil {
		return "", err
	}
	if name == "" || strings.ContainsRune(name, filepath.Separator) {
		return "", fmt.Errorf("invalid profile name %q", name)
	}
	dir, err := GetDirectory()
	if err != nil {
		return "", fmt.Errorf("get config directory: %w", err)
	}
	stat, err := os.Stat(dir)
	if err != nil {
		if !os.IsNotExist(err) {
			return "", fmt.Errorf("stat config directory: %w", err)
		}
		if err := os.MkdirAll(dir, 0755); err != nil {
			return "", fmt.Errorf("create config directory: %w", err)
		}
	} else if !stat.IsDir() {
		return "", fmt.Errorf("config directory (%s) is not a directory", dir)
	}
	if existing, err := FindProfile(name); err == nil {
		return "", fmt.Errorf("profile %q already exists (%s)", name, existing)
	}
	path := filepath.Join(dir, name+"."+format)
	if err := os.WriteFile(path, contents, 0644); err != nil {
		return "", fmt.Errorf("write profile: %w", err)
	}
	return path, nil
}

// validateProfile ensures that the user's configuration profile does not have
// any illegal or invalid settings.
func validateProfile(conf *Profile) error {
	// Fill missing configuration options
	if conf.Window.Width == 0 {
		conf.Window.Width = DefaultWidth
	}
	if conf.Window.Height == 0 {
		conf.Window.Height = DefaultHeight
	}
	if conf.Window.Title == "" {
		conf.Window.Title = DefaultTitle
	}
	if conf.Window.Width < 16 || conf.Window.Height < 16 {
		log.Warn("Very small window size in config (%dx%d).", conf.Window.Width, conf.Window.Height)
	}

	if conf.Log.Level != "" {
		if _, err := log.ParseLevel(conf.Log.Level); err != nil {
			return err
		}
	}
	if conf.Log.Format != "" {
		if err := log.NewFormatter(conf.Log.Format).Validate(); err != nil {
			return fmt.Errorf("invalid log format: %w", err)
		}
	}

	for action := range conf.Binds {
		if !isAction(action) {
			return fmt.Errorf("unknown bind action %q", action)
		}
	}
	if err := conf.Binds.checkDuplicates(); err != nil {
		return err
	}
	if _, ok := conf.Binds[ActionQuit]; !ok {
		return errors.New("no quit bind")
	}
	return nil
}

func isProfileExt(ext string) bool {
	for _, e := range extensions {
		if e == ext {
			return true
		}
	}
	return false
}
