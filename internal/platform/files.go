package platform

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
)

// Operating system constants
const (
	OSDarwin  = "darwin"
	OSWindows = "windows"
	OSLinux   = "linux"
	OSAndroid = "android"
)

// File permissions
const (
	DefaultDirPermissions = 0755
)

// Application directory and file names
const (
	AppDirName      = "art-gallery"
	StoreFileName   = "gallery.db"
	ConfigFileName  = "config.yaml"
	AndroidFilesDir = "/data/data/com.ytget.artgallery/files"
	PicturesDirName = "Pictures"
)

// Command constants
const (
	OpenCommand    = "open"
	XDGOpenCommand = "xdg-open"
	CmdCommand     = "cmd"
	StartCommand   = "start"
)

// Command parameters
const (
	WindowsCmdFlag = "/c"
)

// Browsers tried on Linux when xdg-open is missing
var (
	LinuxBrowsers = []string{"sensible-browser", "firefox", "chromium", "google-chrome"}
)

// IsAndroid reports whether the process runs on Android
func IsAndroid() bool {
	return runtime.GOOS == OSAndroid ||
		os.Getenv("ANDROID_DATA") != "" ||
		os.Getenv("ANDROID_ROOT") != "" ||
		filepath.Base(os.Args[0]) == "libdist.so" // Fyne Android apps run as libdist.so
}

// DataDir returns the per-user directory the application keeps its files in
func DataDir() (string, error) {
	if IsAndroid() {
		return AndroidFilesDir, nil
	}

	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user config directory: %w", err)
	}

	return filepath.Join(configDir, AppDirName), nil
}

// EnsureDir creates directory if it doesn't exist
func EnsureDir(dirPath string) error {
	if dirPath == "" {
		return fmt.Errorf("directory path is empty")
	}
	if _, err := os.Stat(dirPath); os.IsNotExist(err) {
		return os.MkdirAll(dirPath, DefaultDirPermissions)
	}
	return nil
}

// DefaultStorePath returns the sqlite store location inside DataDir
func DefaultStorePath() (string, error) {
	dir, err := DataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, StoreFileName), nil
}

// DefaultConfigPath returns the yaml config location inside DataDir
func DefaultConfigPath() (string, error) {
	dir, err := DataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, ConfigFileName), nil
}

// DefaultExportDir returns where saved artwork images go: the user's
// pictures folder on desktops, the app files dir on Android
func DefaultExportDir() (string, error) {
	if IsAndroid() {
		return filepath.Join(AndroidFilesDir, PicturesDirName), nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	return filepath.Join(home, PicturesDirName, AppDirName), nil
}

// OpenURL opens the link with the default system browser
func OpenURL(rawURL string) error {
	if !strings.HasPrefix(rawURL, "http://") && !strings.HasPrefix(rawURL, "https://") {
		return fmt.Errorf("not a web URL: %q", rawURL)
	}

	switch runtime.GOOS {
	case OSDarwin:
		return exec.Command(OpenCommand, rawURL).Run()
	case OSWindows:
		return exec.Command(CmdCommand, WindowsCmdFlag, StartCommand, "", rawURL).Run()
	case OSLinux:
		return openURLLinux(rawURL)
	case OSAndroid:
		return exec.Command("am", "start", "-a", "android.intent.action.VIEW", "-d", rawURL).Run()
	default:
		return fmt.Errorf("unsupported operating system: %s", runtime.GOOS)
	}
}

// openURLLinux tries xdg-open first, then well-known browsers
func openURLLinux(rawURL string) error {
	if err := exec.Command(XDGOpenCommand, rawURL).Run(); err == nil {
		return nil
	}

	for _, browser := range LinuxBrowsers {
		if _, err := exec.LookPath(browser); err == nil {
			return exec.Command(browser, rawURL).Run()
		}
	}

	return fmt.Errorf("no suitable browser found")
}
