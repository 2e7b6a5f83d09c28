package launcher

import (
	"context"
	"io"
	"os"
	"os/exec"
	"strconv"
	"strings"
	"syscall"
	"time"

	"pt-web-ui/internal/config"
)

var (
	// DefaultKioskCommand is used for fullscreen views when browserCommand
	// is not set.
	DefaultKioskCommand = []string{
		"chromium-browser", "--kiosk", "--noerrdialogs", "--disable-infobars",
		"--window-size={width},{height}", "--app={url}",
	}
	// DefaultWindowedCommand is used for windowed views when browserCommand
	// is not set.
	DefaultWindowedCommand = []string{
		"chromium-browser", "--window-size={width},{height}", "--app={url}",
	}
)

// BrowserCommand returns the argv used to show view. The browserCommand
// setting, when present, replaces the built-in command. The placeholders
// {url}, {title}, {width} and {height} are expanded in every argument.
func BrowserCommand(store config.Store, view View) []string {
	template := store.ArrayValueToStringList(config.KeyBrowserCommand)
	if len(template) == 0 {
		template = DefaultKioskCommand
		if !view.Fullscreen {
			template = DefaultWindowedCommand
		}
	}

	r := strings.NewReplacer(
		"{url}", view.URL,
		"{title}", view.Title,
		"{width}", strconv.Itoa(view.Width),
		"{height}", strconv.Itoa(view.Height),
	)
	argv := make([]string, len(template))
	for i, arg := range template {
		argv[i] = r.Replace(arg)
	}
	return argv
}

// Runner starts a command and waits for it to exit.
type Runner interface {
	Run(ctx context.Context, argv []string) error
}

// ExecRunner runs commands as child processes. On cancellation the child
// gets SIGTERM and, after GracePeriod, is killed.
type ExecRunner struct {
	Stdout      io.Writer
	Stderr      io.Writer
	GracePeriod time.Duration
}

// Run starts argv with DISPLAY defaulted to :0 and waits for it.
func (r ExecRunner) Run(ctx context.Context, argv []string) error {
	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Env = displayEnv(os.Environ())
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr
	cmd.Cancel = func() error {
		return cmd.Process.Signal(syscall.SIGTERM)
	}
	cmd.WaitDelay = r.GracePeriod
	if cmd.WaitDelay == 0 {
		cmd.WaitDelay = 5 * time.Second
	}
	return cmd.Run()
}

// displayEnv returns env with DISPLAY=:0 appended unless DISPLAY is set.
func displayEnv(env []string) []string {
	for _, kv := range env {
		if strings.HasPrefix(kv, "DISPLAY=") && kv != "DISPLAY=" {
			return env
		}
	}
	return append(env, "DISPLAY=:0")
}
