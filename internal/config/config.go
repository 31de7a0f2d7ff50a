package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/sixfold/wheelhouse/internal/app"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	Flags   map[string]string
	Args    []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

const (
	envLangFile      = "WHEELHOUSE_LANG_FILE"
	envCooldown      = "WHEELHOUSE_COOLDOWN"
	envTransition    = "WHEELHOUSE_TRANSITION"
	envReducedMotion = "WHEELHOUSE_REDUCED_MOTION"
	envNarrowWidth   = "WHEELHOUSE_NARROW_WIDTH"
	envShowFooter    = "WHEELHOUSE_FOOTER"
	envTrace         = "WHEELHOUSE_TRACE"
	envLogFile       = "WHEELHOUSE_LOG_FILE"
)

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	fs := flag.NewFlagSet("wheelhouse", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	langFile := fs.String("lang-file", envOrDefault(env, envLangFile, ""), "path to the language preference file (defaults next to the log file)")
	cooldown := fs.Duration("cooldown", envOrDuration(env, envCooldown, 100*time.Millisecond), "minimum interval between accepted wheel navigations")
	transition := fs.Duration("transition", envOrDuration(env, envTransition, 800*time.Millisecond), "section transition duration")
	reducedMotion := fs.Bool("reduced-motion", envOrBool(env, envReducedMotion, false), "shorten transitions for reduced-motion preference")
	narrowWidth := fs.Int("narrow-width", envOrInt(env, envNarrowWidth, 80), "terminal width below which native scrolling takes over")
	footer := fs.Bool("footer", envOrBool(env, envShowFooter, true), "show the key-hint footer row")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if *cooldown < 0 {
		return Config{}, fmt.Errorf("cooldown must be >= 0 (got %v)", *cooldown)
	}
	if *transition <= 0 {
		return Config{}, fmt.Errorf("transition must be > 0 (got %v)", *transition)
	}
	if *narrowWidth < 0 {
		return Config{}, fmt.Errorf("narrow-width must be >= 0 (got %d)", *narrowWidth)
	}

	cfg := Config{
		App: app.Config{
			LangFile:      *langFile,
			Cooldown:      *cooldown,
			Transition:    *transition,
			ReducedMotion: *reducedMotion,
			NarrowWidth:   *narrowWidth,
			ShowFooter:    *footer,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Flags: map[string]string{
			"langFile":      *langFile,
			"cooldown":      cooldown.String(),
			"transition":    transition.String(),
			"reducedMotion": strconv.FormatBool(*reducedMotion),
			"narrowWidth":   strconv.Itoa(*narrowWidth),
			"footer":        strconv.FormatBool(*footer),
			"trace":         strconv.FormatBool(*trace),
			"logFile":       *logFile,
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrDuration(env map[string]string, key string, fallback time.Duration) time.Duration {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}
