package easylog

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"

	"github.com/RealFaceCode/easyLog/ansi"
)

// Config is the YAML shape accepted by LoadConfig. Missing sections leave the
// corresponding logger settings untouched.
type Config struct {
	Console     *bool `yaml:"console"`
	File        *bool `yaml:"file"`
	DefaultFile *bool `yaml:"defaultFile"`
	DirectFlush *bool `yaml:"directFlush"`
	Threaded    *bool `yaml:"threaded"`
	Colorless   *bool `yaml:"colorless"`

	Buffer struct {
		Console      *bool `yaml:"console"`
		ConsoleLabel *bool `yaml:"consoleLabel"`
		File         *bool `yaml:"file"`
		FileLabel    *bool `yaml:"fileLabel"`
		Capacity     int   `yaml:"capacity"`
	} `yaml:"buffer"`

	Metadata struct {
		Date     *bool `yaml:"date"`
		Time     *bool `yaml:"time"`
		File     *bool `yaml:"file"`
		Function *bool `yaml:"function"`
		Line     *bool `yaml:"line"`
	} `yaml:"metadata"`

	DefaultFilePath string `yaml:"defaultFilePath"`
	UseFileLogger   string `yaml:"useFileLogger"`

	Levels []struct {
		Name  string `yaml:"name"`
		Color string `yaml:"color"`
	} `yaml:"levels"`

	FileLoggers []struct {
		Name     string `yaml:"name"`
		Path     string `yaml:"path"`
		Truncate bool   `yaml:"truncate"`
	} `yaml:"fileLoggers"`
}

// LoadConfig reads a YAML file and applies it to the logger. Unknown level
// color names and duplicate registrations are reported as errors; toggles
// already applied before the failing entry stay applied.
func (l *Logger) LoadConfig(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("easylog: read config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return fmt.Errorf("easylog: parse config %s: %w", path, err)
	}
	return l.ApplyConfig(&cfg)
}

// ApplyConfig applies an already decoded Config to the logger.
func (l *Logger) ApplyConfig(cfg *Config) error {
	toggles := []struct {
		state State
		value *bool
	}{
		{TerminalLog, cfg.Console},
		{FileLog, cfg.File},
		{DefaultFileLog, cfg.DefaultFile},
		{DirectFlush, cfg.DirectFlush},
		{Colorless, cfg.Colorless},
		{BufferLog, cfg.Buffer.Console},
		{BufferLogLabel, cfg.Buffer.ConsoleLabel},
		{BufferFileLog, cfg.Buffer.File},
		{BufferFileLogLabel, cfg.Buffer.FileLabel},
		{UseDate, cfg.Metadata.Date},
		{UseTime, cfg.Metadata.Time},
		{UseFile, cfg.Metadata.File},
		{UseFunction, cfg.Metadata.Function},
		{UseLine, cfg.Metadata.Line},
	}
	for _, t := range toggles {
		if t.value != nil {
			l.SetState(t.state, *t.value)
		}
	}

	if cfg.Buffer.Capacity > 0 {
		l.SetBufferCapacity(cfg.Buffer.Capacity)
	}
	if cfg.DefaultFilePath != "" {
		l.SetDefaultFilePath(cfg.DefaultFilePath)
	}

	for _, lvl := range cfg.Levels {
		color, ok := ansi.ParseColor(lvl.Color)
		if !ok {
			return fmt.Errorf("easylog: level %q: unknown color %q", lvl.Name, lvl.Color)
		}
		if !l.AddLogLevel(lvl.Name, color) {
			return fmt.Errorf("easylog: level %q already registered", lvl.Name)
		}
	}
	for _, fl := range cfg.FileLoggers {
		mode := Append
		if fl.Truncate {
			mode = Truncate
		}
		if !l.AddFileLogger(fl.Name, fl.Path, mode) {
			return fmt.Errorf("easylog: file logger %q already registered", fl.Name)
		}
	}
	if cfg.UseFileLogger != "" {
		l.UseFileLogger(cfg.UseFileLogger)
	}

	// Threaded last so the worker only starts once the rest of the
	// configuration is in place.
	if cfg.Threaded != nil {
		l.SetState(ThreadedLog, *cfg.Threaded)
	}
	return nil
}

// LoadConfig applies a YAML config file to the package-level logger.
func LoadConfig(path string) error {
	return std.LoadConfig(path)
}
