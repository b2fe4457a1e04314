package main

import (
	"fmt"
	"strings"
	"sync"

	"github.com/nguyentantai21042004/vidscribe/internal/config"
	"github.com/nguyentantai21042004/vidscribe/internal/logger"
	"github.com/nguyentantai21042004/vidscribe/internal/recognizer"
)

// commandFlags are the persistent overrides shared by every command.
type commandFlags struct {
	config     string
	input      string
	output     string
	model      string
	logLevel   string
	noProgress bool
	// configSet is true when --config was given explicitly.
	configSet bool
}

type commandContext struct {
	flags *commandFlags

	configOnce sync.Once
	config     *config.Config
	configErr  error

	loggerOnce sync.Once
	logger     logger.Logger
}

func newCommandContext(flags *commandFlags) *commandContext {
	return &commandContext{flags: flags}
}

// ensureConfig loads the config file once and applies flag overrides.
// The default config path may be absent; an explicit one must exist.
func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		path := strings.TrimSpace(c.flags.config)
		if path == "" {
			path = config.DefaultConfigPath
		}

		var (
			cfg *config.Config
			err error
		)
		if c.flags.configSet {
			cfg, err = config.Load(path)
		} else {
			cfg, err = config.LoadOrDefault(path)
		}
		if err != nil {
			c.configErr = err
			return
		}

		if err := c.applyOverrides(cfg); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

func (c *commandContext) applyOverrides(cfg *config.Config) error {
	if v := strings.TrimSpace(c.flags.input); v != "" {
		cfg.Paths.Input = v
	}
	if v := strings.TrimSpace(c.flags.output); v != "" {
		cfg.Paths.Output = v
	}
	if v := strings.TrimSpace(c.flags.model); v != "" {
		size, err := recognizer.ParseModelSize(v)
		if err != nil {
			return fmt.Errorf("--model: %w", err)
		}
		cfg.Recognizer.Model = size.String()
	}
	if v := strings.TrimSpace(c.flags.logLevel); v != "" {
		cfg.Logging.Level = v
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid options: %w", err)
	}
	return nil
}

func (c *commandContext) ensureLogger() logger.Logger {
	c.loggerOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil {
			c.logger = logger.New("info", logger.FormatConsole)
			return
		}
		c.logger = logger.New(cfg.Logging.Level, cfg.Logging.Format)
	})
	return c.logger
}
