package main

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"recipebox/internal/config"
	"recipebox/internal/cookbook"
	"recipebox/internal/logging"
)

type commandContext struct {
	configFlag *string
	storeFlag  *string

	configOnce sync.Once
	config     *config.Config
	configErr  error

	loggerOnce sync.Once
	logger     *slog.Logger
	loggerErr  error
}

func newCommandContext(configFlag, storeFlag *string) *commandContext {
	return &commandContext{
		configFlag: configFlag,
		storeFlag:  storeFlag,
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		cfg, _, _, err := config.Load(c.configPath())
		if err != nil {
			c.configErr = err
			return
		}
		if c.storeFlag != nil {
			if err := cfg.OverrideStoragePath(*c.storeFlag); err != nil {
				c.configErr = fmt.Errorf("--store: %w", err)
				return
			}
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

func (c *commandContext) configPath() string {
	if c.configFlag == nil {
		return ""
	}
	return strings.TrimSpace(*c.configFlag)
}

// commandLogger returns the configured logger tagged with the command name
// and invocation id carried on cmd's context.
func (c *commandContext) commandLogger(cmd *cobra.Command) (*slog.Logger, error) {
	c.loggerOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil {
			c.loggerErr = err
			return
		}
		c.logger, c.loggerErr = logging.NewFromConfig(cfg)
	})
	if c.loggerErr != nil {
		return nil, c.loggerErr
	}
	return logging.WithContext(cmd.Context(), c.logger), nil
}

// withCookbook opens the configured cookbook for the duration of fn.
func (c *commandContext) withCookbook(cmd *cobra.Command, readOnly bool, fn func(*cookbook.Cookbook, *slog.Logger) error) (err error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return err
	}
	logger, err := c.commandLogger(cmd)
	if err != nil {
		return err
	}
	cb, err := cookbook.Open(cmd.Context(), cfg, logger, cookbook.Options{ReadOnly: readOnly})
	if err != nil {
		return fmt.Errorf("open cookbook: %w", err)
	}
	defer func() {
		if closeErr := cb.Close(); closeErr != nil {
			err = errors.Join(err, fmt.Errorf("close cookbook: %w", closeErr))
		}
	}()
	return fn(cb, logger)
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}

func parseRecipeID(value string) (uint32, error) {
	id, err := strconv.ParseUint(strings.TrimSpace(value), 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid recipe id %q: expected a whole number", value)
	}
	return uint32(id), nil
}

func pluralize(count int, singular, plural string) string {
	if count == 1 {
		return fmt.Sprintf("%d %s", count, singular)
	}
	return fmt.Sprintf("%d %s", count, plural)
}
