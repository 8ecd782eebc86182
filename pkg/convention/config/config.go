package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/linecard/autotag/pkg/convention/retry"

	"github.com/aws/aws-sdk-go-v2/aws"
)

const (
	EnvEnvironment = "ENVIRONMENT"
	EnvProject     = "PROJECT"
	EnvMaxRetries  = "AUTOTAG_MAX_RETRIES"
	EnvBaseDelay   = "AUTOTAG_BASE_DELAY"
)

const (
	DefaultEnvironment = "Development"
	DefaultProject     = "CostTracking"
)

type Tagging struct {
	Environment string
	Project     string
}

type Retry struct {
	MaxRetries int
	BaseDelay  time.Duration
}

type Account struct {
	Region string
}

type Config struct {
	Tagging Tagging
	Retry   Retry
	Account Account
}

// FromEnv reads configuration from the process environment, falling back
// to defaults for anything unset.
func FromEnv(awsConfig aws.Config) (c Config, err error) {
	c.Account.Region = awsConfig.Region
	c.DiscoverTagging(EnvEnvironment, EnvProject)

	if err = c.DiscoverRetry(EnvMaxRetries, EnvBaseDelay); err != nil {
		return Config{}, err
	}

	return c, nil
}

func (c *Config) DiscoverTagging(environmentEnvar, projectEnvar string) {
	c.Tagging.Environment = DefaultEnvironment
	if value, exists := os.LookupEnv(environmentEnvar); exists {
		c.Tagging.Environment = value
	}

	c.Tagging.Project = DefaultProject
	if value, exists := os.LookupEnv(projectEnvar); exists {
		c.Tagging.Project = value
	}
}

func (c *Config) DiscoverRetry(maxRetriesEnvar, baseDelayEnvar string) error {
	c.Retry.MaxRetries = retry.DefaultMaxRetries
	c.Retry.BaseDelay = retry.DefaultBaseDelay

	if value, exists := os.LookupEnv(maxRetriesEnvar); exists {
		n, err := strconv.Atoi(value)
		if err != nil || n < 0 {
			return fmt.Errorf("%s must be a non-negative integer, got %q", maxRetriesEnvar, value)
		}
		c.Retry.MaxRetries = n
	}

	if value, exists := os.LookupEnv(baseDelayEnvar); exists {
		d, err := time.ParseDuration(value)
		if err != nil || d < 0 {
			return fmt.Errorf("%s must be a non-negative duration, got %q", baseDelayEnvar, value)
		}
		c.Retry.BaseDelay = d
	}

	return nil
}

// Policy returns the retry policy for provider tagging calls.
func (c Config) Policy() retry.Policy {
	p := retry.Default()
	p.MaxRetries = c.Retry.MaxRetries
	p.BaseDelay = c.Retry.BaseDelay
	return p
}

func (c Config) Json() (string, error) {
	cJson, err := json.Marshal(c)
	if err != nil {
		return "", err
	}
	return string(cJson), nil
}
