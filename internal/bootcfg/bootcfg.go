// Package bootcfg loads the scheduler's boot configuration: process table
// size, per-slot stack size, the initial strategy, the Random strategy's
// seed, the autostart program list, and the tick budget for a simulation
// run. Uses the standard cobra+viper pairing for a simulated system's
// runtime configuration.
package bootcfg

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"mazsched/internal/sched"
)

// Config is the fully-resolved boot configuration.
type Config struct {
	NumProcesses int      `mapstructure:"num_processes"`
	StackBytes   int      `mapstructure:"stack_bytes"`
	Strategy     string   `mapstructure:"strategy"`
	Seed         int64    `mapstructure:"seed"`
	Ticks        int      `mapstructure:"ticks"`
	Autostart    []string `mapstructure:"autostart"`
}

// defaults mirror a conservative MAX_PROCESSES=8 and a stack large
// enough for the seeded frame plus headroom for demo program locals.
func defaults() *viper.Viper {
	v := viper.New()
	v.SetDefault("num_processes", 8)
	v.SetDefault("stack_bytes", 256)
	v.SetDefault("strategy", "even")
	v.SetDefault("seed", int64(1))
	v.SetDefault("ticks", 20)
	v.SetDefault("autostart", []string{})
	return v
}

// Load reads configuration from path (if non-empty), environment variables
// prefixed MAZSCHED_, and finally the defaults above, in viper's usual
// override order.
func Load(path string) (*Config, error) {
	v := defaults()
	v.SetEnvPrefix("mazsched")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("bootcfg: reading %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("bootcfg: unmarshal: %w", err)
	}
	return &cfg, nil
}

// StrategyKind resolves the configured strategy name to a sched.Kind,
// falling back to Even for an unrecognised name, the same unknown-tag
// policy the strategy factory itself uses.
func (c *Config) StrategyKind() sched.Kind {
	switch strings.ToLower(c.Strategy) {
	case "even":
		return sched.Even
	case "random":
		return sched.Random
	case "run_to_completion", "runtocompletion", "rtc":
		return sched.RunToCompletion
	case "round_robin", "roundrobin", "rr":
		return sched.RoundRobin
	case "inactive_aging", "inactiveaging", "aging":
		return sched.InactiveAging
	default:
		return sched.Even
	}
}
