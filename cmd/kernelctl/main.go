// Command kernelctl drives and inspects a simulated instance of the
// scheduler core: a "run" subcommand boots the kernel and steps it through
// a configurable number of timer ticks, and an "inspect" subcommand boots
// it and prints the process table without running any ticks. Grounded on
// a cobra+viper CLI for a simulated machine.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"mazsched/internal/bootcfg"
	"mazsched/internal/hw"
	"mazsched/internal/klog"
	"mazsched/internal/programs"
	"mazsched/internal/sched"
)

var configPath string

func main() {
	root := &cobra.Command{
		Use:   "kernelctl",
		Short: "Drive and inspect the preemptive scheduler core",
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "path to a boot configuration file")

	root.AddCommand(newRunCmd())
	root.AddCommand(newInspectCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func boot(log *klog.Logger) (*sched.Scheduler, *bootcfg.Config, error) {
	cfg, err := bootcfg.Load(configPath)
	if err != nil {
		return nil, nil, err
	}

	s := sched.New(cfg.NumProcesses, cfg.StackBytes, cfg.Seed, log)
	s.SetStrategy(cfg.StrategyKind())

	autostart := make([]sched.AutostartEntry, 0, len(cfg.Autostart))
	for _, name := range cfg.Autostart {
		c := programs.NewCounter()
		autostart = append(autostart, sched.AutostartEntry{Name: name, Program: c.Run})
	}

	if err := s.InitScheduler(programs.Idle, autostart); err != nil {
		return nil, nil, fmt.Errorf("boot: %w", err)
	}
	s.StartScheduler()

	return s, cfg, nil
}

func newRunCmd() *cobra.Command {
	var period time.Duration
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Boot the kernel and step it through a configured number of ticks",
		RunE: func(cmd *cobra.Command, args []string) error {
			log := klog.New()
			defer log.Sync()

			s, cfg, err := boot(log)
			if err != nil {
				return err
			}

			input := &hw.SimulatedInput{}
			display := hw.NewWriterDisplay(cmd.OutOrStdout())

			selections := sched.Run(s, period, cfg.Ticks, input, display)
			for i, pid := range selections {
				log.Infof("tick %d: pid=%d", i+1, pid)
			}
			return nil
		},
	}
	cmd.Flags().DurationVar(&period, "period", 0, "sleep between ticks (0 = run as fast as possible)")
	return cmd
}

func newInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect",
		Short: "Boot the kernel and print the process table without ticking",
		RunE: func(cmd *cobra.Command, args []string) error {
			log := klog.New()
			defer log.Sync()

			s, _, err := boot(log)
			if err != nil {
				return err
			}

			for _, line := range s.Overlay() {
				fmt.Fprintln(cmd.OutOrStdout(), line)
			}
			return nil
		},
	}
}
