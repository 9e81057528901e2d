// Package profiling adds pprof capture flags to a cobra command tree.
package profiling

import (
	"fmt"
	"os"
	"runtime"
	"runtime/pprof"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// CobraProfiler holds the profile destinations chosen on the command line.
type CobraProfiler struct {
	cpuProfileFile *os.File
	cpuProfilePath string
	memProfilePath string
	logger         *logrus.Entry
}

// NewCobraProfiler creates a profiler that reports through logger.
func NewCobraProfiler(logger *logrus.Entry) *CobraProfiler {
	if logger == nil {
		logger = logrus.NewEntry(logrus.StandardLogger())
	}
	return &CobraProfiler{logger: logger}
}

// AddFlags registers --cpu-profile and --mem-profile and hooks the root
// command's persistent pre/post run.
func (p *CobraProfiler) AddFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVar(&p.cpuProfilePath, "cpu-profile", "", "Write CPU profile to file")
	cmd.PersistentFlags().StringVar(&p.memProfilePath, "mem-profile", "", "Write heap profile to file on exit")
	cmd.PersistentPreRunE = p.PreRun
	cmd.PersistentPostRun = p.PostRun
}

// PreRun starts CPU profiling when requested.
func (p *CobraProfiler) PreRun(cmd *cobra.Command, args []string) error {
	if p.cpuProfilePath == "" {
		return nil
	}
	f, err := os.Create(p.cpuProfilePath)
	if err != nil {
		return fmt.Errorf("could not create CPU profile: %w", err)
	}
	if err := pprof.StartCPUProfile(f); err != nil {
		f.Close()
		return fmt.Errorf("could not start CPU profile: %w", err)
	}
	p.cpuProfileFile = f
	return nil
}

// PostRun stops CPU profiling and writes the heap profile.
func (p *CobraProfiler) PostRun(cmd *cobra.Command, args []string) {
	if p.cpuProfileFile != nil {
		pprof.StopCPUProfile()
		p.cpuProfileFile.Close()
		p.cpuProfileFile = nil
		p.logger.WithField("path", p.cpuProfilePath).Info("CPU profile written")
	}

	if p.memProfilePath == "" {
		return
	}
	f, err := os.Create(p.memProfilePath)
	if err != nil {
		p.logger.WithError(err).Warn("Could not create memory profile")
		return
	}
	defer f.Close()
	runtime.GC()
	if err := pprof.WriteHeapProfile(f); err != nil {
		p.logger.WithError(err).Warn("Could not write memory profile")
		return
	}
	p.logger.WithField("path", p.memProfilePath).Info("Memory profile written")
}
