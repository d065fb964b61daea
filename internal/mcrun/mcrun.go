package mcrun

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"mcscript/internal/data"
	"mcscript/internal/instrument"
	"mcscript/pkg/logging"
)

const subsystem = "Mcrun"

// Mcrun runs one instrument file.
type Mcrun struct {
	instrumentFile string
	opts           Options
}

// Result describes a finished run.
type Result struct {
	RunID       string
	CommandLine string
	Folder      string
	Duration    time.Duration
	Datasets    []*data.McStasData
}

// New validates opts and prepares a run of instrumentFile.
func New(instrumentFile string, opts Options) (*Mcrun, error) {
	if instrumentFile == "" {
		return nil, &InputError{Message: "mcrun needs an instrument file"}
	}
	if err := opts.normalize(); err != nil {
		return nil, err
	}
	return &Mcrun{instrumentFile: instrumentFile, opts: opts}, nil
}

// Folder returns the output folder, which ResolveFolder may have changed.
func (m *Mcrun) Folder() string {
	return m.opts.Folder
}

// CommandLine returns the shell command executed by Run.
func (m *Mcrun) CommandLine() string {
	var b strings.Builder
	b.WriteString(filepath.Join(m.opts.McRunPath, "mcrun"))
	fmt.Fprintf(&b, " -c -n %s --mpi=%d -d %s", strconv.FormatInt(int64(m.opts.NCount), 10), m.opts.MPI, m.opts.Folder)
	b.WriteString(" ")
	b.WriteString(m.opts.CustomFlags)
	b.WriteString(" ")
	b.WriteString(m.instrumentFile)

	names := make([]string, 0, len(m.opts.Parameters))
	for name := range m.opts.Parameters {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(&b, " %s=%s", name, instrument.FormatValue(m.opts.Parameters[name]))
	}
	return b.String()
}

// ResolveFolder picks a free output folder when IncrementFolderName is set
// and the folder already exists.
func (m *Mcrun) ResolveFolder() (string, error) {
	if !m.opts.IncrementFolderName {
		return m.opts.Folder, nil
	}

	exists, err := isDir(m.opts.Folder)
	if err != nil || !exists {
		return m.opts.Folder, err
	}
	for i := 0; ; i++ {
		candidate := fmt.Sprintf("%s_%d", m.opts.Folder, i)
		exists, err := isDir(candidate)
		if err != nil {
			return "", err
		}
		if !exists {
			logging.Info(subsystem, "Folder %s exists, writing to %s instead", m.opts.Folder, candidate)
			m.opts.Folder = candidate
			return candidate, nil
		}
	}
}

func isDir(path string) (bool, error) {
	info, err := os.Stat(path)
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return info.IsDir(), nil
}

// Run executes mcrun and loads the data folder it writes.
func (m *Mcrun) Run(ctx context.Context) (*Result, error) {
	if _, err := m.ResolveFolder(); err != nil {
		return nil, fmt.Errorf("resolving output folder: %w", err)
	}

	result := &Result{
		RunID:       uuid.NewString(),
		CommandLine: m.CommandLine(),
		Folder:      m.opts.Folder,
	}
	logging.Info(subsystem, "Starting run %s: %s", result.RunID, result.CommandLine)

	cmd := shellCommand(ctx, result.CommandLine)
	cmd.Stdout = writerOr(m.opts.Stdout, os.Stdout)
	cmd.Stderr = writerOr(m.opts.Stderr, os.Stderr)

	start := time.Now()
	err := cmd.Run()
	result.Duration = time.Since(start)
	if err != nil {
		runErr := &RunError{RunID: result.RunID, CommandLine: result.CommandLine, ExitCode: -1, Err: err}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			runErr.ExitCode = exitErr.ExitCode()
		}
		logging.Error(subsystem, err, "Run %s failed after %s", result.RunID, result.Duration)
		return nil, runErr
	}
	logging.Info(subsystem, "Run %s finished in %s", result.RunID, result.Duration.Round(time.Millisecond))

	datasets, err := LoadResults(ctx, result.Folder)
	if err != nil {
		return nil, err
	}
	result.Datasets = datasets
	return result, nil
}

// LoadResults loads the data folder of a finished run.
func LoadResults(ctx context.Context, folder string) ([]*data.McStasData, error) {
	datasets, err := data.Load(ctx, folder)
	if err != nil {
		return nil, fmt.Errorf("loading results from %s: %w", folder, err)
	}
	return datasets, nil
}

// RunInstrument writes in to dir as <name>.instr and runs it. The mcrun
// path of the instrument is used unless opts sets one.
func RunInstrument(ctx context.Context, in *instrument.Instrument, dir string, opts Options) (*Result, error) {
	path, err := in.WriteFullInstrument(dir)
	if err != nil {
		return nil, err
	}
	if opts.McRunPath == "" {
		opts.McRunPath = in.McRunPath()
	}

	m, err := New(path, opts)
	if err != nil {
		return nil, err
	}
	return m.Run(ctx)
}

func writerOr(w, fallback io.Writer) io.Writer {
	if w != nil {
		return w
	}
	return fallback
}
