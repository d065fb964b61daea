package mcrun

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mcscript/internal/instrument"
)

var fixtureFolder = filepath.Join("..", "data", "testdata", "test_data_set")

// fakeExecCommand mocks exec.CommandContext by re-running the test binary
func fakeExecCommand(ctx context.Context, command string, args ...string) *exec.Cmd {
	cs := []string{"-test.run=TestHelperProcess", "--", command}
	cs = append(cs, args...)
	cmd := exec.CommandContext(ctx, os.Args[0], cs...)
	cmd.Env = []string{"GO_WANT_HELPER_PROCESS=1"}
	return cmd
}

func useFakeExec(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("helper process expects sh -c")
	}
	execCommandContext = fakeExecCommand
	t.Cleanup(func() { execCommandContext = exec.CommandContext })
}

// TestHelperProcess is a helper process for mocking exec.Command
func TestHelperProcess(t *testing.T) {
	if os.Getenv("GO_WANT_HELPER_PROCESS") != "1" {
		return
	}

	args := os.Args
	for i, arg := range args {
		if arg == "--" {
			args = args[i+1:]
			break
		}
	}
	if len(args) != 3 || args[0] != "sh" || args[1] != "-c" {
		fmt.Fprintf(os.Stderr, "unexpected command %v\n", args)
		os.Exit(2)
	}

	fields := strings.Fields(args[2])
	if strings.Contains(args[2], "broken.instr") {
		fmt.Fprintln(os.Stderr, "error: instrument does not compile")
		os.Exit(3)
	}

	folder := ""
	for i, f := range fields {
		if f == "-d" && i+1 < len(fields) {
			folder = fields[i+1]
		}
	}
	if err := os.MkdirAll(folder, 0o755); err != nil {
		os.Exit(4)
	}
	entries, _ := os.ReadDir(fixtureFolder)
	for _, e := range entries {
		content, err := os.ReadFile(filepath.Join(fixtureFolder, e.Name()))
		if err != nil {
			os.Exit(4)
		}
		if err := os.WriteFile(filepath.Join(folder, e.Name()), content, 0o644); err != nil {
			os.Exit(4)
		}
	}
	fmt.Fprintf(os.Stdout, "INFO: running %s\n", args[2])
	os.Exit(0)
}

func TestCommandLine(t *testing.T) {
	tests := []struct {
		name     string
		file     string
		opts     Options
		expected string
	}{
		{
			name:     "defaults",
			file:     "test.instr",
			opts:     Options{Folder: "out"},
			expected: "mcrun -c -n 1000000 --mpi=1 -d out  test.instr",
		},
		{
			name: "everything",
			file: "test.instr",
			opts: Options{
				McRunPath:   "/usr/bin/",
				Folder:      "data_folder",
				NCount:      48.4,
				MPI:         7,
				CustomFlags: "-fo",
				Parameters:  map[string]any{"theta": 1, "A_par": "\"file.dat\"", "BETA": 0.5},
			},
			expected: "/usr/bin/mcrun -c -n 48 --mpi=7 -d data_folder -fo test.instr A_par=\"file.dat\" BETA=0.5 theta=1",
		},
		{
			name:     "float parameters keep decimal point",
			file:     "x.instr",
			opts:     Options{McRunPath: "/opt/mcstas/bin", Folder: "f", Parameters: map[string]any{"wavelength": 3.0}},
			expected: "/opt/mcstas/bin/mcrun -c -n 1000000 --mpi=1 -d f  x.instr wavelength=3.0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := New(tt.file, tt.opts)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, m.CommandLine())
		})
	}
}

func TestNew_InvalidOptions(t *testing.T) {
	tests := []struct {
		name string
		file string
		opts Options
		msg  string
	}{
		{"no file", "", Options{Folder: "f"}, "needs an instrument file"},
		{"no folder", "x.instr", Options{}, "needs a folder name"},
		{"negative ncount", "x.instr", Options{Folder: "f", NCount: -5}, "ncount should be a positive integer"},
		{"fractional ncount", "x.instr", Options{Folder: "f", NCount: 0.5}, "ncount should be a positive integer"},
		{"negative mpi", "x.instr", Options{Folder: "f", MPI: -1}, "mpi should be a positive integer"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.file, tt.opts)
			var inputErr *InputError
			require.True(t, errors.As(err, &inputErr))
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}

func TestResolveFolder(t *testing.T) {
	base := filepath.Join(t.TempDir(), "run")

	m, err := New("x.instr", Options{Folder: base, IncrementFolderName: true})
	require.NoError(t, err)
	folder, err := m.ResolveFolder()
	require.NoError(t, err)
	assert.Equal(t, base, folder)

	require.NoError(t, os.Mkdir(base, 0o755))
	require.NoError(t, os.Mkdir(base+"_0", 0o755))

	folder, err = m.ResolveFolder()
	require.NoError(t, err)
	assert.Equal(t, base+"_1", folder)
	assert.Equal(t, base+"_1", m.Folder())
	assert.Contains(t, m.CommandLine(), "-d "+base+"_1 ")

	plain, err := New("x.instr", Options{Folder: base})
	require.NoError(t, err)
	folder, err = plain.ResolveFolder()
	require.NoError(t, err)
	assert.Equal(t, base, folder)
}

func TestRun(t *testing.T) {
	useFakeExec(t)

	folder := filepath.Join(t.TempDir(), "out")
	var stdout bytes.Buffer
	m, err := New("test.instr", Options{Folder: folder, NCount: 100, Stdout: &stdout, Stderr: &stdout})
	require.NoError(t, err)

	result, err := m.Run(context.Background())
	require.NoError(t, err)

	assert.Len(t, result.RunID, 36)
	assert.Equal(t, folder, result.Folder)
	assert.Contains(t, stdout.String(), "INFO: running mcrun -c -n 100 --mpi=1 -d "+folder)
	require.Len(t, result.Datasets, 2)
	assert.Equal(t, "wave_monitor", result.Datasets[0].Name)
	assert.Equal(t, "psd_monitor", result.Datasets[1].Name)
}

func TestRun_Failure(t *testing.T) {
	useFakeExec(t)

	var stderr bytes.Buffer
	m, err := New("broken.instr", Options{Folder: filepath.Join(t.TempDir(), "out"), Stdout: &stderr, Stderr: &stderr})
	require.NoError(t, err)

	_, err = m.Run(context.Background())
	require.Error(t, err)

	var runErr *RunError
	require.True(t, errors.As(err, &runErr))
	assert.Equal(t, 3, runErr.ExitCode)
	assert.Contains(t, runErr.CommandLine, "broken.instr")
	assert.Contains(t, stderr.String(), "instrument does not compile")
	assert.Contains(t, err.Error(), "exited with code 3")
}

func TestLoadResults(t *testing.T) {
	datasets, err := LoadResults(context.Background(), fixtureFolder)
	require.NoError(t, err)
	assert.Len(t, datasets, 2)

	_, err = LoadResults(context.Background(), t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loading results from")
}

func TestRunInstrument(t *testing.T) {
	useFakeExec(t)

	in, err := instrument.New("test_instrument", instrument.WithMcRunPath("/opt/mcstas/bin/"))
	require.NoError(t, err)
	_, err = in.AddParameter("double", "wavelength", instrument.ParameterValue(3.0))
	require.NoError(t, err)

	dir := t.TempDir()
	var out bytes.Buffer
	result, err := RunInstrument(context.Background(), in, dir, Options{
		Folder:     filepath.Join(dir, "data"),
		Parameters: map[string]any{"wavelength": 2.5},
		Stdout:     &out,
		Stderr:     &out,
	})
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(dir, "test_instrument.instr"))
	assert.True(t, strings.HasPrefix(result.CommandLine, "/opt/mcstas/bin/mcrun -c -n 1000000"))
	assert.True(t, strings.HasSuffix(result.CommandLine, "test_instrument.instr wavelength=2.5"))
	assert.Len(t, result.Datasets, 2)
}
