package componentreader

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"mcscript/pkg/logging"
)

// WorkDirectoryCategory is the category of components found in the work
// directory.
const WorkDirectoryCategory = "Work directory"

// DefaultLineLength is used by ShowComponentsInCategory when no width is given.
const DefaultLineLength = 100

// CategoryFolders are the installation folders scanned for components, in
// scanning order.
var CategoryFolders = []string{
	"sources",
	"optics",
	"samples",
	"monitors",
	"misc",
	"contrib",
	"obsolete",
	"union",
}

// ErrUnknownComponent is returned for component names that are neither in
// the installation nor in the work directory.
var ErrUnknownComponent = errors.New("unknown component")

type entry struct {
	name     string
	path     string
	category string
}

// Reader knows where every available component is defined.
type Reader struct {
	mcstasPath string
	workDir    string

	entries    []entry
	index      map[string]int
	overridden []string

	mu    sync.Mutex
	cache map[string]*Info
}

// Option configures a Reader.
type Option func(*Reader)

// WithWorkDir sets the directory whose .comp files shadow the installation.
// It defaults to the current working directory.
func WithWorkDir(dir string) Option {
	return func(r *Reader) {
		r.workDir = dir
	}
}

// New scans mcstasPath and the work directory for component files.
// Category folders missing from the installation are skipped.
func New(mcstasPath string, opts ...Option) (*Reader, error) {
	r := &Reader{
		mcstasPath: mcstasPath,
		index:      make(map[string]int),
		cache:      make(map[string]*Info),
	}
	for _, opt := range opts {
		opt(r)
	}

	if r.workDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("determining work directory: %w", err)
		}
		r.workDir = wd
	}

	for _, folder := range CategoryFolders {
		if err := r.findComponents(filepath.Join(mcstasPath, folder)); err != nil {
			return nil, err
		}
	}

	files, err := os.ReadDir(r.workDir)
	if err != nil {
		return nil, fmt.Errorf("reading work directory %s: %w", r.workDir, err)
	}
	for _, f := range files {
		if f.IsDir() || !strings.HasSuffix(f.Name(), ".comp") {
			continue
		}
		name := componentName(f.Name())
		if _, exists := r.index[name]; exists {
			logging.Info("ComponentReader", "Overwriting info on component named %s because the component is in the work directory.", f.Name())
			r.overridden = append(r.overridden, f.Name())
		}
		r.register(name, filepath.Join(r.workDir, f.Name()), WorkDirectoryCategory)
	}

	logging.Debug("ComponentReader", "Found %d components below %s and %s", len(r.entries), mcstasPath, r.workDir)
	return r, nil
}

func (r *Reader) findComponents(root string) error {
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) && path == root {
				logging.Debug("ComponentReader", "Category folder %s not present", root)
				return fs.SkipDir
			}
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".comp") {
			return nil
		}
		r.register(componentName(path), path, filepath.Base(filepath.Dir(path)))
		return nil
	})
	if err != nil {
		return fmt.Errorf("scanning %s: %w", root, err)
	}
	return nil
}

// register adds or replaces a component, keeping the position of the first
// registration.
func (r *Reader) register(name, path, category string) {
	if i, ok := r.index[name]; ok {
		r.entries[i].path = path
		r.entries[i].category = category
		return
	}
	r.index[name] = len(r.entries)
	r.entries = append(r.entries, entry{name: name, path: path, category: category})
}

// Overridden lists the work directory files that shadowed installation
// components.
func (r *Reader) Overridden() []string {
	return append([]string(nil), r.overridden...)
}

// Names returns every known component in discovery order.
func (r *Reader) Names() []string {
	names := make([]string, len(r.entries))
	for i, e := range r.entries {
		names[i] = e.name
	}
	return names
}

// Path returns the file defining name.
func (r *Reader) Path(name string) (string, bool) {
	i, ok := r.index[name]
	if !ok {
		return "", false
	}
	return r.entries[i].path, true
}

// Category returns the category of name.
func (r *Reader) Category(name string) (string, bool) {
	i, ok := r.index[name]
	if !ok {
		return "", false
	}
	return r.entries[i].category, true
}

// Categories returns the distinct categories in discovery order.
func (r *Reader) Categories() []string {
	var categories []string
	seen := make(map[string]bool)
	for _, e := range r.entries {
		if !seen[e.category] {
			seen[e.category] = true
			categories = append(categories, e.category)
		}
	}
	return categories
}

// ComponentsIn returns the sorted component names of a category.
func (r *Reader) ComponentsIn(category string) []string {
	var names []string
	for _, e := range r.entries {
		if e.category == category {
			names = append(names, e.name)
		}
	}
	sort.Strings(names)
	return names
}

// ReadName parses the definition of a known component. Results are cached;
// callers receive their own copy.
func (r *Reader) ReadName(name string) (*Info, error) {
	i, ok := r.index[name]
	if !ok {
		return nil, fmt.Errorf("no component named %s in McStas installation or current work directory: %w", name, ErrUnknownComponent)
	}

	r.mu.Lock()
	cached, hit := r.cache[name]
	r.mu.Unlock()
	if hit {
		return cached.Clone(), nil
	}

	info, err := ReadFile(r.entries[i].path)
	if err != nil {
		return nil, err
	}
	if r.entries[i].category == WorkDirectoryCategory {
		info.Category = WorkDirectoryCategory
	}

	r.mu.Lock()
	r.cache[name] = info
	r.mu.Unlock()
	return info.Clone(), nil
}

// LoadAll parses every known component concurrently.
func (r *Reader) LoadAll(ctx context.Context) (map[string]*Info, error) {
	results := make([]*Info, len(r.entries))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for i, e := range r.entries {
		i, e := i, e
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			info, err := r.ReadName(e.name)
			if err != nil {
				return err
			}
			results[i] = info
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	all := make(map[string]*Info, len(results))
	for _, info := range results {
		all[info.Name] = info
	}
	return all, nil
}

// ShowCategories writes one indented line per category.
func (r *Reader) ShowCategories(w io.Writer) {
	for _, category := range r.Categories() {
		fmt.Fprintf(w, " %s\n", category)
	}
}

// ShowComponentsInCategory lists the components of a category. Short lists
// are written one name per line, longer lists in as many columns (at most
// four) as fit in lineLength.
func (r *Reader) ShowComponentsInCategory(w io.Writer, category string, lineLength int) {
	if lineLength <= 0 {
		lineLength = DefaultLineLength
	}

	names := r.ComponentsIn(category)
	switch {
	case len(names) == 0:
		fmt.Fprintln(w, "No components found in this category! Available categories:")
		r.ShowCategories(w)
	case len(names) < 10:
		for _, name := range names {
			fmt.Fprintf(w, " %s\n", name)
		}
	default:
		writeColumns(w, names, lineLength)
	}
}

func writeColumns(w io.Writer, names []string, lineLength int) {
	var (
		columns  [][]string
		longest  []int
		rows     int
		lastRows int
	)
	for n := 4; n >= 1; n-- {
		rows = int(math.Ceil(float64(len(names)) / float64(n)))
		lastRows = len(names) - (n-1)*rows

		columns = columns[:0]
		longest = longest[:0]
		total := 1
		for col := 0; col < n; col++ {
			lo := min(col*rows, len(names))
			hi := min((col+1)*rows, len(names))
			if col == n-1 {
				hi = len(names)
			}
			column := names[lo:hi]
			width := 0
			for _, name := range column {
				width = max(width, len(name))
			}
			columns = append(columns, column)
			longest = append(longest, width)
			total += width
		}
		total += (n - 1) * 3
		if total <= lineLength {
			break
		}
	}

	last := len(columns) - 1
	for row := 0; row < rows; row++ {
		var b strings.Builder
		b.WriteString(" ")
		for col := 0; col < last; col++ {
			name := ""
			if row < len(columns[col]) {
				name = columns[col][row]
			}
			b.WriteString(name)
			b.WriteString(strings.Repeat(" ", longest[col]-len(name)))
			b.WriteString("   ")
		}
		if row < lastRows {
			b.WriteString(columns[last][row])
		}
		fmt.Fprintln(w, b.String())
	}
}
