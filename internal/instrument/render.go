package instrument

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"mcscript/pkg/logging"
)

// DefaultCFilesDir is where WriteCFiles puts its output by default.
const DefaultCFilesDir = "generated_includes"

// Render writes the complete instrument file.
func (in *Instrument) Render(w io.Writer) error {
	var b strings.Builder

	err := header.Execute(&b, headerData{
		Name:   in.name,
		Author: in.author,
		Origin: in.origin,
		Date:   in.now(),
	})
	if err != nil {
		return fmt.Errorf("rendering header: %w", err)
	}

	b.WriteString("\n")
	fmt.Fprintf(&b, "DEFINE INSTRUMENT %s (\n", in.name)
	if err := in.writeParameters(&b); err != nil {
		return err
	}
	b.WriteString(")\n\n")

	b.WriteString("DECLARE \n%{\n")
	in.writeDeclares(&b)
	b.WriteString("%}\n\n")

	b.WriteString("INITIALIZE \n%{\n")
	b.WriteString(in.initializeSection)
	b.WriteString("%}\n\n")

	b.WriteString("TRACE \n")
	if err := in.writeComponents(&b); err != nil {
		return err
	}

	b.WriteString("FINALLY \n%{\n")
	b.WriteString(in.finallySection)
	b.WriteString("%}\n")
	b.WriteString("\nEND\n")

	_, err = io.WriteString(w, b.String())
	return err
}

func (in *Instrument) writeParameters(w io.Writer) error {
	for i, p := range in.parameters {
		stop := ","
		if i == len(in.parameters)-1 {
			stop = " "
		}
		if err := p.write(w, stop); err != nil {
			return err
		}
	}
	return nil
}

func (in *Instrument) writeDeclares(b *strings.Builder) {
	for _, d := range in.declares {
		b.WriteString(d.line())
		b.WriteString("\n")
	}
}

func (in *Instrument) writeComponents(b *strings.Builder) error {
	for _, c := range in.components {
		if err := c.render(b); err != nil {
			return err
		}
	}
	return nil
}

// WriteFullInstrument writes <name>.instr into dir and returns its path.
// Nothing is written when rendering fails.
func (in *Instrument) WriteFullInstrument(dir string) (string, error) {
	var b strings.Builder
	if err := in.Render(&b); err != nil {
		return "", err
	}

	path := filepath.Join(dir, in.name+".instr")
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return "", fmt.Errorf("writing instrument file: %w", err)
	}
	logging.Info("Instrument", "Wrote %s", path)
	return path, nil
}

// WriteCFiles writes the declare, initialize and trace sections and the
// component blocks to separate files in dir, for inclusion in hand written
// instrument files.
func (in *Instrument) WriteCFiles(dir string) error {
	if dir == "" {
		dir = DefaultCFilesDir
	}

	var components strings.Builder
	if err := in.writeComponents(&components); err != nil {
		return err
	}

	var declares strings.Builder
	fmt.Fprintf(&declares, "// declare section for %s \n", in.name)
	in.writeDeclares(&declares)

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", dir, err)
	}

	files := []struct {
		suffix  string
		content string
	}{
		{"_declare.c", declares.String()},
		{"_initialize.c", in.initializeSection},
		{"_trace.c", in.traceSection},
		{"_component_trace.c", components.String()},
	}
	for _, f := range files {
		path := filepath.Join(dir, in.name+f.suffix)
		if err := os.WriteFile(path, []byte(f.content), 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
		logging.Debug("Instrument", "Wrote %s", path)
	}
	return nil
}
