package instrument

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/stretchr/testify/require"

	"mcscript/internal/componentreader"
)

func init() {
	text.DisableColors()
}

var fixedTime = time.Date(2019, time.May, 3, 14, 7, 9, 0, time.Local)

func testCatalog(t *testing.T) *componentreader.Reader {
	t.Helper()
	r, err := componentreader.New(t.TempDir(), componentreader.WithWorkDir(filepath.Join("testdata", "workdir")))
	require.NoError(t, err)
	return r
}

func newTestInstrument(t *testing.T, opts ...Option) *Instrument {
	t.Helper()
	opts = append([]Option{
		WithCatalog(testCatalog(t)),
		WithClock(func() time.Time { return fixedTime }),
	}, opts...)
	in, err := New("test_instrument", opts...)
	require.NoError(t, err)
	return in
}

func readingInfo(t *testing.T) *componentreader.Info {
	t.Helper()
	info, err := testCatalog(t).ReadName("test_for_reading")
	require.NoError(t, err)
	return info
}
