package converter

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/louisbranch/cands-to-harn/internal/conversion"
	"github.com/louisbranch/cands-to-harn/internal/options"
)

// Setup holds the command settings every surface builds its Service from.
type Setup struct {
	// AverageBasis is "adjusted" or "raw". Blank means adjusted.
	AverageBasis string
	// OptionsFile replaces the embedded option lists when set.
	OptionsFile string
}

// Build validates setup and returns a ready Service.
func Build(setup Setup, opts ...Option) (*Service, error) {
	basis, err := conversion.ParseAverageBasis(setup.AverageBasis)
	if err != nil {
		return nil, err
	}
	engine, err := conversion.NewEngine(basis)
	if err != nil {
		return nil, err
	}
	set, err := loadOptions(setup.OptionsFile)
	if err != nil {
		return nil, err
	}
	return New(engine, set, opts...), nil
}

func loadOptions(path string) (options.Set, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return options.Default()
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return options.Set{}, fmt.Errorf("resolve options path: %w", err)
	}
	return options.LoadFile(os.DirFS(filepath.Dir(abs)), filepath.Base(abs))
}
