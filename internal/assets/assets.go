// Package assets audits the plot images a registry refers to.
package assets

import (
	"fmt"
	"os"
	"sort"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/ziadkadry99/traindelay/internal/progress"
	"github.com/ziadkadry99/traindelay/internal/registry"
)

// PlotPattern matches the image files looked for under the figures directory.
const PlotPattern = "**/*.{png,PNG}"

// Status is the state of one page's plot on disk.
type Status string

const (
	StatusPresent  Status = "present"
	StatusMissing  Status = "missing"
	StatusUnmapped Status = "unmapped"
)

// PageAsset is the audit result for one question page.
type PageAsset struct {
	Page   string
	File   string
	Status Status
}

// Report is the outcome of a Scan.
type Report struct {
	Dir     string
	Pages   []PageAsset
	Orphans []string // images no page refers to, relative to Dir
}

// Missing returns the pages whose mapped plot is not on disk.
func (r *Report) Missing() []PageAsset {
	var out []PageAsset
	for _, p := range r.Pages {
		if p.Status == StatusMissing {
			out = append(out, p)
		}
	}
	return out
}

// Scan checks every question page of reg against the images found in dir.
// A missing dir is not an error: every mapped plot is reported missing.
func Scan(dir string, reg *registry.Registry, rep progress.Reporter) (*Report, error) {
	if rep == nil {
		rep = progress.Nop{}
	}

	found := make(map[string]bool)
	if info, err := os.Stat(dir); err == nil {
		if !info.IsDir() {
			return nil, fmt.Errorf("%s is not a directory", dir)
		}
		matches, err := doublestar.Glob(os.DirFS(dir), PlotPattern)
		if err != nil {
			return nil, fmt.Errorf("scanning %s: %w", dir, err)
		}
		for _, m := range matches {
			found[m] = true
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing %s: %w", dir, err)
	}

	report := &Report{Dir: dir}
	referenced := make(map[string]bool)

	ids := reg.IDs()
	rep.Start(len(ids))
	for i, id := range ids {
		asset := PageAsset{Page: id}
		if file, ok := reg.PlotFile(id); !ok {
			asset.Status = StatusUnmapped
		} else {
			asset.File = file
			referenced[file] = true
			if found[file] {
				asset.Status = StatusPresent
			} else {
				asset.Status = StatusMissing
			}
		}
		report.Pages = append(report.Pages, asset)
		rep.Update(i+1, id)
	}
	rep.Finish()

	for m := range found {
		if !referenced[m] {
			report.Orphans = append(report.Orphans, m)
		}
	}
	sort.Strings(report.Orphans)

	return report, nil
}
