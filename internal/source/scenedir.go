package source

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/telluris/satdiff/internal/raster"
)

const dateLayout = "2006-01-02"

// Composite window sizes, preserved from the acquisition policy this
// compositor stands in for: "before" is the median of the oldest 20
// scenes in the lookback window, "after" the median of the 5 most
// recent.
const (
	beforeWindow = 20
	afterWindow  = 5
)

// SceneDir composites a directory of date-stamped scene files into a
// before/after pair. Scene files carry their acquisition date as a
// _YYYY-MM-DD suffix before the extension (s2_2024-03-17.png); files
// without a parsable stamp are ignored. All scenes must share one
// shape. When fewer scenes exist than a window wants, the window takes
// what is there; a directory with no scenes at all fails with
// AcquisitionError.
type SceneDir struct {
	Dir string
}

type scene struct {
	path string
	date time.Time
}

// Acquire composites the directory into a pair. Meta reports the span
// from the oldest to the newest scene date and the total scene count.
func (s SceneDir) Acquire() (*Pair, error) {
	scenes, err := listScenes(s.Dir)
	if err != nil {
		return nil, &AcquisitionError{Source: s.Dir, Err: err}
	}
	if len(scenes) == 0 {
		return nil, &AcquisitionError{Source: s.Dir, Err: errors.New("no date-stamped scenes found")}
	}

	grids := make([]*raster.Grid, len(scenes))
	for i, sc := range scenes {
		g, err := loadGrid(sc.path)
		if err != nil {
			return nil, &AcquisitionError{Source: sc.path, Err: err}
		}
		if i > 0 && (g.Width() != grids[0].Width() || g.Height() != grids[0].Height()) {
			return nil, &AcquisitionError{
				Source: sc.path,
				Err: fmt.Errorf("scene shape %dx%d does not match %dx%d",
					g.Width(), g.Height(), grids[0].Width(), grids[0].Height()),
			}
		}
		grids[i] = g
	}

	nBefore := beforeWindow
	if nBefore > len(grids) {
		nBefore = len(grids)
	}
	nAfter := afterWindow
	if nAfter > len(grids) {
		nAfter = len(grids)
	}

	meta := Meta{
		DateRange: scenes[0].date.Format(dateLayout) + " to " + scenes[len(scenes)-1].date.Format(dateLayout),
		Scenes:    len(scenes),
	}
	return &Pair{
		Before: medianComposite(grids[:nBefore]),
		After:  medianComposite(grids[len(grids)-nAfter:]),
		Meta:   meta,
	}, nil
}

// listScenes returns the date-stamped files of dir in ascending date
// order. Equal dates fall back to path order so repeated runs see the
// same sequence.
func listScenes(dir string) ([]scene, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var scenes []scene
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		d, ok := sceneDate(e.Name())
		if !ok {
			continue
		}
		scenes = append(scenes, scene{path: filepath.Join(dir, e.Name()), date: d})
	}
	sort.Slice(scenes, func(i, j int) bool {
		if !scenes[i].date.Equal(scenes[j].date) {
			return scenes[i].date.Before(scenes[j].date)
		}
		return scenes[i].path < scenes[j].path
	})
	return scenes, nil
}

// sceneDate extracts the date stamp from a file name like
// s2_2024-03-17.png.
func sceneDate(name string) (time.Time, bool) {
	base := strings.TrimSuffix(name, filepath.Ext(name))
	i := strings.LastIndex(base, "_")
	if i < 0 {
		return time.Time{}, false
	}
	d, err := time.Parse(dateLayout, base[i+1:])
	if err != nil {
		return time.Time{}, false
	}
	return d, true
}

// medianComposite reduces same-shape grids to their per-cell median.
// An even cell count takes the midpoint of the two middle values.
func medianComposite(grids []*raster.Grid) *raster.Grid {
	w, h := grids[0].Width(), grids[0].Height()
	out := raster.NewGrid(w, h)
	vals := make([]float64, len(grids))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			for i, g := range grids {
				vals[i] = g.At(x, y)
			}
			sort.Float64s(vals)
			mid := len(vals) / 2
			if len(vals)%2 == 1 {
				out.Set(x, y, vals[mid])
			} else {
				out.Set(x, y, (vals[mid-1]+vals[mid])/2)
			}
		}
	}
	return out
}
