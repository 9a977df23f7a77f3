package main

import (
	"encoding/binary"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"gonum.org/v1/gonum/mat"

	"volumegrid/internal/models"
	"volumegrid/internal/monitoring"
	"volumegrid/pkg/config"
	"volumegrid/pkg/iterators"
	"volumegrid/pkg/volume"
)

func main() {
	configPath := flag.String("config", "gridwalk.yaml", "YAML file describing the grid and traversal")
	initConfig := flag.Bool("init", false, "Write a default configuration to -config and exit")
	labelsPath := flag.String("labels", "", "Raw little-endian int32 label map matching the grid shape")
	volumePath := flag.String("volume", "", "Raw little-endian float64 volume matching the grid shape")
	sliceDir := flag.String("slice-dir", "", "Directory to save rendered slices (overrides the config)")
	verbose := flag.Bool("verbose", false, "Log every record of the traversal")
	flag.Parse()

	if *initConfig {
		if err := config.CreateDefaultConfigFile(*configPath); err != nil {
			log.Fatalf("Failed to write default config: %v", err)
		}
		fmt.Printf("Default configuration written to %s\n", *configPath)
		return
	}

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *sliceDir != "" {
		cfg.Output.SliceDir = *sliceDir
	}
	cfg.Output.Verbose = cfg.Output.Verbose || *verbose

	grid, err := cfg.Coordinates()
	if err != nil {
		log.Fatalf("Failed to build grid: %v", err)
	}
	shape := cfg.Shape()

	fmt.Printf("Grid %q: axes %v, shape %v\n", grid.Name(), grid.AxisNames(), shape)
	fmt.Printf("Transform:\n%v\n\n", mat.Formatted(grid.Transform(), mat.Prefix(""), mat.Squeeze()))

	var labels iterators.LabelArray[int32]
	if *labelsPath != "" {
		labels, err = readLabels(*labelsPath, shape)
		if err != nil {
			log.Fatalf("Failed to read labels: %v", err)
		}
	}

	var im *volume.Image
	if *volumePath != "" {
		im, err = readImage(*volumePath, cfg)
		if err != nil {
			log.Fatalf("Failed to read volume: %v", err)
		}
	}

	it, err := newIterator(cfg, shape, labels, *labelsPath != "")
	if err != nil {
		log.Fatalf("Failed to create %s iterator: %v", cfg.Traversal.Type, err)
	}

	startTime := time.Now()
	n := 0
	for rec := range iterators.All(it) {
		monitoring.Verbosef(cfg.Output.Verbose, "%s", describe(rec))
		n++
	}
	fmt.Printf("Walked %d %s records in %v\n", n, it.Kind(), time.Since(startTime))

	if im == nil {
		return
	}

	if cfg.Output.SliceDir != "" {
		written, err := im.SaveSliceSequence(cfg.Output.SliceDir, cfg.SlicerOptions())
		if err != nil {
			log.Fatalf("Failed to save slices: %v", err)
		}
		fmt.Printf("Saved %d slices to %s\n", written, cfg.Output.SliceDir)
	}

	if *labelsPath != "" {
		stats, err := volume.ParcelStats(im, labels, parcelKeys(cfg))
		if err != nil {
			log.Fatalf("Failed to compute parcel statistics: %v", err)
		}
		fmt.Println("\nParcel statistics:")
		fmt.Println("==================")
		for _, s := range stats {
			fmt.Printf("label %-6v n=%-8d mean=%-10.4f sd=%-10.4f min=%-10.4f max=%.4f\n",
				s.Label, s.Count, s.Mean, s.StdDev, s.Min, s.Max)
		}
	}
}

// newIterator builds the traversal named in the config
func newIterator(cfg *config.Config, shape []int, labels iterators.LabelArray[int32], haveLabels bool) (iterators.Iterator, error) {
	kind := iterators.Kind(cfg.Traversal.Type)
	if (kind == iterators.KindParcel || kind == iterators.KindSliceParcel) && !haveLabels {
		return nil, fmt.Errorf("%s traversal needs -labels", kind)
	}

	switch kind {
	case iterators.KindSlice:
		return iterators.NewSliceIterator(shape, cfg.SlicerOptions())
	case iterators.KindAll:
		return iterators.NewAllSliceIterator(shape)
	case iterators.KindParcel:
		return iterators.NewParcelIterator(labels, parcelKeys(cfg))
	case iterators.KindSliceParcel:
		keys := make([][]int32, labels.Rows())
		for i := range keys {
			if len(cfg.Traversal.Labels) > 0 {
				keys[i] = cfg.Traversal.Labels
				continue
			}
			keys[i] = iterators.Unique(labels.Row(i))
		}
		return iterators.NewSliceParcelIterator(labels, keys)
	default:
		return nil, fmt.Errorf("unknown traversal type %q", cfg.Traversal.Type)
	}
}

func parcelKeys(cfg *config.Config) []iterators.Key[int32] {
	if len(cfg.Traversal.Labels) == 0 {
		return nil
	}
	return iterators.ScalarKeys(cfg.Traversal.Labels...)
}

func describe(rec iterators.Record) string {
	switch r := rec.(type) {
	case iterators.SliceRecord:
		return fmt.Sprintf("%s %v", r.Kind(), r.Slice)
	case iterators.ParcelRecord[int32]:
		return fmt.Sprintf("%s label=%v voxels=%d", r.Kind(), r.Label, r.Where.Count())
	case iterators.SliceParcelRecord[int32]:
		return fmt.Sprintf("%s slice=%d label=%v voxels=%d", r.Kind(), r.Slice, r.Label, r.Where.Count())
	default:
		return fmt.Sprintf("%v", rec)
	}
}

func shapeLen(shape []int) int {
	n := 1
	for _, s := range shape {
		n *= s
	}
	return n
}

func readLabels(path string, shape []int) (iterators.LabelArray[int32], error) {
	f, err := os.Open(path)
	if err != nil {
		return iterators.LabelArray[int32]{}, err
	}
	defer f.Close()

	data := make([]int32, shapeLen(shape))
	if err := binary.Read(f, binary.LittleEndian, data); err != nil {
		return iterators.LabelArray[int32]{}, fmt.Errorf("reading %d labels: %w", len(data), err)
	}
	return iterators.NewLabelArray(data, shape...)
}

func readImage(path string, cfg *config.Config) (*volume.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	shape := cfg.Shape()
	vol := models.NewVolume(shape...)
	if err := binary.Read(f, binary.LittleEndian, vol.Data); err != nil {
		return nil, fmt.Errorf("reading %d samples: %w", len(vol.Data), err)
	}
	for i, a := range cfg.Grid.Axes {
		vol.AxisNames[i] = a.Name
		vol.Origin[i] = a.Start
		vol.Spacing[i] = a.Step
	}
	return volume.NewImage(vol)
}
