package main

import (
	"github.com/spf13/cobra"

	"github.com/milk9111/obstaclecourse/tilemap"
)

var flagOutput string

var autotileCmd = &cobra.Command{
	Use:   "autotile <in.json>",
	Short: "Recompute stone tile variants in a level file",
	Long: `Pick the edge, corner or center variant of every stone tile from its
stone neighbors and save the level. Without -o the input file is rewritten.

Examples:
  obstaclecourse autotile map.json
  obstaclecourse autotile map.json -o map.tiled.json`,
	Args: cobra.ExactArgs(1),
	RunE: runAutotile,
}

var inspectCmd = &cobra.Command{
	Use:   "inspect <in.json>",
	Short: "Summarize a level file",
	Args:  cobra.ExactArgs(1),
	RunE:  runInspect,
}

func init() {
	autotileCmd.Flags().StringVarP(&flagOutput, "output", "o", "", "Output file (default: overwrite input)")
}

func runAutotile(cmd *cobra.Command, args []string) error {
	in := args[0]
	m, err := tilemap.LoadFile(in)
	if err != nil {
		return err
	}
	changed := m.Autotile()

	out := flagOutput
	if out == "" {
		out = in
	}
	if err := m.SaveFile(out); err != nil {
		return err
	}
	logger.Info("autotiled", "in", in, "out", out, "changed", changed, "tiles", m.Len())
	return nil
}

func runInspect(cmd *cobra.Command, args []string) error {
	m, err := tilemap.LoadFile(args[0])
	if err != nil {
		return err
	}

	counts := make(map[tilemap.Kind]int)
	for _, t := range m.Tiles() {
		counts[t.Kind]++
	}
	for _, t := range m.Offgrid() {
		counts[t.Kind]++
	}

	kv := []any{"path", args[0], "tile_size", m.TileSize(), "grid", m.Len(), "offgrid", len(m.Offgrid())}
	if lo, hi, ok := m.Bounds(); ok {
		kv = append(kv, "min", lo, "max", hi)
	}
	logger.Info("level", kv...)
	for _, k := range tilemap.Kinds {
		if n := counts[k]; n > 0 {
			logger.Info("tiles", "type", k, "count", n)
		}
	}
	return nil
}
