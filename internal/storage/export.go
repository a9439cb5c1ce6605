package storage

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"os"
	"strconv"

	"github.com/san-kum/mdlab/internal/config"
	"github.com/san-kum/mdlab/internal/md"
)

type ExportData struct {
	System     string             `json:"system"`
	Potential  string             `json:"potential"`
	Integrator string             `json:"integrator"`
	Particles  int                `json:"particles"`
	Dt         float64            `json:"dt"`
	Duration   float64            `json:"duration"`
	Steps      int                `json:"steps"`
	Times      []float64          `json:"times"`
	States     [][]float64        `json:"states"`
	Metrics    map[string]float64 `json:"metrics"`
}

func exportData(cfg *config.Config, result *md.Result) ExportData {
	data := ExportData{
		System:     cfg.System,
		Potential:  cfg.Potential.Kind,
		Integrator: cfg.Integrator,
		Particles:  cfg.NumParticles(),
		Dt:         cfg.Dt,
		Duration:   cfg.Duration,
		Steps:      len(result.Times),
		Times:      result.Times,
		States:     make([][]float64, len(result.States)),
		Metrics:    result.Metrics,
	}
	for i, s := range result.States {
		data.States[i] = s
	}
	return data
}

func ExportJSON(path string, cfg *config.Config, result *md.Result) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return writeJSON(file, cfg, result)
}

func ExportJSONStdout(cfg *config.Config, result *md.Result) error {
	return writeJSON(os.Stdout, cfg, result)
}

func writeJSON(w io.Writer, cfg *config.Config, result *md.Result) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(exportData(cfg, result))
}

func ExportCSV(path string, cfg *config.Config, result *md.Result) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return WriteCSV(file, cfg, result)
}

func WriteCSV(out io.Writer, cfg *config.Config, result *md.Result) error {
	w := csv.NewWriter(out)
	defer w.Flush()

	if len(result.States) == 0 {
		return nil
	}

	header := stateHeader(cfg.NumParticles(), len(result.States[0]))
	if err := w.Write(header); err != nil {
		return err
	}

	for i := range result.States {
		row := []string{strconv.FormatFloat(result.Times[i], 'f', 6, 64)}
		for _, val := range result.States[i] {
			row = append(row, strconv.FormatFloat(val, 'f', 6, 64))
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return w.Error()
}
