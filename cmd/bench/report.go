package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"runtime"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
)

// BenchmarkResult holds results for one test run.
type BenchmarkResult struct {
	Implementation string  `json:"implementation"`
	Order          string  `json:"order"`
	NumWorkers     int     `json:"num_workers"`
	BatchSize      int     `json:"batch_size"`
	NumInserted    int64   `json:"num_inserted"`
	NumRemoved     int64   `json:"num_removed"`
	TestDuration   string  `json:"test_duration"`       // e.g. "5s"
	ActualElapsed  string  `json:"actual_elapsed"`      // measured time
	Throughput     float64 `json:"throughput_ops_sec"`  // inserts + removes per second
	Timestamp      int64   `json:"timestamp"`
	GoVersion      string  `json:"go_version"`
}

// SystemInfo holds system information.
type SystemInfo struct {
	NumCPU            int     `json:"num_cpu"`
	TrueCPU           int     `json:"true_cpu,omitempty"`
	SimulatedCPUCount int     `json:"simulated_cpu_count,omitempty"`
	CPUModel          string  `json:"cpu_model,omitempty"`
	CPUSpeedMHz       float64 `json:"cpu_speed_mhz,omitempty"`
	GOARCH            string  `json:"go_arch"`
	TotalMemory       uint64  `json:"total_memory_bytes,omitempty"`
}

// FullReport represents a complete test session.
type FullReport struct {
	SessionID   string            `json:"session_id"`
	SessionTime string            `json:"session_time"`
	SystemInfo  SystemInfo        `json:"system_info"`
	Benchmarks  []BenchmarkResult `json:"benchmarks"`
}

// gatherSystemInfo collects basic CPU and memory details.
func gatherSystemInfo() SystemInfo {
	var cpuModel string
	var cpuSpeed float64
	if infos, err := cpu.Info(); err == nil && len(infos) > 0 {
		cpuModel = infos[0].ModelName
		cpuSpeed = infos[0].Mhz
	}

	var totalMemory uint64
	if vm, err := mem.VirtualMemory(); err == nil {
		totalMemory = vm.Total
	}

	return SystemInfo{
		NumCPU:      runtime.NumCPU(),
		CPUModel:    cpuModel,
		CPUSpeedMHz: cpuSpeed,
		GOARCH:      runtime.GOARCH,
		TotalMemory: totalMemory,
	}
}

func loadReports(filename string) ([]FullReport, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %q", filename)
	}
	if len(data) == 0 {
		return nil, nil
	}
	var sessions []FullReport
	if err := json.Unmarshal(data, &sessions); err != nil {
		return nil, errors.Wrapf(err, "decoding %q", filename)
	}
	return sessions, nil
}

// appendReports adds sessions to the JSON file, creating it when missing.
func appendReports(filename string, sessions []FullReport) error {
	previous, err := loadReports(filename)
	if err != nil && !os.IsNotExist(errors.Cause(err)) {
		return err
	}
	updated := append(previous, sessions...)
	data, err := json.MarshalIndent(updated, "", "  ")
	if err != nil {
		return errors.Wrap(err, "encoding report")
	}
	if err := os.WriteFile(filename, data, 0644); err != nil {
		return errors.Wrapf(err, "writing %q", filename)
	}
	return nil
}

// writeMarkdownTable renders the last session in sessions as a markdown table,
// fastest first.
func writeMarkdownTable(w io.Writer, sessions []FullReport) error {
	if len(sessions) == 0 {
		return errors.New("no sessions found")
	}
	lastSession := sessions[len(sessions)-1]

	implMetaMap := make(map[string]Implementation)
	for _, impl := range getImplementations() {
		implMetaMap[impl.name] = impl
	}

	type tableRow struct {
		implementation string
		pkgName        string
		features       string
		workers        int
		throughput     float64
	}
	var rows []tableRow
	for _, bench := range lastSession.Benchmarks {
		meta := implMetaMap[bench.Implementation]
		rows = append(rows, tableRow{
			implementation: bench.Implementation,
			pkgName:        meta.pkgName,
			features:       strings.Join(meta.features, ", "),
			workers:        bench.NumWorkers,
			throughput:     bench.Throughput,
		})
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].throughput > rows[j].throughput
	})

	fmt.Fprintln(w, "## Last Session Benchmark Summary")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "| Implementation | Package  | Features                    | Workers | Throughput (ops/sec) |")
	fmt.Fprintln(w, "|----------------|----------|-----------------------------|---------|----------------------|")
	for _, r := range rows {
		fmt.Fprintf(w, "| %-14s | %-8s | %-27s | %7d | %20.0f |\n",
			r.implementation, r.pkgName, r.features, r.workers, r.throughput)
	}
	return nil
}
