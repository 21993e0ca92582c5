package docker

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/docker/docker/api/types/container"

	"github.com/arxiv-assistant/arxivctl/internal/model"
)

// SnapshotStats takes a one-shot resource usage snapshot for each running
// container in the given list, the SDK equivalent of
// `docker stats --no-stream` scoped to the stack.
//
// Stopped containers are skipped: the daemon has no live cgroup data for
// them and the snapshot would be all zeros. A failure to read stats for
// one container does not abort the snapshot for the others.
func SnapshotStats(ctx context.Context, cli *Client, states []model.ServiceState) ([]model.ResourceStats, error) {
	result := make([]model.ResourceStats, 0, len(states))

	for _, s := range states {
		if s.State != "running" {
			continue
		}

		stats, err := snapshotOne(ctx, cli, s)
		if err != nil {
			// Containers can exit between the list and the stats call.
			continue
		}
		result = append(result, stats)
	}

	return result, nil
}

// snapshotOne reads and decodes a single container's one-shot stats.
func snapshotOne(ctx context.Context, cli *Client, s model.ServiceState) (model.ResourceStats, error) {
	resp, err := cli.Inner().ContainerStatsOneShot(ctx, s.ContainerID)
	if err != nil {
		return model.ResourceStats{}, fmt.Errorf("stats for %s: %w", s.ContainerName, err)
	}
	defer func() { _ = resp.Body.Close() }()

	var raw container.StatsResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return model.ResourceStats{}, fmt.Errorf("decode stats for %s: %w", s.ContainerName, err)
	}

	return model.ResourceStats{
		Name:        s.ContainerName,
		CPUPercent:  calculateCPUPercent(&raw),
		MemoryUsage: calculateMemoryUsage(&raw),
		MemoryLimit: raw.MemoryStats.Limit,
		PIDs:        raw.PidsStats.Current,
	}, nil
}

// calculateCPUPercent derives a CPU percentage from a stats sample using
// the same math as the docker CLI: the delta of container CPU time over
// the delta of system CPU time, scaled by the number of online CPUs.
// With a one-shot sample the pre-stats are zero, which yields the
// container's share of CPU time since boot, the same figure
// `docker stats --no-stream` reports.
func calculateCPUPercent(s *container.StatsResponse) float64 {
	cpuDelta := float64(s.CPUStats.CPUUsage.TotalUsage) - float64(s.PreCPUStats.CPUUsage.TotalUsage)
	systemDelta := float64(s.CPUStats.SystemUsage) - float64(s.PreCPUStats.SystemUsage)

	if systemDelta <= 0 || cpuDelta < 0 {
		return 0
	}

	onlineCPUs := float64(s.CPUStats.OnlineCPUs)
	if onlineCPUs == 0 {
		onlineCPUs = float64(len(s.CPUStats.CPUUsage.PercpuUsage))
	}
	if onlineCPUs == 0 {
		onlineCPUs = 1
	}

	return cpuDelta / systemDelta * onlineCPUs * 100.0
}

// calculateMemoryUsage returns memory usage with the page cache excluded,
// matching the docker CLI: on cgroup v2 hosts the "inactive_file" stat is
// subtracted from the raw usage figure, on cgroup v1 "total_inactive_file".
func calculateMemoryUsage(s *container.StatsResponse) uint64 {
	usage := s.MemoryStats.Usage

	if v, ok := s.MemoryStats.Stats["inactive_file"]; ok && v < usage {
		return usage - v
	}
	if v, ok := s.MemoryStats.Stats["total_inactive_file"]; ok && v < usage {
		return usage - v
	}
	return usage
}
