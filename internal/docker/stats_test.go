package docker

import (
	"testing"

	"github.com/docker/docker/api/types/container"
	"github.com/stretchr/testify/assert"
)

// TestCalculateCPUPercent verifies the docker CLI stats math, including
// the online-CPU fallbacks and the division-by-zero guard.
func TestCalculateCPUPercent(t *testing.T) {
	tests := []struct {
		name string
		s    container.StatsResponse
		want float64
	}{
		{
			name: "half of one cpu",
			s: container.StatsResponse{
				CPUStats: container.CPUStats{
					CPUUsage:    container.CPUUsage{TotalUsage: 500},
					SystemUsage: 1000,
					OnlineCPUs:  1,
				},
			},
			want: 50.0,
		},
		{
			name: "scaled by online cpus",
			s: container.StatsResponse{
				CPUStats: container.CPUStats{
					CPUUsage:    container.CPUUsage{TotalUsage: 250},
					SystemUsage: 1000,
					OnlineCPUs:  4,
				},
			},
			want: 100.0,
		},
		{
			name: "percpu fallback when online cpus is zero",
			s: container.StatsResponse{
				CPUStats: container.CPUStats{
					CPUUsage: container.CPUUsage{
						TotalUsage:  500,
						PercpuUsage: []uint64{250, 250},
					},
					SystemUsage: 1000,
				},
			},
			want: 100.0,
		},
		{
			name: "zero system delta yields zero",
			s: container.StatsResponse{
				CPUStats: container.CPUStats{
					CPUUsage: container.CPUUsage{TotalUsage: 500},
				},
			},
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, calculateCPUPercent(&tt.s), 0.001)
		})
	}
}

// TestCalculateMemoryUsage verifies page cache exclusion on both cgroup
// versions and the passthrough when no cache stat is present.
func TestCalculateMemoryUsage(t *testing.T) {
	tests := []struct {
		name string
		s    container.StatsResponse
		want uint64
	}{
		{
			name: "cgroup v2 inactive_file subtracted",
			s: container.StatsResponse{
				MemoryStats: container.MemoryStats{
					Usage: 1000,
					Stats: map[string]uint64{"inactive_file": 300},
				},
			},
			want: 700,
		},
		{
			name: "cgroup v1 total_inactive_file subtracted",
			s: container.StatsResponse{
				MemoryStats: container.MemoryStats{
					Usage: 1000,
					Stats: map[string]uint64{"total_inactive_file": 400},
				},
			},
			want: 600,
		},
		{
			name: "no cache stat leaves usage untouched",
			s: container.StatsResponse{
				MemoryStats: container.MemoryStats{Usage: 1000},
			},
			want: 1000,
		},
		{
			name: "cache larger than usage leaves usage untouched",
			s: container.StatsResponse{
				MemoryStats: container.MemoryStats{
					Usage: 100,
					Stats: map[string]uint64{"inactive_file": 500},
				},
			},
			want: 100,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, calculateMemoryUsage(&tt.s))
		})
	}
}
