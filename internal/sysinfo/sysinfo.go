/*
PURPOSE:
  Collects the host hardware/software snapshot attached to every ledger row.
  OS name and version, Go runtime version, CPU brand, total RAM, GPU name.

REQUIREMENTS:
  User-specified:
  - Capture once per process run.
  - Probe failures degrade to empty/zero values, never abort the run.

  Implementation-discovered:
  - CPU brand comes from CPUID directly (no subprocess needed).
  - GPU name still requires shelling out to nvidia-smi.
  - RAM total comes from /proc/meminfo on Linux, sysctl on macOS.

ARCHITECTURE INTEGRATION:
  - Called by: internal/engine (once, at the start of a run)
  - Produces: internal/model.SystemInfo

ERROR HANDLING:
  - Every probe is individually recoverable; failures are logged at Warn and
    the field defaults.

IMPLEMENTATION RULES:
  - exec.CommandContext for anything that shells out.
  - GPU defaults to "N/A" when nvidia-smi is absent or errors.

USAGE:
  info := sysinfo.Collect(ctx, logger)

RELATED FILES:
  - internal/model/types.go

MAINTENANCE:
  - Extend gpuName if AMD/Apple probing is ever needed.
*/

package sysinfo

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"runtime"
	"strconv"
	"strings"

	"github.com/klauspost/cpuid/v2"

	"github.com/daryltucker/prompt-runner/internal/model"
)

// Collect probes the host and returns the snapshot. It never fails; fields
// that cannot be determined are left at their zero value (GPU gets "N/A").
func Collect(ctx context.Context, logger *slog.Logger) model.SystemInfo {
	info := model.SystemInfo{
		OS:             osName(),
		OSVersion:      osVersion(ctx, logger),
		RuntimeVersion: runtime.Version(),
		CPU:            cpuid.CPU.BrandName,
		RAMTotalGB:     ramTotalGB(ctx, logger),
		GPU:            gpuName(ctx, logger),
	}

	logger.Info("Collected system info",
		"os", info.OS,
		"os_version", info.OSVersion,
		"runtime", info.RuntimeVersion,
		"cpu", info.CPU,
		"ram_gb", fmt.Sprintf("%.2f", info.RAMTotalGB),
		"gpu", info.GPU,
	)
	return info
}

func osName() string {
	switch runtime.GOOS {
	case "linux":
		return "Linux"
	case "darwin":
		return "Darwin"
	case "windows":
		return "Windows"
	default:
		return runtime.GOOS
	}
}

func osVersion(ctx context.Context, logger *slog.Logger) string {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "windows":
		cmd = exec.CommandContext(ctx, "cmd", "/c", "ver")
	default:
		cmd = exec.CommandContext(ctx, "uname", "-v")
	}

	out, err := cmd.Output()
	if err != nil {
		logger.Warn("Failed to determine OS version", "error", err)
		return ""
	}
	return strings.TrimSpace(string(out))
}

// ramTotalGB returns total physical memory in gigabytes, or 0 when unknown.
func ramTotalGB(ctx context.Context, logger *slog.Logger) float64 {
	switch runtime.GOOS {
	case "linux":
		data, err := os.ReadFile("/proc/meminfo")
		if err != nil {
			logger.Warn("Failed to read /proc/meminfo", "error", err)
			return 0
		}
		for _, line := range strings.Split(string(data), "\n") {
			if !strings.HasPrefix(line, "MemTotal:") {
				continue
			}
			// Format: "MemTotal:       32650960 kB"
			fields := strings.Fields(line)
			if len(fields) < 2 {
				return 0
			}
			kb, err := strconv.ParseFloat(fields[1], 64)
			if err != nil {
				return 0
			}
			return kb / (1024.0 * 1024.0)
		}
		return 0
	case "darwin":
		out, err := exec.CommandContext(ctx, "sysctl", "-n", "hw.memsize").Output()
		if err != nil {
			logger.Warn("Failed to query hw.memsize", "error", err)
			return 0
		}
		b, err := strconv.ParseFloat(strings.TrimSpace(string(out)), 64)
		if err != nil {
			return 0
		}
		return b / (1024.0 * 1024.0 * 1024.0)
	default:
		return 0
	}
}

// gpuName queries nvidia-smi for the GPU product name. Multi-GPU hosts get a
// newline-joined list, same as nvidia-smi prints it.
func gpuName(ctx context.Context, logger *slog.Logger) string {
	out, err := exec.CommandContext(ctx, "nvidia-smi", "--query-gpu=name", "--format=csv,noheader").Output()
	if err != nil {
		logger.Warn("nvidia-smi unavailable; NVIDIA drivers may not be installed", "error", err)
		return "N/A"
	}
	name := strings.TrimSpace(string(out))
	if name == "" {
		return "N/A"
	}
	return name
}
