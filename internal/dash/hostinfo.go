package dash

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/prometheus/procfs"
	"golang.org/x/sys/unix"
)

// HostInfo is the cosmetic host summary shown in the dashboard header.
// Every field is best-effort; a probe failure leaves it empty and the
// header simply omits it.
type HostInfo struct {
	Kernel string
	Load   string
	Uptime string
}

// Line assembles the header suffix, or "" when nothing was probed.
func (h HostInfo) Line() string {
	parts := make([]string, 0, 3)
	for _, p := range []string{h.Kernel, h.Load, h.Uptime} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, " | ")
}

// ProbeHost gathers host info from uname and the default proc mount.
func ProbeHost() HostInfo {
	return probeHost(procfs.DefaultMountPoint)
}

func probeHost(mount string) HostInfo {
	var info HostInfo

	var uts unix.Utsname
	if err := unix.Uname(&uts); err == nil {
		release := uts.Release[:]
		if i := bytes.IndexByte(release, 0); i >= 0 {
			release = release[:i]
		}
		info.Kernel = "Linux " + string(release)
	}

	fs, err := procfs.NewFS(mount)
	if err != nil {
		return info
	}
	if load, err := fs.LoadAvg(); err == nil {
		info.Load = fmt.Sprintf("load %.2f %.2f %.2f", load.Load1, load.Load5, load.Load15)
	}
	if stat, err := fs.Stat(); err == nil && stat.BootTime > 0 {
		boot := time.Unix(int64(stat.BootTime), 0)
		info.Uptime = "up " + FormatUptime(time.Since(boot))
	}

	return info
}

// FormatUptime renders a duration as a compact uptime string.
func FormatUptime(d time.Duration) string {
	if d < time.Minute {
		return "<1m"
	}

	days := int(d.Hours()) / 24
	hours := int(d.Hours()) % 24
	minutes := int(d.Minutes()) % 60

	switch {
	case days > 0:
		return fmt.Sprintf("%dd %dh", days, hours)
	case hours > 0:
		return fmt.Sprintf("%dh %dm", hours, minutes)
	default:
		return fmt.Sprintf("%dm", minutes)
	}
}
