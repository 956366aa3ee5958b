// Package metrics reads point-in-time host readings through gopsutil.
// Every reading degrades independently: a failed call leaves its
// field zero-valued with its OK flag down, and the snapshot carries
// on. Callers decide how degraded fields are presented.
package metrics

import (
	"net"
	"time"

	"hostsnap/internal/logger"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/load"
	"github.com/shirou/gopsutil/v4/mem"
)

// DefaultSampleInterval is how long CPU utilization sampling blocks.
// Two sequential samples (aggregate, then per-core) are taken per run.
const DefaultSampleInterval = time.Second

var metricsLogger = logger.PackageLogger("METRICS", "🧭 METRICS")

// CPU holds one CPU snapshot. PerCore carries one utilization value
// per logical CPU in enumeration order.
type CPU struct {
	Cores     int
	CoresOK   bool
	FreqMHz   float64
	FreqOK    bool
	Percent   float64
	PercentOK bool
	PerCore   []float64
	PerCoreOK bool
}

// Memory holds one virtual-memory snapshot. The whole struct degrades
// as a unit; the readings come from a single call.
type Memory struct {
	TotalBytes uint64
	UsedBytes  uint64
	Percent    float64
	OK         bool
}

// System holds host identity and pressure readings. LoadOK down means
// the platform has no load averages; Load1Fallback then carries a
// single CPU sample standing in for the 1-minute figure.
type System struct {
	Hostname      string
	HostnameOK    bool
	OS            string
	OSOK          bool
	Uptime        time.Duration
	UptimeOK      bool
	Users         int
	UsersOK       bool
	PrimaryIP     string
	Load1         float64
	Load5         float64
	Load15        float64
	LoadOK        bool
	Load1Fallback float64
	CollectedAt   time.Time
}

// CollectCPU samples core count, frequency, and utilization. Each
// reading fails independently.
func CollectCPU(interval time.Duration) CPU {
	var c CPU

	if n, err := cpu.Counts(false); err == nil && n > 0 {
		c.Cores, c.CoresOK = n, true
	} else if err != nil {
		metricsLogger.Debug("Physical core count unavailable: %v", err)
	}

	if infos, err := cpu.Info(); err == nil && len(infos) > 0 && infos[0].Mhz > 0 {
		c.FreqMHz, c.FreqOK = infos[0].Mhz, true
	} else if err != nil {
		metricsLogger.Debug("CPU frequency unavailable: %v", err)
	}

	if pcts, err := cpu.Percent(interval, false); err == nil && len(pcts) > 0 {
		c.Percent, c.PercentOK = pcts[0], true
	} else if err != nil {
		metricsLogger.Debug("Aggregate CPU sample failed: %v", err)
	}

	if pcts, err := cpu.Percent(interval, true); err == nil && len(pcts) > 0 {
		c.PerCore, c.PerCoreOK = pcts, true
	} else if err != nil {
		metricsLogger.Debug("Per-core CPU sample failed: %v", err)
	}

	return c
}

// CollectMemory reads virtual memory totals.
func CollectMemory() Memory {
	v, err := mem.VirtualMemory()
	if err != nil || v == nil {
		metricsLogger.Debug("Virtual memory unavailable: %v", err)
		return Memory{}
	}
	return Memory{
		TotalBytes: v.Total,
		UsedBytes:  v.Used,
		Percent:    v.UsedPercent,
		OK:         true,
	}
}

// CollectSystem reads host identity, uptime, sessions, load, and the
// outbound IP. interval bounds the CPU sample used when the platform
// lacks load averages.
func CollectSystem(interval time.Duration) System {
	s := System{CollectedAt: time.Now()}

	if hi, err := host.Info(); err == nil && hi != nil {
		if hi.Hostname != "" {
			s.Hostname, s.HostnameOK = hi.Hostname, true
		}
		if hi.OS != "" {
			s.OS, s.OSOK = capitalize(hi.OS)+" "+hi.KernelVersion, true
		}
	} else {
		metricsLogger.Debug("Host info unavailable: %v", err)
	}

	if secs, err := host.Uptime(); err == nil {
		s.Uptime, s.UptimeOK = time.Duration(secs)*time.Second, true
	} else {
		metricsLogger.Debug("Uptime unavailable: %v", err)
	}

	if users, err := host.Users(); err == nil {
		s.Users, s.UsersOK = len(users), true
	} else {
		metricsLogger.Debug("User sessions unavailable: %v", err)
	}

	s.PrimaryIP = primaryIP()

	if avg, err := load.Avg(); err == nil && avg != nil {
		s.Load1, s.Load5, s.Load15 = avg.Load1, avg.Load5, avg.Load15
		s.LoadOK = true
	} else {
		metricsLogger.Debug("Load averages unavailable, sampling CPU instead: %v", err)
		if pcts, err := cpu.Percent(interval/10, false); err == nil && len(pcts) > 0 {
			s.Load1Fallback = pcts[0]
		}
	}

	return s
}

// primaryIP finds the outbound-routable local address by pointing a
// connectionless socket at a public resolver. Nothing is transmitted;
// the kernel just picks the route and we read the local endpoint.
func primaryIP() string {
	conn, err := net.Dial("udp", "8.8.8.8:80")
	if err != nil {
		return "127.0.0.1"
	}
	defer conn.Close()

	if addr, ok := conn.LocalAddr().(*net.UDPAddr); ok && addr.IP != nil {
		return addr.IP.String()
	}
	return "127.0.0.1"
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	if s[0] >= 'a' && s[0] <= 'z' {
		return string(s[0]-'a'+'A') + s[1:]
	}
	return s
}
