package adminapi

import (
	"os"
	"runtime"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/mem"
	"github.com/talkincode/toughpos/internal/webserver"
)

type systemInfoView struct {
	Hostname   string  `json:"hostname"`
	Platform   string  `json:"platform"`
	GoVersion  string  `json:"go_version"`
	Pid        int     `json:"pid"`
	CPUPercent float64 `json:"cpu_percent"`
	MemPercent float64 `json:"mem_percent"`
	Uptime     uint64  `json:"uptime"`
	Time       string  `json:"time"`
}

func registerSystemRoutes() {
	webserver.ApiGET("/system/info", getSystemInfo)
}

// getSystemInfo feeds the admin dashboard header with a host snapshot.
func getSystemInfo(c echo.Context) error {
	info := systemInfoView{
		GoVersion: runtime.Version(),
		Pid:       os.Getpid(),
		Time:      time.Now().Format(time.RFC3339),
	}
	if hostname, err := os.Hostname(); err == nil {
		info.Hostname = hostname
	}
	if hinfo, err := host.Info(); err == nil {
		info.Platform = hinfo.Platform
		info.Uptime = hinfo.Uptime
	}
	if cpuuse, err := cpu.Percent(0, false); err == nil && len(cpuuse) > 0 {
		info.CPUPercent = cpuuse[0]
	}
	if meminfo, err := mem.VirtualMemory(); err == nil {
		info.MemPercent = meminfo.UsedPercent
	}
	return ok(c, info)
}
