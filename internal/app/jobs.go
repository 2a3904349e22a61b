package app

import (
	"os"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/mem"
	"github.com/shirou/gopsutil/v4/process"
	"go.uber.org/zap"
)

var cronParser = cron.NewParser(
	cron.SecondOptional | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor,
)

func (a *Application) initJob() {
	loc, _ := time.LoadLocation(a.appConfig.System.Location)
	a.sched = cron.New(cron.WithLocation(loc), cron.WithParser(cronParser))

	var err error
	_, err = a.sched.AddFunc("@every 30s", func() {
		go a.SchedSystemMonitorTask()
	})
	if err != nil {
		zap.S().Errorf("init job error %s", err.Error())
	}

	_, err = a.sched.AddFunc("@every 1m", func() {
		a.SchedLowStockScanTask()
	})
	if err != nil {
		zap.S().Errorf("init job error %s", err.Error())
	}

	// end-of-day summary for the day that just closed
	_, err = a.sched.AddFunc("@daily", func() {
		a.SchedDailySummaryTask()
	})
	if err != nil {
		zap.S().Errorf("init job error %s", err.Error())
	}

	a.sched.Start()
}

// SchedSystemMonitorTask logs host and process usage gauges.
func (a *Application) SchedSystemMonitorTask() {
	defer func() {
		if err := recover(); err != nil {
			zap.S().Error(err)
		}
	}()

	fields := make([]zap.Field, 0, 4)

	if cpuuse, err := cpu.Percent(0, false); err == nil && len(cpuuse) > 0 {
		fields = append(fields, zap.Float64("system_cpuuse", cpuuse[0]))
	}
	if meminfo, err := mem.VirtualMemory(); err == nil {
		fields = append(fields, zap.Uint64("system_memuse_mb", meminfo.Used/1024/1024))
	}
	if p, err := process.NewProcess(int32(os.Getpid())); err == nil {
		if cpuuse, err := p.CPUPercent(); err == nil {
			fields = append(fields, zap.Float64("toughpos_cpuuse", cpuuse))
		}
		if meminfo, err := p.MemoryInfo(); err == nil {
			fields = append(fields, zap.Uint64("toughpos_memuse_mb", meminfo.RSS/1024/1024))
		}
	}

	zap.L().Debug("system monitor", fields...)
}

// SchedLowStockScanTask logs the products currently at or below threshold.
func (a *Application) SchedLowStockScanTask() {
	defer func() {
		if err := recover(); err != nil {
			zap.S().Error(err)
		}
	}()

	low := a.posService.LowStockProducts()
	if len(low) == 0 {
		return
	}
	for _, p := range low {
		zap.L().Warn("low stock",
			zap.Int64("id", p.ID),
			zap.String("name", p.Name),
			zap.Int("stock", p.Stock),
			zap.Int("min_stock", p.MinStock))
	}
}

// SchedDailySummaryTask logs the closed day's sales figures.
func (a *Application) SchedDailySummaryTask() {
	defer func() {
		if err := recover(); err != nil {
			zap.S().Error(err)
		}
	}()

	yesterday := time.Now().UTC().AddDate(0, 0, -1).Format("2006-01-02")
	summary, _, _ := a.posService.DailyReport(yesterday)
	zap.L().Info("daily sales summary",
		zap.String("date", yesterday),
		zap.Float64("total_sales", summary.TotalSales),
		zap.Int("invoices", summary.InvoiceCount),
		zap.Int("units_sold", summary.UnitsSold))
}
