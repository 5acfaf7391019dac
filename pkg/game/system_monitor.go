package game

import (
	"context"
	"fmt"
	"log"
	"math"
	"sync"
	"time"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
)

// SystemStats 一次系统占用采样
type SystemStats struct {
	CPU    float64 // CPU 使用率 0~100
	Memory float64 // 内存使用率 0~100
	Valid  bool    // 是否已经完成过一次采样
}

// String 启动器状态行上显示的文本
func (s SystemStats) String() string {
	if !s.Valid {
		return "CPU --  MEM --"
	}
	return fmt.Sprintf("CPU %.1f%%  MEM %.1f%%", s.CPU, s.Memory)
}

// StatsSampler 采样函数
type StatsSampler func() (SystemStats, error)

// SampleSystemStats 通过 gopsutil 读取 CPU 和内存占用
// CPU 使用距上次调用的间隔计算，不阻塞调用方
func SampleSystemStats() (SystemStats, error) {
	v, err := mem.VirtualMemory()
	if err != nil {
		return SystemStats{}, fmt.Errorf("failed to read memory stats: %w", err)
	}
	c, err := cpu.Percent(0, false)
	if err != nil {
		return SystemStats{}, fmt.Errorf("failed to read cpu stats: %w", err)
	}

	stats := SystemStats{Memory: v.UsedPercent, Valid: true}
	if len(c) > 0 {
		stats.CPU = c[0]
	}
	stats.CPU = math.Round(stats.CPU*10) / 10
	stats.Memory = math.Round(stats.Memory*10) / 10
	return stats, nil
}

// SystemMonitor 后台周期采样系统占用
// 采样在独立 goroutine 中进行，读取加锁，游戏循环只调用 Stats
type SystemMonitor struct {
	sampler  StatsSampler
	interval time.Duration

	mu    sync.RWMutex
	stats SystemStats

	cancel context.CancelFunc
	done   chan struct{}
}

// NewSystemMonitor 创建系统监控
func NewSystemMonitor(sampler StatsSampler, interval time.Duration) *SystemMonitor {
	if sampler == nil {
		sampler = SampleSystemStats
	}
	if interval <= 0 {
		interval = 2 * time.Second
	}
	return &SystemMonitor{
		sampler:  sampler,
		interval: interval,
	}
}

// Start 启动采样协程，重复调用无效
func (m *SystemMonitor) Start(ctx context.Context) {
	if m.cancel != nil {
		return
	}
	ctx, m.cancel = context.WithCancel(ctx)
	m.done = make(chan struct{})

	go func() {
		defer close(m.done)
		ticker := time.NewTicker(m.interval)
		defer ticker.Stop()

		m.sample()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				m.sample()
			}
		}
	}()
}

// Stop 停止采样并等待协程退出
func (m *SystemMonitor) Stop() {
	if m.cancel == nil {
		return
	}
	m.cancel()
	<-m.done
	m.cancel = nil
}

// Stats 返回最近一次采样结果
func (m *SystemMonitor) Stats() SystemStats {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.stats
}

func (m *SystemMonitor) sample() {
	stats, err := m.sampler()
	if err != nil {
		log.Printf("[SystemMonitor] Warning: %v", err)
		return
	}
	m.mu.Lock()
	m.stats = stats
	m.mu.Unlock()
}
