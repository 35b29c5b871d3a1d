// Package operation
package operation

// FlightStats 由飞行记录集合推导出的汇总统计, 只在请求时计算, 从不落库
type FlightStats struct {
	TotalFlightHours     float64 `json:"totalFlightHours"`
	TotalLandings        int     `json:"totalLandings"`
	TotalNightHours      float64 `json:"totalNightHours"`
	TotalInstrumentHours float64 `json:"totalInstrumentHours"`
	TotalCrossCountry    float64 `json:"totalCrossCountry"`
	TotalPIC             float64 `json:"totalPIC"`
	TotalDual            float64 `json:"totalDual"`
	TotalSolo            float64 `json:"totalSolo"`
}

// ComputeFlightStats 对飞行记录集合做纯求和归约
// 结果与记录顺序无关, 空集合返回全零统计
// totalDuration由调用方提供, 不要求等于分类时间之和
func ComputeFlightStats(entries []*LogbookEntry) *FlightStats {
	stats := &FlightStats{}
	for _, entry := range entries {
		if entry == nil {
			continue
		}
		stats.TotalFlightHours += entry.TotalDuration
		stats.TotalLandings += entry.LandingsDay + entry.LandingsNight
		stats.TotalNightHours += entry.Night
		stats.TotalInstrumentHours += entry.ActualInstrument + entry.SimulatedInstrument
		stats.TotalCrossCountry += entry.CrossCountry
		stats.TotalPIC += entry.PilotInCommand
		stats.TotalDual += entry.DualReceived
		stats.TotalSolo += entry.Solo
	}
	return stats
}
