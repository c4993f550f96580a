package domain

// ChartSeries is one backend-calculated chart: x labels with matched y
// values, plus an optional average reference line.
type ChartSeries struct {
	X       []string  `json:"x"`
	Y       []float64 `json:"y"`
	AvgArr  []float64 `json:"avg_arr,omitempty"`
	XBounds []int     `json:"x_bounds,omitempty"`
}

// DailyGauge is today's practiced minutes against the daily target.
type DailyGauge struct {
	TotalToday int `json:"total_today"`
	Target     int `json:"target"`
}

// DashboardStats is the payload of GET /api/dashboard/stats. The chart
// sub-objects are pointers: a missing sub-object means that chart is
// skipped, not that the whole payload is invalid.
type DashboardStats struct {
	Cumulative       *ChartSeries `json:"cumulative"`
	Weekly           *ChartSeries `json:"weekly"`
	Daily            *DailyGauge  `json:"daily"`
	CommonInstrument string       `json:"common_instrument"`
	TotalMinutes     int          `json:"total_minutes"`
	AverageMinutes   float64      `json:"average_minutes"`
	CommonPiece      *string      `json:"common_piece"`
}
