package models

import "time"

// Backing store names for the user-activity pages.
const (
	StoreNational = "national"
	StoreSites    = "sites"
)

// AllowedForecastHorizons lists the horizons, in minutes, selectable on the metrics page.
var AllowedForecastHorizons = []int{60, 120, 180, 240, 300, 360, 420}

type MetricsDashboardQueryParams struct {
	Start    string `mapstructure:"start"    validate:"omitempty,datetime=2006-01-02"`
	End      string `mapstructure:"end"      validate:"omitempty,datetime=2006-01-02"`
	Adjusted bool   `mapstructure:"adjusted"`
	Horizons string `mapstructure:"horizons" validate:"max=64"`
	Zone     int    `mapstructure:"zone"     validate:"gte=0"`
}

type MetricValuesQueryParams struct {
	Name    string `mapstructure:"name"    validate:"required,max=255"`
	Zone    int    `mapstructure:"zone"    validate:"gte=0"`
	Start   string `mapstructure:"start"   validate:"omitempty,datetime=2006-01-02"`
	End     string `mapstructure:"end"     validate:"omitempty,datetime=2006-01-02"`
	Horizon *int   `mapstructure:"horizon" validate:"omitempty,gte=0"`
}

type UsersDashboardQueryParams struct {
	Store string `mapstructure:"store" validate:"max=16"`
	Start string `mapstructure:"start" validate:"omitempty,datetime=2006-01-02"`
	End   string `mapstructure:"end"   validate:"omitempty,datetime=2006-01-02"`
	Email string `mapstructure:"email" validate:"omitempty,max=254"`
}

type LastRequestsQueryParams struct {
	Store string `mapstructure:"store" validate:"max=16"`
}

type UserRequestsQueryParams struct {
	Store string `mapstructure:"store" validate:"max=16"`
	Email string `mapstructure:"email" validate:"required,max=254"`
	Start string `mapstructure:"start" validate:"omitempty,datetime=2006-01-02"`
	End   string `mapstructure:"end"   validate:"omitempty,datetime=2006-01-02"`
}

type MetricNamesResponse struct {
	MAE  string `json:"mae"`
	RMSE string `json:"rmse"`
}

type MetricsCharts struct {
	MAEBar            Chart `json:"mae_bar"`
	MAEByHorizon      Chart `json:"mae_by_horizon"`
	MAEHorizonScatter Chart `json:"mae_horizon_scatter"`
	MAEvsRMSE         Chart `json:"mae_vs_rmse"`
}

type MetricsDashboardResponse struct {
	Metrics      MetricNamesResponse `json:"metrics"`
	Start        string              `json:"start"`
	End          string              `json:"end"`
	Horizons     []int               `json:"horizons"`
	RecentLabels [3]string           `json:"recent_labels"`
	RecentMAE    DailyValueTriple    `json:"recent_mae"`
	RecentRMSE   DailyValueTriple    `json:"recent_rmse"`
	Charts       MetricsCharts       `json:"charts"`
	MAETable     []DateValueRow      `json:"mae_table"`
	RMSETable    []DateValueRow      `json:"rmse_table"`
}

type MetricValuesResponse struct {
	Records []MetricRecord `json:"records"`
	X       []time.Time    `json:"x"`
	Y       []string       `json:"y"`
}

// RequestRow is a row of the per-user requests table.
type RequestRow struct {
	CreatedUTC time.Time `json:"created_utc"`
	URL        string    `json:"url"`
}

type UsersDashboardResponse struct {
	Store           string              `json:"store"`
	AvailableStores []string            `json:"available_stores"`
	Start           string              `json:"start"`
	End             string              `json:"end"`
	LastRequests    []LastRequestRecord `json:"last_requests"`
	SelectedEmail   string              `json:"selected_email"`
	Requests        []RequestRow        `json:"requests"`
	DailyCounts     []DailyRequestCount `json:"daily_counts"`
	Chart           Chart               `json:"chart"`
}

type LastRequestsResponse struct {
	Store        string              `json:"store"`
	LastRequests []LastRequestRecord `json:"last_requests"`
}

type UserRequestsResponse struct {
	Store       string              `json:"store"`
	Email       string              `json:"email"`
	Requests    []RequestRow        `json:"requests"`
	DailyCounts []DailyRequestCount `json:"daily_counts"`
}

type StoresResponse struct {
	Available []string `json:"available"`
	Default   string   `json:"default,omitempty"`
}
