package models

import (
	"time"
)

// Holding represents one underlying security's share of a fund's basket.
// Weight is a decimal in [0,1]. Sector is "" when the data source doesn't
// carry one.
type Holding struct {
	Ticker string  `json:"ticker"`
	Name   string  `json:"name"`
	Weight float64 `json:"weight"`
	Sector string  `json:"sector,omitempty"`
}

// FundData is a fund and its basket of underlying holdings. For a real fund
// the holding weights sum to ~1.0; a bare stock is wrapped as a synthetic
// fund with exactly one holding at weight 1.0.
type FundData struct {
	Ticker      string    `json:"ticker"`
	Name        string    `json:"name"`
	Holdings    []Holding `json:"holdings"`
	LastUpdated time.Time `json:"last_updated"`
}
