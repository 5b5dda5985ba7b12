package simulation

import (
	"time"

	"gorm.io/gorm"
)

// Trade sides
const (
	SideBuy  = "BUY"
	SideSell = "SELL"
)

// Instrument is a tradable symbol in the market simulator with an
// admin-maintained reference price.
type Instrument struct {
	gorm.Model
	Symbol    string  `json:"symbol" gorm:"uniqueIndex;not null"`
	Name      string  `json:"name"`
	LastPrice float64 `json:"last_price" gorm:"default:0"`
	IsActive  bool    `json:"is_active" gorm:"default:true"`
	IsDeleted bool    `gorm:"default:false"`
}

// Portfolio is a user's simulated trading account
type Portfolio struct {
	gorm.Model
	UserID      uint    `json:"user_id" gorm:"uniqueIndex;not null"`
	CashBalance float64 `json:"cash_balance" gorm:"default:0"`
	IsDeleted   bool    `gorm:"default:false"`
}

// Holding is a user's position in one instrument
type Holding struct {
	gorm.Model
	PortfolioID  uint    `json:"portfolio_id" gorm:"index:idx_portfolio_instrument;not null"`
	InstrumentID uint    `json:"instrument_id" gorm:"index:idx_portfolio_instrument;not null"`
	Quantity     int64   `json:"quantity" gorm:"default:0"`
	AvgPrice     float64 `json:"avg_price" gorm:"default:0"`
	IsDeleted    bool    `gorm:"default:false"`
}

// Trade records a single simulated buy or sell
type Trade struct {
	gorm.Model
	PortfolioID  uint      `json:"portfolio_id" gorm:"index;not null"`
	InstrumentID uint      `json:"instrument_id" gorm:"index;not null"`
	Side         string    `json:"side" gorm:"not null"` // BUY, SELL
	Quantity     int64     `json:"quantity" gorm:"not null"`
	Price        float64   `json:"price" gorm:"not null"`
	ExecutedAt   time.Time `json:"executed_at"`
	IsDeleted    bool      `gorm:"default:false"`
}
