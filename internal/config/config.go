package config

import (
	"os"
	"strconv"

	"github.com/labstack/gommon/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Matching holds the tunable constants of the matching engine. The score
// thresholds are deliberately configuration, not code: they are calibrated
// against real statement data per deployment.
type Matching struct {
	// AcceptScore is the minimum score for conciliado_aproximado.
	AcceptScore float64
	// AdmitScore is the minimum score for a candidate to be considered at all.
	AdmitScore float64
	// TieMargin: if the top candidate does not beat the runner-up by this many
	// points, the movement is classified multiple_match.
	TieMargin float64
	// DateWindowDays bounds the candidate pool around the movement date.
	DateWindowDays int
	// DateToleranceDays separates "same date" from diferencia_fecha.
	DateToleranceDays int
	// AmountTolerancePct separates "same amount" from diferencia_valor,
	// as a percentage of the movement amount.
	AmountTolerancePct float64
	// AmountDecayPct is the relative difference at which the amount
	// component of the score reaches zero.
	AmountDecayPct float64
	// AmountWeight and DateWeight combine the component scores; they sum to 1.
	AmountWeight float64
	DateWeight   float64
}

// Server holds the HTTP-facing settings.
type Server struct {
	Port       string
	CORSOrigin string
	Workers    int
}

func DefaultMatching() Matching {
	return Matching{
		AcceptScore:        75,
		AdmitScore:         40,
		TieMargin:          10,
		DateWindowDays:     30,
		DateToleranceDays:  3,
		AmountTolerancePct: 1.0,
		AmountDecayPct:     25.0,
		AmountWeight:       0.6,
		DateWeight:         0.4,
	}
}

// LoadMatching reads the matching thresholds from the environment,
// falling back to the calibrated defaults.
func LoadMatching() Matching {
	m := DefaultMatching()
	m.AcceptScore = envFloat("MATCH_ACCEPT_SCORE", m.AcceptScore)
	m.AdmitScore = envFloat("MATCH_ADMIT_SCORE", m.AdmitScore)
	m.TieMargin = envFloat("MATCH_TIE_MARGIN", m.TieMargin)
	m.DateWindowDays = envInt("MATCH_DATE_WINDOW_DAYS", m.DateWindowDays)
	m.DateToleranceDays = envInt("MATCH_DATE_TOLERANCE_DAYS", m.DateToleranceDays)
	m.AmountTolerancePct = envFloat("MATCH_AMOUNT_TOLERANCE_PCT", m.AmountTolerancePct)
	m.AmountDecayPct = envFloat("MATCH_AMOUNT_DECAY_PCT", m.AmountDecayPct)
	return m
}

func LoadServer() Server {
	return Server{
		Port:       envString("PORT", "8080"),
		CORSOrigin: envString("CORS_ORIGIN", "http://localhost:3000"),
		Workers:    envInt("RECONCILE_WORKERS", 4),
	}
}

// InitDB opens the postgres connection from DATABASE_URL.
func InitDB() *gorm.DB {
	dsn := envString("DATABASE_URL",
		"host=localhost user=postgres password=postgres dbname=conciliacion port=5432 sslmode=disable")

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("[Config] cannot connect to database: %v", err)
	}
	return db
}

func envString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Warnf("[Config] invalid %s=%q, using %d", key, v, fallback)
		return fallback
	}
	return n
}

func envFloat(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		log.Warnf("[Config] invalid %s=%q, using %g", key, v, fallback)
		return fallback
	}
	return f
}
