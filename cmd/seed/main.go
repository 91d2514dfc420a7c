package main

import (
	"database/sql"
	"fmt"
	"log"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/stakeflow/stakeflow/config"
	"github.com/stakeflow/stakeflow/pkg/helpers"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := sql.Open("pgx", cfg.PostgresDSN())
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	seedUser(db, "admin@defi.com", "admin123", "admin")
	seedUser(db, "investor@defi.com", "user123", "user")

	var poolCount int
	if err := db.QueryRow(`SELECT count(*) FROM pools`).Scan(&poolCount); err != nil {
		log.Fatalf("failed to count pools: %v", err)
	}
	if poolCount > 0 {
		fmt.Println("pools already seeded, skipping")
		return
	}

	pools := []struct {
		name string
		apy  float64
		lock int
		risk string
		desc string
	}{
		{"Ethereum 2.0 Staking", 4.5, 30, "Low", "Safe staking for ETH holders."},
		{"Solana High Yield", 7.2, 14, "Medium", "Higher rewards with moderate risk."},
		{"Degen Farm Protocol", 45.0, 7, "High", "Experimental protocol with high volatility."},
	}
	for _, p := range pools {
		var id int64
		err := db.QueryRow(`
			INSERT INTO pools (name, apy_percentage, min_lock_period, risk_level, description)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id
		`, p.name, p.apy, p.lock, p.risk, p.desc).Scan(&id)
		if err != nil {
			log.Fatalf("failed to seed pool %q: %v", p.name, err)
		}
		fmt.Printf("seeded pool: id=%d name=%s\n", id, p.name)
	}
}

func seedUser(db *sql.DB, email, password, role string) {
	hash, err := helpers.HashPassword(password)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}
	var id int64
	err = db.QueryRow(`
		INSERT INTO users (email, password_hash, role)
		VALUES ($1, $2, $3)
		ON CONFLICT (email) DO UPDATE SET role = EXCLUDED.role
		RETURNING id
	`, email, hash, role).Scan(&id)
	if err != nil {
		log.Fatalf("failed to seed user %s: %v", email, err)
	}
	fmt.Printf("seeded user: id=%d email=%s role=%s\n", id, email, role)
}
