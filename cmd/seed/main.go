package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/labstack/gommon/log"

	"pharmatrace/internal/config"
	"pharmatrace/internal/db"
	"pharmatrace/internal/model"
	"pharmatrace/internal/repository"
	"pharmatrace/internal/service"
)

// SeedRecordData is one license row of a seed source.
type SeedRecordData struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	LicenseNumber string `json:"licenseNumber"`
	Role          uint8  `json:"role"`
}

func main() {
	force := flag.Bool("force", false, "rewrite the records even when the registry is not empty")
	source := flag.String("source", "", "JSON file or http(s) URL with license records; defaults to the built-in synthetic rows")
	flag.Parse()

	log.Info("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.New(cfg.DBDriver, cfg.DBDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Info("Connected to database")

	if err := gormDB.AutoMigrate(&model.RegistrationRequest{}, &model.PPBRecord{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Info("Database migrations completed")

	ctx := context.Background()
	ppbRepo := repository.NewPPBRepository(gormDB)

	existing, err := ppbRepo.Count(ctx)
	if err != nil {
		log.Fatalf("Failed to count records: %v", err)
	}
	if existing > 0 && !*force {
		log.Infof("Registry already holds %d records; use -force to rewrite", existing)
		return
	}

	records := service.DefaultPPBRecords()
	if *source != "" {
		log.Infof("Loading records from: %s", *source)
		if records, err = loadRecords(*source); err != nil {
			log.Fatalf("Failed to load records: %v", err)
		}
	}

	if err := ppbRepo.Upsert(ctx, records); err != nil {
		log.Fatalf("Failed to seed records: %v", err)
	}

	log.Infof("Seed completed successfully!")
	log.Infof("  - Records written: %d", len(records))
	log.Infof("  - Records present before: %d", existing)
}

// loadRecords reads seed rows from a local file or URL, skipping rows without a license number or with an
// unknown role.
func loadRecords(source string) ([]model.PPBRecord, error) {
	body, err := readSource(source)
	if err != nil {
		return nil, err
	}

	var rows []SeedRecordData
	if err := json.Unmarshal(body, &rows); err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}

	records := make([]model.PPBRecord, 0, len(rows))
	skipped := 0
	for _, row := range rows {
		role := model.UserRole(row.Role)
		if strings.TrimSpace(row.LicenseNumber) == "" || !role.Valid() {
			log.Warnf("Skipping invalid record: %+v", row)
			skipped++
			continue
		}
		records = append(records, model.PPBRecord{
			Name:          row.Name,
			Email:         row.Email,
			LicenseNumber: strings.TrimSpace(row.LicenseNumber),
			Role:          role,
		})
	}

	if skipped > 0 {
		log.Warnf("Skipped %d invalid records", skipped)
	}
	return records, nil
}

func readSource(source string) ([]byte, error) {
	if !strings.HasPrefix(source, "http://") && !strings.HasPrefix(source, "https://") {
		return os.ReadFile(source)
	}

	resp, err := http.Get(source)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch from API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("API returned status code: %d", resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}
