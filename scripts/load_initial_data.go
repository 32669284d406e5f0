package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"guard-deployment-backend/internal/config"
	"guard-deployment-backend/internal/database"
	"guard-deployment-backend/internal/database/models"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const seedUser = "seed"

// Simple structures that directly match DB schema
type SiteData struct {
	Code     string `yaml:"code"`
	Name     string `yaml:"name"`
	Timezone string `yaml:"timezone"`
}

type PostData struct {
	SiteCode               string              `yaml:"site_code"`
	Name                   string              `yaml:"name"`
	GeofenceType           models.GeofenceType `yaml:"geofence_type"`
	CenterLat              float64             `yaml:"center_lat"`
	CenterLon              float64             `yaml:"center_lon"`
	RadiusMeters           float64             `yaml:"radius_meters"`
	Polygon                []models.Vertex     `yaml:"polygon,omitempty"`
	CoverageRequired       bool                `yaml:"coverage_required"`
	RequiredGuards         int                 `yaml:"required_guards"`
	RiskLevel              models.RiskLevel    `yaml:"risk_level"`
	ArmedRequired          bool                `yaml:"armed_required"`
	RequiredCertifications []string            `yaml:"required_certifications,omitempty"`
	PostOrders             string              `yaml:"post_orders,omitempty"`
}

type ShiftData struct {
	SiteCode  string           `yaml:"site_code"`
	Name      string           `yaml:"name"`
	StartTime models.ClockTime `yaml:"start_time"`
	EndTime   models.ClockTime `yaml:"end_time"`
}

type WorkerData struct {
	EmployeeCode   string   `yaml:"employee_code"`
	FullName       string   `yaml:"full_name"`
	Username       string   `yaml:"username,omitempty"`
	IsArmed        bool     `yaml:"is_armed"`
	Certifications []string `yaml:"certifications,omitempty"`
	Sites          []string `yaml:"sites,omitempty"`
}

type AutoApprovalRuleData struct {
	Name                    string   `yaml:"name"`
	Sequence                int      `yaml:"sequence"`
	RequestTypes            []string `yaml:"request_types"`
	ReasonCodes             []string `yaml:"reason_codes,omitempty"`
	Priorities              []string `yaml:"priorities,omitempty"`
	PostRiskLevels          []string `yaml:"post_risk_levels,omitempty"`
	MaxDistanceMeters       *float64 `yaml:"max_distance_meters,omitempty"`
	MaxMinutesOutsideWindow *float64 `yaml:"max_minutes_outside_window,omitempty"`
	MinRestHours            *float64 `yaml:"min_rest_hours,omitempty"`
}

// SeedFile is one YAML document; any section may be omitted
type SeedFile struct {
	Sites             []SiteData             `yaml:"sites"`
	Posts             []PostData             `yaml:"posts"`
	Shifts            []ShiftData            `yaml:"shifts"`
	Workers           []WorkerData           `yaml:"workers"`
	AutoApprovalRules []AutoApprovalRuleData `yaml:"auto_approval_rules"`
}

func main() {
	log.Println("Loading initial data from YAML files...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	seed, err := loadSeedFiles("scripts/data")
	if err != nil {
		log.Fatalf("Failed to read seed files: %v", err)
	}
	if err := applySeed(db, seed); err != nil {
		log.Fatalf("Failed to load data: %v", err)
	}

	log.Println("Initial data loaded successfully")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	opts := &database.Options{
		LogLevel: logger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

// loadSeedFiles merges every .yaml file under dataDir
func loadSeedFiles(dataDir string) (*SeedFile, error) {
	merged := &SeedFile{}
	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !(strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml")) {
			return nil
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		file, err := parseSeed(data)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		merged.Sites = append(merged.Sites, file.Sites...)
		merged.Posts = append(merged.Posts, file.Posts...)
		merged.Shifts = append(merged.Shifts, file.Shifts...)
		merged.Workers = append(merged.Workers, file.Workers...)
		merged.AutoApprovalRules = append(merged.AutoApprovalRules, file.AutoApprovalRules...)
		return nil
	})
	return merged, err
}

func parseSeed(data []byte) (*SeedFile, error) {
	var file SeedFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, err
	}
	for _, s := range file.Sites {
		if s.Timezone != "" {
			if _, err := time.LoadLocation(s.Timezone); err != nil {
				return nil, fmt.Errorf("site %s: %w", s.Code, err)
			}
		}
	}
	for _, p := range file.Posts {
		if p.RiskLevel != "" && !p.RiskLevel.IsValid() {
			return nil, fmt.Errorf("post %s: unknown risk level %q", p.Name, p.RiskLevel)
		}
	}
	return &file, nil
}

func applySeed(db *gorm.DB, seed *SeedFile) error {
	siteMap := make(map[string]*models.Site)
	created := 0
	for _, data := range seed.Sites {
		site, isNew, err := createSite(db, data)
		if err != nil {
			return fmt.Errorf("failed to create site %s: %w", data.Code, err)
		}
		siteMap[data.Code] = site
		if isNew {
			created++
		}
	}
	log.Printf("Sites: %d created, %d total", created, len(seed.Sites))

	created = 0
	for _, data := range seed.Posts {
		isNew, err := createPost(db, data, siteMap)
		if err != nil {
			return fmt.Errorf("failed to create post %s: %w", data.Name, err)
		}
		if isNew {
			created++
		}
	}
	log.Printf("Posts: %d created, %d total", created, len(seed.Posts))

	created = 0
	for _, data := range seed.Shifts {
		isNew, err := createShift(db, data, siteMap)
		if err != nil {
			return fmt.Errorf("failed to create shift %s: %w", data.Name, err)
		}
		if isNew {
			created++
		}
	}
	log.Printf("Shifts: %d created, %d total", created, len(seed.Shifts))

	created = 0
	for _, data := range seed.Workers {
		isNew, err := createWorker(db, data, siteMap)
		if err != nil {
			return fmt.Errorf("failed to create worker %s: %w", data.EmployeeCode, err)
		}
		if isNew {
			created++
		}
	}
	log.Printf("Workers: %d created, %d total", created, len(seed.Workers))

	created = 0
	for _, data := range seed.AutoApprovalRules {
		isNew, err := createRule(db, data)
		if err != nil {
			return fmt.Errorf("failed to create auto-approval rule %s: %w", data.Name, err)
		}
		if isNew {
			created++
		}
	}
	log.Printf("Auto-approval rules: %d created, %d total", created, len(seed.AutoApprovalRules))
	return nil
}

// findOrCreate loads the row matching query into dst, creating it from
// build when missing. It reports whether a row was created.
func findOrCreate(db *gorm.DB, dst interface{}, build func(), query string, args ...interface{}) (bool, error) {
	err := db.Where(query, args...).First(dst).Error
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, fmt.Errorf("failed to query: %w", err)
	}
	build()
	if err := db.Create(dst).Error; err != nil {
		return false, err
	}
	return true, nil
}

func createSite(db *gorm.DB, data SiteData) (*models.Site, bool, error) {
	var site models.Site
	created, err := findOrCreate(db, &site, func() {
		tz := data.Timezone
		if tz == "" {
			tz = "UTC"
		}
		site = models.Site{Code: data.Code, Name: data.Name, Timezone: tz, IsActive: true}
		site.CreatedBy, site.UpdatedBy = seedUser, seedUser
	}, "code = ?", data.Code)
	return &site, created, err
}

func siteFor(code string, siteMap map[string]*models.Site) (*models.Site, error) {
	site := siteMap[code]
	if site == nil {
		return nil, fmt.Errorf("site %s not found", code)
	}
	return site, nil
}

func createPost(db *gorm.DB, data PostData, siteMap map[string]*models.Site) (bool, error) {
	site, err := siteFor(data.SiteCode, siteMap)
	if err != nil {
		return false, err
	}
	var post models.Post
	return findOrCreate(db, &post, func() {
		geofenceType := data.GeofenceType
		if geofenceType == "" {
			geofenceType = models.GeofenceTypeCircle
		}
		riskLevel := data.RiskLevel
		if riskLevel == "" {
			riskLevel = models.RiskLevelLow
		}
		required := data.RequiredGuards
		if required == 0 {
			required = 1
		}
		post = models.Post{
			SiteID:                 site.ID,
			Name:                   data.Name,
			GeofenceType:           geofenceType,
			CenterLat:              data.CenterLat,
			CenterLon:              data.CenterLon,
			RadiusMeters:           data.RadiusMeters,
			Polygon:                models.VertexList(data.Polygon),
			CoverageRequired:       data.CoverageRequired,
			RequiredGuards:         required,
			RiskLevel:              riskLevel,
			ArmedRequired:          data.ArmedRequired,
			RequiredCertifications: models.StringList(nonNil(data.RequiredCertifications)),
			PostOrders:             data.PostOrders,
			PostOrdersVersion:      1,
			IsActive:               true,
		}
		post.CreatedBy, post.UpdatedBy = seedUser, seedUser
	}, "site_id = ? AND name = ?", site.ID, data.Name)
}

func createShift(db *gorm.DB, data ShiftData, siteMap map[string]*models.Site) (bool, error) {
	site, err := siteFor(data.SiteCode, siteMap)
	if err != nil {
		return false, err
	}
	var shift models.Shift
	return findOrCreate(db, &shift, func() {
		shift = models.Shift{SiteID: site.ID, Name: data.Name, StartTime: data.StartTime, EndTime: data.EndTime}
		shift.CreatedBy, shift.UpdatedBy = seedUser, seedUser
	}, "site_id = ? AND name = ?", site.ID, data.Name)
}

func createWorker(db *gorm.DB, data WorkerData, siteMap map[string]*models.Site) (bool, error) {
	var worker models.Worker
	created, err := findOrCreate(db, &worker, func() {
		worker = models.Worker{
			EmployeeCode:   data.EmployeeCode,
			FullName:       data.FullName,
			Username:       data.Username,
			IsArmed:        data.IsArmed,
			Certifications: models.StringList(nonNil(data.Certifications)),
			IsActive:       true,
		}
		worker.CreatedBy, worker.UpdatedBy = seedUser, seedUser
	}, "employee_code = ?", data.EmployeeCode)
	if err != nil {
		return false, err
	}

	for _, code := range data.Sites {
		site, err := siteFor(code, siteMap)
		if err != nil {
			return false, err
		}
		var sa models.SiteAssignment
		if _, err := findOrCreate(db, &sa, func() {
			sa = models.SiteAssignment{WorkerID: worker.ID, SiteID: site.ID, IsActive: true}
			sa.CreatedBy, sa.UpdatedBy = seedUser, seedUser
		}, "worker_id = ? AND site_id = ?", worker.ID, site.ID); err != nil {
			return false, fmt.Errorf("failed to deploy to site %s: %w", code, err)
		}
	}
	return created, nil
}

func createRule(db *gorm.DB, data AutoApprovalRuleData) (bool, error) {
	var rule models.AutoApprovalRule
	return findOrCreate(db, &rule, func() {
		sequence := data.Sequence
		if sequence == 0 {
			sequence = 100
		}
		rule = models.AutoApprovalRule{
			Name:                    data.Name,
			Sequence:                sequence,
			IsActive:                true,
			RequestTypes:            models.StringList(nonNil(data.RequestTypes)),
			ReasonCodes:             models.StringList(nonNil(data.ReasonCodes)),
			Priorities:              models.StringList(nonNil(data.Priorities)),
			PostRiskLevels:          models.StringList(nonNil(data.PostRiskLevels)),
			MaxDistanceMeters:       data.MaxDistanceMeters,
			MaxMinutesOutsideWindow: data.MaxMinutesOutsideWindow,
			MinRestHours:            data.MinRestHours,
		}
		rule.CreatedBy, rule.UpdatedBy = seedUser, seedUser
	}, "name = ?", data.Name)
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
