package testutils

import (
	"time"

	"guard-deployment-backend/internal/database/models"

	"github.com/google/uuid"
)

func newBase() models.BaseModel {
	return models.BaseModel{
		ID:        uuid.New(),
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
		CreatedBy: "test",
		UpdatedBy: "test",
	}
}

// SiteFactory provides methods to create test Site data
type SiteFactory struct{}

// NewSiteFactory creates a new SiteFactory
func NewSiteFactory() *SiteFactory {
	return &SiteFactory{}
}

// Create creates a test Site with default values
func (f *SiteFactory) Create() *models.Site {
	base := newBase()
	return &models.Site{
		BaseModel: base,
		Code:      "S" + base.ID.String()[:6],
		Name:      "Harbour Logistics Centre",
		Timezone:  "UTC",
		IsActive:  true,
	}
}

// WithTimezone sets a custom IANA time zone for the site
func (f *SiteFactory) WithTimezone(tz string) *models.Site {
	site := f.Create()
	site.Timezone = tz
	return site
}

// WorkerFactory provides methods to create test Worker data
type WorkerFactory struct{}

// NewWorkerFactory creates a new WorkerFactory
func NewWorkerFactory() *WorkerFactory {
	return &WorkerFactory{}
}

// Create creates an active, unarmed test Worker without certifications
func (f *WorkerFactory) Create() *models.Worker {
	base := newBase()
	return &models.Worker{
		BaseModel:      base,
		EmployeeCode:   "E" + base.ID.String()[:8],
		FullName:       "Sam Rivera",
		Username:       "u" + base.ID.String()[:6],
		Certifications: models.StringList{},
		IsActive:       true,
	}
}

// WithCertifications creates a worker holding the given certifications
func (f *WorkerFactory) WithCertifications(certs ...string) *models.Worker {
	w := f.Create()
	w.Certifications = models.StringList(certs)
	return w
}

// At creates a worker last seen at the given position
func (f *WorkerFactory) At(lat, lon float64) *models.Worker {
	w := f.Create()
	w.LastKnownLat = &lat
	w.LastKnownLon = &lon
	return w
}

// PostFactory provides methods to create test Post data
type PostFactory struct{}

// NewPostFactory creates a new PostFactory
func NewPostFactory() *PostFactory {
	return &PostFactory{}
}

// Create creates a LOW risk circular post of radius 100m requiring one guard
func (f *PostFactory) Create() *models.Post {
	return &models.Post{
		BaseModel:              newBase(),
		SiteID:                 uuid.New(),
		Name:                   "Main Gate",
		GeofenceType:           models.GeofenceTypeCircle,
		CenterLat:              51.5007,
		CenterLon:              -0.1246,
		RadiusMeters:           100,
		CoverageRequired:       true,
		RequiredGuards:         1,
		RiskLevel:              models.RiskLevelLow,
		RequiredCertifications: models.StringList{},
		PostOrders:             "Check every vehicle badge.",
		PostOrdersVersion:      1,
		IsActive:               true,
	}
}

// WithSite creates a post belonging to siteID
func (f *PostFactory) WithSite(siteID uuid.UUID) *models.Post {
	post := f.Create()
	post.SiteID = siteID
	return post
}

// WithRisk creates a post at the given risk level
func (f *PostFactory) WithRisk(level models.RiskLevel) *models.Post {
	post := f.Create()
	post.RiskLevel = level
	return post
}

// ShiftFactory provides methods to create test Shift data
type ShiftFactory struct{}

// NewShiftFactory creates a new ShiftFactory
func NewShiftFactory() *ShiftFactory {
	return &ShiftFactory{}
}

// Create creates a 08:00-16:00 day shift
func (f *ShiftFactory) Create() *models.Shift {
	return f.Window("Day", "08:00", "16:00")
}

// Window creates a shift with the given HH:MM bounds
func (f *ShiftFactory) Window(name, start, end string) *models.Shift {
	return &models.Shift{
		BaseModel: newBase(),
		SiteID:    uuid.New(),
		Name:      name,
		StartTime: models.MustClockTime(start),
		EndTime:   models.MustClockTime(end),
	}
}

// AssignmentFactory provides methods to create test Assignment data
type AssignmentFactory struct{}

// NewAssignmentFactory creates a new AssignmentFactory
func NewAssignmentFactory() *AssignmentFactory {
	return &AssignmentFactory{}
}

// Create creates a SCHEDULED 08:00-16:00 UTC assignment on 2026-03-14
func (f *AssignmentFactory) Create() *models.Assignment {
	return f.For(uuid.New(), &models.Post{BaseModel: newBase(), SiteID: uuid.New()},
		time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC), "08:00", "16:00")
}

// For creates a SCHEDULED assignment of worker to post on date
func (f *AssignmentFactory) For(workerID uuid.UUID, post *models.Post, date time.Time, start, end string) *models.Assignment {
	a := &models.Assignment{
		BaseModel:      newBase(),
		VersionedModel: models.VersionedModel{Version: 1},
		WorkerID:       workerID,
		PostID:         post.ID,
		SiteID:         post.SiteID,
		Status:         models.AssignmentStatusScheduled,
		AssignedBy:     "test",
	}
	a.SetWindow(date, models.MustClockTime(start), models.MustClockTime(end), date.Location())
	return a
}

// ApprovalRequestFactory provides methods to create test ApprovalRequest data
type ApprovalRequestFactory struct{}

// NewApprovalRequestFactory creates a new ApprovalRequestFactory
func NewApprovalRequestFactory() *ApprovalRequestFactory {
	return &ApprovalRequestFactory{}
}

// Create creates a PENDING NORMAL validation override request
func (f *ApprovalRequestFactory) Create() *models.ApprovalRequest {
	now := time.Now().UTC()
	return &models.ApprovalRequest{
		BaseModel:      models.BaseModel{ID: uuid.New(), CreatedAt: now, UpdatedAt: now, CreatedBy: "guard1"},
		VersionedModel: models.VersionedModel{Version: 1},
		Type:           models.ApprovalTypeValidationOverride,
		Priority:       models.ApprovalPriorityNormal,
		Status:         models.ApprovalStatusPending,
		RequestedBy:    "guard1",
		ReasonCode:     "WRONG_POST_LOCATION",
		Justification:  "gate relocated for roadworks",
		Details:        models.JSONMap{"distance_meters": 140.0},
		ExpiresAt:      now.Add(24 * time.Hour),
	}
}

// WithPriority creates a PENDING request at the given priority, created at createdAt
func (f *ApprovalRequestFactory) WithPriority(p models.ApprovalPriority, createdAt time.Time) *models.ApprovalRequest {
	r := f.Create()
	r.Priority = p
	r.CreatedAt = createdAt
	r.ExpiresAt = createdAt.Add(24 * time.Hour)
	return r
}

// FactorySet provides access to all factories
type FactorySet struct {
	Site            *SiteFactory
	Worker          *WorkerFactory
	Post            *PostFactory
	Shift           *ShiftFactory
	Assignment      *AssignmentFactory
	ApprovalRequest *ApprovalRequestFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Site:            NewSiteFactory(),
		Worker:          NewWorkerFactory(),
		Post:            NewPostFactory(),
		Shift:           NewShiftFactory(),
		Assignment:      NewAssignmentFactory(),
		ApprovalRequest: NewApprovalRequestFactory(),
	}
}

// CreateStaffedSite builds a site with one post, one day shift and one
// worker, all linked but not persisted
func (fs *FactorySet) CreateStaffedSite() (*models.Site, *models.Post, *models.Shift, *models.Worker) {
	site := fs.Site.Create()
	post := fs.Post.WithSite(site.ID)
	shift := fs.Shift.Create()
	shift.SiteID = site.ID
	worker := fs.Worker.Create()
	return site, post, shift, worker
}
