package app

import (
	"context"
	"fmt"
	"time"

	"guard-deployment-backend/internal/config"
	"guard-deployment-backend/internal/lock"
	"guard-deployment-backend/internal/logger"
	"guard-deployment-backend/internal/repository"
	"guard-deployment-backend/internal/service"

	"github.com/go-playground/validator/v10"
	goredis "github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Services is the wired service graph shared by the API server and the sweeper
type Services struct {
	Assignments *service.AssignmentService
	Approvals   *service.ApprovalService
	Dispatcher  *service.EmergencyDispatcher
	PostOrders  *service.PostOrdersService
	Policy      service.Policy
}

// Infrastructure holds the process-wide backends the services run on
type Infrastructure struct {
	Locker  lock.Locker
	Effects service.EffectPublisher
	Redis   *goredis.Client
}

// Close releases the backends
func (i *Infrastructure) Close() error {
	if i.Redis != nil {
		return i.Redis.Close()
	}
	return nil
}

// PolicyFromConfig maps configuration onto the engine's policy, keeping the
// defaults for anything left unset
func PolicyFromConfig(cfg *config.Config) service.Policy {
	p := service.DefaultPolicy()
	if cfg.CheckInGraceMinutes > 0 {
		p.GracePeriod = time.Duration(cfg.CheckInGraceMinutes) * time.Minute
	}
	if cfg.MinRestHours > 0 {
		p.MinimumRest = time.Duration(cfg.MinRestHours * float64(time.Hour))
	}
	if cfg.GeofenceHysteresisMeters > 0 {
		p.DefaultHysteresisMeters = cfg.GeofenceHysteresisMeters
	}
	if cfg.LookupTimeout > 0 {
		p.LookupTimeout = cfg.LookupTimeout
	}
	p.CertificationHardBlock = cfg.CertificationHardBlock
	if cfg.NoShowGraceMinutes > 0 {
		p.NoShowGrace = time.Duration(cfg.NoShowGraceMinutes) * time.Minute
	}
	if cfg.EscalationThresholdMinutes > 0 {
		p.EscalationThreshold = time.Duration(cfg.EscalationThresholdMinutes) * time.Minute
	}
	if cfg.DispatchMinScore > 0 {
		p.DispatchMinScore = cfg.DispatchMinScore
	}
	if cfg.SweepBatchSize > 0 {
		p.SweepBatchSize = cfg.SweepBatchSize
	}
	return p
}

// NewInfrastructure picks the lock backend and effect publishers from configuration
func NewInfrastructure(cfg *config.Config) (*Infrastructure, error) {
	infra := &Infrastructure{}
	effects := service.EffectPublishers{service.LogEffectPublisher{}}

	switch cfg.LockBackend {
	case "redis":
		client, err := lock.NewRedisClient(lock.RedisConfig{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to connect lock backend: %w", err)
		}
		infra.Redis = client
		infra.Locker = lock.NewRedisLocker(client, cfg.LockTTL)
		effects = append(effects, service.NewRedisEffectPublisher(client, ""))
	default:
		infra.Locker = lock.NewKeyedMutex()
	}

	infra.Effects = effects
	logger.New().WithField("lock_backend", cfg.LockBackend).Info("Infrastructure ready")
	return infra, nil
}

// Ping reports whether the configured backends answer
func (i *Infrastructure) Ping(ctx context.Context) error {
	if i.Redis == nil {
		return nil
	}
	return i.Redis.Ping(ctx).Err()
}

// NewServices builds every service over the database
func NewServices(db *gorm.DB, cfg *config.Config, infra *Infrastructure) *Services {
	policy := PolicyFromConfig(cfg)
	validate := validator.New()

	assignmentRepo := repository.NewAssignmentRepository(db, policy.GracePeriod)
	approvalRepo := repository.NewApprovalRequestRepository(db)
	ruleRepo := repository.NewAutoApprovalRuleRepository(db)
	postRepo := repository.NewPostRepository(db)
	shiftRepo := repository.NewShiftRepository(db)
	scheduleRepo := repository.NewScheduleRepository(db)
	siteRepo := repository.NewSiteRepository(db)
	workerRepo := repository.NewWorkerRepository(db)
	ackRepo := repository.NewAcknowledgementRepository(db)

	var fallback repository.SiteMembershipLookup = repository.NewRosterMembership(db)
	if cfg.LDAPEnabled() {
		fallback = service.NewLDAPSiteDirectory(cfg, workerRepo, siteRepo)
	}

	approvals := service.NewApprovalService(service.ApprovalDeps{
		Requests:    approvalRepo,
		Rules:       ruleRepo,
		Assignments: assignmentRepo,
		Shifts:      shiftRepo,
		Posts:       postRepo,
		Sites:       siteRepo,
	}, infra.Locker, infra.Effects, validate, policy)

	pipeline := service.NewCheckInValidator(service.CheckInCollaborators{
		Sites:            repository.NewSiteAssignmentRepository(db),
		SitesFallback:    fallback,
		Schedule:         scheduleRepo,
		Attendance:       assignmentRepo,
		PostAssignments:  assignmentRepo,
		Acknowledgements: ackRepo,
		Certifications:   workerRepo,
	}, policy)

	assignments := service.NewAssignmentService(assignmentRepo, siteRepo, pipeline, approvals, infra.Locker, infra.Effects, validate, policy)

	dispatcher := service.NewEmergencyDispatcher(service.DispatcherDeps{
		Posts:       postRepo,
		Shifts:      shiftRepo,
		Sites:       siteRepo,
		Workers:     workerRepo,
		Assignments: assignmentRepo,
		Coverage:    service.NewCoverageCalculator(assignmentRepo),
		Scorer:      service.NewSuitabilityScorer(assignmentRepo, policy),
		Approvals:   approvals,
	}, infra.Effects, validate, policy)

	postOrders := service.NewPostOrdersService(postRepo, ackRepo, siteRepo, infra.Locker, infra.Effects, validate)

	return &Services{
		Assignments: assignments,
		Approvals:   approvals,
		Dispatcher:  dispatcher,
		PostOrders:  postOrders,
		Policy:      policy,
	}
}
