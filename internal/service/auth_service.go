package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"braik-ai-be/internal/apperr"
	"braik-ai-be/internal/dto"
	"braik-ai-be/internal/entity"
	"braik-ai-be/internal/pkg/logger"
	"braik-ai-be/internal/pkg/serverutils"
	"braik-ai-be/internal/repository/contract"
	"braik-ai-be/internal/repository/memory"
	"braik-ai-be/pkg/events"
	pktNats "braik-ai-be/pkg/nats"

	"golang.org/x/crypto/bcrypt"
)

const (
	trialDurationDays = 7
	// nonTrialDaysLeft is reported for full accounts, which never
	// expire.
	nonTrialDaysLeft = 999
)

type IAuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error)
	StartTrial(ctx context.Context) (*dto.AuthResponse, error)
	Logout(ctx context.Context, email string) error
	Identity(ctx context.Context, email string) (*dto.ProfileResponse, error)
	// RequireActiveTrial gates the AI-backed endpoints: expired trial
	// accounts keep their data access but lose generation.
	RequireActiveTrial(ctx context.Context, email string) error
}

type authService struct {
	users          contract.UserRegistry
	sessions       *memory.SessionCache
	eventPublisher *pktNats.Publisher
	tokenExpiry    time.Duration
	log            logger.ILogger
}

func NewAuthService(users contract.UserRegistry, sessions *memory.SessionCache, eventPublisher *pktNats.Publisher, tokenExpiryHours int, log logger.ILogger) IAuthService {
	return &authService{
		users:          users,
		sessions:       sessions,
		eventPublisher: eventPublisher,
		tokenExpiry:    time.Duration(tokenExpiryHours) * time.Hour,
		log:            log,
	}
}

// ComputeTrialStatus derives validity from the clock alone. Full
// accounts are always valid; trial accounts expire once seven full
// days have elapsed since the trial started.
func ComputeTrialStatus(profile entity.UserProfile, now time.Time) entity.TrialStatus {
	if !profile.IsTrial {
		return entity.TrialStatus{IsValid: true, DaysLeft: nonTrialDaysLeft}
	}
	start := profile.TrialStartDate
	if start == 0 {
		start = profile.RegistrationDate
	}
	elapsed := now.Sub(time.UnixMilli(start))
	elapsedDays := int(elapsed.Hours() / 24)
	daysLeft := trialDurationDays - elapsedDays
	if daysLeft < 0 {
		daysLeft = 0
	}
	expired := elapsed >= trialDurationDays*24*time.Hour
	return entity.TrialStatus{IsValid: !expired, IsExpired: expired, DaysLeft: daysLeft}
}

func (s *authService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	existing, err := s.users.Get(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperr.ErrAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	record := entity.UserRecord{
		Profile: entity.UserProfile{
			Name:             req.Name,
			CompanyName:      req.CompanyName,
			Email:            req.Email,
			RegistrationDate: now.UnixMilli(),
		},
		Auth: entity.AuthState{
			IsConfigured: true,
			Email:        req.Email,
			PasswordHash: string(hash),
		},
	}
	if err := s.users.Save(ctx, req.Email, record); err != nil {
		return nil, err
	}
	if err := s.users.SetActive(ctx, req.Email); err != nil {
		return nil, err
	}

	s.publish(ctx, events.New(events.TypeUserRegistered, map[string]interface{}{
		"email": req.Email,
		"name":  req.Name,
	}))

	return s.issue(record.Profile, now)
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	record, err := s.users.Get(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, apperr.ErrNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(record.Auth.PasswordHash), []byte(req.Password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return nil, apperr.ErrInvalidCredential
		}
		return nil, err
	}

	// An expired trial still logs in: the trial status in the response
	// tells the client which features are gated.
	if err := s.users.SetActive(ctx, req.Email); err != nil {
		return nil, err
	}

	s.publish(ctx, events.New(events.TypeUserLogin, map[string]interface{}{
		"email": req.Email,
	}))

	return s.issue(record.Profile, time.Now())
}

func (s *authService) StartTrial(ctx context.Context) (*dto.AuthResponse, error) {
	now := time.Now()
	email := fmt.Sprintf("trial_%d@braik.temp", now.UnixMilli())

	record := entity.UserRecord{
		Profile: entity.UserProfile{
			Name:             "Trial User",
			Email:            email,
			RegistrationDate: now.UnixMilli(),
			IsTrial:          true,
			TrialStartDate:   now.UnixMilli(),
		},
		Auth: entity.AuthState{IsConfigured: true, Email: email},
	}
	if err := s.users.Save(ctx, email, record); err != nil {
		return nil, err
	}
	if err := s.users.SetActive(ctx, email); err != nil {
		return nil, err
	}

	s.publish(ctx, events.New(events.TypeTrialStarted, map[string]interface{}{
		"email": email,
	}))

	return s.issue(record.Profile, now)
}

func (s *authService) Logout(ctx context.Context, email string) error {
	s.sessions.Invalidate(email)
	return s.users.ClearActive(ctx)
}

func (s *authService) Identity(ctx context.Context, email string) (*dto.ProfileResponse, error) {
	if cached, found := s.sessions.Get(email); found {
		return &dto.ProfileResponse{Profile: cached.Profile, Trial: cached.Trial}, nil
	}

	record, err := s.users.Get(ctx, email)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, apperr.ErrNotFound
	}

	trial := ComputeTrialStatus(record.Profile, time.Now())
	s.sessions.Save(email, &memory.CachedIdentity{Profile: record.Profile, Trial: trial})
	return &dto.ProfileResponse{Profile: record.Profile, Trial: trial}, nil
}

func (s *authService) RequireActiveTrial(ctx context.Context, email string) error {
	identity, err := s.Identity(ctx, email)
	if err != nil {
		return err
	}
	if identity.Trial.IsExpired {
		return apperr.ErrTrialExpired
	}
	return nil
}

func (s *authService) issue(profile entity.UserProfile, now time.Time) (*dto.AuthResponse, error) {
	token, err := serverutils.IssueToken(profile.Email, s.tokenExpiry)
	if err != nil {
		return nil, err
	}
	trial := ComputeTrialStatus(profile, now)
	s.sessions.Save(profile.Email, &memory.CachedIdentity{Profile: profile, Trial: trial})
	return &dto.AuthResponse{Token: token, Profile: profile, Trial: trial}, nil
}

// publish is best effort: a dead bus never blocks an auth flow.
func (s *authService) publish(ctx context.Context, event events.Event) {
	if s.eventPublisher == nil {
		return
	}
	if err := s.eventPublisher.Publish(ctx, event); err != nil {
		s.log.Warn("AuthService", "failed to publish event", map[string]interface{}{
			"type":  event.EventType(),
			"error": err.Error(),
		})
	}
}
