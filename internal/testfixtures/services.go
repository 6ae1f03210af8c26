package testfixtures

import (
	"time"

	"github.com/example/coworking-hub/internal/application"
	"github.com/example/coworking-hub/internal/blob"
	"github.com/example/coworking-hub/internal/store"
)

// ServiceFactory assists tests with constructing application services using
// deterministic identifiers and clocks against a shared state store.
type ServiceFactory struct {
	Store       *store.Store
	Gate        *application.Gate
	Clock       *Clock
	IDGenerator *IDGenerator
}

// ServiceFactoryOption configures a ServiceFactory instance.
type ServiceFactoryOption func(*ServiceFactory)

// NewServiceFactory constructs a factory around a freshly seeded store.
func NewServiceFactory(opts ...ServiceFactoryOption) *ServiceFactory {
	factory := &ServiceFactory{
		Clock:       NewClock(time.Time{}),
		IDGenerator: NewIDGenerator("id"),
	}
	for _, opt := range opts {
		opt(factory)
	}
	if factory.Store == nil {
		factory.Store = store.New()
	}
	if factory.Gate == nil {
		factory.Gate = application.NewGate(factory.Store)
	}
	if factory.Clock == nil {
		factory.Clock = NewClock(time.Time{})
	}
	if factory.IDGenerator == nil {
		factory.IDGenerator = NewIDGenerator("id")
	}
	return factory
}

// WithStore overrides the state store used by the factory.
func WithStore(st *store.Store) ServiceFactoryOption {
	return func(factory *ServiceFactory) { factory.Store = st }
}

// WithClock overrides the clock used by the factory.
func WithClock(clock *Clock) ServiceFactoryOption {
	return func(factory *ServiceFactory) { factory.Clock = clock }
}

// WithIDGenerator overrides the identifier generator used by the factory.
func WithIDGenerator(generator *IDGenerator) ServiceFactoryOption {
	return func(factory *ServiceFactory) { factory.IDGenerator = generator }
}

// ElevateAdmin flips the store session to an admin session, bypassing the
// password check. Tests exercising the auth flow itself should use
// NewAuthService instead.
func (f *ServiceFactory) ElevateAdmin() {
	f.Store.SetAdmin(true)
}

// NewAuthService builds an auth service wired to AdminPassword.
func (f *ServiceFactory) NewAuthService() *application.AuthService {
	return application.NewAuthService(f.Store, AdminPassword)
}

// NewWikiService builds a wiki service with deterministic ids and clock.
func (f *ServiceFactory) NewWikiService() *application.WikiService {
	return application.NewWikiService(f.Store, f.Gate, f.IDGenerator.NextFunc(), f.Clock.NowFunc())
}

// NewAnnouncementService builds an announcement service with deterministic
// ids and clock.
func (f *ServiceFactory) NewAnnouncementService() *application.AnnouncementService {
	return application.NewAnnouncementService(f.Store, f.Gate, f.IDGenerator.NextFunc(), f.Clock.NowFunc())
}

// NewSpaceService builds a space service with deterministic ids.
func (f *ServiceFactory) NewSpaceService() *application.SpaceService {
	return application.NewSpaceService(f.Store, f.Gate, f.IDGenerator.NextFunc())
}

// NewPartnerService builds a partner service with deterministic ids and a
// first-swatch color picker.
func (f *ServiceFactory) NewPartnerService() *application.PartnerService {
	return application.NewPartnerService(f.Store, f.Gate, f.IDGenerator.NextFunc(), nil)
}

// NewOfficeService builds an office service.
func (f *ServiceFactory) NewOfficeService() *application.OfficeService {
	return application.NewOfficeService(f.Store, f.Gate)
}

// NewMemberService builds a member service.
func (f *ServiceFactory) NewMemberService() *application.MemberService {
	return application.NewMemberService(f.Store, f.Gate)
}

// NewBackupService builds a backup service with the provided archive and a
// deterministic clock. archive may be nil.
func (f *ServiceFactory) NewBackupService(archive blob.Store) *application.BackupService {
	return application.NewBackupService(f.Store, f.Gate, archive, f.Clock.NowFunc())
}
