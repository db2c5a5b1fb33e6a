package catalog

import (
	"sync"

	"github.com/neuronlabs/trackable/config"
	"github.com/neuronlabs/trackable/errdef"
	"github.com/neuronlabs/trackable/log"
	"github.com/neuronlabs/trackable/message"
	"github.com/neuronlabs/trackable/registry"
)

var (
	logger = log.NewModuleLogger("catalog")

	initOnce sync.Once
	initErr  error
)

// Messages gets the declared log message definitions in the declaration order.
func Messages() []*message.Definition {
	return []*message.Definition{
		OriginValidated,
		SecurityValidated,
		UserNotAuthorized,
		ExtractedUsernameFromIDToked,
		IDTokenDecodeSuccess,
		IDTokenVerificationSuccess,
		OIDCProviderURI,
		OIDCProviderDiscoverySuccess,
		FetchProviderCertsSuccess,
		OIDCProviderCertificateFetchedFromCache,
		IDTokenDecodeFailed,
		ValidateProviderCertificateIsUpdated,
		PodChannelOpen,
		PodChannelClosed,
		PodChannelData,
		PodMessageData,
		PodError,
		CopySSLToPod,
		RateLimitedCacheUpdated,
		RateLimitedCacheLimitReached,
		ConcurrencyLimitedCacheUpdated,
		ConcurrencyLimitedCacheReached,
		ConcurrencyLimitedCacheConcurrentRequestsUpdated,
	}
}

// ErrorDefinitions gets the declared error definitions in the declaration order.
func ErrorDefinitions() []*errdef.Definition {
	return []*errdef.Definition{
		MissingEnvVariable,
		AuthorizationCodeNotInitialized,
	}
}

// Entries gets the entries of all the catalog declarations, the codeless error definitions included.
func Entries() []Entry {
	var entries []Entry
	for _, d := range Messages() {
		entries = append(entries, EntryOf(d))
	}
	for _, d := range ErrorDefinitions() {
		entries = append(entries, EntryOf(d))
	}
	return entries
}

// Register registers all the catalog declarations that have a tracking code within the registry 'r'.
// The registration stops on the first failure.
func Register(r *registry.Registry) error {
	for _, d := range Messages() {
		if err := r.Register(d); err != nil {
			logger.Errorf("Registering log message: '%s' failed: %v", d.Name(), err)
			return err
		}
	}
	for _, d := range ErrorDefinitions() {
		if !d.HasCode() {
			continue
		}
		if err := r.Register(d); err != nil {
			logger.Errorf("Registering error definition: '%s' failed: %v", d.Name(), err)
			return err
		}
	}
	return nil
}

// Initialize registers the catalog within the default registry using the default config.
// The initialization is done only once - subsequent calls return the result of the first one.
func Initialize() error {
	return InitializeWithConfig(nil)
}

// InitializeWithConfig registers the catalog and the declarations from the configured catalog files
// within the default registry. Unless the config allows late registration the registry is sealed
// afterwards. The initialization is done only once - subsequent calls return the result of the first one.
func InitializeWithConfig(cfg *config.Config) error {
	initOnce.Do(func() {
		initErr = initialize(registry.Default(), cfg)
	})
	return initErr
}

func initialize(r *registry.Registry, cfg *config.Config) error {
	if cfg == nil {
		var err error
		if cfg, err = config.ReadDefaultConfig(); err != nil {
			return err
		}
	} else if err := cfg.Validate(); err != nil {
		return err
	}
	r.SetStrictSeverity(cfg.Registry.StrictSeverity)

	if err := Register(r); err != nil {
		return err
	}
	for _, path := range cfg.Catalog.Files {
		if _, err := LoadFile(r, path); err != nil {
			return err
		}
	}
	if !cfg.Registry.AllowLateRegistration {
		r.Seal()
	}
	logger.Debugf("Catalog initialized with: %d definitions", r.Len())
	return nil
}
