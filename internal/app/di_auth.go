package app

import (
	"fmt"

	authHTTP "github.com/safework/safework/internal/auth/http"
	authRepository "github.com/safework/safework/internal/auth/repository"
	authUseCase "github.com/safework/safework/internal/auth/usecase"
	"github.com/safework/safework/internal/session"
	"github.com/safework/safework/internal/token"
)

// TokenProvider returns the signed token provider.
func (c *Container) TokenProvider() (*token.Provider, error) {
	var err error
	c.tokenProviderInit.Do(func() {
		c.tokenProvider, err = token.NewProvider(token.Config{
			Secret:     c.config.JWTSecret,
			Issuer:     c.config.JWTIssuer,
			AccessTTL:  c.config.AccessTokenTTL,
			RefreshTTL: c.config.RefreshTokenTTL,
		})
		if err != nil {
			c.initErrors["tokenProvider"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["tokenProvider"]; exists {
		return nil, storedErr
	}
	return c.tokenProvider, nil
}

// SessionLedger returns the in-memory refresh session ledger.
func (c *Container) SessionLedger() *session.MemoryLedger {
	c.sessionLedgerInit.Do(func() {
		c.sessionLedger = session.NewMemoryLedger()
	})
	return c.sessionLedger
}

// SessionSweeper returns the background sweeper that evicts expired ledger entries.
func (c *Container) SessionSweeper() *session.Sweeper {
	c.sessionSweeperInit.Do(func() {
		c.sessionSweeper = session.NewSweeper(c.SessionLedger(), c.config.SessionSweepInterval, c.Logger())
	})
	return c.sessionSweeper
}

// UserRepository returns the user repository based on the database driver.
func (c *Container) UserRepository() (authUseCase.UserRepository, error) {
	var err error
	c.userRepoInit.Do(func() {
		c.userRepo, err = c.initUserRepository()
		if err != nil {
			c.initErrors["userRepo"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["userRepo"]; exists {
		return nil, storedErr
	}
	return c.userRepo, nil
}

// SessionUseCase returns the session use case.
func (c *Container) SessionUseCase() (authUseCase.SessionUseCase, error) {
	var err error
	c.sessionUseCaseInit.Do(func() {
		c.sessionUseCase, err = c.initSessionUseCase()
		if err != nil {
			c.initErrors["sessionUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["sessionUseCase"]; exists {
		return nil, storedErr
	}
	return c.sessionUseCase, nil
}

// SessionHandler returns the session HTTP handler.
func (c *Container) SessionHandler() (*authHTTP.SessionHandler, error) {
	var err error
	c.sessionHandlerInit.Do(func() {
		c.sessionHandler, err = c.initSessionHandler()
		if err != nil {
			c.initErrors["sessionHandler"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["sessionHandler"]; exists {
		return nil, storedErr
	}
	return c.sessionHandler, nil
}

// initUserRepository creates the user repository for the configured driver.
func (c *Container) initUserRepository() (authUseCase.UserRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for user repository: %w", err)
	}

	switch c.config.DBDriver {
	case "mysql":
		return authRepository.NewMySQLUserRepository(db), nil
	case "postgres":
		return authRepository.NewPostgreSQLUserRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

// initSessionUseCase creates the session use case with all its dependencies,
// decorated with business metrics.
func (c *Container) initSessionUseCase() (authUseCase.SessionUseCase, error) {
	userRepo, err := c.UserRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get user repository for session use case: %w", err)
	}

	tokenProvider, err := c.TokenProvider()
	if err != nil {
		return nil, fmt.Errorf("failed to get token provider for session use case: %w", err)
	}

	useCase, err := authUseCase.NewSessionUseCase(
		userRepo,
		tokenProvider,
		c.SessionLedger(),
		c.config.AccessTokenTTL,
		c.config.RefreshTokenTTL,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create session use case: %w", err)
	}

	businessMetrics, err := c.BusinessMetrics()
	if err != nil {
		return nil, fmt.Errorf("failed to get business metrics for session use case: %w", err)
	}

	return authUseCase.NewSessionUseCaseWithMetrics(useCase, businessMetrics), nil
}

// initSessionHandler creates the session HTTP handler.
func (c *Container) initSessionHandler() (*authHTTP.SessionHandler, error) {
	sessionUseCase, err := c.SessionUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get session use case for session handler: %w", err)
	}

	return authHTTP.NewSessionHandler(
		sessionUseCase,
		c.config.RefreshCookieMaxAge,
		c.config.RefreshCookieSecure,
		c.Logger(),
	), nil
}
