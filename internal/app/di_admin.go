package app

import (
	"fmt"

	adminHTTP "github.com/safework/safework/internal/admin/http"
	adminUseCase "github.com/safework/safework/internal/admin/usecase"
)

// AdminUseCase returns the admin use case.
func (c *Container) AdminUseCase() (adminUseCase.AdminUseCase, error) {
	var err error
	c.adminUseCaseInit.Do(func() {
		c.adminUseCase, err = c.initAdminUseCase()
		if err != nil {
			c.initErrors["adminUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["adminUseCase"]; exists {
		return nil, storedErr
	}
	return c.adminUseCase, nil
}

// AdminHandler returns the admin HTTP handler.
func (c *Container) AdminHandler() (*adminHTTP.AdminHandler, error) {
	var err error
	c.adminHandlerInit.Do(func() {
		c.adminHandler, err = c.initAdminHandler()
		if err != nil {
			c.initErrors["adminHandler"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["adminHandler"]; exists {
		return nil, storedErr
	}
	return c.adminHandler, nil
}

// initAdminUseCase creates the admin use case.
func (c *Container) initAdminUseCase() (adminUseCase.AdminUseCase, error) {
	userRepo, err := c.UserRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get user repository for admin use case: %w", err)
	}

	return adminUseCase.NewAdminUseCase(userRepo), nil
}

// initAdminHandler creates the admin HTTP handler.
func (c *Container) initAdminHandler() (*adminHTTP.AdminHandler, error) {
	useCase, err := c.AdminUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get admin use case for admin handler: %w", err)
	}

	return adminHTTP.NewAdminHandler(useCase, c.Logger()), nil
}
