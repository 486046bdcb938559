package app

import (
	"fmt"

	reportHTTP "github.com/safework/safework/internal/report/http"
	reportRepository "github.com/safework/safework/internal/report/repository"
	reportUseCase "github.com/safework/safework/internal/report/usecase"
)

// ReportRepository returns the report repository based on the database driver.
func (c *Container) ReportRepository() (reportUseCase.ReportRepository, error) {
	var err error
	c.reportRepoInit.Do(func() {
		c.reportRepo, err = c.initReportRepository()
		if err != nil {
			c.initErrors["reportRepo"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["reportRepo"]; exists {
		return nil, storedErr
	}
	return c.reportRepo, nil
}

// ReportUseCase returns the report use case.
func (c *Container) ReportUseCase() (reportUseCase.ReportUseCase, error) {
	var err error
	c.reportUseCaseInit.Do(func() {
		c.reportUseCase, err = c.initReportUseCase()
		if err != nil {
			c.initErrors["reportUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["reportUseCase"]; exists {
		return nil, storedErr
	}
	return c.reportUseCase, nil
}

// ReportHandler returns the report HTTP handler.
func (c *Container) ReportHandler() (*reportHTTP.ReportHandler, error) {
	var err error
	c.reportHandlerInit.Do(func() {
		c.reportHandler, err = c.initReportHandler()
		if err != nil {
			c.initErrors["reportHandler"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["reportHandler"]; exists {
		return nil, storedErr
	}
	return c.reportHandler, nil
}

// initReportRepository creates the report repository for the configured driver.
func (c *Container) initReportRepository() (reportUseCase.ReportRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for report repository: %w", err)
	}

	switch c.config.DBDriver {
	case "mysql":
		return reportRepository.NewMySQLReportRepository(db), nil
	case "postgres":
		return reportRepository.NewPostgreSQLReportRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

// initReportUseCase creates the report use case decorated with business metrics.
func (c *Container) initReportUseCase() (reportUseCase.ReportUseCase, error) {
	reportRepo, err := c.ReportRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get report repository for report use case: %w", err)
	}

	businessMetrics, err := c.BusinessMetrics()
	if err != nil {
		return nil, fmt.Errorf("failed to get business metrics for report use case: %w", err)
	}

	useCase := reportUseCase.NewReportUseCase(reportRepo)

	return reportUseCase.NewReportUseCaseWithMetrics(useCase, businessMetrics), nil
}

// initReportHandler creates the report HTTP handler.
func (c *Container) initReportHandler() (*reportHTTP.ReportHandler, error) {
	useCase, err := c.ReportUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get report use case for report handler: %w", err)
	}

	return reportHTTP.NewReportHandler(useCase, c.Logger()), nil
}
