package app

import (
	"fmt"

	"cestodamore/internal/availability"
	"cestodamore/internal/calendar"
	"cestodamore/internal/catalog"
	"cestodamore/internal/clock"
	"cestodamore/internal/memory"
	"cestodamore/internal/notify"
	"cestodamore/internal/tools"

	"gorm.io/gorm"
)

// Services holds all application services
type Services struct {
	DB            *gorm.DB
	Clock         clock.Clock
	Calendar      *calendar.Calendar
	Availability  *availability.Engine
	Notifier      *notify.Dispatcher
	MemoryService *memory.Service
	CatalogRepo   *catalog.Repository
	Tools         *tools.Executor
}

// NewServices creates a new services container
func NewServices(db *gorm.DB) (*Services, error) {
	clk := clock.NewStoreClock()

	cal, err := calendar.New(db, calendar.DefaultSchedule())
	if err != nil {
		return nil, fmt.Errorf("failed to build business calendar: %w", err)
	}

	engine := availability.NewEngine(clk, cal)
	notifier := notify.NewDispatcher(notify.NewClientFromEnv(), clk)
	memoryService := memory.NewService(db, clk)
	catalogRepo := catalog.NewRepository(db)

	executor := tools.NewExecutor(clk, cal, engine, notifier, memoryService, catalogRepo)

	return &Services{
		DB:            db,
		Clock:         clk,
		Calendar:      cal,
		Availability:  engine,
		Notifier:      notifier,
		MemoryService: memoryService,
		CatalogRepo:   catalogRepo,
		Tools:         executor,
	}, nil
}
