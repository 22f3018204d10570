package cron

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"

	announcementservice "github.com/confcloud/confhub/internal/announcement/service"
	"github.com/confcloud/confhub/pkg/logger"
)

// Timeout for one announcement rebuild
const announcementTimeout = time.Minute

// Manager manages cron jobs
type Manager struct {
	cron          *cron.Cron
	logger        *logger.Logger
	announcements *announcementservice.Service
	schedule      string
}

// NewManager creates a new cron manager
func NewManager(logger *logger.Logger, announcements *announcementservice.Service, schedule string) *Manager {
	return &Manager{
		cron:          cron.New(cron.WithLogger(cron.DefaultLogger)),
		logger:        logger,
		announcements: announcements,
		schedule:      schedule,
	}
}

// Start starts the cron manager
func (m *Manager) Start() {
	_, err := m.cron.AddFunc(m.schedule, m.rebuildAnnouncement)
	if err != nil {
		m.logger.Fatal("Failed to add announcement job: %v", err)
	}

	m.cron.Start()
	m.logger.Info("Cron manager started")
}

// Stop stops the cron manager
func (m *Manager) Stop() {
	m.cron.Stop()
	m.logger.Info("Cron manager stopped")
}

// rebuildAnnouncement refreshes the near-sold-out announcement cache entry
func (m *Manager) rebuildAnnouncement() {
	m.logger.Debug("Running scheduled announcement rebuild")
	ctx, cancel := context.WithTimeout(context.Background(), announcementTimeout)
	defer cancel()

	message, err := m.announcements.Rebuild(ctx)
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			m.logger.Error("Announcement rebuild timed out after %v", announcementTimeout)
		} else {
			m.logger.Error("Failed to rebuild announcement: %v", err)
		}
		return
	}

	if message == "" {
		m.logger.Debug("No conferences nearly sold out, announcement cleared")
	} else {
		m.logger.Info("Announcement updated: %s", message)
	}
}
